package candidate

import (
	"time"

	"github.com/google/uuid"
)

// Availability buckets candidates by how soon they can start. The numeric
// values are the display/sort order, most available first.
type Availability int

const (
	AvailabilityImmediate Availability = iota
	AvailabilityOneToTwoWeeks
	AvailabilityOneMonthPlus
)

func (a Availability) String() string {
	switch a {
	case AvailabilityImmediate:
		return "Immediate"
	case AvailabilityOneToTwoWeeks:
		return "1-2 weeks"
	case AvailabilityOneMonthPlus:
		return "1 month+"
	default:
		return "Unknown"
	}
}

type Skill struct {
	Name             string
	ProficiencyLevel int
}

// Profile is a youth candidate profile. Experience is free text as entered
// in the portal ("5+ years", "Senior"); parsing happens in the engine.
type Profile struct {
	ID           uuid.UUID
	Name         string
	Title        string
	Location     string
	Availability Availability
	Skills       []Skill
	Experience   string
	Education    string
	LastActiveAt time.Time
}
