package job

import (
	"time"

	"github.com/google/uuid"
)

// Posting is a single job advertisement as supplied by the persistence
// layer. The engine never mutates postings.
type Posting struct {
	ID                uuid.UUID
	Title             string
	Organization      string
	Location          string
	Remote            bool
	EmploymentType    string
	ExperienceLevel   string
	Category          string
	Description       string
	SalaryMin         int
	SalaryMax         int
	SalaryCurrency    string
	SalaryPeriod      string
	RequiredSkills    []string
	RequiredEducation string
	PostedAt          time.Time
	Deadline          time.Time
	ViewCount         int
	ApplicationCount  int
}
