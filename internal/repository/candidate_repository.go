package repository

import (
	"context"
	"time"

	"youthbridge/internal/database"
	"youthbridge/internal/domain/candidate"

	"github.com/google/uuid"
)

type CandidateRepository interface {
	ListProfiles(ctx context.Context, limit int) ([]candidate.Profile, error)
}

type PostgresCandidateRepository struct {
	db database.DB
}

func NewPostgresCandidateRepository(db database.DB) *PostgresCandidateRepository {
	return &PostgresCandidateRepository{db: db}
}

// ListProfiles returns candidate profiles with their skills, most recently
// active first.
func (r *PostgresCandidateRepository) ListProfiles(ctx context.Context, limit int) ([]candidate.Profile, error) {
	if limit <= 0 || limit > 500 {
		limit = 500
	}

	rows, err := r.db.Query(ctx,
		`SELECT id,
		        COALESCE(name, ''),
		        COALESCE(title, ''),
		        COALESCE(location, ''),
		        COALESCE(availability, 0),
		        COALESCE(experience, ''),
		        COALESCE(education, ''),
		        last_active_at
		 FROM candidate_profiles
		 ORDER BY last_active_at DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	profiles := make([]candidate.Profile, 0)
	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		var p candidate.Profile
		var availability int
		var lastActive *time.Time
		if err := rows.Scan(&p.ID, &p.Name, &p.Title, &p.Location, &availability, &p.Experience, &p.Education, &lastActive); err != nil {
			return nil, err
		}
		p.Availability = candidate.Availability(availability)
		if lastActive != nil {
			p.LastActiveAt = *lastActive
		}
		profiles = append(profiles, p)
		ids = append(ids, p.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	skills, err := r.findSkillsByCandidateIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range profiles {
		profiles[i].Skills = skills[profiles[i].ID]
	}
	return profiles, nil
}

func (r *PostgresCandidateRepository) findSkillsByCandidateIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID][]candidate.Skill, error) {
	out := make(map[uuid.UUID][]candidate.Skill, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT candidate_id, COALESCE(name, ''), COALESCE(proficiency_level, 0)
		 FROM candidate_skills
		 WHERE candidate_id = ANY($1)
		 ORDER BY candidate_id, name`,
		ids,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var s candidate.Skill
		if err := rows.Scan(&id, &s.Name, &s.ProficiencyLevel); err != nil {
			return nil, err
		}
		if s.Name == "" {
			continue
		}
		out[id] = append(out[id], s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
