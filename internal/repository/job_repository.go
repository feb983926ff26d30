package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"youthbridge/internal/database"
	"youthbridge/internal/domain/job"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrJobNotFound = errors.New("job not found")

type JobRepository interface {
	GetByID(ctx context.Context, jobID uuid.UUID) (job.Posting, error)
	ListPostings(ctx context.Context, limit int) ([]job.Posting, error)
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

const postingColumns = `
	id,
	COALESCE(title, ''),
	COALESCE(organization, ''),
	COALESCE(location, ''),
	COALESCE(is_remote, FALSE),
	COALESCE(employment_type, ''),
	COALESCE(experience_level, ''),
	COALESCE(category, ''),
	COALESCE(description, ''),
	COALESCE(salary_min, 0),
	COALESCE(salary_max, 0),
	COALESCE(salary_currency, ''),
	COALESCE(salary_period, ''),
	COALESCE(required_skills, '{}'),
	COALESCE(required_education, ''),
	posted_at,
	deadline,
	COALESCE(view_count, 0),
	COALESCE(application_count, 0)`

func (r *PostgresJobRepository) GetByID(ctx context.Context, jobID uuid.UUID) (job.Posting, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+postingColumns+` FROM job_postings WHERE id = $1`, jobID)

	p, err := scanPosting(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return job.Posting{}, ErrJobNotFound
		}
		return job.Posting{}, err
	}
	return p, nil
}

// ListPostings returns the most recent postings, newest first. The engine
// does all filtering; the repository only bounds the working set.
func (r *PostgresJobRepository) ListPostings(ctx context.Context, limit int) ([]job.Posting, error) {
	if limit <= 0 || limit > 500 {
		limit = 500
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+postingColumns+`
		 FROM job_postings
		 ORDER BY posted_at DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.Posting, 0)
	for rows.Next() {
		p, err := scanPosting(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanPosting(row database.Row) (job.Posting, error) {
	var p job.Posting
	var postedAt, deadline *time.Time
	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Organization,
		&p.Location,
		&p.Remote,
		&p.EmploymentType,
		&p.ExperienceLevel,
		&p.Category,
		&p.Description,
		&p.SalaryMin,
		&p.SalaryMax,
		&p.SalaryCurrency,
		&p.SalaryPeriod,
		&p.RequiredSkills,
		&p.RequiredEducation,
		&postedAt,
		&deadline,
		&p.ViewCount,
		&p.ApplicationCount,
	)
	if err != nil {
		return job.Posting{}, err
	}
	if postedAt != nil {
		p.PostedAt = *postedAt
	}
	if deadline != nil {
		p.Deadline = *deadline
	}
	return p, nil
}
