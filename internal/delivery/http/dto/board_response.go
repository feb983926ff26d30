package dto

import "github.com/google/uuid"

type PageMetaResponse struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalCount int `json:"total_count"`
	TotalPages int `json:"total_pages"`
	FirstIndex int `json:"first_index"`
	LastIndex  int `json:"last_index"`
}

type JobBoardItemResponse struct {
	JobID             uuid.UUID `json:"job_id"`
	Title             string    `json:"title"`
	Organization      string    `json:"organization"`
	Location          string    `json:"location"`
	Remote            bool      `json:"remote"`
	EmploymentType    string    `json:"employment_type"`
	ExperienceLevel   string    `json:"experience_level"`
	Category          string    `json:"category"`
	SalaryMin         int       `json:"salary_min"`
	SalaryMax         int       `json:"salary_max"`
	SalaryCurrency    string    `json:"salary_currency"`
	SalaryPeriod      string    `json:"salary_period"`
	RequiredSkills    []string  `json:"required_skills"`
	RequiredEducation string    `json:"required_education,omitempty"`
	PostedDate        string    `json:"posted_date"`
	Deadline          string    `json:"deadline"`
	UrgencyState      string    `json:"urgency_state"`
	DeadlineLabel     string    `json:"deadline_label"`
	DaysLeft          int       `json:"days_left"`
	Selectable        bool      `json:"selectable"`
	ViewCount         int       `json:"view_count"`
	ApplicationCount  int       `json:"application_count"`
}

type JobBoardResponse struct {
	Items []JobBoardItemResponse `json:"items"`
	Meta  PageMetaResponse       `json:"meta"`
}
