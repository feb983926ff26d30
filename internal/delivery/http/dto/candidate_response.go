package dto

import "github.com/google/uuid"

type CandidateSkillResponse struct {
	Name             string `json:"name"`
	ProficiencyLevel int    `json:"proficiency_level"`
}

type CandidateItemResponse struct {
	CandidateID   uuid.UUID                `json:"candidate_id"`
	Name          string                   `json:"name"`
	Title         string                   `json:"title"`
	Location      string                   `json:"location"`
	Availability  string                   `json:"availability"`
	Skills        []CandidateSkillResponse `json:"skills"`
	Experience    string                   `json:"experience"`
	Education     string                   `json:"education,omitempty"`
	LastActive    string                   `json:"last_active"`
	MatchScore    int                      `json:"match_score"`
	MatchedSkills []string                 `json:"matched_skills"`
}

type CandidateListResponse struct {
	Items []CandidateItemResponse `json:"items"`
	Meta  PageMetaResponse        `json:"meta"`
}
