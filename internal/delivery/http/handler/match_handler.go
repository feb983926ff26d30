package handler

import (
	"youthbridge/internal/delivery/http/dto"
	"youthbridge/internal/delivery/http/middleware"
	"youthbridge/internal/domain/candidate"
	"youthbridge/internal/pkg/response"
	"youthbridge/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type MatchHandler struct {
	uc usecase.CandidateMatchUsecase
}

func NewMatchHandler(uc usecase.CandidateMatchUsecase) *MatchHandler {
	return &MatchHandler{uc: uc}
}

func (h *MatchHandler) RegisterRoutes(r fiber.Router) {
	if h == nil || r == nil {
		return
	}
	r.Get("/jobs/:id/matches", h.HandleFindMatches)
}

func (h *MatchHandler) HandleFindMatches(c fiber.Ctx) error {
	jobID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	pageNum, err := parseQueryIntStrict(c, "page", 1)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	pageSize, err := parseQueryIntStrict(c, "page_size", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	res, err := h.uc.FindMatches(c.Context(), jobID, usecase.CandidateMatchParams{
		SortBy:   c.Query("sort_by"),
		Page:     pageNum,
		PageSize: pageSize,
	})
	if err != nil {
		return mapUsecaseError(err)
	}

	out := dto.CandidateListResponse{
		Items: make([]dto.CandidateItemResponse, 0, len(res.Items)),
		Meta:  pageMetaResponse(res.Meta),
	}
	for _, it := range res.Items {
		out.Items = append(out.Items, candidateItemResponse(it.Profile, it.Score, it.MatchedSkills))
	}

	return response.Success(c, fiber.StatusOK, "success", out)
}

func candidateItemResponse(p candidate.Profile, score int, matchedSkills []string) dto.CandidateItemResponse {
	skills := make([]dto.CandidateSkillResponse, 0, len(p.Skills))
	for _, s := range p.Skills {
		skills = append(skills, dto.CandidateSkillResponse{
			Name:             s.Name,
			ProficiencyLevel: s.ProficiencyLevel,
		})
	}
	if matchedSkills == nil {
		matchedSkills = []string{}
	}

	return dto.CandidateItemResponse{
		CandidateID:   p.ID,
		Name:          p.Name,
		Title:         p.Title,
		Location:      p.Location,
		Availability:  p.Availability.String(),
		Skills:        skills,
		Experience:    p.Experience,
		Education:     p.Education,
		LastActive:    formatInstant(p.LastActiveAt),
		MatchScore:    score,
		MatchedSkills: matchedSkills,
	}
}
