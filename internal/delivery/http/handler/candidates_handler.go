package handler

import (
	"youthbridge/internal/delivery/http/dto"
	"youthbridge/internal/delivery/http/middleware"
	"youthbridge/internal/engine/page"
	"youthbridge/internal/pkg/response"
	"youthbridge/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type CandidatesHandler struct {
	uc usecase.CandidateSearchUsecase
}

func NewCandidatesHandler(uc usecase.CandidateSearchUsecase) *CandidatesHandler {
	return &CandidatesHandler{uc: uc}
}

func (h *CandidatesHandler) RegisterRoutes(r fiber.Router) {
	if h == nil || r == nil {
		return
	}
	r.Get("/candidates", h.HandleSearchCandidates)
}

func (h *CandidatesHandler) HandleSearchCandidates(c fiber.Ctx) error {
	pageNum, err := parseQueryIntStrict(c, "page", 1)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	pageSize, err := parseQueryIntStrict(c, "page_size", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	var targetJobID uuid.UUID
	if raw := c.Query("job_id"); raw != "" {
		targetJobID, err = uuid.Parse(raw)
		if err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
		}
	}

	res, err := h.uc.SearchCandidates(c.Context(), usecase.CandidateSearchParams{
		Search:      c.Query("search"),
		Location:    c.Query("location"),
		SortBy:      c.Query("sort_by"),
		Page:        pageNum,
		PageSize:    pageSize,
		TargetJobID: targetJobID,
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

func pageMetaResponse(m page.Meta) dto.PageMetaResponse {
	return dto.PageMetaResponse{
		Page:       m.Page,
		PageSize:   m.PageSize,
		TotalCount: m.TotalCount,
		TotalPages: m.TotalPages,
		FirstIndex: m.FirstIndex,
		LastIndex:  m.LastIndex,
	}
}
