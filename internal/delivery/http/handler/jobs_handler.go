package handler

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"youthbridge/internal/delivery/http/dto"
	"youthbridge/internal/delivery/http/middleware"
	"youthbridge/internal/pkg/response"
	"youthbridge/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type JobsHandler struct {
	uc usecase.JobBoardUsecase
}

func NewJobsHandler(uc usecase.JobBoardUsecase) *JobsHandler {
	return &JobsHandler{uc: uc}
}

func (h *JobsHandler) RegisterRoutes(r fiber.Router) {
	if h == nil || r == nil {
		return
	}
	r.Get("/jobs", h.HandleListJobs)
}

func (h *JobsHandler) HandleListJobs(c fiber.Ctx) error {
	salaryMin, err := parseQueryIntStrict(c, "salary_min", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	salaryMax, err := parseQueryIntStrict(c, "salary_max", 0)
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

	res, err := h.uc.ListJobs(c.Context(), usecase.JobBoardParams{
		Search:           c.Query("search"),
		Location:         c.Query("location"),
		JobTypes:         parseCSVQuery(c.Query("job_types")),
		ExperienceLevels: parseCSVQuery(c.Query("experience_levels")),
		SalaryMin:        salaryMin,
		SalaryMax:        salaryMax,
		RemoteOnly:       parseQueryBool(c, "remote"),
		Category:         c.Query("category"),
		IncludeExpired:   parseQueryBool(c, "include_expired"),
		SortBy:           c.Query("sort_by"),
		Page:             pageNum,
		PageSize:         pageSize,
	})
	if err != nil {
		return mapUsecaseError(err)
	}

	out := dto.JobBoardResponse{
		Items: make([]dto.JobBoardItemResponse, 0, len(res.Items)),
		Meta:  pageMetaResponse(res.Meta),
	}
	for _, it := range res.Items {
		p := it.Posting
		out.Items = append(out.Items, dto.JobBoardItemResponse{
			JobID:             p.ID,
			Title:             p.Title,
			Organization:      p.Organization,
			Location:          p.Location,
			Remote:            p.Remote,
			EmploymentType:    p.EmploymentType,
			ExperienceLevel:   p.ExperienceLevel,
			Category:          p.Category,
			SalaryMin:         p.SalaryMin,
			SalaryMax:         p.SalaryMax,
			SalaryCurrency:    p.SalaryCurrency,
			SalaryPeriod:      p.SalaryPeriod,
			RequiredSkills:    p.RequiredSkills,
			RequiredEducation: p.RequiredEducation,
			PostedDate:        formatInstant(p.PostedAt),
			Deadline:          formatInstant(p.Deadline),
			UrgencyState:      it.UrgencyState,
			DeadlineLabel:     it.DeadlineLabel,
			DaysLeft:          it.DaysLeft,
			Selectable:        it.Selectable,
			ViewCount:         p.ViewCount,
			ApplicationCount:  p.ApplicationCount,
		})
	}

	return response.Success(c, fiber.StatusOK, "success", out)
}

func parseQueryIntStrict(c fiber.Ctx, key string, defaultVal int) (int, error) {
	s := c.Query(key)
	if s == "" {
		return defaultVal, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	return v, nil
}

func parseQueryBool(c fiber.Ctx, key string) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(c.Query(key)))
	return err == nil && v
}

func parseCSVQuery(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

func formatInstant(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func mapUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, usecase.ErrJobNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
	}
}
