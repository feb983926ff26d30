package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
)

type boardCacheKeyInput struct {
	Search           string   `json:"search"`
	Location         string   `json:"location"`
	JobTypes         []string `json:"job_types"`
	ExperienceLevels []string `json:"experience_levels"`
	SalaryMin        int      `json:"salary_min"`
	SalaryMax        int      `json:"salary_max"`
	RemoteOnly       bool     `json:"remote_only"`
	Category         string   `json:"category"`
	IncludeExpired   bool     `json:"include_expired"`
	SortBy           string   `json:"sort_by"`
	Page             int      `json:"page"`
	PageSize         int      `json:"page_size"`
}

func normalizeSearchValue(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.Join(strings.Fields(s), " ")
	return s
}

func normalizeSearchValues(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = normalizeSearchValue(s)
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}

// BoardCacheKey hashes the normalized query so equivalent criteria share a
// cache entry. Keys live under board:page: so the refresh tick can flush
// them all with one pattern.
func BoardCacheKey(params JobBoardParams) string {
	in := boardCacheKeyInput{
		Search:           normalizeSearchValue(params.Search),
		Location:         normalizeSearchValue(params.Location),
		JobTypes:         normalizeSearchValues(params.JobTypes),
		ExperienceLevels: normalizeSearchValues(params.ExperienceLevels),
		SalaryMin:        params.SalaryMin,
		SalaryMax:        params.SalaryMax,
		RemoteOnly:       params.RemoteOnly,
		Category:         normalizeSearchValue(params.Category),
		IncludeExpired:   params.IncludeExpired,
		SortBy:           strings.TrimSpace(params.SortBy),
		Page:             params.Page,
		PageSize:         params.PageSize,
	}

	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return "board:page:" + hex.EncodeToString(sum[:])
}

func BoardLockKey(cacheKey string) string {
	if strings.HasPrefix(cacheKey, "board:page:") {
		return "board:lock:" + strings.TrimPrefix(cacheKey, "board:page:")
	}
	return "board:lock:" + cacheKey
}
