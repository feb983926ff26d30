package match

import (
	"testing"

	"youthbridge/internal/domain/candidate"
	"youthbridge/internal/domain/job"

	"github.com/google/uuid"
)

func TestScore_HalfSkillOverlap(t *testing.T) {
	p := candidate.Profile{
		ID: uuid.New(),
		Skills: []candidate.Skill{
			{Name: "React", ProficiencyLevel: 4},
			{Name: "TypeScript", ProficiencyLevel: 3},
		},
	}
	j := job.Posting{ID: uuid.New(), RequiredSkills: []string{"React", "Redux"}}

	res := Score(p, j)
	if res.Score != 50 {
		t.Fatalf("expected score 50, got %d", res.Score)
	}
	if len(res.MatchedSkills) != 1 || res.MatchedSkills[0] != "React" {
		t.Fatalf("unexpected matched skills %v", res.MatchedSkills)
	}
	if !res.IsMatch {
		t.Fatalf("one skill hit must count as a match")
	}
}

func TestScore_BidirectionalContainment(t *testing.T) {
	p := candidate.Profile{Skills: []candidate.Skill{{Name: "React Native"}}}
	j := job.Posting{RequiredSkills: []string{"react"}}
	if res := Score(p, j); len(res.MatchedSkills) != 1 {
		t.Fatalf("candidate skill containing the requirement must hit")
	}

	p = candidate.Profile{Skills: []candidate.Skill{{Name: "SQL"}}}
	j = job.Posting{RequiredSkills: []string{"PostgreSQL"}}
	if res := Score(p, j); len(res.MatchedSkills) != 1 {
		t.Fatalf("requirement containing the candidate skill must hit")
	}
}

func TestScore_EducationBonusAndBooleanMatch(t *testing.T) {
	p := candidate.Profile{Education: "Business Administration"}
	j := job.Posting{RequiredSkills: []string{"Bookkeeping"}, RequiredEducation: "business"}

	res := Score(p, j)
	if !res.EducationMatch {
		t.Fatalf("expected education hit")
	}
	if res.Score != 20 {
		t.Fatalf("expected bonus-only score 20, got %d", res.Score)
	}
	if !res.IsMatch {
		t.Fatalf("education hit alone must count as a match")
	}
}

func TestScore_ClampedAtHundred(t *testing.T) {
	p := candidate.Profile{
		Skills:    []candidate.Skill{{Name: "React"}},
		Education: "Computer Science",
	}
	j := job.Posting{RequiredSkills: []string{"React"}, RequiredEducation: "Computer Science"}
	if res := Score(p, j); res.Score != 100 {
		t.Fatalf("expected clamp to 100, got %d", res.Score)
	}
}

func TestScore_NoRequirementsNoMatch(t *testing.T) {
	p := candidate.Profile{Skills: []candidate.Skill{{Name: "React"}}}
	res := Score(p, job.Posting{})
	if res.Score != 0 || res.IsMatch {
		t.Fatalf("no requirements should mean no match, got score=%d match=%v", res.Score, res.IsMatch)
	}
}

func TestMatches_FiltersNonMatches(t *testing.T) {
	j := job.Posting{RequiredSkills: []string{"React"}}
	profiles := []candidate.Profile{
		{Name: "Amina", Skills: []candidate.Skill{{Name: "React"}}},
		{Name: "Brian", Skills: []candidate.Skill{{Name: "Carpentry"}}},
	}
	got := Matches(profiles, j)
	if len(got) != 1 || got[0].Profile.Name != "Amina" {
		t.Fatalf("expected only Amina to match, got %d", len(got))
	}
}

func TestScoreAll_PreservesInputOrder(t *testing.T) {
	j := job.Posting{RequiredSkills: []string{"React"}}
	profiles := []candidate.Profile{{Name: "B"}, {Name: "A"}, {Name: "C"}}
	got := ScoreAll(profiles, j)
	if len(got) != 3 {
		t.Fatalf("expected 3 results, got %d", len(got))
	}
	for i, name := range []string{"B", "A", "C"} {
		if got[i].Profile.Name != name {
			t.Fatalf("order changed at %d: %s", i, got[i].Profile.Name)
		}
	}
}
