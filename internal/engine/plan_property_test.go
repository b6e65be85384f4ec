package engine

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/lucasmreid/advisor/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// randomProgram builds a program whose prerequisite edges only point at
// lexicographically earlier codes, guaranteeing an acyclic catalog.
func randomProgram(rng *rand.Rand) *domain.Program {
	n := rng.Intn(15) + 5 // 5–19 courses
	codes := make([]string, n)
	meta := make(map[string]domain.CourseMeta, n)
	prereqs := make(map[string][]string)

	for i := 0; i < n; i++ {
		code := fmt.Sprintf("C%02d", i)
		codes[i] = code
		meta[code] = domain.CourseMeta{Credits: rng.Intn(5) + 1}
		if i > 0 && rng.Intn(3) == 0 {
			prereqs[code] = []string{codes[rng.Intn(i)]}
		}
	}

	return &domain.Program{
		Requirements: []domain.Requirement{
			{ID: "core", Type: domain.ReqAllOf, Courses: codes},
		},
		CourseMeta: meta,
		Prereqs:    prereqs,
	}
}

func randomTranscript(rng *rand.Rand, p *domain.Program) *domain.Transcript {
	t := &domain.Transcript{}
	for i := 0; i < len(p.CourseMeta); i++ {
		if rng.Intn(4) == 0 {
			t.Taken = append(t.Taken, domain.TakenRecord{Code: fmt.Sprintf("C%02d", i), Term: "2025F", Grade: "B"})
		}
	}
	return t
}

// TestPlan_Invariants_CreditCapAndPrereqOrder property-tests the two core
// planner invariants over randomized catalogs: no term exceeds the credit
// cap, and every prerequisite is satisfied by the transcript, an earlier
// term, or an earlier position in the same term.
func TestPlan_Invariants_CreditCapAndPrereqOrder(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 200; trial++ {
		p := randomProgram(rng)
		tr := randomTranscript(rng, p)
		terms := []string{"T1", "T2", "T3", "T4"}

		_, plan, err := Plan(tr, p, terms)
		require.NoError(t, err, "trial %d", trial)

		assert.LessOrEqual(t, len(plan), len(terms), "trial %d: never more terms than supplied", trial)

		satisfied := tr.CompletedSet()
		for ti, term := range plan {
			credits := 0
			for _, code := range term.Courses {
				credits += p.CourseMeta[code].Credits
				for _, pre := range p.Prereqs[code] {
					assert.True(t, satisfied[pre],
						"trial %d term %d: %s placed before prerequisite %s", trial, ti, code, pre)
				}
				satisfied[code] = true
			}
			assert.Equal(t, term.Credits, credits, "trial %d term %d: credit total mismatch", trial, ti)
			assert.LessOrEqual(t, credits, TermCreditCap, "trial %d term %d: credit cap violated", trial, ti)
			assert.NotEmpty(t, term.Courses, "trial %d term %d: empty buckets must be omitted", trial, ti)
		}
	}
}

// TestPlan_Invariant_ByteIdenticalReruns verifies determinism over random
// inputs: the same catalog and transcript always produce the same plan.
func TestPlan_Invariant_ByteIdenticalReruns(t *testing.T) {
	rng := rand.New(rand.NewSource(99))

	for trial := 0; trial < 50; trial++ {
		p := randomProgram(rng)
		tr := randomTranscript(rng, p)
		terms := []string{"T1", "T2", "T3"}

		_, first, err := Plan(tr, p, terms)
		require.NoError(t, err)
		_, second, err := Plan(tr, p, terms)
		require.NoError(t, err)

		assert.Equal(t, first, second, "trial %d", trial)
	}
}
