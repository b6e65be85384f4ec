// Package engine is the deterministic advising core: requirement audit,
// greedy multi-term planning, and section conflict resolution. Everything in
// this package is a pure function over immutable inputs; persistence and the
// conversational layer live elsewhere.
package engine

import (
	"github.com/lucasmreid/advisor/internal/contract"
	"github.com/lucasmreid/advisor/internal/domain"
)

// Audit evaluates every requirement of a program against a transcript and
// returns one status per requirement, preserving the program's declared
// order. Requirements with an unrecognized type produce no status entry; the
// importer's validation pass is where such entries get flagged.
func Audit(t *domain.Transcript, p *domain.Program) []contract.RequirementStatus {
	completed := t.CompletedSet()
	statuses := make([]contract.RequirementStatus, 0, len(p.Requirements))

	for _, req := range p.Requirements {
		switch req.Type {
		case domain.ReqAllOf:
			statuses = append(statuses, auditAllOf(req, completed))
		case domain.ReqChooseN:
			statuses = append(statuses, auditChooseN(req, completed))
		case domain.ReqCreditsAtLeast:
			statuses = append(statuses, auditCreditsAtLeast(req, t, p))
		default:
			// Unknown variant: skipped, not an error.
			continue
		}
	}

	return statuses
}

func auditAllOf(req domain.Requirement, completed map[string]bool) contract.RequirementStatus {
	missing := make([]string, 0)
	for _, code := range req.Courses {
		if !completed[code] {
			missing = append(missing, code)
		}
	}
	return contract.RequirementStatus{
		ID:   req.EffectiveID(),
		Type: domain.ReqAllOf,
		Met:  len(missing) == 0,
		Details: contract.StatusDetails{
			Missing: missing,
			Courses: req.Courses,
		},
	}
}

func auditChooseN(req domain.Requirement, completed map[string]bool) contract.RequirementStatus {
	done := make([]string, 0)
	for _, code := range req.From {
		if completed[code] {
			done = append(done, code)
		}
	}
	need := req.N - len(done)
	if need < 0 {
		need = 0
	}
	return contract.RequirementStatus{
		ID:   req.EffectiveID(),
		Type: domain.ReqChooseN,
		Met:  need == 0,
		Details: contract.StatusDetails{
			Need: need,
			Done: done,
			Pool: req.From,
		},
	}
}

func auditCreditsAtLeast(req domain.Requirement, t *domain.Transcript, p *domain.Program) contract.RequirementStatus {
	// Earned credits sum over taken records, once per record: a course taken
	// in two terms contributes its credit value twice. A code missing from
	// course metadata counts as having no area rather than failing the audit,
	// unlike the planner's strict credit lookup.
	earned := 0
	for _, rec := range t.Taken {
		meta, ok := p.CourseMeta[rec.Code]
		if !ok || meta.Area != req.Area {
			continue
		}
		earned += meta.Credits
	}
	need := req.Credits - earned
	if need < 0 {
		need = 0
	}
	return contract.RequirementStatus{
		ID:   req.EffectiveID(),
		Type: domain.ReqCreditsAtLeast,
		Met:  need == 0,
		Details: contract.StatusDetails{
			Earned: earned,
			Need:   need,
			Area:   req.Area,
		},
	}
}
