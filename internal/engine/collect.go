package engine

import (
	"github.com/lucasmreid/advisor/internal/contract"
	"github.com/lucasmreid/advisor/internal/domain"
)

// CollectMissing derives, from an audit report, the set of specific course
// codes whose completion would progress unmet requirements.
//
// all_of contributes everything in its missing list. choose_n contributes
// the first `need` pool courses not already done, preserving pool order so
// earlier-declared catalog options win ties. credits_at_least contributes
// nothing: it names an area threshold, not courses, so it can never drive
// course selection on its own.
func CollectMissing(statuses []contract.RequirementStatus) map[string]bool {
	missing := make(map[string]bool)

	for _, st := range statuses {
		switch st.Type {
		case domain.ReqAllOf:
			for _, code := range st.Details.Missing {
				missing[code] = true
			}
		case domain.ReqChooseN:
			if st.Met {
				continue
			}
			done := make(map[string]bool, len(st.Details.Done))
			for _, code := range st.Details.Done {
				done[code] = true
			}
			picked := 0
			for _, code := range st.Details.Pool {
				if picked >= st.Details.Need {
					break
				}
				if done[code] {
					continue
				}
				missing[code] = true
				picked++
			}
		case domain.ReqCreditsAtLeast:
			// No candidate courses; see doc comment.
		}
	}

	return missing
}
