package result

import "strings"

// Combine merges results into one.
//
// With no inputs, or when every input succeeded, it returns Success().
// Otherwise the combined failure has:
//   - FailureType of the first failed input, by position
//   - the messages of all failed inputs joined with "; " in input order
//   - the union of all Failures maps; messages for a field that appears in
//     several inputs are appended in input order, never replaced
func Combine(results ...Result) Result {
	var (
		ft       = FailureNone
		messages []string
		merged   = Failures{}
	)

	for _, r := range results {
		if r.IsSuccess() {
			continue
		}
		if ft == FailureNone {
			ft = r.fail.typ
		}
		messages = append(messages, r.fail.message)
		merged.Merge(r.fail.failures)
	}

	if ft == FailureNone {
		return success
	}

	return Result{
		kind: TypeError,
		fail: &failure{
			typ:      ft,
			message:  strings.Join(messages, "; "),
			failures: merged,
		},
	}
}
