package httpresult

import (
	"encoding/json"

	"github.com/dmitrymomot/outcome/pkg/result"
)

// MediaTypeProblemJSON is the RFC 7807 problem details media type.
const MediaTypeProblemJSON = "application/problem+json"

// ProblemDetails is the RFC 7807 body carrying per-field validation errors.
// Errors is required; the other members are optional.
type ProblemDetails struct {
	Type     string              `json:"type,omitempty"`
	Title    string              `json:"title,omitempty"`
	Status   int                 `json:"status,omitempty"`
	Detail   string              `json:"detail,omitempty"`
	Instance string              `json:"instance,omitempty"`
	Errors   map[string][]string `json:"errors"`
}

// ParseProblemDetails decodes body and reports whether it is a problem
// details document with an errors member.
func ParseProblemDetails(body []byte) (ProblemDetails, bool) {
	var pd ProblemDetails
	if err := json.Unmarshal(body, &pd); err != nil || pd.Errors == nil {
		return ProblemDetails{}, false
	}
	return pd, true
}

// Failures returns the per-field errors as result failures.
func (p ProblemDetails) Failures() result.Failures {
	return result.Failures(p.Errors).Clone()
}

func problemFor(res result.Result, status int) ProblemDetails {
	return ProblemDetails{
		Type:   "about:blank",
		Title:  "One or more validation errors occurred.",
		Status: status,
		Detail: res.ErrorMessage(),
		Errors: res.Failures(),
	}
}
