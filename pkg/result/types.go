package result

import (
	"fmt"
	"strconv"
	"strings"
)

// ResultType qualifies an outcome independently of its failure category.
// Successes may be Success, Information or Warning; failures may be
// Information, Warning or Error.
type ResultType uint8

const (
	TypeSuccess ResultType = iota
	TypeInformation
	TypeWarning
	TypeError
)

var resultTypeNames = [...]string{
	TypeSuccess:     "Success",
	TypeInformation: "Information",
	TypeWarning:     "Warning",
	TypeError:       "Error",
}

func (t ResultType) String() string {
	if int(t) < len(resultTypeNames) {
		return resultTypeNames[t]
	}
	return "ResultType(" + strconv.Itoa(int(t)) + ")"
}

// FailureType is the closed failure taxonomy.
type FailureType uint8

const (
	FailureNone FailureType = iota
	FailureError
	FailureSecurity
	FailureValidation
	FailureNotFound
	FailureServerError
	FailureOperationCanceled
)

var failureTypeNames = [...]string{
	FailureNone:              "None",
	FailureError:             "Error",
	FailureSecurity:          "Security",
	FailureValidation:        "Validation",
	FailureNotFound:          "NotFound",
	FailureServerError:       "ServerError",
	FailureOperationCanceled: "OperationCanceled",
}

func (t FailureType) String() string {
	if int(t) < len(failureTypeNames) {
		return failureTypeNames[t]
	}
	return "FailureType(" + strconv.Itoa(int(t)) + ")"
}

// ParseResultType accepts a name (case-insensitive) or an ordinal.
func ParseResultType(s string) (ResultType, error) {
	i, err := parseEnum(s, resultTypeNames[:])
	if err != nil {
		return 0, fmt.Errorf("%w: result type %q", ErrInvalidWire, s)
	}
	return ResultType(i), nil
}

// ParseFailureType accepts a name (case-insensitive) or an ordinal.
func ParseFailureType(s string) (FailureType, error) {
	i, err := parseEnum(s, failureTypeNames[:])
	if err != nil {
		return 0, fmt.Errorf("%w: failure type %q", ErrInvalidWire, s)
	}
	return FailureType(i), nil
}

func parseEnum(s string, names []string) (int, error) {
	s = strings.TrimSpace(s)
	for i, name := range names {
		if strings.EqualFold(s, name) {
			return i, nil
		}
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if i < 0 || i >= len(names) {
		return 0, strconv.ErrRange
	}
	return i, nil
}
