package result_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/outcome/pkg/result"
)

func TestMatch(t *testing.T) {
	t.Parallel()

	onSuccess := func() string { return "ok" }
	onFailure := func(r result.Result) string { return "failed: " + r.ErrorMessage() }

	assert.Equal(t, "ok", result.Match(result.Success(), onSuccess, onFailure))
	assert.Equal(t, "failed: boom", result.Match(result.Failure("boom"), onSuccess, onFailure))

	assert.Panics(t, func() {
		result.Match[string](result.Success(), nil, onFailure)
	})
}

func TestMatchValue(t *testing.T) {
	t.Parallel()

	double := func(v int) int { return v * 2 }
	minusOne := func(result.Result) int { return -1 }

	assert.Equal(t, 42, result.MatchValue(result.Ok(21), double, minusOne))
	assert.Equal(t, -1, result.MatchValue(result.FailureOf[int]("x"), double, minusOne))
}

func TestMatchCases(t *testing.T) {
	t.Parallel()

	full := result.Cases[string]{
		Success:    func() string { return "success" },
		Error:      func(result.Result) string { return "error" },
		Security:   func(result.Result) string { return "security" },
		Validation: func(f result.Failures) string { return "validation:" + f.Fields()[0] },
		Canceled:   func(result.Result) string { return "canceled" },
	}

	tests := []struct {
		name string
		r    result.Result
		want string
	}{
		{"success", result.Success(), "success"},
		{"error", result.Failure("x"), "error"},
		{"security", result.Unauthorized(""), "security"},
		{"validation", result.ValidationFailure(result.Failures{"Email": {"required"}}), "validation:Email"},
		{"canceled", result.Canceled(""), "canceled"},
		{"not found falls back to error", result.NotFound("x"), "error"},
		{"server error falls back to error", result.ServerError("x"), "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, result.MatchCases(tt.r, full))
		})
	}

	t.Run("missing specific handlers fall back to error", func(t *testing.T) {
		t.Parallel()
		minimal := result.Cases[string]{
			Success: func() string { return "success" },
			Error:   func(r result.Result) string { return "error:" + r.FailureType().String() },
		}
		assert.Equal(t, "error:Security", result.MatchCases(result.Unauthorized(""), minimal))
		assert.Equal(t, "error:Validation", result.MatchCases(result.ValidationFailure(nil), minimal))
		assert.Equal(t, "error:OperationCanceled", result.MatchCases(result.Canceled(""), minimal))
	})

	t.Run("required handlers", func(t *testing.T) {
		t.Parallel()
		assert.PanicsWithValue(t, result.ErrNilHandler, func() {
			result.MatchCases(result.Success(), result.Cases[string]{Success: func() string { return "" }})
		})
	})
}

func TestMatchValueCases(t *testing.T) {
	t.Parallel()

	cases := result.ValueCases[int, string]{
		Success:  func(v int) string { return "value" },
		Error:    func(result.Result) string { return "error" },
		Security: func(result.Result) string { return "security" },
	}

	assert.Equal(t, "value", result.MatchValueCases(result.Ok(1), cases))
	assert.Equal(t, "security", result.MatchValueCases(result.Fail[int](result.Unauthorized("")), cases))
	assert.Equal(t, "error", result.MatchValueCases(result.ValidationFailureOf[int](nil), cases))
}

func TestSwitch(t *testing.T) {
	t.Parallel()

	t.Run("result", func(t *testing.T) {
		t.Parallel()
		var got string
		result.Failure("boom").Switch(
			func() { got = "success" },
			func(r result.Result) { got = r.ErrorMessage() },
		)
		assert.Equal(t, "boom", got)
	})

	t.Run("result cases", func(t *testing.T) {
		t.Parallel()
		var got result.Failures
		called := false
		result.ValidationFailure(result.Failures{"Name": {"required"}}).SwitchCases(result.SwitchCases{
			Success:    func() { called = true },
			Error:      func(result.Result) { called = true },
			Validation: func(f result.Failures) { got = f },
		})
		assert.False(t, called)
		assert.Equal(t, result.Failures{"Name": {"required"}}, got)
	})

	t.Run("value", func(t *testing.T) {
		t.Parallel()
		var got int
		result.Ok(5).Switch(
			func(v int) { got = v },
			func(result.Result) { got = -1 },
		)
		assert.Equal(t, 5, got)
	})

	t.Run("value cases", func(t *testing.T) {
		t.Parallel()
		var got string
		result.Fail[int](result.Canceled("")).SwitchCases(result.ValueSwitchCases[int]{
			Success:  func(int) { got = "success" },
			Error:    func(result.Result) { got = "error" },
			Canceled: func(result.Result) { got = "canceled" },
		})
		assert.Equal(t, "canceled", got)
	})

	t.Run("nil handlers panic", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() {
			result.Success().SwitchCases(result.SwitchCases{Success: func() {}})
		})
	})
}
