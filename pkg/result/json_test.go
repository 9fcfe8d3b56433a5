package result_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/outcome/pkg/result"
)

type user struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

func sampleResults() map[string]result.Result {
	return map[string]result.Result{
		"success":             result.Success(),
		"success information": result.Success(result.WithResultType(result.TypeInformation)),
		"success warning":     result.Success(result.WithResultType(result.TypeWarning)),
		"error":               result.Failure("payment declined"),
		"error warning":       result.Failure("quota", result.WithResultType(result.TypeWarning)),
		"error information":   result.Failure("note", result.WithResultType(result.TypeInformation)),
		"security":            result.Unauthorized(""),
		"validation":          result.ValidationFailure(result.Failures{"Email": {"required", "invalid"}, "Age": {"too young"}}),
		"validation empty":    result.ValidationFailure(nil),
		"not found":           result.NotFound("x"),
		"server error":        result.ServerError("Internal Server Error: DB down"),
		"canceled":            result.Canceled(""),
		"combined":            result.Combine(result.NotFound("x"), result.ValidationFailure(result.Failures{"Name": {"required"}})),
	}
}

func TestResultJSON(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		for name, orig := range sampleResults() {
			data, err := json.Marshal(orig)
			require.NoError(t, err, name)

			var got result.Result
			require.NoError(t, json.Unmarshal(data, &got), name)
			assert.Equal(t, orig, got, name)
		}
	})

	t.Run("wire shape", func(t *testing.T) {
		t.Parallel()
		data, err := json.Marshal(result.ValidationFailure(result.Failures{"Email": {"required"}}))
		require.NoError(t, err)
		assert.JSONEq(t, `{
			"error": "Validation failed: Email: required",
			"failureType": "Validation",
			"resultType": "Error",
			"failures": {"Email": ["required"]}
		}`, string(data))

		data, err = json.Marshal(result.Success())
		require.NoError(t, err)
		assert.JSONEq(t, `{"error":"","failureType":"None","resultType":"Success","failures":{}}`, string(data))
	})

	t.Run("accepts ordinals and any case", func(t *testing.T) {
		t.Parallel()
		var r result.Result
		require.NoError(t, json.Unmarshal([]byte(`{"error":"gone","failureType":4,"resultType":"error"}`), &r))
		assert.Equal(t, result.FailureNotFound, r.FailureType())
		assert.Equal(t, result.TypeError, r.ResultType())
		assert.Equal(t, "gone", r.ErrorMessage())
		assert.NotNil(t, r.Failures())
	})

	t.Run("rejects inconsistent payloads", func(t *testing.T) {
		t.Parallel()
		payloads := []string{
			`{"error":"boom","failureType":"None","resultType":"Success"}`,
			`{"error":"","failureType":"Error","resultType":"Error"}`,
			`{"error":"","failureType":"None","resultType":"Success","failures":{"a":["b"]}}`,
			`{"error":"","failureType":"None","resultType":"Error"}`,
			`{"error":"boom","failureType":"Error","resultType":"Success"}`,
			`{"error":"boom","failureType":"Exploded","resultType":"Error"}`,
		}
		for _, p := range payloads {
			var r result.Result
			err := json.Unmarshal([]byte(p), &r)
			assert.ErrorIs(t, err, result.ErrInvalidWire, p)
		}
	})
}

func TestOfJSON(t *testing.T) {
	t.Parallel()

	t.Run("success with value", func(t *testing.T) {
		t.Parallel()
		orig := result.Ok(user{ID: "1", Name: "Ann"})
		data, err := json.Marshal(orig)
		require.NoError(t, err)
		assert.JSONEq(t, `{
			"error": "", "failureType": "None", "resultType": "Success", "failures": {},
			"value": {"id": "1", "name": "Ann"}
		}`, string(data))

		var got result.Of[user]
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, orig, got)
	})

	t.Run("success with null value", func(t *testing.T) {
		t.Parallel()
		orig := result.Ok[*user](nil)
		data, err := json.Marshal(orig)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"value":null`)

		var got result.Of[*user]
		require.NoError(t, json.Unmarshal(data, &got))
		v, ok := got.Value()
		assert.True(t, ok)
		assert.Nil(t, v)
		assert.Equal(t, result.FailureNone, got.FailureType())
	})

	t.Run("failure omits value", func(t *testing.T) {
		t.Parallel()
		orig := result.NotFoundOf[user]("user 1")
		data, err := json.Marshal(orig)
		require.NoError(t, err)

		var raw map[string]any
		require.NoError(t, json.Unmarshal(data, &raw))
		assert.NotContains(t, raw, "value")

		var got result.Of[user]
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, orig, got)
		_, ok := got.Value()
		assert.False(t, ok)
	})

	t.Run("round trip every failure", func(t *testing.T) {
		t.Parallel()
		for name, r := range sampleResults() {
			var orig result.Of[int]
			if r.IsSuccess() {
				orig = result.Ok(7, result.WithResultType(r.ResultType()))
			} else {
				orig = result.Fail[int](r)
			}

			data, err := json.Marshal(orig)
			require.NoError(t, err, name)

			var got result.Of[int]
			require.NoError(t, json.Unmarshal(data, &got), name)
			assert.Equal(t, orig, got, name)
		}
	})

	t.Run("value on failure is ignored", func(t *testing.T) {
		t.Parallel()
		var got result.Of[int]
		require.NoError(t, json.Unmarshal([]byte(`{"error":"x","failureType":"Error","resultType":"Error","value":5}`), &got))
		_, ok := got.Value()
		assert.False(t, ok)
	})

	t.Run("bad value", func(t *testing.T) {
		t.Parallel()
		var got result.Of[int]
		err := json.Unmarshal([]byte(`{"failureType":"None","resultType":"Success","value":"five"}`), &got)
		assert.Error(t, err)
	})

	t.Run("nested in a struct", func(t *testing.T) {
		t.Parallel()
		type envelope struct {
			Outcome result.Of[[]string] `json:"outcome"`
		}
		orig := envelope{Outcome: result.Ok([]string{"a", "b"})}
		data, err := json.Marshal(orig)
		require.NoError(t, err)

		var got envelope
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, orig, got)
	})
}
