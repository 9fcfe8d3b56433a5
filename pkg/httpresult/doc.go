// Package httpresult converts HTTP responses into result values and renders
// result values as HTTP responses.
//
// # Client side
//
// ToResult triages a response by status code only:
//
//	200-299   success, body ignored
//	400       validation failure when the body is application/problem+json
//	          with an "errors" member, otherwise an error failure carrying the
//	          trimmed body ("Bad Request" when empty)
//	401, 403  security failure, "Unauthorized"
//	404       not found failure, "Not Found", body discarded
//	5xx       server error, "<status text>" or "<status text>: <body>"
//	other     error failure, "Unexpected <code>: <body>"
//
// Read, ReadJSON, ReadXML, ReadText, ReadBytes and ReadForm apply the same
// triage and, on 2xx, decode the body by its Content-Type. An empty or
// whitespace-only body is a success holding the zero value. Charsets outside
// a fixed allow-list fail; the rest are transcoded to UTF-8 with
// golang.org/x/text/encoding before decoding.
//
//	res, err := httpresult.ReadJSON[User](ctx, resp)
//	if err != nil {
//	    return err // ctx was canceled while reading the body
//	}
//	user, ok := res.Value()
//
// Every entry point closes the response body. The returned error is non-nil
// only when ctx is done before the body is read; every other problem,
// including transport read errors, is reported as a failure result.
//
// # Server side
//
// Write, WriteValue and Handler render results with the inverse mapping, so a
// client using this package reads back the same failure type and failures.
//
//	r := chi.NewRouter()
//	r.Get("/users/{id}", httpresult.Handler(func(r *http.Request) result.Of[User] {
//	    return users.Find(r.Context(), chi.URLParam(r, "id"))
//	}))
//
// # Configuration
//
// Config can be loaded from OUTCOME_HTTP_* environment variables with
// LoadConfig and passed with WithConfig.
package httpresult
