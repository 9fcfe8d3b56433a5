package httpresult

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/dmitrymomot/outcome/pkg/logger"
	"github.com/dmitrymomot/outcome/pkg/result"
)

// ToResult converts resp into a Result by its status code. A 2xx body is
// not read. resp.Body is always closed.
//
// The error is non-nil only when ctx is done before the body has been read.
func ToResult(ctx context.Context, resp *http.Response, opts ...Option) (result.Result, error) {
	if resp == nil {
		panic(ErrNilResponse)
	}
	defer closeBody(resp)
	o := newOptions(opts)

	if err := ctx.Err(); err != nil {
		return result.Result{}, err
	}
	if isSuccess(resp.StatusCode) {
		o.debug(resp, result.Success())
		return result.Success(), nil
	}

	res, err := triage(ctx, resp, o)
	if err != nil {
		return result.Result{}, err
	}
	o.debug(resp, res)
	return res, nil
}

func isSuccess(code int) bool {
	return code >= 200 && code <= 299
}

// triage maps a non-2xx response to a failure. The status code alone picks
// the failure type; the body only contributes to the message.
func triage(ctx context.Context, resp *http.Response, o *options) (result.Result, error) {
	code := resp.StatusCode
	switch {
	case code == http.StatusUnauthorized, code == http.StatusForbidden:
		return result.Unauthorized(""), nil
	case code == http.StatusNotFound:
		return result.NotFound(requestURL(resp)), nil
	case code == http.StatusBadRequest:
		return badRequest(ctx, resp, o)
	}

	text, err := lenientText(ctx, resp, o)
	if err != nil {
		return result.Result{}, err
	}

	if code >= 500 && code <= 599 {
		msg := statusText(resp)
		if text != "" {
			msg += ": " + text
		}
		return result.ServerError(msg), nil
	}

	msg := "Unexpected " + strconv.Itoa(code)
	if text != "" {
		msg += ": " + text
	}
	return result.Failure(msg), nil
}

// badRequest reads problem details, falling back to the body as the message.
func badRequest(ctx context.Context, resp *http.Response, o *options) (result.Result, error) {
	raw, err := readBody(ctx, resp.Body, o.maxBody)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return result.Result{}, ctxErr
		}
		return readFailure(err), nil
	}

	ct, hasType := headerContentType(resp)
	if hasType && ct.MediaType == MediaTypeProblemJSON {
		if !SupportedCharset(ct.Charset) {
			return unsupportedCharset(ct.Charset), nil
		}
		if body, err := toUTF8(raw, ct.Charset); err == nil {
			if pd, ok := ParseProblemDetails(body); ok {
				return result.ValidationFailure(pd.Failures()), nil
			}
		}
	}

	text, fail := bodyText(raw, ct, hasType)
	if fail.IsFailure() {
		return fail, nil
	}
	if text == "" {
		text = msgBadRequest
	}
	return result.Failure(text), nil
}

// lenientText returns the trimmed body, or "" when the body is unreadable,
// too large or in a charset that cannot be decoded. Only ctx errors are returned.
func lenientText(ctx context.Context, resp *http.Response, o *options) (string, error) {
	raw, err := readBody(ctx, resp.Body, o.maxBody)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		return "", nil
	}

	ct, hasType := headerContentType(resp)
	text, fail := bodyText(raw, ct, hasType)
	if fail.IsFailure() {
		return "", nil
	}
	return text, nil
}

// bodyText decodes raw as trimmed text. Bodies without a usable content type
// are taken as UTF-8.
func bodyText(raw []byte, ct ContentType, hasType bool) (string, result.Result) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return "", result.Success()
	}
	if hasType && ct.HasCharset {
		if !SupportedCharset(ct.Charset) {
			return "", unsupportedCharset(ct.Charset)
		}
		decoded, err := toUTF8(raw, ct.Charset)
		if err != nil {
			return "", result.Failure(fmt.Sprintf("invalid %s body: %v", ct.Charset, err))
		}
		raw = decoded
	}
	return strings.TrimSpace(string(raw)), result.Success()
}

// statusText prefers the reason phrase the server sent.
func statusText(resp *http.Response) string {
	if _, reason, ok := strings.Cut(resp.Status, " "); ok && reason != "" {
		return reason
	}
	if text := http.StatusText(resp.StatusCode); text != "" {
		return text
	}
	return "Server Error"
}

func headerContentType(resp *http.Response) (ContentType, bool) {
	header := resp.Header.Get("Content-Type")
	if header == "" {
		return ContentType{}, false
	}
	ct, err := ParseContentType(header)
	if err != nil {
		return ContentType{}, false
	}
	return ct, true
}

func requestURL(resp *http.Response) string {
	if resp.Request == nil || resp.Request.URL == nil {
		return ""
	}
	return resp.Request.URL.Redacted()
}

func readFailure(err error) result.Result {
	if errors.Is(err, ErrBodyTooLarge) {
		return result.Failure(err.Error())
	}
	return result.Failure(msgReadBody + ": " + err.Error())
}

func unsupportedCharset(name string) result.Result {
	return result.Failure(msgUnsupportedCharset + ": " + name)
}

func (o *options) debug(resp *http.Response, res result.Result) {
	o.logger.Debug("http response converted",
		logger.Component("httpresult"),
		logger.StatusCode(resp.StatusCode),
		logger.FailureType(res.FailureType()),
	)
}
