package httpresult

import (
	"bytes"
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/url"

	"github.com/dmitrymomot/outcome/pkg/result"
)

// decoder describes how one entry point turns a 2xx body into a T.
type decoder[T any] struct {
	// expect names the family reported in mismatch failures.
	expect Family
	// accepts filters content types; nil accepts any.
	accepts func(Family) bool
	// raw skips content-type negotiation and charset transcoding.
	raw bool

	decode func(ct ContentType, body []byte, o *options) result.Of[T]
}

// Read decodes a 2xx body according to its content type: JSON and XML into
// T, forms into url.Values. A []byte target receives the body of any content
// type untouched apart from charset transcoding, and a string target receives
// any textual body.
func Read[T any](ctx context.Context, resp *http.Response, opts ...Option) (result.Of[T], error) {
	return receive(ctx, resp, opts, decoder[T]{decode: decodeAny[T]})
}

// ReadJSON decodes a 2xx JSON body, including +json media types, into T.
func ReadJSON[T any](ctx context.Context, resp *http.Response, opts ...Option) (result.Of[T], error) {
	return receive(ctx, resp, opts, decoder[T]{
		expect:  FamilyJSON,
		accepts: only(FamilyJSON),
		decode: func(_ ContentType, body []byte, o *options) result.Of[T] {
			return decodeJSON[T](body, o)
		},
	})
}

// ReadXML decodes a 2xx XML body into T.
func ReadXML[T any](ctx context.Context, resp *http.Response, opts ...Option) (result.Of[T], error) {
	return receive(ctx, resp, opts, decoder[T]{
		expect:  FamilyXML,
		accepts: only(FamilyXML),
		decode: func(_ ContentType, body []byte, _ *options) result.Of[T] {
			return decodeXML[T](body)
		},
	})
}

// ReadText returns a 2xx body of any textual content type as UTF-8 text.
func ReadText(ctx context.Context, resp *http.Response, opts ...Option) (result.Of[string], error) {
	return receive(ctx, resp, opts, decoder[string]{
		expect:  FamilyText,
		accepts: Family.textual,
		decode: func(_ ContentType, body []byte, _ *options) result.Of[string] {
			return result.Ok(string(body))
		},
	})
}

// ReadBytes returns a 2xx body untouched, whatever its content type.
// Unlike the other readers it does not fail on a missing Content-Type header
// and never validates or transcodes the charset.
func ReadBytes(ctx context.Context, resp *http.Response, opts ...Option) (result.Of[[]byte], error) {
	return receive(ctx, resp, opts, decoder[[]byte]{
		raw: true,
		decode: func(_ ContentType, body []byte, _ *options) result.Of[[]byte] {
			return result.Ok(body)
		},
	})
}

// ReadForm parses a 2xx urlencoded or multipart form body. File parts of a
// multipart body are dropped.
func ReadForm(ctx context.Context, resp *http.Response, opts ...Option) (result.Of[url.Values], error) {
	return receive(ctx, resp, opts, decoder[url.Values]{
		expect:  FamilyForm,
		accepts: only(FamilyForm),
		decode:  decodeForm,
	})
}

func receive[T any](ctx context.Context, resp *http.Response, opts []Option, d decoder[T]) (result.Of[T], error) {
	if resp == nil {
		panic(ErrNilResponse)
	}
	defer closeBody(resp)
	o := newOptions(opts)

	if err := ctx.Err(); err != nil {
		return result.Of[T]{}, err
	}
	if !isSuccess(resp.StatusCode) {
		res, err := triage(ctx, resp, o)
		if err != nil {
			return result.Of[T]{}, err
		}
		o.debug(resp, res)
		return result.Fail[T](res), nil
	}

	raw, err := readBody(ctx, resp.Body, o.maxBody)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return result.Of[T]{}, ctxErr
		}
		return result.Fail[T](readFailure(err)), nil
	}

	out := d.run(resp, raw, o)
	o.debug(resp, out.Result())
	return out, nil
}

func (d decoder[T]) run(resp *http.Response, raw []byte, o *options) result.Of[T] {
	if len(bytes.TrimSpace(raw)) == 0 {
		var zero T
		return result.Ok(zero)
	}
	if d.raw {
		ct, _ := headerContentType(resp)
		return d.decode(ct, raw, o)
	}

	header := resp.Header.Get("Content-Type")
	if header == "" {
		return result.FailureOf[T](msgMissingContentType)
	}
	ct, err := ParseContentType(header)
	if err != nil {
		return result.FailureOf[T](fmt.Sprintf("%s: %s", msgInvalidContentType, header))
	}

	family := ct.Family()
	if d.accepts != nil && !d.accepts(family) {
		return result.FailureOf[T](fmt.Sprintf("%s: expected %s, got %s", msgTypeMismatch, d.expect, ct.MediaType))
	}

	body := raw
	if family.textual() {
		if !SupportedCharset(ct.Charset) {
			return result.Fail[T](unsupportedCharset(ct.Charset))
		}
		if body, err = toUTF8(raw, ct.Charset); err != nil {
			return result.FailureOf[T](fmt.Sprintf("invalid %s body: %v", ct.Charset, err))
		}
	}
	return d.decode(ct, body, o)
}

func only(f Family) func(Family) bool {
	return func(got Family) bool { return got == f }
}

func decodeAny[T any](ct ContentType, body []byte, o *options) result.Of[T] {
	var v T
	family := ct.Family()

	// []byte and string targets take the body as is, whatever its family.
	switch p := any(&v).(type) {
	case *[]byte:
		*p = body
		return result.Ok(v)
	case *string:
		if family == FamilyBinary || family == FamilyUnknown {
			return cannotDecode[T](ct)
		}
		*p = string(body)
		return result.Ok(v)
	}

	switch family {
	case FamilyJSON:
		return decodeJSON[T](body, o)
	case FamilyXML:
		return decodeXML[T](body)
	case FamilyUnknown:
		return result.FailureOf[T](msgUnsupportedType + ": " + ct.MediaType)
	}

	if _, ok := any(&v).(*url.Values); ok && family == FamilyForm {
		// T is url.Values here.
		return any(decodeForm(ct, body, o)).(result.Of[T])
	}
	return cannotDecode[T](ct)
}

func decodeJSON[T any](body []byte, o *options) result.Of[T] {
	var v T
	dec := json.NewDecoder(bytes.NewReader(body))
	if o.strictJSON {
		dec.DisallowUnknownFields()
	}
	if err := dec.Decode(&v); err != nil {
		return result.FailureOf[T]("invalid json: " + err.Error())
	}
	return result.Ok(v)
}

func decodeXML[T any](body []byte) result.Of[T] {
	var v T
	if err := xml.Unmarshal(body, &v); err != nil {
		return result.FailureOf[T]("invalid xml: " + err.Error())
	}
	return result.Ok(v)
}

func decodeForm(ct ContentType, body []byte, o *options) result.Of[url.Values] {
	if ct.MediaType != "multipart/form-data" {
		values, err := url.ParseQuery(string(body))
		if err != nil {
			return result.FailureOf[url.Values]("invalid form: " + err.Error())
		}
		return result.Ok(values)
	}

	boundary := ct.Params["boundary"]
	if boundary == "" {
		return result.FailureOf[url.Values]("invalid form: missing multipart boundary")
	}
	form, err := multipart.NewReader(bytes.NewReader(body), boundary).ReadForm(o.maxBody)
	if err != nil {
		return result.FailureOf[url.Values]("invalid form: " + err.Error())
	}
	defer func() { _ = form.RemoveAll() }()
	return result.Ok(url.Values(form.Value))
}

func cannotDecode[T any](ct ContentType) result.Of[T] {
	var v T
	return result.FailureOf[T](fmt.Sprintf("cannot decode %s into %T", ct.MediaType, v))
}
