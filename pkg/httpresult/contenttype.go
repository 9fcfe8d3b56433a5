package httpresult

import (
	"mime"
	"strings"
)

// Family groups media types that share a decoding strategy.
type Family uint8

const (
	FamilyUnknown Family = iota
	FamilyJSON
	FamilyXML
	FamilyText
	FamilyBinary
	FamilyForm
)

func (f Family) String() string {
	switch f {
	case FamilyJSON:
		return "json"
	case FamilyXML:
		return "xml"
	case FamilyText:
		return "text"
	case FamilyBinary:
		return "binary"
	case FamilyForm:
		return "form"
	default:
		return "unknown"
	}
}

// textual reports whether bodies of this family are character data.
func (f Family) textual() bool {
	return f == FamilyJSON || f == FamilyXML || f == FamilyText || f == FamilyForm
}

// ContentType is a parsed Content-Type header.
type ContentType struct {
	MediaType  string            // lower-cased, without parameters
	Charset    string            // lower-cased charset parameter, if any
	HasCharset bool              // whether a charset parameter was present
	Params     map[string]string // all parameters, keys lower-cased
}

// ParseContentType parses a Content-Type header value.
func ParseContentType(header string) (ContentType, error) {
	mediaType, params, err := mime.ParseMediaType(header)
	if err != nil {
		return ContentType{}, err
	}
	ct := ContentType{MediaType: mediaType, Params: params}
	if cs, ok := params["charset"]; ok {
		ct.Charset = strings.ToLower(strings.TrimSpace(cs))
		ct.HasCharset = true
	}
	return ct, nil
}

// Family classifies the media type.
func (c ContentType) Family() Family {
	mt := c.MediaType
	switch {
	case mt == "application/json", mt == "text/json", strings.HasSuffix(mt, "+json"):
		return FamilyJSON
	case mt == "application/xml", mt == "text/xml", strings.HasSuffix(mt, "+xml"):
		return FamilyXML
	case mt == "application/x-www-form-urlencoded", mt == "multipart/form-data":
		return FamilyForm
	case mt == "application/octet-stream", mt == "application/pdf",
		strings.HasPrefix(mt, "image/"), strings.HasPrefix(mt, "video/"), strings.HasPrefix(mt, "audio/"):
		return FamilyBinary
	case strings.HasPrefix(mt, "text/"):
		return FamilyText
	default:
		return FamilyUnknown
	}
}

func (c ContentType) String() string {
	return mime.FormatMediaType(c.MediaType, c.Params)
}
