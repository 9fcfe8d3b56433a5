package validator

import (
	"errors"
	"fmt"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v3"
)

// WithLanguage formats default messages in tag, looking them up in cat.
// Formats missing from cat fall back to English.
func WithLanguage(tag language.Tag, cat catalog.Catalog) Option {
	return WithPrinter(message.NewPrinter(tag, message.Catalog(cat)))
}

// LoadCatalog reads a YAML document mapping language tags to translations
// keyed by the English format string:
//
//	de:
//	  "must not be empty": "darf nicht leer sein"
//	  "must be at least %d characters long": "muss mindestens %d Zeichen lang sein"
func LoadCatalog(r io.Reader) (catalog.Catalog, error) {
	var doc map[string]map[string]string
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidCatalog)
		}
		return nil, errors.Join(ErrInvalidCatalog, err)
	}
	if len(doc) == 0 {
		return nil, fmt.Errorf("%w: no languages", ErrInvalidCatalog)
	}

	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for lang, entries := range doc {
		tag, err := language.Parse(lang)
		if err != nil {
			return nil, fmt.Errorf("%w: language %q: %w", ErrInvalidCatalog, lang, err)
		}
		for key, msg := range entries {
			if err := b.SetString(tag, key, msg); err != nil {
				return nil, fmt.Errorf("%w: %s %q: %w", ErrInvalidCatalog, lang, key, err)
			}
		}
	}
	return b, nil
}
