// Package locale holds the localized strings used by the driver and the
// processor, keyed by MessageID.
package locale

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

var builder = catalog.NewBuilder(catalog.Fallback(language.English))

func init() {
	register(language.English, english)
	register(language.Spanish, spanish)
}

func register(tag language.Tag, table map[MessageID]string) {
	for id, text := range english {
		if localized, ok := table[id]; ok {
			text = localized
		}
		if err := builder.SetString(tag, string(id), text); err != nil {
			panic(fmt.Sprintf("locale: %s/%s: %v", tag, id, err))
		}
	}
}

// Localizer formats messages in one language.
type Localizer struct {
	tag     language.Tag
	printer *message.Printer
}

// New returns a Localizer for the closest supported match of name, or
// English when name is empty.
func New(name string) (*Localizer, error) {
	l := &Localizer{}
	if name == "" {
		l.use(language.English)
		return l, nil
	}
	if err := l.SetLanguage(name); err != nil {
		return nil, err
	}
	return l, nil
}

// SetLanguage switches to the closest supported match of name. Names may
// use "_" or "-" separators ("es", "en_gb", "es-MX").
func (l *Localizer) SetLanguage(name string) error {
	tag, err := language.Parse(strings.ReplaceAll(name, "_", "-"))
	if err != nil {
		return fmt.Errorf("locale: %q: %w", name, err)
	}
	supported := builder.Languages()
	_, index, confidence := language.NewMatcher(supported).Match(tag)
	if confidence == language.No {
		return fmt.Errorf("locale: no translation for %q", name)
	}
	l.use(supported[index])
	return nil
}

func (l *Localizer) use(tag language.Tag) {
	l.tag = tag
	l.printer = message.NewPrinter(tag, message.Catalog(builder))
}

// Language returns the active language.
func (l *Localizer) Language() language.Tag {
	return l.tag
}

// Sprintf formats the message id with args.
func (l *Localizer) Sprintf(id MessageID, args ...interface{}) string {
	return l.printer.Sprintf(string(id), args...)
}

// String returns the message id without substitutions.
func (l *Localizer) String(id MessageID) string {
	return l.printer.Sprintf(string(id))
}

// Languages lists the supported languages.
func Languages() []language.Tag {
	return builder.Languages()
}
