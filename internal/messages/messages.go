// Package messages turns message keys emitted by rules into text.
package messages

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"github.com/gnolang/condlint/internal/lints/inversion"
)

var supported = []language.Tag{
	language.English,
	language.German,
	language.Russian,
	language.Spanish,
}

var translations = map[string]map[language.Tag]string{
	inversion.MsgKey: {
		language.English: "Condition inversion should be avoided.",
		language.German:  "Die Invertierung der Bedingung sollte vermieden werden.",
		language.Russian: "Следует избегать инверсии условий.",
		language.Spanish: "Debe evitarse la inversión de la condición.",
	},
}

var (
	matcher = language.NewMatcher(supported)
	builtin = newCatalog()
)

func newCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for key, texts := range translations {
		for tag, text := range texts {
			// SetString only fails for malformed messages.
			if err := b.SetString(tag, key, text); err != nil {
				panic(err)
			}
		}
	}
	return b
}

// Bundle resolves message keys for one locale.
type Bundle struct {
	tag     language.Tag
	printer *message.Printer
}

// New returns a bundle for the closest supported match of locale.
// An empty or unknown locale selects English.
func New(locale string) *Bundle {
	tag := language.English
	if locale != "" {
		if requested, err := language.Parse(locale); err == nil {
			_, idx, conf := matcher.Match(requested)
			if conf != language.No {
				tag = supported[idx]
			}
		}
	}
	return &Bundle{
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(builtin)),
	}
}

// Locale returns the language the bundle renders.
func (b *Bundle) Locale() language.Tag { return b.tag }

// Text returns the message for key, or the key itself when unknown.
func (b *Bundle) Text(key string) string {
	if _, ok := translations[key]; !ok {
		return key
	}
	return b.printer.Sprintf(key)
}

// Supported lists the available locales.
func Supported() []string {
	out := make([]string, len(supported))
	for i, t := range supported {
		out[i] = t.String()
	}
	return out
}
