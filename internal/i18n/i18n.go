package i18n

import (
	"os"
	"strings"
)

// FallbackLanguage is used when detection fails or a key is missing from the
// active catalog.
const FallbackLanguage = "en"

// Translator resolves message keys against a language catalog. It only covers
// the strings the core needs (habit names and reminder content); screen-level
// text is out of scope.
type Translator struct {
	lang string
}

// New creates a translator for the given language. A nil language means
// auto-detect from the environment.
func New(lang *string) *Translator {
	if lang != nil && *lang != "" {
		return &Translator{lang: normalize(*lang)}
	}
	return &Translator{lang: Detect()}
}

// Lang returns the resolved language code.
func (t *Translator) Lang() string {
	return t.lang
}

// T looks up a message key, falling back to English, then to the key itself.
func (t *Translator) T(key string) string {
	if catalog, ok := catalogs[t.lang]; ok {
		if msg, ok := catalog[key]; ok {
			return msg
		}
	}
	if msg, ok := catalogs[FallbackLanguage][key]; ok {
		return msg
	}
	return key
}

// Detect derives the language from the LANG/LC_ALL environment, falling back
// to English for unsupported locales.
func Detect() string {
	for _, env := range []string{"LC_ALL", "LANG"} {
		v := os.Getenv(env)
		if v == "" {
			continue
		}
		lang := normalize(v)
		if _, ok := catalogs[lang]; ok {
			return lang
		}
	}
	return FallbackLanguage
}

// Supported lists the language codes with a catalog.
func Supported() []string {
	return []string{"en", "es", "de"}
}

// IsSupported reports whether a catalog exists for lang.
func IsSupported(lang string) bool {
	_, ok := catalogs[normalize(lang)]
	return ok
}

func normalize(lang string) string {
	// "es_MX.UTF-8" -> "es"
	lang = strings.ToLower(lang)
	if i := strings.IndexAny(lang, "_-."); i > 0 {
		lang = lang[:i]
	}
	return lang
}
