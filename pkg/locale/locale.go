package locale

import (
	"context"
	"strings"
)

// Supported languages
const (
	EN = "en" // English
	ES = "es" // Spanish
)

// DefaultLang is the default language used when no valid locale is provided.
const DefaultLang = EN

// LangList contains all supported language codes.
var LangList = []string{EN, ES}

// Locale is a context key type for storing locale information.
type Locale struct{}

// ParseLang normalizes a language tag such as "es", "ES-mx" or an
// Accept-Language list, falling back to DefaultLang.
func ParseLang(lang string) string {
	lang = strings.TrimSpace(strings.ToLower(lang))
	if i := strings.IndexAny(lang, ",;"); i >= 0 {
		lang = lang[:i]
	}
	if i := strings.IndexAny(lang, "-_"); i >= 0 {
		lang = lang[:i]
	}

	switch lang {
	case EN, "english":
		return EN
	case ES, "spanish", "español", "espanol":
		return ES
	default:
		return DefaultLang
	}
}

// IsValidLang checks if a language code is supported.
func IsValidLang(lang string) bool {
	lang = strings.TrimSpace(strings.ToLower(lang))
	for _, supported := range LangList {
		if lang == supported {
			return true
		}
	}
	return false
}

// GetLang retrieves the locale from context, returning the default if not found.
func GetLang(ctx context.Context) string {
	lang, ok := ctx.Value(Locale{}).(string)
	if !ok || lang == "" {
		return DefaultLang
	}
	return lang
}

// SetLocaleToContext sets the locale in the context for use in handlers.
func SetLocaleToContext(ctx context.Context, lang string) context.Context {
	if !IsValidLang(lang) {
		lang = DefaultLang
	}
	return context.WithValue(ctx, Locale{}, lang)
}
