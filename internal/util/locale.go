package util

import (
	"strings"

	"golang.org/x/text/language"
)

// LocaleResolver picks the page language from, in order, an explicit query value,
// the locale cookie, the Accept-Language header and finally the default.
type LocaleResolver struct {
	supported []string
	fallback  string
	matcher   language.Matcher
}

// NewLocaleResolver builds a resolver over the supported locale codes.
func NewLocaleResolver(supported []string, fallback string) *LocaleResolver {
	tags := make([]language.Tag, 0, len(supported))
	codes := make([]string, 0, len(supported))
	for _, code := range supported {
		tag, err := language.Parse(code)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		codes = append(codes, strings.ToLower(code))
	}
	if fallback == "" && len(codes) > 0 {
		fallback = codes[0]
	}

	return &LocaleResolver{
		supported: codes,
		fallback:  strings.ToLower(fallback),
		matcher:   language.NewMatcher(tags),
	}
}

// Resolve returns a supported locale code.
func (r *LocaleResolver) Resolve(query, cookie, acceptLanguage string) string {
	if code, ok := r.lookup(query); ok {
		return code
	}
	if code, ok := r.lookup(cookie); ok {
		return code
	}
	if acceptLanguage != "" && len(r.supported) > 0 {
		tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
		if err == nil && len(tags) > 0 {
			_, index, confidence := r.matcher.Match(tags...)
			if confidence != language.No {
				return r.supported[index]
			}
		}
	}

	return r.fallback
}

// IsSupported reports whether code is one of the configured locales.
func (r *LocaleResolver) IsSupported(code string) bool {
	_, ok := r.lookup(code)

	return ok
}

func (r *LocaleResolver) lookup(code string) (string, bool) {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return "", false
	}
	for _, supported := range r.supported {
		if supported == code {
			return supported, true
		}
	}

	return "", false
}
