package util

import (
	"crypto/tls"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocaleResolver_Resolve(t *testing.T) {
	t.Parallel()

	resolver := NewLocaleResolver([]string{"en", "ru"}, "en")

	tests := []struct {
		name           string
		query          string
		cookie         string
		acceptLanguage string
		expected       string
	}{
		{name: "query wins", query: "ru", cookie: "en", acceptLanguage: "en-US", expected: "ru"},
		{name: "query case-insensitive", query: "RU", expected: "ru"},
		{name: "unsupported query falls to cookie", query: "fr", cookie: "ru", expected: "ru"},
		{name: "header negotiated", acceptLanguage: "ru-RU,ru;q=0.9,en;q=0.5", expected: "ru"},
		{name: "unmatched header uses default", acceptLanguage: "ja-JP", expected: "en"},
		{name: "garbage header uses default", acceptLanguage: ";;;", expected: "en"},
		{name: "nothing given", expected: "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, resolver.Resolve(tt.query, tt.cookie, tt.acceptLanguage))
		})
	}
}

func TestLocaleResolver_DefaultsToFirstSupported(t *testing.T) {
	t.Parallel()

	resolver := NewLocaleResolver([]string{"ru", "en"}, "")

	assert.Equal(t, "ru", resolver.Resolve("", "", ""))
	assert.True(t, resolver.IsSupported("EN"))
	assert.False(t, resolver.IsSupported("de"))
}

func TestRedirectBase(t *testing.T) {
	t.Parallel()

	t.Run("forwarded headers trusted", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest("GET", "http://10.0.0.5:3000/", nil)
		r.Header.Set("X-Forwarded-Host", "shop.example.com, proxy.internal")
		r.Header.Set("X-Forwarded-Proto", "https")

		assert.Equal(t, "https://shop.example.com", RedirectBase(r, true, "https://fallback.example.com"))
	})

	t.Run("forwarded headers ignored without trust", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest("GET", "http://10.0.0.5:3000/", nil)
		r.Header.Set("X-Forwarded-Host", "evil.example.com")

		assert.Equal(t, "https://shop.example.com", RedirectBase(r, false, "https://shop.example.com/"))
	})

	t.Run("request host as last resort", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest("GET", "http://localhost:3000/", nil)

		assert.Equal(t, "http://localhost:3000", RedirectBase(r, false, ""))
	})

	t.Run("tls request", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest("GET", "https://localhost/", nil)
		r.TLS = &tls.ConnectionState{}
		r.Header.Set("X-Forwarded-Host", "shop.example.com")

		assert.Equal(t, "https://shop.example.com", RedirectBase(r, true, ""))
	})
}
