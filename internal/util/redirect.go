package util

import (
	"net/http"
	"strings"
)

// RedirectBase returns the scheme://host origin to use for absolute redirects.
// Forwarded headers are honoured only when trustProxy is set; otherwise appURL wins,
// and the request's own Host is the last resort.
func RedirectBase(r *http.Request, trustProxy bool, appURL string) string {
	if trustProxy {
		host := firstHeaderValue(r.Header.Get("X-Forwarded-Host"))
		if host != "" {
			proto := firstHeaderValue(r.Header.Get("X-Forwarded-Proto"))
			if proto == "" {
				proto = requestScheme(r)
			}

			return proto + "://" + host
		}
	}
	if appURL = strings.TrimRight(strings.TrimSpace(appURL), "/"); appURL != "" {
		return appURL
	}

	return requestScheme(r) + "://" + r.Host
}

func firstHeaderValue(v string) string {
	first, _, _ := strings.Cut(v, ",")

	return strings.TrimSpace(first)
}

func requestScheme(r *http.Request) string {
	if r.TLS != nil {
		return "https"
	}

	return "http"
}
