// Package backend resolves the base URL of the remote ordering service.
package backend

import (
	"net/url"
	"strings"
)

// Resolve produces the ordering service base URL (no trailing slash) from
// explicit inputs, first match wins:
//
//  1. envURL, the explicitly configured value, if non-blank after trimming
//  2. override, the deploy-time injected value, if non-blank after trimming
//  3. origin with a host suffix of :3000 swapped for :8000, supporting
//     same-machine development where the API runs on the conventional
//     alternate port
//
// The empty string means unresolved; callers must check before issuing
// network calls. Resolution never errors.
func Resolve(envURL, override, origin string) string {
	if v := strings.TrimSpace(envURL); v != "" {
		return strings.TrimSuffix(v, "/")
	}
	if v := strings.TrimSpace(override); v != "" {
		return strings.TrimSuffix(v, "/")
	}
	u, err := url.Parse(strings.TrimSpace(origin))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ""
	}
	host := u.Host
	if strings.HasSuffix(host, ":3000") {
		host = strings.TrimSuffix(host, ":3000") + ":8000"
	}
	return u.Scheme + "://" + host
}
