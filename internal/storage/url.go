// Package storage holds helpers shared by the object storage clients.
package storage

import (
	"net/url"
	"strings"
)

// PublicURL joins a public base URL and an object key, escaping the key.
func PublicURL(baseURL, key string) string {
	return strings.TrimRight(baseURL, "/") + "/" + url.PathEscape(key)
}
