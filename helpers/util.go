package helpers

import "strings"

// NormalizeURL brings a user-entered product page address to the canonical
// form used in the source list: https scheme and a trailing slash.
func NormalizeURL(url string) string {
	url = strings.TrimSpace(url)
	if url == "" {
		return url
	}
	if !strings.Contains(url, "https://") {
		url = "https://" + url
	}
	if !strings.HasSuffix(url, "/") {
		url += "/"
	}
	return url
}
