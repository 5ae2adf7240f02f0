package formats

import "net/url"

// isURL reports whether value is an absolute URL with a scheme and
// host.
func isURL(value string) bool {
	u, err := url.Parse(value)
	if err != nil {
		return false
	}
	return u.Scheme != "" && (u.Host != "" || u.Scheme == "file")
}
