package utils

import (
	"net/url"
	"regexp"
	"strings"
)

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe = regexp.MustCompile(`^[0-9+\-() ]+$`)
)

// NormalizeEmail lower-cases and trims an email address. Registration and
// login both look up the normalized form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// IsValidEmail reports whether email has a local@domain.tld shape.
func IsValidEmail(email string) bool {
	return emailRe.MatchString(email)
}

// IsValidPhone reports whether phone contains only digits, +, -, spaces and
// parentheses.
func IsValidPhone(phone string) bool {
	return phoneRe.MatchString(phone)
}

// IsTrustedImageURL reports whether raw parses as an http(s) URL whose host
// or path contains the trusted storage marker.
func IsTrustedImageURL(raw, marker string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	if u.Host == "" {
		return false
	}
	return strings.Contains(u.Host, marker) || strings.Contains(u.Path, marker)
}

// IsValidSocialLink reports whether link starts with "http".
func IsValidSocialLink(link string) bool {
	return strings.HasPrefix(link, "http")
}
