package entity

import (
	"fmt"
	"net/netip"
	"net/url"
	"strings"
	"unicode/utf8"
)

// maxURLLength defines the maximum allowed length for URLs to prevent DoS attacks.
const maxURLLength = 2048

// ValidateURL validates an outbound link such as an advertisement target.
// It checks that the URL is well-formed, uses HTTP/HTTPS scheme, and has a valid host.
// Literal loopback/private IP hosts are rejected; hostnames are not resolved.
func ValidateURL(field, rawURL string) error {
	if rawURL == "" {
		return &ValidationError{Field: field, Message: "URL is required"}
	}

	if len(rawURL) > maxURLLength {
		return &ValidationError{
			Field:   field,
			Message: fmt.Sprintf("url must not exceed %d characters", maxURLLength),
		}
	}

	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return &ValidationError{Field: field, Message: "URL is malformed"}
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return &ValidationError{Field: field, Message: "URL must use http or https scheme"}
	}

	if parsedURL.Host == "" {
		return &ValidationError{Field: field, Message: "URL must have a valid host"}
	}

	host := parsedURL.Hostname()
	if strings.EqualFold(host, "localhost") {
		return &ValidationError{Field: field, Message: "url cannot point to private network"}
	}
	if addr, err := netip.ParseAddr(host); err == nil && isPrivateHost(addr) {
		return &ValidationError{Field: field, Message: "url cannot point to private network"}
	}

	return nil
}

// ValidateImageRef accepts either an absolute http(s) URL or a rooted path
// such as "/uploads/cover.jpg". Empty is allowed.
func ValidateImageRef(field, ref string) error {
	if ref == "" {
		return nil
	}
	if len(ref) > maxURLLength {
		return &ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must not exceed %d characters", maxURLLength),
		}
	}
	if strings.HasPrefix(ref, "/") && !strings.HasPrefix(ref, "//") {
		if strings.Contains(ref, "..") {
			return &ValidationError{Field: field, Message: "path must not contain '..'"}
		}
		return nil
	}
	u, err := url.Parse(ref)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return &ValidationError{Field: field, Message: "must be an http(s) URL or an absolute path"}
	}
	return nil
}

// ValidateRequired returns a ValidationError when value is blank.
func ValidateRequired(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{Field: field, Message: "is required"}
	}
	return nil
}

// ValidateMaxLength returns a ValidationError when value has more than max runes.
func ValidateMaxLength(field, value string, max int) error {
	if utf8.RuneCountInString(value) > max {
		return &ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must not exceed %d characters", max),
		}
	}
	return nil
}

// isPrivateHost reports loopback, link-local (cloud metadata included),
// RFC 1918 / RFC 4193 and unspecified addresses.
func isPrivateHost(addr netip.Addr) bool {
	addr = addr.Unmap()
	return addr.IsLoopback() || addr.IsLinkLocalUnicast() || addr.IsPrivate() || addr.IsUnspecified()
}
