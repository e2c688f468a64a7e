package config

import (
	"regexp"
	"strings"
)

// Input sanitizers for the three request kinds. The cache layer deliberately
// accepts arbitrary identifiers; rejecting empty or malformed input happens
// here, before any fetch or cache call.

const maxUsernameLength = 15

var (
	controlChars        = regexp.MustCompile(`[\x00-\x08\x0b\x0c\x0e-\x1f\x7f-\x{9f}]`)
	zeroWidthChars      = regexp.MustCompile(`[\x{200b}-\x{200f}\x{2028}-\x{202f}\x{2060}-\x{206f}\x{feff}]`)
	usernameDisallowed  = regexp.MustCompile(`[^a-zA-Z0-9_]`)
	statusIDPattern     = regexp.MustCompile(`/status/(\d+)`)
	bareTweetIDPattern  = regexp.MustCompile(`^\d{10,}$`)
	profileURLPattern   = regexp.MustCompile(`(?:twitter\.com|x\.com)/([a-zA-Z0-9_]+)(?:/|$|\?)`)
	reservedProfilePath = map[string]bool{
		"status": true, "search": true, "explore": true,
		"home": true, "i": true, "intent": true,
	}
)

// SanitizeQuery strips control and zero-width characters from a search
// query, caps it at MaxQueryLength, and trims surrounding whitespace.
// Returns empty string for unusable input.
func SanitizeQuery(query string) string {
	if query == "" {
		return ""
	}

	query = controlChars.ReplaceAllString(query, "")
	query = zeroWidthChars.ReplaceAllString(query, "")

	if runes := []rune(query); len(runes) > MaxQueryLength {
		query = string(runes[:MaxQueryLength])
	}

	return strings.TrimSpace(query)
}

// SanitizeUsername normalizes an X/Twitter handle: leading @ removed,
// characters outside [A-Za-z0-9_] dropped, capped at 15 characters.
func SanitizeUsername(username string) string {
	if username == "" {
		return ""
	}

	username = strings.TrimLeft(username, "@")
	username = controlChars.ReplaceAllString(username, "")
	username = usernameDisallowed.ReplaceAllString(username, "")

	if len(username) > maxUsernameLength {
		username = username[:maxUsernameLength]
	}

	return username
}

// ExtractTweetID pulls the numeric status ID out of an X/Twitter URL.
// A bare 10+ digit ID is accepted as-is. Returns empty string when no ID
// can be extracted.
func ExtractTweetID(url string) string {
	if url == "" {
		return ""
	}

	if m := statusIDPattern.FindStringSubmatch(url); m != nil {
		return m[1]
	}

	if bareTweetIDPattern.MatchString(url) {
		return url
	}

	return ""
}

// ExtractUsernameFromURL pulls the handle out of a profile URL, excluding
// reserved paths like /search and /status.
func ExtractUsernameFromURL(url string) string {
	if url == "" {
		return ""
	}

	m := profileURLPattern.FindStringSubmatch(url)
	if m == nil {
		return ""
	}

	if reservedProfilePath[strings.ToLower(m[1])] {
		return ""
	}

	return m[1]
}
