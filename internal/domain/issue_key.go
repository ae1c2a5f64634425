package domain

import "strings"

// ExtractIssueKeyFromURL extracts the issue key from a Jira URL such as
// https://example.atlassian.net/browse/PROJ-123. Only segments shaped like
// PROJ-123 are returned, including the one after /browse/; "" means none.
func ExtractIssueKeyFromURL(url string) string {
	parts := strings.Split(url, "/")
	for i, part := range parts {
		if part == "browse" && i+1 < len(parts) {
			if key := strings.Split(parts[i+1], "?")[0]; IsIssueKey(key) {
				return key
			}
			break
		}
	}

	for _, part := range parts {
		cleaned := strings.Split(part, "?")[0]
		if IsIssueKey(cleaned) {
			return cleaned
		}
	}

	return ""
}

// IsIssueKey reports whether s looks like PROJ-123.
func IsIssueKey(s string) bool {
	prefix, number, ok := strings.Cut(s, "-")
	if !ok || prefix == "" || number == "" {
		return false
	}
	for _, c := range prefix {
		if (c < 'A' || c > 'Z') && (c < '0' || c > '9') {
			return false
		}
	}
	for _, c := range number {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
