package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"jira-attachment-cli/internal/domain"
)

func TestExtractIssueKeyFromURL(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		expected string
	}{
		{
			name:     "standard browse URL",
			url:      "https://example.atlassian.net/browse/PROJ-123",
			expected: "PROJ-123",
		},
		{
			name:     "URL with query parameters",
			url:      "https://example.atlassian.net/browse/PROJ-456?filter=123",
			expected: "PROJ-456",
		},
		{
			name:     "software project URL",
			url:      "https://example.atlassian.net/jira/software/projects/PROJ/issues/PROJ-789",
			expected: "PROJ-789",
		},
		{
			name:     "invalid URL - no issue key",
			url:      "https://example.atlassian.net/browse/",
			expected: "",
		},
		{
			name:     "issue key only",
			url:      "ITSM-5239",
			expected: "ITSM-5239",
		},
		{
			name:     "browse segment that is not a key",
			url:      "https://x.io/browse/X?q=1-123",
			expected: "",
		},
		{
			name:     "browse segment not a key, later segment is",
			url:      "https://x.io/browse/board/PROJ-5",
			expected: "PROJ-5",
		},
		{
			name:     "no key anywhere",
			url:      "https://example.atlassian.net/jira/dashboards",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, domain.ExtractIssueKeyFromURL(tt.url))
		})
	}
}

func TestIsIssueKey(t *testing.T) {
	assert.True(t, domain.IsIssueKey("PROJ-1"))
	assert.True(t, domain.IsIssueKey("P2-10"))
	assert.False(t, domain.IsIssueKey("proj-1"))
	assert.False(t, domain.IsIssueKey("PROJ-"))
	assert.False(t, domain.IsIssueKey("-1"))
	assert.False(t, domain.IsIssueKey("PROJ-1-2"))
	assert.False(t, domain.IsIssueKey("PROJ"))
}
