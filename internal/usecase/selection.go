package usecase

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"jira-attachment-cli/internal/domain"
)

// ErrEmptyIdentifier is returned when the issue input has no ID part.
var ErrEmptyIdentifier = errors.New("invalid issue identifier")

// Re-prompt messages for the attachment selection loop.
const (
	ReasonNotANumber = "Please enter a number."
	ReasonOutOfRange = "Invalid selection."
)

// SelectionError means the selection input should be asked for again.
type SelectionError struct {
	Reason string
}

func (e *SelectionError) Error() string {
	return e.Reason
}

// ParseIssueID reduces user input to the ID part of an issue key.
// Anything before the first "-" is discarded, so "123" and "PROJ-123" both
// yield "123". When that leaves something other than a plain number and the
// input is a URL such as https://my-co.atlassian.net/browse/PROJ-123, the
// number is taken from the issue key in the URL instead.
func ParseIssueID(raw string) (string, error) {
	input := strings.TrimSpace(raw)

	id := input
	if _, rest, found := strings.Cut(input, "-"); found {
		id = rest
	}
	if !isNumeric(id) && strings.Contains(input, "://") {
		if key := domain.ExtractIssueKeyFromURL(input); key != "" {
			_, id, _ = strings.Cut(key, "-")
		}
	}
	if id == "" {
		return "", ErrEmptyIdentifier
	}
	return id, nil
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// ComposeIssueKey joins the project key and ID part, e.g. "PROJ-123".
func ComposeIssueKey(projectKey, id string) string {
	return projectKey + "-" + id
}

// ParseSelection converts a 1-based menu choice into a 0-based index.
// Non-integers and values outside 1..count return *SelectionError.
func ParseSelection(raw string, count int) (int, error) {
	choice, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return -1, &SelectionError{Reason: ReasonNotANumber}
	}
	if choice < 1 || choice > count {
		return -1, &SelectionError{Reason: ReasonOutOfRange}
	}
	return choice - 1, nil
}

// FormatAttachmentLine renders one entry of the attachment menu.
func FormatAttachmentLine(position int, att domain.Attachment) string {
	return fmt.Sprintf("%d. %s (%s) - uploaded by %s", position, att.Filename, att.DisplaySize(), att.Author)
}
