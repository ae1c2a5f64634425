package port

import (
	"context"
	"io"

	"jira-attachment-cli/internal/domain"
)

// JiraRepository defines the interface for Jira operations
type JiraRepository interface {
	// GetIssue fetches a Jira issue by its key
	GetIssue(ctx context.Context, issueKey string) (*domain.Issue, error)
	// OpenAttachment starts a download and returns the unread response body.
	// The caller must close it.
	OpenAttachment(ctx context.Context, contentURL string) (io.ReadCloser, error)
}

// ProgressFunc receives human-readable download progress messages.
// progress is 0 when a download starts and 1 once the file is saved.
type ProgressFunc func(progress float64, status string)

// AttachmentDownloader defines the interface for downloading attachments
type AttachmentDownloader interface {
	// Download streams a single attachment to the download directory
	Download(ctx context.Context, att domain.Attachment, onProgress ProgressFunc) (*domain.DownloadResult, error)
}

// Console defines the interactive terminal used by the flow controller
type Console interface {
	// Prompt writes label and reads one line of input
	Prompt(label string) (string, error)
	Info(format string, args ...interface{})
	Success(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}
