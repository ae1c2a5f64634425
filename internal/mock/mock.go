package mock

import (
	"context"
	"fmt"
	"io"
	"strings"

	"jira-attachment-cli/internal/domain"
	"jira-attachment-cli/internal/port"
)

// JiraRepository is a mock implementation of port.JiraRepository
type JiraRepository struct {
	GetIssueFunc       func(ctx context.Context, issueKey string) (*domain.Issue, error)
	OpenAttachmentFunc func(ctx context.Context, contentURL string) (io.ReadCloser, error)

	GetIssueCalls       []string
	OpenAttachmentCalls []string
}

func (m *JiraRepository) GetIssue(ctx context.Context, issueKey string) (*domain.Issue, error) {
	m.GetIssueCalls = append(m.GetIssueCalls, issueKey)
	if m.GetIssueFunc != nil {
		return m.GetIssueFunc(ctx, issueKey)
	}
	return nil, nil
}

func (m *JiraRepository) OpenAttachment(ctx context.Context, contentURL string) (io.ReadCloser, error) {
	m.OpenAttachmentCalls = append(m.OpenAttachmentCalls, contentURL)
	if m.OpenAttachmentFunc != nil {
		return m.OpenAttachmentFunc(ctx, contentURL)
	}
	return io.NopCloser(strings.NewReader("")), nil
}

// AttachmentDownloader is a mock implementation of port.AttachmentDownloader
type AttachmentDownloader struct {
	DownloadFunc func(ctx context.Context, att domain.Attachment, onProgress port.ProgressFunc) (*domain.DownloadResult, error)

	Calls []domain.Attachment
}

func (m *AttachmentDownloader) Download(ctx context.Context, att domain.Attachment, onProgress port.ProgressFunc) (*domain.DownloadResult, error) {
	m.Calls = append(m.Calls, att)
	if m.DownloadFunc != nil {
		return m.DownloadFunc(ctx, att, onProgress)
	}
	return &domain.DownloadResult{Attachment: att, LocalPath: "/downloads/" + att.Filename}, nil
}

// Console is a scripted port.Console. Inputs are consumed in order;
// once exhausted Prompt returns io.EOF. Every printed line is recorded.
type Console struct {
	Inputs  []string
	Prompts []string
	Lines   []string
}

func (m *Console) Prompt(label string) (string, error) {
	m.Prompts = append(m.Prompts, label)
	if len(m.Inputs) == 0 {
		return "", io.EOF
	}
	in := m.Inputs[0]
	m.Inputs = m.Inputs[1:]
	return in, nil
}

func (m *Console) Info(format string, args ...interface{}) {
	m.Lines = append(m.Lines, fmt.Sprintf(format, args...))
}

func (m *Console) Success(format string, args ...interface{}) {
	m.Lines = append(m.Lines, fmt.Sprintf(format, args...))
}

func (m *Console) Warn(format string, args ...interface{}) {
	m.Lines = append(m.Lines, fmt.Sprintf(format, args...))
}

func (m *Console) Error(format string, args ...interface{}) {
	m.Lines = append(m.Lines, fmt.Sprintf(format, args...))
}

// Output joins every recorded line.
func (m *Console) Output() string {
	return strings.Join(m.Lines, "\n")
}
