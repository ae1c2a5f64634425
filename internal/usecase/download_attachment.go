package usecase

import (
	"context"
	"fmt"

	"github.com/cockroachdb/errors"

	"jira-attachment-cli/internal/domain"
	"jira-attachment-cli/internal/logger"
	"jira-attachment-cli/internal/port"
)

// Outcome describes how a run ended without an error.
type Outcome int

const (
	OutcomeDownloaded Outcome = iota
	OutcomeInvalidIdentifier
	OutcomeNoAttachments
)

func (o Outcome) String() string {
	switch o {
	case OutcomeDownloaded:
		return "downloaded"
	case OutcomeInvalidIdentifier:
		return "invalid identifier"
	case OutcomeNoAttachments:
		return "no attachments"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Result is the result of one interactive run
type Result struct {
	Outcome  Outcome
	IssueKey string
	Download *domain.DownloadResult
}

// DownloadAttachmentUseCase asks for an issue, lists its attachments and
// downloads the one the user picks.
type DownloadAttachmentUseCase struct {
	jiraRepo   port.JiraRepository
	downloader port.AttachmentDownloader
	console    port.Console
	projectKey string
}

// NewDownloadAttachmentUseCase creates a new DownloadAttachmentUseCase
func NewDownloadAttachmentUseCase(
	jiraRepo port.JiraRepository,
	downloader port.AttachmentDownloader,
	console port.Console,
	projectKey string,
) *DownloadAttachmentUseCase {
	return &DownloadAttachmentUseCase{
		jiraRepo:   jiraRepo,
		downloader: downloader,
		console:    console,
		projectKey: projectKey,
	}
}

// Execute runs the flow once: prompt, compose key, fetch, list, select, download.
// Invalid identifiers and issues without attachments end the run with a
// message and a nil error.
func (uc *DownloadAttachmentUseCase) Execute(ctx context.Context) (*Result, error) {
	// Step 1: Read issue identifier
	raw, err := uc.console.Prompt(fmt.Sprintf("Enter Jira issue number (e.g. 123). Project will be %s: ", uc.projectKey))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read issue number")
	}

	id, err := ParseIssueID(raw)
	if err != nil {
		uc.console.Warn("Invalid issue identifier.")
		return &Result{Outcome: OutcomeInvalidIdentifier}, nil
	}

	// Step 2: Compose key and fetch
	issueKey := ComposeIssueKey(uc.projectKey, id)
	logger.Debug("Execute: input=%q, issueKey=%s", raw, issueKey)

	issue, err := uc.jiraRepo.GetIssue(ctx, issueKey)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to fetch issue %s", issueKey)
	}

	// Step 3: List attachments
	result := &Result{IssueKey: issueKey}
	if issue == nil || len(issue.Attachments) == 0 {
		uc.console.Warn("❌ No attachments found on this issue.")
		result.Outcome = OutcomeNoAttachments
		return result, nil
	}

	uc.console.Info("\n📎 Attachments for %s:\n", issueKey)
	for i, att := range issue.Attachments {
		uc.console.Info("%s", FormatAttachmentLine(i+1, att))
	}

	// Step 4: Select
	idx, err := uc.promptSelection(len(issue.Attachments))
	if err != nil {
		return nil, err
	}

	// Step 5: Download
	download, err := uc.downloader.Download(ctx, issue.Attachments[idx], uc.reportProgress)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to download %s", issue.Attachments[idx].Filename)
	}

	result.Outcome = OutcomeDownloaded
	result.Download = download
	return result, nil
}

// promptSelection loops until a valid 1..count choice is entered.
func (uc *DownloadAttachmentUseCase) promptSelection(count int) (int, error) {
	for {
		raw, err := uc.console.Prompt("\nSelect attachment number to download: ")
		if err != nil {
			return -1, errors.Wrap(err, "failed to read selection")
		}

		idx, err := ParseSelection(raw, count)
		if err == nil {
			return idx, nil
		}

		var selErr *SelectionError
		if !errors.As(err, &selErr) {
			return -1, err
		}
		uc.console.Warn("%s", selErr.Reason)
	}
}

func (uc *DownloadAttachmentUseCase) reportProgress(progress float64, status string) {
	if progress >= 1 {
		uc.console.Success("%s", status)
		return
	}
	uc.console.Info("\n%s", status)
}
