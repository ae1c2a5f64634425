package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/cockroachdb/errors"

	"jira-attachment-cli/internal/config"
	"jira-attachment-cli/internal/domain"
	"jira-attachment-cli/internal/logger"
)

// JiraClient implements port.JiraRepository
type JiraClient struct {
	baseURL    string
	authHeader string
	httpClient *http.Client
}

// ClientOption configures a JiraClient
type ClientOption func(*JiraClient)

// WithHTTPClient replaces the default http.Client
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *JiraClient) {
		c.httpClient = hc
	}
}

// NewJiraClient creates a new Jira client.
// The Authorization header is derived once here and reused for every request.
func NewJiraClient(cfg config.JiraConfig, opts ...ClientOption) *JiraClient {
	c := &JiraClient{
		baseURL:    strings.TrimSuffix(cfg.URL, "/"),
		authHeader: BasicAuthHeader(cfg.Email, cfg.APIToken),
		// 타임아웃은 설정하지 않음 (대용량 첨부파일 스트리밍)
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// issueResponse represents the Jira API issue response
type issueResponse struct {
	Key    string `json:"key"`
	Fields struct {
		Attachment []struct {
			ID       string `json:"id"`
			Filename string `json:"filename"`
			MimeType string `json:"mimeType"`
			Size     int64  `json:"size"`
			Content  string `json:"content"`
			Author   struct {
				DisplayName string `json:"displayName"`
			} `json:"author"`
		} `json:"attachment"`
	} `json:"fields"`
}

// GetIssue fetches a Jira issue by its key
func (c *JiraClient) GetIssue(ctx context.Context, issueKey string) (*domain.Issue, error) {
	endpoint := fmt.Sprintf("%s/rest/api/3/issue/%s", c.baseURL, url.PathEscape(issueKey))
	logger.Debug("GetIssue: requesting URL=%s", endpoint)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}
	req.Header.Set("Authorization", c.authHeader)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch issue")
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return nil, newTransportError("get issue "+issueKey, req, resp)
	}

	var issueResp issueResponse
	if err := json.NewDecoder(resp.Body).Decode(&issueResp); err != nil {
		return nil, errors.Wrap(err, "failed to decode response")
	}

	issue := &domain.Issue{Key: issueResp.Key}
	if issue.Key == "" {
		issue.Key = issueKey
	}
	for _, att := range issueResp.Fields.Attachment {
		issue.Attachments = append(issue.Attachments, domain.Attachment{
			ID:       att.ID,
			Filename: att.Filename,
			MimeType: att.MimeType,
			Size:     att.Size,
			URL:      att.Content,
			Author:   att.Author.DisplayName,
		})
	}
	logger.Debug("GetIssue: key=%s, attachments=%d", issue.Key, len(issue.Attachments))

	return issue, nil
}

// OpenAttachment requests an attachment and returns the response body unread,
// so the caller can stream it. A non-2xx status is returned as *TransportError.
func (c *JiraClient) OpenAttachment(ctx context.Context, contentURL string) (io.ReadCloser, error) {
	logger.Debug("OpenAttachment: requesting URL=%s", contentURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, contentURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}
	req.Header.Set("Authorization", c.authHeader)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to download attachment")
	}

	if !isSuccess(resp.StatusCode) {
		defer resp.Body.Close()
		return nil, newTransportError("download attachment", req, resp)
	}

	return resp.Body, nil
}
