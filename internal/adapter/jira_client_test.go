package adapter_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jira-attachment-cli/internal/adapter"
	"jira-attachment-cli/internal/config"
)

const issueJSON = `{
  "key": "PROJ-7",
  "fields": {
    "summary": "ignored",
    "attachment": [
      {"id": "10", "filename": "a.png", "mimeType": "image/png", "size": 1048576,
       "content": "https://example.atlassian.net/rest/api/3/attachment/content/10",
       "author": {"displayName": "Ann"}},
      {"id": "11", "filename": "b.log", "mimeType": "text/plain", "size": 1500000,
       "content": "https://example.atlassian.net/rest/api/3/attachment/content/11",
       "author": {"displayName": "Bob"}}
    ]
  }
}`

func jiraConfig(baseURL string) config.JiraConfig {
	return config.JiraConfig{
		URL:        baseURL,
		Email:      "me@example.com",
		APIToken:   "token",
		ProjectKey: "PROJ",
	}
}

func TestJiraClient_GetIssue(t *testing.T) {
	// Arrange
	var gotPath, gotAuth, gotAccept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotAccept = r.Header.Get("Accept")
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, issueJSON)
	}))
	defer srv.Close()

	// 끝의 "/"는 제거되어야 함
	client := adapter.NewJiraClient(jiraConfig(srv.URL+"/"), adapter.WithHTTPClient(srv.Client()))

	// Act
	issue, err := client.GetIssue(context.Background(), "PROJ-7")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "/rest/api/3/issue/PROJ-7", gotPath)
	assert.Equal(t, adapter.BasicAuthHeader("me@example.com", "token"), gotAuth)
	assert.Equal(t, "application/json", gotAccept)

	assert.Equal(t, "PROJ-7", issue.Key)
	require.Len(t, issue.Attachments, 2)
	first := issue.Attachments[0]
	assert.Equal(t, "10", first.ID)
	assert.Equal(t, "a.png", first.Filename)
	assert.Equal(t, "image/png", first.MimeType)
	assert.Equal(t, int64(1048576), first.Size)
	assert.Equal(t, "https://example.atlassian.net/rest/api/3/attachment/content/10", first.URL)
	assert.Equal(t, "Ann", first.Author)
	assert.Equal(t, "b.log", issue.Attachments[1].Filename)
}

func TestJiraClient_GetIssue_EscapesKeyInPath(t *testing.T) {
	tests := []struct {
		key     string
		escaped string
	}{
		{"PROJ-12 3", "/rest/api/3/issue/PROJ-12%203"},
		{"PROJ-1#x", "/rest/api/3/issue/PROJ-1%23x"},
		{"PROJ-1?a=b", "/rest/api/3/issue/PROJ-1%3Fa=b"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			var gotPath, gotEscaped, gotQuery string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				gotEscaped = r.URL.EscapedPath()
				gotQuery = r.URL.RawQuery
				_, _ = io.WriteString(w, `{"key":"PROJ-1","fields":{}}`)
			}))
			defer srv.Close()

			client := adapter.NewJiraClient(jiraConfig(srv.URL), adapter.WithHTTPClient(srv.Client()))
			_, err := client.GetIssue(context.Background(), tt.key)

			require.NoError(t, err)
			assert.Equal(t, "/rest/api/3/issue/"+tt.key, gotPath)
			assert.Equal(t, tt.escaped, gotEscaped)
			assert.Empty(t, gotQuery)
		})
	}
}

func TestJiraClient_GetIssue_NoAttachmentField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"key": "PROJ-1", "fields": map[string]any{}})
	}))
	defer srv.Close()

	client := adapter.NewJiraClient(jiraConfig(srv.URL), adapter.WithHTTPClient(srv.Client()))
	issue, err := client.GetIssue(context.Background(), "PROJ-1")

	require.NoError(t, err)
	assert.Empty(t, issue.Attachments)
}

func TestJiraClient_GetIssue_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"errorMessages":["Issue does not exist"]}`)
	}))
	defer srv.Close()

	client := adapter.NewJiraClient(jiraConfig(srv.URL), adapter.WithHTTPClient(srv.Client()))
	issue, err := client.GetIssue(context.Background(), "PROJ-404")

	require.Error(t, err)
	assert.Nil(t, issue)

	var transportErr *adapter.TransportError
	require.True(t, errors.As(err, &transportErr))
	assert.Equal(t, http.StatusNotFound, transportErr.StatusCode)
	assert.Contains(t, transportErr.Body, "Issue does not exist")
	assert.Contains(t, err.Error(), "404")
	assert.Contains(t, err.Error(), "Issue does not exist")
}

func TestJiraClient_GetIssue_MalformedJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"fields": [`)
	}))
	defer srv.Close()

	client := adapter.NewJiraClient(jiraConfig(srv.URL), adapter.WithHTTPClient(srv.Client()))
	_, err := client.GetIssue(context.Background(), "PROJ-1")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode response")
}

func TestJiraClient_OpenAttachment(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = io.WriteString(w, "binary-payload")
	}))
	defer srv.Close()

	client := adapter.NewJiraClient(jiraConfig(srv.URL), adapter.WithHTTPClient(srv.Client()))
	body, err := client.OpenAttachment(context.Background(), srv.URL+"/rest/api/3/attachment/content/10")
	require.NoError(t, err)
	defer body.Close()

	data, err := io.ReadAll(body)
	require.NoError(t, err)
	assert.Equal(t, "binary-payload", string(data))
	assert.Equal(t, adapter.BasicAuthHeader("me@example.com", "token"), gotAuth)
}

func TestJiraClient_OpenAttachment_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "forbidden", http.StatusForbidden)
	}))
	defer srv.Close()

	client := adapter.NewJiraClient(jiraConfig(srv.URL), adapter.WithHTTPClient(srv.Client()))
	body, err := client.OpenAttachment(context.Background(), srv.URL+"/att")

	require.Error(t, err)
	assert.Nil(t, body)
	var transportErr *adapter.TransportError
	require.True(t, errors.As(err, &transportErr))
	assert.Equal(t, http.StatusForbidden, transportErr.StatusCode)
	assert.Equal(t, "download attachment", transportErr.Op)
}
