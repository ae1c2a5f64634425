package adapter

import (
	"fmt"
	"io"
	"net/http"
	"strings"
)

// maxErrorBody caps how much of a failed response body is kept.
const maxErrorBody = 4096

// TransportError is returned for any non-2xx response from Jira.
type TransportError struct {
	Op         string
	URL        string
	StatusCode int
	Status     string
	Body       string
}

func (e *TransportError) Error() string {
	body := strings.TrimSpace(e.Body)
	if body == "" {
		return fmt.Sprintf("%s: API error (status %s)", e.Op, e.Status)
	}
	return fmt.Sprintf("%s: API error (status %s): %s", e.Op, e.Status, body)
}

func isSuccess(code int) bool {
	return code >= 200 && code < 300
}

// newTransportError drains up to maxErrorBody bytes of resp.Body.
func newTransportError(op string, req *http.Request, resp *http.Response) *TransportError {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return &TransportError{
		Op:         op,
		URL:        req.URL.String(),
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Body:       string(body),
	}
}
