package domain

import "fmt"

// bytesPerMB is the divisor used for attachment size display (MiB).
const bytesPerMB = 1024 * 1024

// Issue represents a Jira issue. Only its attachment list is consumed.
type Issue struct {
	Key         string       `json:"key"`
	Attachments []Attachment `json:"attachments"`
}

// Attachment represents a file attached to a Jira issue.
// Its identity is its position in Issue.Attachments at fetch time.
type Attachment struct {
	ID       string `json:"id"`
	Filename string `json:"filename"`
	MimeType string `json:"mimeType"`
	Size     int64  `json:"size"`
	URL      string `json:"content"`
	Author   string `json:"author"`
}

// SizeMB returns the attachment size in mebibytes.
func (a Attachment) SizeMB() float64 {
	return float64(a.Size) / bytesPerMB
}

// DisplaySize formats the size with two decimals, e.g. "1.43 MB".
func (a Attachment) DisplaySize() string {
	return fmt.Sprintf("%.2f MB", a.SizeMB())
}

// DownloadResult represents the result of downloading an attachment
type DownloadResult struct {
	Attachment Attachment
	LocalPath  string
	Bytes      int64
}
