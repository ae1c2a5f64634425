package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"jira-attachment-cli/internal/domain"
)

func TestAttachment_DisplaySize(t *testing.T) {
	tests := []struct {
		name     string
		size     int64
		expected string
	}{
		{"exactly one MiB", 1048576, "1.00 MB"},
		{"rounded down", 1500000, "1.43 MB"},
		{"empty file", 0, "0.00 MB"},
		{"small file", 1024, "0.00 MB"},
		{"large file", 10 * 1048576, "10.00 MB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			att := domain.Attachment{Filename: "f.bin", Size: tt.size}
			assert.Equal(t, tt.expected, att.DisplaySize())
		})
	}
}

func TestAttachment_SizeMB(t *testing.T) {
	att := domain.Attachment{Size: 524288}
	assert.InDelta(t, 0.5, att.SizeMB(), 1e-9)
}
