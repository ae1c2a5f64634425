package adapter

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/dustin/go-humanize"
	"github.com/spf13/afero"

	"jira-attachment-cli/internal/domain"
	"jira-attachment-cli/internal/logger"
	"jira-attachment-cli/internal/port"
)

// ChunkSize is the read/write unit used while streaming an attachment.
const ChunkSize = 8192

// AttachmentDownloader implements port.AttachmentDownloader
type AttachmentDownloader struct {
	jiraRepo  port.JiraRepository
	fs        afero.Fs
	outputDir string
}

// NewAttachmentDownloader creates a new attachment downloader
func NewAttachmentDownloader(jiraRepo port.JiraRepository, fs afero.Fs, outputDir string) *AttachmentDownloader {
	return &AttachmentDownloader{
		jiraRepo:  jiraRepo,
		fs:        fs,
		outputDir: outputDir,
	}
}

// Download streams att into the output directory, overwriting any file of
// the same name. Nothing is written if the server answers with a non-2xx status.
func (d *AttachmentDownloader) Download(ctx context.Context, att domain.Attachment, onProgress port.ProgressFunc) (*domain.DownloadResult, error) {
	defer logger.DebugFunc("AttachmentDownloader.Download")()
	if onProgress == nil {
		onProgress = func(float64, string) {}
	}

	absOutputDir, err := filepath.Abs(d.outputDir)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to resolve output directory %s", d.outputDir)
	}
	if err := d.fs.MkdirAll(absOutputDir, 0755); err != nil {
		return nil, errors.Wrap(err, "failed to create output directory")
	}

	onProgress(0, "⬇️ Downloading: "+att.Filename)

	body, err := d.jiraRepo.OpenAttachment(ctx, att.URL)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	localPath := targetPath(absOutputDir, att.Filename)
	f, err := d.fs.OpenFile(localPath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create %s", localPath)
	}

	n, copyErr := CopyChunks(f, body)
	closeErr := f.Close()
	if copyErr != nil {
		return nil, errors.Wrapf(copyErr, "failed to write %s", localPath)
	}
	if closeErr != nil {
		return nil, errors.Wrapf(closeErr, "failed to close %s", localPath)
	}
	logger.Debug("Download: wrote %s to %s", humanize.IBytes(uint64(n)), localPath)

	onProgress(1, "✅ Saved to: "+localPath)

	return &domain.DownloadResult{
		Attachment: att,
		LocalPath:  localPath,
		Bytes:      n,
	}, nil
}

// targetPath joins the server-supplied filename onto dir without sanitizing it.
// An absolute filename replaces dir, the same as joining OS paths does.
func targetPath(dir, filename string) string {
	if filepath.IsAbs(filename) {
		return filename
	}
	return filepath.Join(dir, filename)
}

// CopyChunks copies src to dst reading at most ChunkSize bytes at a time.
// Unlike io.Copy it never hands off to ReaderFrom/WriterTo, so memory use stays bounded.
func CopyChunks(dst io.Writer, src io.Reader) (int64, error) {
	buf := make([]byte, ChunkSize)
	var written int64
	for {
		nr, rerr := src.Read(buf)
		if nr > 0 {
			nw, werr := dst.Write(buf[:nr])
			written += int64(nw)
			if werr != nil {
				return written, werr
			}
			if nw != nr {
				return written, io.ErrShortWrite
			}
		}
		if rerr == io.EOF {
			return written, nil
		}
		if rerr != nil {
			return written, rerr
		}
	}
}
