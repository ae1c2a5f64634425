package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"

	"jira-attachment-cli/internal/adapter"
	"jira-attachment-cli/internal/config"
	"jira-attachment-cli/internal/logger"
	"jira-attachment-cli/internal/usecase"
)

// env holds the process-level dependencies of a run, swapped out in tests.
type env struct {
	stdin      io.Reader
	stdout     io.Writer
	stderr     io.Writer
	environ    []string
	fs         afero.Fs
	httpClient *http.Client
}

func run(ctx context.Context, args []string, e env) int {
	// 플래그 정의
	flags := pflag.NewFlagSet("jira-attachment", pflag.ContinueOnError)
	flags.SetOutput(e.stderr)
	envFile := flags.String("env-file", config.DefaultEnvFile, "settings file merged into the environment if present")
	outputDir := flags.String("output", config.DefaultOutputDir, "directory the attachment is saved in")
	debug := flags.Bool("debug", false, "enable debug logging on stderr")

	flags.Usage = func() {
		fmt.Fprintf(e.stderr, "Jira attachment downloader\n\n")
		fmt.Fprintf(e.stderr, "Usage:\n")
		fmt.Fprintf(e.stderr, "  jira-attachment [options]\n\n")
		fmt.Fprintf(e.stderr, "Required environment: %s, %s, %s, %s\n\n",
			config.EnvEmail, config.EnvAPIToken, config.EnvBaseURL, config.EnvProjectKey)
		fmt.Fprintf(e.stderr, "Options:\n")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 1
	}
	if *debug {
		logger.SetDebugMode(true)
	}

	// 설정 로드: 네트워크 요청 전에 누락된 항목을 모두 보고
	cfg, err := config.Load(*envFile, e.environ)
	if err != nil {
		fmt.Fprintf(e.stderr, "Configuration error: %v\n", err)
		return 1
	}
	cfg.Output.Dir = *outputDir

	// 어댑터 생성
	var opts []adapter.ClientOption
	if e.httpClient != nil {
		opts = append(opts, adapter.WithHTTPClient(e.httpClient))
	}
	jiraClient := adapter.NewJiraClient(cfg.Jira, opts...)
	downloader := adapter.NewAttachmentDownloader(jiraClient, e.fs, cfg.Output.Dir)
	console := adapter.NewConsole(e.stdin, e.stdout)

	uc := usecase.NewDownloadAttachmentUseCase(jiraClient, downloader, console, cfg.Jira.ProjectKey)

	result, err := uc.Execute(ctx)
	if err != nil {
		fmt.Fprintf(e.stderr, "\nError: %v\n", err)
		return 1
	}
	logger.Debug("run: outcome=%s", result.Outcome)
	return 0
}

func main() {
	os.Exit(run(context.Background(), os.Args[1:], env{
		stdin:   os.Stdin,
		stdout:  os.Stdout,
		stderr:  os.Stderr,
		environ: os.Environ(),
		fs:      afero.NewOsFs(),
	}))
}
