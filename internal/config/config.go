package config

import (
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/errors/oserror"
	"gopkg.in/ini.v1"

	"jira-attachment-cli/internal/logger"
)

// Environment variable names read at startup.
const (
	EnvEmail      = "JIRA_EMAIL"
	EnvAPIToken   = "JIRA_API_TOKEN"
	EnvBaseURL    = "JIRA_BASE_URL"
	EnvProjectKey = "JIRA_PROJECT_KEY"
)

// DefaultEnvFile is the settings file merged into the environment when present.
const DefaultEnvFile = ".env"

// DefaultOutputDir is where attachments are written, relative to the working directory.
const DefaultOutputDir = "downloads"

// Config holds all application configuration.
// It is built once at startup and passed explicitly to the components that need it.
type Config struct {
	Jira   JiraConfig
	Output OutputConfig
}

// JiraConfig holds Jira-related settings
type JiraConfig struct {
	URL        string
	Email      string
	APIToken   string
	ProjectKey string
}

// OutputConfig holds output-related settings
type OutputConfig struct {
	Dir string
}

// MissingError reports every required setting that was absent or empty.
type MissingError struct {
	Names []string
}

func (e *MissingError) Error() string {
	return "missing one or more environment variables: " + strings.Join(e.Names, ", ")
}

// Load merges envFile (if it exists) under the live environment and builds a Config.
// Values already present in environ are never overridden by the file.
func Load(envFile string, environ []string) (*Config, error) {
	live := Environ(environ)
	if envFile == "" {
		return FromEnv(live)
	}
	fileEnv, err := LoadEnvFile(envFile)
	if err != nil {
		return nil, err
	}
	return FromEnv(MergeEnv(live, fileEnv))
}

// FromEnv builds a Config from an environment mapping.
func FromEnv(env map[string]string) (*Config, error) {
	cfg := &Config{
		Jira: JiraConfig{
			URL:        env[EnvBaseURL],
			Email:      env[EnvEmail],
			APIToken:   env[EnvAPIToken],
			ProjectKey: env[EnvProjectKey],
		},
		Output: OutputConfig{Dir: DefaultOutputDir},
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that all four required settings are set.
// The returned *MissingError names every missing setting, not just the first.
func (c *Config) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{EnvEmail, c.Jira.Email},
		{EnvAPIToken, c.Jira.APIToken},
		{EnvBaseURL, c.Jira.URL},
		{EnvProjectKey, c.Jira.ProjectKey},
	}

	var missing []string
	for _, r := range required {
		if r.value == "" {
			missing = append(missing, r.name)
		}
	}
	if len(missing) > 0 {
		return &MissingError{Names: missing}
	}
	return nil
}

// LoadEnvFile reads KEY=VALUE pairs from a dotenv style file.
// A missing file yields an empty map and no error. Lines that are not
// KEY=VALUE are skipped, and keys under a [section] header are kept.
func LoadEnvFile(path string) (map[string]string, error) {
	if _, err := os.Stat(path); err != nil {
		if oserror.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, errors.Wrapf(err, "failed to stat env file %s", path)
	}

	f, err := ini.LoadSources(ini.LoadOptions{
		KeyValueDelimiters:       "=",
		SpaceBeforeInlineComment: true,
		SkipUnrecognizableLines:  true,
	}, path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse env file %s", path)
	}

	values := make(map[string]string)
	for _, section := range f.Sections() {
		for _, key := range section.Keys() {
			// "export KEY=value" 형식도 허용
			name := strings.TrimSpace(strings.TrimPrefix(key.Name(), "export "))
			values[name] = key.Value()
		}
	}
	logger.Debug("LoadEnvFile: %d keys loaded from %s", len(values), path)
	return values, nil
}

// MergeEnv returns live overlaid on file: a file value is used only when
// the key is absent from live. Neither argument is modified.
func MergeEnv(live, file map[string]string) map[string]string {
	merged := make(map[string]string, len(live)+len(file))
	for k, v := range file {
		merged[k] = v
	}
	for k, v := range live {
		merged[k] = v
	}
	return merged
}

// Environ converts os.Environ style "KEY=VALUE" pairs into a map.
func Environ(pairs []string) map[string]string {
	env := make(map[string]string, len(pairs))
	for _, kv := range pairs {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		env[k] = v
	}
	return env
}
