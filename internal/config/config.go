// Package config resolves where the session log and the checklist document
// live and which aggregation policy applies.
//
// Sources, lowest precedence first: built-in defaults, an optional JSONC file,
// STUDYLOG_* environment variables, then command-line flags.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/alexanderramin/studylog/internal/domain"
	"github.com/bytedance/sonic"
	"github.com/tailscale/hujson"
)

// FileName is the project config file looked up in the working directory.
const FileName = ".studylog.jsonc"

const (
	DefaultLogPath = "time_log.json"
	DefaultDocPath = "README.md"
)

var (
	errConfigFileRead = errors.New("cannot read config file")
	errConfigInvalid  = errors.New("invalid config")
)

// Config is the resolved runtime configuration.
type Config struct {
	LogPath string
	DocPath string
	Policy  domain.AggregationPolicy
	Verbose bool
	// Source is the config file that was loaded, empty if none.
	Source string
}

// fileConfig mirrors the JSONC file. Pointers distinguish unset from zero.
type fileConfig struct {
	Log      *string `json:"log"`
	Document *string `json:"document"`
	Policy   *string `json:"policy"`
	Verbose  *bool   `json:"verbose"`
}

var fileCodec = sonic.Config{DisallowUnknownFields: true}.Froze()

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		LogPath: DefaultLogPath,
		DocPath: DefaultDocPath,
		Policy:  domain.DefaultPolicy,
	}
}

// LoadOptions parameterises LoadConfig for tests.
type LoadOptions struct {
	WorkDir string
	// Getenv defaults to os.Getenv.
	Getenv func(string) string
}

// LoadConfig layers the config file and environment over the defaults.
// The file is STUDYLOG_CONFIG when set (and must exist), otherwise
// FileName in the working directory (optional).
func LoadConfig(opts LoadOptions) (Config, error) {
	getenv := opts.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	workDir := opts.WorkDir
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return Config{}, fmt.Errorf("finding working directory: %w", err)
		}
		workDir = wd
	}

	cfg := DefaultConfig()

	path, mustExist := filepath.Join(workDir, FileName), false
	if v := getenv("STUDYLOG_CONFIG"); v != "" {
		path, mustExist = resolve(workDir, v), true
	}
	if err := applyFile(&cfg, path, mustExist); err != nil {
		return Config{}, err
	}

	if v := getenv("STUDYLOG_LOG"); v != "" {
		cfg.LogPath = v
	}
	if v := getenv("STUDYLOG_DOC"); v != "" {
		cfg.DocPath = v
	}
	if v := getenv("STUDYLOG_POLICY"); v != "" {
		p, err := domain.ParsePolicy(v)
		if err != nil {
			return Config{}, fmt.Errorf("STUDYLOG_POLICY: %w", err)
		}
		cfg.Policy = p
	}
	if v := getenv("STUDYLOG_VERBOSE"); v != "" {
		cfg.Verbose, _ = strconv.ParseBool(v)
	}

	return cfg, nil
}

func applyFile(cfg *Config, path string, mustExist bool) error {
	data, err := os.ReadFile(path) //nolint:gosec // path is intentionally user-controlled
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !mustExist {
			return nil
		}
		return fmt.Errorf("%w: %s: %w", errConfigFileRead, path, err)
	}

	fc, err := parseFile(data)
	if err != nil {
		return fmt.Errorf("%w %s: %w", errConfigInvalid, path, err)
	}

	// Relative paths in the file are relative to the file itself.
	dir := filepath.Dir(path)
	if fc.Log != nil {
		if *fc.Log == "" {
			return fmt.Errorf("%w %s: log path is empty", errConfigInvalid, path)
		}
		cfg.LogPath = resolve(dir, *fc.Log)
	}
	if fc.Document != nil {
		if *fc.Document == "" {
			return fmt.Errorf("%w %s: document path is empty", errConfigInvalid, path)
		}
		cfg.DocPath = resolve(dir, *fc.Document)
	}
	if fc.Policy != nil {
		p, err := domain.ParsePolicy(*fc.Policy)
		if err != nil {
			return fmt.Errorf("%w %s: %w", errConfigInvalid, path, err)
		}
		cfg.Policy = p
	}
	if fc.Verbose != nil {
		cfg.Verbose = *fc.Verbose
	}
	cfg.Source = path
	return nil
}

func parseFile(data []byte) (fileConfig, error) {
	standardized, err := hujson.Standardize(data)
	if err != nil {
		return fileConfig{}, fmt.Errorf("invalid JSONC: %w", err)
	}
	var fc fileConfig
	if err := fileCodec.Unmarshal(standardized, &fc); err != nil {
		return fileConfig{}, fmt.Errorf("invalid JSON: %w", err)
	}
	return fc, nil
}

func resolve(base, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}
