package config

import (
	"fmt"

	"github.com/alexanderramin/studylog/internal/domain"
	"github.com/spf13/pflag"
)

// Flags holds the raw values of the persistent command-line overrides.
type Flags struct {
	LogPath string
	DocPath string
	Policy  string
	Verbose bool
}

// Register adds the override flags to fs.
func (f *Flags) Register(fs *pflag.FlagSet) {
	fs.StringVar(&f.LogPath, "log", "", "Session log file (default "+DefaultLogPath+")")
	fs.StringVar(&f.DocPath, "doc", "", "Checklist document to rewrite (default "+DefaultDocPath+")")
	fs.StringVar(&f.Policy, "policy", "", "Aggregation policy: part-only or subparts")
	fs.BoolVarP(&f.Verbose, "verbose", "v", false, "Log use-case events to stderr")
}

// Apply overlays the flags that were set on fs onto cfg.
func (f *Flags) Apply(fs *pflag.FlagSet, cfg Config) (Config, error) {
	if fs.Changed("log") {
		cfg.LogPath = f.LogPath
	}
	if fs.Changed("doc") {
		cfg.DocPath = f.DocPath
	}
	if fs.Changed("policy") {
		p, err := domain.ParsePolicy(f.Policy)
		if err != nil {
			return cfg, fmt.Errorf("--policy: %w", err)
		}
		cfg.Policy = p
	}
	if fs.Changed("verbose") {
		cfg.Verbose = f.Verbose
	}
	return cfg, nil
}
