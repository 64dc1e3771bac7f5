package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Paths []string // .hcl files or directories
	Only  string   // print a single enumeration when set

	LogFormat string
	LogLevel  string
}

func NewConfig(cfg Config) (*Config, error) {
	if len(cfg.Paths) == 0 {
		return nil, errors.New("at least one path to an enumeration file or directory is required")
	}
	return &cfg, nil
}
