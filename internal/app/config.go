package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	DocPath   string // file or directory of documents
	SweepPath string // explicit sweep document
	RunPath   string // explicit run document

	OutDir    string // when set, materialize trials here
	Trials    int    // trial count (grid: 0 = full enumeration)
	Seed      int64  // RNG seed for the random method
	CheckData bool   // probe data archives referenced by the run document

	LogFormat       string
	LogLevel        string
	HealthcheckPort int
	WorkerCount     int
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.DocPath == "" && cfg.SweepPath == "" && cfg.RunPath == "" {
		return nil, errors.New("at least one document path is required")
	}
	if cfg.Trials < 0 {
		return nil, errors.New("trial count cannot be negative")
	}

	return &cfg, nil
}

// paths collects every configured document path for the loader.
func (c *Config) paths() []string {
	var out []string
	for _, p := range []string{c.DocPath, c.SweepPath, c.RunPath} {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
