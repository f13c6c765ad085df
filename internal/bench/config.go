package bench

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds benchmark parameters. Values come from a YAML file, with
// ALIGN_* environment variables taking precedence.
type Config struct {
	CorpusPath      string `yaml:"corpus_path"`
	PredictionsPath string `yaml:"predictions_path"`
	Cutoffs         []int  `yaml:"cutoffs"`
}

// DefaultConfig returns the default benchmark configuration.
func DefaultConfig() Config {
	return Config{
		CorpusPath: "testdata/corpus.wa",
		Cutoffs:    []int{0, 1000, 5000, 10000},
	}
}

// LoadConfig reads a YAML config file, filling missing fields with defaults.
// An empty path skips the file and starts from the defaults. The environment
// variables ALIGN_CORPUS, ALIGN_PREDICTIONS and ALIGN_CUTOFFS (comma-
// separated integers) override both.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if v := os.Getenv("ALIGN_CORPUS"); v != "" {
		cfg.CorpusPath = v
	}
	if v := os.Getenv("ALIGN_PREDICTIONS"); v != "" {
		cfg.PredictionsPath = v
	}
	if v := os.Getenv("ALIGN_CUTOFFS"); v != "" {
		cutoffs, err := parseCutoffs(v)
		if err != nil {
			return Config{}, fmt.Errorf("ALIGN_CUTOFFS: %w", err)
		}
		cfg.Cutoffs = cutoffs
	}

	if cfg.CorpusPath == "" {
		return Config{}, errors.New("config: corpus_path is required")
	}
	if len(cfg.Cutoffs) == 0 {
		cfg.Cutoffs = DefaultConfig().Cutoffs
	}
	return cfg, nil
}

func parseCutoffs(v string) ([]int, error) {
	parts := strings.Split(v, ",")
	cutoffs := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid cutoff %q", p)
		}
		cutoffs = append(cutoffs, n)
	}
	return cutoffs, nil
}
