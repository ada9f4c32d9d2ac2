// Package yakeconfig resolves a yake.Config from outside the code: Load
// applies a YAML file over the built-in defaults, and FromEnv applies
// environment variable overrides over the built-in defaults. The two are
// independent; neither applies the other's layer. This is ambient tooling
// around the core, not a required feature of extraction itself.
package yakeconfig

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"yake"
)

// fileConfig mirrors yake.Config's shape for YAML decoding; yake.Config
// itself carries a Normalize func field that cannot round-trip through
// YAML, so this is a distinct, decode-only type.
type fileConfig struct {
	Language       string  `yaml:"language"`
	N              int     `yaml:"n"`
	TopK           int     `yaml:"top_k"`
	DedupThreshold float64 `yaml:"dedup_threshold"`
	DedupFunction  string  `yaml:"dedup_function"`
	WindowSize     int     `yaml:"window_size"`
	CacheSize      int     `yaml:"cache_size"`
}

// Load reads a YAML config file and decodes it onto yake.DefaultConfig(),
// the same "decode the json/yaml data" shape as config.LoadFromFile, just
// merged onto defaults instead of returned bare.
func Load(path string) (yake.Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return yake.Config{}, err
	}

	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return yake.Config{}, err
	}

	cfg := yake.DefaultConfig()
	if fc.Language != "" {
		cfg.Language = fc.Language
	}
	if fc.N != 0 {
		cfg.N = fc.N
	}
	if fc.TopK != 0 {
		cfg.TopK = fc.TopK
	}
	if fc.DedupThreshold != 0 {
		cfg.DedupThreshold = fc.DedupThreshold
	}
	if fc.DedupFunction != "" {
		cfg.DedupFunction = fc.DedupFunction
	}
	if fc.WindowSize != 0 {
		cfg.WindowSize = fc.WindowSize
	}
	cfg.CacheSize = fc.CacheSize
	return cfg, nil
}

// FromEnv starts from yake.DefaultConfig(), loads a .env file if present
// (optional; a missing file is not an error), and applies YAKE_*
// environment overrides on top. Nothing in the core calls it.
func FromEnv() yake.Config {
	_ = godotenv.Load()

	cfg := yake.DefaultConfig()
	if v := os.Getenv("YAKE_LANGUAGE"); v != "" {
		cfg.Language = v
	}
	if v := envInt("YAKE_N"); v != 0 {
		cfg.N = v
	}
	if v := envInt("YAKE_TOP_K"); v != 0 {
		cfg.TopK = v
	}
	if v := envFloat("YAKE_DEDUP_THRESHOLD"); v != 0 {
		cfg.DedupThreshold = v
	}
	if v := os.Getenv("YAKE_DEDUP_FUNCTION"); v != "" {
		cfg.DedupFunction = strings.ToLower(v)
	}
	if v := envInt("YAKE_WINDOW_SIZE"); v != 0 {
		cfg.WindowSize = v
	}
	return cfg
}

func envInt(name string) int {
	v, err := strconv.Atoi(os.Getenv(name))
	if err != nil {
		return 0
	}
	return v
}

func envFloat(name string) float64 {
	v, err := strconv.ParseFloat(os.Getenv(name), 64)
	if err != nil {
		return 0
	}
	return v
}
