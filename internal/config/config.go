package config

import (
	"fmt"
	"os"

	"github.com/go-yaml/yaml"

	"github.com/lucidfeed-wq/Lucid-Feed-sub003/scoring"
)

type Config struct {
	Server  Server  `yaml:"server"`
	Scoring Scoring `yaml:"scoring"`
	Ranking Ranking `yaml:"ranking"`
	// VocabularyPath points at the versioned topic vocabulary file.
	VocabularyPath string `yaml:"vocabularyPath"`
}

type Server struct {
	ListenAddr    string `yaml:"listenAddr"`
	PostgresDsn   string `yaml:"postgresDsn"`
	RedisAddr     string `yaml:"redisAddr"`
	RedisDB       int    `yaml:"redisDB"`
	MemcachedAddr string `yaml:"memcachedAddr"`
	EnableTrace   bool   `yaml:"enableTrace"`
	TraceEndpoint string `yaml:"traceEndpoint"`
}

type Scoring struct {
	// Weights are the deployment's subscore weights. They must sum to 1.0.
	Weights map[string]float64 `yaml:"weights"`
}

type Ranking struct {
	// Locale is a BCP 47 tag for title collation, e.g. "en".
	Locale string `yaml:"locale"`
}

func Load(path string) (Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer file.Close()

	var config Config
	err = yaml.NewDecoder(file).Decode(&config)
	if err != nil {
		return Config{}, err
	}

	if config.Server.ListenAddr == "" {
		config.Server.ListenAddr = ":8000"
	}
	if config.Ranking.Locale == "" {
		config.Ranking.Locale = "en"
	}
	if config.VocabularyPath == "" {
		return Config{}, fmt.Errorf("vocabularyPath is required")
	}

	if err := scoring.Weights(config.Scoring.Weights).Validate(); err != nil {
		return Config{}, err
	}

	return config, nil
}
