package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"volscan/pkg/analyzer"
	"volscan/pkg/types"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Endpoint *EndpointConfig `yaml:"endpoint"`
	Fetch    *FetchConfig    `yaml:"fetch"`
	Analysis *AnalysisConfig `yaml:"analysis"`
}

type EndpointConfig struct {
	BaseUrl  string            `yaml:"baseUrl"`
	DataPath string            `yaml:"dataPath"`
	Index    string            `yaml:"index"`
	Referer  string            `yaml:"referer"` // optional, defaults to baseUrl
	Headers  map[string]string `yaml:"headers"` // optional
	Timeout  time.Duration     `yaml:"timeout"`
}

type FetchConfig struct {
	MaxAttempts  int           `yaml:"maxAttempts"`
	Backoff      time.Duration `yaml:"backoff"`
	PrimingPause time.Duration `yaml:"primingPause"`
}

type AnalysisConfig struct {
	Window int `yaml:"window"`
	TopN   int `yaml:"topN"`
}

var yamlFiles = map[types.EnvName]string{
	types.EnvLocal: "volscan.yaml",
	types.EnvDev:   "volscan.dev.yaml",
	types.EnvProd:  "volscan.prod.yaml",
}

func Default() *Config {
	return &Config{
		Endpoint: &EndpointConfig{
			BaseUrl:  "https://www.nseindia.com",
			DataPath: "/api/equity-stockIndices",
			Index:    "NIFTY 50",
			Timeout:  10 * time.Second,
		},
		Fetch: &FetchConfig{
			MaxAttempts:  3,
			Backoff:      5 * time.Second,
			PrimingPause: 2 * time.Second,
		},
		Analysis: &AnalysisConfig{
			Window: analyzer.DefaultWindow,
			TopN:   analyzer.DefaultTopN,
		},
	}
}

// LoadConfig reads the environment's yaml file over the defaults. A missing
// file is not an error.
func LoadConfig(envName types.EnvName) (*Config, error) {
	fileName := yamlFiles[envName]
	if Env.ConfigFile != "" {
		fileName = Env.ConfigFile
	}
	return LoadConfigFile(fileName)
}

func LoadConfigFile(fileName string) (*Config, error) {
	config := Default()

	data, err := os.ReadFile(fileName)
	if errors.Is(err, fs.ErrNotExist) {
		log.Infof("config file '%s' not found, using defaults", fileName)
		return config, nil
	}
	if err != nil {
		return nil, fmt.Errorf("fail to load config file '%s': %w", fileName, err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("fail to decode config file '%s': %w", fileName, err)
	}
	config.fillDefaults()
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file '%s': %w", fileName, err)
	}
	return config, nil
}

// fillDefaults restores sections a file explicitly set to null.
func (c *Config) fillDefaults() {
	def := Default()
	if c.Endpoint == nil {
		c.Endpoint = def.Endpoint
	}
	if c.Fetch == nil {
		c.Fetch = def.Fetch
	}
	if c.Analysis == nil {
		c.Analysis = def.Analysis
	}
}

func (c *Config) Validate() error {
	switch {
	case c.Endpoint.BaseUrl == "":
		return errors.New("endpoint.baseUrl is empty")
	case c.Endpoint.DataPath == "":
		return errors.New("endpoint.dataPath is empty")
	case c.Endpoint.Timeout <= 0:
		return fmt.Errorf("endpoint.timeout must be positive: %v", c.Endpoint.Timeout)
	case c.Fetch.MaxAttempts < 1:
		return fmt.Errorf("fetch.maxAttempts must be at least 1: %d", c.Fetch.MaxAttempts)
	case c.Fetch.Backoff < 0 || c.Fetch.PrimingPause < 0:
		return errors.New("fetch durations must not be negative")
	case c.Analysis.Window < 4:
		return fmt.Errorf("analysis.window must be at least 4: %d", c.Analysis.Window)
	case c.Analysis.TopN < 1:
		return fmt.Errorf("analysis.topN must be at least 1: %d", c.Analysis.TopN)
	}
	return nil
}
