package appconfig

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v2"
)

// Config holds all configuration details
type Config struct {
	Host     string         `yaml:"host"`
	BasePath string         `yaml:"basePath"`
	DocsPath string         `yaml:"docsPath"`
	Database DatabaseConfig `yaml:"database"`
	Pulsar   PulsarConfig   `yaml:"pulsar"`
	Metrics  MetricsConfig  `yaml:"metrics"`
}

// DatabaseConfig defines the database connection details
type DatabaseConfig struct {
	Driver string `yaml:"driver"`
	Source string `yaml:"source"`
}

// PulsarConfig defines the messaging system connection details.
// An empty URL disables event publishing.
type PulsarConfig struct {
	URL           string `yaml:"url"`
	TopicProducer string `yaml:"topicProducer"`
	TopicConsumer string `yaml:"topicConsumer"`
	Subscription  string `yaml:"subscription"`
}

type MetricsConfig struct {
	Path string `yaml:"path"`
}

// LoadConfig loads and parses the configuration from a given file path.
// The file is rendered as a template over the environment first, so values
// such as {{ .DATABASE_URL }} are substituted.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config file path is required")
	}

	// Parse the template file
	tmpl, err := template.ParseFiles(path)
	if err != nil {
		log.Error().Err(err).Msg("error parsing config file template")
		return nil, err
	}

	// Create a map of environment variables
	envVars := loadEnvVars()

	// Execute the template with environment variables
	var buf bytes.Buffer
	err = tmpl.Execute(&buf, envVars)
	if err != nil {
		log.Error().Err(err).Msg("error executing config file template")
		return nil, err
	}

	// Load and unmarshal the YAML
	var config Config
	if err := yaml.Unmarshal(buf.Bytes(), &config); err != nil {
		log.Error().Err(err).Msg("failed to unmarshal config YAML")
		return nil, err
	}

	config.setDefaults()
	if err := config.validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) setDefaults() {
	if c.BasePath == "" {
		c.BasePath = "/api"
	}
	if c.DocsPath == "" {
		c.DocsPath = "/docs"
	}
	if c.Database.Driver == "" {
		c.Database.Driver = "postgres"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Pulsar.Subscription == "" {
		c.Pulsar.Subscription = "socialize-services"
	}
}

func (c *Config) validate() error {
	if c.Database.Driver != "postgres" {
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
	if c.Pulsar.URL != "" && c.Pulsar.TopicProducer == "" {
		return errors.New("pulsar.topicProducer is required when pulsar.url is set")
	}
	return nil
}

// loadEnvVars loads environment variables into a map
func loadEnvVars() map[string]string {
	envVars := make(map[string]string)
	for _, env := range os.Environ() {
		kv := strings.SplitN(env, "=", 2)
		if len(kv) == 2 {
			envVars[kv[0]] = kv[1]
		}
	}
	return envVars
}
