package internal

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config carries the deployment settings for the menu service. The dataset
// is read either from a local CSV path (dev) or from the configured S3
// object.
type Config struct {
	DatasetPath     string   `json:"datasetPath"`
	DatasetBucket   string   `json:"datasetBucket"`
	DatasetKey      string   `json:"datasetKey"`
	QuestionsBucket string   `json:"questionsBucket"`
	AwsRegion       string   `json:"awsRegion"`
	Port            int      `json:"port"`
	AllowedOrigins  []string `json:"allowedOrigins"`
}

// LoadConfig reads config.json, switching files on MENU_ENV the same way
// deployments select their secrets bundle.
func LoadConfig() (*Config, error) {
	configFile := "config.json"
	if env := os.Getenv("MENU_ENV"); env == "dev" || env == "test" {
		configFile = fmt.Sprintf("config-%s.json", env)
	}
	f, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", configFile, err)
	}

	config := Config{}
	err = json.Unmarshal(f, &config)
	if err != nil {
		return nil, err
	}
	if config.Port == 0 {
		config.Port = 3009
	}

	return &config, nil
}
