package config

import (
	"crypto/tls"
	"fmt"
	"net/http"
	"os"

	"github.com/opensearch-project/opensearch-go/v2"
)

type OpenSearchConfig struct {
	Enabled       bool
	Host          string
	Port          string
	Username      string
	Password      string
	PropertyIndex string
}

func DefaultOpenSearchConfig() *OpenSearchConfig {
	return &OpenSearchConfig{
		Enabled:       getEnvBoolWithDefault("OPENSEARCH_ENABLED", false),
		Host:          getEnvOrDefault("OPENSEARCH_HOST", "localhost"),
		Port:          getEnvOrDefault("OPENSEARCH_PORT", "9200"),
		Username:      getEnvOrDefault("OPENSEARCH_USERNAME", ""),
		Password:      getEnvOrDefault("OPENSEARCH_PASSWORD", ""),
		PropertyIndex: getEnvOrDefault("OPENSEARCH_PROPERTY_INDEX", "properties"),
	}
}

func (c *OpenSearchConfig) GetClient() (*opensearch.Client, error) {
	config := opensearch.Config{
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{
				InsecureSkipVerify: true,
			},
		},
		Addresses: []string{
			fmt.Sprintf("http://%s:%s", c.Host, c.Port),
		},
	}

	if c.Username != "" && c.Password != "" {
		config.Username = c.Username
		config.Password = c.Password
	}

	return opensearch.NewClient(config)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
