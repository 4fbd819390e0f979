package config

import "github.com/RacoonMediaServer/rms-packages/pkg/configuration"

// Configuration represents entire application configuration
type Configuration struct {
	// Catalog is a path to YAML file with films loaded at startup
	Catalog string
}

var config Configuration

// Load open and parses configuration file
func Load(configFilePath string) error {
	return configuration.Load(configFilePath, &config)
}

// Config returns loaded configuration
func Config() Configuration {
	return config
}
