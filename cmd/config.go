package cmd

import "personalization/internal/config"

func loadConfig(path string) (config.Config, error) {
	if path != "" {
		return config.LoadConfigFromPath(path)
	}
	return config.LoadConfig()
}
