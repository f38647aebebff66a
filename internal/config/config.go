package config

// Config holds runtime configuration for the server.
type Config struct {
	Port         string
	PublicURL    string
	PollInterval Duration
	Provider     string
	FootballData FootballDataConfig
	LLM          LLMConfig
	Metrics      MetricsConfig
	Snapshots    SnapshotSyncConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:         envOrDefault(envPort, defaultPort),
		PublicURL:    envOrDefault(envPublicURL, ""),
		PollInterval: durationEnvOrDefault(envPollInterval, defaultPollInterval),
		Provider:     envOrDefault(envProvider, defaultProvider),
		FootballData: loadFootballData(),
		LLM:          loadLLM(),
		Metrics:      loadMetrics(),
		Snapshots:    loadSnapshotSync(),
	}
}
