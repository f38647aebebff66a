package config

const (
	envFdBaseURL  = "FOOTBALL_DATA_BASE_URL"
	envFdAPIToken = "FOOTBALL_DATA_API_TOKEN"

	defaultFdBaseURL = "https://api.football-data.org/v4"
)

// FootballDataConfig controls how we talk to the football-data.org API.
type FootballDataConfig struct {
	BaseURL  string
	APIToken string
}

func loadFootballData() FootballDataConfig {
	return FootballDataConfig{
		BaseURL:  envOrDefault(envFdBaseURL, defaultFdBaseURL),
		APIToken: envOrDefault(envFdAPIToken, ""),
	}
}
