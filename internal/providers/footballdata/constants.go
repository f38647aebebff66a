package footballdata

import "time"

const (
	defaultBaseURL     = "https://api.football-data.org/v4"
	defaultHTTPTimeout = 30 * time.Second
)
