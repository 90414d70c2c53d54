package statsapi

import "time"

const providerName = "statsapi"

const (
	defaultBaseURL     = "https://statsapi.mlb.com"
	defaultHTTPTimeout = 10 * time.Second

	schedulePath   = "/api/v1/schedule"
	liveFeedPath   = "/api/v1.1/game/%d/feed/live"
	playByPlayPath = "/api/v1/game/%d/playByPlay"

	// sportID 1 is Major League Baseball.
	sportID = 1
)
