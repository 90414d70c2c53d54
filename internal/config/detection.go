package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	envDetectionPath = "DETECTION_CONFIG_PATH"
	envPlayWindow    = "PLAY_WINDOW"

	defaultPlayWindow = 2
)

// DetectionConfig holds the play-classification vocabulary. ScoringTerms are
// regexp alternatives matched as whole words against lowercased play
// descriptions; FillerEvents are upstream event names that never complete an
// at-bat and stay re-evaluable.
type DetectionConfig struct {
	ScoringTerms []string `yaml:"scoring_terms"`
	FillerEvents []string `yaml:"filler_events"`
	PlayWindow   int      `yaml:"play_window"`
}

// defaultScoringTerms matches any base hit. Trim the list down to homers?
// to fire on home runs only.
func defaultScoringTerms() []string {
	return []string{"singles?", "doubles?", "triples?", "homers?"}
}

func defaultFillerEvents() []string {
	return []string{
		"batter timeout", "mound visit", "injury delay", "manager visit",
		"challenge", "review", "umpire review", "pitching substitution",
		"warmup", "defensive switch", "offensive substitution",
		"throwing error", "passed ball", "wild pitch",
	}
}

func loadDetection() DetectionConfig {
	cfg := DetectionConfig{
		ScoringTerms: defaultScoringTerms(),
		FillerEvents: defaultFillerEvents(),
		PlayWindow:   intEnvOrDefault(envPlayWindow, defaultPlayWindow),
	}

	path := os.Getenv(envDetectionPath)
	if path == "" {
		return cfg
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}

	var override DetectionConfig
	if err := yaml.Unmarshal(raw, &override); err != nil {
		return cfg
	}
	if len(override.ScoringTerms) > 0 {
		cfg.ScoringTerms = override.ScoringTerms
	}
	if len(override.FillerEvents) > 0 {
		cfg.FillerEvents = override.FillerEvents
	}
	if override.PlayWindow > 0 {
		cfg.PlayWindow = override.PlayWindow
	}
	return cfg
}
