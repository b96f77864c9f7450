package config

import (
	"time"
)

// GetTimeout returns the per-feed fetch timeout as time.Duration
func (s *Settings) GetTimeout() time.Duration {
	if s.Timeout <= 0 {
		return 30 * time.Second // default 30 seconds
	}
	return time.Duration(s.Timeout) * time.Second
}

// GetWindow returns the recency window as time.Duration
func (s *Settings) GetWindow() time.Duration {
	return time.Duration(s.WindowDays) * 24 * time.Hour
}
