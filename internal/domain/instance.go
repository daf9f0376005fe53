package domain

import "time"

// Instance describes the running server, as reported by /health and mDNS.
type Instance struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Version   string    `json:"version"`
	StartedAt time.Time `json:"started_at"`
}

// Uptime returns how long the instance has been running at now.
func (i Instance) Uptime(now time.Time) time.Duration {
	if i.StartedAt.IsZero() {
		return 0
	}
	return now.Sub(i.StartedAt)
}
