package service

import (
	"time"

	"github.com/google/uuid"

	"github.com/listenupapp/luckysign/internal/config"
	"github.com/listenupapp/luckysign/internal/domain"
	"github.com/listenupapp/luckysign/internal/logger"
	"github.com/listenupapp/luckysign/internal/version"
)

// InstanceService describes the running server.
type InstanceService struct {
	instance *domain.Instance
	logger   *logger.Logger
	now      func() time.Time
}

// NewInstanceService creates the instance record for this process. The ID is
// a random UUID, so it changes on every start.
func NewInstanceService(cfg *config.Config, log *logger.Logger) *InstanceService {
	instance := &domain.Instance{
		ID:        uuid.NewString(),
		Name:      cfg.Server.Name,
		Version:   version.Version,
		StartedAt: time.Now(),
	}

	log.Info("Instance initialized",
		"instance_id", instance.ID,
		"name", instance.Name,
		"version", instance.Version,
	)

	return &InstanceService{instance: instance, logger: log, now: time.Now}
}

// Instance returns a copy of the instance record.
func (s *InstanceService) Instance() *domain.Instance {
	i := *s.instance
	return &i
}

// Health is the payload of the health endpoint.
type Health struct {
	Status        string  `json:"status"`
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Version       string  `json:"version"`
	UptimeSeconds float64 `json:"uptime_seconds"`
}

// Health reports liveness. There are no dependencies to probe, so the status
// is always "ok" while the process serves requests.
func (s *InstanceService) Health() Health {
	return Health{
		Status:        "ok",
		ID:            s.instance.ID,
		Name:          s.instance.Name,
		Version:       s.instance.Version,
		UptimeSeconds: s.instance.Uptime(s.now()).Seconds(),
	}
}
