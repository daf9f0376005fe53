package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/listenupapp/luckysign/internal/logger"
	"github.com/listenupapp/luckysign/internal/version"
)

func TestInstanceService(t *testing.T) {
	s := NewInstanceService(testConfig(), logger.Discard())

	inst := s.Instance()
	assert.Len(t, inst.ID, 36)
	assert.Equal(t, "Test Server", inst.Name)
	assert.Equal(t, version.Version, inst.Version)

	// Callers get a copy.
	inst.Name = "changed"
	assert.Equal(t, "Test Server", s.Instance().Name)

	s.now = func() time.Time { return inst.StartedAt.Add(3 * time.Second) }
	h := s.Health()
	assert.Equal(t, "ok", h.Status)
	assert.Equal(t, inst.ID, h.ID)
	assert.InDelta(t, 3.0, h.UptimeSeconds, 0.001)
}

func TestInstanceService_NewIDPerStart(t *testing.T) {
	a := NewInstanceService(testConfig(), logger.Discard())
	b := NewInstanceService(testConfig(), logger.Discard())
	assert.NotEqual(t, a.Instance().ID, b.Instance().ID)
}
