package mdns

import (
	"bytes"
	"net"
	"testing"

	"github.com/hashicorp/mdns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/listenupapp/luckysign/internal/domain"
	"github.com/listenupapp/luckysign/internal/logger"
)

func testLogger(buf *bytes.Buffer) *logger.Logger {
	return logger.New(logger.Config{Writer: buf, Format: "json"})
}

func TestTXTRecords(t *testing.T) {
	instance := &domain.Instance{ID: "7d4c", Name: "Kitchen Sign", Version: "0.1.0"}

	assert.Equal(t, []string{
		"id=7d4c",
		"name=Kitchen Sign",
		"version=0.1.0",
		"api=v1",
	}, TXTRecords(instance))
}

func TestPeerFromEntry(t *testing.T) {
	entry := &mdns.ServiceEntry{
		Host:       "box.local.",
		AddrV4:     net.ParseIP("192.168.1.20"),
		Port:       8080,
		InfoFields: []string{"id=abc", "name=Box", "version=0.2.0", "api=v1", "junk"},
	}

	p := peerFromEntry(entry)
	assert.Equal(t, Peer{
		Host:    "box.local.",
		Addr:    "192.168.1.20",
		Port:    8080,
		ID:      "abc",
		Name:    "Box",
		Version: "0.2.0",
	}, p)
	assert.Equal(t, "http://192.168.1.20:8080", p.URL())
}

func TestServiceStop(t *testing.T) {
	service := NewService(logger.Discard())
	assert.Nil(t, service.server, "server should be nil before Start")

	// Should not panic
	service.Stop()
	service.Stop()
	assert.Nil(t, service.server)
}

func TestServiceLifecycle(t *testing.T) {
	// Multicast is often unavailable in containers and CI.
	var buf bytes.Buffer
	service := NewService(testLogger(&buf))

	instance := &domain.Instance{ID: "lifecycle-test", Name: "Lifecycle Test", Version: "0.1.0"}

	if err := service.Start(instance, 8080); err != nil {
		t.Skipf("mDNS not available: %v", err)
	}
	require.NotNil(t, service.server)
	assert.Contains(t, buf.String(), "mDNS advertisement started")

	// Restarting replaces the running server.
	require.NoError(t, service.Start(instance, 8081))
	assert.NotNil(t, service.server)

	done := make(chan struct{})
	for range 5 {
		go func() {
			service.Stop()
			done <- struct{}{}
		}()
	}
	for range 5 {
		<-done
	}

	assert.Nil(t, service.server)
	assert.Contains(t, buf.String(), "mDNS advertisement stopped")
}
