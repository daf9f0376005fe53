// Package mdns advertises the sign server on the local network and finds
// other servers that do the same.
package mdns

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/mdns"

	"github.com/listenupapp/luckysign/internal/domain"
	"github.com/listenupapp/luckysign/internal/logger"
	"github.com/listenupapp/luckysign/internal/version"
)

// ServiceType is the mDNS service type for sign servers.
const ServiceType = "_luckysign._tcp"

// Service manages mDNS advertisement for the server.
type Service struct {
	server *mdns.Server
	logger *logger.Logger
	mu     sync.Mutex
}

// NewService creates a new mDNS service.
func NewService(log *logger.Logger) *Service {
	return &Service{logger: log.WithComponent("mdns")}
}

// Start begins advertising instance on port. It should be called after the
// HTTP server is listening. Failures are usually environmental (no
// multicast inside containers) and callers treat them as non-fatal.
func (s *Service) Start(instance *domain.Instance, port int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.server != nil {
		_ = s.server.Shutdown()
		s.server = nil
	}

	host, err := os.Hostname()
	if err != nil {
		host = "luckysign"
	}

	service, err := mdns.NewMDNSService(host, ServiceType, "", "", port, nil, TXTRecords(instance))
	if err != nil {
		return fmt.Errorf("create mDNS service: %w", err)
	}

	server, err := mdns.NewServer(&mdns.Config{Zone: service})
	if err != nil {
		return fmt.Errorf("start mDNS server: %w", err)
	}
	s.server = server

	s.logger.Info("mDNS advertisement started",
		"service", ServiceType,
		"port", port,
		"name", instance.Name,
		"id", instance.ID,
	)
	return nil
}

// Stop stops advertising. Safe to call multiple times or if not started.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.server != nil {
		_ = s.server.Shutdown()
		s.server = nil
		s.logger.Info("mDNS advertisement stopped")
	}
}

// TXTRecords builds the key=value records published with the service.
func TXTRecords(instance *domain.Instance) []string {
	return []string{
		"id=" + instance.ID,
		"name=" + instance.Name,
		"version=" + instance.Version,
		"api=" + version.APIVersion,
	}
}

// Peer is a server found on the local network.
type Peer struct {
	Host    string
	Addr    string
	Port    int
	ID      string
	Name    string
	Version string
}

// URL returns the base HTTP URL of the peer.
func (p Peer) URL() string {
	return fmt.Sprintf("http://%s:%d", p.Addr, p.Port)
}

// Discover queries the local network for sign servers until timeout elapses
// or ctx is done.
func Discover(ctx context.Context, timeout time.Duration) ([]Peer, error) {
	entries := make(chan *mdns.ServiceEntry, 16)
	params := mdns.DefaultParams(ServiceType)
	params.Entries = entries
	params.Timeout = timeout
	params.DisableIPv6 = true

	var (
		peers []Peer
		done  = make(chan struct{})
	)
	go func() {
		defer close(done)
		for e := range entries {
			peers = append(peers, peerFromEntry(e))
		}
	}()

	err := mdns.QueryContext(ctx, params)
	close(entries)
	<-done

	if err != nil {
		return nil, fmt.Errorf("mDNS query: %w", err)
	}
	return peers, nil
}

func peerFromEntry(e *mdns.ServiceEntry) Peer {
	p := Peer{Host: e.Host, Port: e.Port}
	if e.AddrV4 != nil {
		p.Addr = e.AddrV4.String()
	} else if e.AddrV6 != nil {
		p.Addr = e.AddrV6.String()
	}
	for _, field := range e.InfoFields {
		key, value, ok := strings.Cut(field, "=")
		if !ok {
			continue
		}
		switch key {
		case "id":
			p.ID = value
		case "name":
			p.Name = value
		case "version":
			p.Version = value
		}
	}
	return p
}
