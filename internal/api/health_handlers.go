package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (s *Server) registerHealthRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "healthCheck",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Health check",
		Description: "Returns server liveness with instance identity and uptime",
		Tags:        []string{"Health"},
	}, s.handleHealthCheck)
}

// HealthResponse contains health check data in API responses.
type HealthResponse struct {
	Status        string  `json:"status" doc:"Overall status"`
	ID            string  `json:"id" doc:"Instance ID"`
	Name          string  `json:"name" doc:"Server name"`
	Version       string  `json:"version" doc:"Server version"`
	UptimeSeconds float64 `json:"uptime_seconds" doc:"Seconds since start"`
}

// HealthOutput wraps the health response for Huma.
type HealthOutput struct {
	Body HealthResponse
}

func (s *Server) handleHealthCheck(_ context.Context, _ *struct{}) (*HealthOutput, error) {
	h := s.services.Instance.Health()
	return &HealthOutput{
		Body: HealthResponse{
			Status:        h.Status,
			ID:            h.ID,
			Name:          h.Name,
			Version:       h.Version,
			UptimeSeconds: h.UptimeSeconds,
		},
	}, nil
}
