package api

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/listenupapp/luckysign/internal/mdns"
	"github.com/listenupapp/luckysign/internal/version"
)

func (s *Server) registerInstanceRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "getInstance",
		Method:      http.MethodGet,
		Path:        "/api/v1/instance",
		Summary:     "Get server instance",
		Description: "Returns the identity this server advertises on the local network",
		Tags:        []string{"Instance"},
	}, s.handleGetInstance)
}

// InstanceResponse contains server instance data in API responses.
type InstanceResponse struct {
	ID          string    `json:"id" doc:"Instance ID, regenerated on every start"`
	Name        string    `json:"name" doc:"Server name"`
	Version     string    `json:"version" doc:"Server version"`
	APIVersion  string    `json:"api_version" doc:"API version"`
	ServiceType string    `json:"service_type" doc:"mDNS service type"`
	StartedAt   time.Time `json:"started_at" doc:"Start timestamp"`
}

// InstanceOutput wraps the instance response for Huma.
type InstanceOutput struct {
	Body InstanceResponse
}

func (s *Server) handleGetInstance(_ context.Context, _ *struct{}) (*InstanceOutput, error) {
	instance := s.services.Instance.Instance()
	return &InstanceOutput{
		Body: InstanceResponse{
			ID:          instance.ID,
			Name:        instance.Name,
			Version:     instance.Version,
			APIVersion:  version.APIVersion,
			ServiceType: mdns.ServiceType,
			StartedAt:   instance.StartedAt,
		},
	}, nil
}
