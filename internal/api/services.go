package api

import (
	"github.com/listenupapp/luckysign/internal/service"
)

// Services groups the business logic used by the API server.
type Services struct {
	Sign     *service.SignService
	Instance *service.InstanceService
}
