package http

import (
	"net/http"

	"github.com/MKhiriev/go-chat-client/internal/logger"
	"github.com/MKhiriev/go-chat-client/internal/service"
	"github.com/MKhiriev/go-chat-client/internal/utils"
	"github.com/MKhiriev/go-chat-client/internal/validators"
)

type Handler struct {
	services  *service.Services
	validator validators.Validator

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		validator: validators.NewRequestValidator(),
		logger:    logger,
	}
}

// writeError maps err to a status and an API error code and writes it as a
// JSON error body.
func writeError(w http.ResponseWriter, err error) {
	info := errorInfoFromError(err)
	utils.WriteAPIError(w, info.code, err.Error(), info.status)
}
