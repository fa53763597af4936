package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-chat-client/internal/logger"
	"github.com/MKhiriev/go-chat-client/internal/service"
	"github.com/MKhiriev/go-chat-client/internal/utils"
	"github.com/MKhiriev/go-chat-client/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) queryChannels(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, ErrEmptyToken)
		return
	}

	var req models.QueryChannelsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.queryChannels").Msg("invalid query body")
		writeError(w, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err))
		return
	}

	channels, err := h.services.ChannelService.QueryChannels(r.Context(), userID, req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.queryChannels").Str("user_id", userID).Msg("error querying channels")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.QueryChannelsResponse{
		Channels: channels,
		Duration: time.Since(start).String(),
	}, http.StatusCreated)
}

func (h *Handler) sendMessage(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, ErrEmptyToken)
		return
	}

	var req models.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.sendMessage").Msg("invalid message body")
		writeError(w, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err))
		return
	}

	channelType := chi.URLParam(r, "type")
	channelID := chi.URLParam(r, "id")

	msg, err := h.services.ChannelService.SendMessage(r.Context(), userID, channelType, channelID, req.Message)
	if err != nil {
		log.Err(err).
			Str("func", "*Handler.sendMessage").
			Str("user_id", userID).
			Str("channel_type", channelType).
			Str("channel_id", channelID).
			Msg("error sending message")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.SendMessageResponse{
		Message:  msg,
		Duration: time.Since(start).String(),
	}, http.StatusCreated)
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, map[string]string{
		"status":  "ok",
		"version": h.services.AppInfoService.GetAppVersion(r.Context()),
	}, http.StatusOK)
}
