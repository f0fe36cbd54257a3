// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-vault-adder/internal/app"
	"github.com/MKhiriev/go-vault-adder/internal/logger"
	"github.com/MKhiriev/go-vault-adder/internal/utils"
	"github.com/MKhiriev/go-vault-adder/models"
)

// send handles POST /api/ipc/{channel}. A channel with a reply answers with
// the reply body, fire-and-forget channels answer 204.
func (h *Handler) send(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	channel := chi.URLParam(r, "channel")

	switch channel {
	case models.ChannelAddVaultConfig:
		var payload models.AddVaultPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			log.Err(err).Str("func", "*Handler.send").Str("channel", channel).Msg("failed to decode payload")
			utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		}

		reply := h.services.VaultBackendService.AddVault(r.Context(), payload)
		if _, err := utils.WriteJSON(w, reply, http.StatusOK); err != nil {
			log.Err(err).Str("func", "*Handler.send").Msg("failed to write reply")
		}

	case models.ChannelShowError:
		var notification models.NotificationPayload
		if err := json.NewDecoder(r.Body).Decode(&notification); err != nil {
			log.Err(err).Str("func", "*Handler.send").Str("channel", channel).Msg("failed to decode payload")
			utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		}

		h.services.VaultBackendService.ShowError(r.Context(), notification.Message)
		w.WriteHeader(http.StatusNoContent)

	default:
		h.writeError(w, r, fmt.Errorf("%w: %q", ErrUnknownChannel, channel))
	}
}

// invoke handles POST /api/ipc/{channel}/invoke.
func (h *Handler) invoke(w http.ResponseWriter, r *http.Request) {
	channel := chi.URLParam(r, "channel")

	var (
		value string
		err   error
	)
	switch channel {
	case models.ChannelGetNewVaultFilename:
		value, err = h.services.VaultBackendService.NewVaultFilename(r.Context())
	case models.ChannelGetExistingVaultFilename:
		value, err = h.services.VaultBackendService.ExistingVaultFilename(r.Context())
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownChannel, channel)
	}
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, models.InvokeResponse{Value: value}, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.invoke").Msg("failed to write response")
	}
}

func (h *Handler) listVaultSources(w http.ResponseWriter, r *http.Request) {
	sources, err := h.services.VaultBackendService.ListVaultSources(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if sources == nil {
		sources = []models.VaultSource{}
	}

	if _, err = utils.WriteJSON(w, sources, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.listVaultSources").Msg("failed to write response")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, msg := statusFromError(err)
	logger.FromRequest(r).Err(err).Int("status", status).Msg("request failed")
	utils.WriteError(w, msg, status)
}
