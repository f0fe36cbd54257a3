// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-vault-adder/internal/config"
	"github.com/MKhiriev/go-vault-adder/internal/events"
	"github.com/MKhiriev/go-vault-adder/internal/logger"
	"github.com/MKhiriev/go-vault-adder/internal/utils"
	"github.com/MKhiriev/go-vault-adder/models"
	"github.com/go-resty/resty/v2"
)

const (
	sendPath   = "/api/ipc/{channel}"
	invokePath = "/api/ipc/{channel}/invoke"
)

// DefaultSubject is the "sub" claim presented by the interactive client.
const DefaultSubject = "renderer"

type httpBackendAdapter struct {
	client   *utils.HTTPClient
	hasher   *utils.Hasher
	security config.Security
	subject  string

	mu       sync.Mutex
	channels map[string]*events.Emitter[[]byte]

	logger *logger.Logger
}

// NewHTTPBackendAdapter constructs the HTTP implementation of [BackendAdapter].
// The address in adapterCfg may be "host:port" or a full URL. Every request
// carries a fresh bearer token signed with security.TokenSignKey and a
// body digest in the utils.HashHeader header.
func NewHTTPBackendAdapter(adapterCfg config.ClientAdapter, security config.Security, log *logger.Logger) (BackendAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	return &httpBackendAdapter{
		client:   utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		hasher:   utils.NewHasher(security.HashKey),
		security: security,
		subject:  DefaultSubject,
		channels: make(map[string]*events.Emitter[[]byte]),
		logger:   log,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Send implements [BackendAdapter]. It POSTs the JSON payload to
// /api/ipc/{channel}. A non-empty 2xx response body is verified against its
// digest header and dispatched to the channel's reply handlers.
func (h *httpBackendAdapter) Send(ctx context.Context, channel string, payload any) error {
	log := h.logger.With().Str("func", "httpBackendAdapter.Send").Str("channel", channel).Logger()

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode %s payload: %w", channel, err)
	}

	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetHeader(utils.HashHeader, h.hasher.SumHex(body)).
		SetPathParam("channel", channel).
		SetBody(body).
		Post(sendPath)
	if err != nil {
		return fmt.Errorf("%s request: %w", channel, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	reply := resp.Body()
	if resp.StatusCode() == http.StatusNoContent || len(reply) == 0 {
		return nil
	}
	if err = h.verifyResponse(resp); err != nil {
		return fmt.Errorf("%s reply: %w", channel, err)
	}

	delivered := h.dispatch(channel+models.ReplySuffix, reply)
	log.Debug().Int("handlers", delivered).Msg("reply dispatched")

	return nil
}

// Invoke implements [BackendAdapter]. It POSTs to /api/ipc/{channel}/invoke
// and returns the "value" field of the response.
func (h *httpBackendAdapter) Invoke(ctx context.Context, channel string) (string, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return "", err
	}

	var result models.InvokeResponse
	resp, err := req.
		SetHeader(utils.HashHeader, h.hasher.SumHex(nil)).
		SetPathParam("channel", channel).
		SetResult(&result).
		Post(invokePath)
	if err != nil {
		return "", fmt.Errorf("%s invoke: %w", channel, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	if err = h.verifyResponse(resp); err != nil {
		return "", fmt.Errorf("%s invoke: %w", channel, err)
	}

	return result.Value, nil
}

// OnMessage implements [BackendAdapter].
func (h *httpBackendAdapter) OnMessage(channel string, handler MessageHandler) (unsubscribe func()) {
	h.mu.Lock()
	emitter, ok := h.channels[channel]
	if !ok {
		emitter = events.NewEmitter[[]byte]()
		h.channels[channel] = emitter
	}
	h.mu.Unlock()

	return emitter.Subscribe(handler)
}

func (h *httpBackendAdapter) dispatch(channel string, data []byte) int {
	h.mu.Lock()
	emitter, ok := h.channels[channel]
	h.mu.Unlock()

	if !ok {
		return 0
	}
	return emitter.Emit(data)
}

func (h *httpBackendAdapter) authedRequest(ctx context.Context) (*resty.Request, error) {
	token, err := utils.GenerateJWTToken(h.security.TokenIssuer, h.subject, h.security.TokenDuration, h.security.TokenSignKey)
	if err != nil {
		return nil, fmt.Errorf("issue backend token: %w", err)
	}

	return h.client.R().
		SetContext(ctx).
		SetAuthToken(token.String()), nil
}

// verifyResponse checks the digest header of a non-empty body. The backend
// signs every non-empty response, so a missing digest is a mismatch.
func (h *httpBackendAdapter) verifyResponse(resp *resty.Response) error {
	body := resp.Body()
	if len(body) == 0 {
		return nil
	}

	sum := resp.Header().Get(utils.HashHeader)
	if sum == "" || !h.hasher.Verify(body, sum) {
		return ErrResponseHashMismatch
	}
	return nil
}
