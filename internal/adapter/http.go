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

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-item-sync/internal/config"
	"github.com/MKhiriev/go-item-sync/internal/logger"
	"github.com/MKhiriev/go-item-sync/internal/utils"
	"github.com/MKhiriev/go-item-sync/models"
)

const (
	itemsPath  = "/api/items"
	itemPath   = "/api/items/{id}"
	healthPath = "/api/health"
)

type httpServerAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the request timeout and the retry
// policy of the underlying client.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)
	client.
		SetRetryCount(adapterCfg.RetryCount).
		AddRetryCondition(retryIdempotent).
		OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
			logger.Debug().
				Str("func", "httpServerAdapter").
				Str("method", resp.Request.Method).
				Str("url", resp.Request.URL).
				Int("status", resp.StatusCode()).
				Dur("took", resp.Time()).
				Msg("remote call finished")
			return nil
		})

	return &httpServerAdapter{client: client, logger: logger}, nil
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

// retryIdempotent retries transport failures and gateway errors, but never a
// POST: a create that timed out may already have been applied.
func retryIdempotent(resp *resty.Response, err error) bool {
	if resp != nil && resp.Request != nil && resp.Request.Method == http.MethodPost {
		return false
	}
	if err != nil {
		return true
	}
	if resp == nil {
		return false
	}

	switch resp.StatusCode() {
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	}
	return false
}

// List implements [ServerAdapter].
func (h *httpServerAdapter) List(ctx context.Context) ([]models.RemoteItem, error) {
	resp, err := h.request(ctx).Get(itemsPath)
	if err != nil {
		return nil, fmt.Errorf("%w: list request: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var items []models.RemoteItem
	if err = json.Unmarshal(resp.Body(), &items); err != nil {
		return nil, fmt.Errorf("%w: decode list response: %w", ErrUnexpectedResponse, err)
	}
	return items, nil
}

// Get implements [ServerAdapter].
func (h *httpServerAdapter) Get(ctx context.Context, remoteID string) (models.RemoteItem, error) {
	resp, err := h.request(ctx).
		SetPathParam("id", remoteID).
		Get(itemPath)
	if err != nil {
		return models.RemoteItem{}, fmt.Errorf("%w: get request: %w", ErrTransport, err)
	}

	return decodeItem(resp)
}

// Create implements [ServerAdapter].
func (h *httpServerAdapter) Create(ctx context.Context, fields models.ItemFields) (models.RemoteItem, error) {
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.NewItemRequest(fields)).
		Post(itemsPath)
	if err != nil {
		return models.RemoteItem{}, fmt.Errorf("%w: create request: %w", ErrTransport, err)
	}

	return decodeItem(resp)
}

// Update implements [ServerAdapter].
func (h *httpServerAdapter) Update(ctx context.Context, remoteID string, fields models.ItemFields) (models.RemoteItem, error) {
	resp, err := h.request(ctx).
		SetPathParam("id", remoteID).
		SetHeader("Content-Type", "application/json").
		SetBody(models.NewItemRequest(fields)).
		Put(itemPath)
	if err != nil {
		return models.RemoteItem{}, fmt.Errorf("%w: update request: %w", ErrTransport, err)
	}

	return decodeItem(resp)
}

// Delete implements [ServerAdapter].
func (h *httpServerAdapter) Delete(ctx context.Context, remoteID string) error {
	resp, err := h.request(ctx).
		SetPathParam("id", remoteID).
		Delete(itemPath)
	if err != nil {
		return fmt.Errorf("%w: delete request: %w", ErrTransport, err)
	}

	return mapHTTPError(resp)
}

// Ping implements [ServerAdapter].
func (h *httpServerAdapter) Ping(ctx context.Context) error {
	resp, err := h.request(ctx).Get(healthPath)
	if err != nil {
		return fmt.Errorf("%w: health request: %w", ErrTransport, err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) request(ctx context.Context) *resty.Request {
	return h.client.R().SetContext(ctx)
}

func decodeItem(resp *resty.Response) (models.RemoteItem, error) {
	if err := mapHTTPError(resp); err != nil {
		return models.RemoteItem{}, err
	}

	var item models.RemoteItem
	if err := json.Unmarshal(resp.Body(), &item); err != nil {
		return models.RemoteItem{}, fmt.Errorf("%w: decode item: %w", ErrUnexpectedResponse, err)
	}
	if item.ID == "" {
		return models.RemoteItem{}, fmt.Errorf("%w: item without id", ErrUnexpectedResponse)
	}
	return item, nil
}
