// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-item-sync/internal/logger"
	"github.com/MKhiriev/go-item-sync/internal/utils"
	"github.com/MKhiriev/go-item-sync/models"
)

// maxBodyBytes limits item request bodies.
const maxBodyBytes = 1 << 20

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}

func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	items, err := h.services.ItemService.List(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.listItems").Msg("error listing items")
		h.writeError(w, r, err)
		return
	}

	if items == nil {
		items = []models.RemoteItem{}
	}
	_, _ = utils.WriteJSON(w, items, http.StatusOK)
}

func (h *Handler) getItem(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	id := chi.URLParam(r, "id")

	item, err := h.services.ItemService.Get(r.Context(), id)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getItem").Str("id", id).Msg("error getting item")
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, item, http.StatusOK)
}

func (h *Handler) createItem(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	request, ok := decodeItemRequest(w, r)
	if !ok {
		return
	}

	item, err := h.services.ItemService.Create(r.Context(), request)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createItem").Msg("error creating item")
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, item, http.StatusCreated)
}

func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	id := chi.URLParam(r, "id")

	request, ok := decodeItemRequest(w, r)
	if !ok {
		return
	}

	item, err := h.services.ItemService.Update(r.Context(), id, request)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateItem").Str("id", id).Msg("error updating item")
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, item, http.StatusOK)
}

func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	id := chi.URLParam(r, "id")

	if err := h.services.ItemService.Delete(r.Context(), id); err != nil {
		log.Err(err).Str("func", "*Handler.deleteItem").Str("id", id).Msg("error deleting item")
		h.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func decodeItemRequest(w http.ResponseWriter, r *http.Request) (models.ItemRequest, bool) {
	var request models.ItemRequest

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&request); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "decodeItemRequest").Msg("Invalid JSON was passed")
		utils.WriteError(w, r, ErrInvalidJSON.Error(), http.StatusBadRequest)
		return request, false
	}

	return request, true
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	message := http.StatusText(status)
	if status < http.StatusInternalServerError {
		message = err.Error()
	}
	utils.WriteError(w, r, message, status)
}
