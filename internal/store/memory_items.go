// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/MKhiriev/go-item-sync/models"
)

// memoryItemRepository keeps items in a map. The reference server uses it
// when no database DSN is configured.
type memoryItemRepository struct {
	mu    sync.RWMutex
	items map[string]models.RemoteItem
	now   func() time.Time
}

// NewMemoryItemRepository constructs an empty in-memory [ItemRepository].
func NewMemoryItemRepository() ItemRepository {
	return &memoryItemRepository{
		items: make(map[string]models.RemoteItem),
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func (m *memoryItemRepository) List(_ context.Context) ([]models.RemoteItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	items := make([]models.RemoteItem, 0, len(m.items))
	for _, item := range m.items {
		items = append(items, item)
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].Name != items[j].Name {
			return items[i].Name < items[j].Name
		}
		return items[i].ID < items[j].ID
	})
	return items, nil
}

func (m *memoryItemRepository) Get(_ context.Context, id string) (models.RemoteItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	item, ok := m.items[id]
	if !ok {
		return models.RemoteItem{}, ErrItemNotFound
	}
	return item, nil
}

func (m *memoryItemRepository) Create(_ context.Context, item models.RemoteItem) (models.RemoteItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.items[item.ID]; ok {
		return models.RemoteItem{}, ErrItemAlreadyExists
	}

	now := m.now()
	item.CreatedAt = &now
	item.UpdatedAt = &now
	m.items[item.ID] = item
	return item, nil
}

func (m *memoryItemRepository) Update(_ context.Context, item models.RemoteItem) (models.RemoteItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored, ok := m.items[item.ID]
	if !ok {
		return models.RemoteItem{}, ErrItemNotFound
	}

	now := m.now()
	stored.Name = item.Name
	stored.Description = item.Description
	stored.UpdatedAt = &now
	m.items[item.ID] = stored
	return stored, nil
}

func (m *memoryItemRepository) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.items[id]; !ok {
		return ErrItemNotFound
	}
	delete(m.items, id)
	return nil
}
