// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-item-sync/models"
)

// changeNotifier fans out "something changed" signals to subscribers. Each
// subscriber owns a one-slot channel, so bursts of changes collapse into a
// single pending signal and notify never blocks.
type changeNotifier struct {
	mu   sync.Mutex
	next uint64
	subs map[uint64]chan struct{}
}

func newChangeNotifier() *changeNotifier {
	return &changeNotifier{subs: make(map[uint64]chan struct{})}
}

func (n *changeNotifier) subscribe() (uint64, <-chan struct{}) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.next++
	ch := make(chan struct{}, 1)
	n.subs[n.next] = ch
	return n.next, ch
}

func (n *changeNotifier) unsubscribe(id uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()
	delete(n.subs, id)
}

func (n *changeNotifier) notify() {
	n.mu.Lock()
	defer n.mu.Unlock()

	for _, ch := range n.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// Subscription is a live feed of active item snapshots. C is closed after
// the subscription ends.
type Subscription struct {
	C <-chan models.ItemsSnapshot

	cancel context.CancelFunc
	done   chan struct{}
}

// NewSubscription runs produce in its own goroutine and exposes what it
// sends as a Subscription. produce must return once ctx is done.
func NewSubscription(ctx context.Context, produce func(ctx context.Context, out chan<- models.ItemsSnapshot)) *Subscription {
	ctx, cancel := context.WithCancel(ctx)
	out := make(chan models.ItemsSnapshot)
	done := make(chan struct{})

	go func() {
		defer close(done)
		defer close(out)
		produce(ctx, out)
	}()

	return &Subscription{C: out, cancel: cancel, done: done}
}

// Cancel stops the subscription and waits until its producer has exited.
// No snapshot is delivered after Cancel returns. Safe to call more than once.
func (s *Subscription) Cancel() {
	s.cancel()
	<-s.done
}

// Done is closed once the producer has exited.
func (s *Subscription) Done() <-chan struct{} {
	return s.done
}
