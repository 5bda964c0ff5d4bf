// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"testing"
)

// countingWorker tracks how many times Start and Stop were called.
type countingWorker struct {
	starts int
	stops  int
}

func (m *countingWorker) Start(context.Context) {
	m.starts++
}

func (m *countingWorker) Stop() {
	m.stops++
}

func TestWorkers_Start_AllWorkersAreCalled(t *testing.T) {
	w1 := &countingWorker{}
	w2 := &countingWorker{}
	w3 := &countingWorker{}

	ws := NewWorkers(w1, w2, w3)
	ws.Start(context.Background())

	for i, w := range []*countingWorker{w1, w2, w3} {
		if w.starts != 1 {
			t.Errorf("worker[%d]: expected starts=1, got %d", i, w.starts)
		}
	}
}

func TestWorkers_Empty(t *testing.T) {
	ws := NewWorkers()

	// Should not panic on empty workers list
	ws.Start(context.Background())
	ws.Stop()
}

func TestWorkers_Nil(t *testing.T) {
	ws := &Workers{}

	// Should not panic when workers field is nil
	ws.Start(context.Background())
	ws.Stop()
}

func TestWorkers_Order(t *testing.T) {
	var order []string

	ws := NewWorkers(
		&orderWorker{id: "a", order: &order},
		&orderWorker{id: "b", order: &order},
		&orderWorker{id: "c", order: &order},
	)
	ws.Start(context.Background())
	ws.Stop()

	expected := []string{"start a", "start b", "start c", "stop c", "stop b", "stop a"}
	if len(order) != len(expected) {
		t.Fatalf("expected %d calls, got %d: %v", len(expected), len(order), order)
	}
	for i, v := range expected {
		if order[i] != v {
			t.Errorf("expected order[%d]=%q, got %q", i, v, order[i])
		}
	}
}

func TestWorkers_Stop_CalledOnce(t *testing.T) {
	w := &countingWorker{}
	ws := NewWorkers(w)

	ws.Start(context.Background())
	ws.Stop()

	if w.stops != 1 {
		t.Errorf("expected Stop to be called exactly once, got %d", w.stops)
	}
}

// orderWorker records its lifecycle calls into a shared slice.
type orderWorker struct {
	id    string
	order *[]string
}

func (o *orderWorker) Start(context.Context) {
	*o.order = append(*o.order, "start "+o.id)
}

func (o *orderWorker) Stop() {
	*o.order = append(*o.order, "stop "+o.id)
}
