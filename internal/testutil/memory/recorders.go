package memory

import (
	"context"
	"sync"

	"github.com/amirhossein-jamali/cage-reservations/internal/domain/port/events"
)

// Publisher records published events
type Publisher struct {
	mu     sync.Mutex
	events []events.ReservationEvent

	// Err, when set, is returned from every Publish call after recording the event
	Err error
}

// Publish implements events.Publisher
func (p *Publisher) Publish(_ context.Context, event events.ReservationEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return p.Err
}

// Close implements events.Publisher
func (p *Publisher) Close() error { return nil }

// Events returns the recorded events in publish order
func (p *Publisher) Events() []events.ReservationEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]events.ReservationEvent, len(p.events))
	copy(out, p.events)
	return out
}

// Metrics counts recorded metric observations by label set
type Metrics struct {
	mu          sync.Mutex
	Decisions   map[string]int // "outcome/rule"
	Transitions map[string]int // "from->to"
	Inventory   map[string]int // "operation/result"
}

// NewMetrics creates an empty recorder
func NewMetrics() *Metrics {
	return &Metrics{
		Decisions:   make(map[string]int),
		Transitions: make(map[string]int),
		Inventory:   make(map[string]int),
	}
}

// AdmissionDecision implements core.Metrics
func (m *Metrics) AdmissionDecision(outcome, rule string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Decisions[outcome+"/"+rule]++
}

// ReservationTransition implements core.Metrics
func (m *Metrics) ReservationTransition(from, to string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Transitions[from+"->"+to]++
}

// InventoryCall implements core.Metrics
func (m *Metrics) InventoryCall(operation, result string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Inventory[operation+"/"+result]++
}

// Decision returns the count for an outcome and rule
func (m *Metrics) Decision(outcome, rule string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Decisions[outcome+"/"+rule]
}
