package core

// Metrics records domain-level counters
type Metrics interface {
	// AdmissionDecision counts an accept or reject outcome with the deciding rule
	AdmissionDecision(outcome, rule string)
	// ReservationTransition counts a committed status change
	ReservationTransition(from, to string)
	// InventoryCall counts a call to the external inventory system
	InventoryCall(operation, result string)
}
