package order

// The status machine is linear with one escape hatch: cancellation from any
// non-terminal state. entregado and cancelado are terminal.
//
//	pendiente -> confirmado -> en_preparacion -> en_entrega -> entregado
//	     \____________\______________\______________\-> cancelado

var nextStatus = map[OrderStatus]OrderStatus{
	StatusPending:       StatusConfirmed,
	StatusConfirmed:     StatusInPreparation,
	StatusInPreparation: StatusInDelivery,
	StatusInDelivery:    StatusDelivered,
}

var validStatuses = map[OrderStatus]bool{
	StatusPending:       true,
	StatusConfirmed:     true,
	StatusInPreparation: true,
	StatusInDelivery:    true,
	StatusDelivered:     true,
	StatusCancelled:     true,
}

// ParseStatus rejects values outside the enum at the boundary.
func ParseStatus(raw string) (OrderStatus, error) {
	s := OrderStatus(raw)
	if !validStatuses[s] {
		return "", ErrInvalidStatus
	}
	return s, nil
}

// IsTerminal reports whether no further transition is allowed from s.
func (s OrderStatus) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// CanTransition reports whether moving from one status to the next is a
// legal step of the machine.
func CanTransition(from, to OrderStatus) bool {
	if !validStatuses[from] || !validStatuses[to] {
		return false
	}
	if from.IsTerminal() {
		return false
	}
	if to == StatusCancelled {
		return true
	}
	return nextStatus[from] == to
}

// ValidateTransition returns ErrInvalidTransition when the step is illegal.
func ValidateTransition(from, to OrderStatus) error {
	if !CanTransition(from, to) {
		return ErrInvalidTransition
	}
	return nil
}
