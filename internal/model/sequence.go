package model

import "sync/atomic"

// FirstInvoiceNumber is the number handed out first by a fresh or reset sequence
const FirstInvoiceNumber = 1

// Sequence issues consecutive invoice numbers. Safe for concurrent use.
type Sequence struct {
	last atomic.Int64
}

// NewSequence creates a sequence whose first number is FirstInvoiceNumber
func NewSequence() *Sequence {
	return &Sequence{}
}

// Next returns the next invoice number
func (s *Sequence) Next() int {
	return int(s.last.Add(1)) + FirstInvoiceNumber - 1
}

// Reset restores the sequence to its initial state
func (s *Sequence) Reset() {
	s.last.Store(0)
}

var defaultSequence = NewSequence()

// DefaultSequence returns the process-wide sequence used by NewInvoice
func DefaultSequence() *Sequence {
	return defaultSequence
}

// ResetInvoiceNumber resets the process-wide sequence. Intended for test isolation.
func ResetInvoiceNumber() {
	defaultSequence.Reset()
}
