package server

import (
	"sort"
	"sync"

	"github.com/rezonia/invoicing/internal/model"
	"github.com/rezonia/invoicing/internal/order"
)

// Store keeps invoices in memory, keyed by number
type Store struct {
	mu       sync.RWMutex
	sequence *model.Sequence
	invoices map[int]*model.Invoice
}

// NewStore creates an empty store numbering invoices from seq
func NewStore(seq *model.Sequence) *Store {
	return &Store{
		sequence: seq,
		invoices: make(map[int]*model.Invoice),
	}
}

// Create builds and stores an invoice for o
func (s *Store) Create(o *order.Order) (*model.Invoice, error) {
	inv, err := o.Build(s.sequence)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.invoices[inv.Number()] = inv
	s.mu.Unlock()

	return inv, nil
}

// View runs fn on the invoice while holding a read lock
func (s *Store) View(number int, fn func(inv *model.Invoice)) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	inv, ok := s.invoices[number]
	if ok {
		fn(inv)
	}
	return ok
}

// Update runs fn on the invoice while holding the write lock
func (s *Store) Update(number int, fn func(inv *model.Invoice) error) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	inv, ok := s.invoices[number]
	if !ok {
		return false, nil
	}
	return true, fn(inv)
}

// Numbers lists stored invoice numbers in ascending order
func (s *Store) Numbers() []int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	numbers := make([]int, 0, len(s.invoices))
	for n := range s.invoices {
		numbers = append(numbers, n)
	}
	sort.Ints(numbers)
	return numbers
}
