package storage

import (
	"errors"
	"sort"
	"sync"

	"github.com/oldpence/change-calculator/internal/currency"
)

const maxDenominations = 16

var (
	// ErrInvalidDenominations indicates the provided denominations violate validation rules.
	ErrInvalidDenominations = errors.New("denominations must contain between 1 and 16 positive halfpence values")
)

// Storage provides access to the denomination set used by the change solver.
type Storage interface {
	GetDenominations() ([]int, error)
	SetDenominations(values []int) error
}

// MemoryStorage keeps the denomination set in-memory and guards access with a RWMutex.
type MemoryStorage struct {
	mu            sync.RWMutex
	denominations []int
}

// NewMemoryStorage initialises storage with the standard pre-decimal denomination set.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		denominations: DefaultDenominations(),
	}
}

// DefaultDenominations returns the halfpence values of the standard
// pre-decimal coins and notes, ascending.
func DefaultDenominations() []int {
	return currency.Values()
}

// GetDenominations returns a defensive copy of the currently configured
// denomination set, ascending.
func (s *MemoryStorage) GetDenominations() ([]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneAndSort(s.denominations), nil
}

// SetDenominations validates, normalises, and stores the provided denomination set.
func (s *MemoryStorage) SetDenominations(values []int) error {
	normalized, err := normalizeDenominations(values)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.denominations = normalized
	s.mu.Unlock()

	return nil
}

func cloneAndSort(src []int) []int {
	if len(src) == 0 {
		return []int{}
	}

	out := make([]int, len(src))
	copy(out, src)
	sort.Ints(out)
	return out
}

func normalizeDenominations(values []int) ([]int, error) {
	if len(values) == 0 {
		return nil, ErrInvalidDenominations
	}

	unique := make(map[int]struct{}, len(values))
	for _, value := range values {
		if value <= 0 {
			return nil, ErrInvalidDenominations
		}
		unique[value] = struct{}{}
		if len(unique) > maxDenominations {
			return nil, ErrInvalidDenominations
		}
	}

	out := make([]int, 0, len(unique))
	for value := range unique {
		out = append(out, value)
	}
	sort.Ints(out)
	return out, nil
}
