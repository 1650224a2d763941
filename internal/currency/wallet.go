package currency

import (
	"errors"
	"fmt"

	"github.com/oldpence/change-calculator/internal/change"
)

// ErrNotInWallet is returned when removing a denomination the wallet does not hold.
var ErrNotInWallet = errors.New("denomination not present in wallet")

// Wallet is a container for coins and notes, tallied per denomination.
// The zero value is an empty wallet; wallets compare with ==.
type Wallet struct {
	counts [numCurrencies]int
}

// Add puts one coin or note into the wallet.
func (w *Wallet) Add(c Currency) {
	w.counts[c]++
}

// Remove takes one coin or note out of the wallet. Removing a denomination
// the wallet does not hold is an error, not a wrap-around.
func (w *Wallet) Remove(c Currency) error {
	if w.counts[c] == 0 {
		return fmt.Errorf("%w: %s", ErrNotInWallet, c)
	}
	w.counts[c]--
	return nil
}

// Count returns how many pieces of the denomination the wallet holds.
func (w Wallet) Count(c Currency) int {
	return w.counts[c]
}

// TotalPieces returns the number of coins and notes in the wallet.
func (w Wallet) TotalPieces() int {
	total := 0
	for _, n := range w.counts {
		total += n
	}
	return total
}

// ToHalfpence returns the wallet's value in halfpence.
func (w Wallet) ToHalfpence() int {
	total := 0
	for c, n := range w.counts {
		total += n * halfpenceValues[c]
	}
	return total
}

// Price returns the wallet's value as a composite price.
func (w Wallet) Price() Price {
	return PriceFromHalfpence(w.ToHalfpence())
}

// MakeChange breaks a price into the fewest coins and notes of the standard
// denomination set.
func MakeChange(solver change.Solver, p Price) (Wallet, error) {
	var wallet Wallet

	pieces, err := solver.Change(p.ToHalfpence(), Values())
	if err != nil {
		return Wallet{}, err
	}
	for _, value := range pieces {
		c, ok := FromHalfpence(value)
		if !ok {
			return Wallet{}, fmt.Errorf("no denomination worth %d halfpence", value)
		}
		wallet.Add(c)
	}

	return wallet, nil
}
