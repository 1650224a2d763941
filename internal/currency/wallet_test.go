package currency

import (
	"errors"
	"testing"

	"github.com/oldpence/change-calculator/internal/change"
)

func TestWalletAddRemove(t *testing.T) {
	t.Parallel()

	var w Wallet
	w.Add(Crown)
	w.Add(Crown)
	w.Add(Halfpenny)

	if got := w.Count(Crown); got != 2 {
		t.Fatalf("expected 2 crowns, got %d", got)
	}
	if got := w.TotalPieces(); got != 3 {
		t.Fatalf("expected 3 pieces, got %d", got)
	}

	if err := w.Remove(Crown); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := w.Count(Crown); got != 1 {
		t.Fatalf("expected 1 crown after removal, got %d", got)
	}
}

func TestWalletRemoveUnderflow(t *testing.T) {
	t.Parallel()

	var w Wallet
	if err := w.Remove(Florin); !errors.Is(err, ErrNotInWallet) {
		t.Fatalf("expected ErrNotInWallet, got %v", err)
	}
	if got := w.Count(Florin); got != 0 {
		t.Fatalf("expected count to stay 0, got %d", got)
	}
}

func TestWalletToHalfpence(t *testing.T) {
	t.Parallel()

	var w Wallet
	w.Add(TenPound)
	w.Add(Shilling)
	w.Add(Shilling)
	w.Add(Threepence)

	if got, want := w.ToHalfpence(), 4800+24+24+6; got != want {
		t.Fatalf("expected %d halfpence, got %d", want, got)
	}
	if got, want := w.Price(), (Price{Pounds: 10, Shillings: 2, Halfpence: 6}); got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestMakeChange(t *testing.T) {
	t.Parallel()

	// £3 16s 11d + £5 15s 10d = £9 12s 9d
	total := Price{Pounds: 3, Shillings: 16, Halfpence: 22}.Add(Price{Pounds: 5, Shillings: 15, Halfpence: 20})

	got, err := MakeChange(change.New(), total)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var want Wallet
	want.Add(FivePound)
	for i := 0; i < 4; i++ {
		want.Add(OnePound)
	}
	want.Add(Crown)
	want.Add(Crown)
	want.Add(HalfCrown)
	want.Add(Threepence)

	if got != want {
		t.Fatalf("unexpected change: got %+v want %+v", got, want)
	}
	if got.ToHalfpence() != total.ToHalfpence() {
		t.Fatalf("change does not sum to the price")
	}
}

func TestMakeChangeZeroPrice(t *testing.T) {
	t.Parallel()

	got, err := MakeChange(change.New(), Price{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != (Wallet{}) {
		t.Fatalf("expected empty wallet, got %+v", got)
	}
}
