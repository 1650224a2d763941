package currency

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	halfpencePerPenny    = 2
	halfpencePerShilling = 24
	shillingsPerPound    = 20
	halfpencePerPound    = halfpencePerShilling * shillingsPerPound
)

// ErrInvalidPrice is returned when slash notation cannot be parsed into a price.
var ErrInvalidPrice = errors.New("invalid price notation")

// Price is a composite pound/shilling/pence amount. The pence component is
// held in halfpence so the halfpenny stays representable.
type Price struct {
	Pounds    int
	Shillings int
	Halfpence int
}

// NewPrice builds a price from its components without normalising them;
// 25 shillings stays 25 shillings until arithmetic carries it.
func NewPrice(pounds, shillings, halfpence int) Price {
	return Price{Pounds: pounds, Shillings: shillings, Halfpence: halfpence}
}

// PriceFromHalfpence converts a halfpence value to a carried price.
func PriceFromHalfpence(halfpence int) Price {
	shillings := halfpence / halfpencePerShilling
	return Price{
		Pounds:    shillings / shillingsPerPound,
		Shillings: shillings % shillingsPerPound,
		Halfpence: halfpence % halfpencePerShilling,
	}
}

// PriceFromPence converts a pence value to a carried price.
func PriceFromPence(pence int) Price {
	return PriceFromHalfpence(pence * halfpencePerPenny)
}

// ToHalfpence returns the price's value in halfpence.
func (p Price) ToHalfpence() int {
	return p.Pounds*halfpencePerPound + p.Shillings*halfpencePerShilling + p.Halfpence
}

// Add returns the sum of two prices with pence and shilling carries applied.
func (p Price) Add(q Price) Price {
	temp := p.Halfpence + q.Halfpence
	halfpence := temp % halfpencePerShilling
	temp = temp/halfpencePerShilling + p.Shillings + q.Shillings
	return Price{
		Pounds:    temp/shillingsPerPound + p.Pounds + q.Pounds,
		Shillings: temp % shillingsPerPound,
		Halfpence: halfpence,
	}
}

// Sum folds prices together with carrying.
func Sum(prices []Price) Price {
	var total Price
	for _, p := range prices {
		total = total.Add(p)
	}
	return total
}

// String renders the price in the customary form, e.g. "£2 5s 11d".
// An odd halfpence component shows the halfpenny: "£0 0s 2½d".
func (p Price) String() string {
	pence := strconv.Itoa(p.Halfpence / halfpencePerPenny)
	if p.Halfpence%halfpencePerPenny != 0 {
		pence += "½"
	}
	return fmt.Sprintf("£%d %ds %sd", p.Pounds, p.Shillings, pence)
}

// ParsePrice reads the slash notation commonly used for £sd amounts:
//
//	"3/16/11"  £3 16s 11d
//	"5/2"      5s 2d
//	"1/4/-"    £1 4s 0d
//	"-/2"      2d
//	"0"        nothing at all
//
// A dash stands for an omitted component. Two components mean
// shillings/pence, three mean pounds/shillings/pence.
func ParsePrice(notation string) (Price, error) {
	trimmed := strings.TrimSpace(notation)
	if trimmed == "0" {
		return Price{}, nil
	}

	parts := strings.Split(trimmed, "/")
	for i, part := range parts {
		parts[i] = strings.TrimSpace(part)
	}

	switch len(parts) {
	case 2:
		shillings, err := parseComponent(parts[0])
		if err != nil {
			return Price{}, fmt.Errorf("%w: %q", ErrInvalidPrice, notation)
		}
		pence, err := parseComponent(parts[1])
		if err != nil {
			return Price{}, fmt.Errorf("%w: %q", ErrInvalidPrice, notation)
		}
		return Price{Shillings: shillings, Halfpence: pence * halfpencePerPenny}, nil
	case 3:
		pounds, err := parseComponent(parts[0])
		if err != nil {
			return Price{}, fmt.Errorf("%w: %q", ErrInvalidPrice, notation)
		}
		shillings, err := parseComponent(parts[1])
		if err != nil {
			return Price{}, fmt.Errorf("%w: %q", ErrInvalidPrice, notation)
		}
		pence, err := parseComponent(parts[2])
		if err != nil {
			return Price{}, fmt.Errorf("%w: %q", ErrInvalidPrice, notation)
		}
		return Price{Pounds: pounds, Shillings: shillings, Halfpence: pence * halfpencePerPenny}, nil
	default:
		return Price{}, fmt.Errorf("%w: %q", ErrInvalidPrice, notation)
	}
}

func parseComponent(part string) (int, error) {
	if part == "-" {
		return 0, nil
	}
	value, err := strconv.Atoi(part)
	if err != nil {
		return 0, err
	}
	if value < 0 {
		return 0, fmt.Errorf("negative component %d", value)
	}
	return value, nil
}
