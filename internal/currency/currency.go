package currency

// Currency is a single coin or note of the pre-decimal system. The crown
// saw little day-to-day use but was legal tender all the same.
type Currency int

const (
	Halfpenny Currency = iota
	Penny
	Threepence
	Sixpence
	Shilling
	Florin
	HalfCrown
	Crown
	OnePound
	FivePound
	TenPound

	numCurrencies = iota
)

var halfpenceValues = [numCurrencies]int{
	Halfpenny:  1,
	Penny:      2,
	Threepence: 6,
	Sixpence:   12,
	Shilling:   24,
	Florin:     48,
	HalfCrown:  60,
	Crown:      120,
	OnePound:   480,
	FivePound:  2400,
	TenPound:   4800,
}

var names = [numCurrencies]string{
	Halfpenny:  "halfpenny",
	Penny:      "penny",
	Threepence: "threepence",
	Sixpence:   "sixpence",
	Shilling:   "shilling",
	Florin:     "florin",
	HalfCrown:  "half_crown",
	Crown:      "crown",
	OnePound:   "one_pound",
	FivePound:  "five_pound",
	TenPound:   "ten_pound",
}

// Halfpence returns the value of the denomination in halfpence.
func (c Currency) Halfpence() int {
	return halfpenceValues[c]
}

// String returns the denomination name used in JSON payloads and logs.
func (c Currency) String() string {
	if c < 0 || c >= numCurrencies {
		return "unknown"
	}
	return names[c]
}

// Price returns the denomination's value as a composite price.
func (c Currency) Price() Price {
	return PriceFromHalfpence(c.Halfpence())
}

// FromHalfpence looks up the denomination worth exactly the given halfpence
// value. For example, 48 gives Florin. The second return value is false when
// no denomination matches.
func FromHalfpence(halfpence int) (Currency, bool) {
	for c, v := range halfpenceValues {
		if v == halfpence {
			return Currency(c), true
		}
	}
	return 0, false
}

// All returns every denomination, smallest first.
func All() []Currency {
	out := make([]Currency, numCurrencies)
	for i := range out {
		out[i] = Currency(i)
	}
	return out
}

// Values returns the halfpence values of every denomination in ascending
// order. This is the standard denomination set handed to the change solver.
func Values() []int {
	out := make([]int, numCurrencies)
	copy(out, halfpenceValues[:])
	return out
}
