package datrie

import "fmt"

// ErrInvalidAlphabetSize is returned by New when alphabetSize is not positive.
var ErrInvalidAlphabetSize = fmt.Errorf("datrie: alphabet size must be positive")

// ErrSymbolOutOfAlphabet is returned whenever an input rune falls outside the
// configured alphabet. The reference implementation left this choice open;
// this package rejects rather than producing an undefined offset.
var ErrSymbolOutOfAlphabet = fmt.Errorf("datrie: symbol out of alphabet")
