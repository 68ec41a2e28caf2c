package filterbank

import (
	"errors"
	"fmt"
)

// Construction errors.
var (
	ErrInvalidQ         = errors.New("filterbank: Q must be >= 1")
	ErrInvalidSupport   = errors.New("filterbank: log2 support must be in [1, 24]")
	ErrInvalidScale     = errors.New("filterbank: J must be >= 0")
	ErrInvalidPMax      = errors.New("filterbank: P_max must be >= 1")
	ErrInvalidOption    = errors.New("filterbank: invalid option")
	ErrInvalidLength    = errors.New("filterbank: filter length must be > 0")
	ErrInvalidPeriods   = errors.New("filterbank: periods must divide the filter length")
	ErrDegenerateFilter = errors.New("filterbank: near-zero time-domain mass, normalization would divide by zero")
)

const maxLogSupport = 24

func validateShape(logN, j, q int) error {
	if logN < 1 || logN > maxLogSupport {
		return fmt.Errorf("%w: %d", ErrInvalidSupport, logN)
	}
	if j < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidScale, j)
	}
	return validateQ(q)
}

func validateQ(q int) error {
	if q < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidQ, q)
	}
	return nil
}

func validateLength(n int) error {
	if n <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}
	return nil
}
