package seqs

import "golang.org/x/xerrors"

var (
	// ErrInvalidSize is returned when a chunk size is not a positive integer.
	ErrInvalidSize = xerrors.New("size must be a positive integer")
	// ErrNegativeCount is returned when a take count is negative.
	ErrNegativeCount = xerrors.New("count must not be negative")
)
