package sequence

import (
	"errors"
	"fmt"
)

var (
	// ErrDomain is matched by every *DomainError.
	ErrDomain = errors.New("input outside the sequence domain")
	// ErrNotInteger reports an index that is not integer-valued, e.g. 5/2.
	ErrNotInteger   = errors.New("index is not an integer")
	ErrIndexRange   = errors.New("index does not fit in an int")
	ErrSliceTooLong = errors.New("slice too long")
	// ErrUnbounded is returned when asked to iterate a whole sequence.
	ErrUnbounded = errors.New("sequence is unbounded; use Terms or List")
)

// DomainError reports an index below the offset of a sequence.
type DomainError struct {
	Input  string
	Offset int
}

func (e *DomainError) Error() string {
	if e.Offset == 1 {
		return fmt.Sprintf("input n (=%s) must be a positive integer", e.Input)
	}
	return fmt.Sprintf("input n (=%s) must be an integer >= %d", e.Input, e.Offset)
}

func (e *DomainError) Is(target error) bool {
	return target == ErrDomain
}
