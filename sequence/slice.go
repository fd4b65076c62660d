package sequence

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// SliceCeiling bounds how many absolute positions a slice may span.
// List has no ceiling.
const SliceCeiling = 100000

// SliceSpec selects absolute positions the way a slice expression does.
// A nil field is omitted and takes its default.
type SliceSpec struct {
	Start, Stop, Step *int
}

// Span is the slice [start:stop].
func Span(start, stop int) SliceSpec {
	return SliceSpec{Start: &start, Stop: &stop}
}

// ParseSlice parses "start:stop" or "start:stop:step"; any part may be empty.
func ParseSlice(text string) (SliceSpec, error) {
	parts := strings.Split(text, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return SliceSpec{}, fmt.Errorf("invalid slice %q: want start:stop[:step]", text)
	}
	fields := make([]*int, 3)
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		v, err := strconv.Atoi(p)
		if err != nil {
			return SliceSpec{}, fmt.Errorf("invalid slice %q: %w", text, err)
		}
		fields[i] = &v
	}
	return SliceSpec{Start: fields[0], Stop: fields[1], Step: fields[2]}, nil
}

func (sp SliceSpec) String() string {
	part := func(p *int) string {
		if p == nil {
			return ""
		}
		return strconv.Itoa(*p)
	}
	if sp.Step == nil {
		return part(sp.Start) + ":" + part(sp.Stop)
	}
	return part(sp.Start) + ":" + part(sp.Stop) + ":" + part(sp.Step)
}

// indices resolves the spec against a sequence of the given length, with
// negative values counting from the end and out of range values clamped.
func (sp SliceSpec) indices(length int) (start, stop, step int, err error) {
	step = 1
	if sp.Step != nil {
		step = *sp.Step
	}
	if step == 0 {
		return 0, 0, 0, fmt.Errorf("%w: slice step cannot be zero", ErrDomain)
	}

	lower, upper := 0, length
	if step < 0 {
		lower, upper = -1, length-1
	}
	clamp := func(p *int, def int) int {
		if p == nil {
			return def
		}
		v := *p
		if v < 0 {
			v += length
			if v < lower {
				v = lower
			}
		} else if v > upper {
			v = upper
		}
		return v
	}

	if step < 0 {
		return clamp(sp.Start, upper), clamp(sp.Stop, lower), step, nil
	}
	return clamp(sp.Start, lower), clamp(sp.Stop, upper), step, nil
}

// Slice evaluates the absolute positions selected by spec among the first
// SliceCeiling positions. Positions below the offset are skipped. A spec
// spanning more than SliceCeiling positions fails with ErrSliceTooLong.
func (s *Sequence) Slice(spec SliceSpec) ([]*big.Int, error) {
	start, stop, _, err := spec.indices(2 * SliceCeiling)
	if err != nil {
		return nil, err
	}
	if span := stop - start; span > SliceCeiling || -span > SliceCeiling {
		return nil, fmt.Errorf("%w: slice (=%s) spans %d positions, more than %d", ErrSliceTooLong, spec, abs(span), SliceCeiling)
	}

	start, stop, step, err := spec.indices(SliceCeiling)
	if err != nil {
		return nil, err
	}
	var out []*big.Int
	for i := start; (step > 0 && i < stop) || (step < 0 && i > stop); i += step {
		if i < s.offset {
			continue
		}
		v, err := s.Eval(i)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if out == nil {
		out = []*big.Int{}
	}
	return out, nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
