package pure

import (
	"fmt"
	"strings"
)

// Tableize1 memoizes a single-argument pure function.
// Successful results are cached under the canonical text of the argument;
// errors pass through uncached.
func Tableize1[I1 any, O any](
	pureFn func(I1) (O, error),
	maxTableSize int,
) func(I1) (O, error) {
	memo := NewTable[O](maxTableSize)
	return func(i1 I1) (O, error) {
		return tableized(memo, TableKey(i1), func() (O, error) {
			return pureFn(i1)
		})
	}
}

// Tableize2 memoizes a two-argument pure function.
func Tableize2[I1, I2 any, O any](
	pureFn func(I1, I2) (O, error),
	maxTableSize int,
) func(I1, I2) (O, error) {
	memo := NewTable[O](maxTableSize)
	return func(i1 I1, i2 I2) (O, error) {
		return tableized(memo, TableKey(i1, i2), func() (O, error) {
			return pureFn(i1, i2)
		})
	}
}

// TableKey renders args into the canonical text used as a table key.
// fmt.Stringer values use String(); everything else uses %v.
func TableKey(args ...any) string {
	var sb strings.Builder
	for i, arg := range args {
		if i > 0 {
			sb.WriteByte(0x1f)
		}
		if stringer, ok := arg.(fmt.Stringer); ok {
			sb.WriteString(stringer.String())
			continue
		}
		fmt.Fprintf(&sb, "%v", arg)
	}
	return sb.String()
}

func tableized[O any](memo *Table[O], key string, compute func() (O, error)) (O, error) {
	if v, ok := memo.Load(key); ok {
		return v, nil
	}
	v, err := compute()
	if err != nil {
		return v, err
	}
	memo.Store(key, v)
	return v, nil
}
