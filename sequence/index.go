package sequence

import (
	"fmt"
	"math"
	"math/big"
	"strings"
)

// ToIndex converts v to an int index. Integral values of any Go integer
// type, *big.Int, *big.Rat, floats and numeric strings ("7", "14/2", "7.0")
// are accepted. Values that are not integral fail with ErrNotInteger.
func ToIndex(v any) (int, error) {
	switch x := v.(type) {
	case int:
		return x, nil
	case int8:
		return int(x), nil
	case int16:
		return int(x), nil
	case int32:
		return int(x), nil
	case int64:
		return fromInt64(x)
	case uint:
		return fromUint64(uint64(x))
	case uint8:
		return int(x), nil
	case uint16:
		return int(x), nil
	case uint32:
		return fromUint64(uint64(x))
	case uint64:
		return fromUint64(x)
	case *big.Int:
		if x == nil {
			return 0, fmt.Errorf("%w: nil", ErrNotInteger)
		}
		return fromBig(x)
	case *big.Rat:
		if x == nil {
			return 0, fmt.Errorf("%w: nil", ErrNotInteger)
		}
		if !x.IsInt() {
			return 0, fmt.Errorf("%w: %s", ErrNotInteger, x.RatString())
		}
		return fromBig(x.Num())
	case float32:
		return fromFloat(float64(x))
	case float64:
		return fromFloat(x)
	case string:
		r, ok := new(big.Rat).SetString(strings.TrimSpace(x))
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrNotInteger, x)
		}
		return ToIndex(r)
	default:
		return 0, fmt.Errorf("%w: unsupported type %T", ErrNotInteger, v)
	}
}

func fromInt64(x int64) (int, error) {
	if x < math.MinInt || x > math.MaxInt {
		return 0, fmt.Errorf("%w: %d", ErrIndexRange, x)
	}
	return int(x), nil
}

func fromUint64(x uint64) (int, error) {
	if x > math.MaxInt {
		return 0, fmt.Errorf("%w: %d", ErrIndexRange, x)
	}
	return int(x), nil
}

func fromBig(x *big.Int) (int, error) {
	if !x.IsInt64() {
		return 0, fmt.Errorf("%w: %s", ErrIndexRange, x)
	}
	return fromInt64(x.Int64())
}

func fromFloat(x float64) (int, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) || x != math.Trunc(x) {
		return 0, fmt.Errorf("%w: %v", ErrNotInteger, x)
	}
	if x < math.MinInt64 || x >= math.MaxInt64 {
		return 0, fmt.Errorf("%w: %v", ErrIndexRange, x)
	}
	return fromInt64(int64(x))
}
