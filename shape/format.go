package shape

import (
	"fmt"
	"math"

	"github.com/erraggy/oaslint/cache"
)

type formatInput struct {
	format string
	value  any
}

func formatKey(in formatInput) string {
	return fmt.Sprintf("format:%s:%T:%v", in.format, in.value, in.value)
}

// newFormatChecker returns a memoized numeric format check. The result is an
// empty string when value satisfies format, otherwise the reason it does not.
func newFormatChecker(fragments *cache.Cache[any]) func(format string, value any) string {
	memo := cache.Memoize(fragments, func(in formatInput) any {
		return checkNumericFormat(in.format, in.value)
	}, formatKey)
	return func(format string, value any) string {
		return memo(formatInput{format: format, value: value}).(string)
	}
}

func checkNumericFormat(format string, value any) string {
	switch format {
	case "int32":
		n, ok := integral(value)
		if !ok {
			return "must be an integer"
		}
		if n < math.MinInt32 || n > math.MaxInt32 {
			return "does not fit in int32"
		}
	case "int64":
		if _, ok := integral(value); !ok {
			if u, isUint := value.(uint64); isUint && u > math.MaxInt64 {
				return "does not fit in int64"
			}
			if f, isFloat := value.(float64); isFloat && f == math.Trunc(f) && !math.IsInf(f, 0) {
				return "does not fit in int64"
			}
			return "must be an integer"
		}
	case "float":
		f, ok := toFloat(value)
		if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
			return "must be a finite number"
		}
		if math.Abs(f) > math.MaxFloat32 {
			return "does not fit in float"
		}
	case "double":
		f, ok := toFloat(value)
		if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
			return "must be a finite number"
		}
	}
	return ""
}

// integral returns value as int64 when it is an integer or a float64 with no
// fractional part.
func integral(value any) (int64, bool) {
	switch v := value.(type) {
	case int:
		return int64(v), true
	case int64:
		return v, true
	case uint64:
		if v > math.MaxInt64 {
			return 0, false
		}
		return int64(v), true
	case float64:
		if v != math.Trunc(v) || math.IsInf(v, 0) || v < math.MinInt64 || v >= math.MaxInt64 {
			return 0, false
		}
		return int64(v), true
	default:
		return 0, false
	}
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint64:
		return float64(v), true
	case float64:
		return v, true
	default:
		return 0, false
	}
}

func isInteger(value any) bool {
	if _, ok := value.(uint64); ok {
		return true
	}
	_, ok := integral(value)
	return ok
}
