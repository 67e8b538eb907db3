package parity

import (
	"encoding/json"
	"math"
	"strconv"
)

// 2^63 as a float64; every float in [-2^63, 2^63) that has no fraction fits int64.
const int64Bound = float64(1 << 63)

func floatToInt(f float64) (int64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}

	if math.Trunc(f) != f || f < -int64Bound || f >= int64Bound {
		return 0, false
	}

	return int64(f), true
}

// FromFloats converts numbers that arrived as floating point (JSON, structpb)
// into integers. The first element with a fractional part, NaN, infinity or a
// magnitude outside int64 fails the whole conversion.
func FromFloats(values []float64) ([]int64, error) {
	res := make([]int64, len(values))

	for i, f := range values {
		v, ok := floatToInt(f)
		if !ok {
			return nil, &InvalidInputError{Index: i, Value: f}
		}

		res[i] = v
	}

	return res, nil
}

// FromAny converts dynamically typed values into integers. Any Go integer type,
// an integral float or an integral json.Number is accepted; everything else is
// an InvalidInputError.
func FromAny(values []any) ([]int64, error) {
	res := make([]int64, len(values))

	for i, value := range values {
		v, ok := anyToInt(value)
		if !ok {
			return nil, &InvalidInputError{Index: i, Value: value}
		}

		res[i] = v
	}

	return res, nil
}

func anyToInt(value any) (int64, bool) {
	switch v := value.(type) {
	case int:
		return int64(v), true
	case int8:
		return int64(v), true
	case int16:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case uint:
		return uintToInt(uint64(v))
	case uint8:
		return int64(v), true
	case uint16:
		return int64(v), true
	case uint32:
		return int64(v), true
	case uint64:
		return uintToInt(v)
	case float32:
		return floatToInt(float64(v))
	case float64:
		return floatToInt(v)
	case json.Number:
		if n, err := strconv.ParseInt(string(v), 10, 64); err == nil {
			return n, true
		}

		// Exponent forms such as 4e2 are still integers.
		if f, err := strconv.ParseFloat(string(v), 64); err == nil {
			return floatToInt(f)
		}

		return 0, false
	default:
		return 0, false
	}
}

func uintToInt(v uint64) (int64, bool) {
	if v > math.MaxInt64 {
		return 0, false
	}

	return int64(v), true
}
