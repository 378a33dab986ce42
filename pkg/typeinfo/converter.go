package typeinfo

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
)

// ErrConversion indicates a value that cannot be converted to the requested type
var ErrConversion = errors.New("conversion failed")

// LongWritable is a reusable holder for a bigint value, as handed out by hosts
// that recycle row objects instead of allocating per row.
type LongWritable struct {
	value int64
}

// NewLongWritable creates a holder with the given value
func NewLongWritable(v int64) *LongWritable {
	return &LongWritable{value: v}
}

// Get returns the held value
func (w *LongWritable) Get() int64 {
	return w.value
}

// Set replaces the held value
func (w *LongWritable) Set(v int64) {
	w.value = v
}

// LongConverter coerces a runtime value to bigint. A nil value is not a valid input:
// null handling belongs to the caller.
type LongConverter func(v any) (int64, error)

// GetLongConverter returns a converter from values described by from to bigint.
// Only integral primitives convert losslessly; everything else is rejected here so that
// the failure surfaces once at bind time instead of on every row.
func GetLongConverter(from TypeInfo) (LongConverter, error) {
	if from.Category != CategoryPrimitive {
		return nil, fmt.Errorf("%w: no converter from %s to bigint", ErrConversion, from.TypeName())
	}

	if !from.Primitive.IsIntegral() {
		return nil, fmt.Errorf("%w: no converter from %s to bigint", ErrConversion, from.TypeName())
	}

	return toLong, nil
}

func toLong(v any) (int64, error) {
	switch x := v.(type) {
	case int64:
		return x, nil
	case *LongWritable:
		if x == nil {
			break
		}
		return x.Get(), nil
	case LongWritable:
		return x.Get(), nil
	case *int64:
		if x == nil {
			break
		}
		return *x, nil
	case int:
		return int64(x), nil
	case int32:
		return int64(x), nil
	case int16:
		return int64(x), nil
	case int8:
		return int64(x), nil
	case uint32:
		return int64(x), nil
	case uint16:
		return int64(x), nil
	case uint8:
		return int64(x), nil
	case uint:
		if uint64(x) > math.MaxInt64 {
			return 0, fmt.Errorf("%w: uint %d overflows bigint", ErrConversion, x)
		}
		return int64(x), nil
	case uint64:
		if x > math.MaxInt64 {
			return 0, fmt.Errorf("%w: uint64 %d overflows bigint", ErrConversion, x)
		}
		return int64(x), nil
	case json.Number:
		n, err := x.Int64()
		if err != nil {
			return 0, fmt.Errorf("%w: json number %q is not a bigint", ErrConversion, x.String())
		}
		return n, nil
	}

	return 0, fmt.Errorf("%w: cannot convert %T to bigint", ErrConversion, v)
}
