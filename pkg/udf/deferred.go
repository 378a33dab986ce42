package udf

// Deferred is a lazily resolved argument. The host hands one per argument per row;
// the function forces it only when it needs the value.
type Deferred func() (any, error)

// Value wraps an already resolved value.
func Value(v any) Deferred {
	return func() (any, error) {
		return v, nil
	}
}
