package udf

import "github.com/vitalvas/longtoip/pkg/typeinfo"

// GenericUDF is a scalar row function driven by a host query engine.
//
// The host calls Initialize once with the argument types, then Evaluate once per row.
// An instance is owned by a single worker; hosts that run in parallel create one
// instance per worker and initialize each independently.
type GenericUDF interface {
	// Initialize validates the argument types and returns the result type.
	Initialize(args []typeinfo.TypeInfo) (typeinfo.TypeInfo, error)

	// Evaluate computes the result for one row. A nil result is SQL NULL.
	Evaluate(args []Deferred) (any, error)

	// DisplayString renders the call for plan explain output.
	DisplayString(children []string) string
}
