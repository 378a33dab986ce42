// Package udf implements LongToIP as a scalar user-defined function with the two-phase
// lifecycle query engines expect: Initialize validates argument types once, Evaluate then
// runs once per row on lazily resolved arguments.
//
// Example usage:
//
//	f := udf.NewLongToIP()
//	if _, err := f.Initialize([]typeinfo.TypeInfo{typeinfo.Long}); err != nil {
//		return err
//	}
//	out, err := f.Evaluate([]udf.Deferred{udf.Value(int64(16843009))})
//	// out == "1.1.1.1"
package udf
