package longtoip

import (
	"github.com/vitalvas/longtoip/pkg/ipconv"
	"github.com/vitalvas/longtoip/pkg/udf"
)

// LongToIP returns the dotted quad of the low 32 bits of ip.
func LongToIP(ip int64) string {
	return ipconv.Format(ip)
}

// IPToLong parses a canonical dotted quad into its integer value.
func IPToLong(s string) (int64, error) {
	return ipconv.Parse(s)
}

// NewDefault creates a function registry with LongToIP registered.
// This is a convenience function for hosts that want the standard functions without
// wiring the registry themselves.
//
// Example usage:
//
//	registry := NewDefault()
//	fn, err := registry.New("LongToIP")
//	if err != nil {
//		return err
//	}
//	if _, err := fn.Initialize([]typeinfo.TypeInfo{typeinfo.Long}); err != nil {
//		return err
//	}
func NewDefault(opts ...udf.Option) *udf.Registry {
	return udf.NewRegistry(opts...)
}
