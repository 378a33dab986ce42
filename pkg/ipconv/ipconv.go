package ipconv

import (
	"errors"
	"fmt"
	"strconv"
)

const (
	// MaxIPv4 is the largest value representable as an IPv4 address (255.255.255.255)
	MaxIPv4 int64 = 1<<32 - 1

	// MaxLen is the length of the longest dotted quad ("255.255.255.255")
	MaxLen = 15
)

var (
	// ErrInvalidAddress indicates a string that is not a canonical dotted quad
	ErrInvalidAddress = errors.New("invalid IPv4 address")
	// ErrOutOfRange indicates a value outside [0, MaxIPv4] rejected by OverflowReject
	ErrOutOfRange = errors.New("value out of IPv4 range")
)

// OverflowPolicy controls how values outside [0, MaxIPv4] are handled.
type OverflowPolicy int

const (
	// OverflowMask keeps the low 32 bits and discards the rest.
	OverflowMask OverflowPolicy = iota
	// OverflowReject fails with ErrOutOfRange.
	OverflowReject
)

// String returns the string representation of the overflow policy
func (p OverflowPolicy) String() string {
	switch p {
	case OverflowMask:
		return "mask"
	case OverflowReject:
		return "reject"
	default:
		return "unknown"
	}
}

// ParseOverflowPolicy parses "mask" or "reject". An empty string selects OverflowMask.
func ParseOverflowPolicy(s string) (OverflowPolicy, error) {
	switch s {
	case "", "mask":
		return OverflowMask, nil
	case "reject":
		return OverflowReject, nil
	default:
		return OverflowMask, fmt.Errorf("unknown overflow policy %q (must be 'mask' or 'reject')", s)
	}
}

// Check applies the overflow policy to ip and returns the value to be formatted.
func Check(ip int64, policy OverflowPolicy) (int64, error) {
	if uint64(ip) <= uint64(MaxIPv4) {
		return ip, nil
	}

	if policy == OverflowReject {
		return 0, fmt.Errorf("%w: %d", ErrOutOfRange, ip)
	}

	return ip & MaxIPv4, nil
}

// AppendFormat appends the dotted quad of the low 32 bits of ip to dst.
func AppendFormat(dst []byte, ip int64) []byte {
	// mask after shifting: arithmetic shift of a negative value sign-extends
	dst = strconv.AppendUint(dst, uint64((ip>>24)&0xFF), 10)
	dst = append(dst, '.')
	dst = strconv.AppendUint(dst, uint64((ip>>16)&0xFF), 10)
	dst = append(dst, '.')
	dst = strconv.AppendUint(dst, uint64((ip>>8)&0xFF), 10)
	dst = append(dst, '.')
	return strconv.AppendUint(dst, uint64(ip&0xFF), 10)
}

// Format returns the dotted quad of the low 32 bits of ip.
//
//	Format(16843009) == "1.1.1.1"
func Format(ip int64) string {
	var buf [MaxLen]byte
	return string(AppendFormat(buf[:0], ip))
}

// Parse converts a canonical dotted quad back to its integer value.
// Each octet must be a decimal number in [0, 255] without sign, whitespace or leading zeros.
func Parse(s string) (int64, error) {
	if len(s) == 0 || len(s) > MaxLen {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAddress, s)
	}

	var ip int64
	pos := 0

	for i := 0; i < 4; i++ {
		if i > 0 {
			if pos >= len(s) || s[pos] != '.' {
				return 0, fmt.Errorf("%w: %q", ErrInvalidAddress, s)
			}
			pos++
		}

		start := pos
		octet := 0
		for pos < len(s) && s[pos] >= '0' && s[pos] <= '9' {
			octet = octet*10 + int(s[pos]-'0')
			pos++
			if pos-start > 3 {
				return 0, fmt.Errorf("%w: %q", ErrInvalidAddress, s)
			}
		}

		switch {
		case pos == start:
			return 0, fmt.Errorf("%w: %q: empty octet", ErrInvalidAddress, s)
		case pos-start > 1 && s[start] == '0':
			return 0, fmt.Errorf("%w: %q: leading zero in octet %d", ErrInvalidAddress, s, i+1)
		case octet > 255:
			return 0, fmt.Errorf("%w: %q: octet %d out of range", ErrInvalidAddress, s, i+1)
		}

		ip = ip<<8 | int64(octet)
	}

	if pos != len(s) {
		return 0, fmt.Errorf("%w: %q: trailing data", ErrInvalidAddress, s)
	}

	return ip, nil
}
