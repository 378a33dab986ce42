package udf

import (
	"fmt"
	"strings"

	"github.com/vitalvas/longtoip/pkg/ipconv"
	"github.com/vitalvas/longtoip/pkg/log"
	"github.com/vitalvas/longtoip/pkg/typeinfo"
)

// LongToIPName is the name LongToIP is registered under
const LongToIPName = "LongToIP"

// LongToIP translates an IPv4 address held in a bigint into its dotted-quad string.
//
//	SELECT LongToIP(cast(iplong AS bigint)) FROM table;
type LongToIP struct {
	name      string
	policy    ipconv.OverflowPolicy
	logger    log.Logger
	converter typeinfo.LongConverter
}

// Option configures a LongToIP instance.
type Option func(*LongToIP)

// WithName overrides the name used in errors and display strings.
func WithName(name string) Option {
	return func(f *LongToIP) {
		f.name = name
	}
}

// WithOverflowPolicy sets how values outside the IPv4 range are treated.
func WithOverflowPolicy(p ipconv.OverflowPolicy) Option {
	return func(f *LongToIP) {
		f.policy = p
	}
}

// WithLogger sets the logger used for bind-time diagnostics. A nil logger keeps the default,
// which discards everything.
func WithLogger(l log.Logger) Option {
	return func(f *LongToIP) {
		if l != nil {
			f.logger = l
		}
	}
}

// NewLongToIP creates an uninitialized instance.
func NewLongToIP(opts ...Option) *LongToIP {
	f := &LongToIP{
		name:   LongToIPName,
		policy: ipconv.OverflowMask,
		logger: log.NewNop(),
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// Initialize checks that exactly one bigint argument is passed and returns the string type.
func (f *LongToIP) Initialize(args []typeinfo.TypeInfo) (typeinfo.TypeInfo, error) {
	f.converter = nil

	if len(args) != 1 {
		return typeinfo.TypeInfo{}, f.bindFailed(&ArityError{Function: f.name, Expected: 1, Got: len(args)})
	}

	arg := args[0]
	if arg.Category != typeinfo.CategoryPrimitive {
		return typeinfo.TypeInfo{}, f.bindFailed(&TypeError{
			Function: f.name,
			Position: 0,
			Expected: "primitive",
			Actual:   arg.TypeName(),
		})
	}

	if arg.Primitive != typeinfo.PrimitiveLong {
		return typeinfo.TypeInfo{}, f.bindFailed(&TypeError{
			Function: f.name,
			Position: 0,
			Expected: "long",
			Actual:   arg.TypeName(),
		})
	}

	converter, err := typeinfo.GetLongConverter(arg)
	if err != nil {
		return typeinfo.TypeInfo{}, f.bindFailed(fmt.Errorf("%s: %w", f.name, err))
	}
	f.converter = converter

	f.logger.WithFields(log.Fields{"function": f.name}).Debugf("bound %s(%s) -> string, overflow=%s",
		f.name, arg.TypeName(), f.policy)

	return typeinfo.String, nil
}

// Evaluate converts the single argument. It returns nil for a null argument.
func (f *LongToIP) Evaluate(args []Deferred) (any, error) {
	if len(args) != 1 {
		return nil, &ArityError{Function: f.name, Expected: 1, Got: len(args)}
	}

	s, ok, err := f.Apply(args[0])
	if err != nil || !ok {
		return nil, err
	}

	return s, nil
}

// Apply resolves arg once and converts it. ok is false when the argument is null.
func (f *LongToIP) Apply(arg Deferred) (ip string, ok bool, err error) {
	if f.converter == nil {
		return "", false, fmt.Errorf("%s: %w", f.name, ErrNotInitialized)
	}

	v, err := arg()
	if err != nil {
		return "", false, fmt.Errorf("%s: resolve argument: %w", f.name, err)
	}

	if isNull(v) {
		return "", false, nil
	}

	n, err := f.converter(v)
	if err != nil {
		return "", false, &CoercionError{Function: f.name, Cause: err}
	}

	n, err = ipconv.Check(n, f.policy)
	if err != nil {
		return "", false, &CoercionError{Function: f.name, Cause: err}
	}

	return ipconv.Format(n), true, nil
}

// DisplayString renders the call as it appears in explain output, e.g. "LongToIP(iplong)".
func (f *LongToIP) DisplayString(children []string) string {
	return f.name + "(" + strings.Join(children, ", ") + ")"
}

func (f *LongToIP) bindFailed(err error) error {
	f.logger.WithFields(log.Fields{"function": f.name}).Debugf("bind failed: %v", err)
	return err
}

func isNull(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case *int64:
		return x == nil
	case *typeinfo.LongWritable:
		return x == nil
	default:
		return false
	}
}
