package columnar

import (
	"errors"
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/vitalvas/longtoip/pkg/typeinfo"
	"github.com/vitalvas/longtoip/pkg/udf"
)

// ErrNotBound indicates Apply was called before a successful Bind
var ErrNotBound = errors.New("executor not bound")

// Executor drives one scalar function instance over Arrow columns, row by row.
// It is not safe for concurrent use; parallel hosts create one Executor per worker.
type Executor struct {
	name   string
	fn     udf.GenericUDF
	mem    memory.Allocator
	input  arrow.DataType
	output typeinfo.TypeInfo
}

// NewExecutor creates an executor with its own instance of the named function.
// A nil allocator selects memory.DefaultAllocator.
func NewExecutor(registry *udf.Registry, name string, mem memory.Allocator) (*Executor, error) {
	fn, err := registry.New(name)
	if err != nil {
		return nil, err
	}

	if mem == nil {
		mem = memory.DefaultAllocator
	}

	return &Executor{
		name: name,
		fn:   fn,
		mem:  mem,
	}, nil
}

// Bind initializes the function for single-argument calls on columns of type input.
func (e *Executor) Bind(input arrow.DataType) error {
	e.input = nil

	argType, err := TypeOf(input)
	if err != nil {
		return fmt.Errorf("bind %s: %w", e.name, err)
	}

	out, err := e.fn.Initialize([]typeinfo.TypeInfo{argType})
	if err != nil {
		return err
	}

	if !out.IsPrimitive(typeinfo.PrimitiveString) {
		return fmt.Errorf("bind %s: unsupported result type %s", e.name, out.TypeName())
	}

	e.input = input
	e.output = out

	return nil
}

// OutputType returns the result type reported by the function at bind time.
func (e *Executor) OutputType() typeinfo.TypeInfo {
	return e.output
}

// Explain renders the call for a column named column.
func (e *Executor) Explain(column string) string {
	return e.fn.DisplayString([]string{column})
}

// Apply evaluates the function once per row of col. Null rows produce null results.
// The caller owns the returned array and must Release it.
func (e *Executor) Apply(col arrow.Array) (*array.String, error) {
	if e.input == nil {
		return nil, ErrNotBound
	}

	if !arrow.TypeEqual(col.DataType(), e.input) {
		return nil, fmt.Errorf("%s bound to %s, got column of type %s", e.name, e.input, col.DataType())
	}

	read, err := valueReader(col)
	if err != nil {
		return nil, err
	}

	builder := array.NewStringBuilder(e.mem)
	defer builder.Release()
	builder.Reserve(col.Len())

	row := 0
	args := []udf.Deferred{func() (any, error) {
		if col.IsNull(row) {
			return nil, nil
		}
		return read(row), nil
	}}

	for ; row < col.Len(); row++ {
		out, err := e.fn.Evaluate(args)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}

		switch v := out.(type) {
		case nil:
			builder.AppendNull()
		case string:
			builder.Append(v)
		default:
			return nil, fmt.Errorf("row %d: %s returned %T, expected string", row, e.name, out)
		}
	}

	return builder.NewStringArray(), nil
}

// valueReader returns the row accessor for the column types TypeOf maps to bigint.
func valueReader(col arrow.Array) (func(i int) any, error) {
	switch a := col.(type) {
	case *array.Int64:
		return func(i int) any { return a.Value(i) }, nil
	case *array.Uint32:
		return func(i int) any { return a.Value(i) }, nil
	default:
		return nil, fmt.Errorf("no bigint reader for column of type %s", col.DataType())
	}
}
