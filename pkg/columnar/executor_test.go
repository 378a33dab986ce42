package columnar

import (
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalvas/longtoip/pkg/ipconv"
	"github.com/vitalvas/longtoip/pkg/typeinfo"
	"github.com/vitalvas/longtoip/pkg/udf"
)

func newBoundExecutor(t *testing.T, mem memory.Allocator, dt arrow.DataType, opts ...udf.Option) *Executor {
	t.Helper()

	e, err := NewExecutor(udf.NewRegistry(opts...), udf.LongToIPName, mem)
	require.NoError(t, err)
	require.NoError(t, e.Bind(dt))

	return e
}

func TestExecutor_ApplyInt64(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	builder := array.NewInt64Builder(mem)
	defer builder.Release()
	builder.AppendValues([]int64{0, 16843009, 0, 4294967295}, []bool{true, true, false, true})
	col := builder.NewInt64Array()
	defer col.Release()

	e := newBoundExecutor(t, mem, arrow.PrimitiveTypes.Int64)
	assert.Equal(t, typeinfo.String, e.OutputType())

	out, err := e.Apply(col)
	require.NoError(t, err)
	defer out.Release()

	require.Equal(t, 4, out.Len())
	assert.Equal(t, "0.0.0.0", out.Value(0))
	assert.Equal(t, "1.1.1.1", out.Value(1))
	assert.True(t, out.IsNull(2))
	assert.Equal(t, "255.255.255.255", out.Value(3))
	assert.Equal(t, 1, out.NullN())
}

func TestExecutor_ApplyUint32(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	builder := array.NewUint32Builder(mem)
	defer builder.Release()
	builder.AppendValues([]uint32{2130706433, 4294967295}, nil)
	col := builder.NewUint32Array()
	defer col.Release()

	e := newBoundExecutor(t, mem, arrow.PrimitiveTypes.Uint32)

	out, err := e.Apply(col)
	require.NoError(t, err)
	defer out.Release()

	assert.Equal(t, "127.0.0.1", out.Value(0))
	assert.Equal(t, "255.255.255.255", out.Value(1))
}

func TestExecutor_BindRejectsNonLong(t *testing.T) {
	tests := []struct {
		name      string
		dt        arrow.DataType
		errTarget error
	}{
		{"string", arrow.BinaryTypes.String, udf.ErrType},
		{"int32", arrow.PrimitiveTypes.Int32, udf.ErrType},
		{"double", arrow.PrimitiveTypes.Float64, udf.ErrType},
		{"list", arrow.ListOf(arrow.PrimitiveTypes.Int64), udf.ErrType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := NewExecutor(udf.NewRegistry(), udf.LongToIPName, nil)
			require.NoError(t, err)

			err = e.Bind(tt.dt)
			assert.ErrorIs(t, err, tt.errTarget)
		})
	}
}

func TestExecutor_BindUnsupportedArrowType(t *testing.T) {
	e, err := NewExecutor(udf.NewRegistry(), udf.LongToIPName, nil)
	require.NoError(t, err)

	err = e.Bind(arrow.FixedWidthTypes.Duration_s)
	assert.Error(t, err)
}

func TestExecutor_ApplyBeforeBind(t *testing.T) {
	e, err := NewExecutor(udf.NewRegistry(), udf.LongToIPName, nil)
	require.NoError(t, err)

	col, err := Int64Column(nil, []string{"1"})
	require.NoError(t, err)
	defer col.Release()

	_, err = e.Apply(col)
	assert.ErrorIs(t, err, ErrNotBound)
}

func TestExecutor_ApplyTypeMismatch(t *testing.T) {
	e := newBoundExecutor(t, nil, arrow.PrimitiveTypes.Uint32)

	col, err := Int64Column(nil, []string{"1"})
	require.NoError(t, err)
	defer col.Release()

	_, err = e.Apply(col)
	assert.Error(t, err)
}

func TestExecutor_ApplyRowError(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	col, err := Int64Column(mem, []string{"1", "-1"})
	require.NoError(t, err)
	defer col.Release()

	e := newBoundExecutor(t, mem, arrow.PrimitiveTypes.Int64, udf.WithOverflowPolicy(ipconv.OverflowReject))

	_, err = e.Apply(col)
	require.Error(t, err)
	assert.ErrorIs(t, err, udf.ErrCoercion)
	assert.Contains(t, err.Error(), "row 1")
}

func TestExecutor_Explain(t *testing.T) {
	e := newBoundExecutor(t, nil, arrow.PrimitiveTypes.Int64)
	assert.Equal(t, "LongToIP(iplong)", e.Explain("iplong"))
}

func TestNewExecutor_UnknownFunction(t *testing.T) {
	_, err := NewExecutor(udf.NewRegistry(), "nope", nil)
	assert.ErrorIs(t, err, udf.ErrUnknownFunction)
}

func TestTypeOf(t *testing.T) {
	tests := []struct {
		name     string
		dt       arrow.DataType
		expected string
	}{
		{"int64", arrow.PrimitiveTypes.Int64, "bigint"},
		{"uint32", arrow.PrimitiveTypes.Uint32, "bigint"},
		{"int32", arrow.PrimitiveTypes.Int32, "int"},
		{"int8", arrow.PrimitiveTypes.Int8, "tinyint"},
		{"float64", arrow.PrimitiveTypes.Float64, "double"},
		{"string", arrow.BinaryTypes.String, "string"},
		{"bool", arrow.FixedWidthTypes.Boolean, "boolean"},
		{"list", arrow.ListOf(arrow.PrimitiveTypes.Int64), "array<bigint>"},
		{"map", arrow.MapOf(arrow.BinaryTypes.String, arrow.PrimitiveTypes.Int32), "map<string,int>"},
		{"struct", arrow.StructOf(
			arrow.Field{Name: "ip", Type: arrow.PrimitiveTypes.Int64},
			arrow.Field{Name: "host", Type: arrow.BinaryTypes.String},
		), "struct<ip:bigint,host:string>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			typ, err := TypeOf(tt.dt)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, typ.TypeName())
		})
	}
}

func TestInt64Column(t *testing.T) {
	col, err := Int64Column(nil, []string{"16843009", " 42 ", "", "NULL", `\N`, "-5"})
	require.NoError(t, err)
	defer col.Release()

	require.Equal(t, 6, col.Len())
	assert.Equal(t, int64(16843009), col.Value(0))
	assert.Equal(t, int64(42), col.Value(1))
	assert.True(t, col.IsNull(2))
	assert.True(t, col.IsNull(3))
	assert.True(t, col.IsNull(4))
	assert.Equal(t, int64(-5), col.Value(5))

	_, err = Int64Column(nil, []string{"1", "1.1.1.1"})
	assert.ErrorContains(t, err, "field 2")
}

func TestIsNullToken(t *testing.T) {
	for _, s := range []string{"", "null", "NULL", "Null", `\N`} {
		assert.True(t, IsNullToken(s), s)
	}
	for _, s := range []string{"0", "nil", "N"} {
		assert.False(t, IsNullToken(s), s)
	}
}

func TestValueReader(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	i64 := array.NewInt64Builder(mem)
	defer i64.Release()
	i64.Append(-1)
	i64Col := i64.NewInt64Array()
	defer i64Col.Release()

	read, err := valueReader(i64Col)
	require.NoError(t, err)
	assert.Equal(t, int64(-1), read(0))

	u32 := array.NewUint32Builder(mem)
	defer u32.Release()
	u32.Append(4294967295)
	u32Col := u32.NewUint32Array()
	defer u32Col.Release()

	read, err = valueReader(u32Col)
	require.NoError(t, err)
	assert.Equal(t, uint32(4294967295), read(0))

	i32 := array.NewInt32Builder(mem)
	defer i32.Release()
	i32.Append(1)
	i32Col := i32.NewInt32Array()
	defer i32Col.Release()

	read, err = valueReader(i32Col)
	require.Error(t, err)
	assert.Nil(t, read)
	assert.Contains(t, err.Error(), "int32")
}
