package longtoip

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalvas/longtoip/pkg/typeinfo"
	"github.com/vitalvas/longtoip/pkg/udf"
)

func TestLongToIP(t *testing.T) {
	assert.Equal(t, "0.0.0.0", LongToIP(0))
	assert.Equal(t, "255.255.255.255", LongToIP(4294967295))
	assert.Equal(t, "1.1.1.1", LongToIP(16843009))
}

func TestIPToLong(t *testing.T) {
	ip, err := IPToLong("1.1.1.1")
	require.NoError(t, err)
	assert.Equal(t, int64(16843009), ip)

	_, err = IPToLong("1.1.1")
	assert.Error(t, err)
}

func TestNewDefault(t *testing.T) {
	registry := NewDefault()

	fn, err := registry.New(udf.LongToIPName)
	require.NoError(t, err)

	out, err := fn.Initialize([]typeinfo.TypeInfo{typeinfo.Long})
	require.NoError(t, err)
	assert.Equal(t, "string", out.TypeName())

	v, err := fn.Evaluate([]udf.Deferred{udf.Value(int64(16843009))})
	require.NoError(t, err)
	assert.Equal(t, "1.1.1.1", v)

	v, err = fn.Evaluate([]udf.Deferred{udf.Value(nil)})
	require.NoError(t, err)
	assert.Nil(t, v)
}

func ExampleLongToIP() {
	fmt.Println(LongToIP(16843009))
	// Output: 1.1.1.1
}
