package columnar

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
)

// IsNullToken reports whether a text field stands for NULL: empty, "null" in any case,
// or the "\N" marker used in delimited table dumps.
func IsNullToken(s string) bool {
	return s == "" || s == `\N` || strings.EqualFold(s, "null")
}

// Int64Column parses decimal text fields into a bigint column. Surrounding whitespace is
// ignored and null tokens become null rows. The caller must Release the result.
func Int64Column(mem memory.Allocator, fields []string) (*array.Int64, error) {
	if mem == nil {
		mem = memory.DefaultAllocator
	}

	builder := array.NewInt64Builder(mem)
	defer builder.Release()
	builder.Reserve(len(fields))

	for i, field := range fields {
		field = strings.TrimSpace(field)
		if IsNullToken(field) {
			builder.AppendNull()
			continue
		}

		v, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("field %d: invalid bigint %q", i+1, field)
		}
		builder.Append(v)
	}

	return builder.NewInt64Array(), nil
}
