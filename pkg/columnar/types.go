package columnar

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"

	"github.com/vitalvas/longtoip/pkg/typeinfo"
)

// TypeOf maps an Arrow column type to the descriptor handed to Initialize.
// Unsigned 32-bit columns widen to bigint since every value fits.
func TypeOf(dt arrow.DataType) (typeinfo.TypeInfo, error) {
	switch dt.ID() {
	case arrow.NULL:
		return typeinfo.Void, nil
	case arrow.BOOL:
		return typeinfo.Boolean, nil
	case arrow.INT8, arrow.UINT8:
		return typeinfo.Byte, nil
	case arrow.INT16, arrow.UINT16:
		return typeinfo.Short, nil
	case arrow.INT32:
		return typeinfo.Int, nil
	case arrow.INT64, arrow.UINT32:
		return typeinfo.Long, nil
	case arrow.FLOAT32:
		return typeinfo.Float, nil
	case arrow.FLOAT64:
		return typeinfo.Double, nil
	case arrow.STRING, arrow.LARGE_STRING:
		return typeinfo.String, nil
	case arrow.BINARY, arrow.LARGE_BINARY:
		return typeinfo.Binary, nil
	case arrow.DATE32, arrow.DATE64:
		return typeinfo.Date, nil
	case arrow.TIMESTAMP:
		return typeinfo.Timestamp, nil
	case arrow.DECIMAL128, arrow.DECIMAL256:
		return typeinfo.Decimal, nil

	case arrow.LIST:
		elem, err := TypeOf(dt.(*arrow.ListType).Elem())
		if err != nil {
			return typeinfo.TypeInfo{}, err
		}
		return typeinfo.ListOf(elem), nil

	case arrow.MAP:
		mt := dt.(*arrow.MapType)
		key, err := TypeOf(mt.KeyType())
		if err != nil {
			return typeinfo.TypeInfo{}, err
		}
		value, err := TypeOf(mt.ItemType())
		if err != nil {
			return typeinfo.TypeInfo{}, err
		}
		return typeinfo.MapOf(key, value), nil

	case arrow.STRUCT:
		st := dt.(*arrow.StructType)
		fields := make([]typeinfo.Field, 0, st.NumFields())
		for _, f := range st.Fields() {
			ft, err := TypeOf(f.Type)
			if err != nil {
				return typeinfo.TypeInfo{}, err
			}
			fields = append(fields, typeinfo.Field{Name: f.Name, Type: ft})
		}
		return typeinfo.StructOf(fields...), nil

	default:
		return typeinfo.TypeInfo{}, fmt.Errorf("unsupported arrow type %s", dt)
	}
}
