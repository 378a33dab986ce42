package typeinfo

import "strings"

// Category represents the top-level kind of a host type
type Category int

const (
	CategoryPrimitive Category = iota
	CategoryList
	CategoryMap
	CategoryStruct
	CategoryUnion
)

// String returns the string representation of the category
func (c Category) String() string {
	switch c {
	case CategoryPrimitive:
		return "PRIMITIVE"
	case CategoryList:
		return "LIST"
	case CategoryMap:
		return "MAP"
	case CategoryStruct:
		return "STRUCT"
	case CategoryUnion:
		return "UNION"
	default:
		return "UNKNOWN"
	}
}

// PrimitiveCategory represents the concrete type of a primitive value
type PrimitiveCategory int

const (
	PrimitiveVoid PrimitiveCategory = iota
	PrimitiveBoolean
	PrimitiveByte
	PrimitiveShort
	PrimitiveInt
	PrimitiveLong
	PrimitiveFloat
	PrimitiveDouble
	PrimitiveString
	PrimitiveVarchar
	PrimitiveChar
	PrimitiveDate
	PrimitiveTimestamp
	PrimitiveBinary
	PrimitiveDecimal
	PrimitiveUnknown
)

var primitiveNames = [...]string{
	PrimitiveVoid:      "void",
	PrimitiveBoolean:   "boolean",
	PrimitiveByte:      "tinyint",
	PrimitiveShort:     "smallint",
	PrimitiveInt:       "int",
	PrimitiveLong:      "bigint",
	PrimitiveFloat:     "float",
	PrimitiveDouble:    "double",
	PrimitiveString:    "string",
	PrimitiveVarchar:   "varchar",
	PrimitiveChar:      "char",
	PrimitiveDate:      "date",
	PrimitiveTimestamp: "timestamp",
	PrimitiveBinary:    "binary",
	PrimitiveDecimal:   "decimal",
	PrimitiveUnknown:   "unknown",
}

// String returns the host type name of the primitive category
func (p PrimitiveCategory) String() string {
	if p < 0 || int(p) >= len(primitiveNames) {
		return "unknown"
	}
	return primitiveNames[p]
}

// IsIntegral reports whether values of this category are whole numbers that fit in 64 bits
func (p PrimitiveCategory) IsIntegral() bool {
	switch p {
	case PrimitiveByte, PrimitiveShort, PrimitiveInt, PrimitiveLong:
		return true
	default:
		return false
	}
}

// Field is a named member of a struct type
type Field struct {
	Name string
	Type TypeInfo
}

// TypeInfo describes the type of a function argument or result
type TypeInfo struct {
	Category  Category
	Primitive PrimitiveCategory

	// Elem is the element type of a list or the value type of a map
	Elem *TypeInfo
	// Key is the key type of a map
	Key *TypeInfo
	// Fields holds struct members, or union alternatives with empty names
	Fields []Field
}

// Predefined primitive descriptors
var (
	Void      = PrimitiveOf(PrimitiveVoid)
	Boolean   = PrimitiveOf(PrimitiveBoolean)
	Byte      = PrimitiveOf(PrimitiveByte)
	Short     = PrimitiveOf(PrimitiveShort)
	Int       = PrimitiveOf(PrimitiveInt)
	Long      = PrimitiveOf(PrimitiveLong)
	Float     = PrimitiveOf(PrimitiveFloat)
	Double    = PrimitiveOf(PrimitiveDouble)
	String    = PrimitiveOf(PrimitiveString)
	Varchar   = PrimitiveOf(PrimitiveVarchar)
	Char      = PrimitiveOf(PrimitiveChar)
	Date      = PrimitiveOf(PrimitiveDate)
	Timestamp = PrimitiveOf(PrimitiveTimestamp)
	Binary    = PrimitiveOf(PrimitiveBinary)
	Decimal   = PrimitiveOf(PrimitiveDecimal)
)

// PrimitiveOf returns the descriptor of a primitive type
func PrimitiveOf(p PrimitiveCategory) TypeInfo {
	return TypeInfo{Category: CategoryPrimitive, Primitive: p}
}

// ListOf returns the descriptor of a list with the given element type
func ListOf(elem TypeInfo) TypeInfo {
	return TypeInfo{Category: CategoryList, Elem: &elem}
}

// MapOf returns the descriptor of a map with the given key and value types
func MapOf(key, value TypeInfo) TypeInfo {
	return TypeInfo{Category: CategoryMap, Key: &key, Elem: &value}
}

// StructOf returns the descriptor of a struct with the given fields
func StructOf(fields ...Field) TypeInfo {
	return TypeInfo{Category: CategoryStruct, Fields: fields}
}

// UnionOf returns the descriptor of a union of the given alternatives
func UnionOf(types ...TypeInfo) TypeInfo {
	fields := make([]Field, len(types))
	for i, t := range types {
		fields[i] = Field{Type: t}
	}
	return TypeInfo{Category: CategoryUnion, Fields: fields}
}

// IsPrimitive reports whether t is a primitive of category p
func (t TypeInfo) IsPrimitive(p PrimitiveCategory) bool {
	return t.Category == CategoryPrimitive && t.Primitive == p
}

// TypeName returns the host type name, e.g. "bigint" or "map<string,array<int>>"
func (t TypeInfo) TypeName() string {
	var sb strings.Builder
	t.writeName(&sb)
	return sb.String()
}

// String implements fmt.Stringer
func (t TypeInfo) String() string {
	return t.TypeName()
}

func (t TypeInfo) writeName(sb *strings.Builder) {
	switch t.Category {
	case CategoryPrimitive:
		sb.WriteString(t.Primitive.String())
	case CategoryList:
		sb.WriteString("array<")
		writeOptional(sb, t.Elem)
		sb.WriteByte('>')
	case CategoryMap:
		sb.WriteString("map<")
		writeOptional(sb, t.Key)
		sb.WriteByte(',')
		writeOptional(sb, t.Elem)
		sb.WriteByte('>')
	case CategoryStruct:
		sb.WriteString("struct<")
		for i, f := range t.Fields {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(f.Name)
			sb.WriteByte(':')
			f.Type.writeName(sb)
		}
		sb.WriteByte('>')
	case CategoryUnion:
		sb.WriteString("uniontype<")
		for i, f := range t.Fields {
			if i > 0 {
				sb.WriteByte(',')
			}
			f.Type.writeName(sb)
		}
		sb.WriteByte('>')
	default:
		sb.WriteString("unknown")
	}
}

func writeOptional(sb *strings.Builder, t *TypeInfo) {
	if t == nil {
		sb.WriteString("unknown")
		return
	}
	t.writeName(sb)
}
