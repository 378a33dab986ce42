package typeinfo

import (
	"fmt"
	"strings"
)

// primitive names accepted by ParseTypeName, including common aliases
var primitiveByName = map[string]PrimitiveCategory{
	"void":      PrimitiveVoid,
	"boolean":   PrimitiveBoolean,
	"tinyint":   PrimitiveByte,
	"smallint":  PrimitiveShort,
	"int":       PrimitiveInt,
	"integer":   PrimitiveInt,
	"bigint":    PrimitiveLong,
	"long":      PrimitiveLong,
	"float":     PrimitiveFloat,
	"double":    PrimitiveDouble,
	"string":    PrimitiveString,
	"varchar":   PrimitiveVarchar,
	"char":      PrimitiveChar,
	"date":      PrimitiveDate,
	"timestamp": PrimitiveTimestamp,
	"binary":    PrimitiveBinary,
	"decimal":   PrimitiveDecimal,
}

// ParseTypeName parses a host type name such as "bigint", "array<int>",
// "map<string,bigint>", "struct<a:int,b:string>" or "uniontype<int,string>".
// Names are case-insensitive.
func ParseTypeName(name string) (TypeInfo, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	if s == "" {
		return TypeInfo{}, fmt.Errorf("empty type name")
	}

	open := strings.IndexByte(s, '<')
	if open < 0 {
		p, ok := primitiveByName[s]
		if !ok {
			return TypeInfo{}, fmt.Errorf("unknown type %q", name)
		}
		return PrimitiveOf(p), nil
	}

	if !strings.HasSuffix(s, ">") {
		return TypeInfo{}, fmt.Errorf("unterminated type parameters in %q", name)
	}

	params, err := splitTopLevel(s[open+1 : len(s)-1])
	if err != nil {
		return TypeInfo{}, fmt.Errorf("invalid type %q: %w", name, err)
	}

	switch strings.TrimSpace(s[:open]) {
	case "array":
		if len(params) != 1 {
			return TypeInfo{}, fmt.Errorf("array expects 1 type parameter, got %d", len(params))
		}
		elem, err := ParseTypeName(params[0])
		if err != nil {
			return TypeInfo{}, err
		}
		return ListOf(elem), nil

	case "map":
		if len(params) != 2 {
			return TypeInfo{}, fmt.Errorf("map expects 2 type parameters, got %d", len(params))
		}
		key, err := ParseTypeName(params[0])
		if err != nil {
			return TypeInfo{}, err
		}
		value, err := ParseTypeName(params[1])
		if err != nil {
			return TypeInfo{}, err
		}
		return MapOf(key, value), nil

	case "struct":
		fields := make([]Field, 0, len(params))
		for _, p := range params {
			fieldName, fieldType, ok := strings.Cut(p, ":")
			if !ok || strings.TrimSpace(fieldName) == "" {
				return TypeInfo{}, fmt.Errorf("invalid struct field %q", p)
			}
			t, err := ParseTypeName(fieldType)
			if err != nil {
				return TypeInfo{}, err
			}
			fields = append(fields, Field{Name: strings.TrimSpace(fieldName), Type: t})
		}
		return StructOf(fields...), nil

	case "uniontype":
		types := make([]TypeInfo, 0, len(params))
		for _, p := range params {
			t, err := ParseTypeName(p)
			if err != nil {
				return TypeInfo{}, err
			}
			types = append(types, t)
		}
		return UnionOf(types...), nil

	default:
		return TypeInfo{}, fmt.Errorf("unknown type %q", name)
	}
}

// splitTopLevel splits s on commas that are not nested inside angle brackets
func splitTopLevel(s string) ([]string, error) {
	var parts []string
	depth := 0
	start := 0

	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '<':
			depth++
		case '>':
			depth--
			if depth < 0 {
				return nil, fmt.Errorf("unbalanced '>'")
			}
		case ',':
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}

	if depth != 0 {
		return nil, fmt.Errorf("unbalanced '<'")
	}

	parts = append(parts, s[start:])
	for _, p := range parts {
		if strings.TrimSpace(p) == "" {
			return nil, fmt.Errorf("empty type parameter")
		}
	}

	return parts, nil
}
