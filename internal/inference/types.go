package inference

// Type is the semantic type inferred from a raw environment value.
type Type int

const (
	TypeString Type = iota
	TypeBoolean
	TypeInteger
	TypeNumber
	TypePort // refinement of integer, applied during schema generation only
	TypeJSON
	TypeURL
	TypeEmail
)

func (t Type) String() string {
	switch t {
	case TypeBoolean:
		return "boolean"
	case TypeInteger:
		return "integer"
	case TypeNumber:
		return "number"
	case TypePort:
		return "port"
	case TypeJSON:
		return "json"
	case TypeURL:
		return "url"
	case TypeEmail:
		return "email"
	default:
		return "string"
	}
}

// TypeFromString maps a persisted originalType tag back to a Type.
// Unknown tags fall back to string.
func TypeFromString(s string) Type {
	switch s {
	case "boolean":
		return TypeBoolean
	case "integer":
		return TypeInteger
	case "number":
		return TypeNumber
	case "port":
		return TypePort
	case "json":
		return TypeJSON
	case "url":
		return TypeURL
	case "email":
		return TypeEmail
	default:
		return TypeString
	}
}
