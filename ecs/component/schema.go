package component

// Type is the type-only mirror of a Value used for matching. Scalar payloads
// are erased; Vec2, List and Map carry the types of their members.
//
// A Vec2 type without exactly two Elems, a List type with nil Elems and a
// Map type with no Fields match any value of that kind.
type Type struct {
	Kind   Kind
	Elems  []Type
	Fields map[string]Type
}

// Schema is matched positionally against a bundle.
type Schema []Type

func T(k Kind) Type {
	return Type{Kind: k}
}

func Vec2Of(x, y Type) Type {
	return Type{Kind: KindVec2, Elems: []Type{x, y}}
}

func ListOf(elems ...Type) Type {
	if elems == nil {
		elems = []Type{}
	}
	return Type{Kind: KindList, Elems: elems}
}

func MapOf(fields map[string]Type) Type {
	return Type{Kind: KindMap, Fields: fields}
}

// FloatVec2 is the type of positions and velocities.
var FloatVec2 = Vec2Of(T(KindFloat), T(KindFloat))

// TypeOf derives the full type of a value.
func TypeOf(v Value) Type {
	switch val := v.(type) {
	case nil:
		return Type{}
	case Vec2:
		return Vec2Of(TypeOf(val.X), TypeOf(val.Y))
	case List:
		elems := make([]Type, len(val))
		for i, e := range val {
			elems[i] = TypeOf(e)
		}
		return ListOf(elems...)
	case Map:
		fields := make(map[string]Type, len(val))
		for k, e := range val {
			fields[k] = TypeOf(e)
		}
		return MapOf(fields)
	default:
		return T(v.Kind())
	}
}

// Matches reports whether v is type-equal to t.
func Matches(v Value, t Type) bool {
	if v == nil || v.Kind() != t.Kind {
		return false
	}
	switch val := v.(type) {
	case Vec2:
		if len(t.Elems) != 2 {
			return true
		}
		return Matches(val.X, t.Elems[0]) && Matches(val.Y, t.Elems[1])
	case List:
		if t.Elems == nil {
			return true
		}
		if len(val) != len(t.Elems) {
			return false
		}
		for i, e := range val {
			if !Matches(e, t.Elems[i]) {
				return false
			}
		}
		return true
	case Map:
		for k, ft := range t.Fields {
			e, ok := val[k]
			if !ok || !Matches(e, ft) {
				return false
			}
		}
		return true
	default:
		return true
	}
}
