package component

// Kind discriminates the closed set of component values.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindName
	KindFloat
	KindBool
	KindInt
	KindString
	KindVec2
	KindList
	KindMap
	KindGraphics
	KindBehavior
	KindQuery
)

var kindNames = [...]string{
	KindInvalid:  "invalid",
	KindName:     "name",
	KindFloat:    "float",
	KindBool:     "bool",
	KindInt:      "int",
	KindString:   "string",
	KindVec2:     "vec2",
	KindList:     "list",
	KindMap:      "map",
	KindGraphics: "graphics",
	KindBehavior: "behavior",
	KindQuery:    "query",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Value is one piece of entity state. Only the types in this package
// implement it.
type Value interface {
	Kind() Kind
	isValue()
}

// Name is an identity tag.
type Name string

type Float float64

type Bool bool

type Int int64

// Str is free text. Unlike Name it carries no identity meaning.
type Str string

// Vec2 owns two nested values, normally two Floats.
type Vec2 struct {
	X Value
	Y Value
}

type List []Value

// Map holds keyed values; keys are unique and iteration order is not defined.
type Map map[string]Value

// Graphics carries a drawable shape.
type Graphics struct {
	Shape Shape
}

func (Name) Kind() Kind     { return KindName }
func (Float) Kind() Kind    { return KindFloat }
func (Bool) Kind() Kind     { return KindBool }
func (Int) Kind() Kind      { return KindInt }
func (Str) Kind() Kind      { return KindString }
func (Vec2) Kind() Kind     { return KindVec2 }
func (List) Kind() Kind     { return KindList }
func (Map) Kind() Kind      { return KindMap }
func (Graphics) Kind() Kind { return KindGraphics }
func (Behavior) Kind() Kind { return KindBehavior }
func (Query) Kind() Kind    { return KindQuery }

func (Name) isValue()     {}
func (Float) isValue()    {}
func (Bool) isValue()     {}
func (Int) isValue()      {}
func (Str) isValue()      {}
func (Vec2) isValue()     {}
func (List) isValue()     {}
func (Map) isValue()      {}
func (Graphics) isValue() {}
func (Behavior) isValue() {}
func (Query) isValue()    {}

// NewVec2 builds the common Vec2(Float, Float) value.
func NewVec2(x, y float64) Vec2 {
	return Vec2{X: Float(x), Y: Float(y)}
}

// Floats returns both members when they are Floats. A member of any other
// kind reads as zero and ok is false.
func (v Vec2) Floats() (x, y float64, ok bool) {
	fx, okX := v.X.(Float)
	fy, okY := v.Y.(Float)
	return float64(fx), float64(fy), okX && okY
}

// KindOf is nil-safe; a nil value reports KindInvalid.
func KindOf(v Value) Kind {
	if v == nil {
		return KindInvalid
	}
	return v.Kind()
}
