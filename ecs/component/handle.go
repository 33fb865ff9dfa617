package component

// BehaviorID selects a behavior implementation from the world registry.
type BehaviorID uint8

const (
	BehaviorNone BehaviorID = iota
	BehaviorPhysics
)

// QueryID selects a query implementation from the world registry.
type QueryID uint8

const (
	QueryNone QueryID = iota
	QueryCentroid
	QueryPopulation
)

// Behavior is a per-entity callable, dispatched once per tick by the loop.
type Behavior struct {
	ID      BehaviorID
	Name    string
	Physics PhysicsParams
}

// Query is a callable that reads the world and answers with a value.
type Query struct {
	ID   QueryID
	Name string
}

// Bounds is an axis aligned rectangle in world units.
type Bounds struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// BoundsFor returns a rectangle of the given size centred on the origin.
func BoundsFor(width, height float64) Bounds {
	return Bounds{MinX: width / -2, MinY: height / -2, MaxX: width / 2, MaxY: height / 2}
}

// PhysicsParams configures one physics behavior handle.
//
// Bounds is refreshed from the canvas size on every call but nothing clamps
// positions to it; the world is unbounded.
type PhysicsParams struct {
	Gravity          float64
	Restitution      float64
	SeparationPasses int
	Bounds           Bounds
}

// DefaultPhysics mirrors the constants the sandbox has always shipped with.
func DefaultPhysics() PhysicsParams {
	return PhysicsParams{
		Gravity:          1.0,
		Restitution:      0.8,
		SeparationPasses: 5,
		Bounds:           Bounds{MinX: -500, MinY: -500, MaxX: 500, MaxY: 500},
	}
}
