package game

// EntityID identifies an entity within one State. Ids are never reused.
type EntityID uint64

// Kind tags which variant an entity is.
type Kind int

const (
	KindPlayer Kind = iota
	KindPoint
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindPoint:
		return "point"
	default:
		return "unknown"
	}
}

// AssetRef names the drawable an entity is painted with.
type AssetRef string

const (
	AssetPlayer AssetRef = "player"
	AssetPoint  AssetRef = "point"
)

// Position is a top-left coordinate in viewport units.
type Position struct {
	X, Y int
}

// Entity is a positioned, textured game object.
// Only players move; points are immutable once created.
type Entity struct {
	ID    EntityID
	Kind  Kind
	Asset AssetRef
	X, Y  int
}

// Pos returns the entity position.
func (e Entity) Pos() Position {
	return Position{X: e.X, Y: e.Y}
}
