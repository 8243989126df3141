package core

// Kind is the closed category of a simulated entity
// Values index the per-kind tables, KindCount sizes them
type Kind uint8

const (
	KindAsteroidFragment Kind = iota
	KindAsteroidSmall
	KindAsteroidMedium
	KindAsteroidBig
	KindLaserBeam
	KindPlayer

	KindCount
)

// AsteroidKinds lists the spawnable asteroid classes in table order
var AsteroidKinds = [...]Kind{
	KindAsteroidFragment,
	KindAsteroidSmall,
	KindAsteroidMedium,
	KindAsteroidBig,
}

var kindNames = [KindCount]string{
	KindAsteroidFragment: "asteroid_fragment",
	KindAsteroidSmall:    "asteroid_small",
	KindAsteroidMedium:   "asteroid_medium",
	KindAsteroidBig:      "asteroid_big",
	KindLaserBeam:        "laser_beam",
	KindPlayer:           "player",
}

// Valid reports whether k is a member of the closed set
func (k Kind) Valid() bool { return k < KindCount }

// IsAsteroid reports whether k is one of the four asteroid size classes
func (k Kind) IsAsteroid() bool { return k <= KindAsteroidBig }

func (k Kind) String() string {
	if !k.Valid() {
		return "unknown"
	}
	return kindNames[k]
}

// ParseKind resolves a table name back to its Kind
func ParseKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), true
		}
	}
	return KindCount, false
}
