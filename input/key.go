package input

// Key is a logical control queried by the simulation and the frontend
type Key uint8

const (
	KeyLeft Key = iota
	KeyRight
	KeyShoot
	KeyQuit
	KeyRestart
	KeyMute

	KeyCount
)

var keyNames = [KeyCount]string{
	KeyLeft:    "left",
	KeyRight:   "right",
	KeyShoot:   "shoot",
	KeyQuit:    "quit",
	KeyRestart: "restart",
	KeyMute:    "mute",
}

func (k Key) String() string {
	if k >= KeyCount {
		return "unknown"
	}
	return keyNames[k]
}

// Momentary keys fire once per press; the rest are held controls
func (k Key) Momentary() bool {
	return k == KeyQuit || k == KeyRestart || k == KeyMute
}
