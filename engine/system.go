package engine

// System is an interface that all systems must implement
type System interface {
	// Init restores the system to its post-reset state
	Init()
	// Update advances the system by dt seconds
	Update(dt float64) error
	// Priority orders systems within a frame, lower values run first
	Priority() int
	Name() string
}
