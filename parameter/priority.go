package parameter

// System Execution Priorities (lower runs first)
const (
	PrioritySpawn     = 10 // Timers and spawns read the player position before it advances
	PriorityPhysics   = 20 // Integrates every body, including entities spawned this frame
	PriorityCollision = 30 // Tests the integrated positions
)
