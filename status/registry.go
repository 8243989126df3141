package status

// Metric keys published by the simulation
const (
	MetricFrame           = "frame"
	MetricEntities        = "entities"
	MetricAsteroids       = "asteroids"
	MetricLasers          = "lasers"
	MetricAsteroidsSpawn  = "asteroids_spawned"
	MetricLasersFired     = "lasers_fired"
	MetricHits            = "hits"
	MetricFrameTimeMillis = "frame_ms"
)

// Registry is the metrics facade shared by the session and its observers
// Single-threaded like the simulation it describes
type Registry struct {
	Ints   *MetricMap[int64]
	Floats *MetricMap[float64]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewMetricMap[int64](),
		Floats: NewMetricMap[float64](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Floats.Count()
}
