package component

// AppearanceComponent carries opaque asset handles resolved by the asset collaborator
// The simulation copies them at spawn and never interprets them
type AppearanceComponent struct {
	Model   uint32
	Texture uint32
}
