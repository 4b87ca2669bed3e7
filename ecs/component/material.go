package component

import "image/color"

// Material is shared between every billboard using it and is never written
// per instance.
type Material struct {
	Name string
}

// ParamBlock overrides material inputs for a single renderer.
type ParamBlock struct {
	Texture Texture
	Tint    color.Color
}

// MaterialBinding is the material container of a billboard.
type MaterialBinding struct {
	Shared *Material
	Params *ParamBlock
}

var MaterialBindingComponent = NewComponent[MaterialBinding]()
