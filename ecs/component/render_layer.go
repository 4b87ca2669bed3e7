package component

// RenderLayer orders billboards before depth: lower layers draw first.
type RenderLayer struct {
	Index int
}

var RenderLayerComponent = NewComponent[RenderLayer]()
