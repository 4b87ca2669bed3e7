package system

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/isoplayer/ecs"
	"github.com/milk9111/isoplayer/ecs/component"
)

type BillboardState int

const (
	BillboardUninitialized BillboardState = iota
	BillboardInitialized
	BillboardGeometryCurrent
)

func (s BillboardState) String() string {
	switch s {
	case BillboardInitialized:
		return "initialized"
	case BillboardGeometryCurrent:
		return "geometry_current"
	default:
		return "uninitialized"
	}
}

var (
	unitQuadVertices = [4]mgl64.Vec3{
		{-0.5, -0.5, 0},
		{-0.5, 0.5, 0},
		{0.5, -0.5, 0},
		{0.5, 0.5, 0},
	}
	unitQuadUVs = [4]mgl64.Vec2{
		{0, 0},
		{0, 1},
		{1, 0},
		{1, 1},
	}
)

// DefaultMaterial is shared by every billboard that was provisioned without
// one.
var DefaultMaterial = &component.Material{Name: "billboard"}

// BillboardQuadBuilder keeps an entity's quad mesh in sync with its sprite and
// pushes texture and tint into the entity's own parameter block.
//
// With autoProvision the builder creates missing mesh and material
// containers itself; without it a missing container is a configuration error.
type BillboardQuadBuilder struct {
	world         *ecs.World
	entity        ecs.Entity
	autoProvision bool
	state         BillboardState
}

func NewBillboardQuadBuilder(w *ecs.World, e ecs.Entity, autoProvision bool) *BillboardQuadBuilder {
	return &BillboardQuadBuilder{world: w, entity: e, autoProvision: autoProvision}
}

func (b *BillboardQuadBuilder) State() BillboardState {
	return b.state
}

func (b *BillboardQuadBuilder) Initialize() bool {
	if b == nil || !ecs.IsAlive(b.world, b.entity) {
		return false
	}
	if !ecs.Has(b.world, b.entity, component.SpriteRendererComponent) {
		return false
	}
	if _, _, ok := b.containers(); !ok && !b.autoProvision {
		return false
	}
	return true
}

func (b *BillboardQuadBuilder) OnEnable() {
	b.reinitialize()
}

func (b *BillboardQuadBuilder) OnDisable() {}

func (b *BillboardQuadBuilder) OnPhysicsTick(dt float64) {}

func (b *BillboardQuadBuilder) OnFrameTick(dt float64) {
	filter, binding, ok := b.containers()
	if !ok {
		if !b.reinitialize() {
			return
		}
		filter, binding, _ = b.containers()
	}

	renderer, ok := ecs.Get(b.world, b.entity, component.SpriteRendererComponent)
	if !ok {
		return
	}

	// Without a sprite the quad keeps its last geometry and texture.
	if renderer.Sprite != nil {
		if UpdateQuadMesh(filter.Mesh, renderer.Sprite) {
			b.state = BillboardGeometryCurrent
		}
		binding.Params.Texture = renderer.Sprite.Texture
	}

	binding.Params.Tint = renderer.Color
	if binding.Params.Tint == nil {
		binding.Params.Tint = color.White
	}
}

// containers returns the mesh and material containers when both are present
// and populated.
func (b *BillboardQuadBuilder) containers() (*component.MeshFilter, *component.MaterialBinding, bool) {
	filter, ok := ecs.Get(b.world, b.entity, component.MeshFilterComponent)
	if !ok || filter.Mesh == nil {
		return nil, nil, false
	}
	binding, ok := ecs.Get(b.world, b.entity, component.MaterialBindingComponent)
	if !ok || binding.Params == nil {
		return nil, nil, false
	}
	return filter, binding, true
}

// reinitialize provisions missing containers when allowed and resets the
// mesh to the unit quad.
func (b *BillboardQuadBuilder) reinitialize() bool {
	filter, _, ok := b.containers()
	if !ok {
		if !b.autoProvision || !b.provision() {
			b.state = BillboardUninitialized
			return false
		}
		filter, _, _ = b.containers()
	}
	filter.Mesh.Vertices = unitQuadVertices
	filter.Mesh.UVs = unitQuadUVs
	filter.Mesh.RecalculateBounds()
	b.state = BillboardInitialized
	return true
}

func (b *BillboardQuadBuilder) provision() bool {
	filter, ok := ecs.Get(b.world, b.entity, component.MeshFilterComponent)
	if !ok {
		filter = &component.MeshFilter{}
		if err := ecs.Add(b.world, b.entity, component.MeshFilterComponent, filter); err != nil {
			return false
		}
	}
	if filter.Mesh == nil {
		filter.Mesh = component.NewQuadMesh()
	}

	binding, ok := ecs.Get(b.world, b.entity, component.MaterialBindingComponent)
	if !ok {
		binding = &component.MaterialBinding{}
		if err := ecs.Add(b.world, b.entity, component.MaterialBindingComponent, binding); err != nil {
			return false
		}
	}
	if binding.Shared == nil {
		binding.Shared = DefaultMaterial
	}
	if binding.Params == nil {
		binding.Params = &component.ParamBlock{}
	}
	return true
}

// UpdateQuadMesh fits mesh to sprite and recomputes its bounds. It reports
// false and leaves the mesh untouched when the sprite has no usable scale.
func UpdateQuadMesh(mesh *component.QuadMesh, sprite *component.Sprite) bool {
	if mesh == nil || sprite == nil || sprite.PixelsPerUnit <= 0 {
		return false
	}
	mesh.Vertices = QuadVertices(sprite)
	mesh.UVs = QuadUVs(sprite)
	mesh.RecalculateBounds()
	return true
}

// QuadVertices places the quad in local units so the sprite pivot sits at the
// origin. Corner order is bottom-left, top-left, bottom-right, top-right.
func QuadVertices(sprite *component.Sprite) [4]mgl64.Vec3 {
	ppu := sprite.PixelsPerUnit
	size := sprite.Rect.Size().Mul(1 / ppu)
	pivot := sprite.Pivot.Mul(1 / ppu)
	center := size.Mul(0.5).Sub(pivot)

	hx, hy := size.X()/2, size.Y()/2
	return [4]mgl64.Vec3{
		{-hx + center.X(), -hy + center.Y(), 0},
		{-hx + center.X(), hy + center.Y(), 0},
		{hx + center.X(), -hy + center.Y(), 0},
		{hx + center.X(), hy + center.Y(), 0},
	}
}

// QuadUVs maps the sprite rect into normalized texture space, bottom-left
// origin, in the same corner order as QuadVertices. A texture without a size
// maps the whole unit square.
func QuadUVs(sprite *component.Sprite) [4]mgl64.Vec2 {
	tex := sprite.TextureSize()
	if tex.X() <= 0 || tex.Y() <= 0 {
		return unitQuadUVs
	}
	lo := sprite.Rect.Min()
	hi := sprite.Rect.Max()
	lo = mgl64.Vec2{lo.X() / tex.X(), lo.Y() / tex.Y()}
	hi = mgl64.Vec2{hi.X() / tex.X(), hi.Y() / tex.Y()}
	return [4]mgl64.Vec2{
		{lo.X(), lo.Y()},
		{lo.X(), hi.Y()},
		{hi.X(), lo.Y()},
		{hi.X(), hi.Y()},
	}
}
