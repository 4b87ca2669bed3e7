package render

import (
	"fmt"
	"image/color"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/isoplayer/ecs"
	"github.com/milk9111/isoplayer/ecs/component"
)

// BillboardRenderSystem draws every billboard quad facing the camera.
type BillboardRenderSystem struct {
	world  *ecs.World
	shader *ebiten.Shader

	camEntity ecs.Entity
	vertices  []ebiten.Vertex
	indices   []uint16
	queue     []drawItem
}

type drawItem struct {
	entity ecs.Entity
	layer  int
	depth  float64
}

func NewBillboardRenderSystem(w *ecs.World) (*BillboardRenderSystem, error) {
	shader, err := ebiten.NewShader(billboardShader)
	if err != nil {
		return nil, fmt.Errorf("render: compile billboard shader: %w", err)
	}
	tri := component.QuadTriangles
	return &BillboardRenderSystem{
		world:    w,
		shader:   shader,
		vertices: make([]ebiten.Vertex, 4),
		indices:  tri[:],
	}, nil
}

func (r *BillboardRenderSystem) Draw(screen *ebiten.Image) {
	if r == nil || r.world == nil || screen == nil {
		return
	}

	if !ecs.IsAlive(r.world, r.camEntity) {
		if camEntity, ok := r.world.First(component.CameraViewComponent); ok {
			r.camEntity = camEntity
		}
	}
	view, ok := ecs.Get(r.world, r.camEntity, component.CameraViewComponent)
	if !ok {
		return
	}
	eye := mgl64.Vec3{}
	if camTransform, ok := ecs.Get(r.world, r.camEntity, component.TransformComponent); ok {
		eye = camTransform.Position
	}

	r.queue = r.queue[:0]
	entities := r.world.Query(component.TransformComponent, component.MeshFilterComponent, component.MaterialBindingComponent)
	for _, e := range entities {
		t, _ := ecs.Get(r.world, e, component.TransformComponent)
		_, _, depth := view.Project(eye, t.Position)
		layer := 0
		if l, ok := ecs.Get(r.world, e, component.RenderLayerComponent); ok {
			layer = l.Index
		}
		r.queue = append(r.queue, drawItem{entity: e, layer: layer, depth: depth})
	}
	sort.SliceStable(r.queue, func(i, j int) bool {
		a, b := r.queue[i], r.queue[j]
		if a.layer != b.layer {
			return a.layer < b.layer
		}
		if a.depth != b.depth {
			return a.depth > b.depth
		}
		return uint64(a.entity) < uint64(b.entity)
	})

	bounds := screen.Bounds()
	cx, cy := float64(bounds.Dx())/2, float64(bounds.Dy())/2
	for _, item := range r.queue {
		r.drawBillboard(screen, item.entity, view, eye, cx, cy)
	}
}

func (r *BillboardRenderSystem) drawBillboard(screen *ebiten.Image, e ecs.Entity, view *component.CameraView, eye mgl64.Vec3, cx, cy float64) {
	t, ok := ecs.Get(r.world, e, component.TransformComponent)
	if !ok {
		return
	}
	filter, ok := ecs.Get(r.world, e, component.MeshFilterComponent)
	if !ok || filter.Mesh == nil {
		return
	}
	binding, ok := ecs.Get(r.world, e, component.MaterialBindingComponent)
	if !ok || binding.Params == nil {
		return
	}
	tex, ok := binding.Params.Texture.(*ebiten.Image)
	if !ok || tex == nil {
		return
	}

	sx, sy := t.Scale.X(), t.Scale.Y()
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	right, up := view.Right(), view.Up()
	tb := tex.Bounds()
	texW, texH := float64(tb.Dx()), float64(tb.Dy())

	for i, v := range filter.Mesh.Vertices {
		world := t.Position.Add(right.Mul(v.X() * sx)).Add(up.Mul(v.Y() * sy))
		x, y, _ := view.Project(eye, world)
		uv := filter.Mesh.UVs[i]
		r.vertices[i] = ebiten.Vertex{
			DstX:   float32(x + cx),
			DstY:   float32(y + cy),
			SrcX:   float32(float64(tb.Min.X) + uv.X()*texW),
			SrcY:   float32(float64(tb.Min.Y) + (1-uv.Y())*texH),
			ColorR: 1,
			ColorG: 1,
			ColorB: 1,
			ColorA: 1,
		}
	}

	op := &ebiten.DrawTrianglesShaderOptions{}
	op.Images[0] = tex
	op.Uniforms = map[string]any{"Tint": tintUniform(binding.Params.Tint)}
	screen.DrawTrianglesShader(r.vertices, r.indices, r.shader, op)
}

func tintUniform(c color.Color) []float32 {
	if c == nil {
		return []float32{1, 1, 1, 1}
	}
	// Ebiten blends premultiplied colors.
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	a := float32(n.A) / 0xff
	return []float32{
		float32(n.R) / 0xff * a,
		float32(n.G) / 0xff * a,
		float32(n.B) / 0xff * a,
		a,
	}
}

// Count is the number of billboards queued by the last Draw.
func (r *BillboardRenderSystem) Count() int {
	return len(r.queue)
}
