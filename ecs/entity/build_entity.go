package entity

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/isoplayer/ecs"
	"github.com/milk9111/isoplayer/ecs/component"
	"github.com/milk9111/isoplayer/ecs/system"
	"github.com/milk9111/isoplayer/prefabs"
)

// TextureLoader resolves an image path from a prefab to a texture.
type TextureLoader func(path string) (component.Texture, error)

type buildStep struct {
	name string
	fn   func(w *ecs.World, e ecs.Entity) error
}

// build creates an entity and runs steps in order. The entity is destroyed
// when any step fails.
func build(w *ecs.World, label string, steps []buildStep) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("%s: world is nil", label)
	}

	e := ecs.CreateEntity(w)
	for _, step := range steps {
		if err := step.fn(w, e); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("%s: add %s: %w", label, step.name, err)
		}
	}
	return e, nil
}

// FindByName returns the first live entity whose Name matches.
func FindByName(w *ecs.World, name string) (ecs.Entity, bool) {
	if w == nil || name == "" {
		return 0, false
	}
	for _, e := range w.Query(component.NameComponent) {
		n, ok := ecs.Get(w, e, component.NameComponent)
		if ok && n.Value == name {
			return e, true
		}
	}
	return 0, false
}

func SetEntityPosition(w *ecs.World, e ecs.Entity, pos mgl64.Vec3) error {
	t, ok := ecs.Get(w, e, component.TransformComponent)
	if !ok || t == nil {
		t = &component.Transform{Scale: mgl64.Vec3{1, 1, 1}}
	}
	t.Position = pos
	if body, ok := ecs.Get(w, e, component.PhysicsBodyComponent); ok && body.Body != nil {
		body.Body.SetPosition(pos)
	}
	return ecs.Add(w, e, component.TransformComponent, t)
}

func nameStep(name string) buildStep {
	return buildStep{name: "name", fn: func(w *ecs.World, e ecs.Entity) error {
		return ecs.Add(w, e, component.NameComponent, &component.Name{Value: name})
	}}
}

func transformStep(spec prefabs.TransformSpec) buildStep {
	return buildStep{name: "transform", fn: func(w *ecs.World, e ecs.Entity) error {
		return ecs.Add(w, e, component.TransformComponent, transformFromSpec(spec))
	}}
}

func transformFromSpec(spec prefabs.TransformSpec) *component.Transform {
	scale := mgl64.Vec3{1, 1, 1}
	if spec.Scale != nil {
		scale = spec.Scale.Vec3()
	}
	return &component.Transform{Position: spec.Position.Vec3(), Scale: scale}
}

func renderLayerStep(spec prefabs.RenderLayerSpec) buildStep {
	return buildStep{name: "render layer", fn: func(w *ecs.World, e ecs.Entity) error {
		return ecs.Add(w, e, component.RenderLayerComponent, &component.RenderLayer{Index: spec.Index})
	}}
}

// billboardStep adds the mesh and material containers a quad builder fills.
func billboardStep() buildStep {
	return buildStep{name: "billboard", fn: func(w *ecs.World, e ecs.Entity) error {
		if err := ecs.Add(w, e, component.MeshFilterComponent, &component.MeshFilter{Mesh: component.NewQuadMesh()}); err != nil {
			return err
		}
		return ecs.Add(w, e, component.MaterialBindingComponent, &component.MaterialBinding{
			Shared: system.DefaultMaterial,
			Params: &component.ParamBlock{},
		})
	}}
}

func loadTexture(load TextureLoader, path string) (component.Texture, error) {
	if load == nil {
		return nil, fmt.Errorf("texture %q: no loader", path)
	}
	tex, err := load(path)
	if err != nil {
		return nil, fmt.Errorf("texture %q: %w", path, err)
	}
	return tex, nil
}
