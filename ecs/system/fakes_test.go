package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/isoplayer/input"
)

type fakeBody struct {
	velocity       mgl64.Vec3
	position       mgl64.Vec3
	gravityEnabled bool
	damping        float64
	frozen         bool
}

func newFakeBody() *fakeBody {
	return &fakeBody{gravityEnabled: true, damping: 0.05}
}

func (b *fakeBody) Velocity() mgl64.Vec3 { return b.velocity }
func (b *fakeBody) SetVelocity(v mgl64.Vec3) { b.velocity = v }
func (b *fakeBody) Position() mgl64.Vec3 { return b.position }
func (b *fakeBody) SetPosition(p mgl64.Vec3) { b.position = p }
func (b *fakeBody) SetGravityEnabled(enabled bool) { b.gravityEnabled = enabled }
func (b *fakeBody) SetLinearDamping(d float64) { b.damping = d }
func (b *fakeBody) FreezeRotation(freeze bool) { b.frozen = freeze }

type fixedView struct {
	forward mgl64.Vec3
	right   mgl64.Vec3
}

func (v fixedView) Forward() mgl64.Vec3 { return v.forward }
func (v fixedView) Right() mgl64.Vec3 { return v.right }

var axisView = fixedView{forward: mgl64.Vec3{0, 0, 1}, right: mgl64.Vec3{1, 0, 0}}

type fakeAnimator struct {
	floats map[string]float64
	bools  map[string]bool
}

func newFakeAnimator() *fakeAnimator {
	return &fakeAnimator{floats: map[string]float64{}, bools: map[string]bool{}}
}

func (a *fakeAnimator) SetFloat(name string, v float64) { a.floats[name] = v }
func (a *fakeAnimator) SetBool(name string, v bool) { a.bools[name] = v }

type fixedDirection mgl64.Vec3

func (d fixedDirection) Direction() mgl64.Vec3 { return mgl64.Vec3(d) }

// newMoveInput returns a disabled sampler and the action that feeds it.
func newMoveInput() (*input.Action, *input.Sampler) {
	action := input.NewAction("move")
	sampler := input.NewSampler(action)
	return action, sampler
}
