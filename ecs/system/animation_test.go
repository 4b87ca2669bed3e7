package system

import (
	"image"
	"testing"

	"github.com/milk9111/isoplayer/ecs"
	"github.com/milk9111/isoplayer/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFacingIndex(t *testing.T) {
	tests := []struct {
		name            string
		lateral, fwd    float64
		previous, wants int
	}{
		{name: "away", lateral: 0, fwd: 1, wants: 0},
		{name: "away_right", lateral: 1, fwd: 1, wants: 1},
		{name: "right", lateral: 1, fwd: 0, wants: 2},
		{name: "toward", lateral: 0, fwd: -1, wants: 4},
		{name: "left", lateral: -1, fwd: 0, wants: 6},
		{name: "away_left", lateral: -0.7, fwd: 0.7, wants: 7},
		{name: "zero_keeps_previous", previous: 5, wants: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wants, FacingIndex(tt.lateral, tt.fwd, tt.previous))
		})
	}
}

func newHeroAnimator() *component.Animator {
	anim := component.NewAnimator()
	anim.Sheet = &component.SpriteSheet{
		Texture:       image.NewRGBA(image.Rect(0, 0, 192, 256)),
		FrameW:        32,
		FrameH:        32,
		PixelsPerUnit: 32,
	}
	anim.Clips[ClipIdle] = component.AnimationClip{Name: ClipIdle, FrameCount: 2, FPS: 2, Loop: true}
	anim.Clips[ClipWalk] = component.AnimationClip{Name: ClipWalk, ColStart: 2, FrameCount: 4, FPS: 8, Loop: true}
	return anim
}

func TestAdvanceSwitchesClipAndDirection(t *testing.T) {
	anim := newHeroAnimator()

	sprite := advance(anim, 0.1)
	require.NotNil(t, sprite)
	assert.Equal(t, ClipIdle, anim.Current)
	assert.Same(t, anim.Sheet.Frame(0, 0), sprite)

	anim.SetBool(ParamIsMoving, true)
	anim.SetFloat(ParamLateral, 1)
	anim.SetFloat(ParamForward, 0)

	sprite = advance(anim, 0)
	assert.Equal(t, ClipWalk, anim.Current)
	assert.Equal(t, 2, anim.Direction)
	assert.Equal(t, 0, anim.Frame)
	assert.Same(t, anim.Sheet.Frame(2, 2), sprite)
}

func TestAdvanceLoopsFrames(t *testing.T) {
	anim := newHeroAnimator()
	anim.SetBool(ParamIsMoving, true)
	advance(anim, 0)

	for i := 0; i < 5; i++ {
		advance(anim, 0.125)
	}

	assert.Equal(t, 1, anim.Frame)
}

func TestAdvanceHoldsLastFrameWithoutLoop(t *testing.T) {
	anim := newHeroAnimator()
	clip := anim.Clips[ClipIdle]
	clip.Loop = false
	anim.Clips[ClipIdle] = clip

	advance(anim, 10)

	assert.Equal(t, 1, anim.Frame)
}

func TestAdvanceMissingClip(t *testing.T) {
	anim := newHeroAnimator()
	delete(anim.Clips, ClipWalk)
	anim.SetBool(ParamIsMoving, true)

	assert.Nil(t, advance(anim, 0.1))
}

func TestSpriteAnimationSystemAssignsSprite(t *testing.T) {
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	anim := newHeroAnimator()
	require.NoError(t, ecs.Add(w, e, component.AnimatorComponent, anim))
	require.NoError(t, ecs.Add(w, e, component.SpriteRendererComponent, &component.SpriteRenderer{}))

	s := NewSpriteAnimationSystem(w)
	require.True(t, s.Initialize())
	s.OnFrameTick(0.016)

	renderer, _ := ecs.Get(w, e, component.SpriteRendererComponent)
	assert.Same(t, anim.Sheet.Frame(0, 0), renderer.Sprite)
}
