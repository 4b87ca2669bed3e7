package common

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeOrZero(t *testing.T) {
	assert.Equal(t, mgl64.Vec3{}, NormalizeOrZero(mgl64.Vec3{1e-6, 0, 0}))
	assert.InDelta(t, 1, NormalizeOrZero(mgl64.Vec3{3, 4, 0}).Len(), 1e-12)
}

func TestFlatten(t *testing.T) {
	got := Flatten(mgl64.Vec3{0, -5, 2})
	assert.Equal(t, mgl64.Vec3{0, 0, 1}, got)
	assert.Equal(t, mgl64.Vec3{}, Flatten(mgl64.Vec3{0, -1, 0}))
}

func TestNearlyZero2(t *testing.T) {
	assert.True(t, NearlyZero2(mgl64.Vec2{1e-6, -1e-6}))
	assert.False(t, NearlyZero2(mgl64.Vec2{0, 2e-5}))
}
