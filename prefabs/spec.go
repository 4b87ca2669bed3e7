package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/isoplayer/logger"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

const (
	PlayerFile = "player.yaml"
	CameraFile = "camera.yaml"
	GameFile   = "game.yaml"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type PlayerSpec struct {
	Name        string          `yaml:"name"`
	Input       InputSpec       `yaml:"input"`
	Transform   TransformSpec   `yaml:"transform"`
	Movement    MovementSpec    `yaml:"movement"`
	PhysicsBody PhysicsBodySpec `yaml:"physics_body"`
	Sheet       SheetSpec       `yaml:"sheet"`
	Animation   AnimationSpec   `yaml:"animation"`
	Tint        *YAMLColor      `yaml:"tint"`
	RenderLayer RenderLayerSpec `yaml:"render_layer"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec](PlayerFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type CameraSpec struct {
	Name      string        `yaml:"name"`
	Target    string        `yaml:"target"`
	Transform TransformSpec `yaml:"transform"`
	Offset    Vec3Spec      `yaml:"offset"`
	Yaw       float64       `yaml:"yaw"`
	Pitch     float64       `yaml:"pitch"`
	Zoom      float64       `yaml:"zoom"`
}

func LoadCameraSpec() (*CameraSpec, error) {
	spec, err := LoadSpec[CameraSpec](CameraFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type GameSpec struct {
	Title       string        `yaml:"title"`
	Width       int           `yaml:"width"`
	Height      int           `yaml:"height"`
	FixedStep   float64       `yaml:"fixed_step"`
	MaxSubSteps int           `yaml:"max_sub_steps"`
	Background  *YAMLColor    `yaml:"background"`
	Log         logger.Config `yaml:"log"`
	Props       []PropSpec    `yaml:"props"`
}

func LoadGameSpec() (*GameSpec, error) {
	spec, err := LoadSpec[GameSpec](GameFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// PropSpec is a static billboard.
type PropSpec struct {
	Name        string          `yaml:"name"`
	Transform   TransformSpec   `yaml:"transform"`
	Sprite      SpriteSpec      `yaml:"sprite"`
	Tint        *YAMLColor      `yaml:"tint"`
	RenderLayer RenderLayerSpec `yaml:"render_layer"`
}

type InputSpec struct {
	Action string `yaml:"action"`
}

type Vec3Spec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

func (v Vec3Spec) Vec3() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

type TransformSpec struct {
	Position Vec3Spec  `yaml:"position"`
	Scale    *Vec3Spec `yaml:"scale"`
}

type MovementSpec struct {
	MaxSpeed        float64 `yaml:"max_speed"`
	AccelSpeed      float64 `yaml:"acc_speed"`
	DecelerateSpeed float64 `yaml:"decelerate_speed"`
}

type PhysicsBodySpec struct {
	Mass   float64 `yaml:"mass"`
	Radius float64 `yaml:"radius"`
}

type SheetSpec struct {
	Image         string  `yaml:"image"`
	FrameW        int     `yaml:"frame_w"`
	FrameH        int     `yaml:"frame_h"`
	PixelsPerUnit float64 `yaml:"pixels_per_unit"`
	PivotX        float64 `yaml:"pivot_x"`
	PivotY        float64 `yaml:"pivot_y"`
}

type AnimationSpec struct {
	Clips map[string]ClipSpec `yaml:"clips"`
}

type ClipSpec struct {
	Row        int     `yaml:"row"`
	ColStart   int     `yaml:"col_start"`
	FrameCount int     `yaml:"frame_count"`
	FPS        float64 `yaml:"fps"`
	Loop       bool    `yaml:"loop"`
}

// SpriteSpec is a single sprite: rect and pivot in pixels from the
// bottom-left of the image.
type SpriteSpec struct {
	Image         string  `yaml:"image"`
	X             float64 `yaml:"x"`
	Y             float64 `yaml:"y"`
	W             float64 `yaml:"w"`
	H             float64 `yaml:"h"`
	PixelsPerUnit float64 `yaml:"pixels_per_unit"`
	PivotX        float64 `yaml:"pivot_x"`
	PivotY        float64 `yaml:"pivot_y"`
}

type RenderLayerSpec struct {
	Index int `yaml:"index"`
}

// YAMLColor accepts "#rrggbb", "#rrggbbaa" or an SVG color name.
type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	if named, ok := colornames.Map[strings.ToLower(strings.TrimSpace(value.Value))]; ok {
		c.Color = named
		return nil
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}

// ColorOr returns the parsed color, or fallback when c is unset.
func (c *YAMLColor) ColorOr(fallback color.Color) color.Color {
	if c == nil || c.Color == nil {
		return fallback
	}
	return c.Color
}
