package prefabs

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestLoadPlayerSpec(t *testing.T) {
	spec, err := LoadPlayerSpec()
	require.NoError(t, err)

	assert.Equal(t, "player", spec.Name)
	assert.Equal(t, "move", spec.Input.Action)
	assert.Equal(t, 2.5, spec.Movement.MaxSpeed)
	assert.Equal(t, 12.5, spec.Movement.AccelSpeed)
	assert.Equal(t, 12.5, spec.Movement.DecelerateSpeed)
	assert.Equal(t, "hero.png", spec.Sheet.Image)
	assert.Equal(t, 32.0, spec.Sheet.PixelsPerUnit)
	require.Contains(t, spec.Animation.Clips, "idle")
	require.Contains(t, spec.Animation.Clips, "walk")
	assert.Equal(t, 4, spec.Animation.Clips["walk"].FrameCount)
	assert.Equal(t, color.Color(color.RGBA{R: 255, G: 255, B: 255, A: 255}), spec.Tint.Color)
}

func TestLoadCameraAndGameSpecs(t *testing.T) {
	cam, err := LoadCameraSpec()
	require.NoError(t, err)
	assert.Equal(t, "player", cam.Target)
	assert.Equal(t, -5.79, cam.Offset.X)
	assert.Equal(t, 5.74, cam.Offset.Y)

	game, err := LoadGameSpec()
	require.NoError(t, err)
	assert.Equal(t, 0.02, game.FixedStep)
	assert.Equal(t, 5, game.MaxSubSteps)
	assert.Len(t, game.Props, 3)
	assert.Nil(t, game.Props[0].Tint)
	require.NotNil(t, game.Props[1].Transform.Scale)
	assert.Equal(t, 1.2, game.Props[1].Transform.Scale.X)
}

func TestLoadSpecMissingFile(t *testing.T) {
	_, err := LoadSpec[CameraSpec]("nope.yaml")
	assert.ErrorContains(t, err, "prefabs: load nope.yaml")
}

func TestDiskOverride(t *testing.T) {
	dir := t.TempDir()
	prev := Dir
	Dir = dir
	t.Cleanup(func() { Dir = prev })

	require.NoError(t, os.WriteFile(filepath.Join(dir, CameraFile), []byte("target: hero\nzoom: 10\n"), 0o644))

	cam, err := LoadCameraSpec()
	require.NoError(t, err)
	assert.Equal(t, "hero", cam.Target)
	assert.Equal(t, 10.0, cam.Zoom)

	_, ok := ModTime(CameraFile)
	assert.True(t, ok)
	_, ok = ModTime(GameFile)
	assert.False(t, ok)
}

func TestYAMLColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.Color
	}{
		{in: `"#ff8000"`, want: color.NRGBA{R: 255, G: 128, A: 255}},
		{in: `"#ff800080"`, want: color.NRGBA{R: 255, G: 128, A: 128}},
		{in: `"00ff00"`, want: color.NRGBA{G: 255, A: 255}},
		{in: `Tomato`, want: color.RGBA{R: 0xff, G: 0x63, B: 0x47, A: 0xff}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var c YAMLColor
			require.NoError(t, yaml.Unmarshal([]byte(tt.in), &c))
			assert.Equal(t, tt.want, c.Color)
		})
	}
}

func TestYAMLColorRejectsBadInput(t *testing.T) {
	for _, in := range []string{`"#fff"`, `"#gggggg"`, `[1, 2]`} {
		var c YAMLColor
		assert.Error(t, yaml.Unmarshal([]byte(in), &c), in)
	}
}

func TestColorOr(t *testing.T) {
	var unset *YAMLColor
	assert.Equal(t, color.Color(color.White), unset.ColorOr(color.White))

	set := &YAMLColor{Color: color.Black}
	assert.Equal(t, color.Color(color.Black), set.ColorOr(color.White))
}

func TestName(t *testing.T) {
	assert.Equal(t, PlayerFile, Name("prefabs/player.yaml"))
	assert.Equal(t, PlayerFile, Name(filepath.Join(os.TempDir(), "x", "player.yaml")))
}

func TestWatcherReportsSpecChanges(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	path := filepath.Join(dir, PlayerFile)
	require.NoError(t, os.WriteFile(path, []byte("name: p\n"), 0o644))

	select {
	case got := <-w.Events:
		assert.Equal(t, PlayerFile, Name(got))
	case <-time.After(2 * time.Second):
		t.Fatal("no event for spec file")
	}
}

func TestWatcherAcceptFiltersAndDebounces(t *testing.T) {
	start := time.Unix(100, 0)
	last := make(map[string]time.Time)

	tests := []struct {
		name  string
		event fsnotify.Event
		at    time.Duration
		want  bool
	}{
		{"write", fsnotify.Event{Name: "player.yaml", Op: fsnotify.Write}, 0, true},
		{"repeat within window", fsnotify.Event{Name: "player.yaml", Op: fsnotify.Write}, 50 * time.Millisecond, false},
		{"other file in window", fsnotify.Event{Name: "camera.yml", Op: fsnotify.Create}, 50 * time.Millisecond, true},
		{"after window", fsnotify.Event{Name: "player.yaml", Op: fsnotify.Rename}, 150 * time.Millisecond, true},
		{"remove", fsnotify.Event{Name: "game.yaml", Op: fsnotify.Remove}, time.Second, false},
		{"chmod", fsnotify.Event{Name: "game.yaml", Op: fsnotify.Chmod}, time.Second, false},
		{"not yaml", fsnotify.Event{Name: "notes.txt", Op: fsnotify.Write}, time.Second, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, accept(tt.event, last, start.Add(tt.at)), tt.name)
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, w.Close())
	assert.NotPanics(t, func() { _ = w.Close() })
	assert.Empty(t, w.Drain())
}
