package component

// AnimatorTarget accepts named parameter writes.
type AnimatorTarget interface {
	SetFloat(name string, v float64)
	SetBool(name string, v bool)
}

// Animator holds blend parameters and the directional clip playback state.
type Animator struct {
	Floats map[string]float64
	Bools  map[string]bool

	Sheet     *SpriteSheet
	Clips     map[string]AnimationClip
	Current   string
	Direction int
	Frame     int
	Elapsed   float64
}

func NewAnimator() *Animator {
	return &Animator{
		Floats: make(map[string]float64),
		Bools:  make(map[string]bool),
		Clips:  make(map[string]AnimationClip),
	}
}

func (a *Animator) SetFloat(name string, v float64) {
	if a.Floats == nil {
		a.Floats = make(map[string]float64)
	}
	a.Floats[name] = v
}

func (a *Animator) SetBool(name string, v bool) {
	if a.Bools == nil {
		a.Bools = make(map[string]bool)
	}
	a.Bools[name] = v
}

func (a *Animator) Float(name string) float64 {
	return a.Floats[name]
}

func (a *Animator) Bool(name string) bool {
	return a.Bools[name]
}

// AnimationClip is a run of frames on a sheet row. Directional clips use one
// row per direction starting at Row.
type AnimationClip struct {
	Name       string
	Row        int
	ColStart   int
	FrameCount int
	FPS        float64
	Loop       bool
}

var AnimatorComponent = NewComponent[Animator]()
