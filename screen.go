package aethel

// Screen is a sealed interface for the two top-level UI states.
type Screen interface {
	isScreen()
}

// Browsing is the dashboard state: no feature is active.
type Browsing struct{}

func (Browsing) isScreen() {}

// Interacting is the state of working with one feature.
type Interacting struct {
	Feature Feature
}

func (Interacting) isScreen() {}

// Interface compliance checks.
var (
	_ Screen = Browsing{}
	_ Screen = Interacting{}
)

// SingleShotState is the visible state of a single-shot feature.
type SingleShotState struct {
	Prompt      string
	Response    string
	Images      []Image
	Audio       []byte
	Description string
	Err         error
}

// IsZero reports whether nothing is shown.
func (s SingleShotState) IsZero() bool {
	return s.Prompt == "" && s.Response == "" && len(s.Images) == 0 &&
		len(s.Audio) == 0 && s.Description == "" && s.Err == nil
}

// ViewState is what the UI shows: the current screen plus the per-feature
// view data. Sessions in the Registry live independently of it.
type ViewState struct {
	Screen     Screen
	SingleShot SingleShotState
	Transcript Transcript
}

// NewViewState returns the initial Browsing state.
func NewViewState() ViewState {
	return ViewState{Screen: Browsing{}}
}

// Select makes f the active feature. Single-shot state and the visible
// transcript are reset; any registered session for f is left alone.
func (v ViewState) Select(f Feature) ViewState {
	return ViewState{Screen: Interacting{Feature: f}}
}

// Back returns to the dashboard, resetting the view data.
func (v ViewState) Back() ViewState {
	return NewViewState()
}

// Active returns the active feature, if any.
func (v ViewState) Active() (Feature, bool) {
	if s, ok := v.Screen.(Interacting); ok {
		return s.Feature, true
	}
	return Feature{}, false
}
