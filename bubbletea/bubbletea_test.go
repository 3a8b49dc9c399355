package bubbletea_test

import (
	"context"
	"io"
	"os"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/aethel"
	bt "github.com/fwojciec/aethel/bubbletea"
	"github.com/fwojciec/aethel/mock"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

// Indices into testFeatures.
const (
	chatIdx = iota
	textIdx
	imageIdx
	audioIdx
)

var testFeatures = []aethel.Feature{
	{ID: "weaver", Title: "Epic Weaver", Description: "Co-write a saga.", Mode: aethel.ModeChat, Model: "gemini-2.5-pro", Instruction: "You are a storyteller."},
	{ID: "oracle", Title: "Deep Dive Oracle", Description: "Explain anything.", Mode: aethel.ModeSingleShot, Model: "gemini-2.5-pro", Instruction: "You are an oracle."},
	{ID: "vision", Title: "Aetheric Vision", Description: "Paint with words.", Mode: aethel.ModeSingleShot, Kind: aethel.KindImage},
	{ID: "resonance", Title: "Resonance Engine", Description: "Hear a scene.", Mode: aethel.ModeSingleShot, Kind: aethel.KindAudio, Instruction: "You are a sound designer."},
}

var fixedNow = func() time.Time { return time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC) }

// replyStream returns a stream yielding fragments, then err or io.EOF.
func replyStream(fragments []string, err error) *mock.Stream {
	i := 0
	return &mock.Stream{NextFn: func() (string, error) {
		if i < len(fragments) {
			i++
			return fragments[i-1], nil
		}
		if err != nil {
			return "", err
		}
		return "", io.EOF
	}}
}

// chatStarter opens conversations that answer every message with
// fragments followed by err. It records each ChatConfig it sees.
type chatStarter struct {
	fragments []string
	err       error

	mu      sync.Mutex
	configs []aethel.ChatConfig
}

func (s *chatStarter) starter() *mock.ChatStarter {
	return &mock.ChatStarter{
		StartChatFn: func(_ context.Context, cfg aethel.ChatConfig) (aethel.Conversation, error) {
			s.mu.Lock()
			s.configs = append(s.configs, cfg)
			s.mu.Unlock()
			return &mock.Conversation{
				SendStreamFn: func(context.Context, string) (aethel.Stream, error) {
					return replyStream(s.fragments, s.err), nil
				},
			}, nil
		},
	}
}

func (s *chatStarter) seen() []aethel.ChatConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]aethel.ChatConfig(nil), s.configs...)
}

// savedPrefs records every Save call.
type savedPrefs struct {
	mu    sync.Mutex
	saves []aethel.Preferences
}

func (s *savedPrefs) store() *mock.PreferenceStore {
	return &mock.PreferenceStore{
		SaveFn: func(p aethel.Preferences) error {
			s.mu.Lock()
			defer s.mu.Unlock()
			s.saves = append(s.saves, p)
			return nil
		},
	}
}

func newConfig(t *testing.T, starter aethel.ChatStarter, gen aethel.Generator) bt.Config {
	t.Helper()
	catalog, err := aethel.NewCatalog(testFeatures)
	require.NoError(t, err)
	if starter == nil {
		starter = (&chatStarter{fragments: []string{"Once ", "upon a time."}}).starter()
	}
	if gen == nil {
		gen = &mock.Generator{}
	}
	return bt.Config{
		Catalog:   catalog,
		Registry:  aethel.NewRegistry(starter),
		Generator: gen,
		OutputDir: t.TempDir(),
		Now:       fixedNow,
	}
}

// initModel creates a model and sends a WindowSizeMsg to initialize the viewport.
func initModel(t *testing.T, cfg bt.Config) bt.Model {
	t.Helper()
	return initModelWithSize(t, cfg, 80, 24)
}

// initModelWithSize creates a model with a custom terminal size.
func initModelWithSize(t *testing.T, cfg bt.Config, width, height int) bt.Model {
	t.Helper()
	m := bt.New(cfg, aethel.DefaultPreferences())
	return updateModel(t, m, tea.WindowSizeMsg{Width: width, Height: height})
}

// updateModel sends a message and returns the updated Model.
func updateModel(t *testing.T, m bt.Model, msg tea.Msg) bt.Model {
	t.Helper()
	m, _ = updateWithCmd(t, m, msg)
	return m
}

func updateWithCmd(t *testing.T, m bt.Model, msg tea.Msg) (bt.Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	model, ok := updated.(bt.Model)
	require.True(t, ok)
	return model, cmd
}

// key builds a KeyMsg from a key name or literal text.
func key(name string) tea.KeyMsg {
	switch name {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(name)}
}

// press sends each key in order.
func press(t *testing.T, m bt.Model, keys ...string) bt.Model {
	t.Helper()
	for _, k := range keys {
		m = updateModel(t, m, key(k))
	}
	return m
}

// openFeature moves the dashboard cursor to idx and opens it.
func openFeature(t *testing.T, m bt.Model, idx int) bt.Model {
	t.Helper()
	for range idx {
		m = press(t, m, "down")
	}
	return press(t, m, "enter")
}

// submit types text, presses Enter and drives the resulting commands
// until the request finishes.
func submit(t *testing.T, m bt.Model, text string) bt.Model {
	t.Helper()
	m = press(t, m, text)
	m, cmd := updateWithCmd(t, m, key("enter"))
	return drive(t, m, cmd)
}

// drive executes cmd and feeds request messages back into the model until
// no work remains. Cursor blinks and spinner ticks are dropped.
func drive(t *testing.T, m bt.Model, cmd tea.Cmd) bt.Model {
	t.Helper()
	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}
		switch msg := c().(type) {
		case tea.BatchMsg:
			queue = append(queue, msg...)
		case bt.FragmentMsg:
			var next tea.Cmd
			m, next = updateWithCmd(t, m, msg)
			queue = append(queue, next)
		case bt.ReplyDoneMsg, bt.SingleShotDoneMsg, bt.PreferencesSavedMsg:
			m = updateModel(t, m, msg)
		}
	}
	return m
}
