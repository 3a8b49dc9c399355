package bubbletea

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/aethel"
	"github.com/rivo/uniseg"
)

var _ tea.Model = Model{}

// Heights of the fixed sections around the viewport.
const (
	headerHeight = 1
	statusHeight = 1
	inputHeight  = 1
	gapHeight    = 3 // newlines between sections
)

// Model is the Bubble Tea model for the aethel TUI.
type Model struct {
	// Input is the prompt input. Exported for test access.
	Input textinput.Model
	// Viewport is the scrollable content area. Exported for test access.
	Viewport viewport.Model

	cfg      Config
	features []aethel.Feature
	writer   artifactWriter

	view   aethel.ViewState
	prefs  aethel.Preferences
	theme  aethel.Theme
	styles Styles

	cursor       int
	panelOpen    bool
	panelRow     panelRow
	confirmClear bool

	blocks []MessageBlock
	reply  *AssistantTextBlock // receives fragments of the running reply
	paths  []string            // files written for the single-shot result

	spinner spinner.Model
	running bool
	cancel  context.CancelFunc
	fragCh  chan string
	doneCh  chan error
	err     error
	notice  string
	ready   bool
}

// New creates the TUI model starting on the dashboard with the given
// preferences.
func New(cfg Config, prefs aethel.Preferences) Model {
	if cfg.Catalog == nil {
		cfg.Catalog = aethel.DefaultCatalog()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 0

	theme := aethel.ThemeFor(prefs.Theme)
	return Model{
		Input:    ti,
		cfg:      cfg,
		features: cfg.Catalog.List(),
		writer:   artifactWriter{dir: cfg.OutputDir, now: cfg.Now},
		view:     aethel.NewViewState(),
		prefs:    prefs,
		theme:    theme,
		styles:   NewStyles(theme),
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
}

// Running returns whether a request is in flight.
func (m Model) Running() bool { return m.running }

// Err returns the last error shown in the status line, if any.
func (m Model) Err() error { return m.err }

// State returns the current view state.
func (m Model) State() aethel.ViewState { return m.view }

// Preferences returns the current theme and settings.
func (m Model) Preferences() aethel.Preferences { return m.prefs }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m = m.handleWindowSize(msg)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case FragmentMsg:
		m.view.Transcript = m.view.Transcript.AppendFragment(msg.Text)
		if m.reply == nil {
			m.reply = NewAssistantTextBlock(m.theme)
			m.blocks = append(m.blocks, m.reply)
		}
		m.reply.Append(msg.Text)
		m = m.refresh()
		m.Viewport.GotoBottom()
		if m.fragCh != nil {
			return m, listenForFragment(m.fragCh, m.doneCh)
		}
		return m, nil

	case ReplyDoneMsg:
		m = m.finishRun()
		if msg.Err != nil {
			m = m.replyFailed(msg.Err)
		}
		m = m.refresh()
		m.Viewport.GotoBottom()
		return m.focusInput()

	case SingleShotDoneMsg:
		m = m.finishRun()
		m.view.SingleShot = msg.State
		m.paths = msg.Paths
		f, _ := m.view.Active()
		switch err := msg.State.Err; {
		case errors.Is(err, context.Canceled):
			m.notice = "Cancelled."
		case err != nil:
			m.cfg.Logger.Error("single-shot failed", "feature_id", f.ID, "error", err)
		default:
			m.cfg.Logger.Info("single-shot finished", "feature_id", f.ID, "files", len(msg.Paths))
		}
		m.blocks = m.singleShotBlocks()
		m = m.refresh()
		m.Viewport.GotoTop()
		return m.focusInput()

	case PreferencesSavedMsg:
		if msg.Err != nil {
			m.err = msg.Err
			m.cfg.Logger.Error("save preferences", "error", msg.Err)
		}
		return m, nil

	case spinner.TickMsg:
		if !m.running {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	// Viewport always receives remaining messages for scrolling.
	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(msg)
	cmds = append(cmds, cmd)

	if !m.running {
		m.Input, cmd = m.Input.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var b strings.Builder

	b.WriteString(m.header())
	b.WriteString("\n")

	if m.panelOpen {
		panel := renderPanel(m.prefs, m.panelRow, m.confirmClear, m.styles)
		b.WriteString(lipgloss.NewStyle().Height(m.Viewport.Height).Render(panel))
	} else {
		b.WriteString(m.Viewport.View())
	}
	b.WriteString("\n")

	b.WriteString(m.statusLine())
	b.WriteString("\n")

	if _, ok := m.view.Active(); ok {
		b.WriteString(m.Input.View())
	}

	return b.String()
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) Model {
	vpHeight := max(msg.Height-headerHeight-statusHeight-inputHeight-gapHeight, 1)

	if !m.ready {
		m.Viewport = viewport.New(msg.Width, vpHeight)
		m.ready = true
	} else {
		m.Viewport.Width = msg.Width
		m.Viewport.Height = vpHeight
	}

	m.Input.Width = msg.Width
	return m.refresh()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		if m.running {
			if m.cancel != nil {
				m.cancel()
			}
			return m, nil
		}
		return m, tea.Quit
	}

	if m.panelOpen {
		return m.handlePanelKey(msg)
	}
	if msg.Type == tea.KeyTab {
		m.panelOpen = true
		m.Input.Blur()
		return m, nil
	}

	if _, ok := m.view.Active(); ok {
		return m.handleInteractingKey(msg)
	}
	return m.handleBrowsingKey(msg)
}

func (m Model) handleBrowsingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		m = m.refresh()
		return m.followCursor(), nil
	case "down", "j":
		if m.cursor < len(m.features)-1 {
			m.cursor++
		}
		m = m.refresh()
		return m.followCursor(), nil
	case "enter":
		if len(m.features) == 0 {
			return m, nil
		}
		return m.selectFeature(m.features[m.cursor])
	}

	var cmd tea.Cmd
	if msg.Type != tea.KeyRunes {
		m.Viewport, cmd = m.Viewport.Update(msg)
	}
	return m, cmd
}

func (m Model) handleInteractingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		if m.running {
			return m, nil
		}
		m.view = m.view.Back()
		m.blocks, m.reply, m.paths = nil, nil, nil
		m.err, m.notice = nil, ""
		m.Input.SetValue("")
		m.Input.Blur()
		m = m.refresh()
		return m.followCursor(), nil

	case tea.KeyEnter:
		if m.running {
			return m, nil
		}
		text := strings.TrimSpace(m.Input.Value())
		if text == "" {
			return m, nil
		}
		f, _ := m.view.Active()
		if f.IsChat() {
			return m.submitChat(f, text)
		}
		return m.submitSingleShot(f, text)
	}

	// When idle, keys go to the input for typing and non-character keys
	// also go to the viewport for scrolling.
	if !m.running {
		var cmd tea.Cmd
		var cmds []tea.Cmd

		if msg.Type != tea.KeyRunes {
			m.Viewport, cmd = m.Viewport.Update(msg)
			cmds = append(cmds, cmd)
		}

		m.Input, cmd = m.Input.Update(msg)
		cmds = append(cmds, cmd)

		return m, tea.Batch(cmds...)
	}

	return m, nil
}

func (m Model) handlePanelKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirmClear {
		m.confirmClear = false
		if msg.String() == "y" || msg.String() == "Y" {
			n := m.cfg.Registry.Len()
			m.cfg.Registry.ClearAll()
			m.notice = "All contexts cleared."
			m.cfg.Logger.Info("contexts cleared from settings", "sessions", n)
		}
		return m, nil
	}

	switch msg.String() {
	case "tab", "esc":
		m.panelOpen = false
		return m.focusInput()
	case "up", "k":
		if m.panelRow > 0 {
			m.panelRow--
		}
	case "down", "j":
		if m.panelRow < panelRowCount-1 {
			m.panelRow++
		}
	case "left", "h":
		return m.changeSetting(-1)
	case "right", "l", "enter", " ":
		return m.changeSetting(1)
	}
	return m, nil
}

// changeSetting moves the selected panel row one step in direction dir.
func (m Model) changeSetting(dir int) (tea.Model, tea.Cmd) {
	p := m.prefs
	switch m.panelRow {
	case rowLength:
		if dir > 0 {
			p.Settings.Length = p.Settings.Length.Next()
		} else {
			p.Settings.Length = p.Settings.Length.Prev()
		}
	case rowCreativity:
		if dir > 0 {
			p.Settings.Creativity = p.Settings.Creativity.Next()
		} else {
			p.Settings.Creativity = p.Settings.Creativity.Prev()
		}
	case rowAdherence:
		p.Settings = p.Settings.WithAdherence(p.Settings.Adherence + dir*adherenceStep)
	case rowTheme:
		p.Theme = p.Theme.Toggle()
	case rowClear:
		m.confirmClear = dir > 0
		return m, nil
	}
	if p == m.prefs {
		return m, nil
	}
	return m.applyPreferences(p)
}

// applyPreferences switches to p and persists it. A theme change restyles
// every visible block.
func (m Model) applyPreferences(p aethel.Preferences) (tea.Model, tea.Cmd) {
	themeChanged := p.Theme != m.prefs.Theme
	m.prefs = p
	m.err = nil
	if themeChanged {
		m.theme = aethel.ThemeFor(p.Theme)
		m.styles = NewStyles(m.theme)
		m.blocks = m.interactionBlocks()
		if m.reply != nil && len(m.blocks) > 0 {
			if last, ok := m.blocks[len(m.blocks)-1].(*AssistantTextBlock); ok {
				m.reply = last
			}
		}
		m = m.refresh()
	}
	return m, savePreferences(m.cfg.Store, p)
}

func (m Model) selectFeature(f aethel.Feature) (tea.Model, tea.Cmd) {
	m.view = m.view.Select(f)
	m.reply, m.paths = nil, nil
	m.err, m.notice = nil, ""
	m.blocks = m.interactionBlocks()

	m.Input.SetValue("")
	if f.IsChat() {
		if _, ok := m.cfg.Registry.Lookup(f.ID); ok {
			m.notice = "Continuing the earlier conversation."
		}
		m.Input.Placeholder = "Message " + f.Title + "..."
	} else {
		m.Input.Placeholder = "Your prompt for " + f.Title + "..."
	}

	m = m.refresh()
	m.Viewport.GotoTop()
	cmd := m.Input.Focus()
	return m, cmd
}

func (m Model) submitChat(f aethel.Feature, text string) (tea.Model, tea.Cmd) {
	m.Input.SetValue("")
	m.err, m.notice = nil, ""

	history := m.view.Transcript.WithoutErrors()
	m.view.Transcript = m.view.Transcript.AppendUser(text)
	m.blocks = append(m.blocks, NewUserMessageBlock(text, m.styles))
	m.reply = nil
	m = m.refresh()
	m.Viewport.GotoBottom()

	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	m.fragCh = make(chan string, 256)
	m.doneCh = make(chan error, 1)
	m.running = true

	m.Input.Blur()

	req := replyRequest{
		feature:  f,
		history:  history,
		settings: m.prefs.Settings,
		text:     text,
	}
	return m, tea.Batch(
		startReply(ctx, m.cfg.Registry, req, m.fragCh, m.doneCh),
		listenForFragment(m.fragCh, m.doneCh),
		m.spinner.Tick,
	)
}

func (m Model) submitSingleShot(f aethel.Feature, prompt string) (tea.Model, tea.Cmd) {
	m.Input.SetValue("")
	m.err, m.notice = nil, ""
	m.paths = nil

	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	m.running = true

	m.view.SingleShot = aethel.SingleShotState{Prompt: prompt}
	m.blocks = m.singleShotBlocks()
	m = m.refresh()

	m.Input.Blur()

	return m, tea.Batch(
		runSingleShot(ctx, m.cfg.Generator, m.writer, f, prompt, m.prefs.Settings),
		m.spinner.Tick,
	)
}

func (m Model) finishRun() Model {
	m.running = false
	m.cancel = nil
	m.fragCh = nil
	m.doneCh = nil
	m.reply = nil
	return m
}

// replyFailed records a failed chat reply. Text already received stays in
// place; the error follows it as its own model message.
func (m Model) replyFailed(err error) Model {
	if errors.Is(err, context.Canceled) {
		m.notice = "Cancelled."
		return m
	}
	f, _ := m.view.Active()
	m.cfg.Logger.Error("chat reply failed", "feature_id", f.ID, "error", err)
	m.view.Transcript = m.view.Transcript.AppendError(err)
	m.blocks = append(m.blocks, NewErrorBlock(err.Error(), m.styles))
	return m
}

// focusInput gives the prompt input focus when the user can type.
func (m Model) focusInput() (Model, tea.Cmd) {
	if _, ok := m.view.Active(); !ok || m.running || m.panelOpen {
		return m, nil
	}
	cmd := m.Input.Focus()
	return m, cmd
}

// interactionBlocks rebuilds the blocks of the active feature from the
// view state.
func (m Model) interactionBlocks() []MessageBlock {
	f, ok := m.view.Active()
	switch {
	case !ok:
		return nil
	case f.IsChat():
		return blocksFromTranscript(m.view.Transcript, m.theme, m.styles)
	default:
		return m.singleShotBlocks()
	}
}

func (m Model) singleShotBlocks() []MessageBlock {
	f, _ := m.view.Active()
	st := m.view.SingleShot
	if st.IsZero() {
		return []MessageBlock{NewPlaceholderBlock(f.Description, m.styles)}
	}

	blocks := []MessageBlock{NewUserMessageBlock(st.Prompt, m.styles)}
	if m.running {
		return blocks
	}
	if st.Err != nil {
		blocks = append(blocks, NewErrorBlock(st.Err.Error(), m.styles))
	}
	switch f.Kind {
	case aethel.KindImage:
		if len(m.paths) > 0 {
			heading := fmt.Sprintf("Generated %d images", len(m.paths))
			blocks = append(blocks, NewArtifactBlock(heading, "", m.paths, m.styles))
		} else if st.Err == nil {
			blocks = append(blocks, NewArtifactBlock("No images returned.", "", nil, m.styles))
		}
	case aethel.KindAudio:
		if len(m.paths) > 0 {
			blocks = append(blocks, NewArtifactBlock(soundscapeHeading(st.Audio), st.Description, m.paths, m.styles))
		}
	default:
		if st.Response != "" {
			b := NewAssistantTextBlock(m.theme)
			b.Append(st.Response)
			blocks = append(blocks, b)
		}
	}
	return blocks
}

func (m Model) refresh() Model {
	if !m.ready {
		return m
	}
	if _, ok := m.view.Active(); ok {
		m.Viewport.SetContent(renderBlocks(m.blocks, m.Viewport.Width))
	} else {
		m.Viewport.SetContent(renderDashboard(m.features, m.cursor, m.Viewport.Width, m.styles))
	}
	return m
}

// followCursor scrolls the dashboard so the selected card is visible.
func (m Model) followCursor() Model {
	top := m.cursor * cardHeight
	switch {
	case top < m.Viewport.YOffset:
		m.Viewport.SetYOffset(top)
	case top+1 >= m.Viewport.YOffset+m.Viewport.Height:
		m.Viewport.SetYOffset(top + 2 - m.Viewport.Height)
	}
	return m
}

func (m Model) header() string {
	sep := m.styles.Muted.Render(" · ")
	if f, ok := m.view.Active(); ok {
		return m.styles.Title.Render(f.Title) + sep + m.styles.Muted.Render(featureTag(f))
	}
	return m.styles.Title.Render("Aethel Nexus") + sep + m.styles.Muted.Render(m.prefs.Theme.Label())
}

func (m Model) statusLine() string {
	switch {
	case m.running:
		return m.spinner.View() + m.styles.Muted.Render(" Generating... Ctrl+C to cancel")
	case m.err != nil:
		return m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err))
	case m.notice != "":
		return m.styles.Success.Render(m.notice)
	}

	s := m.prefs.Settings
	settings := fmt.Sprintf("%s, %s, %d%%", s.Length, s.Creativity, s.Adherence)
	if _, ok := m.view.Active(); !ok {
		return m.styles.Muted.Render("↑/↓ to choose, Enter to open, Tab for settings, q to quit │ " + settings)
	}
	hint := "Enter to send, Esc to go back, Tab for settings, Ctrl+C to quit"
	if n := uniseg.GraphemeClusterCount(m.Input.Value()); n > 0 {
		hint = fmt.Sprintf("%d chars │ %s", n, hint)
	}
	return m.styles.Muted.Render(hint + " │ " + settings)
}

// replyRequest is everything a chat reply needs from the UI state.
type replyRequest struct {
	feature  aethel.Feature
	history  []aethel.ChatMessage
	settings aethel.Settings
	text     string
}

// startReply looks up or opens the feature's session and streams the
// reply in a goroutine, signalling completion on doneCh.
func startReply(ctx context.Context, reg *aethel.Registry, req replyRequest, fragCh chan<- string, doneCh chan<- error) tea.Cmd {
	return func() tea.Msg {
		err := sendReply(ctx, reg, req, func(fragment string) {
			select {
			case fragCh <- fragment:
			case <-ctx.Done():
			}
		})
		close(fragCh)
		doneCh <- err
		return nil
	}
}

func sendReply(ctx context.Context, reg *aethel.Registry, req replyRequest, onFragment func(string)) error {
	f := req.feature
	session, err := reg.GetOrCreate(ctx, f.ID, req.history, f.Instruction, req.settings)
	if err != nil {
		return err
	}
	return session.Send(ctx, req.text, onFragment)
}

// listenForFragment waits for the next fragment from the channel.
// When the channel closes, it reads the error from doneCh and returns ReplyDoneMsg.
func listenForFragment(ch <-chan string, doneCh <-chan error) tea.Cmd {
	return func() tea.Msg {
		fragment, ok := <-ch
		if !ok {
			return ReplyDoneMsg{Err: <-doneCh}
		}
		return FragmentMsg{Text: fragment}
	}
}

// runSingleShot dispatches on the feature's output kind and saves any
// media it returns.
func runSingleShot(ctx context.Context, gen aethel.Generator, w artifactWriter, f aethel.Feature, prompt string, s aethel.Settings) tea.Cmd {
	return func() tea.Msg {
		st := aethel.SingleShotState{Prompt: prompt}
		var paths []string

		switch f.Kind {
		case aethel.KindImage:
			res := gen.GenerateImages(ctx, prompt, s)
			st.Images, st.Err = res.Images, res.Err
			saved, err := w.saveImages(f.ID, res.Images)
			paths = saved
			if err != nil && st.Err == nil {
				st.Err = err
			}
		case aethel.KindAudio:
			res := gen.GenerateAudio(ctx, prompt, f.Instruction, s)
			st.Audio, st.Description, st.Err = res.Audio, res.Description, res.Err
			if len(res.Audio) > 0 {
				path, err := w.saveAudio(f.ID, res.Audio)
				if err != nil {
					st.Err = err
				} else {
					paths = []string{path}
				}
			}
		default:
			res := gen.GenerateText(ctx, prompt, f.Model, f.Instruction, s)
			st.Response, st.Err = res.Text, res.Err
		}

		return SingleShotDoneMsg{State: st, Paths: paths}
	}
}

func savePreferences(store aethel.PreferenceStore, p aethel.Preferences) tea.Cmd {
	if store == nil {
		return nil
	}
	return func() tea.Msg {
		return PreferencesSavedMsg{Err: store.Save(p)}
	}
}
