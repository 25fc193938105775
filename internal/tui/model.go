// Package tui provides the BubbleTea-based demo for popkit: a list whose
// context popup is placed by the placement package and whose input runs
// through keybind binders.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/jmylchreest/popkit/internal/config"
	"github.com/jmylchreest/popkit/internal/geom"
	"github.com/jmylchreest/popkit/internal/keybind"
	"github.com/jmylchreest/popkit/internal/keyevent"
	"github.com/jmylchreest/popkit/internal/lifecycle"
	"github.com/jmylchreest/popkit/internal/placement"
	"github.com/jmylchreest/popkit/internal/ref"
)

// action is what a key binding asks the model to do. Binder callbacks run
// during dispatch; they queue actions and Update applies them, keeping the
// callbacks free of Bubble Tea's value-copy semantics.
type action int

const (
	actionOpenPopup action = iota
	actionClosePopup
	actionCursorUp
	actionCursorDown
	actionQuit
	actionToggleHelp
)

// session owns the binder and placer plumbing. It lives on the heap so
// binder callbacks observe current state across model copies.
type session struct {
	document   *keyevent.Dispatcher
	popupRef   *ref.Ref[keyevent.Target]
	measureRef *ref.Ref[placement.Measurable]
	placer     *placement.Placer
	binders    map[string]*keybind.Binder

	popup       *popupNode
	popupEffect lifecycle.Effect
	width       int
	height      int
	pending     []action
}

func newSession(cfg *config.Config) *session {
	s := &session{
		document:   keyevent.NewDispatcher(),
		popupRef:   ref.New[keyevent.Target](),
		measureRef: ref.New[placement.Measurable](),
	}
	s.placer = placement.NewPlacer(s.measureRef, s.viewport)

	s.binders = map[string]*keybind.Binder{
		"open": keybind.Bind(cfg.Keys.Open, s.push(actionOpenPopup),
			keybind.WithDocument(s.document)),
		// The close binding follows the popup: while the popup ref is
		// set it listens there, otherwise on the document.
		"close": keybind.Bind(cfg.Keys.Close, s.push(actionClosePopup),
			keybind.WithDocument(s.document),
			keybind.WithTarget(s.popupRef)),
		"up": keybind.Bind(cfg.Keys.Up, s.push(actionCursorUp),
			keybind.WithDocument(s.document)),
		"down": keybind.Bind(cfg.Keys.Down, s.push(actionCursorDown),
			keybind.WithDocument(s.document)),
		"quit": keybind.Bind(cfg.Keys.Quit, s.push(actionQuit),
			keybind.WithDocument(s.document)),
		"help": keybind.Bind(cfg.Keys.Help, s.push(actionToggleHelp),
			keybind.WithDocument(s.document)),
	}
	for _, b := range s.binders {
		b.Activate()
	}
	return s
}

// push returns a callback queueing a for the next Update pass.
func (s *session) push(a action) keybind.Callback {
	return func(*keyevent.Event) {
		s.pending = append(s.pending, a)
	}
}

// take drains the pending action queue.
func (s *session) take() []action {
	pending := s.pending
	s.pending = nil
	return pending
}

func (s *session) viewport() geom.Viewport {
	return geom.Viewport{Width: float64(s.width), Height: float64(s.height)}
}

// mountPopup drives the popup effect: whenever the watched node changes,
// the previous node's refs are cleared and its close binding detached
// before the new node is wired up. A nil node unmounts.
func (s *session) mountPopup(node *popupNode) {
	s.popupEffect.Run([]any{node}, func() lifecycle.Disposable {
		if node == nil {
			return nil
		}
		s.popup = node
		s.popupRef.Set(node)
		s.measureRef.Set(node)
		s.binders["close"].Refresh()
		return lifecycle.Func(func() {
			s.popup = nil
			s.popupRef.Clear()
			s.measureRef.Clear()
			s.binders["close"].Refresh()
		})
	})
}

// openPopup mounts a fresh popup node anchored at the given cell and runs
// the placement pass for it.
func (s *session) openPopup(anchorX, anchorY int, cfg config.PopupConfig) placement.Placement {
	s.mountPopup(newPopupNode(anchorX, anchorY, cfg.Cols, cfg.Rows))
	return s.placer.Measure()
}

// closePopup unmounts the popup node and moves the close binding back to
// the document.
func (s *session) closePopup() {
	s.mountPopup(nil)
}

// rebind swaps the key identities in place. The subscriptions stay put;
// the binders read the new keys on the next event.
func (s *session) rebind(keys config.KeysConfig) {
	s.binders["open"].SetKey(keys.Open)
	s.binders["close"].SetKey(keys.Close)
	s.binders["up"].SetKey(keys.Up)
	s.binders["down"].SetKey(keys.Down)
	s.binders["quit"].SetKey(keys.Quit)
	s.binders["help"].SetKey(keys.Help)
}

// dispose tears down the popup effect and every binding. Run on unmount.
func (s *session) dispose() {
	s.popupEffect.Dispose()
	for _, b := range s.binders {
		b.Dispose()
	}
}

// demoItem is a list entry the popup anchors to.
type demoItem struct {
	title string
	desc  string
}

func (i demoItem) Title() string       { return i.title }
func (i demoItem) Description() string { return i.desc }
func (i demoItem) FilterValue() string { return i.title }

func demoItems() []list.Item {
	return []list.Item{
		demoItem{title: "reports/q3-summary.md", desc: "modified 2 days ago"},
		demoItem{title: "notes/interview.md", desc: "modified 5 days ago"},
		demoItem{title: "drafts/roadmap.md", desc: "modified last week"},
		demoItem{title: "archive/2025-plan.md", desc: "modified 3 months ago"},
		demoItem{title: "inbox/todo.md", desc: "modified yesterday"},
	}
}

// Model is the demo TUI model.
type Model struct {
	cfg  *config.Config
	s    *session
	list list.Model
	help help.Model
	keys KeyMap

	width  int
	height int
	ready  bool

	popupOpen bool
	placed    placement.Placement

	statusMsg  string
	reloadedAt time.Time

	reloadCh <-chan *config.Config
}

type configReloadedMsg struct {
	cfg *config.Config
}

type statusMsg struct {
	text string
}

type clearStatusMsg struct{}

// New creates a new demo model. reloadCh may be nil; when set, configs
// received on it hot-swap the key bindings.
func New(cfg *config.Config, reloadCh <-chan *config.Config) Model {
	l := list.New(demoItems(), list.NewDefaultDelegate(), 0, 0)
	l.Title = "popkit demo"
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()

	return Model{
		cfg:      cfg,
		s:        newSession(cfg),
		list:     l,
		help:     help.New(),
		keys:     NewKeyMap(cfg.Keys),
		placed:   placement.Default(),
		reloadCh: reloadCh,
	}
}

// Init initializes the TUI.
func (m Model) Init() tea.Cmd {
	if m.reloadCh == nil {
		return nil
	}
	return m.watchForReload
}

// watchForReload waits for the next hot-reloaded config.
func (m Model) watchForReload() tea.Msg {
	cfg, ok := <-m.reloadCh
	if !ok {
		return nil
	}
	return configReloadedMsg{cfg: cfg}
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.s.width = msg.Width
		m.s.height = msg.Height
		m.ready = true
		m.list.SetSize(msg.Width, msg.Height-2)
		return m, nil

	case configReloadedMsg:
		m.cfg = msg.cfg
		m.s.rebind(msg.cfg.Keys)
		m.keys = NewKeyMap(msg.cfg.Keys)
		m.reloadedAt = time.Now()
		return m, tea.Batch(m.watchForReload, func() tea.Msg {
			return statusMsg{text: "config reloaded"}
		})

	case statusMsg:
		m.statusMsg = msg.text
		return m, tea.Tick(3*time.Second, func(time.Time) tea.Msg {
			return clearStatusMsg{}
		})

	case clearStatusMsg:
		m.statusMsg = ""
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// handleKey routes terminal input through the event targets: the popup
// node first while it is open, then the document unless a listener
// prevented the default, then the host list for anything unclaimed.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ev := keyevent.FromKeyMsg(msg)

	if m.popupOpen && m.s.popup != nil {
		m.s.popup.Dispatch(ev)
	}
	if !ev.DefaultPrevented() {
		m.s.document.Dispatch(ev)
	}

	var cmds []tea.Cmd
	for _, a := range m.s.take() {
		switch a {
		case actionOpenPopup:
			if !m.popupOpen {
				m.placed = m.s.openPopup(m.anchorX(), m.anchorY(), m.cfg.Popup)
				m.popupOpen = true
			}
		case actionClosePopup:
			if m.popupOpen {
				m.s.closePopup()
				m.popupOpen = false
			}
		case actionCursorUp:
			if !m.popupOpen {
				m.list.CursorUp()
			}
		case actionCursorDown:
			if !m.popupOpen {
				m.list.CursorDown()
			}
		case actionQuit:
			m.s.dispose()
			return m, tea.Quit
		case actionToggleHelp:
			m.help.ShowAll = !m.help.ShowAll
		}
	}

	if !ev.DefaultPrevented() && !m.popupOpen {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// anchorX returns the x cell of the selected row's content.
func (m Model) anchorX() int {
	return 4
}

// anchorY returns the y cell of the selected row. The list renders two
// title rows before its items and two rows per item.
func (m Model) anchorY() int {
	return 2 + 2*m.list.Index()
}

// View renders the TUI.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	if m.popupOpen {
		return m.viewPopup()
	}

	return m.list.View() + "\n" + m.statusBar()
}

// viewPopup renders the popup in the region the placer chose for it.
func (m Model) viewPopup() string {
	var selected string
	if item, ok := m.list.SelectedItem().(demoItem); ok {
		selected = item.title
	}

	hPos := lipgloss.Right
	if m.placed.Alignment == placement.AlignLeft {
		hPos = lipgloss.Left
	}
	vPos := lipgloss.Bottom
	if m.placed.Side == placement.SideTop {
		vPos = lipgloss.Top
	}

	box := renderPopup(selected, m.cfg.Popup.Cols)
	field := lipgloss.Place(m.width, m.height-1, hPos, vPos, box)

	return field + "\n" + m.statusBar()
}

// statusBar renders the status message, or the keybind bar with the last
// config reload age.
func (m Model) statusBar() string {
	if m.statusMsg != "" {
		return lipgloss.NewStyle().Foreground(lipgloss.Color("7")).Render(m.statusMsg)
	}

	bar := ""
	if m.cfg.TUI.ShowKeybindBar {
		bar = m.help.View(m.keys)
	}
	if m.popupOpen {
		bar = fmt.Sprintf("placement: %s/%s  ", m.placed.Alignment, m.placed.Side) + bar
	}
	if !m.reloadedAt.IsZero() {
		bar += lipgloss.NewStyle().Foreground(lipgloss.Color("8")).
			Render("  reloaded " + humanize.Time(m.reloadedAt))
	}
	return bar
}

// RunOptions configures the TUI.
type RunOptions struct {
	Config     *config.Config
	ConfigPath string // Path to watch for changes (empty = no watching)
}

// Run starts the TUI with the given options.
func Run(opts RunOptions) error {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	var reloadCh chan *config.Config
	var watcher *config.Watcher
	if opts.ConfigPath != "" {
		reloadCh = make(chan *config.Config, 1)
		var err error
		watcher, err = config.NewWatcher(opts.ConfigPath, func(c *config.Config) {
			select {
			case reloadCh <- c:
			default:
			}
		})
		if err != nil {
			return fmt.Errorf("failed to create config watcher: %w", err)
		}
		if err := watcher.Start(); err != nil {
			return fmt.Errorf("failed to start config watcher: %w", err)
		}
	}

	m := New(cfg, reloadCh)
	p := tea.NewProgram(m, tea.WithAltScreen())

	_, err := p.Run()

	if watcher != nil {
		watcher.Stop()
	}

	return err
}
