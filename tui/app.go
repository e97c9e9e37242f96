// ABOUTME: Top-level Bubble Tea AppModel that drives the execution engine and composes the TUI sub-panels.
// ABOUTME: Implements tea.Model (Init, Update, View); routes keys to controls, the name field or slot fields.
package tui

import (
	"errors"
	"fmt"
	"log"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/2389-research/arraylab/engine"
	"github.com/2389-research/arraylab/program"
)

// Focus targets other than slot fields, which use their index.
const (
	focusControls = -2
	focusName     = -1
)

// AppModel is the top-level Bubble Tea model. The engine pointer is only
// touched from Update, which Bubble Tea runs on a single goroutine.
type AppModel struct {
	setup     SetupPanelModel
	code      CodePanelModel
	cells     CellsPanelModel
	log       LogPanelModel
	statusBar StatusBarModel
	notice    NoticeModel

	engine *engine.Engine
	bridge *EventBridge

	focus  int
	width  int
	height int
}

// NewAppModel creates an AppModel over e. bridge must be the EventHandler e
// was constructed with.
func NewAppModel(e *engine.Engine, bridge *EventBridge) AppModel {
	cfg := e.Config()
	m := AppModel{
		setup:     NewSetupPanelModel(cfg.Name),
		code:      NewCodePanelModel(e.Slots()),
		cells:     NewCellsPanelModel(),
		log:       NewLogPanelModel(200),
		statusBar: NewStatusBarModel(len(e.Lines())),
		notice:    NewNoticeModel(),
		engine:    e,
		bridge:    bridge,
		focus:     focusControls,
	}
	m.drain()
	return m
}

// Engine returns the engine the model drives.
func (m AppModel) Engine() *engine.Engine {
	return m.engine
}

// Init implements tea.Model.
func (m AppModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case TickMsg:
		return m.handleTick(msg)

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m, nil
}

// View implements tea.Model. Renders the full TUI layout with all panels.
func (m AppModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	// Minimum terminal size guard to prevent layout overflow
	if m.width < 40 || m.height < 16 {
		return fmt.Sprintf("Terminal too small (%dx%d). Minimum: 40x16.", m.width, m.height)
	}

	m.setup.SetWidth(m.width)
	m.code.SetWidth(m.width)
	m.statusBar.SetWidth(m.width)

	setupView := m.setup.View(m.engine.Config(), m.engine.Locked())
	codeView := m.code.View(m.engine)

	statusBarHeight := 1
	bottomHeight := m.height - lipgloss.Height(setupView) - lipgloss.Height(codeView) - statusBarHeight
	if bottomHeight < 6 {
		bottomHeight = 6
	}
	cellsWidth := m.width * 60 / 100
	logWidth := m.width - cellsWidth
	m.cells.SetSize(cellsWidth, bottomHeight)
	m.log.SetSize(logWidth, bottomHeight)

	var leftPanel string
	if m.notice.IsActive() {
		leftPanel = lipgloss.Place(cellsWidth, bottomHeight, lipgloss.Center, lipgloss.Center, m.notice.View())
	} else {
		leftPanel = m.cells.View(m.engine)
	}
	bottomView := lipgloss.JoinHorizontal(lipgloss.Top, leftPanel, m.log.View())

	statusView := m.statusBar.View()
	if m.engine.Phase() == engine.Completed {
		statusView += " " + CompletedStyle.Render("DONE")
	}

	var b strings.Builder
	b.WriteString(setupView)
	b.WriteString("\n")
	b.WriteString(codeView)
	b.WriteString("\n")
	b.WriteString(bottomView)
	b.WriteString("\n")
	b.WriteString(statusView)
	b.WriteString("\n")
	b.WriteString(helpLine(m.focus))

	return b.String()
}

func helpLine(focus int) string {
	if focus == focusControls {
		return LogTimestampStyle.Render("r run all  n/space step  s stop  tab edit  t type  m method  +/- length  q quit")
	}
	return LogTimestampStyle.Render("type to edit  tab/shift+tab next field  esc/enter done  ctrl+c quit")
}

// handleTick performs one autoplay step when the tick is current and
// schedules the next one while autoplay stays on.
func (m AppModel) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Generation != m.engine.Generation() || !m.engine.Autoplay() {
		return m, nil
	}
	err := m.engine.Tick(msg.Generation)
	m.code.AdvanceSpinner()
	m.afterEngine(err)
	return m, m.nextTick()
}

func (m AppModel) nextTick() tea.Cmd {
	if !m.engine.Autoplay() {
		return nil
	}
	return TickCmd(m.engine.Interval(), m.engine.Generation())
}

// handleKeyMsg processes keyboard input, routing to the notice, a focused
// field, or the app-level controls.
func (m AppModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// When the notice is up, only Enter (or Esc) does anything
	if m.notice.IsActive() {
		if msg.Type == tea.KeyEnter || msg.Type == tea.KeyEsc {
			m.notice.Dismiss()
		}
		return m, nil
	}

	switch msg.String() {
	case "tab":
		m.moveFocus(1)
		return m, nil
	case "shift+tab":
		m.moveFocus(-1)
		return m, nil
	}

	if m.focus != focusControls {
		if msg.Type == tea.KeyEsc || msg.Type == tea.KeyEnter {
			m.setFocus(focusControls)
			return m, nil
		}
		if m.focus == focusName {
			m.editName(msg)
			return m, nil
		}
		m.statusBar.SetFlash("")
		if m.code.HandleKey(m.engine, msg) {
			m.statusBar.SetFlash(fmt.Sprintf("%q not allowed in a %s value", string(msg.Runes), m.engine.Config().Type))
		}
		m.drain()
		return m, nil
	}

	m.statusBar.SetFlash("")
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "r":
		return m.runAll()
	case "n", " ", "space":
		m.afterEngine(m.engine.Step())
		return m, nil
	case "s":
		m.engine.Stop()
		m.afterEngine(nil)
		return m, nil
	case "t":
		m.reconfigure(func(c *program.Config) { c.Type = c.Type.Next() })
	case "m":
		m.reconfigure(func(c *program.Config) {
			if c.Method == program.Declared {
				c.Method = program.LiteralList
			} else {
				c.Method = program.Declared
			}
		})
	case "+", "=":
		m.reconfigure(func(c *program.Config) { c.Length++ })
	case "-":
		m.reconfigure(func(c *program.Config) { c.Length-- })
	}
	return m, nil
}

// runAll starts autoplay, restarting a completed run from the top.
func (m AppModel) runAll() (tea.Model, tea.Cmd) {
	if m.engine.Autoplay() {
		return m, nil
	}
	if m.engine.Phase() == engine.Completed {
		m.engine.Reset()
	}
	err := m.engine.RunAll()
	m.afterEngine(err)
	return m, m.nextTick()
}

// reconfigure applies change to the configuration unless a run holds it
// locked.
func (m *AppModel) reconfigure(change func(*program.Config)) {
	if m.engine.Locked() {
		m.statusBar.SetFlash("setup is locked during a run")
		return
	}
	cfg := m.engine.Config()
	change(&cfg)
	if err := m.engine.Reconfigure(cfg); err != nil {
		m.statusBar.SetFlash(err.Error())
		return
	}
	m.code.SyncFields(m.engine.Slots())
	m.drain()
}

// editName forwards a key to the name field and reconfigures once the text
// is a usable identifier.
func (m *AppModel) editName(msg tea.KeyMsg) {
	var changed bool
	m.setup, changed = m.setup.Update(msg)
	if !changed {
		return
	}
	name := m.setup.Name()
	if !program.IsIdentifier(name) {
		m.setup.SetNameValid(false)
		return
	}
	m.setup.SetNameValid(true)
	m.reconfigure(func(c *program.Config) { c.Name = name })
}

// moveFocus cycles through controls, the name field (unless locked) and the
// slot fields.
func (m *AppModel) moveFocus(delta int) {
	order := []int{focusControls}
	if !m.engine.Locked() {
		order = append(order, focusName)
	}
	for i := 0; i < m.code.Len(); i++ {
		order = append(order, i)
	}

	pos := 0
	for i, f := range order {
		if f == m.focus {
			pos = i
			break
		}
	}
	pos = (pos + delta + len(order)) % len(order)
	m.setFocus(order[pos])
}

func (m *AppModel) setFocus(target int) {
	if m.focus == focusName && target != focusName && !m.setup.NameValid() {
		m.setup.SetName(m.engine.Config().Name)
	}
	m.focus = target

	if target == focusName {
		m.setup.Focus()
	} else {
		m.setup.Blur()
	}
	if target >= 0 {
		m.code.FocusField(target)
	} else {
		m.code.FocusField(noField)
	}
}

// afterEngine folds the result of an engine call into the panels.
func (m *AppModel) afterEngine(err error) {
	var failure *engine.ValidationFailure
	switch {
	case errors.As(err, &failure):
		source := ""
		if lines := m.engine.Lines(); failure.Line < len(lines) {
			source = program.Render(m.engine.Config(), lines[failure.Line], m.engine.Slots())
		}
		m.notice.SetActive(failure, source)
	case errors.Is(err, engine.ErrInvalidOperation):
		m.statusBar.SetFlash("run complete: press r to replay or s to reset")
	case err != nil:
		log.Printf("component=tui action=engine_error err=%v", err)
		m.statusBar.SetFlash(err.Error())
	}

	if m.engine.Locked() && m.focus == focusName {
		m.setFocus(focusControls)
	}
	m.drain()
}

// drain moves buffered engine events into the log and status bar.
func (m *AppModel) drain() {
	if m.bridge != nil {
		for _, evt := range m.bridge.Drain() {
			switch evt.Type {
			case engine.EventSlotEdited:
				continue
			case engine.EventRunStarted:
				m.statusBar.Start()
			case engine.EventRunStopped:
				m.statusBar.Stop()
			}
			m.log.Append(evt)
		}
	}
	m.statusBar.Sync(m.engine)
}
