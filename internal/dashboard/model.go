package dashboard

import (
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/vitals/internal/bridge"
	"github.com/rileyhilliard/vitals/internal/logger"
	"github.com/rileyhilliard/vitals/internal/metrics"
)

// Poster is the outbound side of the host bridge: a fire-and-forget
// "post string message" primitive. A nil Poster means the channel is
// unavailable and every action degrades to a logged no-op.
type Poster interface {
	Post(payload string) error
}

// Model is the Bubble Tea model for the dashboard.
type Model struct {
	set       metrics.Set
	refresher *metrics.Refresher
	registry  *Registry
	proj      *projector

	page         Page
	actionCursor int

	poster Poster
	log    logger.Logger

	interval    time.Duration
	lastRefresh time.Time
	lastOutcome metrics.Outcome
	ticks       int
	hostCount   int

	width    int
	height   int
	quitting bool
}

// NewModel creates the dashboard model and performs the one initial
// refresh that runs immediately at startup, outside the timer.
func NewModel(refresher *metrics.Refresher, registry *Registry, interval time.Duration, poster Poster, log logger.Logger) Model {
	if log == nil {
		log = logger.Noop()
	}

	m := Model{
		set:       refresher.Set(),
		refresher: refresher,
		registry:  registry,
		proj:      newProjector(registry),
		page:      PageOverview,
		poster:    poster,
		log:       log,
		interval:  interval,
	}

	m.lastOutcome = m.refresher.Tick()
	m.lastRefresh = time.Now()
	m.ticks = 1
	m.proj.projectStatic(m.set)
	m.proj.project(m.set)

	return m
}

// Init schedules the first timer tick.
func (m Model) Init() tea.Cmd {
	return m.tickCmd()
}

// Update handles timer ticks, key events, and bridge messages. All three
// triggers run to completion on the event loop, so no two mutations
// interleave.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tickMsg:
		m.lastOutcome = m.refresher.Tick()
		m.lastRefresh = time.Time(msg)
		m.ticks++
		m.proj.project(m.set)
		return m, m.tickCmd()

	case HostPatchMsg:
		m.set.Merge(msg.Patch)
		m.proj.project(m.set)

	case MetricValueMsg:
		if !m.set.SetUsage(metrics.Name(msg.Metric), msg.Value) {
			m.log.Debug("ignoring update for unknown metric %q", msg.Metric)
			break
		}
		m.proj.project(m.set)

	case SwitchPageMsg:
		m.switchTo(msg.Page)

	case HostCountMsg:
		m.hostCount = msg.Count
	}

	return m, nil
}

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.render()
}

// handleKey processes navigation and action keys.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, keys.NextPage):
		m.cyclePage(1)

	case key.Matches(msg, keys.PrevPage):
		m.cyclePage(-1)

	case key.Matches(msg, keys.JumpPage):
		// Number keys jump directly to a page.
		if idx, err := strconv.Atoi(msg.String()); err == nil && idx >= 1 && idx <= len(Pages) {
			m.switchTo(string(Pages[idx-1]))
		}

	case key.Matches(msg, keys.SelectNext):
		if m.page == PageActions && m.actionCursor < len(bridge.Catalog)-1 {
			m.actionCursor++
		}

	case key.Matches(msg, keys.SelectPrev):
		if m.page == PageActions && m.actionCursor > 0 {
			m.actionCursor--
		}

	case key.Matches(msg, keys.Trigger):
		if m.page == PageActions {
			m.triggerAction(bridge.Catalog[m.actionCursor].ID)
		}
	}

	return m, nil
}

// switchTo activates a page by name. Exactly one page is active at any
// time; re-activating the current page leaves state unchanged; unknown
// names are a no-op. Returns whether the page was recognized.
func (m *Model) switchTo(name string) bool {
	if !ValidPage(name) {
		m.log.Debug("ignoring switch to unknown page %q", name)
		return false
	}
	m.page = Page(name)
	return true
}

// cyclePage moves the active page by delta in navigation order, wrapping.
func (m *Model) cyclePage(delta int) {
	idx := pageIndex(m.page)
	if idx < 0 {
		idx = 0
	}
	idx = (idx + delta + len(Pages)) % len(Pages)
	m.page = Pages[idx]
}

// triggerAction posts an action payload to the host channel. An
// unavailable channel means the action is logged and dropped — never
// retried, never blocking.
func (m *Model) triggerAction(id string) {
	if m.poster == nil {
		m.log.Warn("host channel unavailable, dropping action %q", id)
		return
	}
	if err := m.poster.Post(id); err != nil {
		m.log.Warn("action %q dropped: %v", id, err)
	}
}

// tickCmd returns a command that sends a tick after the refresh interval.
func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// ActivePage returns the currently active page.
func (m Model) ActivePage() Page {
	return m.page
}

// Registry returns the element registry the dashboard projects into.
func (m Model) Registry() *Registry {
	return m.registry
}

// HostCount returns the number of connected host connections.
func (m Model) HostCount() int {
	return m.hostCount
}

// LastOutcome returns the outcome of the most recent refresh tick.
func (m Model) LastOutcome() metrics.Outcome {
	return m.lastOutcome
}

// SecondsSinceRefresh returns how many seconds have passed since the
// last refresh.
func (m Model) SecondsSinceRefresh() int {
	if m.lastRefresh.IsZero() {
		return 0
	}
	return int(time.Since(m.lastRefresh).Seconds())
}
