package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/vitals/internal/bridge"
	"github.com/rileyhilliard/vitals/internal/metrics"
)

// metricTitle returns the card title for a metric.
func metricTitle(name metrics.Name) string {
	switch name {
	case metrics.CPU:
		return "CPU"
	case metrics.RAM:
		return "Memory"
	case metrics.Disk:
		return "Disk"
	case metrics.GPU:
		return "GPU"
	case metrics.Proc:
		return "Processor"
	default:
		return string(name)
	}
}

// render composes the full dashboard: header, navigation bar, the active
// page, and the footer.
func (m Model) render() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderNav())
	b.WriteString("\n\n")

	switch m.page {
	case PagePerformance:
		b.WriteString(m.renderPerformance())
	case PageStorage:
		b.WriteString(m.renderStorage())
	case PageActions:
		b.WriteString(m.renderActions())
	case PageSettings:
		b.WriteString(m.renderSettings())
	default:
		b.WriteString(m.renderOverview())
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	return b.String()
}

// renderHeader shows the title plus refresh and bridge status.
func (m Model) renderHeader() string {
	title := TitleStyle.Render("vitals")

	var updated string
	switch secs := m.SecondsSinceRefresh(); secs {
	case 0:
		updated = "just now"
	case 1:
		updated = "1s ago"
	default:
		updated = fmt.Sprintf("%ds ago", secs)
	}

	hosts := "no host"
	if m.hostCount == 1 {
		hosts = "1 host"
	} else if m.hostCount > 1 {
		hosts = fmt.Sprintf("%d hosts", m.hostCount)
	}

	info := MutedStyle.Render(fmt.Sprintf(" | %s | %s | refreshed %s", m.lastOutcome, hosts, updated))
	return HeaderStyle.Render(title + info)
}

// renderNav renders the page tabs with exactly one marked active.
func (m Model) renderNav() string {
	tabs := make([]string, 0, len(Pages))
	for i, page := range Pages {
		label := fmt.Sprintf("%d %s", i+1, page.Title())
		if page == m.page {
			tabs = append(tabs, TabActiveStyle.Render("["+label+"]"))
		} else {
			tabs = append(tabs, TabInactiveStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// renderMetricCard renders one metric card from its bound elements.
func (m Model) renderMetricCard(name metrics.Name, details ...*Element) string {
	targets := m.proj.bars[name]

	var lines []string
	header := ValueStyle.Bold(true).Render(metricTitle(name)) + " " + targets.status.Content()
	lines = append(lines, header)
	lines = append(lines, targets.fill.Content()+" "+targets.value.Content())

	var parts []string
	for _, d := range details {
		if content := d.Content(); content != "" {
			parts = append(parts, content)
		}
	}
	if len(parts) > 0 {
		lines = append(lines, LabelStyle.Render(strings.Join(parts, "  ")))
	}

	return CardStyle.Render(strings.Join(lines, "\n"))
}

// renderOverview shows every metric card.
func (m Model) renderOverview() string {
	p := m.proj
	cards := []string{
		m.renderMetricCard(metrics.CPU, p.cpuFreq, p.cpuTemp, p.cpuCores),
		m.renderMetricCard(metrics.RAM, p.ramUsed, p.ramTotal),
		m.renderMetricCard(metrics.Disk, p.diskUsed, p.diskFree),
		m.renderMetricCard(metrics.GPU, p.gpuTemp, p.gpuMemory),
		m.renderMetricCard(metrics.Proc),
	}

	// Two columns when the terminal is wide enough.
	if m.width >= 80 {
		var rows []string
		for i := 0; i < len(cards); i += 2 {
			if i+1 < len(cards) {
				rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[i], cards[i+1]))
			} else {
				rows = append(rows, cards[i])
			}
		}
		return lipgloss.JoinVertical(lipgloss.Left, rows...)
	}

	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

// renderPerformance shows the compute metrics.
func (m Model) renderPerformance() string {
	p := m.proj
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderMetricCard(metrics.CPU, p.cpuFreq, p.cpuTemp, p.cpuCores),
		m.renderMetricCard(metrics.GPU, p.gpuTemp, p.gpuMemory),
		m.renderMetricCard(metrics.Proc),
	)
}

// renderStorage shows disk and memory.
func (m Model) renderStorage() string {
	p := m.proj
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderMetricCard(metrics.Disk, p.diskUsed, p.diskFree),
		m.renderMetricCard(metrics.RAM, p.ramUsed, p.ramTotal),
	)
}

// renderActions lists the outbound action controls.
func (m Model) renderActions() string {
	var b strings.Builder

	available := "host connected"
	if m.hostCount == 0 {
		available = "no host connected - actions are dropped"
	}
	b.WriteString(MutedStyle.Render(available))
	b.WriteString("\n\n")

	for i, action := range bridge.Catalog {
		cursor := "  "
		style := ActionStyle
		if i == m.actionCursor {
			cursor = "> "
			style = ActionSelectedStyle
		}
		b.WriteString(cursor + style.Render(action.Label))
		b.WriteString("\n")
	}

	return b.String()
}

// renderSettings shows the dashboard's effective configuration.
func (m Model) renderSettings() string {
	lines := []string{
		LabelStyle.Render("Refresh interval:  ") + ValueStyle.Render(m.interval.String()),
		LabelStyle.Render("Status thresholds: ") + ValueStyle.Render(
			fmt.Sprintf("high > %d%%, medium > %d%%", HighThreshold, MediumThreshold)),
		LabelStyle.Render("Refresh ticks:     ") + ValueStyle.Render(fmt.Sprintf("%d (%s)", m.ticks, m.lastOutcome)),
		LabelStyle.Render("Connected hosts:   ") + ValueStyle.Render(fmt.Sprintf("%d", m.hostCount)),
		LabelStyle.Render("Action catalog:    ") + ValueStyle.Render(fmt.Sprintf("%d signals", len(bridge.Catalog))),
	}
	return strings.Join(lines, "\n")
}

// renderFooter shows the key help line, built from the active bindings.
func (m Model) renderFooter() string {
	entries := []string{helpEntry(keys.PrevPage), helpEntry(keys.JumpPage), helpEntry(keys.Quit)}
	if m.page == PageActions {
		entries = []string{helpEntry(keys.SelectPrev), helpEntry(keys.Trigger),
			helpEntry(keys.PrevPage), helpEntry(keys.Quit)}
	}
	return FooterStyle.Render(strings.Join(entries, " · "))
}
