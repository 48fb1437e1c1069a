// Package tui provides the terminal dashboard for high-command.
//
// The dashboard is a read-only Bubble Tea view over the same HellHub API
// client the MCP server uses: it fetches the war record, the global
// statistics, and the planet list, and renders them as styled panes.
// It is a human-facing complement to the machine-facing MCP tools.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/surrealwolf/high-command-mcp/internal/hellhub"
	"github.com/surrealwolf/high-command-mcp/internal/logging"
	"github.com/surrealwolf/high-command-mcp/internal/tools"
	"github.com/surrealwolf/high-command-mcp/internal/tui/styles"
)

// fetchTimeout bounds each dashboard refresh.
const fetchTimeout = 15 * time.Second

// Messages carrying fetch results back into Update.
type (
	warMsg struct {
		war *hellhub.War
		err error
	}

	statsMsg struct {
		stats *hellhub.Statistics
		err   error
	}

	planetsMsg struct {
		planets    []hellhub.Planet
		pagination *hellhub.Pagination
		err        error
	}
)

// DashboardModel is the Bubble Tea model for the war status dashboard.
type DashboardModel struct {
	api    tools.API
	logger *logging.AppLogger

	spinner spinner.Model

	war        *hellhub.War
	stats      *hellhub.Statistics
	planets    []hellhub.Planet
	pagination *hellhub.Pagination

	warErr     error
	statsErr   error
	planetsErr error

	width  int
	height int
}

// NewDashboardModel creates the dashboard over an API client.
func NewDashboardModel(api tools.API, logger *logging.AppLogger) DashboardModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.SpinnerStyle

	return DashboardModel{
		api:     api,
		logger:  logger,
		spinner: sp,
	}
}

// Init starts the spinner and fires the initial fetches.
func (m DashboardModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetchAll())
}

// fetchAll returns a command batch covering all three panes.
func (m DashboardModel) fetchAll() tea.Cmd {
	return tea.Batch(m.fetchWar(), m.fetchStats(), m.fetchPlanets())
}

func (m DashboardModel) fetchWar() tea.Cmd {
	api := m.api
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		war, err := api.War(ctx)
		return warMsg{war: war, err: err}
	}
}

func (m DashboardModel) fetchStats() tea.Cmd {
	api := m.api
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		stats, err := api.Statistics(ctx)
		return statsMsg{stats: stats, err: err}
	}
}

func (m DashboardModel) fetchPlanets() tea.Cmd {
	api := m.api
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		// One page is enough for the overview; the pagination block
		// carries the full planet count.
		planets, pagination, err := api.Planets(ctx, hellhub.PageOptions{PageSize: 10})
		return planetsMsg{planets: planets, pagination: pagination, err: err}
	}
}

// Update is part of the Bubble Tea Model interface.
func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "r":
			m.logger.Debug("Dashboard refresh requested")
			m.war, m.stats, m.planets = nil, nil, nil
			m.warErr, m.statsErr, m.planetsErr = nil, nil, nil
			return m, tea.Batch(m.spinner.Tick, m.fetchAll())
		}
		return m, nil

	case warMsg:
		m.war = msg.war
		m.warErr = msg.err
		return m, nil

	case statsMsg:
		m.stats = msg.stats
		m.statsErr = msg.err
		return m, nil

	case planetsMsg:
		m.planets = msg.planets
		m.pagination = msg.pagination
		m.planetsErr = msg.err
		return m, nil

	case spinner.TickMsg:
		if m.loading() {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	return m, nil
}

// loading reports whether any pane still has neither data nor an error.
func (m DashboardModel) loading() bool {
	warPending := m.war == nil && m.warErr == nil
	statsPending := m.stats == nil && m.statsErr == nil
	planetsPending := m.planets == nil && m.planetsErr == nil
	return warPending || statsPending || planetsPending
}

// View is part of the Bubble Tea Model interface.
func (m DashboardModel) View() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("HIGH COMMAND — Galactic War Overview"))
	b.WriteString("\n")

	if m.loading() {
		b.WriteString(fmt.Sprintf("%s Contacting High Command...\n", m.spinner.View()))
	}

	b.WriteString(m.warPane())
	b.WriteString("\n")
	b.WriteString(m.statsPane())
	b.WriteString("\n")
	b.WriteString(m.planetsPane())
	b.WriteString("\n")

	b.WriteString(styles.HelpStyle.Render("r: refresh • q: quit"))
	return b.String()
}

func (m DashboardModel) warPane() string {
	if m.warErr != nil {
		return styles.PaneStyle.Render(styles.ErrorStyle.Render(fmt.Sprintf("War status unavailable: %v", m.warErr)))
	}
	if m.war == nil {
		return styles.PaneStyle.Render(styles.SubtitleStyle.Render("War status loading..."))
	}

	lines := []string{
		renderField("War", fmt.Sprintf("#%d", m.war.Index)),
		renderField("Started", m.war.StartDate.Format("2006-01-02")),
		renderField("Ends", m.war.EndDate.Format("2006-01-02")),
		renderField("Galactic time", m.war.Time.Format(time.RFC1123)),
	}
	return styles.PaneStyle.Render(strings.Join(lines, "\n"))
}

func (m DashboardModel) statsPane() string {
	if m.statsErr != nil {
		return styles.PaneStyle.Render(styles.ErrorStyle.Render(fmt.Sprintf("Statistics unavailable: %v", m.statsErr)))
	}
	if m.stats == nil {
		return styles.PaneStyle.Render(styles.SubtitleStyle.Render("Statistics loading..."))
	}

	lines := []string{
		renderField("Missions won", formatCount(m.stats.MissionsWon)),
		renderField("Missions lost", formatCount(m.stats.MissionsLost)),
		renderField("Terminid kills", formatCount(m.stats.BugKills)),
		renderField("Automaton kills", formatCount(m.stats.AutomatonKills)),
		renderField("Illuminate kills", formatCount(m.stats.IlluminateKills)),
		renderField("Helldiver deaths", formatCount(m.stats.Deaths)),
		renderField("Accuracy", fmt.Sprintf("%d%%", m.stats.Accuracy)),
	}
	return styles.PaneStyle.Render(strings.Join(lines, "\n"))
}

func (m DashboardModel) planetsPane() string {
	if m.planetsErr != nil {
		return styles.PaneStyle.Render(styles.ErrorStyle.Render(fmt.Sprintf("Planets unavailable: %v", m.planetsErr)))
	}
	if m.planets == nil {
		return styles.PaneStyle.Render(styles.SubtitleStyle.Render("Planets loading..."))
	}

	var lines []string
	if m.pagination != nil {
		lines = append(lines, renderField("Known planets", formatCount(int64(m.pagination.Total))))
	}
	for _, p := range m.planets {
		sector := p.Sector
		if sector == "" {
			sector = "uncharted"
		}
		lines = append(lines, fmt.Sprintf("  %s %s",
			styles.ValueStyle.Render(p.Name),
			styles.SubtitleStyle.Render("("+sector+" sector)"),
		))
	}
	if len(lines) == 0 {
		lines = append(lines, styles.SubtitleStyle.Render("No planet data returned"))
	}
	return styles.PaneStyle.Render(strings.Join(lines, "\n"))
}

func renderField(label, value string) string {
	return fmt.Sprintf("%s %s",
		styles.LabelStyle.Render(label+":"),
		styles.ValueStyle.Render(value),
	)
}

// formatCount renders big kill counters with thousands separators.
func formatCount(n int64) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}

	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
		if len(s) > lead {
			b.WriteString(",")
		}
	}
	for i := lead; i < len(s); i += 3 {
		b.WriteString(s[i : i+3])
		if i+3 < len(s) {
			b.WriteString(",")
		}
	}
	return b.String()
}
