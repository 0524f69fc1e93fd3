// Command graphaccelctl is an interactive operator console for the engine:
// it loads one graph through a live Postgres/Apache AGE source, then lets an
// operator browse status, run neighborhood queries, and watch
// the Prometheus counters the engine emits — all without a SQL host
// binding in front of it.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dd0wney/graphaccel/internal/config"
	"github.com/dd0wney/graphaccel/internal/hostbind"
	"github.com/dd0wney/graphaccel/internal/logging"
	"github.com/dd0wney/graphaccel/internal/metrics"
	"github.com/dd0wney/graphaccel/internal/pgsource"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00D7FF")).
			MarginLeft(2).
			MarginTop(1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00FFFF")).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#00FFFF")).
			Padding(0, 1)

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#0087D7")).
			Padding(0, 2)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#666666")).
				Padding(0, 2)

	contentStyle = lipgloss.NewStyle().
			MarginLeft(2).
			MarginTop(1)

	statsBoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#00FF00")).
			Padding(1, 2).
			MarginRight(2)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00FF00")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			MarginTop(1).
			MarginLeft(2)
)

type view int

const (
	dashboardView view = iota
	queryView
	metricsView
	viewCount
)

type keyMap struct {
	Tab      key.Binding
	ShiftTab key.Binding
	Enter    key.Binding
	Quit     key.Binding
}

var keys = keyMap{
	Tab:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next view")),
	ShiftTab: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev view")),
	Enter:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "run query")),
	Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Enter, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Tab, k.ShiftTab, k.Enter, k.Quit}}
}

type model struct {
	conn      *hostbind.Connection
	metrics   *metrics.Registry
	graphName string

	currentView view
	queryInput  textinput.Model
	resultTable table.Model
	help        help.Model
	keys        keyMap

	width, height int
	message       string
	messageErr    bool
	startTime     time.Time
}

type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(2*time.Second, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func initialModel(conn *hostbind.Connection, reg *metrics.Registry, graphName string) model {
	ti := textinput.New()
	ti.Placeholder = "app_id or numeric node id, e.g. cust_42"
	ti.CharLimit = 120
	ti.Width = 50
	ti.Focus()

	columns := []table.Column{
		{Title: "Node", Width: 10},
		{Title: "Label", Width: 16},
		{Title: "Dist", Width: 6},
		{Title: "Via", Width: 20},
	}
	t := table.New(table.WithColumns(columns), table.WithFocused(false), table.WithHeight(12))
	s := table.DefaultStyles()
	s.Header = s.Header.BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("#00FFFF")).BorderBottom(true).Bold(true)
	s.Selected = s.Selected.Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#0087D7"))
	t.SetStyles(s)

	return model{
		conn:        conn,
		metrics:     reg,
		graphName:   graphName,
		currentView: dashboardView,
		queryInput:  ti,
		resultTable: t,
		help:        help.New(),
		keys:        keys,
		startTime:   time.Now(),
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tickCmd())
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width

	case tickMsg:
		return m, tickCmd()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab):
			m.currentView = (m.currentView + 1) % viewCount
			m.focusCurrentView()
		case key.Matches(msg, m.keys.ShiftTab):
			if m.currentView == 0 {
				m.currentView = viewCount - 1
			} else {
				m.currentView--
			}
			m.focusCurrentView()
		case key.Matches(msg, m.keys.Enter):
			if m.currentView == queryView {
				m.runNeighborhoodQuery()
			}
		}
	}

	if m.currentView == queryView {
		m.queryInput, cmd = m.queryInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m *model) focusCurrentView() {
	if m.currentView == queryView {
		m.queryInput.Focus()
	} else {
		m.queryInput.Blur()
	}
}

func (m *model) runNeighborhoodQuery() {
	start := strings.TrimSpace(m.queryInput.Value())
	if start == "" {
		m.message, m.messageErr = "enter an app_id or node id first", true
		return
	}

	rows, err := m.conn.Neighborhood(context.Background(), start, 3, "both", nil)
	if err != nil {
		m.message, m.messageErr = err.Error(), true
		return
	}

	tableRows := make([]table.Row, 0, len(rows))
	for _, r := range rows {
		via := strings.Join(r.PathTypes, ",")
		tableRows = append(tableRows, table.Row{
			strconv.FormatUint(uint64(r.NodeID), 10),
			r.Label,
			strconv.FormatUint(uint64(r.Distance), 10),
			via,
		})
	}
	m.resultTable.SetRows(tableRows)
	m.message = fmt.Sprintf("found %d neighbors within 3 hops", len(rows))
	m.messageErr = false
}

func (m model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	var s strings.Builder
	s.WriteString(titleStyle.Render("graphaccelctl"))
	s.WriteString("\n\n")
	s.WriteString(m.renderTabs())
	s.WriteString("\n\n")

	switch m.currentView {
	case dashboardView:
		s.WriteString(m.renderDashboard())
	case queryView:
		s.WriteString(m.renderQuery())
	case metricsView:
		s.WriteString(m.renderMetrics())
	}

	if m.message != "" {
		s.WriteString("\n\n")
		if m.messageErr {
			s.WriteString(errorStyle.Render("x " + m.message))
		} else {
			s.WriteString(successStyle.Render("ok " + m.message))
		}
	}

	s.WriteString("\n\n")
	s.WriteString(helpStyle.Render(m.help.ShortHelpView(m.keys.ShortHelp())))
	return s.String()
}

func (m model) renderTabs() string {
	tabs := []string{"Dashboard", "Query", "Metrics"}
	rendered := make([]string, len(tabs))
	for i, tab := range tabs {
		if view(i) == m.currentView {
			rendered[i] = activeTabStyle.Render(tab)
		} else {
			rendered[i] = inactiveTabStyle.Render(tab)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m model) renderDashboard() string {
	status := m.conn.Status(context.Background())
	uptime := time.Since(m.startTime).Round(time.Second)

	content := fmt.Sprintf(`Status
------
Graph:       %s
State:       %s
Nodes:       %d
Edges:       %d
Rel types:   %d
Loaded gen:  %d
Current gen: %d
Stale:       %v
Memory:      %d bytes
Uptime:      %s`,
		status.SourceGraph, status.Status, status.NodeCount, status.EdgeCount,
		status.RelTypeCount, status.LoadedGeneration, status.CurrentGeneration,
		status.IsStale, status.MemoryBytes, uptime,
	)

	return contentStyle.Render(statsBoxStyle.Render(content))
}

func (m model) renderQuery() string {
	var s strings.Builder
	s.WriteString(headerStyle.Render("Neighborhood query (3 hops, both directions)"))
	s.WriteString("\n\n")
	s.WriteString(m.queryInput.View())
	s.WriteString("\n\n")
	s.WriteString(m.resultTable.View())
	return contentStyle.Render(s.String())
}

func (m model) renderMetrics() string {
	families, err := m.metrics.GetPrometheusRegistry().Gather()
	if err != nil {
		return contentStyle.Render(errorStyle.Render(err.Error()))
	}

	var s strings.Builder
	s.WriteString(headerStyle.Render("Prometheus metrics"))
	s.WriteString("\n\n")
	for _, fam := range families {
		s.WriteString(fmt.Sprintf("%-40s %d series\n", fam.GetName(), len(fam.GetMetric())))
	}
	return contentStyle.Render(s.String())
}

func main() {
	graphName := "social"
	if len(os.Args) > 1 {
		graphName = os.Args[1]
	}

	cfg := config.Default()
	cfg.SourceGraph = graphName

	databaseURL := os.Getenv("GRAPHACCEL_DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("GRAPHACCEL_DATABASE_URL must be set")
	}

	ctx := context.Background()
	src, err := pgsource.Connect(ctx, databaseURL)
	if err != nil {
		log.Fatalf("connect: %v", err)
	}
	defer src.Close()

	if err := src.EnsureSchema(ctx); err != nil {
		log.Fatalf("ensure schema: %v", err)
	}

	reg := metrics.NewRegistry()
	logger := logging.NewDefaultLogger()
	conn := hostbind.New(cfg, &pgLoader{src: src}, src, nil, logger, reg)

	if _, err := conn.Load(ctx, graphName); err != nil {
		log.Fatalf("initial load: %v", err)
	}

	p := tea.NewProgram(initialModel(conn, reg, graphName), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatalf("running program: %v", err)
	}
}
