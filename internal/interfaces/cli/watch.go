package cli

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"mayafbx/internal/application/services"
	"mayafbx/internal/core/options"
	"mayafbx/internal/infrastructure/config"
	"mayafbx/internal/interfaces/di"
)

// WatchFlags holds command-line flags for the watch command
type WatchFlags struct {
	Refresh time.Duration
}

// NewWatchCommand creates the watch command
func NewWatchCommand(container *di.Container) *cobra.Command {
	flags := &WatchFlags{}

	cmd := &cobra.Command{
		Use:   "watch [export|import]",
		Short: "Live view of the plug-in settings on the host",
		Long: `Watch the FBX plug-in settings of a running Maya session.

The property tree is re-read on every refresh and values that changed
since the previous read are highlighted, so you can see what a dialog
checkbox actually sets. Works like 'top' but for plug-in state.

Examples:
  mayafbx watch                   # Watch both sides
  mayafbx watch export            # Watch export properties only
  mayafbx watch --refresh 500ms   # Refresh faster`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(container, flags, args)
		},
	}

	cmd.Flags().DurationVar(&flags.Refresh, "refresh", 2*time.Second, "Refresh rate for live updates")

	return cmd
}

// runWatch starts the terminal watcher
func runWatch(container *di.Container, flags *WatchFlags, args []string) error {
	if container.Settings.Mode != config.ModeCommandPort {
		return fmt.Errorf("watch needs a running Maya session; prompt mode starts a fresh interpreter per refresh")
	}

	dir, err := parseDirection(args, "")
	if err != nil {
		return err
	}

	model := newWatchModel(container.Service, dir, flags)
	program := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("watch failed: %w", err)
	}
	return nil
}

// propertyRow is one plug-in property prepared for display
type propertyRow struct {
	Path    string
	Type    string
	Value   string
	Changed bool
}

// watchModel holds the state for the Bubble Tea watcher
type watchModel struct {
	service      *services.PluginService
	direction    options.Direction
	flags        *WatchFlags
	rows         []propertyRow
	previous     map[string]string
	offset       int
	paused       bool
	lastUpdate   time.Time
	windowWidth  int
	windowHeight int
	err          error
}

// newWatchModel creates a new watch model
func newWatchModel(service *services.PluginService, dir options.Direction, flags *WatchFlags) watchModel {
	return watchModel{
		service:    service,
		direction:  dir,
		flags:      flags,
		previous:   map[string]string{},
		lastUpdate: time.Now(),
	}
}

// Init implements the Bubble Tea init method
func (m watchModel) Init() tea.Cmd {
	return tea.Batch(
		m.tickCmd(),
		m.loadPropsCmd(),
	)
}

// Update implements the Bubble Tea update method
func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.windowWidth = msg.Width
		m.windowHeight = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case " ":
			m.paused = !m.paused
			return m, nil

		case "up", "k":
			if m.offset > 0 {
				m.offset--
			}
			return m, nil

		case "down", "j":
			if m.offset < len(m.rows)-1 {
				m.offset++
			}
			return m, nil

		case "r":
			// Force refresh
			return m, m.loadPropsCmd()
		}

	case tickMsg:
		if !m.paused {
			return m, tea.Batch(
				m.tickCmd(),
				m.loadPropsCmd(),
			)
		}
		return m, m.tickCmd()

	case propsLoadedMsg:
		m.rows = make([]propertyRow, 0, len(msg.rows))
		next := make(map[string]string, len(msg.rows))
		for _, row := range msg.rows {
			prev, seen := m.previous[row.Path]
			row.Changed = seen && prev != row.Value
			next[row.Path] = row.Value
			m.rows = append(m.rows, row)
		}
		m.previous = next
		m.lastUpdate = time.Now()
		m.err = nil
		return m, nil

	case errMsg:
		m.err = msg.err
		return m, nil
	}

	return m, nil
}

// View implements the Bubble Tea view method
func (m watchModel) View() string {
	if m.err != nil {
		return fmt.Sprintf("Error: %v\n\nPress 'q' to quit", m.err)
	}

	header := m.renderHeader()
	table := m.renderPropertyTable()
	footer := m.renderFooter()

	return lipgloss.JoinVertical(lipgloss.Left, header, table, footer)
}

// renderHeader renders the watcher header
func (m watchModel) renderHeader() string {
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("86")).
		Render("📡 mayafbx watch")

	side := "export+import"
	if m.direction != "" {
		side = m.direction.String()
	}
	changed := 0
	for _, row := range m.rows {
		if row.Changed {
			changed++
		}
	}
	info := fmt.Sprintf("Side: %s | Properties: %d | Changed: %d", side, len(m.rows), changed)

	status := "LIVE"
	if m.paused {
		status = "PAUSED"
	}
	statusStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("196"))
	if !m.paused {
		statusStyle = statusStyle.Foreground(lipgloss.Color("46"))
	}

	line1 := lipgloss.JoinHorizontal(lipgloss.Left,
		title,
		"  ",
		info,
		"  ",
		statusStyle.Render(status),
	)

	line2 := fmt.Sprintf("Last Update: %s | Refresh Rate: %v",
		m.lastUpdate.Format("15:04:05"),
		m.flags.Refresh,
	)

	divider := lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Render(lipgloss.Border{}.Top)

	return lipgloss.JoinVertical(lipgloss.Left, line1, line2, divider)
}

// renderPropertyTable renders the main property table
func (m watchModel) renderPropertyTable() string {
	if len(m.rows) == 0 {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Render("\n  No properties yet. Waiting for the host...\n")
	}

	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("86")).
		Render(fmt.Sprintf("%-8s │ %-52s │ %s", "TYPE", "PATH", "VALUE"))

	rows := []string{header}

	maxRows := m.windowHeight - 8 // Account for header and footer
	if maxRows < 1 {
		maxRows = 40
	}
	end := m.offset + maxRows
	if end > len(m.rows) {
		end = len(m.rows)
	}

	for _, row := range m.rows[m.offset:end] {
		rowStyle := lipgloss.NewStyle()
		if row.Changed {
			rowStyle = rowStyle.Foreground(lipgloss.Color("220"))
		}

		line := fmt.Sprintf("%-8s │ %-52s │ %s",
			row.Type,
			truncateString(row.Path, 52),
			truncateString(row.Value, 24),
		)
		rows = append(rows, rowStyle.Render(line))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderFooter renders the control instructions footer
func (m watchModel) renderFooter() string {
	divider := lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Render(lipgloss.Border{}.Top)

	controls := lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")).
		Render("Controls: [Space] Pause/Resume | [↑↓] Scroll | [r] Refresh | [q] Quit")

	return lipgloss.JoinVertical(lipgloss.Left, divider, controls)
}

// tickMsg is sent every refresh interval
type tickMsg time.Time

// tickCmd creates a tick command
func (m watchModel) tickCmd() tea.Cmd {
	return tea.Tick(m.flags.Refresh, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// propsLoadedMsg is sent when a property dump was read
type propsLoadedMsg struct {
	rows []propertyRow
}

// errMsg is sent when a refresh fails
type errMsg struct {
	err error
}

// loadPropsCmd reads the property tree from the host
func (m watchModel) loadPropsCmd() tea.Cmd {
	service, dir, timeout := m.service, m.direction, m.flags.Refresh
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*timeout)
		defer cancel()

		infos, err := service.Properties(ctx, dir)
		if err != nil {
			return errMsg{err: fmt.Errorf("failed to read properties: %w", err)}
		}

		rows := make([]propertyRow, 0, len(infos))
		for _, info := range infos {
			rows = append(rows, propertyRow{
				Path:  info.Path,
				Type:  info.Type,
				Value: info.Value,
			})
		}
		return propsLoadedMsg{rows: rows}
	}
}

// truncateString truncates a string to the specified length
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
