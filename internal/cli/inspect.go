package cli

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/rhosak/tomo-tsp/pkg/pipeline"
	"github.com/rhosak/tomo-tsp/pkg/tomo"
)

// List styles
var (
	listDimStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// inspectCommand creates the inspect command for browsing the configuration
// space interactively.
func (c *CLI) inspectCommand() *cobra.Command {
	var (
		scheme string
		plain  bool
	)
	opts := c.pipelineOptions()

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Browse the wave plate configuration space interactively",
		Long: `Browse the wave plate configuration space for a scheme and qubit count.

Each row is one measurement configuration: the half and quarter wave plate
rotation angles for every qubit, in degrees. The row index is the city
number used in the TSPLIB problem file and in solver tours.

Use --plain to dump the table without the interactive viewer.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if scheme != "" {
				opts.Scheme = tomo.Scheme(scheme)
			}
			return c.runInspect(opts, plain)
		},
	}

	cmd.Flags().IntVarP(&opts.Qubits, "qubits", "n", pipeline.DefaultQubits, "number of qubits")
	cmd.Flags().StringVar(&scheme, "scheme", "", "measurement scheme: six-state (default), three-bases")
	cmd.Flags().BoolVar(&plain, "plain", false, "print the table and exit")

	return cmd
}

// runInspect builds the configuration space and shows it.
func (c *CLI) runInspect(opts pipeline.Options, plain bool) error {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}
	settings, err := pipeline.Configure(opts)
	if err != nil {
		return err
	}

	model := NewSettingListModel(settings, opts.Qubits)

	if plain {
		fmt.Println(model.renderTable(0, len(settings)))
		return nil
	}

	p := tea.NewProgram(model)
	_, err = p.Run()
	return err
}

// =============================================================================
// SettingListModel - Interactive configuration browsing
// =============================================================================

// SettingListModel is the bubbletea model for scrolling through the
// configuration space.
type SettingListModel struct {
	Settings []tomo.Setting
	Qubits   int
	Cursor   int
	Height   int
	Offset   int
}

// NewSettingListModel creates a new configuration list model.
func NewSettingListModel(settings []tomo.Setting, qubits int) SettingListModel {
	return SettingListModel{
		Settings: settings,
		Qubits:   qubits,
		Cursor:   0,
		Height:   15,
		Offset:   0,
	}
}

func (m SettingListModel) Init() tea.Cmd {
	return nil
}

func (m SettingListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Settings)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "home", "g":
			m.Cursor = 0
			m.Offset = 0
		case "end", "G":
			m.Cursor = len(m.Settings) - 1
			m.Offset = m.Cursor - m.Height + 1
			if m.Offset < 0 {
				m.Offset = 0
			}
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 8
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m SettingListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Configuration Space"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  g/G first/last  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Settings) {
		end = len(m.Settings)
	}

	b.WriteString(m.renderTable(m.Offset, end))
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Settings))))

	return b.String()
}

// renderTable renders settings rows [from, to) as a lipgloss table.
func (m SettingListModel) renderTable(from, to int) string {
	headers := []string{"", "City"}
	for q := 1; q <= m.Qubits; q++ {
		headers = append(headers, fmt.Sprintf("HWP%d", q), fmt.Sprintf("QWP%d", q))
	}

	rows := [][]string{}
	for i := from; i < to; i++ {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		row := []string{cursor, strconv.Itoa(i)}
		for _, angle := range m.Settings[i] {
			row = append(row, formatDegrees(angle))
		}
		rows = append(rows, row)
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if from+row == m.Cursor {
				return lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	return t.Render()
}
