package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/chartgrid/pkg/pipeline"
	"github.com/matzehuels/chartgrid/pkg/render/styles"
)

// inspectCommand creates the inspect command.
func (c *CLI) inspectCommand() *cobra.Command {
	var configPath string
	var opts pipeline.Options

	cmd := &cobra.Command{
		Use:   "inspect [chart.json|chart.yaml]",
		Short: "Browse the computed grid cells",
		Long: `Compute the grid layout of a chart document and browse its cells
in an interactive table: index, label, series kind, grid position and the
cell's placement in pixels.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInspect(cmd.Context(), args[0], configPath, opts)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "style configuration file (TOML)")
	cmd.Flags().Float64Var(&opts.Width, "width", 0, "frame width")
	cmd.Flags().Float64Var(&opts.Height, "height", 0, "frame height")

	return cmd
}

func (c *CLI) runInspect(ctx context.Context, input, configPath string, opts pipeline.Options) error {
	in, err := loadInput(input, configPath)
	if err != nil {
		return err
	}
	runner, err := c.newRunner(true)
	if err != nil {
		return err
	}
	defer runner.Close()

	opts.Formats = []string{pipeline.FormatJSON}
	opts.Logger = c.Logger
	res, err := runner.Execute(ctx, in, opts)
	if err != nil {
		return err
	}

	m := newCellListModel(input, cellRows(in, res))
	_, err = tea.NewProgram(m, tea.WithContext(ctx)).Run()
	return err
}

// cellRow is one table row of the inspector.
type cellRow struct {
	Index    int
	Label    string
	Kind     string
	Color    string
	Row, Col int
	X, Y     float64
	W, H     float64
}

func cellRows(in pipeline.Input, res *pipeline.Result) []cellRow {
	palette, _ := styles.NewPalette(in.Config.Style.Colors)
	settings := in.Chart.ChartProps.ChartSettings
	rows := make([]cellRow, 0, len(settings))
	for i, pl := range res.Layout.Cells(len(settings)) {
		s := settings[i]
		rows = append(rows, cellRow{
			Index: i,
			Label: s.Label,
			Kind:  string(s.Type.OrDefault()),
			Color: palette.Hex(s.ColorIndex),
			Row:   pl.Row,
			Col:   pl.Col,
			X:     pl.X,
			Y:     pl.Y,
			W:     pl.Width,
			H:     pl.Height,
		})
	}
	return rows
}

// =============================================================================
// CellListModel - Interactive cell browser
// =============================================================================

var listDimStyle = lipgloss.NewStyle().Foreground(colorDim)

// CellListModel is the bubbletea model for browsing grid cells.
type CellListModel struct {
	Title  string
	Cells  []cellRow
	Cursor int
	Height int
	Offset int
}

func newCellListModel(title string, cells []cellRow) CellListModel {
	return CellListModel{Title: title, Cells: cells, Height: 15}
}

func (m CellListModel) Init() tea.Cmd {
	return nil
}

func (m CellListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
			if m.Cursor < len(m.Cells)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "home", "g":
			m.Cursor, m.Offset = 0, 0
		case "end", "G":
			m.Cursor = max(0, len(m.Cells)-1)
			m.Offset = max(0, m.Cursor-m.Height+1)
		}
	case tea.WindowSizeMsg:
		m.Height = max(5, msg.Height-8)
	}
	return m, nil
}

func (m CellListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Cells of " + m.Title))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.Cells))

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		cell := m.Cells[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows = append(rows, []string{
			cursor,
			strconv.Itoa(cell.Index),
			cell.Label,
			cell.Kind,
			fmt.Sprintf("%d/%d", cell.Row, cell.Col),
			formatPx(cell.X),
			formatPx(cell.Y),
			formatPx(cell.W) + "×" + formatPx(cell.H),
			"■ " + cell.Color,
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "#", "Label", "Kind", "Row/Col", "X", "Y", "Size", "Color").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			idx := m.Offset + row
			if idx >= len(m.Cells) {
				return lipgloss.NewStyle()
			}
			base := lipgloss.NewStyle()
			if col == 8 {
				return base.Foreground(lipgloss.Color(m.Cells[idx].Color))
			}
			if idx == m.Cursor {
				return base.Foreground(colorGreen).Bold(true)
			}
			return base.Foreground(colorWhite)
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", min(m.Cursor+1, len(m.Cells)), len(m.Cells))))

	return b.String()
}

func formatPx(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
