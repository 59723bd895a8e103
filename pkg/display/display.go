package display

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"volscan/pkg/types"
	"volscan/pkg/utils"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

const NoRankingMessage = "no volatility ranking available"

var headers = []string{"#", "Symbol", "Last", "Prev Close", "Return %", "Volatility", "Skewness", "Kurtosis"}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7C3AED"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#3B82F6")).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().Padding(0, 1)

	numberStyle = cellStyle.Align(lipgloss.Right)
)

func RenderRanking(records []types.DerivedRecord) string {
	if len(records) == 0 {
		return NoRankingMessage
	}

	rows := make([][]string, len(records))
	for i, r := range records {
		rows[i] = []string{
			strconv.Itoa(i + 1),
			r.Symbol,
			r.LastPrice.StringFixed(2),
			r.PreviousClose.StringFixed(2),
			formatFloat(r.ReturnPct),
			formatFloat(r.Stats.Volatility),
			formatFloat(r.Stats.Skewness),
			formatFloat(r.Stats.Kurtosis),
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col >= 2:
				return numberStyle
			default:
				return cellStyle
			}
		})

	title := titleStyle.Render(fmt.Sprintf("Top %d most volatile", len(records)))
	return lipgloss.JoinVertical(lipgloss.Left, title, t.Render())
}

func PrintRanking(w io.Writer, records []types.DerivedRecord) {
	fmt.Fprintln(w, RenderRanking(records))
}

func formatFloat(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return strconv.FormatFloat(utils.RoundFloat(v, 4), 'f', 4, 64)
}
