package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// Render writes the console report for s to w. Styling is dropped when w
// is not a terminal.
func Render(w io.Writer, s *Summary) error {
	r := lipgloss.NewRenderer(w)
	title := r.NewStyle().Bold(true)
	label := r.NewStyle().Faint(true)

	var b strings.Builder
	fmt.Fprintln(&b, title.Render("== Quick Summary =="))
	fmt.Fprintf(&b, "Total sales: %s\n", FormatAmount(s.Total, 0))
	fmt.Fprintf(&b, "Average per day: %s\n", FormatAmount(s.Average, 2))
	fmt.Fprintln(&b, label.Render("By store:"))
	fmt.Fprintln(&b, storeTable(r, s.ByStore))
	fmt.Fprintf(&b, "Top store: %s (%s)\n", s.TopStore, FormatAmount(s.TopStoreSales, 2))
	fmt.Fprintln(&b, label.Render("By month:"))
	for _, m := range s.ByMonth {
		fmt.Fprintf(&b, "  %s  %s\n", m.Month, FormatAmount(m.Total, 2))
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

func storeTable(r *lipgloss.Renderer, totals []StoreTotal) string {
	rows := make([][]string, len(totals))
	for i, st := range totals {
		rows[i] = []string{st.Store, st.Total.String()}
	}

	cell := r.NewStyle().Padding(0, 1)
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(r.NewStyle()).
		Headers(strings.Split(SummaryHeader, ",")...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if col == colTotal {
				return cell.Align(lipgloss.Right)
			}
			return cell
		}).
		String()
}

// FormatAmount rounds d to places decimals and adds thousands separators,
// e.g. 1234567.891 with 2 places is "1,234,567.89".
func FormatAmount(d decimal.Decimal, places int32) string {
	rounded := d.Round(places)
	whole := rounded.Truncate(0)

	s := humanize.Comma(whole.IntPart())
	if rounded.IsNegative() && whole.IsZero() {
		s = "-" + s
	}
	if places <= 0 {
		return s
	}
	frac := rounded.Sub(whole).Abs().StringFixed(places) // "0.xx"
	return s + frac[1:]
}
