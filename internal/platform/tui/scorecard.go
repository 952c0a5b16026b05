package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/vovakirdan/tui-golf/internal/golf"
)

// FormatToPar renders a score relative to par the way golfers write it.
func FormatToPar(d int) string {
	switch {
	case d == 0:
		return "E"
	case d > 0:
		return fmt.Sprintf("+%d", d)
	default:
		return strconv.Itoa(d)
	}
}

var (
	scorecardBorder = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	scorecardHeader = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Padding(0, 1)
	scorecardCell   = lipgloss.NewStyle().Padding(0, 1)
	scorecardWinner = scorecardCell.Foreground(lipgloss.Color("10")).Bold(true)
	scorecardUnder  = scorecardCell.Foreground(lipgloss.Color("14"))
	scorecardOver   = scorecardCell.Foreground(lipgloss.Color("9"))
)

// RenderScorecard draws a round summary as a hole-by-hole table. Holes a
// player has not completed are left blank.
func RenderScorecard(sum golf.Summary) string {
	headers := []string{"Player"}
	for i := range sum.Par {
		headers = append(headers, strconv.Itoa(i+1))
	}
	headers = append(headers, "Tot", "+/-")

	par := []string{"Par"}
	for _, p := range sum.Par {
		par = append(par, strconv.Itoa(p))
	}
	par = append(par, strconv.Itoa(sum.TotalPar), "")

	rows := [][]string{par}
	for _, p := range sum.Players {
		name := p.Name
		if p.Winner {
			name += " *"
		}
		row := []string{name}
		for i := range sum.Par {
			cell := ""
			if i < len(p.Strokes) && p.Strokes[i] > 0 {
				cell = strconv.Itoa(p.Strokes[i])
			}
			row = append(row, cell)
		}
		row = append(row, strconv.Itoa(p.Total), FormatToPar(p.ToPar))
		rows = append(rows, row)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(scorecardBorder).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return scorecardHeader
			}
			// row 0 is the par line
			if row == 0 || row-1 >= len(sum.Players) {
				return scorecardCell
			}
			p := sum.Players[row-1]
			switch {
			case col == 0 && p.Winner:
				return scorecardWinner
			case col > 0 && col <= len(sum.Par) && col-1 < len(p.Strokes) && p.Strokes[col-1] > 0:
				d := p.Strokes[col-1] - sum.Par[col-1]
				if d < 0 {
					return scorecardUnder
				}
				if d > 0 {
					return scorecardOver
				}
			}
			return scorecardCell
		})

	return t.Render()
}
