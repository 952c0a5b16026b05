package minigolf

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vovakirdan/tui-golf/internal/core"
	"github.com/vovakirdan/tui-golf/internal/golf"
)

// Virtual pixels per terminal cell. Cells are about twice as tall as wide,
// so the camera works in a pixel space that keeps the course undistorted.
const (
	CellW = 8
	CellH = 16
)

// Glyphs
const (
	GrassChar   = '·'
	FairwayChar = ':'
	TeeChar     = 'T'
	CupChar     = '⚑'
	BallChar    = 'o'
	ActiveChar  = '●'
	AimChar     = '∙'
)

// KindGlyph returns the rune and color an obstacle kind is drawn with.
func KindGlyph(k golf.ObstacleKind) (rune, core.Color) {
	switch k {
	case golf.KindBunker:
		return '░', core.ColorSand
	case golf.KindWater:
		return '≈', core.ColorBlue
	case golf.KindTree:
		return '♣', core.ColorGreen
	case golf.KindRock:
		return '▲', core.ColorGray
	case golf.KindForest:
		return '♠', core.ColorDarkGreen
	}
	return '?', core.ColorDefault
}

// BoardView is the size of a board area in virtual pixels.
func BoardView(board core.Rect) golf.Vec {
	return golf.V(float64(board.W*CellW), float64(board.H*CellH))
}

// CellToView returns the virtual pixel at the centre of a board cell.
func CellToView(board core.Rect, x, y int) golf.Vec {
	return golf.V(float64((x-board.X)*CellW+CellW/2), float64((y-board.Y)*CellH+CellH/2))
}

// ScreenRenderer draws frames onto a terminal screen. The board is the map
// area; the sidebar, when non-empty, holds the scorecard.
type ScreenRenderer struct {
	dst     *core.Screen
	camera  *golf.Camera
	board   core.Rect
	sidebar core.Rect
	paused  bool
}

var _ golf.Renderer = (*ScreenRenderer)(nil)

// NewScreenRenderer creates a renderer for one frame.
func NewScreenRenderer(dst *core.Screen, camera *golf.Camera, board, sidebar core.Rect) *ScreenRenderer {
	return &ScreenRenderer{dst: dst, camera: camera, board: board, sidebar: sidebar}
}

// Draw renders the status line, map, sidebar and message line.
func (r *ScreenRenderer) Draw(f golf.Frame) {
	r.drawStatus(f)

	if !r.board.Empty() {
		m := core.NewScreen(r.board.W, r.board.H)
		r.drawMap(m, f)
		r.dst.Blit(m, r.board.X, r.board.Y)
	}
	if !r.sidebar.Empty() {
		r.drawSidebar(f)
	}
	r.drawMessage(f)
}

// cellOf maps a course point to a cell of the board-local screen.
func (r *ScreenRenderer) cellOf(w golf.Vec) (int, int) {
	s := r.camera.WorldToScreen(w)
	return int(math.Floor(s.X / CellW)), int(math.Floor(s.Y / CellH))
}

func (r *ScreenRenderer) drawMap(m *core.Screen, f golf.Frame) {
	course := golf.Obstacle{W: f.Width, H: f.Height}
	fairway := fairwayLine(f.Hole)

	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			w := r.camera.ScreenToWorld(CellToView(core.Rect{}, x, y))
			if !course.Contains(w) {
				continue
			}
			ch, col := GrassChar, core.ColorDarkGreen
			if nearPath(w, fairway, fairwayHalfWidth) {
				ch, col = FairwayChar, core.ColorBrightGreen
			}
			for _, o := range f.Landscape {
				if o.Contains(w) {
					ch, col = KindGlyph(o.Kind)
				}
			}
			for _, o := range f.Hole.Obstacles {
				if o.Contains(w) {
					ch, col = KindGlyph(o.Kind)
				}
			}
			m.SetColor(x, y, ch, col)
		}
	}

	if f.Aim != nil {
		x0, y0 := r.cellOf(f.Aim.From)
		x1, y1 := r.cellOf(f.Aim.To)
		m.DrawLine(x0, y0, x1, y1, AimChar, core.ColorBrightWhite)
	}

	tx, ty := r.cellOf(f.Hole.Tee)
	m.SetColor(tx, ty, TeeChar, core.ColorWhite)
	cx, cy := r.cellOf(f.Hole.Cup)
	m.SetColor(cx, cy, CupChar, core.ColorBrightRed)

	// Balls of players on this hole; the current player on top.
	var current *golf.PlayerView
	for i := range f.Players {
		p := &f.Players[i]
		if p.Finished || p.Hole != f.HoleIndex {
			continue
		}
		if p.Current {
			current = p
			continue
		}
		x, y := r.cellOf(p.Pos)
		m.SetColor(x, y, BallChar, core.PlayerColor(p.ColorIndex))
	}
	if current != nil {
		pos := current.Pos
		if f.Ball != nil {
			pos = *f.Ball
		}
		x, y := r.cellOf(pos)
		m.SetColor(x, y, ActiveChar, core.PlayerColor(current.ColorIndex))
	}
}

func (r *ScreenRenderer) drawStatus(f golf.Frame) {
	mode := f.Variant.String()
	if f.Control == golf.ControlManual {
		mode += " manual"
	}
	status := fmt.Sprintf(" Hole %d/%d  Par %d  Course par %d  [%s]",
		f.HoleIndex+1, golf.HoleCount, f.Hole.Par, f.TotalPar, mode)
	if f.Aim != nil && f.Control == golf.ControlManual {
		status += fmt.Sprintf("  Power %3.0f%%", f.Aim.Power*100)
	}
	if r.paused {
		status += "  PAUSED"
	}
	r.dst.DrawTextColor(0, 0, status, core.ColorBrightWhite)
}

func (r *ScreenRenderer) drawSidebar(f golf.Frame) {
	sb := r.sidebar
	r.dst.DrawVLine(sb.X, sb.Y, sb.H, '│')

	x := sb.X + 2
	y := sb.Y
	r.dst.DrawTextColor(x, y, "SCORECARD", core.ColorBrightYellow)
	y += 2

	if len(f.Players) == 0 {
		r.dst.DrawTextColor(x, y, "No players", core.ColorGray)
		r.dst.DrawTextColor(x, y+1, "N to add one", core.ColorGray)
		return
	}

	for _, p := range f.Players {
		if y >= sb.Bottom() {
			break
		}
		marker := ' '
		if p.Current {
			marker = '>'
		}
		hole := "done"
		if !p.Finished {
			hole = fmt.Sprintf("H%-2d s%d", p.Hole+1, p.Strokes)
		}
		line := fmt.Sprintf("%c%-*s %3d %s", marker, golf.MaxNameLength, p.Name, p.Total, hole)
		r.dst.DrawTextColor(x-1, y, line, core.PlayerColor(p.ColorIndex))
		y++
	}

	if f.Winner != "" && y+1 < sb.Bottom() {
		r.dst.DrawTextColor(x, y+1, "Winner: "+f.Winner, core.ColorBrightGreen)
	}
}

func (r *ScreenRenderer) drawMessage(f golf.Frame) {
	y := r.dst.Height() - 1
	msg := f.Message
	col := core.ColorCyan
	if f.Phase == golf.PhaseOver {
		msg += "  R: new round"
		col = core.ColorBrightGreen
	}
	r.dst.DrawTextColor(1, y, msg, col)
}

// fairwayHalfWidth is the drawn fairway half width in course units.
const fairwayHalfWidth = 30

// fairwayLine returns the designed fairway or the straight tee-cup line.
func fairwayLine(h golf.Hole) []golf.Vec {
	if len(h.Fairway) >= 2 {
		return h.Fairway
	}
	return []golf.Vec{h.Tee, h.Cup}
}

// nearPath reports whether p is within d of any segment of the polyline.
func nearPath(p golf.Vec, path []golf.Vec, d float64) bool {
	for i := 1; i < len(path); i++ {
		if segmentDist(p, path[i-1], path[i]) <= d {
			return true
		}
	}
	return false
}

func segmentDist(p, a, b golf.Vec) float64 {
	ab := r2.Sub(b, a)
	l2 := r2.Dot(ab, ab)
	if l2 == 0 {
		return golf.Dist(p, a)
	}
	t := math.Max(0, math.Min(1, r2.Dot(r2.Sub(p, a), ab)/l2))
	return golf.Dist(p, golf.Lerp(a, b, t))
}
