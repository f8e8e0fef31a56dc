package swapem

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/swapem/internal/core"
	"github.com/vovakirdan/swapem/internal/games/swapem/engine"
)

const (
	tileWidth = 4 // bracket, two glyph columns, bracket
	hudHeight = 2
)

// paletteColors maps engine color ids to screen colors:
// red, blue, green, yellow, purple, aqua, hot pink, chocolate.
var paletteColors = []core.Color{
	core.ColorBrightRed,
	core.ColorBlue,
	core.ColorBrightGreen,
	core.ColorBrightYellow,
	core.ColorPurple,
	core.ColorBrightCyan,
	core.ColorHotPink,
	core.ColorChocolate,
}

// TileColor returns the screen color for an engine color id.
func TileColor(c engine.ColorID) core.Color {
	if int(c) < 0 || int(c) >= len(paletteColors) {
		return core.ColorWhite
	}
	return paletteColors[c]
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}
	if g.display == nil {
		g.renderError(dst)
		return
	}

	tileH := g.tileHeight()
	boardW := g.display.W*tileWidth + 2
	boardH := g.display.H*tileH + 2
	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight

	g.renderHUD(dst, boardX, boardW)
	dst.DrawBox(core.Rect{X: boardX, Y: boardY, W: boardW, H: boardH})
	g.renderBoard(dst, boardX+1, boardY+1, tileH)
	g.renderFooter(dst, boardY+boardH)
	g.renderOverlays(dst)
}

// tileHeight uses two rows per tile when the terminal is tall enough.
func (g *Game) tileHeight() int {
	if g.screenH >= g.display.H*2+hudHeight+3 {
		return 2
	}
	return 1
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

func (g *Game) renderError(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCenteredColored(y-1, "Cannot start game", core.ColorBrightRed)
	if g.err != nil {
		dst.DrawTextCentered(y, clip(g.err.Error(), g.screenW-2))
	}
	dst.DrawTextCentered(y+2, "B: menu  Q: quit")
}

// renderHUD draws score, record and the chain of the step on screen.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	title := "SWAP'EM!"
	dst.DrawTextColored(boardX+(boardW-len(title))/2, 0, title, core.ColorBrightMagenta)

	dst.DrawText(boardX, 1, fmt.Sprintf("Score: %d", g.displayScore))

	right := fmt.Sprintf("Best: %d  Colors: %d", g.session.HighScore(), g.palette)
	rightX := boardX + boardW - len(right)
	dst.DrawText(rightX, 1, right)

	if g.playing && g.current.Chain > 1 {
		chain := fmt.Sprintf("Chain x%d", g.current.Chain)
		dst.DrawTextColored(boardX+(boardW-len(chain))/2, 1, chain, core.ColorOrange)
	}
}

// renderBoard draws every tile with its cursor, selection and hint marks.
func (g *Game) renderBoard(dst *core.Screen, x0, y0, tileH int) {
	sel, hasSel := g.session.Selected()
	destroyed := engine.NewPositionSet()
	if g.playing && g.current.Kind == engine.StepDestroyed {
		for _, p := range g.current.Destroyed {
			destroyed.Add(p)
		}
	}

	for row := 0; row < g.display.H; row++ {
		for col := 0; col < g.display.W; col++ {
			p := engine.Pos(col, row)
			x := x0 + col*tileWidth
			y := y0 + row*tileH

			left, right, markColor := g.marks(p, sel, hasSel)
			for dy := 0; dy < tileH; dy++ {
				if left != ' ' {
					dst.SetColored(x, y+dy, left, markColor)
					dst.SetColored(x+3, y+dy, right, markColor)
				}
				g.renderTile(dst, x+1, y+dy, p, destroyed.Has(p), dy == 0)
			}
		}
	}
}

// marks returns the bracket runes drawn around a tile.
func (g *Game) marks(p, sel engine.Position, hasSel bool) (rune, rune, core.Color) {
	switch {
	case hasSel && p == sel:
		return '<', '>', core.ColorBrightWhite
	case !g.playing && !g.over() && p == g.cursor:
		return '[', ']', core.ColorBrightWhite
	case g.hintTicks > 0 && (p == g.hintA || p == g.hintB):
		return '*', '*', core.ColorYellow
	}
	return ' ', ' ', core.ColorDefault
}

func (g *Game) renderTile(dst *core.Screen, x, y int, p engine.Position, destroyed, top bool) {
	t, ok := g.display.At(p)
	if !ok {
		if destroyed {
			dst.SetColored(x, y, '░', core.ColorBrightWhite)
			dst.SetColored(x+1, y, '░', core.ColorBrightWhite)
			return
		}
		dst.SetColored(x, y, '·', core.ColorGray)
		dst.SetColored(x+1, y, '·', core.ColorGray)
		return
	}

	color := TileColor(t.Color)
	dst.SetColored(x, y, '█', color)
	if t.IsSpecial() && top {
		dst.SetColored(x+1, y, t.Special.Marker(), color)
		return
	}
	dst.SetColored(x+1, y, '█', color)
}

func (g *Game) renderFooter(dst *core.Screen, y int) {
	if y >= g.screenH {
		return
	}
	if g.message != "" {
		dst.DrawTextCenteredColored(y, g.message, core.ColorBrightYellow)
		return
	}
	if g.over() {
		return
	}
	dst.DrawTextCenteredColored(y, "Arrows: move  Enter: select  H: hint  P: pause  B: menu", core.ColorGray)
}

// renderOverlays draws the pause, error and game-over boxes.
func (g *Game) renderOverlays(dst *core.Screen) {
	switch {
	case g.err != nil:
		g.renderBox(dst, core.ColorBrightRed, "ERROR", clip(g.err.Error(), g.screenW-6), "", "R: restart  B: menu")
	case g.paused:
		g.renderBox(dst, core.ColorBrightWhite, "PAUSED", "", "P: resume  B: menu")
	case g.over():
		lines := []string{"GAME OVER", fmt.Sprintf("Score: %d", g.session.Score())}
		if g.session.NewRecord() {
			lines = append(lines, "NEW HIGH SCORE!")
		}
		lines = append(lines, "")
		lines = append(lines, wrap(g.session.Tip(), g.screenW-6)...)
		lines = append(lines, "", "R: restart  B: menu")
		g.renderBox(dst, core.ColorBrightYellow, lines...)
	}
}

// renderBox draws centered lines inside a cleared box; the first line is the heading.
func (g *Game) renderBox(dst *core.Screen, heading core.Color, lines ...string) {
	boxW := 0
	for _, l := range lines {
		boxW = core.Max(boxW, utf8.RuneCountInString(l))
	}
	boxW = core.Min(boxW+4, g.screenW)
	boxH := len(lines) + 2
	boxX := (g.screenW - boxW) / 2
	boxY := (g.screenH - boxH) / 2

	r := core.Rect{X: boxX, Y: boxY, W: boxW, H: boxH}
	dst.DrawRect(r, ' ')
	dst.DrawBox(r)
	for i, l := range lines {
		color := core.ColorDefault
		if i == 0 {
			color = heading
		}
		dst.DrawTextCenteredColored(boxY+1+i, l, color)
	}
}

// wrap breaks text into lines of at most width runes on word boundaries.
func wrap(text string, width int) []string {
	if text == "" {
		return nil
	}
	if width < 10 {
		width = 10
	}
	var lines []string
	var line strings.Builder
	for _, word := range strings.Fields(text) {
		if line.Len() > 0 && utf8.RuneCountInString(line.String())+1+utf8.RuneCountInString(word) > width {
			lines = append(lines, line.String())
			line.Reset()
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(word)
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return lines
}

func clip(s string, width int) string {
	if width <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width])
}
