// Package render draws game state snapshots for the terminal client.
package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	minesv1 "github.com/MukundVashisht2003/Multiplayer-Minesweeper-Game/api/mines/v1"
	"github.com/MukundVashisht2003/Multiplayer-Minesweeper-Game/internal/services/minesclient/command"
	"github.com/fatih/color"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const clearScreen = "\033[H\033[2J"

// Renderer draws boards with or without color.
type Renderer struct {
	colored bool
	printer *message.Printer
	upper   cases.Caser

	title  *color.Color
	note   *color.Color
	frame  *color.Color
	help   *color.Color
	danger *color.Color
	counts []*color.Color
}

// New returns a Renderer. With enabled false no escape sequences are
// written, whatever the terminal supports.
func New(enabled bool) *Renderer {
	r := &Renderer{
		colored: enabled,
		printer: message.NewPrinter(language.English),
		upper:   cases.Upper(language.English),
		title:   color.New(color.Bold),
		note:    color.New(color.FgCyan),
		frame:   color.New(color.FgHiBlack),
		help:    color.New(color.FgYellow),
		danger:  color.New(color.FgRed),
		counts: []*color.Color{
			color.New(color.FgWhite),
			color.New(color.FgBlue),
			color.New(color.FgGreen),
			color.New(color.FgRed),
			color.New(color.FgMagenta),
			color.New(color.FgYellow),
		},
	}
	for _, c := range append([]*color.Color{r.title, r.note, r.frame, r.help, r.danger}, r.counts...) {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return r
}

// Auto reports whether stdout takes color: it is a terminal, TERM is not
// dumb and NO_COLOR is unset.
func Auto() bool {
	return !color.NoColor
}

// Board draws v, in color when Auto allows it.
func Board(w io.Writer, v *minesv1.GameStateView) error {
	return New(Auto()).Board(w, v)
}

// Board writes the status header, the grid and the command help for v.
func (r *Renderer) Board(w io.Writer, v *minesv1.GameStateView) error {
	if v == nil {
		return nil
	}
	bw := bufio.NewWriter(w)
	width := int(v.GetBoardWidth())
	height := int(v.GetBoardHeight())

	if r.colored {
		bw.WriteString(clearScreen)
	}
	fmt.Fprintf(bw, "%s\n", paint(r.title, "Game Status: "+r.upper.String(v.GetGameStatus())))
	fmt.Fprintf(bw, "%s\n", paint(r.title, r.printer.Sprintf("Mines Remaining: %d", v.GetMinesRemaining())))
	fmt.Fprintf(bw, "%s\n\n", paint(r.note, v.GetMessage()))

	if width > 0 && height > 0 {
		bw.WriteString("   ")
		for x := 0; x < width; x++ {
			bw.WriteString(paint(r.frame, fmt.Sprintf(" %d ", x%10)))
		}
		bw.WriteString("\n")

		r.border(bw, width, "┌", "┬", "┐")
		for y := 0; y < height; y++ {
			bw.WriteString(paint(r.frame, fmt.Sprintf("%2d ", y)))
			for x := 0; x < width; x++ {
				bw.WriteString(paint(r.frame, "│"))
				bw.WriteString(r.cell(v.CellAt(x, y)))
			}
			bw.WriteString(paint(r.frame, "│") + "\n")
			if y < height-1 {
				r.border(bw, width, "├", "┼", "┤")
			}
		}
		r.border(bw, width, "└", "┴", "┘")
	}

	fmt.Fprintf(bw, "\n%s\n", paint(r.help, command.Help))
	return bw.Flush()
}

func (r *Renderer) border(bw *bufio.Writer, width int, left, mid, right string) {
	line := left + strings.Repeat("───"+mid, width-1) + "───" + right
	bw.WriteString("   " + paint(r.frame, line) + "\n")
}

func (r *Renderer) cell(c *minesv1.Cell) string {
	switch {
	case c == nil:
		return "   "
	case c.Revealed && c.IsMine:
		return paint(r.danger, " * ")
	case c.Revealed:
		if c.AdjacentMines == 0 {
			return "   "
		}
		return " " + paint(r.countColor(c.AdjacentMines), fmt.Sprintf("%d", c.AdjacentMines)) + " "
	case c.Flagged:
		return paint(r.danger, " ⚑ ")
	default:
		return paint(r.frame, " · ")
	}
}

func (r *Renderer) countColor(count int32) *color.Color {
	if count < 0 {
		count = 0
	}
	if int(count) >= len(r.counts) {
		return r.counts[len(r.counts)-1]
	}
	return r.counts[count]
}

func paint(c *color.Color, text string) string {
	if text == "" {
		return text
	}
	return c.Sprint(text)
}
