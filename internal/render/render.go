// Package render writes composed report lines to a terminal, translating
// each StyleClass into an ANSI color preset. It makes no decisions of its
// own beyond the preset lookup.
package render

import (
	"fmt"
	"io"

	"github.com/ATTron/zweather/internal/domain"
	"github.com/fatih/color"
)

// stylePresets maps each StyleClass to its terminal treatment. StyleOther
// deliberately has no entry and renders unstyled.
var stylePresets = map[domain.StyleClass]*color.Color{
	domain.StyleClearWarm: color.New(color.FgYellow, color.Bold),
	domain.StyleClearCold: color.New(color.FgCyan, color.Bold),
	domain.StyleOvercast:  color.New(color.FgWhite, color.Bold),
	domain.StyleRain:      color.New(color.FgBlue, color.Bold),
	domain.StyleWintry:    color.New(color.FgHiCyan, color.Bold),
	domain.StyleStorm:     color.New(color.FgRed, color.Bold),
}

// Renderer writes report lines to an output stream.
type Renderer struct {
	out io.Writer
}

// New creates a Renderer writing to out.
func New(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

// Render writes each line in order, one per row, styled by its StyleClass.
// Color is suppressed automatically on non-terminals and under NO_COLOR;
// DisableColor forces it off.
func (r *Renderer) Render(lines []domain.Line) error {
	for _, line := range lines {
		preset, ok := stylePresets[line.Style]
		if !ok {
			if _, err := fmt.Fprintln(r.out, line.Text); err != nil {
				return fmt.Errorf("write report line: %w", err)
			}
			continue
		}
		if _, err := preset.Fprintln(r.out, line.Text); err != nil {
			return fmt.Errorf("write report line: %w", err)
		}
	}
	return nil
}

// DisableColor turns off ANSI styling process-wide, for --no-color.
func DisableColor() {
	color.NoColor = true
}
