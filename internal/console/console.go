package console

import (
	"flag"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/Aspecky/better-parenting/internal/addon"
	"github.com/Aspecky/better-parenting/internal/logger"
	"github.com/Aspecky/better-parenting/internal/ops"
	"github.com/Aspecky/better-parenting/internal/scene"
)

const (
	barHeight = 40
	prompt    = "> "
	fontSize  = 20
	padding   = 8
	// Number of log lines drawn above the input bar when the console is open.
	maxLinesOnScreen = 12
	lineHeight       = fontSize + 4
)

var (
	// Reused every frame when drawing the console to avoid per-frame color
	// allocations.
	barColor    = rl.NewColor(40, 40, 40, 255)
	lineColor   = rl.NewColor(80, 80, 80, 255)
	histBgColor = rl.NewColor(24, 24, 24, 240)
)

// Console is the editor command bar at the bottom of the screen, toggled
// with ESC. While open it captures typing (the viewport keymap is
// suppressed). Lines are commands:
//
//	op <id> [flags]   run an operator by its namespaced id
//	undo              restore the scene to before the last operator
//	ops               list registered operators
//
// Anything else is just logged.
type Console struct {
	log      *logger.Logger
	reg      *addon.Registry
	scn      *scene.Scene
	inputBuf string
	open     bool
}

// New returns a closed console over the given registry and scene.
func New(log *logger.Logger, reg *addon.Registry, scn *scene.Scene) *Console {
	return &Console{log: log, reg: reg, scn: scn}
}

// IsOpen reports whether the console is visible and capturing input.
// The editor skips keymap dispatch while open.
func (c *Console) IsOpen() bool {
	return c.open
}

// Update handles ESC (toggle) and, when open, typing, backspace, and enter.
// Call once per frame.
func (c *Console) Update() {
	if rl.IsKeyPressed(rl.KeyEscape) {
		c.open = !c.open
	}
	if !c.open {
		return
	}
	for {
		ch := rl.GetCharPressed()
		if ch == 0 {
			break
		}
		c.inputBuf += string(rune(ch))
	}
	if rl.IsKeyPressed(rl.KeyBackspace) && len(c.inputBuf) > 0 {
		_, size := utf8.DecodeLastRuneInString(c.inputBuf)
		c.inputBuf = c.inputBuf[:len(c.inputBuf)-size]
	}
	if (rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter)) && c.inputBuf != "" {
		line := c.inputBuf
		c.inputBuf = ""
		c.log.Log(prompt + line)
		if err := c.Run(line); err != nil {
			c.log.Log(err.Error())
		}
	}
}

// Run executes one console line. Exported so tests and the editor can drive
// the console without keyboard input.
func (c *Console) Run(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	switch fields[0] {
	case "undo":
		label, ok := c.scn.Undo()
		if !ok {
			return fmt.Errorf("undo: nothing to undo")
		}
		c.log.Log("undo: " + label)
		return nil
	case "ops":
		for _, op := range c.reg.Operators() {
			c.log.Log(op.ID() + "  " + op.Label())
		}
		return nil
	case "op":
		if len(fields) < 2 {
			return fmt.Errorf("op: missing operator id")
		}
		return c.runOperator(fields[1], fields[2:])
	default:
		return nil
	}
}

// runOperator looks up the operator, applies any per-operator flags, checks
// Poll, and executes.
func (c *Console) runOperator(id string, args []string) error {
	op, ok := c.reg.Lookup(id)
	if !ok {
		return fmt.Errorf("op: unknown operator %q", id)
	}
	if len(args) > 0 {
		configured, err := applyFlags(op, args)
		if err != nil {
			return err
		}
		op = configured
	}
	if !op.Poll(c.scn) {
		return fmt.Errorf("op %s: nothing selected", id)
	}
	return op.Execute(c.scn)
}

// applyFlags parses operator-specific flags. Only parent_to_empty has any:
// -location top|center|bottom, -name, -axes, -front (booleans).
func applyFlags(op ops.Operator, args []string) (ops.Operator, error) {
	pte, ok := op.(ops.ParentToEmpty)
	if !ok {
		return nil, fmt.Errorf("op %s: takes no flags", op.ID())
	}
	fs := flag.NewFlagSet(op.ID(), flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	location := fs.String("location", pte.Location.String(), "placement: top, center, or bottom")
	name := fs.Bool("name", pte.ShowName, "show the empty's name label")
	axes := fs.Bool("axes", pte.ShowAxes, "show the empty's axes")
	front := fs.Bool("front", pte.ShowInFront, "draw the empty in front")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("op %s: %w", op.ID(), err)
	}
	loc, err := ops.ParsePlacement(*location)
	if err != nil {
		return nil, fmt.Errorf("op %s: %w", op.ID(), err)
	}
	pte.Location = loc
	pte.ShowName = *name
	pte.ShowAxes = *axes
	pte.ShowInFront = *front
	return pte, nil
}

// Draw draws the console bar at the bottom when open, and recent log lines
// above it. Uses GetScreenWidth/GetScreenHeight so the bar matches the 2D
// overlay coordinate system.
func (c *Console) Draw() {
	if !c.open {
		return
	}
	screenW := int(rl.GetScreenWidth())
	screenH := int(rl.GetScreenHeight())
	barY := screenH - barHeight

	histHeight := maxLinesOnScreen * lineHeight
	histY := barY - histHeight
	if histY < 0 {
		histHeight = barY
		histY = 0
	}
	if histHeight > 0 {
		rl.DrawRectangle(0, int32(histY), int32(screenW), int32(histHeight), histBgColor)
	}
	lines := c.log.Lines()
	start := 0
	if len(lines) > maxLinesOnScreen {
		start = len(lines) - maxLinesOnScreen
	}
	for i := start; i < len(lines); i++ {
		y := histY + (i-start)*lineHeight + padding
		line := lines[i]
		if len(line) > 200 {
			line = line[:197] + "..."
		}
		rl.DrawText(line, int32(padding), int32(y), int32(fontSize), rl.LightGray)
	}

	rl.DrawRectangle(0, int32(barY), int32(screenW), int32(barHeight), barColor)
	rl.DrawRectangle(0, int32(barY), int32(screenW), 1, lineColor)
	rl.DrawText(prompt+c.inputBuf+"|", int32(padding), int32(barY+padding), int32(fontSize), rl.White)
}
