package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/spellduel/internal/combat"
	"github.com/samdwyer/spellduel/internal/entity"
	"github.com/samdwyer/spellduel/internal/gamedata"
)

// maxLogLines bounds the event history kept for redraws.
const maxLogLines = 500

var (
	styleText   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleDim    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleActive = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleBanner = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	styleFailed = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleHurt   = tcell.StyleDefault.Foreground(tcell.ColorOrange)
	styleOver   = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true).Reverse(true)
	styleInput  = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
)

// Renderer draws the duel: the state block at the top, the event log in
// the middle and the pending prompt at the bottom. It is a combat.Sink.
type Renderer struct {
	canvas Canvas
	state  *combat.Snapshot
	log    []logLine
	prompt *combat.Prompt
	input  string
	status string
}

type logLine struct {
	text  string
	style tcell.Style
}

// NewRenderer creates a new renderer for the given canvas.
func NewRenderer(canvas Canvas) *Renderer {
	return &Renderer{canvas: canvas}
}

// Event appends an event to the log and redraws.
func (r *Renderer) Event(e combat.Event) {
	if e.Kind == combat.EventTurnStart {
		r.appendLog("", styleText)
	}
	r.appendLog(e.Message, eventStyle(e.Kind))
	r.Draw()
}

// Snapshot replaces the displayed state and redraws.
func (r *Renderer) Snapshot(s combat.Snapshot) {
	r.state = &s
	r.Draw()
}

// ShowPrompt displays a prompt with the current input buffer.
func (r *Renderer) ShowPrompt(p combat.Prompt, input string) {
	r.prompt = &p
	r.input = input
	r.Draw()
}

// ClearPrompt removes the prompt once it has been answered.
func (r *Renderer) ClearPrompt() {
	r.prompt = nil
	r.input = ""
}

// ShowStatus displays a message in place of a prompt.
func (r *Renderer) ShowStatus(msg string) {
	r.prompt = nil
	r.status = msg
	r.Draw()
}

func (r *Renderer) appendLog(text string, style tcell.Style) {
	r.log = append(r.log, logLine{text: text, style: style})
	if len(r.log) > maxLogLines {
		r.log = r.log[len(r.log)-maxLogLines:]
	}
}

// Draw redraws the whole screen.
func (r *Renderer) Draw() {
	r.canvas.Clear()
	_, height := r.canvas.Size()

	y := 0
	if r.state != nil {
		y = r.drawState(y)
	}

	footer := r.footer()
	footerY := height - len(footer)
	if footerY < y {
		footerY = y
	}

	rows := footerY - y
	start := len(r.log) - rows
	if start < 0 {
		start = 0
	}
	for _, line := range r.log[start:] {
		DrawText(r.canvas, 0, y, line.text, line.style)
		y++
	}

	for i, line := range footer {
		DrawText(r.canvas, 0, footerY+i, line.text, line.style)
	}
	r.canvas.Show()
}

func (r *Renderer) drawState(y int) int {
	s := r.state
	DrawText(r.canvas, 0, y, fmt.Sprintf("%s Round %d, %s", stateRule, s.Round, s.Phase), styleDim)
	y++
	for i, p := range s.Players {
		style := styleText
		if entity.Side(i) == s.Active {
			style = styleActive
		}
		DrawText(r.canvas, 0, y, PlayerLine(p), style)
		y++
		r.drawMinions(y, p)
		y++
	}
	DrawText(r.canvas, 0, y, stateRule, styleDim)
	return y + 2
}

func (r *Renderer) drawMinions(y int, p combat.PlayerSnapshot) {
	x := DrawText(r.canvas, 0, y, "   Minions: ", styleDim)
	if len(p.Minions) == 0 {
		DrawText(r.canvas, x, y, "None", styleDim)
		return
	}
	for i, m := range p.Minions {
		if i > 0 {
			x = DrawText(r.canvas, x, y, ", ", styleDim)
		}
		x = DrawText(r.canvas, x, y, string(m.Glyph)+" ", minionStyle(m))
		x = DrawText(r.canvas, x, y, m.Label, styleText)
	}
}

func (r *Renderer) footer() []logLine {
	if r.prompt == nil {
		if r.status == "" {
			return nil
		}
		return []logLine{{text: r.status, style: styleOver}}
	}
	var lines []logLine
	for _, text := range FormatPrompt(*r.prompt) {
		style := styleText
		if len(lines) == 0 && r.prompt.Problem != "" {
			style = styleFailed
		}
		lines = append(lines, logLine{text: text, style: style})
	}
	return append(lines, logLine{text: "> " + r.input + "_", style: styleInput})
}

// minionStyle colors a minion glyph from its catalogue color.
func minionStyle(m combat.MinionSnapshot) tcell.Style {
	return tcell.StyleDefault.Foreground(gamedata.ColorOr(m.Color, tcell.ColorWhite)).Bold(true)
}

func eventStyle(kind combat.EventKind) tcell.Style {
	switch kind {
	case combat.EventTurnStart, combat.EventMinionPhase, combat.EventMatchStart:
		return styleBanner
	case combat.EventActionFailed:
		return styleFailed
	case combat.EventBurnDamage, combat.EventBurnApplied, combat.EventPlayerHit, combat.EventMinionDied, combat.EventMinionExplode:
		return styleHurt
	case combat.EventMatchOver:
		return styleOver
	default:
		return styleText
	}
}
