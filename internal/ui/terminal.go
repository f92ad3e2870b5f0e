package ui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/spellduel/internal/combat"
)

// ErrQuit is returned when the player leaves with Escape, Ctrl-C or q.
var ErrQuit = errors.New("player quit")

// maxInput bounds the typed reply.
const maxInput = 8

// Terminal is a combat.Decider reading replies from the keyboard.
type Terminal struct {
	screen   *Screen
	renderer *Renderer
}

// NewTerminal creates a keyboard decider drawing prompts with renderer.
func NewTerminal(screen *Screen, renderer *Renderer) *Terminal {
	return &Terminal{screen: screen, renderer: renderer}
}

// Choose shows the prompt and returns the typed reply on Enter.
func (t *Terminal) Choose(ctx context.Context, p combat.Prompt) (int, error) {
	var ed lineEditor
	t.renderer.ShowPrompt(p, "")
	defer t.renderer.ClearPrompt()

	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		switch ev := t.screen.PollEvent().(type) {
		case nil:
			return 0, ErrQuit
		case *tcell.EventKey:
			switch ed.apply(ev.Key(), ev.Rune()) {
			case editQuit:
				return 0, ErrQuit
			case editSubmit:
				return ParseReply(ed.text(), p)
			}
			t.renderer.ShowPrompt(p, ed.text())
		case *tcell.EventResize:
			t.screen.Sync()
			t.renderer.Draw()
		}
	}
}

// WaitForKey shows msg and blocks until any key is pressed.
func (t *Terminal) WaitForKey(msg string) {
	t.renderer.ShowStatus(msg)
	for {
		switch t.screen.PollEvent().(type) {
		case nil, *tcell.EventKey:
			return
		case *tcell.EventResize:
			t.screen.Sync()
			t.renderer.Draw()
		}
	}
}

// ParseReply converts typed text into a reply. An empty entry selects the
// prompt's default when it has one.
func ParseReply(input string, p combat.Prompt) (int, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		if p.HasDefault {
			return p.Default, nil
		}
		return 0, fmt.Errorf("%w: please enter an integer", combat.ErrInvalidChoice)
	}
	v, err := strconv.Atoi(input)
	if err != nil {
		return 0, fmt.Errorf("%w: please enter an integer", combat.ErrInvalidChoice)
	}
	return v, nil
}

type editResult int

const (
	editContinue editResult = iota
	editSubmit
	editQuit
)

// lineEditor accumulates a short numeric reply.
type lineEditor struct {
	buf []rune
}

func (e *lineEditor) apply(key tcell.Key, r rune) editResult {
	switch key {
	case tcell.KeyEnter:
		return editSubmit
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return editQuit
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(e.buf) > 0 {
			e.buf = e.buf[:len(e.buf)-1]
		}
	case tcell.KeyRune:
		switch {
		case r == 'q' || r == 'Q':
			return editQuit
		case len(e.buf) >= maxInput:
		case unicode.IsDigit(r), r == '-' && len(e.buf) == 0:
			e.buf = append(e.buf, r)
		}
	}
	return editContinue
}

func (e *lineEditor) text() string {
	return string(e.buf)
}
