package game

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/samdwyer/spellduel/internal/combat"
	"github.com/samdwyer/spellduel/internal/config"
	"github.com/samdwyer/spellduel/internal/gamedata"
	"github.com/samdwyer/spellduel/internal/logging"
	"github.com/samdwyer/spellduel/internal/script"
	"github.com/samdwyer/spellduel/internal/ui"
)

// Game owns one match and the front end it is played through: the
// terminal UI, or a decision script with a text transcript.
type Game struct {
	match      *Match
	logger     *zap.Logger
	screen     *ui.Screen
	terminal   *ui.Terminal
	transcript *ui.Transcript
}

// New creates a game from the runtime configuration. When cfg.Script is
// set the match is replayed headlessly to stdout.
func New(cfg config.Config, logger *zap.Logger) (*Game, error) {
	return newGame(cfg, logger, os.Stdout)
}

func newGame(cfg config.Config, logger *zap.Logger, out io.Writer) (*Game, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	minions, err := gamedata.LoadMinionRegistry()
	if err != nil {
		return nil, fmt.Errorf("load minions: %w", err)
	}
	actions, err := gamedata.LoadActionRegistry()
	if err != nil {
		return nil, fmt.Errorf("load actions: %w", err)
	}
	resolver := combat.NewResolver(minions, actions, logger.Named("combat"))

	g := &Game{logger: logger}
	matchCfg := Config{PlayerOne: cfg.PlayerOne, PlayerTwo: cfg.PlayerTwo}
	logSink := logging.NewSink(logger)

	if cfg.Script != "" {
		f, err := script.Load(cfg.Script)
		if err != nil {
			return nil, err
		}
		matchCfg.PlayerOne, matchCfg.PlayerTwo = f.PlayerNames(cfg.PlayerOne, cfg.PlayerTwo)
		g.transcript = ui.NewTranscript(out)
		decider := g.transcript.Echo(f.Decider())
		g.match = NewMatch(matchCfg, resolver, decider, combat.Sinks{g.transcript, logSink}, logger)
		logger.Info("scripted match", zap.String("script", cfg.Script), zap.Int("decisions", len(f.Decisions)))
		return g, nil
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("open terminal: %w", err)
	}
	renderer := ui.NewRenderer(screen)
	g.screen = screen
	g.terminal = ui.NewTerminal(screen, renderer)
	g.match = NewMatch(matchCfg, resolver, g.terminal, combat.Sinks{renderer, logSink}, logger)
	return g, nil
}

// Match returns the match being played.
func (g *Game) Match() *Match { return g.match }

// Run plays the match to the end. In terminal mode the final state stays
// on screen until a key is pressed.
func (g *Game) Run(ctx context.Context) (Result, error) {
	res, err := g.match.Run(ctx)
	if err != nil {
		return res, err
	}
	if g.transcript != nil {
		if err := g.transcript.Err(); err != nil {
			return res, fmt.Errorf("write transcript: %w", err)
		}
	}
	if g.terminal != nil {
		g.terminal.WaitForKey(res.Message + " Press any key to exit.")
	}
	return res, nil
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
		g.screen = nil
	}
}
