package view

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// RunConfig configures Run.
type RunConfig struct {
	Title         string
	Width, Height int
	// Background fills the screen each frame. Nil leaves it black.
	Background color.Color
	// ShowFPS draws the current FPS and TPS in the top-left corner.
	ShowFPS bool
	// Update, when set, runs once per tick after the board has processed
	// input. A non-nil error stops the game loop.
	Update func() error
}

// Run opens a window and drives board until the window is closed or
// cfg.Update returns an error.
func Run(board *Board, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("view: invalid window size %dx%d", cfg.Width, cfg.Height)
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	return ebiten.RunGame(&game{board: board, cfg: cfg})
}

type game struct {
	board *Board
	cfg   RunConfig
}

func (g *game) Update() error {
	g.board.Update()
	if g.cfg.Update != nil {
		return g.cfg.Update()
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.cfg.Background != nil {
		screen.Fill(g.cfg.Background)
	}
	g.board.Draw(screen)
	if g.cfg.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}
