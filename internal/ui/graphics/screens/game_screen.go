package screens

import (
	"classic-snake/internal/domain"
	"classic-snake/internal/ui/graphics/components"
	"classic-snake/internal/ui/graphics/input"
	"classic-snake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
)

const (
	BoardOffsetX = 20
	BoardOffsetY = 20
	PanelWidth   = 180
	FooterHeight = 36
)

var _ types.Screen = (*GameScreen)(nil)

type GameScreen struct {
	ctx types.ScreenContext

	fieldRenderer *components.FieldRenderer
	scoreboard    *components.Scoreboard
	dialog        *components.Dialog
	btnNewGame    *components.Button
	keyboard      *input.KeyboardHandler

	boardW, boardH int

	state *domain.GameState
	stats domain.HistoryStats

	message  string
	errorMsg string
}

func NewGameScreen(ctx types.ScreenContext, cfg *domain.GameConfig) *GameScreen {
	boardW, boardH := cfg.PixelSize()
	panelX := BoardOffsetX + boardW + 20

	return &GameScreen{
		ctx:           ctx,
		fieldRenderer: components.NewFieldRenderer(cfg, BoardOffsetX, BoardOffsetY),
		scoreboard:    components.NewScoreboard(panelX, BoardOffsetY, PanelWidth, 260),
		dialog:        components.NewDialog(),
		btnNewGame:    components.NewButton(panelX, BoardOffsetY+280, PanelWidth, 40, "New Game"),
		keyboard:      input.NewKeyboardHandler(),
		boardW:        boardW,
		boardH:        boardH,
	}
}

// WindowSize is the fixed window size needed for a board of cfg.
func WindowSize(cfg *domain.GameConfig) (int, int) {
	boardW, boardH := cfg.PixelSize()
	w := BoardOffsetX + boardW + 20 + PanelWidth + 20
	h := BoardOffsetY + max(boardH, 340) + FooterHeight
	return w, h
}

func (s *GameScreen) SetState(state *domain.GameState, stats domain.HistoryStats) {
	s.state = state
	s.stats = stats
}

func (s *GameScreen) Update() types.UIEvent {
	if input.IsScreenshotPressed() {
		return types.UIEvent{Type: types.UIEventScreenshot}
	}

	// The dialog is modal: nothing else reacts until it is acknowledged.
	if s.dialog.Visible {
		w, h := s.ctx.Size()
		if s.dialog.Update(w, h) || input.IsDismissPressed() {
			return types.UIEvent{Type: types.UIEventDismissDialog}
		}
		return types.UIEvent{Type: types.UIEventNone}
	}

	if input.IsEscapePressed() {
		return types.UIEvent{Type: types.UIEventQuit}
	}

	if s.btnNewGame.Update() || input.IsNewGamePressed() {
		return types.UIEvent{Type: types.UIEventNewGame}
	}

	if dir := s.keyboard.Update(); dir != 0 {
		return types.UIEvent{
			Type:    types.UIEventSteer,
			Payload: types.SteerData{Direction: dir},
		}
	}

	return types.UIEvent{Type: types.UIEventNone}
}

func (s *GameScreen) Draw(screen *ebiten.Image) {
	screen.Fill(types.ColorBackground)

	w, h := s.ctx.Size()
	fonts := types.GetFonts()

	if s.state == nil {
		types.DrawCentered(screen, "Loading...", fonts.Normal, w/2, h/2, types.ColorTextDim)
		return
	}

	s.fieldRenderer.DrawField(screen, s.state.Field)
	s.fieldRenderer.DrawFood(screen, s.state.Food)
	s.fieldRenderer.DrawSnake(screen, s.state.Body())
	s.fieldRenderer.DrawDirection(screen, s.state.Direction)

	s.scoreboard.Draw(screen, s.state, s.stats)
	s.btnNewGame.Draw(screen)

	s.drawFooter(screen, w, h)

	s.dialog.Draw(screen, BoardOffsetX, BoardOffsetY, w, h)
}

func (s *GameScreen) drawFooter(screen *ebiten.Image, w, h int) {
	fonts := types.GetFonts()

	hint := "W/A/S/D or Arrows to move  |  N new game  |  F12 screenshot  |  ESC quit"
	text.Draw(screen, hint, fonts.Small, BoardOffsetX, h-15, types.ColorTextDim)

	if s.errorMsg != "" {
		bounds := text.BoundString(fonts.Normal, s.errorMsg)
		text.Draw(screen, s.errorMsg, fonts.Normal, w-bounds.Dx()-20, h-15, types.ColorError)
	} else if s.message != "" {
		bounds := text.BoundString(fonts.Normal, s.message)
		text.Draw(screen, s.message, fonts.Normal, w-bounds.Dx()-20, h-15, types.ColorSuccess)
	}
}

func (s *GameScreen) ShowDialog(title, message string, backdrop *ebiten.Image) {
	s.dialog.Show(title, message, backdrop)
}

func (s *GameScreen) HideDialog() {
	s.dialog.Hide()
}

func (s *GameScreen) OnEnter() {
	s.errorMsg = ""
	s.message = ""
}

func (s *GameScreen) OnExit() {
	s.dialog.Hide()
}

func (s *GameScreen) SetError(err string) {
	s.errorMsg = err
	s.message = ""
}

func (s *GameScreen) SetMessage(msg string) {
	s.message = msg
	s.errorMsg = ""
}
