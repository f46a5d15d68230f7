package graphics

import (
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"classic-snake/internal/app"
	"classic-snake/internal/snapshot"
	"classic-snake/internal/ui/graphics/screens"
	"classic-snake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
)

const backdropBlur = 3.5

// Engine is the ebiten.Game. Update and Draw run on the same goroutine, so
// the App and its state are never touched concurrently.
type Engine struct {
	width  int
	height int

	app    *app.App
	screen *screens.GameScreen

	palette        snapshot.Palette
	screenshotsDir string

	quit atomic.Bool
}

func NewEngine(application *app.App, screenshotsDir string) *Engine {
	types.InitFonts()

	cfg := application.Config()
	w, h := screens.WindowSize(cfg)

	e := &Engine{
		width:          w,
		height:         h,
		app:            application,
		screenshotsDir: screenshotsDir,
		palette: snapshot.Palette{
			Background: types.ColorFieldBg,
			Grid:       types.ColorGrid,
			Head:       types.ColorSnakeHead,
			Body:       types.ColorSnakeBody,
			Food:       types.ColorFood,
			Text:       types.ColorText,
		},
	}
	e.screen = screens.NewGameScreen(e, cfg)
	e.screen.OnEnter()

	return e
}

func (e *Engine) Run() error {
	ebiten.SetWindowSize(e.width, e.height)
	ebiten.SetWindowTitle("Snake")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)

	return ebiten.RunGame(e)
}

// Quit makes the next Update end the game loop. It is safe to call from any
// goroutine.
func (e *Engine) Quit() {
	e.quit.Store(true)
}

func (e *Engine) Update() error {
	if e.quit.Load() {
		log.Println("Engine: shutting down")
		return ebiten.Termination
	}

	event := e.screen.Update()
	if err := e.handleEvent(event); err != nil {
		return err
	}

	e.app.Tick(time.Second / time.Duration(ebiten.TPS()))
	e.handleAppEvents()

	return nil
}

func (e *Engine) Draw(screen *ebiten.Image) {
	e.screen.SetState(e.app.State(), e.app.Stats())
	e.screen.Draw(screen)
}

func (e *Engine) Layout(outsideWidth, outsideHeight int) (int, int) {
	return e.width, e.height
}

func (e *Engine) Size() (int, int) {
	return e.width, e.height
}

func (e *Engine) handleEvent(event types.UIEvent) error {
	switch event.Type {
	case types.UIEventNone:
		return nil

	case types.UIEventSteer:
		data := event.Payload.(types.SteerData)
		e.app.OnKey(data.Direction)

	case types.UIEventNewGame:
		e.screen.HideDialog()
		e.app.NewGame()

	case types.UIEventDismissDialog:
		e.screen.HideDialog()

	case types.UIEventScreenshot:
		e.saveScreenshot()

	case types.UIEventQuit:
		log.Println("Engine: quit requested")
		e.screen.OnExit()
		return ebiten.Termination
	}

	return nil
}

func (e *Engine) handleAppEvents() {
	for {
		select {
		case event := <-e.app.Events():
			e.handleAppEvent(event)
		default:
			return
		}
	}
}

func (e *Engine) handleAppEvent(event app.AppEvent) {
	switch event.Type {
	case app.AppEventNewGame:
		e.screen.SetMessage("")

	case app.AppEventHighScore:
		e.screen.SetMessage(fmt.Sprintf("New high score: %d", event.Payload.(int)))

	case app.AppEventGameOver:
		payload := event.Payload.(app.GameOverPayload)
		e.screen.ShowDialog("Game Over",
			fmt.Sprintf("Game Over! Your score: %d", payload.Score),
			e.backdrop())

	case app.AppEventWon:
		payload := event.Payload.(app.GameOverPayload)
		e.screen.ShowDialog("Board cleared",
			fmt.Sprintf("You filled the board! Score: %d", payload.Score),
			e.backdrop())

	case app.AppEventError:
		if payload, ok := event.Payload.(app.ErrorPayload); ok {
			e.screen.SetError(payload.Message)
		}
	}
}

func (e *Engine) backdrop() *ebiten.Image {
	img := snapshot.Render(e.app.State(), e.app.Config(), e.palette)
	return ebiten.NewImageFromImage(snapshot.Backdrop(img, backdropBlur))
}

func (e *Engine) saveScreenshot() {
	img := snapshot.Render(e.app.State(), e.app.Config(), e.palette)
	path, err := snapshot.Save(e.screenshotsDir, img, time.Now())
	if err != nil {
		log.Printf("Engine: %v", err)
		e.screen.SetError("Screenshot failed")
		return
	}
	log.Printf("Engine: screenshot saved to %s", path)
	e.screen.SetMessage("Screenshot saved")
}
