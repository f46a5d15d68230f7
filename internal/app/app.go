package app

import (
	"context"
	"log"
	"math/rand"
	"time"

	"classic-snake/internal/domain"

	"github.com/google/uuid"
)

const (
	maxCatchUpSteps = 5
	recordTimeout   = 2 * time.Second
	eventBuffer     = 100
)

type ScoreStore interface {
	Load() int
	Save(score int) error
}

// Sink plays the sound cues. Implementations must not block.
type Sink interface {
	PlayMove()
	PlayEat()
	PlayGameOver()
}

type Recorder interface {
	Record(ctx context.Context, session domain.Session) error
	Stats(ctx context.Context) (domain.HistoryStats, error)
}

type Deps struct {
	Scores   ScoreStore
	Sink     Sink
	Recorder Recorder
	Rand     *rand.Rand
	Now      func() time.Time
}

// App drives a single game: it owns the GameState and is only used from the
// UI update goroutine.
type App struct {
	config *domain.GameConfig
	state  *domain.GameState

	scores   ScoreStore
	sink     Sink
	recorder Recorder
	now      func() time.Time

	elapsed   time.Duration
	sessionID string
	startedAt time.Time
	stats     domain.HistoryStats

	eventCh chan AppEvent

	ctx    context.Context
	cancel context.CancelFunc
}

func New(config *domain.GameConfig, deps Deps) *App {
	a := &App{
		config:   config.Copy(),
		scores:   deps.Scores,
		sink:     deps.Sink,
		recorder: deps.Recorder,
		now:      deps.Now,
		eventCh:  make(chan AppEvent, eventBuffer),
		ctx:      context.Background(),
	}
	if a.scores == nil {
		a.scores = memoryScores{}
	}
	if a.sink == nil {
		a.sink = nopSink{}
	}
	if a.recorder == nil {
		a.recorder = nopRecorder{}
	}
	if a.now == nil {
		a.now = time.Now
	}

	a.state = domain.NewGameState(a.config, deps.Rand)
	a.state.HighScore = a.scores.Load()

	return a
}

// Start loads history stats and begins the first game.
func (a *App) Start(ctx context.Context) error {
	a.ctx, a.cancel = context.WithCancel(ctx)
	a.refreshStats()
	a.NewGame()
	log.Printf("App: started, high score %d", a.state.HighScore)
	return nil
}

func (a *App) Stop() {
	if a.cancel != nil {
		a.cancel()
	}
}

func (a *App) Events() <-chan AppEvent {
	return a.eventCh
}

func (a *App) State() *domain.GameState {
	return a.state
}

func (a *App) Config() *domain.GameConfig {
	return a.config
}

func (a *App) Stats() domain.HistoryStats {
	return a.stats
}

// NewGame resets the board and restarts the tick timer from zero.
func (a *App) NewGame() {
	a.state.StartNewGame(a.config.Width, a.config.Height)
	a.elapsed = 0
	a.sessionID = uuid.NewString()
	a.startedAt = a.now()

	log.Println("New game started")
	a.emit(AppEvent{Type: AppEventNewGame})
	a.emit(AppEvent{Type: AppEventStateUpdated})
}

// OnKey steers the snake. Every recognized key plays the movement cue, even
// when the requested direction is rejected or no game is running.
func (a *App) OnKey(dir domain.Direction) {
	if !dir.Valid() {
		return
	}
	a.sink.PlayMove()

	if !a.state.Running() {
		return
	}
	a.state.SetDirection(dir)
	log.Printf("Direction changed to: %v", a.state.Direction)
}

// Tick advances the game clock by dt and runs every tick that became due.
func (a *App) Tick(dt time.Duration) {
	if !a.state.Running() {
		return
	}

	a.elapsed += dt
	steps := 0
	for a.elapsed >= a.config.TickInterval && a.state.Running() {
		a.elapsed -= a.config.TickInterval
		a.step()

		steps++
		if steps >= maxCatchUpSteps {
			// Drop whole missed ticks, keep the progress into the next one.
			a.elapsed %= a.config.TickInterval
			break
		}
	}
}

func (a *App) step() {
	result := a.state.Step()
	if result == nil {
		return
	}

	switch {
	case result.GameOver:
		a.sink.PlayGameOver()
		log.Printf("Game over! Score: %d", a.state.Score)
		a.finish()
		a.emit(AppEvent{
			Type: AppEventGameOver,
			Payload: GameOverPayload{
				Score:     a.state.Score,
				HighScore: a.state.HighScore,
				Length:    a.state.Len(),
			},
		})

	case result.Ate:
		a.sink.PlayEat()
		log.Printf("Food eaten! Score: %d", a.state.Score)
		a.emit(AppEvent{Type: AppEventFoodEaten, Payload: a.state.Score})

		if result.NewHighScore {
			a.saveHighScore()
		}

		if result.Won {
			log.Printf("Board filled! Score: %d", a.state.Score)
			a.finish()
			a.emit(AppEvent{
				Type: AppEventWon,
				Payload: GameOverPayload{
					Score:     a.state.Score,
					HighScore: a.state.HighScore,
					Length:    a.state.Len(),
				},
			})
		}
	}

	a.emit(AppEvent{Type: AppEventStateUpdated})
}

func (a *App) saveHighScore() {
	if err := a.scores.Save(a.state.HighScore); err != nil {
		log.Printf("App: failed to save high score: %v", err)
		a.emit(AppEvent{Type: AppEventError, Payload: ErrorPayload{Message: "high score not saved"}})
		return
	}
	a.emit(AppEvent{Type: AppEventHighScore, Payload: a.state.HighScore})
}

func (a *App) finish() {
	session := domain.Session{
		ID:        a.sessionID,
		StartedAt: a.startedAt,
		EndedAt:   a.now(),
		Score:     a.state.Score,
		Length:    a.state.Len(),
		Outcome:   a.state.Phase,
	}

	ctx, cancel := context.WithTimeout(a.ctx, recordTimeout)
	defer cancel()

	if err := a.recorder.Record(ctx, session); err != nil {
		log.Printf("App: failed to record session %s: %v", session.ID, err)
		return
	}
	a.refreshStats()
}

func (a *App) refreshStats() {
	ctx, cancel := context.WithTimeout(a.ctx, recordTimeout)
	defer cancel()

	stats, err := a.recorder.Stats(ctx)
	if err != nil {
		log.Printf("App: failed to read history: %v", err)
		return
	}
	a.stats = stats
}

func (a *App) emit(event AppEvent) {
	select {
	case a.eventCh <- event:
	default:
		log.Println("App: event channel full, dropping event")
	}
}

type memoryScores struct{}

func (memoryScores) Load() int { return 0 }
func (memoryScores) Save(int) error { return nil }

type nopSink struct{}

func (nopSink) PlayMove() {}
func (nopSink) PlayEat() {}
func (nopSink) PlayGameOver() {}

type nopRecorder struct{}

func (nopRecorder) Record(context.Context, domain.Session) error { return nil }

func (nopRecorder) Stats(context.Context) (domain.HistoryStats, error) {
	return domain.HistoryStats{}, nil
}
