package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"classic-snake/internal/app"
	"classic-snake/internal/config"
	"classic-snake/internal/sound"
	"classic-snake/internal/storage"
	"classic-snake/internal/ui/graphics"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)

	configPath := flag.String("config", "config.json", "path to the config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	history, err := storage.OpenHistory(cfg.HistoryPath)
	if err != nil {
		log.Fatalf("Failed to open history: %v", err)
	}
	defer history.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logRecentGames(ctx, history)

	application := app.New(cfg.GameConfig(), app.Deps{
		Scores:   storage.NewHighScoreFile(cfg.HighScorePath),
		Sink:     newSink(ctx, cfg),
		Recorder: history,
	})

	if err := application.Start(ctx); err != nil {
		log.Fatalf("Failed to start app: %v", err)
	}

	engine := graphics.NewEngine(application, cfg.ScreenshotsDir)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Println("Shutting down...")
		engine.Quit()
	}()

	if err := engine.Run(); err != nil {
		log.Printf("UI error: %v", err)
	}

	application.Stop()
}

// newSink loads the sound cues. Sound is never fatal: on failure the game
// runs silently.
func newSink(ctx context.Context, cfg *config.Config) app.Sink {
	audioCtx := audio.NewContext(sound.SampleRate)

	sink, err := sound.NewSink(audioCtx, map[sound.Cue]string{
		sound.CueMove:     cfg.SoundPath(cfg.MoveSound),
		sound.CueEat:      cfg.SoundPath(cfg.EatSound),
		sound.CueGameOver: cfg.SoundPath(cfg.GameOverSound),
	})
	if err != nil {
		log.Printf("Sound disabled: %v", err)
		return sound.Silent{}
	}

	if cfg.WatchSounds {
		go func() {
			if err := sink.Watch(ctx); err != nil {
				log.Printf("Sound: hot reload disabled: %v", err)
			}
		}()
	}

	return sink
}

func logRecentGames(ctx context.Context, history *storage.History) {
	sessions, err := history.Recent(ctx, 5)
	if err != nil {
		log.Printf("Failed to read recent games: %v", err)
		return
	}
	for _, s := range sessions {
		log.Printf("Recent game %s: score %d, length %d, %v, %s",
			s.ID, s.Score, s.Length, s.Outcome, s.Duration().Round(time.Second))
	}
}
