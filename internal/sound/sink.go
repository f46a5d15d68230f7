package sound

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"math"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"golang.org/x/sync/errgroup"
)

const SampleRate = 44100

type Cue int

const (
	CueMove Cue = iota
	CueEat
	CueGameOver
)

func (c Cue) String() string {
	switch c {
	case CueMove:
		return "move"
	case CueEat:
		return "eat"
	case CueGameOver:
		return "game over"
	}
	return "unknown"
}

type beep struct {
	freq float64
	dur  float64
}

// Fallback tones for cues whose file is missing.
var fallbackBeeps = map[Cue]beep{
	CueMove:     {freq: 660, dur: 0.04},
	CueEat:      {freq: 880, dur: 0.1},
	CueGameOver: {freq: 220, dur: 0.5},
}

// player is the part of *audio.Player the sink uses.
type player interface {
	SetPosition(offset time.Duration) error
	Play()
	Close() error
}

// Sink plays the three game cues through a shared audio context.
type Sink struct {
	sampleRate int
	newPlayer  func(pcm []byte) player
	paths      map[Cue]string

	mu      sync.Mutex
	players map[Cue]player
}

// NewSink decodes every cue file concurrently. A missing file is replaced by
// a synthesized beep; a file that exists but cannot be decoded is an error.
func NewSink(ctx *audio.Context, paths map[Cue]string) (*Sink, error) {
	return newSink(ctx.SampleRate(), paths, func(pcm []byte) player {
		return ctx.NewPlayerFromBytes(pcm)
	})
}

func newSink(sampleRate int, paths map[Cue]string, newPlayer func([]byte) player) (*Sink, error) {
	s := &Sink{
		sampleRate: sampleRate,
		newPlayer:  newPlayer,
		paths:      paths,
		players:    make(map[Cue]player, len(paths)),
	}

	pcm := make(map[Cue][]byte, len(paths))
	var mu sync.Mutex

	var g errgroup.Group
	for cue, path := range paths {
		cue, path := cue, path
		g.Go(func() error {
			data, err := loadCue(sampleRate, cue, path)
			if err != nil {
				return err
			}
			mu.Lock()
			pcm[cue] = data
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for cue, data := range pcm {
		s.players[cue] = newPlayer(data)
	}
	return s, nil
}

func loadCue(sampleRate int, cue Cue, path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("Sound: %s not found, using a beep for the %v cue", path, cue)
		b := fallbackBeeps[cue]
		return synthBeep(sampleRate, b.freq, b.dur), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	pcm, err := decodeWAV(sampleRate, data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return pcm, nil
}

func decodeWAV(sampleRate int, data []byte) ([]byte, error) {
	stream, err := wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return io.ReadAll(stream)
}

// synthBeep renders a decaying sine tone as 16-bit little-endian stereo PCM.
func synthBeep(sampleRate int, freq, durSec float64) []byte {
	n := int(float64(sampleRate) * durSec)
	buf := make([]byte, n*4)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(sampleRate)
		envelope := math.Exp(-3 * t)
		v := int16(math.Sin(2*math.Pi*freq*t) * 6000 * envelope)
		for ch := 0; ch < 2; ch++ {
			idx := i*4 + ch*2
			buf[idx] = byte(v)
			buf[idx+1] = byte(v >> 8)
		}
	}
	return buf
}

func (s *Sink) PlayMove() { s.play(CueMove) }
func (s *Sink) PlayEat() { s.play(CueEat) }
func (s *Sink) PlayGameOver() { s.play(CueGameOver) }

// play never blocks and never fails the caller.
func (s *Sink) play(cue Cue) {
	s.mu.Lock()
	p := s.players[cue]
	s.mu.Unlock()

	if p == nil {
		return
	}
	if err := p.SetPosition(0); err != nil {
		log.Printf("Error playing %v sound: %v", cue, err)
		return
	}
	p.Play()
}

// Reload re-reads the file behind cue and swaps its player.
func (s *Sink) Reload(cue Cue) error {
	path, ok := s.paths[cue]
	if !ok {
		return fmt.Errorf("no file configured for the %v cue", cue)
	}

	data, err := loadCue(s.sampleRate, cue, path)
	if err != nil {
		return err
	}
	p := s.newPlayer(data)

	s.mu.Lock()
	old := s.players[cue]
	s.players[cue] = p
	s.mu.Unlock()

	if old != nil {
		old.Close()
	}
	log.Printf("Sound: reloaded %v cue from %s", cue, path)
	return nil
}

func (s *Sink) cueFor(name string) (Cue, bool) {
	name = filepath.Clean(name)
	for cue, path := range s.paths {
		if filepath.Clean(path) == name {
			return cue, true
		}
	}
	return 0, false
}

// Silent discards every cue.
type Silent struct{}

func (Silent) PlayMove() {}
func (Silent) PlayEat() {}
func (Silent) PlayGameOver() {}
