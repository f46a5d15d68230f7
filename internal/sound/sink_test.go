package sound

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

// encodeWAV wraps 16-bit stereo PCM in a minimal RIFF header.
func encodeWAV(pcm []byte, sampleRate int) []byte {
	var buf bytes.Buffer
	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, uint32(36+len(pcm)))
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16))
	binary.Write(&buf, binary.LittleEndian, uint16(1))
	binary.Write(&buf, binary.LittleEndian, uint16(2))
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate*4))
	binary.Write(&buf, binary.LittleEndian, uint16(4))
	binary.Write(&buf, binary.LittleEndian, uint16(16))
	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, uint32(len(pcm)))
	buf.Write(pcm)
	return buf.Bytes()
}

func TestSynthBeepLength(t *testing.T) {
	pcm := synthBeep(SampleRate, 440, 0.1)
	if want := int(SampleRate*0.1) * 4; len(pcm) != want {
		t.Errorf("len = %d, want %d", len(pcm), want)
	}

	silent := true
	for _, b := range pcm {
		if b != 0 {
			silent = false
			break
		}
	}
	if silent {
		t.Error("beep is silent")
	}
}

func TestDecodeWAV(t *testing.T) {
	pcm := synthBeep(SampleRate, 880, 0.05)

	got, err := decodeWAV(SampleRate, encodeWAV(pcm, SampleRate))
	if err != nil {
		t.Fatalf("decodeWAV: %v", err)
	}
	if !bytes.Equal(got, pcm) {
		t.Errorf("decoded %d bytes, want the original %d", len(got), len(pcm))
	}
}

func TestLoadCueFallsBackToBeep(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.wav")

	pcm, err := loadCue(SampleRate, CueEat, path)
	if err != nil {
		t.Fatalf("loadCue: %v", err)
	}
	b := fallbackBeeps[CueEat]
	if want := synthBeep(SampleRate, b.freq, b.dur); !bytes.Equal(pcm, want) {
		t.Error("missing file did not fall back to the eat beep")
	}
}

func TestLoadCueRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.wav")
	if err := os.WriteFile(path, []byte("not a wav file"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := loadCue(SampleRate, CueMove, path); err == nil {
		t.Error("loadCue accepted a corrupt file")
	}
}

func TestCueFor(t *testing.T) {
	dir := t.TempDir()
	s := &Sink{paths: map[Cue]string{
		CueMove:     filepath.Join(dir, "Movement.wav"),
		CueEat:      filepath.Join(dir, "EatApple.wav"),
		CueGameOver: filepath.Join(dir, "GameOver.wav"),
	}}

	cue, ok := s.cueFor(filepath.Join(dir, ".", "EatApple.wav"))
	if !ok || cue != CueEat {
		t.Errorf("cueFor(EatApple.wav) = %v, %v", cue, ok)
	}
	if _, ok := s.cueFor(filepath.Join(dir, "other.wav")); ok {
		t.Error("unrelated file mapped to a cue")
	}
}

type fakePlayer struct {
	pcm       []byte
	rewindErr error
	rewinds   int
	plays     int
	closed    bool
}

func (p *fakePlayer) SetPosition(time.Duration) error {
	p.rewinds++
	return p.rewindErr
}

func (p *fakePlayer) Play() { p.plays++ }

func (p *fakePlayer) Close() error {
	p.closed = true
	return nil
}

// playerLog hands out fake players and remembers them in creation order.
type playerLog struct {
	mu      sync.Mutex
	players []*fakePlayer
}

func (l *playerLog) newPlayer(pcm []byte) player {
	l.mu.Lock()
	defer l.mu.Unlock()
	p := &fakePlayer{pcm: pcm}
	l.players = append(l.players, p)
	return p
}

func (l *playerLog) last() *fakePlayer {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.players) == 0 {
		return nil
	}
	return l.players[len(l.players)-1]
}

func writeCue(t *testing.T, path string, freq float64) []byte {
	t.Helper()
	pcm := synthBeep(SampleRate, freq, 0.05)
	if err := os.WriteFile(path, encodeWAV(pcm, SampleRate), 0644); err != nil {
		t.Fatal(err)
	}
	return pcm
}

func TestPlayRewindsBeforePlaying(t *testing.T) {
	var log playerLog
	s, err := newSink(SampleRate, map[Cue]string{
		CueEat: filepath.Join(t.TempDir(), "missing.wav"),
	}, log.newPlayer)
	if err != nil {
		t.Fatalf("newSink: %v", err)
	}

	s.PlayEat()
	s.PlayEat()
	s.PlayMove()

	p := log.last()
	if p.rewinds != 2 || p.plays != 2 {
		t.Errorf("rewinds/plays = %d/%d, want 2/2", p.rewinds, p.plays)
	}

	p.rewindErr = errors.New("device lost")
	s.PlayEat()
	if p.plays != 2 {
		t.Errorf("played after a failed rewind, plays = %d", p.plays)
	}
}

func TestReloadSwapsPlayer(t *testing.T) {
	path := filepath.Join(t.TempDir(), "EatApple.wav")
	writeCue(t, path, 440)

	var log playerLog
	s, err := newSink(SampleRate, map[Cue]string{CueEat: path}, log.newPlayer)
	if err != nil {
		t.Fatalf("newSink: %v", err)
	}
	old := log.last()

	want := writeCue(t, path, 880)
	if err := s.Reload(CueEat); err != nil {
		t.Fatalf("Reload: %v", err)
	}

	fresh := log.last()
	if fresh == old {
		t.Fatal("Reload did not create a new player")
	}
	if !bytes.Equal(fresh.pcm, want) {
		t.Error("new player does not hold the rewritten file")
	}
	if !old.closed {
		t.Error("old player was not closed")
	}

	s.PlayEat()
	if fresh.plays != 1 || old.plays != 0 {
		t.Errorf("plays new/old = %d/%d, want 1/0", fresh.plays, old.plays)
	}

	if err := s.Reload(CueMove); err == nil {
		t.Error("Reload of an unconfigured cue succeeded")
	}
}

func TestReloadKeepsPlayerOnCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "GameOver.wav")
	writeCue(t, path, 220)

	var log playerLog
	s, err := newSink(SampleRate, map[Cue]string{CueGameOver: path}, log.newPlayer)
	if err != nil {
		t.Fatalf("newSink: %v", err)
	}
	old := log.last()

	if err := os.WriteFile(path, []byte("not a wav file"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := s.Reload(CueGameOver); err == nil {
		t.Fatal("Reload accepted a corrupt file")
	}

	s.PlayGameOver()
	if old.closed || old.plays != 1 {
		t.Errorf("old player closed=%v plays=%d, want it kept", old.closed, old.plays)
	}
}

func TestWatchReloadsChangedCue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Movement.wav")
	writeCue(t, path, 440)

	var log playerLog
	s, err := newSink(SampleRate, map[Cue]string{CueMove: path}, log.newPlayer)
	if err != nil {
		t.Fatalf("newSink: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.Watch(ctx)
	}()

	// The watcher starts asynchronously, so keep rewriting until it notices.
	var want []byte
	deadline := time.Now().Add(5 * time.Second)
	for {
		if want != nil && bytes.Equal(log.last().pcm, want) {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("cue was not reloaded after the file changed")
		}
		want = writeCue(t, path, 660)
		time.Sleep(50 * time.Millisecond)
	}

	cancel()
	select {
	case err := <-errCh:
		if err != nil {
			t.Errorf("Watch: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Error("Watch did not stop after cancel")
	}
}
