package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/pollo-run/internal/games/pollo/sim"
)

var _ sim.Notifier = (*SoundManager)(nil)

func TestUninitializedManagerIsSilent(t *testing.T) {
	sm := NewSoundManager(0.5)
	if sm.Enabled() {
		t.Fatal("new manager should not be enabled before Initialize")
	}

	// Must not touch the speaker
	sm.PlaySound(sim.SoundCoin)
	sm.UpdateBar(sim.BarHealth, 50)
	sm.ShowResult(sim.ResultWon)
	sm.Cleanup()
}

func TestEveryCueTerminates(t *testing.T) {
	for s := sim.SoundJump; s <= sim.SoundLose; s++ {
		streamer := Cue(s)
		if streamer == nil {
			t.Errorf("Cue(%v) = nil", s)
			continue
		}

		total := 0
		buf := make([][2]float64, 512)
		for i := 0; i < 1000; i++ {
			n, ok := streamer.Stream(buf)
			total += n
			for j := 0; j < n; j++ {
				if buf[j][0] < -1 || buf[j][0] > 1 {
					t.Fatalf("Cue(%v) sample %d out of range: %f", s, j, buf[j][0])
				}
			}
			if !ok {
				break
			}
		}
		if total == 0 {
			t.Errorf("Cue(%v) produced no samples", s)
		}
		if total > sampleRate.N(2*time.Second) {
			t.Errorf("Cue(%v) ran for %d samples, expected a short cue", s, total)
		}
	}

	if Cue(sim.Sound(999)) != nil {
		t.Error("unknown sound should have no cue")
	}
}

func TestOscillatorLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(440, 10*time.Millisecond, WaveSine, rate)

	buf := make([][2]float64, 1000)
	n, ok := osc.Stream(buf)
	if !ok || n != rate.N(10*time.Millisecond) {
		t.Errorf("Stream() = %d, %v, expected %d samples", n, ok, rate.N(10*time.Millisecond))
	}

	n, ok = osc.Stream(buf)
	if ok || n != 0 {
		t.Errorf("exhausted oscillator Stream() = %d, %v, expected 0, false", n, ok)
	}
}

func TestEnvelopeFades(t *testing.T) {
	rate := beep.SampleRate(1000)
	shaped := NewEnvelope(NewOscillator(0, 100*time.Millisecond, WaveSquare, rate), 100*time.Millisecond, 10*time.Millisecond, 10*time.Millisecond, rate)

	buf := make([][2]float64, 100)
	n, _ := shaped.Stream(buf)
	if n != 100 {
		t.Fatalf("Stream() = %d, expected 100", n)
	}
	if buf[0][0] != 0 {
		t.Errorf("first sample = %f, expected 0 at the start of the attack", buf[0][0])
	}
	if buf[50][0] != 1 {
		t.Errorf("sustain sample = %f, expected 1", buf[50][0])
	}
	if buf[99][0] >= buf[91][0] {
		t.Errorf("release should fade: %f then %f", buf[91][0], buf[99][0])
	}
}
