// Package audio synthesises the game's sound cues with beep and plays
// them fire-and-forget on the system speaker.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/pollo-run/internal/games/pollo/sim"
)

const (
	sampleRate = beep.SampleRate(48000)
)

// SoundManager plays simulation cues. It implements sim.Notifier and is
// silent until Initialize succeeds.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewSoundManager creates a sound manager at the given master volume (0..1).
func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Initialize opens the speaker. On error the manager stays silent.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// Enabled reports whether cues reach the speaker.
func (sm *SoundManager) Enabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// PlaySound queues the cue for s on the mixer.
func (sm *SoundManager) PlaySound(s sim.Sound) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	streamer := Cue(s)
	if streamer == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(newVolume(streamer, sm.volume))
	speaker.Unlock()
}

// UpdateBar has no sound.
func (sm *SoundManager) UpdateBar(sim.Bar, int) {}

// ShowResult has no extra sound; the win and lose cues arrive via PlaySound.
func (sm *SoundManager) ShowResult(sim.Result) {}

// Cue builds the streamer for a sound. Unknown sounds yield nil.
func Cue(s sim.Sound) beep.Streamer {
	ms := time.Millisecond
	switch s {
	case sim.SoundJump:
		return slide(300, 600, 120*ms, sampleRate)
	case sim.SoundStomp:
		return beep.Seq(tone(180, 60*ms, WaveSquare, sampleRate), tone(120, 80*ms, WaveSquare, sampleRate))
	case sim.SoundHurt:
		return tone(110, 180*ms, WaveSaw, sampleRate)
	case sim.SoundCoin:
		return beep.Seq(tone(988, 70*ms, WaveSine, sampleRate), tone(1319, 140*ms, WaveSine, sampleRate))
	case sim.SoundBottle:
		return tone(660, 90*ms, WaveSine, sampleRate)
	case sim.SoundThrow:
		return slide(500, 250, 150*ms, sampleRate)
	case sim.SoundSplash:
		return NewEnvelope(NewOscillator(0, 250*ms, WaveNoise, sampleRate), 250*ms, 2*ms, 200*ms, sampleRate)
	case sim.SoundReaction:
		return beep.Seq(tone(700, 50*ms, WaveSquare, sampleRate), tone(900, 50*ms, WaveSquare, sampleRate))
	case sim.SoundBossAlert:
		return beep.Seq(tone(220, 200*ms, WaveSaw, sampleRate), tone(165, 400*ms, WaveSaw, sampleRate))
	case sim.SoundBossHurt:
		return tone(150, 200*ms, WaveSquare, sampleRate)
	case sim.SoundBossEnrage:
		return slide(80, 400, 600*ms, sampleRate)
	case sim.SoundBossDead:
		return slide(300, 60, 800*ms, sampleRate)
	case sim.SoundWin:
		return beep.Seq(
			tone(523, 120*ms, WaveSine, sampleRate),
			tone(659, 120*ms, WaveSine, sampleRate),
			tone(784, 120*ms, WaveSine, sampleRate),
			tone(1047, 300*ms, WaveSine, sampleRate),
		)
	case sim.SoundLose:
		return beep.Seq(
			tone(392, 200*ms, WaveSaw, sampleRate),
			tone(330, 200*ms, WaveSaw, sampleRate),
			tone(262, 400*ms, WaveSaw, sampleRate),
		)
	default:
		return nil
	}
}
