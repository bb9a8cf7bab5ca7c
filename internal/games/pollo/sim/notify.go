package sim

import (
	"github.com/charmbracelet/log"
)

// Sound names a fire-and-forget audio cue.
type Sound int

const (
	SoundJump Sound = iota
	SoundStomp
	SoundHurt
	SoundCoin
	SoundBottle
	SoundThrow
	SoundSplash
	SoundReaction
	SoundBossAlert
	SoundBossHurt
	SoundBossEnrage
	SoundBossDead
	SoundWin
	SoundLose
)

var soundNames = [...]string{
	SoundJump:       "jump",
	SoundStomp:      "stomp",
	SoundHurt:       "hurt",
	SoundCoin:       "coin",
	SoundBottle:     "bottle",
	SoundThrow:      "throw",
	SoundSplash:     "splash",
	SoundReaction:   "reaction",
	SoundBossAlert:  "boss-alert",
	SoundBossHurt:   "boss-hurt",
	SoundBossEnrage: "boss-enrage",
	SoundBossDead:   "boss-dead",
	SoundWin:        "win",
	SoundLose:       "lose",
}

func (s Sound) String() string {
	if s < 0 || int(s) >= len(soundNames) {
		return "unknown"
	}
	return soundNames[s]
}

// Bar names a status bar.
type Bar int

const (
	BarHealth Bar = iota
	BarCoins
	BarBottles
	BarBoss
)

func (b Bar) String() string {
	switch b {
	case BarHealth:
		return "health"
	case BarCoins:
		return "coins"
	case BarBottles:
		return "bottles"
	case BarBoss:
		return "boss"
	default:
		return "unknown"
	}
}

// Result is the outcome of a finished run.
type Result int

const (
	ResultLost Result = iota
	ResultWon
)

func (r Result) String() string {
	if r == ResultWon {
		return "won"
	}
	return "lost"
}

// Notifier receives fire-and-forget cues from the simulation.
// Implementations must not block and must not call back into the world.
type Notifier interface {
	PlaySound(s Sound)
	UpdateBar(b Bar, percent int)
	ShowResult(r Result)
}

// NopNotifier discards every cue.
type NopNotifier struct{}

func (NopNotifier) PlaySound(Sound) {}
func (NopNotifier) UpdateBar(Bar, int) {}
func (NopNotifier) ShowResult(Result) {}

// BarUpdate is a recorded UpdateBar call.
type BarUpdate struct {
	Bar     Bar
	Percent int
}

// Recorder keeps every cue it receives, in order.
type Recorder struct {
	Sounds  []Sound
	Bars    []BarUpdate
	Results []Result
}

func (r *Recorder) PlaySound(s Sound) { r.Sounds = append(r.Sounds, s) }

func (r *Recorder) UpdateBar(b Bar, percent int) {
	r.Bars = append(r.Bars, BarUpdate{Bar: b, Percent: percent})
}

func (r *Recorder) ShowResult(res Result) { r.Results = append(r.Results, res) }

// Count returns how many times s was played.
func (r *Recorder) Count(s Sound) int {
	n := 0
	for _, got := range r.Sounds {
		if got == s {
			n++
		}
	}
	return n
}

// LastBar returns the most recent percentage sent for b.
func (r *Recorder) LastBar(b Bar) (int, bool) {
	for i := len(r.Bars) - 1; i >= 0; i-- {
		if r.Bars[i].Bar == b {
			return r.Bars[i].Percent, true
		}
	}
	return 0, false
}

// Multi fans every cue out to each notifier in order.
type Multi []Notifier

func (m Multi) PlaySound(s Sound) {
	for _, n := range m {
		n.PlaySound(s)
	}
}

func (m Multi) UpdateBar(b Bar, percent int) {
	for _, n := range m {
		n.UpdateBar(b, percent)
	}
}

func (m Multi) ShowResult(r Result) {
	for _, n := range m {
		n.ShowResult(r)
	}
}

// LogNotifier writes cues to a structured logger.
type LogNotifier struct {
	Logger *log.Logger
}

func (l LogNotifier) PlaySound(s Sound) {
	l.Logger.Debug("sound", "name", s)
}

func (l LogNotifier) UpdateBar(b Bar, percent int) {
	l.Logger.Debug("bar", "name", b, "percent", percent)
}

func (l LogNotifier) ShowResult(r Result) {
	l.Logger.Info("result", "outcome", r)
}
