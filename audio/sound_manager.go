// Package audio plays the dialogue blip and notification chime cues
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)

	blipFreq     = 660
	blipDuration = 25 * time.Millisecond
	// blipMinGap throttles blips so fast reveals do not stack into noise
	blipMinGap = 45 * time.Millisecond

	chimeLow      = 784
	chimeHigh     = 1175
	chimeDuration = 500 * time.Millisecond

	testToneFreq     = 880
	testToneDuration = 80 * time.Millisecond
)

// SoundManager mixes short generated cues onto the speaker
// Every method is safe to call before Initialize or after a failed Initialize
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	enabled     bool
	volume      float64
	lastBlip    time.Time
	now         func() time.Time
}

// NewSoundManager creates an enabled manager at full volume
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer:   &beep.Mixer{},
		enabled: true,
		volume:  1,
		now:     time.Now,
	}
}

// Initialize opens the speaker; a failure leaves the manager silent
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences the mixer and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// SetEnabled mutes or unmutes all cues
func (sm *SoundManager) SetEnabled(enabled bool) {
	sm.mu.Lock()
	sm.enabled = enabled
	sm.mu.Unlock()
}

// SetVolume sets the linear cue volume, clamped to [0,1]
func (sm *SoundManager) SetVolume(vol float64) {
	sm.mu.Lock()
	sm.volume = math.Max(0, math.Min(1, vol))
	sm.mu.Unlock()
}

// Blip plays the text reveal tick, throttled to one per blipMinGap
func (sm *SoundManager) Blip() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	now := sm.now()
	if now.Sub(sm.lastBlip) < blipMinGap {
		return
	}
	sm.lastBlip = now
	sm.play(NewBlipGenerator(sampleRate, blipFreq, blipDuration))
}

// Chime plays the notification cue
func (sm *SoundManager) Chime() {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.play(NewChimeGenerator(sampleRate, chimeLow, chimeHigh, chimeDuration))
}

// TestTone plays a plain sine beep so the player can check the output device
func (sm *SoundManager) TestTone() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sine, err := generators.SineTone(sampleRate, testToneFreq)
	if err != nil {
		return
	}
	sm.play(beep.Take(sampleRate.N(testToneDuration), sine))
}

// play adds s to the mixer; callers hold sm.mu
func (sm *SoundManager) play(s beep.Streamer) {
	if !sm.initialized || !sm.enabled {
		return
	}
	speaker.Lock()
	sm.mixer.Add(withVolume(s, sm.volume))
	speaker.Unlock()
}

// withVolume wraps s with a base-2 volume for linear vol in [0,1]
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
