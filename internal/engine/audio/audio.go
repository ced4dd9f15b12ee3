// Package audio synthesizes the bounce click of the bouncing-balls scene.
package audio

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
)

// DefaultSampleRate is the default sample rate for audio playback.
const DefaultSampleRate = beep.SampleRate(44100)

// MaxVoices caps how many clicks play at once.
const MaxVoices = 8

// effects.Volume with Base 2 counts in doublings of amplitude.
var dbPerDoubling = volumeToDb(2)

// ErrNotInitialized is returned when playing before Init.
var ErrNotInitialized = errors.New("audio not initialized")

// Manager owns the speaker and a mixer the clicks are added to.
type Manager struct {
	mu sync.RWMutex

	initialized bool
	sampleRate  beep.SampleRate
	volume      float64 // 0.0 to 1.0

	mixer *beep.Mixer
}

// New creates a new audio manager.
func New(volume float64) *Manager {
	return &Manager{
		sampleRate: DefaultSampleRate,
		volume:     clamp(volume, 0, 1),
		mixer:      &beep.Mixer{},
	}
}

// Init initializes the speaker and starts the mixer.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	if err := speaker.Init(m.sampleRate, m.sampleRate.N(time.Second/30)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(m.mixer)

	m.initialized = true
	return nil
}

// Close shuts down the audio system.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	m.initialized = false
}

// IsInitialized returns whether the audio system is initialized.
func (m *Manager) IsInitialized() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.initialized
}

// SetVolume sets the volume (0.0 to 1.0).
func (m *Manager) SetVolume(vol float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.volume = clamp(vol, 0, 1)
}

// Volume returns the volume.
func (m *Manager) Volume() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.volume
}

// PlayBounce plays one click. strength in [0, 1] scales loudness and
// pitch. Clicks beyond MaxVoices are dropped.
func (m *Manager) PlayBounce(strength float64) error {
	m.mu.RLock()
	initialized := m.initialized
	vol := m.volume * clamp(strength, 0, 1)
	rate := m.sampleRate
	m.mu.RUnlock()

	if !initialized {
		return ErrNotInitialized
	}
	if vol <= 0 {
		return nil
	}

	speaker.Lock()
	defer speaker.Unlock()
	if m.mixer.Len() >= MaxVoices {
		return nil
	}
	m.mixer.Add(&effects.Volume{
		Streamer: newClick(rate, 180+220*strength, 60*time.Millisecond),
		Base:     2,
		Volume:   volumeToDb(vol) / dbPerDoubling,
	})
	return nil
}

// click is an exponentially decaying sine.
type click struct {
	pos, n int
	phase  float64 // radians per sample
	decay  float64 // per-sample amplitude factor
	amp    float64
}

func newClick(rate beep.SampleRate, freq float64, d time.Duration) *click {
	n := rate.N(d)
	if n < 1 {
		n = 1
	}
	return &click{
		n:     n,
		phase: 2 * math.Pi * freq / float64(rate),
		// Fall to 1% by the end.
		decay: math.Pow(0.01, 1/float64(n)),
		amp:   1,
	}
}

func (c *click) Stream(samples [][2]float64) (n int, ok bool) {
	if c.pos >= c.n {
		return 0, false
	}
	for i := range samples {
		if c.pos >= c.n {
			return i, true
		}
		v := c.amp * math.Sin(c.phase*float64(c.pos))
		samples[i][0], samples[i][1] = v, v
		c.amp *= c.decay
		c.pos++
	}
	return len(samples), true
}

func (c *click) Err() error { return nil }

// volumeToDb converts a 0-1 volume to decibel scale.
// vol=1 -> 0dB, vol=0.5 -> -6dB, vol=0.25 -> -12dB.
func volumeToDb(vol float64) float64 {
	if vol <= 0 {
		return -100 // Effectively silent
	}
	return 20 * math.Log10(vol)
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
