package audio

import (
	"errors"
	"math"
	"testing"
	"time"
)

func TestVolumeConversion(t *testing.T) {
	tests := []struct {
		vol float64
		min float64
		max float64
	}{
		{1.0, -1, 1},     // Full volume should be ~0dB
		{0.5, -8, -4},    // Half volume should be around -6dB
		{0.25, -14, -10}, // Quarter volume should be around -12dB
		{0.0, -200, -90}, // Zero volume should be very negative
	}

	for _, tt := range tests {
		db := volumeToDb(tt.vol)
		if db < tt.min || db > tt.max {
			t.Errorf("volumeToDb(%f) = %f, want between %f and %f", tt.vol, db, tt.min, tt.max)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, min, max, want float64
	}{
		{0.5, 0, 1, 0.5},
		{-1, 0, 1, 0},
		{2, 0, 1, 1},
		{0, 0, 1, 0},
		{1, 0, 1, 1},
	}

	for _, tt := range tests {
		got := clamp(tt.v, tt.min, tt.max)
		if got != tt.want {
			t.Errorf("clamp(%f, %f, %f) = %f, want %f", tt.v, tt.min, tt.max, got, tt.want)
		}
	}
}

func TestNewManager(t *testing.T) {
	m := New(0.6)
	if m.Volume() != 0.6 {
		t.Errorf("volume = %f, want 0.6", m.Volume())
	}
	if m.IsInitialized() {
		t.Error("new manager should not be initialized")
	}

	if New(3).Volume() != 1 {
		t.Error("constructor should clamp volume")
	}
}

func TestSetVolume(t *testing.T) {
	m := New(1)

	m.SetVolume(0.5)
	if m.Volume() != 0.5 {
		t.Errorf("volume = %f, want 0.5", m.Volume())
	}

	m.SetVolume(2.0)
	if m.Volume() != 1.0 {
		t.Errorf("volume = %f, want 1.0 (clamped)", m.Volume())
	}

	m.SetVolume(-1.0)
	if m.Volume() != 0.0 {
		t.Errorf("volume = %f, want 0.0 (clamped)", m.Volume())
	}
}

func TestPlayBeforeInit(t *testing.T) {
	m := New(1)
	if err := m.PlayBounce(1); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("PlayBounce before Init: got %v, want ErrNotInitialized", err)
	}
	m.Close() // no-op
}

func TestClickDecaysAndEnds(t *testing.T) {
	c := newClick(DefaultSampleRate, 440, 10*time.Millisecond)
	want := DefaultSampleRate.N(10 * time.Millisecond)

	buf := make([][2]float64, 128)
	total := 0
	peakFirst, peakLast := 0.0, 0.0
	for {
		n, ok := c.Stream(buf)
		for i := 0; i < n; i++ {
			v := math.Abs(buf[i][0])
			if buf[i][0] != buf[i][1] {
				t.Fatalf("click should be mono, got %v", buf[i])
			}
			if total+i < 64 && v > peakFirst {
				peakFirst = v
			}
			if total+i >= want-64 && v > peakLast {
				peakLast = v
			}
			if v > 1 {
				t.Fatalf("sample %d out of range: %f", total+i, v)
			}
		}
		total += n
		if !ok {
			break
		}
	}

	if total != want {
		t.Errorf("click length = %d samples, want %d", total, want)
	}
	if peakLast >= peakFirst/10 {
		t.Errorf("click should decay: first peak %f, last peak %f", peakFirst, peakLast)
	}
}
