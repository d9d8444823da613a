package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
)

// drain streams s to completion and returns every sample
func drain(s beep.Streamer) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, 256)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
}

func TestPopSoundRangeAndLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	pop, err := CreatePopSound(rate, 3, 0.8)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	samples := drain(pop)
	want := rate.N(PopDuration)
	if len(samples) != want {
		t.Errorf("Expected %d samples, got %d", want, len(samples))
	}

	for i, s := range samples {
		if s[0] < -1 || s[0] > 1 || s[1] < -1 || s[1] > 1 {
			t.Fatalf("Sample %d out of range: %v", i, s)
		}
	}
}

func TestPopSoundEnvelopeEdges(t *testing.T) {
	rate := beep.SampleRate(44100)
	pop, err := CreatePopSound(rate, 1, 1)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	samples := drain(pop)
	if len(samples) == 0 {
		t.Fatal("Expected samples")
	}
	if samples[0][0] != 0 {
		t.Errorf("Expected silent first sample from attack ramp, got %f", samples[0][0])
	}
	last := samples[len(samples)-1][0]
	if math.Abs(last) > 0.05 {
		t.Errorf("Expected near-silent tail from release, got %f", last)
	}
}

func TestPopFrequency(t *testing.T) {
	tests := []struct {
		n    int
		want float64
	}{
		{0, PopBaseFreq},
		{1, PopBaseFreq},
		{13, PopBaseFreq * 2},
		{100, PopBaseFreq * 2},
	}

	for _, tt := range tests {
		if got := PopFrequency(tt.n); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("PopFrequency(%d): expected %f, got %f", tt.n, tt.want, got)
		}
	}
}

func TestEnvelopeStopsAtDuration(t *testing.T) {
	rate := beep.SampleRate(8000)
	tone, err := generators.SineTone(rate, 200)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	env := NewEnvelope(tone, 10*time.Millisecond, time.Millisecond, time.Millisecond, rate)
	samples := drain(env)
	if len(samples) != rate.N(10*time.Millisecond) {
		t.Errorf("Expected %d samples, got %d", rate.N(10*time.Millisecond), len(samples))
	}
}

func TestZeroVolumeSilent(t *testing.T) {
	rate := beep.SampleRate(8000)
	pop, err := CreatePopSound(rate, 2, 0)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	for i, s := range drain(pop) {
		if s[0] != 0 || s[1] != 0 {
			t.Fatalf("Sample %d: expected silence, got %v", i, s)
		}
	}
}

func TestChimeNoopBeforeStart(t *testing.T) {
	c := NewChime(0, 2)
	if c.rate != DefaultSampleRate {
		t.Errorf("Expected default sample rate, got %d", c.rate)
	}
	if c.volume != 1 {
		t.Errorf("Expected volume clamped to 1, got %f", c.volume)
	}
	// Must not touch the speaker
	c.Launched(5)
	c.Close()
}
