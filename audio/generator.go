package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/word-catch/parameter"
)

// ChirpGenerator synthesises the catch cue: a sine sweeping exponentially from
// ChirpStartFreq to ChirpEndFreq while its gain decays exponentially
// The stream ends after ChirpDuration
type ChirpGenerator struct {
	sr    beep.SampleRate
	pos   int
	total int
	phase float64
}

// NewChirpGenerator creates a chirp for sample rate sr
func NewChirpGenerator(sr beep.SampleRate) *ChirpGenerator {
	return &ChirpGenerator{
		sr:    sr,
		total: sr.N(parameter.ChirpDuration),
	}
}

func (g *ChirpGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.total {
			return i, i > 0
		}
		t := time.Duration(float64(g.pos) / float64(g.sr) * float64(time.Second))

		v := chirpGain(t) * math.Sin(2*math.Pi*g.phase)
		samples[i][0] = v
		samples[i][1] = v

		g.phase += chirpFrequency(t) / float64(g.sr)
		g.phase -= math.Floor(g.phase)
		g.pos++
	}
	return len(samples), true
}

func (g *ChirpGenerator) Err() error {
	return nil
}

// chirpFrequency is the instantaneous sweep frequency, held at the end value after the sweep
func chirpFrequency(t time.Duration) float64 {
	if t >= parameter.ChirpSweep {
		return parameter.ChirpEndFreq
	}
	if t < 0 {
		t = 0
	}
	frac := float64(t) / float64(parameter.ChirpSweep)
	return parameter.ChirpStartFreq * math.Pow(parameter.ChirpEndFreq/parameter.ChirpStartFreq, frac)
}

// chirpGain falls exponentially from ChirpStartGain to ChirpEndGain across the cue
func chirpGain(t time.Duration) float64 {
	if t >= parameter.ChirpDuration {
		return parameter.ChirpEndGain
	}
	if t < 0 {
		t = 0
	}
	frac := float64(t) / float64(parameter.ChirpDuration)
	return parameter.ChirpStartGain * math.Pow(parameter.ChirpEndGain/parameter.ChirpStartGain, frac)
}

// noteGenerator is a decaying sine used by the completion arpeggio
type noteGenerator struct {
	sr    beep.SampleRate
	freq  float64
	pos   int
	total int
}

func newNoteGenerator(sr beep.SampleRate, freq float64, d time.Duration) *noteGenerator {
	return &noteGenerator{sr: sr, freq: freq, total: sr.N(d)}
}

func (g *noteGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.total {
			return i, i > 0
		}
		t := float64(g.pos) / float64(g.sr)
		v := parameter.CompleteNoteGain * math.Exp(-t*parameter.CompleteNoteDecay) * math.Sin(2*math.Pi*g.freq*t)
		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

func (g *noteGenerator) Err() error {
	return nil
}

// NewCompletionStreamer builds the round-complete arpeggio
// Notes start CompleteNoteGap apart and ring for CompleteNoteDur, so neighbours overlap
func NewCompletionStreamer(sr beep.SampleRate) beep.Streamer {
	voices := make([]beep.Streamer, 0, len(parameter.CompleteNotes))
	for i, freq := range parameter.CompleteNotes {
		note := newNoteGenerator(sr, freq, parameter.CompleteNoteDur)
		if i == 0 {
			voices = append(voices, note)
			continue
		}
		delay := beep.Silence(sr.N(time.Duration(i) * parameter.CompleteNoteGap))
		voices = append(voices, beep.Seq(delay, note))
	}
	return beep.Mix(voices...)
}

// CompletionLength is the sample count of the full arpeggio
func CompletionLength(sr beep.SampleRate) int {
	last := len(parameter.CompleteNotes) - 1
	return sr.N(time.Duration(last)*parameter.CompleteNoteGap) + sr.N(parameter.CompleteNoteDur)
}
