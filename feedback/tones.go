// Package feedback produces the audible scan cues operators rely on when
// they cannot watch the screen: a short beep on every read, distinct
// success and error tones, and a melody when a box completes.
package feedback

import "math"

// Waveform selects the oscillator shape for a tone.
type Waveform string

const (
	WaveSine   Waveform = "sine"
	WaveSquare Waveform = "square"
)

// Tone is a sequence of notes rendered back to back. When a tone has more
// than one note, each next note starts at 75% of the previous note's
// duration, so the notes overlap slightly and read as one phrase.
type Tone struct {
	Frequencies []float64 // Hz, one note per entry
	Duration    float64   // seconds per note
	Wave        Waveform
	Volume      float64 // peak amplitude, 0..1
}

// Preset tones. Beep fires on every accepted read, Success and Error mirror
// the outcome of a submission, Completion plays when the last pair of a box
// is registered.
var (
	Beep       = Tone{Frequencies: []float64{1200}, Duration: 0.08, Wave: WaveSine, Volume: 0.25}
	Success    = Tone{Frequencies: []float64{660, 880}, Duration: 0.15, Wave: WaveSine, Volume: 0.3}
	Error      = Tone{Frequencies: []float64{330, 220}, Duration: 0.2, Wave: WaveSquare, Volume: 0.2}
	Completion = Tone{Frequencies: []float64{660, 880, 1100}, Duration: 0.15, Wave: WaveSine, Volume: 0.3}
)

// DefaultSampleRate matches what the audio device is opened with.
const DefaultSampleRate = 44100

// noteOverlap is the fraction of a note's duration after which the next
// note begins.
const noteOverlap = 0.75

// decayFloor is the amplitude each note decays to by its end.
const decayFloor = 0.01

// Synth renders tones to 16-bit little-endian mono PCM.
type Synth struct {
	SampleRate int
}

// NewSynth creates a synth at DefaultSampleRate.
func NewSynth() *Synth {
	return &Synth{SampleRate: DefaultSampleRate}
}

// Render produces the PCM byte stream for a tone. Each note decays
// exponentially from the tone's volume down to decayFloor, and overlapping
// notes are mixed additively with clipping at full scale.
func (s *Synth) Render(t Tone) []byte {
	rate := s.SampleRate
	if rate <= 0 {
		rate = DefaultSampleRate
	}
	if len(t.Frequencies) == 0 || t.Duration <= 0 {
		return nil
	}

	noteSamples := int(t.Duration * float64(rate))
	stepSamples := int(t.Duration * noteOverlap * float64(rate))
	total := stepSamples*(len(t.Frequencies)-1) + noteSamples

	mix := make([]float64, total)
	for i, freq := range t.Frequencies {
		offset := i * stepSamples
		for n := 0; n < noteSamples; n++ {
			progress := float64(n) / float64(noteSamples)
			env := t.Volume * math.Pow(decayFloor/1.0, progress)
			phase := 2 * math.Pi * freq * float64(n) / float64(rate)
			mix[offset+n] += env * oscillate(t.Wave, phase)
		}
	}

	out := make([]byte, total*2)
	for i, v := range mix {
		if v > 1 {
			v = 1
		} else if v < -1 {
			v = -1
		}
		sample := int16(v * math.MaxInt16)
		out[2*i] = byte(sample)
		out[2*i+1] = byte(sample >> 8)
	}
	return out
}

func oscillate(w Waveform, phase float64) float64 {
	switch w {
	case WaveSquare:
		if math.Sin(phase) >= 0 {
			return 1
		}
		return -1
	default:
		return math.Sin(phase)
	}
}
