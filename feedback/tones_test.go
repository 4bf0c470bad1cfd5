package feedback

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeSample(pcm []byte, i int) int16 {
	return int16(uint16(pcm[2*i]) | uint16(pcm[2*i+1])<<8)
}

func TestRenderSingleNoteLength(t *testing.T) {
	s := NewSynth()
	pcm := s.Render(Beep)

	// 80ms at 44.1kHz, two bytes per sample.
	want := int(0.08*float64(DefaultSampleRate)) * 2
	assert.Equal(t, want, len(pcm))
}

func TestRenderMultiNoteOverlap(t *testing.T) {
	s := NewSynth()
	pcm := s.Render(Success)

	// Two 150ms notes with the second starting at 75% of the first:
	// total length is 1.75 note durations.
	note := int(0.15 * float64(DefaultSampleRate))
	step := int(0.15 * 0.75 * float64(DefaultSampleRate))
	assert.Equal(t, (step+note)*2, len(pcm))
}

func TestRenderAmplitudeDecays(t *testing.T) {
	s := NewSynth()
	pcm := s.Render(Beep)
	require.NotEmpty(t, pcm)

	n := len(pcm) / 2
	peak := func(from, to int) int16 {
		var max int16
		for i := from; i < to; i++ {
			v := decodeSample(pcm, i)
			if v < 0 {
				v = -v
			}
			if v > max {
				max = v
			}
		}
		return max
	}

	head := peak(0, n/4)
	tail := peak(3*n/4, n)
	assert.Greater(t, head, tail, "tone should decay toward silence")
	assert.Greater(t, int(head), 0)
}

func TestRenderVolumeBoundsSamples(t *testing.T) {
	s := NewSynth()
	pcm := s.Render(Tone{Frequencies: []float64{440}, Duration: 0.05, Wave: WaveSquare, Volume: 0.5})

	limit := int16(0.5*32767) + 1
	for i := 0; i < len(pcm)/2; i++ {
		v := decodeSample(pcm, i)
		if v < 0 {
			v = -v
		}
		require.LessOrEqual(t, v, limit)
	}
}

func TestRenderEmptyToneIsNil(t *testing.T) {
	s := NewSynth()
	assert.Nil(t, s.Render(Tone{}))
	assert.Nil(t, s.Render(Tone{Frequencies: []float64{440}}))
}

type captureOutput struct {
	buffers [][]byte
}

func (c *captureOutput) Play(pcm []byte) {
	c.buffers = append(c.buffers, pcm)
}

func TestToneSounderEmitsEachCue(t *testing.T) {
	out := &captureOutput{}
	snd := NewToneSounder(out)

	snd.Beep()
	snd.Success()
	snd.Error()
	snd.Completion()

	require.Len(t, out.buffers, 4)
	for _, buf := range out.buffers {
		assert.NotEmpty(t, buf)
	}
	// Completion carries three notes, so it is the longest cue.
	assert.Greater(t, len(out.buffers[3]), len(out.buffers[1]))
}

func TestToneSounderNilOutputIsSilent(t *testing.T) {
	snd := NewToneSounder(nil)
	assert.NotPanics(t, func() {
		snd.Beep()
		snd.Error()
	})
}
