package feedback

import (
	"bytes"
	"log"
	"sync"

	"github.com/ebitengine/oto/v3"
)

// Output plays a rendered PCM buffer. Satisfied by the oto-backed player
// and by test fakes.
type Output interface {
	Play(pcm []byte)
}

// Player plays rendered PCM through the default audio device. Audio is
// best-effort: a device that cannot be opened logs once and every
// subsequent play becomes a no-op, so scanning keeps working on hosts
// without sound hardware.
type Player struct {
	sampleRate int

	mu     sync.Mutex
	otoCtx *oto.Context
	ready  chan struct{}
	failed bool
}

// NewPlayer creates a player at DefaultSampleRate. The audio device is
// opened lazily on the first play.
func NewPlayer() *Player {
	return &Player{sampleRate: DefaultSampleRate}
}

// Play queues the PCM buffer on the audio device and returns without
// waiting for playback to finish.
func (p *Player) Play(pcm []byte) {
	if len(pcm) == 0 {
		return
	}
	ctx := p.context()
	if ctx == nil {
		return
	}
	player := ctx.NewPlayer(bytes.NewReader(pcm))
	player.Play()
}

func (p *Player) context() *oto.Context {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.failed {
		return nil
	}
	if p.otoCtx != nil {
		<-p.ready
		return p.otoCtx
	}

	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   p.sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		log.Printf("⚠️ Audio device unavailable, tones disabled: %v", err)
		p.failed = true
		return nil
	}
	p.otoCtx = ctx
	p.ready = ready
	<-ready
	return ctx
}

// ToneSounder adapts an Output into the four scan cues the terminal emits.
type ToneSounder struct {
	out   Output
	synth *Synth
}

// NewToneSounder wires the cue set to an output.
func NewToneSounder(out Output) *ToneSounder {
	return &ToneSounder{out: out, synth: NewSynth()}
}

func (s *ToneSounder) Beep()       { s.play(Beep) }
func (s *ToneSounder) Success()    { s.play(Success) }
func (s *ToneSounder) Error()      { s.play(Error) }
func (s *ToneSounder) Completion() { s.play(Completion) }

func (s *ToneSounder) play(t Tone) {
	if s.out == nil {
		return
	}
	s.out.Play(s.synth.Render(t))
}
