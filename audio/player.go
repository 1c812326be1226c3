package audio

import (
	"time"

	"snake-arcade/game"
	"snake-arcade/pkg/log"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Output plays finished streamers. The speaker satisfies it in production.
type Output interface {
	Play(s ...beep.Streamer)
}

type speakerOutput struct{}

func (speakerOutput) Play(s ...beep.Streamer) { speaker.Play(s...) }

// Player turns engine notifications into sound effects. It never blocks
// the caller: streamers are handed to the output mixer and return.
type Player struct {
	out      Output
	rate     beep.SampleRate
	volume   float64
	logger   *log.Logger
	speaker  bool
	moveTick bool
}

// NewPlayer initializes the system speaker. An error means no audio device
// is available; callers usually log it and continue without sound.
func NewPlayer(volume float64, logger *log.Logger) (*Player, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, err
	}
	p := NewPlayerWithOutput(speakerOutput{}, sampleRate, volume, logger)
	p.speaker = true
	return p, nil
}

// NewPlayerWithOutput builds a player on an arbitrary output.
func NewPlayerWithOutput(out Output, rate beep.SampleRate, volume float64, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.Default()
	}
	return &Player{
		out:    out,
		rate:   rate,
		volume: volume,
		logger: logger,
	}
}

// SetMoveTick enables a faint click on every move.
func (p *Player) SetMoveTick(on bool) {
	p.moveTick = on
}

func (p *Player) OnEvent(ev game.Event) {
	switch ev.Type {
	case game.EventCountdownTick, game.EventCollected:
		p.out.Play(CreateClickSound(p.rate, p.volume))
	case game.EventGameOver:
		p.out.Play(CreateGameOverSound(p.rate, p.volume))
	case game.EventMoved:
		if p.moveTick {
			p.out.Play(CreateClickSound(p.rate, p.volume*0.2))
		}
	default:
		return
	}
	p.logger.Trace("Played sound for %s", ev.Type)
}

func (p *Player) Close() {
	if p.speaker {
		speaker.Close()
	}
}
