package audio

import (
	"log"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"
)

const (
	sampleRate    = beep.SampleRate(44100)
	clickFreq     = 880
	clickDuration = 30 * time.Millisecond
)

// Clicker plays a short tone each time a cell is toggled by hand
type Clicker struct {
	freq float64
}

// NewClicker opens the speaker. The caller must Close it.
func NewClicker() (*Clicker, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, errors.Wrap(err, "[NewClicker] failed to open speaker")
	}
	if _, err := Tone(clickFreq); err != nil {
		speaker.Close()
		return nil, err
	}
	return &Clicker{freq: clickFreq}, nil
}

// Tone returns a fresh click stream at freq Hz
func Tone(freq float64) (beep.Streamer, error) {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return nil, errors.Wrap(err, "[Tone] failed to build sine tone")
	}
	return beep.Take(sampleRate.N(clickDuration), sine), nil
}

// Click plays one click without waiting for it to finish
func (c *Clicker) Click() {
	tone, err := Tone(c.freq)
	if err != nil {
		log.Printf("Click skipped: %v", err)
		return
	}
	speaker.Play(tone)
}

// Close releases the speaker
func (c *Clicker) Close() {
	speaker.Close()
}
