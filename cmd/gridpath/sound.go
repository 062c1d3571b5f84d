package main

import (
	"log"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
	toneFound  = 880.0
	toneFailed = 220.0
	toneLength = 120 * time.Millisecond
)

// chime plays a short high tone when a route was found and a low one when
// it was not, and waits for it to finish or time out. Audio failures are
// logged and otherwise ignored.
func chime(found bool) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		log.Printf("Audio initialization failed: %v", err)
		return
	}
	defer speaker.Close()

	freq := toneFailed
	if found {
		freq = toneFound
	}
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		log.Printf("Audio tone failed: %v", err)
		return
	}

	done := make(chan struct{})
	speaker.Play(beep.Seq(
		beep.Take(sampleRate.N(toneLength), sine),
		beep.Callback(func() { close(done) }),
	))
	select {
	case <-done:
	case <-time.After(toneLength + time.Second):
		log.Printf("Audio playback timed out")
	}
}
