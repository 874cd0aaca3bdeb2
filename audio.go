package main

import (
	"os"
	"sync"
	"time"
)

// clockProvider simulates audio playback with a wall clock. It exists for
// environments without an audio device: handles track position, looping,
// and finish callbacks exactly like a real backend, just silently.
type clockProvider struct {
	trackDuration time.Duration
}

// newClockProvider returns a provider whose tracks all run for d
func newClockProvider(d time.Duration) *clockProvider {
	return &clockProvider{trackDuration: d}
}

func (p *clockProvider) Create(src AudioSource) (AudioHandle, error) {
	// File-backed tracks must exist; bundled assets always do
	if !src.Bundled {
		if _, err := os.Stat(src.URI); err != nil {
			return nil, err
		}
	}

	h := &clockHandle{
		duration: p.trackDuration.Seconds(),
		volume:   fullVolume,
		closed:   make(chan struct{}),
	}
	go h.run()
	return h, nil
}

type clockHandle struct {
	mu       sync.Mutex
	playing  bool
	looping  bool
	position float64
	duration float64
	volume   float64
	finish   func()
	disposed bool
	closed   chan struct{}
}

func (h *clockHandle) run() {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-h.closed:
			return
		case <-ticker.C:
			h.mu.Lock()
			if !h.playing {
				h.mu.Unlock()
				continue
			}
			h.position++
			if h.position < h.duration {
				h.mu.Unlock()
				continue
			}
			if h.looping {
				// Native loop: restart silently, no finish callback
				h.position = 0
				h.mu.Unlock()
				continue
			}
			h.playing = false
			h.position = h.duration
			fn := h.finish
			h.mu.Unlock()
			if fn != nil {
				fn()
			}
		}
	}
}

func (h *clockHandle) Play() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.disposed {
		return nil
	}
	h.playing = true
	return nil
}

func (h *clockHandle) Pause() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.playing = false
	return nil
}

func (h *clockHandle) Seek(seconds float64) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if seconds < 0 {
		seconds = 0
	}
	if seconds > h.duration {
		seconds = h.duration
	}
	h.position = seconds
	return nil
}

func (h *clockHandle) SetLooping(loop bool) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.looping = loop
	return nil
}

func (h *clockHandle) SetVolume(volume float64) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.volume = volume
	return nil
}

func (h *clockHandle) Status() (AudioStatus, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return AudioStatus{
		PositionSec: h.position,
		DurationSec: h.duration,
		IsPlaying:   h.playing,
	}, nil
}

func (h *clockHandle) OnFinish(fn func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.finish = fn
}

func (h *clockHandle) Dispose() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.disposed {
		return nil
	}
	h.disposed = true
	h.playing = false
	close(h.closed)
	return nil
}
