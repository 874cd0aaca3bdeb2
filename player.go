package main

import (
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// AudioSource identifies what to load into an audio handle
type AudioSource struct {
	URI     string
	Bundled bool
}

// AudioStatus is a point-in-time snapshot reported by a handle
type AudioStatus struct {
	PositionSec float64
	DurationSec float64
	IsPlaying   bool
}

// AudioHandle is one loaded piece of audio. Handles are owned exclusively by
// the Player; operations may suspend awaiting hardware confirmation.
type AudioHandle interface {
	Play() error
	Pause() error
	Seek(seconds float64) error
	SetLooping(loop bool) error
	SetVolume(volume float64) error
	Status() (AudioStatus, error)
	OnFinish(fn func())
	Dispose() error
}

// AudioProvider creates audio handles from sources
type AudioProvider interface {
	Create(src AudioSource) (AudioHandle, error)
}

type playerState int

const (
	stateIdle playerState = iota
	stateLoading
	statePlaying
	statePaused
)

func (s playerState) String() string {
	switch s {
	case stateLoading:
		return "loading"
	case statePlaying:
		return "playing"
	case statePaused:
		return "paused"
	}
	return "idle"
}

const (
	duckedVolume = 0.1
	fullVolume   = 1.0
)

// PlaybackState is the runtime snapshot shown to the UI layer
type PlaybackState struct {
	Track       *MusicTrack
	Mode        PlaybackMode
	IsPlaying   bool
	IsLoading   bool
	PositionSec float64
	DurationSec float64
	Muted       bool
}

// Player manages the single active audio handle, the current-track pointer,
// and the playback mode. Transitions are serialized by the loading guard:
// a play request arriving while another is in flight is dropped, not queued.
type Player struct {
	mu       sync.Mutex
	provider AudioProvider
	playlist *Playlist

	state       playerState
	mode        PlaybackMode
	current     *MusicTrack
	handle      AudioHandle
	generation  int // bumped on every handle swap; stale finish callbacks check it
	muted       bool
	positionSec float64
	durationSec float64
	stopPoll    chan struct{}

	// Notify surfaces playback errors as one-time user-facing messages
	Notify func(msg string)
}

// NewPlayer returns an idle player in loop-all mode
func NewPlayer(provider AudioProvider, playlist *Playlist) *Player {
	return &Player{
		provider: provider,
		playlist: playlist,
		mode:     ModeLoopAll,
	}
}

func (p *Player) notify(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if p.Notify != nil {
		p.Notify(msg)
	} else {
		slog.Warn(msg)
	}
}

// State returns a snapshot of the playback state
func (p *Player) State() PlaybackState {
	p.mu.Lock()
	defer p.mu.Unlock()

	snap := PlaybackState{
		Mode:        p.mode,
		IsPlaying:   p.state == statePlaying,
		IsLoading:   p.state == stateLoading,
		PositionSec: p.positionSec,
		DurationSec: p.durationSec,
		Muted:       p.muted,
	}
	if p.current != nil {
		t := *p.current
		snap.Track = &t
	}
	return snap
}

// Play makes track current and starts it. If the track is already current
// and merely paused, playback resumes in place without reloading. A request
// arriving while another load is in flight is dropped.
func (p *Player) Play(track MusicTrack) error {
	p.mu.Lock()

	if p.state == stateLoading {
		p.mu.Unlock()
		return nil
	}

	if p.current != nil && p.current.ID == track.ID && p.handle != nil && p.state == statePaused {
		h := p.handle
		gen := p.generation
		p.state = statePlaying
		p.startPollingLocked(gen)
		p.mu.Unlock()
		if err := h.Play(); err != nil {
			p.mu.Lock()
			if p.generation == gen {
				p.state = statePaused
				p.stopPollingLocked()
			}
			p.mu.Unlock()
			p.notify("playback error: %v", err)
			return err
		}
		return nil
	}

	// Enter loading: from here until the transition completes, every other
	// play/toggle/seek request is dropped.
	old := p.handle
	p.handle = nil
	p.state = stateLoading
	p.generation++
	gen := p.generation
	p.stopPollingLocked()
	p.mu.Unlock()

	if old != nil {
		if err := old.Dispose(); err != nil {
			slog.Debug("dispose previous handle", "err", err)
		}
	}

	h, err := p.provider.Create(AudioSource{URI: track.Source, Bundled: track.Bundled})
	if err != nil {
		p.mu.Lock()
		p.state = stateIdle
		p.positionSec = 0
		p.durationSec = 0
		p.mu.Unlock()
		p.notify("could not play %q: %v", track.Title, err)
		return err
	}

	// Still loading, so no other transition can interleave with the setup
	p.mu.Lock()
	mode := p.mode
	muted := p.muted
	p.mu.Unlock()

	h.SetLooping(mode == ModeLoopOne)
	h.OnFinish(func() { p.onNaturalFinish(gen) })
	volume := fullVolume
	if muted {
		volume = 0
	}
	h.SetVolume(volume)

	if err := h.Play(); err != nil {
		h.Dispose()
		p.mu.Lock()
		p.state = stateIdle
		p.mu.Unlock()
		p.notify("could not play %q: %v", track.Title, err)
		return err
	}

	p.mu.Lock()
	t := track
	p.handle = h
	p.current = &t
	p.state = statePlaying
	p.positionSec = 0
	p.durationSec = 0
	p.startPollingLocked(gen)
	p.mu.Unlock()

	return nil
}

// TogglePlayPause flips between playing and paused. With no handle it plays
// the first playlist track; while loading it is a no-op.
func (p *Player) TogglePlayPause() error {
	p.mu.Lock()

	switch {
	case p.state == stateLoading:
		p.mu.Unlock()
		return nil

	case p.handle == nil:
		if p.playlist.Len() == 0 {
			p.mu.Unlock()
			return nil
		}
		first := p.playlist.Tracks()[0]
		p.mu.Unlock()
		return p.Play(first)

	case p.state == statePlaying:
		h := p.handle
		p.state = statePaused
		p.stopPollingLocked()
		p.mu.Unlock()
		return h.Pause()

	default: // paused
		h := p.handle
		gen := p.generation
		p.state = statePlaying
		p.startPollingLocked(gen)
		p.mu.Unlock()
		return h.Play()
	}
}

// Seek repositions the current handle. The displayed position updates
// immediately rather than waiting for hardware confirmation.
func (p *Player) Seek(seconds float64) error {
	p.mu.Lock()
	if p.state == stateLoading || p.handle == nil {
		p.mu.Unlock()
		return nil
	}
	h := p.handle
	p.positionSec = seconds
	p.mu.Unlock()

	return h.Seek(seconds)
}

// SkipNext plays the track after the current one, wrapping at the end
func (p *Player) SkipNext() error {
	return p.skip(1)
}

// SkipPrev plays the track before the current one, wrapping at the start
func (p *Player) SkipPrev() error {
	return p.skip(-1)
}

func (p *Player) skip(dir int) error {
	p.mu.Lock()
	if p.playlist.Len() == 0 {
		p.mu.Unlock()
		return nil
	}
	idx := 0
	if p.current != nil {
		at := p.playlist.IndexOf(p.current.ID)
		if at >= 0 {
			if dir > 0 {
				idx = p.playlist.Next(at)
			} else {
				idx = p.playlist.Prev(at)
			}
		}
	}
	track := p.playlist.Tracks()[idx]
	p.mu.Unlock()

	return p.Play(track)
}

// SetMode changes the playback mode, syncing the native loop flag on any
// live handle right away
func (p *Player) SetMode(mode PlaybackMode) {
	p.mu.Lock()
	p.mode = mode
	h := p.handle
	p.mu.Unlock()

	if h != nil {
		h.SetLooping(mode == ModeLoopOne)
	}
}

// SetMuted applies the mute flag to the current handle, if any
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	p.muted = muted
	h := p.handle
	p.mu.Unlock()

	if h != nil {
		volume := fullVolume
		if muted {
			volume = 0
		}
		h.SetVolume(volume)
	}
}

// DeleteTrack removes a track from the playlist. The default track is
// protected. Deleting the current track disposes the handle and resets to
// idle. The caller persists the playlist.
func (p *Player) DeleteTrack(id string) bool {
	p.mu.Lock()
	if id == DefaultTrackID {
		p.mu.Unlock()
		return false
	}

	var old AudioHandle
	if p.current != nil && p.current.ID == id {
		old = p.handle
		p.handle = nil
		p.current = nil
		p.generation++
		p.state = stateIdle
		p.positionSec = 0
		p.durationSec = 0
		p.stopPollingLocked()
	}
	removed := p.playlist.Remove(id)
	p.mu.Unlock()

	if old != nil {
		old.Dispose()
	}
	return removed
}

// Stop disposes any active handle and resets to idle
func (p *Player) Stop() {
	p.mu.Lock()
	old := p.handle
	p.handle = nil
	p.current = nil
	p.generation++
	p.state = stateIdle
	p.positionSec = 0
	p.durationSec = 0
	p.stopPollingLocked()
	p.mu.Unlock()

	if old != nil {
		old.Dispose()
	}
}

// onNaturalFinish handles a track finishing on its own. The generation check
// discards callbacks from handles already replaced by a manual skip. With
// native looping active the handle never reports a finish; the loop-one case
// below is a fallback.
func (p *Player) onNaturalFinish(gen int) {
	p.mu.Lock()
	if gen != p.generation || p.handle == nil || p.current == nil {
		p.mu.Unlock()
		return
	}

	mode := p.mode
	at := p.playlist.IndexOf(p.current.ID)
	last := p.playlist.IsLast(at)
	p.mu.Unlock()

	switch mode {
	case ModeLoopAll:
		p.SkipNext()
	case ModePlayAll:
		if last {
			p.stopAndReset(gen)
		} else {
			p.SkipNext()
		}
	case ModeLoopOne:
		p.mu.Lock()
		h := p.handle
		p.positionSec = 0
		p.mu.Unlock()
		if h != nil {
			h.Seek(0)
			h.Play()
		}
	default: // play-one
		p.stopAndReset(gen)
	}
}

// stopAndReset pauses the current handle and rewinds to the start without
// changing the current track
func (p *Player) stopAndReset(gen int) {
	p.mu.Lock()
	if gen != p.generation || p.handle == nil {
		p.mu.Unlock()
		return
	}
	h := p.handle
	p.state = statePaused
	p.positionSec = 0
	p.stopPollingLocked()
	p.mu.Unlock()

	h.Pause()
	h.Seek(0)
}

// PlayCue plays a short system sound over the music, ducking music volume to
// 10% for the cue's duration. Volume is restored only if music is still
// playing when the cue finishes.
func (p *Player) PlayCue(src AudioSource) error {
	p.mu.Lock()
	ducked := p.state == statePlaying && p.handle != nil && !p.muted
	music := p.handle
	p.mu.Unlock()

	if ducked {
		music.SetVolume(duckedVolume)
	}

	cue, err := p.provider.Create(src)
	if err != nil {
		if ducked {
			music.SetVolume(fullVolume)
		}
		return fmt.Errorf("play cue: %w", err)
	}

	cue.OnFinish(func() {
		cue.Dispose()
		p.mu.Lock()
		restore := p.state == statePlaying && p.handle != nil && !p.muted
		h := p.handle
		p.mu.Unlock()
		if restore {
			h.SetVolume(fullVolume)
		}
	})

	if err := cue.Play(); err != nil {
		cue.Dispose()
		if ducked {
			music.SetVolume(fullVolume)
		}
		return fmt.Errorf("play cue: %w", err)
	}
	return nil
}

// startPollingLocked samples the handle's position and duration once per
// second while playing. Caller holds the lock. The loop exits as soon as the
// player leaves the playing state or the handle generation changes.
func (p *Player) startPollingLocked(gen int) {
	stop := make(chan struct{})
	p.stopPoll = stop

	go func() {
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()

		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				p.mu.Lock()
				if p.generation != gen || p.state != statePlaying || p.handle == nil {
					p.mu.Unlock()
					return
				}
				h := p.handle
				p.mu.Unlock()

				status, err := h.Status()
				if err != nil {
					continue
				}

				p.mu.Lock()
				if p.generation == gen && p.state == statePlaying {
					p.positionSec = status.PositionSec
					p.durationSec = status.DurationSec
				}
				p.mu.Unlock()
			}
		}
	}()
}

func (p *Player) stopPollingLocked() {
	if p.stopPoll != nil {
		close(p.stopPoll)
		p.stopPoll = nil
	}
}
