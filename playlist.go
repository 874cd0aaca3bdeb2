package main

import (
	"github.com/google/uuid"
)

// DefaultTrackID is the protected bundled track present in every playlist
const DefaultTrackID = "default_ost"

func defaultTrack() MusicTrack {
	return MusicTrack{
		ID:      DefaultTrackID,
		Title:   "Arise (Original Soundtrack)",
		Source:  "default_ost.mp3",
		Bundled: true,
	}
}

// Playlist is the ordered track list. The default track is synthesized at
// load time, always sits at index 0, and cannot be deleted.
type Playlist struct {
	tracks []MusicTrack
}

// NewPlaylist returns a playlist holding only the default track
func NewPlaylist() *Playlist {
	return &Playlist{tracks: []MusicTrack{defaultTrack()}}
}

// LoadPlaylist reads the persisted user tracks and prepends the default track
func LoadPlaylist(st *Store) (*Playlist, error) {
	var stored []MusicTrack
	if _, err := st.getJSON(keyMusicPlaylist, &stored); err != nil {
		return nil, err
	}

	pl := NewPlaylist()
	for _, t := range stored {
		if t.ID == DefaultTrackID {
			continue
		}
		pl.tracks = append(pl.tracks, t)
	}
	return pl, nil
}

// Save persists the playlist, excluding the synthesized default track
func (pl *Playlist) Save(st *Store) error {
	user := make([]MusicTrack, 0, len(pl.tracks))
	for _, t := range pl.tracks {
		if t.ID == DefaultTrackID {
			continue
		}
		user = append(user, t)
	}
	return st.putJSON(keyMusicPlaylist, user)
}

// Tracks returns the tracks in playlist order
func (pl *Playlist) Tracks() []MusicTrack {
	return pl.tracks
}

// Len returns the number of tracks
func (pl *Playlist) Len() int {
	return len(pl.tracks)
}

// Add appends a user track and returns it
func (pl *Playlist) Add(title, source string) MusicTrack {
	track := MusicTrack{
		ID:     uuid.NewString(),
		Title:  title,
		Source: source,
	}
	pl.tracks = append(pl.tracks, track)
	return track
}

// Remove deletes a track by id. The default track is protected: removing it
// is a no-op and reports false.
func (pl *Playlist) Remove(id string) bool {
	if id == DefaultTrackID {
		return false
	}
	for i, t := range pl.tracks {
		if t.ID == id {
			pl.tracks = append(pl.tracks[:i], pl.tracks[i+1:]...)
			return true
		}
	}
	return false
}

// Find returns the track with the given id
func (pl *Playlist) Find(id string) (MusicTrack, bool) {
	for _, t := range pl.tracks {
		if t.ID == id {
			return t, true
		}
	}
	return MusicTrack{}, false
}

// IndexOf returns the position of a track id, or -1
func (pl *Playlist) IndexOf(id string) int {
	for i, t := range pl.tracks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// Next returns the index after i, wrapping to 0 at the end
func (pl *Playlist) Next(i int) int {
	if len(pl.tracks) == 0 {
		return -1
	}
	return (i + 1) % len(pl.tracks)
}

// Prev returns the index before i, wrapping to the last track at 0
func (pl *Playlist) Prev(i int) int {
	if len(pl.tracks) == 0 {
		return -1
	}
	return (i - 1 + len(pl.tracks)) % len(pl.tracks)
}

// IsLast reports whether index i is the final track
func (pl *Playlist) IsLast(i int) bool {
	return i == len(pl.tracks)-1
}

// ToggleFavorite flips the favorite flag on a track
func (pl *Playlist) ToggleFavorite(id string) bool {
	for i := range pl.tracks {
		if pl.tracks[i].ID == id {
			pl.tracks[i].Favorite = !pl.tracks[i].Favorite
			return true
		}
	}
	return false
}
