package player

import (
	"sync"

	"github.com/chorusfm/chorus/internal/models"
)

// Player holds the playback state shared across the UI: current song,
// ordered queue with a position cursor, transport flag, volume, and
// progress counters.
//
// No operation here decodes audio or fetches anything; the song's AudioURL
// rides along as opaque metadata. A mutex guards the state because TUI
// commands run on goroutines.
type Player struct {
	mu sync.RWMutex

	current *models.Song
	queue   []models.Song
	index   int

	playing     bool
	volume      float64
	currentTime float64
	duration    float64
}

// NowPlaying is a consistent snapshot of the playback state for rendering.
type NowPlaying struct {
	Song        models.Song
	Loaded      bool
	Playing     bool
	Volume      float64
	CurrentTime float64
	Duration    float64
	QueueLen    int
	Index       int
}

// New creates an empty Player with the given initial volume, clamped to [0, 1].
func New(volume float64) *Player {
	return &Player{volume: clamp(volume)}
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Play sets the current song and starts playback.
//
// A non-empty queue replaces the existing one and the cursor moves to the
// song's index within it, defaulting to 0 when the song is absent. A nil
// queue keeps the previous queue and cursor. The song is not validated
// against the catalog; Play always succeeds.
func (p *Player) Play(song models.Song, queue []models.Song) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if queue != nil {
		p.queue = make([]models.Song, len(queue))
		copy(p.queue, queue)

		p.index = 0
		for i, queued := range p.queue {
			if queued.ID == song.ID {
				p.index = i
				break
			}
		}
	}

	p.current = &song
	p.playing = true
	p.currentTime = 0
}

// Pause stops playback. No-op when already paused.
func (p *Player) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.playing = false
}

// TogglePlayPause flips the transport flag. Applying it twice restores the
// original state.
func (p *Player) TogglePlayPause() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.playing = !p.playing
}

// SkipNext advances the cursor by one and makes that queue entry current.
// Saturating: a no-op at the end of the queue or with no queue at all.
func (p *Player) SkipNext() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.queue) == 0 || p.index >= len(p.queue)-1 {
		return
	}

	p.index++
	song := p.queue[p.index]
	p.current = &song
	p.currentTime = 0
}

// SkipPrevious retreats the cursor by one and makes that queue entry
// current. Saturating: a no-op at the start of the queue.
func (p *Player) SkipPrevious() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.queue) == 0 || p.index <= 0 {
		return
	}

	p.index--
	song := p.queue[p.index]
	p.current = &song
	p.currentTime = 0
}

// SetVolume stores the volume, clamped to [0, 1].
func (p *Player) SetVolume(v float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.volume = clamp(v)
}

// SetCurrentTime records externally-driven playback progress in seconds.
// Drives no other transition.
func (p *Player) SetCurrentTime(t float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if t < 0 {
		t = 0
	}
	p.currentTime = t
}

// SetDuration records the current song's total duration in seconds.
// Drives no other transition.
func (p *Player) SetDuration(d float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if d < 0 {
		d = 0
	}
	p.duration = d
}

// Now returns a consistent snapshot of the playback state.
func (p *Player) Now() NowPlaying {
	p.mu.RLock()
	defer p.mu.RUnlock()

	now := NowPlaying{
		Playing:     p.playing,
		Volume:      p.volume,
		CurrentTime: p.currentTime,
		Duration:    p.duration,
		QueueLen:    len(p.queue),
		Index:       p.index,
	}
	if p.current != nil {
		now.Song = *p.current
		now.Loaded = true
	}
	return now
}

// Queue returns a snapshot copy of the queue.
func (p *Player) Queue() []models.Song {
	p.mu.RLock()
	defer p.mu.RUnlock()

	queue := make([]models.Song, len(p.queue))
	copy(queue, p.queue)
	return queue
}
