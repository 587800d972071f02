// Package audio serializes named beep events onto the single physical
// tone generator. Tones are queued FIFO and played one at a time; there
// is no priority and no interruption.
package audio

import (
	"github.com/avolkov/ledboy/internal/clock"
	"github.com/avolkov/ledboy/internal/driver"
)

// QueueCapacity bounds the pending tone queue. Tones enqueued while the
// queue is full are silently dropped.
const QueueCapacity = 24

// Tone is one queued (frequency, duration) event.
type Tone struct {
	Freq     int // Hz
	Duration int // ms
}

// Sequencer drains a bounded tone queue onto a ToneOutput.
type Sequencer struct {
	out    driver.ToneOutput
	queue  []Tone
	active bool
	endAt  clock.Ticks
	muted  bool
}

// NewSequencer creates a sequencer over the given output.
func NewSequencer(out driver.ToneOutput) *Sequencer {
	return &Sequencer{
		out:   out,
		queue: make([]Tone, 0, QueueCapacity),
	}
}

// Enqueue appends a tone to the queue. No-op while muted or when the
// queue is at capacity.
func (s *Sequencer) Enqueue(freq, duration int) {
	if s.muted || len(s.queue) >= QueueCapacity {
		return
	}
	s.queue = append(s.queue, Tone{Freq: freq, Duration: duration})
}

// Update advances playback: stops an expired tone and starts the next
// queued one. Called once per engine poll iteration.
func (s *Sequencer) Update(now clock.Ticks) {
	if s.muted {
		if s.active {
			s.out.StopTone()
			s.active = false
		}
		s.queue = s.queue[:0]
		return
	}

	if s.active && clock.Diff(now, s.endAt) >= 0 {
		s.out.StopTone()
		s.active = false
	}

	if !s.active && len(s.queue) > 0 {
		t := s.queue[0]
		s.queue = s.queue[1:]
		s.out.StartTone(t.Freq)
		s.endAt = now + clock.Ticks(uint32(t.Duration))
		s.active = true
	}
}

// SetMuted toggles the global mute. Muting mid-tone silences output
// immediately and flushes everything pending.
func (s *Sequencer) SetMuted(muted bool) {
	s.muted = muted
	if muted {
		if s.active {
			s.out.StopTone()
			s.active = false
		}
		s.queue = s.queue[:0]
	}
}

// Muted reports the current mute state.
func (s *Sequencer) Muted() bool {
	return s.muted
}

// Active reports whether a tone is currently sounding.
func (s *Sequencer) Active() bool {
	return s.active
}

// Pending returns the number of queued (not yet started) tones.
func (s *Sequencer) Pending() int {
	return len(s.queue)
}

// Named cues. Frequencies and durations match the device's fixed sound
// set; composite jingles are just sequential enqueues.

// Press is the short click acknowledging a button action.
func (s *Sequencer) Press() { s.Enqueue(1200, 26) }

// Score marks a point gained.
func (s *Sequencer) Score() { s.Enqueue(1600, 35) }

// Hit is the low reject/collision buzz.
func (s *Sequencer) Hit() { s.Enqueue(240, 90) }

// Win plays the three-note ascending round-won jingle.
func (s *Sequencer) Win() {
	s.Enqueue(800, 50)
	s.Enqueue(1050, 50)
	s.Enqueue(1400, 80)
}

// Lose plays the three-note descending round-lost jingle.
func (s *Sequencer) Lose() {
	s.Enqueue(1000, 60)
	s.Enqueue(700, 70)
	s.Enqueue(430, 90)
}

// Start plays the round-start jingle.
func (s *Sequencer) Start() {
	s.Enqueue(500, 45)
	s.Enqueue(850, 45)
	s.Enqueue(1200, 65)
}
