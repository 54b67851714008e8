package synth

import "time"

// DefaultNullProbability is the chance that any single display field is dropped.
const DefaultNullProbability = 0.2

// Observer is notified after every record with the display fields that were nulled.
type Observer interface {
	RecordGenerated(nulled []string)
}

type Option func(*Synthesizer)

// WithSeed makes the record stream reproducible. Zero seeds from the clock.
func WithSeed(seed int64) Option {
	return func(s *Synthesizer) {
		s.seed = seed
	}
}

// WithClock overrides the notion of "today" used for joining dates.
func WithClock(now func() time.Time) Option {
	return func(s *Synthesizer) {
		if now != nil {
			s.now = now
		}
	}
}

func WithNullProbability(p float64) Option {
	return func(s *Synthesizer) {
		s.nullProbability = p
	}
}

func WithObserver(o Observer) Option {
	return func(s *Synthesizer) {
		s.observer = o
	}
}
