package anim

// Scheduler owns the set of running animations. It is driven by the game
// loop and is not safe for concurrent use.
type Scheduler struct {
	running []Animation
	ticks   uint64
}

// NewScheduler creates an empty Scheduler.
func NewScheduler() *Scheduler { return &Scheduler{} }

// Add registers a for the next Step.
func (s *Scheduler) Add(a Animation) {
	s.running = append(s.running, a)
}

// Step advances every animation by one frame and drops those that finished.
// Animations added while stepping start on the following Step.
func (s *Scheduler) Step() {
	s.ticks++
	current := s.running
	s.running = nil
	kept := current[:0]
	for _, a := range current {
		if a.NextFrame() {
			kept = append(kept, a)
		}
	}
	s.running = append(kept, s.running...)
}

// Drain steps until nothing is running or limit steps have passed.
func (s *Scheduler) Drain(limit int) {
	for i := 0; i < limit && len(s.running) > 0; i++ {
		s.Step()
	}
}

// Len returns the number of running animations.
func (s *Scheduler) Len() int { return len(s.running) }

// Ticks returns how many times Step ran.
func (s *Scheduler) Ticks() uint64 { return s.ticks }

// Overlays returns the running floating texts.
func (s *Scheduler) Overlays() []*FloatingText {
	var out []*FloatingText
	for _, a := range s.running {
		if ft, ok := a.(*FloatingText); ok {
			out = append(out, ft)
		}
	}
	return out
}
