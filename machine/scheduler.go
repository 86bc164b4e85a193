package machine

// EventCallback is invoked when its deadline is reached. now is the cycle
// the event actually fired on (which may be later than the requested
// deadline if advance was called in coarser steps); it may call Schedule
// again on the same Scheduler to re-arm itself.
type EventCallback func(now Cycle)

// event is one pending entry in the scheduler's queue.
type event struct {
	deadline  Cycle
	seq       uint64 // insertion order, breaks deadline ties (§4.10)
	cb        EventCallback
	cancelled bool
}

// Scheduler is a priority queue of (deadline, callback) pairs driven by
// the CPU's cycle counter (§4.10). It has no notion of wall-clock time;
// every deadline is expressed in emulator cycles.
type Scheduler struct {
	pending []*event
	seq     uint64
	now     Cycle
}

// NewScheduler builds an empty scheduler starting at cycle 0.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// EventHandle lets a caller cancel an event it previously scheduled.
type EventHandle struct{ e *event }

// Cancel prevents a pending event from firing. Safe to call even if the
// event has already fired or was already cancelled.
func (h EventHandle) Cancel() {
	if h.e != nil {
		h.e.cancelled = true
	}
}

// Schedule arms cb to fire inCycles cycles from the scheduler's current
// position (§4.10 schedule(in_cycles, cb)).
func (s *Scheduler) Schedule(inCycles Cycle, cb EventCallback) EventHandle {
	e := &event{deadline: s.now + inCycles, seq: s.seq, cb: cb}
	s.seq++
	s.pending = append(s.pending, e)
	return EventHandle{e: e}
}

// ScheduleAt arms cb to fire at an absolute cycle deadline.
func (s *Scheduler) ScheduleAt(deadline Cycle, cb EventCallback) EventHandle {
	e := &event{deadline: deadline, seq: s.seq, cb: cb}
	s.seq++
	s.pending = append(s.pending, e)
	return EventHandle{e: e}
}

// Now returns the cycle the scheduler last advanced to.
func (s *Scheduler) Now() Cycle { return s.now }

// Advance fires, in deadline order (ties broken by insertion order), every
// pending event whose deadline is <= current, then sets Now to current
// (§4.10 advance(current)). A callback that reschedules itself during
// Advance is eligible to fire again in the same call if its new deadline
// is still <= current.
func (s *Scheduler) Advance(current Cycle) {
	for {
		idx := -1
		for i, e := range s.pending {
			if e.cancelled {
				continue
			}
			if e.deadline > current {
				continue
			}
			if idx == -1 {
				idx = i
				continue
			}
			cand := s.pending[i]
			best := s.pending[idx]
			if cand.deadline < best.deadline || (cand.deadline == best.deadline && cand.seq < best.seq) {
				idx = i
			}
		}
		if idx == -1 {
			break
		}

		e := s.pending[idx]
		s.pending = append(s.pending[:idx], s.pending[idx+1:]...)
		e.cb(current)
	}

	s.compact()
	s.now = current
}

// compact drops cancelled events that never got a chance to fire.
func (s *Scheduler) compact() {
	live := s.pending[:0]
	for _, e := range s.pending {
		if !e.cancelled {
			live = append(live, e)
		}
	}
	s.pending = live
}

// Pending returns the number of events still armed.
func (s *Scheduler) Pending() int { return len(s.pending) }
