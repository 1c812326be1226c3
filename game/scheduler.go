package game

import (
	"sort"
	"sync"
	"time"
)

// Timer is a handle to a repeating callback. Stop is idempotent. A callback
// already in flight when Stop is called may still complete.
type Timer interface {
	Stop()
}

// Scheduler runs fn every interval until the returned Timer is stopped.
// Intervals below MinInterval are raised to it.
type Scheduler interface {
	Every(interval time.Duration, fn func()) Timer
}

const MinInterval = time.Millisecond

func clampInterval(d time.Duration) time.Duration {
	if d < MinInterval {
		return MinInterval
	}
	return d
}

// TickerScheduler backs each timer with a time.Ticker and a goroutine.
type TickerScheduler struct{}

func NewTickerScheduler() *TickerScheduler {
	return &TickerScheduler{}
}

func (s *TickerScheduler) Every(interval time.Duration, fn func()) Timer {
	t := &tickerTimer{
		ticker: time.NewTicker(clampInterval(interval)),
		done:   make(chan struct{}),
	}
	go t.run(fn)
	return t
}

type tickerTimer struct {
	ticker *time.Ticker
	done   chan struct{}
	once   sync.Once
}

func (t *tickerTimer) run(fn func()) {
	defer t.ticker.Stop()
	for {
		select {
		case <-t.done:
			return
		case <-t.ticker.C:
			// A tick and a stop can be ready together; stop wins.
			select {
			case <-t.done:
				return
			default:
			}
			fn()
		}
	}
}

func (t *tickerTimer) Stop() {
	t.once.Do(func() { close(t.done) })
}

// ManualScheduler is driven by a virtual clock. Nothing fires until Advance
// is called, which makes tick ordering fully deterministic.
type ManualScheduler struct {
	mu     sync.Mutex
	now    time.Duration
	seq    int
	timers []*manualTimer
}

func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

type manualTimer struct {
	sched    *ManualScheduler
	interval time.Duration
	next     time.Duration
	seq      int
	fn       func()
	stopped  bool
}

func (s *ManualScheduler) Every(interval time.Duration, fn func()) Timer {
	s.mu.Lock()
	defer s.mu.Unlock()

	interval = clampInterval(interval)
	s.seq++
	t := &manualTimer{
		sched:    s,
		interval: interval,
		next:     s.now + interval,
		seq:      s.seq,
		fn:       fn,
	}
	s.timers = append(s.timers, t)
	return t
}

func (t *manualTimer) Stop() {
	t.sched.mu.Lock()
	defer t.sched.mu.Unlock()
	t.stopped = true
}

// Now is the virtual time elapsed since the scheduler was created.
func (s *ManualScheduler) Now() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now
}

// Pending counts live timers.
func (s *ManualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, t := range s.timers {
		if !t.stopped {
			n++
		}
	}
	return n
}

// Advance moves the clock forward by d, firing due callbacks in time order.
// Ties fire in creation order. Callbacks run without the scheduler lock so
// they may create or stop timers.
func (s *ManualScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	target := s.now + d
	s.mu.Unlock()

	for {
		t := s.nextDue(target)
		if t == nil {
			break
		}
		t.fn()
	}

	s.mu.Lock()
	s.now = target
	s.mu.Unlock()
}

func (s *ManualScheduler) nextDue(target time.Duration) *manualTimer {
	s.mu.Lock()
	defer s.mu.Unlock()

	live := s.timers[:0]
	for _, t := range s.timers {
		if !t.stopped {
			live = append(live, t)
		}
	}
	s.timers = live
	if len(live) == 0 {
		return nil
	}

	sort.SliceStable(live, func(i, j int) bool {
		if live[i].next != live[j].next {
			return live[i].next < live[j].next
		}
		return live[i].seq < live[j].seq
	})
	t := live[0]
	if t.next > target {
		return nil
	}
	s.now = t.next
	t.next += t.interval
	return t
}
