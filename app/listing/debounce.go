package listing

import (
	"sync"
	"time"
)

// DefaultDebounce is how long snapshot writes wait for further changes.
const DefaultDebounce = 500 * time.Millisecond

// debouncer coalesces triggers into one call of fn after delay of quiet.
// inflight counts calls that are scheduled or running; fn runs without d.mu held
// and never concurrently with itself.
type debouncer struct {
	mu       sync.Mutex
	idle     *sync.Cond
	delay    time.Duration
	timer    *time.Timer
	inflight int
	running  sync.Mutex
	fn       func()
}

func newDebouncer(delay time.Duration, fn func()) *debouncer {
	d := &debouncer{delay: delay, fn: fn}
	d.idle = sync.NewCond(&d.mu)
	return d
}

func (d *debouncer) trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil && d.timer.Stop() {
		d.inflight--
	}
	d.inflight++
	var t *time.Timer
	t = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		if d.timer == t {
			d.timer = nil
		}
		d.mu.Unlock()
		d.run()
	})
	d.timer = t
}

func (d *debouncer) run() {
	d.running.Lock()
	d.fn()
	d.running.Unlock()

	d.mu.Lock()
	d.inflight--
	d.idle.Broadcast()
	d.mu.Unlock()
}

// flush runs a pending call now and waits for any call already fired.
func (d *debouncer) flush() {
	d.mu.Lock()
	if d.timer != nil && d.timer.Stop() {
		d.timer = nil
		d.mu.Unlock()
		d.run()
		d.mu.Lock()
	}
	for d.inflight > 0 {
		d.idle.Wait()
	}
	d.mu.Unlock()
}

func (d *debouncer) pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}
