package section

import "sync"

// Threshold is the fraction of a section's area that must be inside the
// viewport for the section to count as visible.
const Threshold = 0.5

// Observer is fed intersection ratios for one rendered section.
type Observer interface {
	Observe(ratio float64)
	Stop()
}

// Watcher reports its section ID each time the observed intersection ratio
// crosses the threshold from below.
type Watcher struct {
	id        ID
	threshold float64
	report    func(ID)

	mu      sync.Mutex
	visible bool
	stopped bool
}

var _ Observer = (*Watcher)(nil)

// NewWatcher returns a Watcher for id. A threshold outside (0, 1] falls back
// to Threshold.
func NewWatcher(id ID, threshold float64, report func(ID)) *Watcher {
	if threshold <= 0 || threshold > 1 {
		threshold = Threshold
	}
	return &Watcher{id: id, threshold: threshold, report: report}
}

// ID returns the section the watcher reports.
func (w *Watcher) ID() ID { return w.id }

// Observe records the latest intersection ratio. The report callback runs
// once per upward crossing and never after Stop.
func (w *Watcher) Observe(ratio float64) {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return
	}
	was := w.visible
	w.visible = ratio >= w.threshold
	fire := !was && w.visible
	w.mu.Unlock()

	if fire && w.report != nil {
		w.report(w.id)
	}
}

// Stop detaches the watcher. It is safe to call more than once.
func (w *Watcher) Stop() {
	w.mu.Lock()
	w.stopped = true
	w.mu.Unlock()
}

// Stopped reports whether Stop has been called.
func (w *Watcher) Stopped() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stopped
}
