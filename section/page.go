package section

import "sync"

// DefaultScrollSteps is the number of positions in a smooth-scroll path.
const DefaultScrollSteps = 12

// Layout places mounted sections in the document.
type Layout map[ID]Rect

// Stack builds a Layout by stacking sections in document order. Sections
// without a height are left out.
func Stack(heights map[ID]float64) Layout {
	layout := make(Layout, len(heights))
	top := 0.0
	for _, id := range order {
		h, ok := heights[id]
		if !ok {
			continue
		}
		layout[id] = Rect{Top: top, Height: h}
		top += h
	}
	return layout
}

// Height returns the document height covered by the layout.
func (l Layout) Height() float64 {
	var h float64
	for _, r := range l {
		if b := r.Bottom(); b > h {
			h = b
		}
	}
	return h
}

// Option configures a Page.
type Option func(*Page)

// WithThreshold overrides the visibility threshold of every watcher.
func WithThreshold(t float64) Option {
	return func(p *Page) {
		p.threshold = t
	}
}

// WithScrollSteps sets how many positions Navigate returns.
func WithScrollSteps(n int) Option {
	return func(p *Page) {
		p.steps = n
	}
}

// Page composes the sections of one page session. It owns the Tracker and
// one Watcher per mounted section, and serializes scroll and click events so
// that no two callbacks interleave.
type Page struct {
	mu        sync.Mutex
	tracker   *Tracker
	layout    Layout
	watchers  map[ID]*Watcher
	view      Rect
	threshold float64
	steps     int
}

// Mount creates a Page for layout in a viewport of the given height. The hero
// announces itself, so Active is Home before any scrolling, then every watcher
// observes the initial viewport.
func Mount(layout Layout, viewportHeight float64, opts ...Option) *Page {
	p := &Page{
		tracker:   NewTracker(),
		layout:    make(Layout, len(layout)),
		watchers:  make(map[ID]*Watcher, len(layout)),
		view:      Rect{Height: viewportHeight},
		threshold: Threshold,
		steps:     DefaultScrollSteps,
	}
	for _, opt := range opts {
		opt(p)
	}

	p.tracker.Set(Home)
	for _, id := range order {
		r, ok := layout[id]
		if !ok {
			continue
		}
		p.layout[id] = r
		p.watchers[id] = NewWatcher(id, p.threshold, p.report)
	}

	p.mu.Lock()
	p.observe()
	p.mu.Unlock()
	return p
}

func (p *Page) report(id ID) {
	p.tracker.Set(id)
}

// observe feeds every live watcher its ratio in document order. Callers hold mu.
func (p *Page) observe() {
	for _, id := range order {
		w, ok := p.watchers[id]
		if !ok {
			continue
		}
		w.Observe(IntersectionRatio(p.layout[id], p.view))
	}
}

// Tracker exposes the active-section state for readers such as a nav bar.
// Subscribers run while the Page is handling an event and must not call
// ScrollTo, Navigate, Unmount or Close.
func (p *Page) Tracker() *Tracker {
	return p.tracker
}

// Active returns the active section.
func (p *Page) Active() ID {
	return p.tracker.Active()
}

// ScrollY returns the current viewport offset.
func (p *Page) ScrollY() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.view.Top
}

// ScrollTo moves the viewport to y, clamped to the document.
func (p *Page) ScrollTo(y float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.view.Top = p.clamp(y)
	p.observe()
}

func (p *Page) clamp(y float64) float64 {
	maxY := p.layout.Height() - p.view.Height
	if y > maxY {
		y = maxY
	}
	if y < 0 {
		y = 0
	}
	return y
}

// Navigate handles a click on the link for id. The active section becomes
// id immediately; the returned path is the smooth scroll to the section's
// top. A section that is not mounted yields no path.
func (p *Page) Navigate(id ID) []float64 {
	if !id.Valid() {
		return nil
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	var path []float64
	if r, ok := p.layout[id]; ok {
		path = SmoothPath(p.view.Top, p.clamp(r.Top), p.steps)
	}
	p.tracker.Set(id)
	return path
}

// Play scrolls through path one position at a time.
func (p *Page) Play(path []float64) {
	for _, y := range path {
		p.ScrollTo(y)
	}
}

// Unmount tears down the watcher for id. The section stays in the layout
// but no longer reports.
func (p *Page) Unmount(id ID) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if w, ok := p.watchers[id]; ok {
		w.Stop()
		delete(p.watchers, id)
	}
}

// Close stops every watcher.
func (p *Page) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for id, w := range p.watchers {
		w.Stop()
		delete(p.watchers, id)
	}
}
