package section

import "testing"

const viewport = 800

func fullLayout() Layout {
	return Stack(map[ID]float64{
		Home:     viewport,
		About:    viewport,
		Skills:   viewport,
		Projects: viewport,
		Contact:  viewport,
	})
}

func TestStack(t *testing.T) {
	l := Stack(map[ID]float64{Home: 100, Skills: 300, Contact: 50})
	want := Layout{
		Home:    {Top: 0, Height: 100},
		Skills:  {Top: 100, Height: 300},
		Contact: {Top: 400, Height: 50},
	}
	if len(l) != len(want) {
		t.Fatalf("len = %d, want %d", len(l), len(want))
	}
	for id, r := range want {
		if l[id] != r {
			t.Errorf("%s = %+v, want %+v", id, l[id], r)
		}
	}
	if got := l.Height(); got != 450 {
		t.Errorf("Height() = %v, want 450", got)
	}
}

func TestMountStartsAtHome(t *testing.T) {
	p := Mount(fullLayout(), viewport)
	defer p.Close()
	if got := p.Active(); got != Home {
		t.Fatalf("Active() = %q, want %q", got, Home)
	}
}

func TestMountWithoutHeroReportsFirstVisible(t *testing.T) {
	p := Mount(Stack(map[ID]float64{About: viewport, Skills: viewport}), viewport)
	defer p.Close()
	// About fills the initial viewport, so its watcher reports after the
	// hero's announcement.
	if got := p.Active(); got != About {
		t.Fatalf("Active() = %q, want %q", got, About)
	}
}

func TestScrollActivatesEachSection(t *testing.T) {
	p := Mount(fullLayout(), viewport)
	defer p.Close()

	for i, id := range All() {
		p.ScrollTo(float64(i * viewport))
		if got := p.Active(); got != id {
			t.Errorf("at y=%d Active() = %q, want %q", i*viewport, got, id)
		}
	}
}

func TestScrollReportsOncePerCrossing(t *testing.T) {
	p := Mount(fullLayout(), viewport)
	defer p.Close()

	var changes []ID
	cancel := p.Tracker().Subscribe(func(id ID) { changes = append(changes, id) })
	defer cancel()

	// About crosses 50% at y=400 and stays above while the viewport moves
	// within it; a manual Set in between must not be overwritten again.
	p.ScrollTo(450)
	p.Tracker().Set(Contact)
	p.ScrollTo(500)
	p.ScrollTo(800)

	if got := p.Active(); got != Contact {
		t.Fatalf("Active() = %q, want %q (about must not re-report while visible)", got, Contact)
	}
	if len(changes) != 2 || changes[0] != About || changes[1] != Contact {
		t.Fatalf("changes = %v, want [about contact]", changes)
	}
}

func TestScrollClampsToDocument(t *testing.T) {
	p := Mount(fullLayout(), viewport)
	defer p.Close()

	p.ScrollTo(-100)
	if got := p.ScrollY(); got != 0 {
		t.Errorf("ScrollY() = %v, want 0", got)
	}
	p.ScrollTo(1e6)
	if got, want := p.ScrollY(), float64(4*viewport); got != want {
		t.Errorf("ScrollY() = %v, want %v", got, want)
	}
	if got := p.Active(); got != Contact {
		t.Errorf("Active() = %q, want %q", got, Contact)
	}
}

func TestNavigateSetsActiveBeforeScrolling(t *testing.T) {
	p := Mount(fullLayout(), viewport)
	defer p.Close()

	path := p.Navigate(Projects)
	if got := p.Active(); got != Projects {
		t.Fatalf("Active() = %q immediately after Navigate, want %q", got, Projects)
	}
	if p.ScrollY() != 0 {
		t.Fatalf("Navigate must not scroll by itself")
	}
	if len(path) == 0 || path[len(path)-1] != 3*viewport {
		t.Fatalf("path = %v, want it to end at %d", path, 3*viewport)
	}

	p.Play(path)
	if got := p.Active(); got != Projects {
		t.Errorf("Active() after playing = %q, want %q", got, Projects)
	}
	if got := p.ScrollY(); got != 3*viewport {
		t.Errorf("ScrollY() = %v, want %d", got, 3*viewport)
	}
}

func TestNavigateMissingTargetStillActivates(t *testing.T) {
	p := Mount(Stack(map[ID]float64{Home: viewport, About: viewport}), viewport)
	defer p.Close()

	path := p.Navigate(Contact)
	if path != nil {
		t.Errorf("path = %v, want nil for missing section", path)
	}
	if got := p.Active(); got != Contact {
		t.Errorf("Active() = %q, want %q", got, Contact)
	}
	if p.Navigate(ID("nope")) != nil || p.Active() != Contact {
		t.Error("unknown ids must be ignored")
	}
}

func TestUnmountStopsUpdates(t *testing.T) {
	p := Mount(fullLayout(), viewport)
	defer p.Close()

	p.Unmount(Skills)
	p.ScrollTo(2 * viewport)
	if got := p.Active(); got == Skills {
		t.Fatalf("Active() = %q after Skills was unmounted", got)
	}

	p.ScrollTo(3 * viewport)
	if got := p.Active(); got != Projects {
		t.Errorf("Active() = %q, want %q", got, Projects)
	}
}

func TestCloseStopsAllUpdates(t *testing.T) {
	p := Mount(fullLayout(), viewport)
	p.Close()
	p.ScrollTo(2 * viewport)
	if got := p.Active(); got != Home {
		t.Fatalf("Active() = %q after Close, want %q", got, Home)
	}
}

func TestWithThreshold(t *testing.T) {
	p := Mount(fullLayout(), viewport, WithThreshold(0.9))
	defer p.Close()

	p.ScrollTo(600) // about is 75% visible
	if got := p.Active(); got != Home {
		t.Fatalf("Active() = %q, want %q below a 0.9 threshold", got, Home)
	}
	p.ScrollTo(760) // 95%
	if got := p.Active(); got != About {
		t.Fatalf("Active() = %q, want %q", got, About)
	}
}

func TestWithScrollSteps(t *testing.T) {
	p := Mount(fullLayout(), viewport, WithScrollSteps(3))
	defer p.Close()
	if got := len(p.Navigate(About)); got != 3 {
		t.Fatalf("len(path) = %d, want 3", got)
	}
}
