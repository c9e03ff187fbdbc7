package host

import (
	"testing"

	"github.com/go-drift/easel/pkg/control"
	"github.com/go-drift/easel/pkg/graphics"
)

type stubControl struct {
	control.ControlBase
	name string
}

func newStubControl(name string) *stubControl {
	c := &stubControl{name: name}
	c.Init(c)
	c.SetInitialBounds(graphics.RectFromLTWH(0, 0, 100, 100))
	return c
}

type repaintLog struct {
	controls []control.Control
	damage   []control.Damage
}

func (l *repaintLog) record(c control.Control, d control.Damage) {
	l.controls = append(l.controls, c)
	l.damage = append(l.damage, d)
}

func TestSchedulerCoalescesPerControl(t *testing.T) {
	log := &repaintLog{}
	s := NewRedrawScheduler(log.record)
	c := newStubControl("a")

	for i := 0; i < 5; i++ {
		s.Notify(c, control.RegionDamage(graphics.RectFromLTWH(float64(i*10), 0, 10, 10)))
	}
	s.FlushTurn()

	if len(log.controls) != 1 {
		t.Fatalf("forwarded %d repaint requests, want 1", len(log.controls))
	}
	got := log.damage[0]
	if got.Whole {
		t.Fatal("region notifications must not escalate to whole")
	}
	want := graphics.RectFromLTWH(0, 0, 50, 10)
	if got.Region != want {
		t.Fatalf("coalesced region = %+v, want %+v", got.Region, want)
	}
}

func TestSchedulerWholeSubsumesRegions(t *testing.T) {
	log := &repaintLog{}
	s := NewRedrawScheduler(log.record)
	c := newStubControl("a")

	s.Notify(c, control.RegionDamage(graphics.RectFromLTWH(0, 0, 10, 10)))
	s.Notify(c, control.WholeDamage())
	s.Notify(c, control.RegionDamage(graphics.RectFromLTWH(90, 90, 10, 10)))
	s.FlushTurn()

	if len(log.damage) != 1 || !log.damage[0].Whole {
		t.Fatalf("damage = %+v, want single whole-surface request", log.damage)
	}
}

func TestSchedulerSeparatesControls(t *testing.T) {
	log := &repaintLog{}
	s := NewRedrawScheduler(log.record)
	a := newStubControl("a")
	b := newStubControl("b")

	s.Notify(b, control.WholeDamage())
	s.Notify(a, control.RegionDamage(graphics.RectFromLTWH(0, 0, 10, 10)))
	s.Notify(b, control.RegionDamage(graphics.RectFromLTWH(5, 5, 10, 10)))
	s.FlushTurn()

	if len(log.controls) != 2 {
		t.Fatalf("forwarded %d requests, want 2", len(log.controls))
	}
	// First-notification order.
	if log.controls[0] != b || log.controls[1] != a {
		t.Fatal("requests must arrive in first-notification order")
	}
	if !log.damage[0].Whole {
		t.Fatal("b's damage must be whole")
	}
	if log.damage[1].Whole {
		t.Fatal("a's damage must stay regional")
	}
}

func TestFlushTurnIsNoOpWhenClean(t *testing.T) {
	log := &repaintLog{}
	s := NewRedrawScheduler(log.record)
	s.FlushTurn()
	if len(log.controls) != 0 {
		t.Fatalf("clean flush forwarded %d requests", len(log.controls))
	}
}

func TestFlushTurnResets(t *testing.T) {
	log := &repaintLog{}
	s := NewRedrawScheduler(log.record)
	c := newStubControl("a")

	s.Notify(c, control.WholeDamage())
	s.FlushTurn()
	if s.HasPending() {
		t.Fatal("scheduler must be clean after flush")
	}
	s.FlushTurn()
	if len(log.controls) != 1 {
		t.Fatalf("second flush forwarded again: %d requests", len(log.controls))
	}
}

func TestNotifyDuringFlushLandsInNextTurn(t *testing.T) {
	var s *RedrawScheduler
	c := newStubControl("a")
	calls := 0
	s = NewRedrawScheduler(func(ctrl control.Control, d control.Damage) {
		calls++
		if calls == 1 {
			// A repaint request prompting more damage must not loop forever
			// within this flush.
			s.Notify(ctrl, control.WholeDamage())
		}
	})

	s.Notify(c, control.WholeDamage())
	s.FlushTurn()
	if calls != 1 {
		t.Fatalf("first flush made %d calls, want 1", calls)
	}
	if !s.HasPending() {
		t.Fatal("damage raised during flush must be pending for the next turn")
	}
	s.FlushTurn()
	if calls != 2 {
		t.Fatalf("second flush made %d total calls, want 2", calls)
	}
}
