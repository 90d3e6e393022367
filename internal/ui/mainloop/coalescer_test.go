package mainloop

import (
	"testing"
	"time"

	"github.com/bnema/shade/internal/domain/entity"
)

type fakeWindow struct {
	kind     entity.WindowKind
	ready    bool
	requests int
}

func (w *fakeWindow) Kind() entity.WindowKind { return w.kind }

func (w *fakeWindow) RequestFrame() bool {
	if !w.ready {
		return false
	}
	w.requests++
	return true
}

func TestCoalescerMergesBurstIntoSingleCallback(t *testing.T) {
	c := NewCoalescer(time.Minute, time.Unix(0, 0))
	drawer := &fakeWindow{kind: entity.WindowDrawer, ready: true}

	for i := 0; i < 5; i++ {
		c.Request(drawer)
	}

	if drawer.requests != 1 {
		t.Fatalf("expected 1 frame request, got %d", drawer.requests)
	}
	if !c.Pending(entity.WindowDrawer) {
		t.Fatalf("expected drawer frame to be pending")
	}

	c.Delivered(entity.WindowDrawer)
	c.Request(drawer)

	if drawer.requests != 2 {
		t.Fatalf("expected a new request after delivery, got %d", drawer.requests)
	}
}

func TestCoalescerKeepsWindowsIndependent(t *testing.T) {
	c := NewCoalescer(time.Minute, time.Unix(0, 0))
	panel := &fakeWindow{kind: entity.WindowPanel, ready: true}
	drawer := &fakeWindow{kind: entity.WindowDrawer, ready: true}

	c.Request(panel)
	c.Request(drawer)
	c.Request(panel)

	if panel.requests != 1 || drawer.requests != 1 {
		t.Fatalf("expected one request per window, got panel=%d drawer=%d", panel.requests, drawer.requests)
	}
}

func TestCoalescerDoesNotMarkUnreadyWindowPending(t *testing.T) {
	c := NewCoalescer(time.Minute, time.Unix(0, 0))
	drawer := &fakeWindow{kind: entity.WindowDrawer}

	c.Request(drawer)
	if c.Pending(entity.WindowDrawer) {
		t.Fatalf("unmapped window must not hold a pending frame")
	}

	drawer.ready = true
	c.Request(drawer)
	c.Forget(entity.WindowDrawer)
	if c.Pending(entity.WindowDrawer) {
		t.Fatalf("expected Forget to clear the pending frame")
	}
}

func TestCoalescerForcedDeadline(t *testing.T) {
	start := time.Unix(100, 0)
	c := NewCoalescer(60*time.Second, start)

	if got := c.Deadline(); !got.Equal(start.Add(60 * time.Second)) {
		t.Fatalf("unexpected first deadline %v", got)
	}
	if c.Due(start.Add(59 * time.Second)) {
		t.Fatalf("deadline must not be due early")
	}

	late := start.Add(75 * time.Second)
	if !c.Due(late) {
		t.Fatalf("expected deadline to be due")
	}
	if got := c.Deadline(); !got.Equal(late.Add(60 * time.Second)) {
		t.Fatalf("deadline must restart from the refresh time, got %v", got)
	}

	c.SetInterval(time.Second, late)
	if got := c.Deadline(); !got.Equal(late.Add(time.Second)) {
		t.Fatalf("SetInterval must restart the deadline, got %v", got)
	}
}

func TestNewCoalescerPanicsOnZeroInterval(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected NewCoalescer to panic when interval is zero")
		}
	}()

	_ = NewCoalescer(0, time.Now())
}
