package controller

import (
	"errors"
	"testing"

	m "github.com/mouse-blink/knightpath/internal/model"
)

func TestPathItem_FilterValue(t *testing.T) {
	item := pathItem{path: m.Path{m.NewCell(0, 0), m.NewCell(2, 1)}}
	if got := item.FilterValue(); got != "a1 → c2" {
		t.Fatalf("FilterValue() = %q, want %q", got, "a1 → c2")
	}
}

func TestWaitForOutcome(t *testing.T) {
	ch := make(chan m.Outcome, 1)
	ch <- m.Outcome{Status: m.StatusNoPathFound, Generation: 7}

	done := make(chan struct{})

	msg, ok := waitForOutcome(ch, done)().(outcomeMsg)
	if !ok {
		t.Fatalf("waitForOutcome returned %T, want outcomeMsg", msg)
	}

	if msg.outcome.Generation != 7 {
		t.Fatalf("generation = %d, want 7", msg.outcome.Generation)
	}

	close(ch)

	if got := waitForOutcome(ch, done)(); got != nil {
		t.Fatalf("waitForOutcome on closed channel = %v, want nil", got)
	}
}

func TestWaitForOutcome_ReturnsWhenDone(t *testing.T) {
	done := make(chan struct{})
	close(done)

	if got := waitForOutcome(make(chan m.Outcome), done)(); got != nil {
		t.Fatalf("waitForOutcome after done = %v, want nil", got)
	}
}

func TestSaveSettings(t *testing.T) {
	if cmd := saveSettings(nil, m.DefaultSettings()); cmd != nil {
		t.Fatalf("saveSettings(nil) returned a command")
	}

	errBoom := errors.New("boom")

	var saved m.Settings

	cmd := saveSettings(func(s m.Settings) error {
		saved = s
		return errBoom
	}, m.Settings{BoardSize: 9, MaxMoves: 2})

	msg, ok := cmd().(settingsSavedMsg)
	if !ok {
		t.Fatalf("saveSettings command returned %T", msg)
	}

	if saved.BoardSize != 9 || !errors.Is(msg.err, errBoom) {
		t.Fatalf("unexpected save result: saved=%+v err=%v", saved, msg.err)
	}
}
