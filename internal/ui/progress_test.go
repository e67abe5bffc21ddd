package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"monkey/internal/driver"
)

func newTestModel(files ...string) *progressModel {
	return NewProgressModel("checking", files, make(chan driver.Event)).(*progressModel)
}

func TestApplyEventTracksStatus(t *testing.T) {
	m := newTestModel("a.mon", "b.mon")

	m.applyEvent(driver.Event{File: "a.mon", Stage: driver.StageParse, Status: driver.StatusWorking})
	if got := statusLabel(m.items[0].stage, m.items[0].status); got != "parsing" {
		t.Fatalf("status = %q, want parsing", got)
	}
	if p := m.percent(); p != 0.35 {
		t.Fatalf("percent = %v, want 0.35", p)
	}

	m.applyEvent(driver.Event{File: "a.mon", Stage: driver.StageParse, Status: driver.StatusDone})
	m.applyEvent(driver.Event{File: "b.mon", Stage: driver.StageParse, Status: driver.StatusError})
	m.applyEvent(driver.Event{File: "b.mon", Stage: driver.StageParse, Status: driver.StatusError})
	if m.failed != 1 {
		t.Fatalf("failed = %d, want 1", m.failed)
	}
	if p := m.percent(); p != 1 {
		t.Fatalf("percent = %v, want 1", p)
	}
}

func TestApplyEventIgnoresUnknownFile(t *testing.T) {
	m := newTestModel("a.mon")
	if cmd := m.applyEvent(driver.Event{File: "zzz.mon", Status: driver.StatusDone}); cmd != nil {
		t.Fatal("unknown file should not schedule a command")
	}
	if m.items[0].status != driver.StatusQueued {
		t.Fatal("unrelated item changed")
	}
}

func TestUpdateDoneQuits(t *testing.T) {
	m := newTestModel("a.mon")
	_, cmd := m.Update(doneMsg{})
	if !m.done {
		t.Fatal("model should be done")
	}
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected tea.QuitMsg")
	}
}

func TestListenForEventReportsClose(t *testing.T) {
	events := make(chan driver.Event, 1)
	m := NewProgressModel("checking", []string{"a.mon"}, events).(*progressModel)
	events <- driver.Event{File: "a.mon", Status: driver.StatusCached}
	close(events)

	if msg, ok := m.listenForEvent()().(eventMsg); !ok || msg.Status != driver.StatusCached {
		t.Fatalf("unexpected first message: %#v", msg)
	}
	if _, ok := m.listenForEvent()().(doneMsg); !ok {
		t.Fatal("closed channel should yield doneMsg")
	}
}

func TestViewListsFiles(t *testing.T) {
	m := newTestModel("a.mon", "b.mon")
	m.applyEvent(driver.Event{File: "b.mon", Status: driver.StatusCached})
	m.Update(doneMsg{})

	view := m.View()
	for _, want := range []string{"done: checking", "a.mon", "b.mon", "queued", "cached"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Fatalf("got %q", got)
	}
	if got := truncate("a/very/long/path.mon", 10); got != "a/very/..." {
		t.Fatalf("got %q", got)
	}
	if got := truncate("日本語日本語", 3); got != "日" {
		t.Fatalf("got %q", got)
	}
}
