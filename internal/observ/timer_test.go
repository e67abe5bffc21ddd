package observ

import (
	"errors"
	"testing"
)

func TestTimerPhases(t *testing.T) {
	tm := NewTimer()
	idx := tm.Begin("lex")
	tm.End(idx, "12 tokens")
	tm.End(42, "ignored")
	if err := tm.Track("parse", func() error { return errors.New("bad") }); err == nil {
		t.Fatal("Track swallowed error")
	}

	rep := tm.Report()
	if len(rep.Phases) != 2 {
		t.Fatalf("phases = %d", len(rep.Phases))
	}
	if rep.Phases[0].Note != "12 tokens" || rep.Phases[1].Note != "failed" {
		t.Errorf("notes = %+v", rep.Phases)
	}
	if rep.Phases[0].Name != "lex" || rep.Phases[1].Name != "parse" {
		t.Errorf("names = %+v", rep.Phases)
	}
}

func TestEmptyReport(t *testing.T) {
	rep := NewTimer().Report()
	if rep.TotalMS != 0 || len(rep.Phases) != 0 {
		t.Fatalf("report = %+v", rep)
	}
}
