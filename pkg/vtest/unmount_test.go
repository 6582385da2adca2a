package vtest

import (
	"errors"
	"fmt"
	"testing"
)

// recordingTB captures Errorf calls.
type recordingTB struct {
	testing.TB
	errs []string
}

func (r *recordingTB) Helper() {}

func (r *recordingTB) Errorf(format string, args ...any) {
	r.errs = append(r.errs, fmt.Sprintf(format, args...))
}

type unmounterFunc func() error

func (f unmounterFunc) Unmount() error { return f() }

func TestUnmountReportsError(t *testing.T) {
	rec := &recordingTB{}
	unmount(rec, unmounterFunc(func() error { return errors.New("commit failed") }))

	if len(rec.errs) != 1 {
		t.Fatalf("got %d errors, want 1: %v", len(rec.errs), rec.errs)
	}
	if want := "vtest: unmount failed: commit failed"; rec.errs[0] != want {
		t.Errorf("error = %q, want %q", rec.errs[0], want)
	}

	rec = &recordingTB{}
	unmount(rec, unmounterFunc(func() error { return nil }))
	if len(rec.errs) != 0 {
		t.Errorf("unexpected errors: %v", rec.errs)
	}
}
