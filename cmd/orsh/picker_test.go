package main

import (
	"errors"
	"testing"

	"github.com/charmbracelet/huh"
)

func TestPickSiteReturnsSelection(t *testing.T) {
	orig := runFormFunc
	runFormFunc = func(form *huh.Form) error { return nil }
	t.Cleanup(func() { runFormFunc = orig })

	name, err := pickSite([]string{"alpha", "beta"})
	if err != nil {
		t.Fatalf("pickSite error: %v", err)
	}
	if name != "alpha" {
		t.Fatalf("expected preselected first site, got %q", name)
	}
}

func TestPickSiteAbortMapsToSilentExit(t *testing.T) {
	orig := runFormFunc
	runFormFunc = func(form *huh.Form) error { return huh.ErrUserAborted }
	t.Cleanup(func() { runFormFunc = orig })

	_, err := pickSite([]string{"alpha"})
	var silent *SilentExitError
	if !errors.As(err, &silent) {
		t.Fatalf("expected SilentExitError, got %v", err)
	}
	if silent.Code != 1 {
		t.Fatalf("expected exit code 1, got %d", silent.Code)
	}
}

func TestPickSitePropagatesFormErrors(t *testing.T) {
	orig := runFormFunc
	wantErr := errors.New("render failed")
	runFormFunc = func(form *huh.Form) error { return wantErr }
	t.Cleanup(func() { runFormFunc = orig })

	_, err := pickSite([]string{"alpha"})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected form error, got %v", err)
	}
}

func TestPickerKeyMapBindings(t *testing.T) {
	km := pickerKeyMap()
	if km.Select.Filter.Enabled() {
		t.Fatalf("expected filtering to be disabled")
	}
	gotEsc := false
	for _, k := range km.Quit.Keys() {
		if k == "esc" {
			gotEsc = true
		}
	}
	if !gotEsc {
		t.Fatalf("expected esc bound to quit, got %v", km.Quit.Keys())
	}
}
