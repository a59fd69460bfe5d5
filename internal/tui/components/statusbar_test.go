package components

import (
	"strings"
	"testing"
)

func TestStatusBarUser(t *testing.T) {
	s := NewStatusBar()
	if !strings.Contains(s.View(), "Signed out") {
		t.Error("empty username should read as signed out")
	}

	s.SetUsername("maria")
	view := s.View()
	if !strings.Contains(view, "maria") || strings.Contains(view, "Signed out") {
		t.Errorf("view = %q, want the username", view)
	}
}

func TestStatusBarLoadingAndMessage(t *testing.T) {
	s := NewStatusBar()
	s.SetLoading(true)
	s.SetMessage("breaker open")
	view := s.View()
	if !strings.Contains(view, "Loading") || !strings.Contains(view, "breaker open") {
		t.Errorf("view = %q", view)
	}

	s.SetLoading(false)
	if strings.Contains(s.View(), "Loading") {
		t.Error("loading indicator should clear")
	}
}

func TestStatusBarShortcuts(t *testing.T) {
	s := NewStatusBar()
	s.SetWidth(160)
	s.SetShortcuts(CartShortcuts)
	view := s.View()
	for _, want := range []string{"checkout", "remove"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	s.SetData(StatusBarData{Username: "sam"})
	if strings.Contains(s.View(), "checkout") {
		t.Error("SetData should replace the shortcuts")
	}
}
