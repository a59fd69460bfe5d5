package components

import (
	"strings"
	"testing"
)

func TestHeaderView(t *testing.T) {
	h := NewHeader()
	h.SetTabs([]Tab{{Key: "1", Title: "Products"}, {Key: "2", Title: "Cart"}})
	h.SetActive(1)
	h.SetCart(3, "$45.00")

	view := h.View()
	for _, want := range []string{"ARTISAN", "1 Products", "2 Cart", "Cart", "3", "$45.00"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q: %q", want, view)
		}
	}
}

func TestHeaderWithoutTotal(t *testing.T) {
	h := NewHeader()
	h.SetData(HeaderData{Active: -1})
	view := h.View()
	if !strings.Contains(view, "0") {
		t.Error("empty cart badge should show 0")
	}
	if strings.Contains(view, "$") {
		t.Error("no total should be shown when it is empty")
	}
}

func TestHeaderWidth(t *testing.T) {
	h := NewHeader()
	h.SetWidth(100)
	h.SetCart(1, "$5.00")
	if !strings.Contains(h.View(), "$5.00") {
		t.Error("wide header should still show the cart total")
	}
}
