package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnchor(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Kathmandu & Pokhara", "kathmandu-pokhara"},
		{"  Everest Mountain Flight!  ", "everest-mountain-flight"},
		{"--Already-Fine--", "already-fine"},
		{"Trishuli   River Rafting (Day Trip)", "trishuli-river-rafting-day-trip"},
		{"Café Tour", "caf-tour"},
		{"2024/2025 Costs", "2024-2025-costs"},
		{"!!!", ""},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Anchor(tc.in), tc.in)
	}
}

func TestAnchorIsIdempotent(t *testing.T) {
	for _, in := range []string{"Kathmandu & Chitwan", "a--b", "x", "kathmandu-lumbini", "!!"} {
		once := Anchor(in)
		assert.Equal(t, once, Anchor(once), in)
	}
}

func TestTourAnchor(t *testing.T) {
	assert.Equal(t, "kathmandu-pokhara", TourAnchor("/tours/kathmandu-pokhara", "Ignored"))
	assert.Equal(t, "kathmandu-chitwan", TourAnchor("/tours/kathmandu-chitwan/", "Ignored"))
	assert.Equal(t, "kathmandu-lumbini", TourAnchor("", "Kathmandu & Lumbini"))
	assert.Equal(t, "kathmandu-nagarkot", TourAnchor("///", "Kathmandu Nagarkot"))
}
