package seo

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAbsolutizesImageAndCanonical(t *testing.T) {
	m := New("https://example.com/", "/treks/x", "X", "desc", "/img/x.jpg", "article")
	assert.Equal(t, "https://example.com/treks/x", m.Canonical)
	assert.Equal(t, "https://example.com/img/x.jpg", m.OG.Image)
	assert.Equal(t, "article", m.OG.Type)
	assert.Equal(t, "summary_large_image", m.Twitter.Card)

	plain := New("https://example.com", "/", "Home", "", "", "")
	assert.Equal(t, "website", plain.OG.Type)
	assert.Empty(t, plain.Twitter.Card)
}

func TestTouristTrip(t *testing.T) {
	var m Meta
	m.AddJSONLD(TouristTrip("EBC", "", "https://example.com/treks/ebc", "", []ItineraryStop{
		{Name: "Day 1: Lukla", Description: "Fly in."},
		{Name: "Day 2: Namche", Description: "Climb."},
	}))
	require.Len(t, m.JSONLD, 1)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(m.JSONLD[0]), &decoded))
	assert.Equal(t, "TouristTrip", decoded["@type"])
	_, hasDesc := decoded["description"]
	assert.False(t, hasDesc)

	list := decoded["itinerary"].(map[string]any)["itemListElement"].([]any)
	require.Len(t, list, 2)
	assert.EqualValues(t, 2, list[1].(map[string]any)["position"])
}

func TestAddJSONLDDropsUnencodable(t *testing.T) {
	var m Meta
	m.AddJSONLD(map[string]any{"bad": make(chan int)})
	assert.Empty(t, m.JSONLD)
}

func TestBreadcrumbList(t *testing.T) {
	b := BreadcrumbList([]BreadcrumbItem{{Name: "Home", Item: "https://x/"}, {Name: "Treks", Item: "https://x/treks"}})
	el := b["itemListElement"].([]map[string]any)
	assert.Equal(t, 2, el[1]["position"])
	assert.Equal(t, "Treks", el[1]["name"])
}
