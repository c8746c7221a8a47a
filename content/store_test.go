package content

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore() *Store {
	return NewStore("testdata/information", "testdata/pages")
}

func TestTrekReturnsRecordForKnownSlugs(t *testing.T) {
	s := newTestStore()
	slugs, err := s.TrekSlugs()
	require.NoError(t, err)
	require.Equal(t, []string{"alpha-trail", "bravo-ridge"}, slugs)

	for _, slug := range slugs {
		trek, err := s.Trek(slug)
		require.NoError(t, err, slug)
		assert.Equal(t, slug, trek.Slug)
	}
}

func TestTrekUnknownSlugIsNotFound(t *testing.T) {
	s := newTestStore()
	for _, slug := range []string{"nope", "", "../home", "treks/alpha-trail", `..\x`} {
		_, err := s.Trek(slug)
		assert.True(t, errors.Is(err, ErrNotFound), "slug %q: %v", slug, err)
	}
}

func TestTrekSlugVariantsAreNotFound(t *testing.T) {
	s := newTestStore()
	for _, slug := range []string{"Alpha-Trail", "ALPHA-TRAIL", " alpha-trail", "alpha-trail ", "alpha-trail/"} {
		_, err := s.Trek(slug)
		assert.True(t, errors.Is(err, ErrNotFound), "slug %q: %v", slug, err)
		_, err = s.TrekGuide(slug)
		assert.True(t, errors.Is(err, ErrNotFound), "guide slug %q: %v", slug, err)
	}
}

func TestValidSlug(t *testing.T) {
	for _, slug := range []string{"alpha-trail", "poon-hill", "k2"} {
		assert.True(t, ValidSlug(slug), slug)
	}
	for _, slug := range []string{"", "Alpha", " a", "a b", "../x", "a/b", `a\b`, "a.json"} {
		assert.False(t, ValidSlug(slug), slug)
	}
}

func TestTreksLoadsAllSortedBySlug(t *testing.T) {
	treks, err := newTestStore().Treks(context.Background())
	require.NoError(t, err)
	require.Len(t, treks, 2)
	assert.Equal(t, "alpha-trail", treks[0].Slug)
	assert.Equal(t, "bravo-ridge", treks[1].Slug)
	assert.Equal(t, "/img/bravo.jpg", treks[1].CoverImage)
}

func TestTreksRejectsSlugFilenameMismatch(t *testing.T) {
	s := NewStore("testdata/broken", "testdata/pages")
	_, err := s.Treks(context.Background())
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNotFound))
	assert.Contains(t, err.Error(), "other-name")

	_, err = s.Trek("wrong-name")
	require.Error(t, err)
}

func TestValidateItineraryOrder(t *testing.T) {
	ok := Trek{Slug: "x", Itinerary: []ItineraryDay{{Day: 1}, {Day: 2}, {Day: 4}}}
	assert.NoError(t, ok.Validate())

	dup := Trek{Slug: "x", Itinerary: []ItineraryDay{{Day: 1}, {Day: 1}}}
	assert.Error(t, dup.Validate())

	desc := Trek{Slug: "x", Itinerary: []ItineraryDay{{Day: 3}, {Day: 2}}}
	assert.Error(t, desc.Validate())
}

func TestMalformedAggregateIsNotNotFound(t *testing.T) {
	_, err := NewStore("testdata/broken", "testdata/pages").Home()
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNotFound))
}

func TestMissingAggregateIsNotFound(t *testing.T) {
	_, err := newTestStore().Contact()
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestHome(t *testing.T) {
	home, err := newTestStore().Home()
	require.NoError(t, err)
	assert.Equal(t, "Hello", home.Hero.Title)
	assert.Equal(t, []string{"/b.jpg", "/a.jpg"}, home.Gallery.Images)
	assert.InDelta(t, 4.9, home.Reviews.Score, 0.001)
}

func TestTrekGuide(t *testing.T) {
	s := newTestStore()
	g, err := s.TrekGuide("alpha-trail")
	require.NoError(t, err)
	assert.Equal(t, "Alpha Trail Guide", g.SEOTitle)
	require.Len(t, g.Sections, 1)
	assert.Equal(t, "How Hard Is It?", g.Sections[0].Heading)

	_, err = s.TrekGuide("bravo-ridge")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestTourAndActivityGuides(t *testing.T) {
	s := newTestStore()
	tour, err := s.TourGuide("city-tour")
	require.NoError(t, err)
	assert.Equal(t, "City Tour", tour.Title)

	_, err = s.TourGuide("missing")
	assert.True(t, errors.Is(err, ErrNotFound))

	act, err := s.ActivityGuide("rafting")
	require.NoError(t, err)
	assert.Equal(t, "Easy", act.Level)
}

func TestPage(t *testing.T) {
	s := newTestStore()
	page, err := s.Page("about")
	require.NoError(t, err)
	assert.Equal(t, "About Us", page.Title)
	assert.Equal(t, "Who we are.", page.Description)
	assert.Contains(t, string(page.Body), "We guide treks.")

	_, err = s.Page("missing")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestPageWithoutFrontMatter(t *testing.T) {
	page, err := newTestStore().Page("plain")
	require.NoError(t, err)
	assert.Empty(t, page.Title)
	assert.Equal(t, "plain", page.Name)
	assert.Contains(t, string(page.Body), "No front matter here.")
}

func TestLoadAllReturnsFirstError(t *testing.T) {
	boom := errors.New("boom")
	var home Home
	err := LoadAll(context.Background(),
		func(context.Context) error {
			var err error
			home, err = newTestStore().Home()
			return err
		},
		func(context.Context) error { return boom },
	)
	assert.ErrorIs(t, err, boom)

	err = LoadAll(context.Background(), func(context.Context) error {
		var err error
		home, err = newTestStore().Home()
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, "Hello", home.Hero.Title)
}
