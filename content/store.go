package content

import (
	"bytes"
	"context"
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// ErrNotFound is returned when a detail record does not exist.
var ErrNotFound = errors.New("content: not found")

const (
	treksDir  = "treks"
	guidesDir = "guides"
)

// Store reads authored content from disk. Nothing is cached; every call
// performs a fresh read.
type Store struct {
	Dir      string // JSON records, e.g. "information"
	PagesDir string // markdown pages, e.g. "pages"
}

func NewStore(dir, pagesDir string) *Store {
	return &Store{Dir: dir, PagesDir: pagesDir}
}

func (s *Store) Home() (Home, error) {
	var h Home
	err := s.readJSON(&h, "home.json")
	return h, err
}

func (s *Store) Contact() (Contact, error) {
	var c Contact
	err := s.readJSON(&c, "contact.json")
	return c, err
}

func (s *Store) Director() (Director, error) {
	var d Director
	err := s.readJSON(&d, "director.json")
	return d, err
}

func (s *Store) Tours() ([]TourGuide, error) {
	var tours []TourGuide
	err := s.readJSON(&tours, "tours.json")
	return tours, err
}

func (s *Store) Activities() ([]ActivityGuide, error) {
	var activities []ActivityGuide
	err := s.readJSON(&activities, "activities.json")
	return activities, err
}

// Trek loads a single trek by slug. Unknown or unsafe slugs yield ErrNotFound.
func (s *Store) Trek(slug string) (Trek, error) {
	if !ValidSlug(slug) {
		return Trek{}, ErrNotFound
	}
	var t Trek
	if err := s.readJSON(&t, treksDir, slug+".json"); err != nil {
		return Trek{}, err
	}
	if err := checkTrek(t, slug); err != nil {
		return Trek{}, err
	}
	return t, nil
}

// TrekGuide loads the optional long-form guide for a trek.
func (s *Store) TrekGuide(slug string) (TrekGuide, error) {
	if !ValidSlug(slug) {
		return TrekGuide{}, ErrNotFound
	}
	var g TrekGuide
	if err := s.readJSON(&g, guidesDir, slug+".json"); err != nil {
		return TrekGuide{}, err
	}
	if g.Slug == "" {
		g.Slug = slug
	}
	return g, nil
}

func (s *Store) TourGuide(id string) (TourGuide, error) {
	tours, err := s.Tours()
	if err != nil {
		return TourGuide{}, err
	}
	for _, t := range tours {
		if t.ID == id {
			return t, nil
		}
	}
	return TourGuide{}, ErrNotFound
}

func (s *Store) ActivityGuide(id string) (ActivityGuide, error) {
	activities, err := s.Activities()
	if err != nil {
		return ActivityGuide{}, err
	}
	for _, a := range activities {
		if a.ID == id {
			return a, nil
		}
	}
	return ActivityGuide{}, ErrNotFound
}

// TrekSlugs lists the slugs of every trek file, sorted.
func (s *Store) TrekSlugs() ([]string, error) {
	files, err := filepath.Glob(filepath.Join(s.Dir, treksDir, "*.json"))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	slugs := make([]string, 0, len(files))
	for _, f := range files {
		slugs = append(slugs, strings.TrimSuffix(filepath.Base(f), ".json"))
	}
	sort.Strings(slugs)
	return slugs, nil
}

// Treks reads every trek file concurrently and returns them sorted by slug.
func (s *Store) Treks(ctx context.Context) ([]Trek, error) {
	slugs, err := s.TrekSlugs()
	if err != nil {
		return nil, err
	}
	treks := make([]Trek, len(slugs))
	g, ctx := errgroup.WithContext(ctx)
	for i, slug := range slugs {
		i, slug := i, slug
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			var t Trek
			if err := s.readJSON(&t, treksDir, slug+".json"); err != nil {
				return err
			}
			if err := checkTrek(t, slug); err != nil {
				return err
			}
			treks[i] = t
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return treks, nil
}

// Page loads pages/<name>.md. Front matter is optional YAML between "---"
// lines at the top of the file.
func (s *Store) Page(name string) (Page, error) {
	if !ValidSlug(name) {
		return Page{}, ErrNotFound
	}
	file := filepath.Join(s.PagesDir, name+".md")
	data, err := os.ReadFile(file)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Page{}, ErrNotFound
		}
		return Page{}, errors.WithStack(err)
	}

	var page Page
	body, err := frontmatter.Parse(bytes.NewReader(data), &page)
	if err != nil {
		return Page{}, errors.Wrapf(err, "parse front matter %s", file)
	}
	page.Name = name
	page.Body = body
	return page, nil
}

func (s *Store) readJSON(v any, elem ...string) error {
	file := filepath.Join(append([]string{s.Dir}, elem...)...)
	data, err := os.ReadFile(file)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ErrNotFound
		}
		return errors.WithStack(err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return errors.Wrapf(err, "decode %s", file)
	}
	return nil
}

func checkTrek(t Trek, slug string) error {
	if t.Slug != slug {
		return errors.Errorf("trek file %s.json declares slug %q", slug, t.Slug)
	}
	return t.Validate()
}

var slugPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// ValidSlug reports whether slug is a canonical record key: lower-case
// letters, digits and hyphens only. Anything else, including case or
// whitespace variants of a real slug, is not a record.
func ValidSlug(slug string) bool {
	return slugPattern.MatchString(slug)
}

// LoadAll runs independent loads concurrently and waits for all of them.
// The first failure is returned.
func LoadAll(ctx context.Context, loads ...func(context.Context) error) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, load := range loads {
		load := load
		g.Go(func() error {
			return load(ctx)
		})
	}
	return g.Wait()
}
