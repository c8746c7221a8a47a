// Package gallery models the lightbox shown over the photo grid. The same
// transitions drive the server-rendered lightbox and assets/js/gallery.js.
package gallery

import (
	"sort"
	"strconv"
)

// Items drops empty entries, removes duplicates and sorts the rest.
func Items(images []string) []string {
	seen := make(map[string]struct{}, len(images))
	out := make([]string, 0, len(images))
	for _, src := range images {
		if src == "" {
			continue
		}
		if _, ok := seen[src]; ok {
			continue
		}
		seen[src] = struct{}{}
		out = append(out, src)
	}
	sort.Strings(out)
	return out
}

// State is the lightbox state. The zero value of Open means closed and
// Index is meaningless until the box is opened.
type State struct {
	Count int
	Open  bool
	Index int
}

func Closed(count int) State {
	return State{Count: count}
}

// OpenAt opens the lightbox on item i, clamped into range. With no items
// the state stays closed.
func (s State) OpenAt(i int) State {
	if s.Count <= 0 {
		return Closed(s.Count)
	}
	if i < 0 {
		i = 0
	}
	if i >= s.Count {
		i = s.Count - 1
	}
	return State{Count: s.Count, Open: true, Index: i}
}

func (s State) Next() State {
	if !s.Open || s.Count <= 0 {
		return s
	}
	s.Index = (s.Index + 1) % s.Count
	return s
}

func (s State) Prev() State {
	if !s.Open || s.Count <= 0 {
		return s
	}
	s.Index = (s.Index - 1 + s.Count) % s.Count
	return s
}

// Close covers the close control, the escape key and backdrop clicks.
func (s State) Close() State {
	return Closed(s.Count)
}

// HandleKey applies keyboard input. Unknown keys leave the state alone.
func (s State) HandleKey(key string) State {
	switch key {
	case "ArrowRight":
		return s.Next()
	case "ArrowLeft":
		return s.Prev()
	case "Escape":
		return s.Close()
	}
	return s
}

// Thumb is one grid entry.
type Thumb struct {
	Src  string
	Href string
}

// View is what the gallery template needs: the grid and, when open, the
// active photo with its neighbour links.
type View struct {
	Thumbs    []Thumb
	Open      bool
	Active    string
	Position  int // 1-based position for display
	Count     int
	PrevHref  string
	NextHref  string
	CloseHref string
}

// NewView builds the view for basePath with the raw "photo" query value.
// Anything that is not a canonical decimal index into the items renders
// closed, so "+1" and "01" do not alias photo 1.
func NewView(basePath string, images []string, photo string) View {
	items := Items(images)
	v := View{Count: len(items), CloseHref: basePath}
	for i, src := range items {
		v.Thumbs = append(v.Thumbs, Thumb{Src: src, Href: photoHref(basePath, i)})
	}

	s := Closed(len(items))
	if photo != "" {
		if i, err := strconv.Atoi(photo); err == nil && strconv.Itoa(i) == photo && i >= 0 && i < len(items) {
			s = s.OpenAt(i)
		}
	}
	if !s.Open {
		return v
	}
	v.Open = true
	v.Active = items[s.Index]
	v.Position = s.Index + 1
	v.PrevHref = photoHref(basePath, s.Prev().Index)
	v.NextHref = photoHref(basePath, s.Next().Index)
	return v
}

func photoHref(basePath string, i int) string {
	return basePath + "?photo=" + strconv.Itoa(i)
}
