package content

import (
	"github.com/pkg/errors"
)

type Image struct {
	Src  string `json:"src"`
	Name string `json:"name,omitempty"`
}

type ItineraryDay struct {
	Day         int    `json:"day"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Trek is one record under information/treks. The file stem is the slug.
type Trek struct {
	Slug          string         `json:"slug"`
	Title         string         `json:"title"`
	Region        string         `json:"region"`
	Duration      string         `json:"duration"`
	Destination   string         `json:"destination"`
	MaxElevation  string         `json:"maxElevation,omitempty"`
	Difficulty    string         `json:"difficulty,omitempty"`
	Accommodation string         `json:"accommodation,omitempty"`
	Transport     string         `json:"transport,omitempty"`
	CoverImage    string         `json:"coverImage,omitempty"`
	Images        []Image        `json:"images,omitempty"`
	Overview      []string       `json:"overview,omitempty"`
	Highlights    []string       `json:"highlights,omitempty"`
	Itinerary     []ItineraryDay `json:"itinerary"`
}

// Validate checks that itinerary days are unique and ascending.
func (t Trek) Validate() error {
	prev := 0
	for i, d := range t.Itinerary {
		if i > 0 && d.Day <= prev {
			return errors.Errorf("trek %s: itinerary day %d out of order after day %d", t.Slug, d.Day, prev)
		}
		prev = d.Day
	}
	return nil
}

type Section struct {
	Heading    string   `json:"heading"`
	Paragraphs []string `json:"paragraphs"`
	Bullets    []string `json:"bullets,omitempty"`
}

type Source struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Guide holds the article fields shared by trek, tour and activity guides.
type Guide struct {
	SEOTitle        string    `json:"seoTitle"`
	MetaDescription string    `json:"metaDescription"`
	QuickKeywords   []string  `json:"quickKeywords"`
	IntroNote       string    `json:"introNote"`
	Sections        []Section `json:"sections"`
	Sources         []Source  `json:"sources"`
}

type TrekGuide struct {
	Slug string `json:"slug"`
	Guide
}

type TourGuide struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Duration string `json:"duration"`
	Image    string `json:"image"`
	Guide
}

type ActivityGuide struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Image string `json:"image"`
	Level string `json:"level"`
	Guide
}

type Hero struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Image    string `json:"image"`
}

type Package struct {
	Name     string `json:"name"`
	Duration string `json:"duration"`
	Image    string `json:"image"`
	Link     string `json:"link"`
}

type Activity struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}

type Testimonial struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

type Reviews struct {
	Score     float64 `json:"score"`
	CountText string  `json:"countText"`
}

// Home is the denormalized display data behind the landing page.
type Home struct {
	Hero             Hero          `json:"hero"`
	TrekkingPackages []Package     `json:"trekkingPackages"`
	TourPackages     []Package     `json:"tourPackages"`
	Activities       []Activity    `json:"activities"`
	Testimonials     []Testimonial `json:"testimonials"`
	Gallery          struct {
		Images []string `json:"images"`
	} `json:"gallery"`
	Reviews Reviews `json:"reviews"`
}

type Office struct {
	Name     string   `json:"name"`
	Address  string   `json:"address"`
	Phones   []string `json:"phones"`
	WhatsApp string   `json:"whatsapp,omitempty"`
	Email    string   `json:"email"`
}

type Company struct {
	Registered     string `json:"registered,omitempty"`
	TourismLicense string `json:"tourismLicense,omitempty"`
	VAT            string `json:"vat,omitempty"`
}

type Representative struct {
	Country string `json:"country"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

type Contact struct {
	HeadOffice      Office           `json:"headOffice"`
	Company         Company          `json:"company"`
	Representatives []Representative `json:"representatives"`
}

type Director struct {
	Name    string   `json:"name"`
	Title   string   `json:"title"`
	Photo   string   `json:"photo,omitempty"`
	Message []string `json:"message"`
}

// Page is a markdown document with YAML front matter under pages/.
type Page struct {
	Name        string
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Body        []byte
}
