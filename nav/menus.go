package nav

// Link is a single menu entry. Description is shown in the desktop dropdown.
type Link struct {
	Label       string
	Href        string
	Description string
}

// Item is a top-level menu entry: either a plain link (Href) or a group of
// Links.
type Item struct {
	Label string
	Href  string
	Links []Link
}

type FooterSection struct {
	Title string
	Links []Link
}

// Main is the header menu, shared by the desktop bar and the mobile drawer.
var Main = []Item{
	{Label: "Home", Href: "/"},
	{
		Label: "Destinations",
		Links: []Link{
			{Label: "Everest Region", Href: "/treks/everest-base-camp", Description: "Classic trails and big mountain views."},
			{Label: "Annapurna Region", Href: "/treks/annapurna-circuit", Description: "Diverse landscapes, villages, and passes."},
			{Label: "Manaslu Region", Href: "/treks/manaslu-circuit", Description: "Remote routes with authentic culture."},
			{Label: "Gokyo Valley", Href: "/treks/gokyo-lake", Description: "Turquoise lakes and high ridge panoramas."},
		},
	},
	{
		Label: "Trekking",
		Links: []Link{
			{Label: "All Treks", Href: "/treks", Description: "Browse all Himalayan trek itineraries."},
			{Label: "Everest Base Camp", Href: "/treks/everest-base-camp", Description: "Our most requested iconic trek."},
			{Label: "Annapurna Base Camp", Href: "/treks/annapurna-base-camp", Description: "Tea-house journey to Annapurna sanctuary."},
			{Label: "Mardi Himal", Href: "/treks/mardi-himal", Description: "Shorter ridge trek with superb sunrise views."},
		},
	},
	{
		Label: "Tours",
		Links: []Link{
			{Label: "All Cultural Tours", Href: "/tours", Description: "City, heritage, wildlife, and valley tours."},
			{Label: "Kathmandu & Pokhara", Href: "/tours#kathmandu-pokhara", Description: "History, lake city, and mountain backdrop."},
			{Label: "Kathmandu & Chitwan", Href: "/tours#kathmandu-chitwan", Description: "Culture plus jungle safari experience."},
			{Label: "Kathmandu & Lumbini", Href: "/tours#kathmandu-lumbini", Description: "Spiritual and UNESCO-focused route."},
		},
	},
	{
		Label: "Travel Guide",
		Links: []Link{
			{Label: "Trip Planning Guide", Href: "/travel-guide", Description: "Season, permits, packing, and logistics."},
			{Label: "Best Seasons", Href: "/travel-guide#seasons", Description: "When to trek for your preferred conditions."},
			{Label: "Permits & Visa", Href: "/travel-guide#permits", Description: "Documents and entry essentials in one place."},
			{Label: "Packing List", Href: "/travel-guide#packing", Description: "What to carry, rent, or buy in Kathmandu."},
		},
	},
	{
		Label: "Company",
		Links: []Link{
			{Label: "Director Message", Href: "/director", Description: "Meet the leadership behind AirPlus Nepal."},
			{Label: "Why AirPlus", Href: "/#contact", Description: "Safety-first operations with local expertise."},
			{Label: "Contact Us", Href: "/contact", Description: "Talk to us about your dates and goals."},
			{Label: "Plan a Custom Trip", Href: "/contact", Description: "Private departures and custom route design."},
		},
	},
	{Label: "Contact", Href: "/contact"},
}

var Footer = []FooterSection{
	{
		Title: "Explore",
		Links: []Link{
			{Label: "Home", Href: "/"},
			{Label: "All Treks", Href: "/treks"},
			{Label: "Cultural Tours", Href: "/tours"},
			{Label: "Travel Guide", Href: "/travel-guide"},
		},
	},
	{
		Title: "Popular Treks",
		Links: []Link{
			{Label: "Everest Base Camp", Href: "/treks/everest-base-camp"},
			{Label: "Annapurna Circuit", Href: "/treks/annapurna-circuit"},
			{Label: "Annapurna Base Camp", Href: "/treks/annapurna-base-camp"},
			{Label: "Manaslu Circuit", Href: "/treks/manaslu-circuit"},
		},
	},
	{
		Title: "Popular Tours",
		Links: []Link{
			{Label: "Kathmandu & Nagarkot", Href: "/tours#kathmandu-nagarkot"},
			{Label: "Kathmandu & Pokhara", Href: "/tours#kathmandu-pokhara"},
			{Label: "Kathmandu & Chitwan", Href: "/tours#kathmandu-chitwan"},
			{Label: "Kathmandu & Lumbini", Href: "/tours#kathmandu-lumbini"},
		},
	},
	{
		Title: "Company",
		Links: []Link{
			{Label: "Director Message", Href: "/director"},
			{Label: "Contact", Href: "/contact"},
			{Label: "Plan Your Trek", Href: "/contact"},
			{Label: "FAQ", Href: "/travel-guide#faq"},
		},
	},
}

type FAQ struct {
	Question string
	Answer   string
}

// FAQs backs the FAQ widget on the home and travel guide pages.
var FAQs = []FAQ{
	{Question: "Do I need previous trekking experience?", Answer: "No technical experience is needed for teahouse treks. Good walking fitness and a steady pace matter most; we match the route to your level."},
	{Question: "Which permits are required?", Answer: "Most treks need a national park or conservation area permit and, on many routes, a TIMS card. Restricted areas such as Manaslu need special permits arranged through a licensed operator."},
	{Question: "When is the best time to trek?", Answer: "Spring (March to May) and autumn (September to November) give the most stable weather and the clearest mountain views."},
	{Question: "How do you handle altitude sickness?", Answer: "Itineraries include acclimatization days, our guides carry first aid and monitor symptoms, and descent is always the first response."},
	{Question: "Can you customize an itinerary?", Answer: "Yes. Send your dates, pace and interests and we will design a private departure with realistic days and costs."},
}
