package seo

// Organization returns a TravelAgency schema for the operator.
func Organization(name, url, email string, phones []string) map[string]any {
	m := map[string]any{
		"@context": "https://schema.org",
		"@type":    "TravelAgency",
		"name":     name,
	}
	if url != "" {
		m["url"] = url
	}
	if email != "" {
		m["email"] = email
	}
	if len(phones) > 0 {
		m["telephone"] = phones[0]
	}
	return m
}

// ItineraryStop is one day of a TouristTrip.
type ItineraryStop struct {
	Name        string
	Description string
}

// TouristTrip describes a trek itinerary.
func TouristTrip(name, description, url, image string, stops []ItineraryStop) map[string]any {
	m := map[string]any{
		"@context": "https://schema.org",
		"@type":    "TouristTrip",
		"name":     name,
	}
	if description != "" {
		m["description"] = description
	}
	if url != "" {
		m["url"] = url
	}
	if image != "" {
		m["image"] = image
	}
	if len(stops) > 0 {
		el := make([]map[string]any, 0, len(stops))
		for i, s := range stops {
			el = append(el, map[string]any{
				"@type":    "ListItem",
				"position": i + 1,
				"item": map[string]any{
					"@type":       "TouristAttraction",
					"name":        s.Name,
					"description": s.Description,
				},
			})
		}
		m["itinerary"] = map[string]any{
			"@type":           "ItemList",
			"itemListElement": el,
		}
	}
	return m
}

// BreadcrumbItem maps name and absolute item URL.
type BreadcrumbItem struct {
	Name string
	Item string
}

// BreadcrumbList builds schema.org BreadcrumbList.
func BreadcrumbList(items []BreadcrumbItem) map[string]any {
	el := make([]map[string]any, 0, len(items))
	for i, it := range items {
		el = append(el, map[string]any{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     it.Name,
			"item":     it.Item,
		})
	}
	return map[string]any{
		"@context":        "https://schema.org",
		"@type":           "BreadcrumbList",
		"itemListElement": el,
	}
}
