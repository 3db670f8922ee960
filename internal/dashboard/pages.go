package dashboard

// Page identifies one of the fixed dashboard pages. Exactly one page is
// active at any time.
type Page string

const (
	PageOverview    Page = "overview"
	PagePerformance Page = "performance"
	PageStorage     Page = "storage"
	PageActions     Page = "actions"
	PageSettings    Page = "settings"
)

// Pages lists all pages in navigation order.
var Pages = []Page{PageOverview, PagePerformance, PageStorage, PageActions, PageSettings}

// Title returns the navigation label for the page.
func (p Page) Title() string {
	switch p {
	case PageOverview:
		return "Overview"
	case PagePerformance:
		return "Performance"
	case PageStorage:
		return "Storage"
	case PageActions:
		return "Actions"
	case PageSettings:
		return "Settings"
	default:
		return string(p)
	}
}

// ValidPage reports whether name identifies a known page.
func ValidPage(name string) bool {
	for _, p := range Pages {
		if Page(name) == p {
			return true
		}
	}
	return false
}

// pageIndex returns the position of p in the navigation order, or -1.
func pageIndex(p Page) int {
	for i, page := range Pages {
		if page == p {
			return i
		}
	}
	return -1
}
