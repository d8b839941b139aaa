package alerts

// Bulletin is one service advisory from the ferry operator's bulletins page.
type Bulletin struct {
	Title  string
	Body   string
	Posted string // raw date string as shown on the page, e.g. "Aug 29, 2026"
}
