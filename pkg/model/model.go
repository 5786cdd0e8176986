package model

// SearchResult is one extracted search or news entry.
type SearchResult struct {
	Title   string
	Snippet string
	Link    string
	// Date is set only for results coming from a news query.
	Date string
}

// ResultSet is the ordered collection of results gathered for one request.
// Insertion order is source priority then query priority: general-query
// results come before news-query results. Consumers apply their own top-N
// slicing, so the set itself is never capped.
type ResultSet []SearchResult

// CompanySummaryResult is the terminal output of one summarize call. Each
// field is independently optional (empty string when nothing could be
// produced) so partial results still reach the caller.
type CompanySummaryResult struct {
	Overview      string
	TalentProfile string
	RecentVision  string
}
