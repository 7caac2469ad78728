package apimodels

// PaperSummary is the minimal bibliographic record supplied by the
// literature-retrieval collaborator. The analyzer assumes the sequence
// it receives is already quality-filtered.
type PaperSummary struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Abstract string `json:"abstract"`
	Year     int    `json:"year"`
}
