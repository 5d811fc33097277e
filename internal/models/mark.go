package models

// Mark is a single exam result. The collection is append-only; a mark belongs
// to whichever student's registration number matches at read time, there is no
// foreign-key enforcement in the store.
type Mark struct {
	RegNo     string  `json:"regNo"`
	Subject   string  `json:"subject"`
	Exam      string  `json:"exam"`
	Score     float64 `json:"score"`
	OutOf     float64 `json:"outOf"`
	CreatedAt int64   `json:"createdAt"`
}
