package model

// Summary reports the record counts for one run. Kept plus Dropped always
// equals Input.
type Summary struct {
	Input   int `json:"input"`
	Kept    int `json:"kept"`
	Dropped int `json:"dropped"`
}
