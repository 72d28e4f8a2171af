package models

// Recommendation is one crop-recommendation measurement set. Values are kept
// as strings, matching what the mobile client submits.
type Recommendation struct {
	ID          int64
	N           string
	P           string
	K           string
	Temperature string
	Humidity    string
	PH          string
	Rainfall    string
}
