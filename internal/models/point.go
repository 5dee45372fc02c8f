package models

// Point is one converted coordinate pair. Row is the 1-based spreadsheet row
// the values came from, counting the header as row 1.
type Point struct {
	Source    string  `json:"source,omitempty"`
	Row       int     `json:"row"`
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}
