package model

// Record is one released title's sales entry. Sales figures are in millions of units.
type Record struct {
	Rank        int     `json:"rank"`
	Name        string  `json:"name"`
	Platform    string  `json:"platform"`
	Year        int     `json:"year"`
	Genre       string  `json:"genre"`
	Publisher   string  `json:"publisher"`
	NASales     float64 `json:"naSales"`
	EUSales     float64 `json:"euSales"`
	JPSales     float64 `json:"jpSales"`
	OtherSales  float64 `json:"otherSales"`
	GlobalSales float64 `json:"globalSales"`
}
