package dto

type AreaResponse struct {
	Area      string   `json:"area"`
	Residents []string `json:"residents"`
}

type RosterResponse struct {
	Areas []AreaResponse `json:"areas"`
}
