package dto

type DriverRequest struct {
	Name   string `json:"name"`
	Seats  any    `json:"seats"`
	Parent bool   `json:"parent"`
}

type StudentRequest struct {
	Name string `json:"name"`
	Area string `json:"area"`
}

type AssignmentRequest struct {
	Origin   string           `json:"origin"`
	Present  []string         `json:"present"`
	Students []StudentRequest `json:"students"`
	Drivers  []DriverRequest  `json:"drivers"`
}

type PassengerResponse struct {
	Name         string  `json:"name"`
	Area         string  `json:"area"`
	Distance     float64 `json:"distance"`
	ParentPickup bool    `json:"parent_pickup"`
}

type RideResponse struct {
	Driver            string              `json:"driver"`
	Seats             int                 `json:"seats"`
	Parent            bool                `json:"parent"`
	Passengers        []PassengerResponse `json:"passengers"`
	DistanceTravelled float64             `json:"distance_travelled"`
}

type AssignmentResponse struct {
	Origin      string         `json:"origin"`
	Assignments []RideResponse `json:"assignments"`
	Unassigned  []string       `json:"unassigned"`
	SelfDriven  []string       `json:"self_driven"`
}
