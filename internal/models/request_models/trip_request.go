package request_models

// TripRequest is the planning-form payload sent to the AI planner endpoint.
type TripRequest struct {
	From        string `json:"from" binding:"required"`
	To          string `json:"to" binding:"required"`
	Duration    string `json:"duration" binding:"required"`
	People      string `json:"people"`
	Description string `json:"description"`
}

type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}
