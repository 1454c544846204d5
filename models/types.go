package models

// Response types

type CreatedResponse struct {
	ID int64 `json:"id"`
}

type DailyLogCreatedResponse struct {
	Date string `json:"date"`
}

type DailyLogResponse struct {
	Date     string                   `json:"date"`
	Plan     PlanSelectDaily          `json:"plan"`
	Servings []ServingSelectWithFoods `json:"servings"`
	Totals   Totals                   `json:"totals"`
}

type SystemResponse struct {
	Version int    `json:"version"`
	Latest  int    `json:"latest"`
	Dialect string `json:"dialect"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Field   string `json:"field,omitempty"`
}
