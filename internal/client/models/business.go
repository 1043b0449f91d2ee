package models

// Business is a directory entry. Community events are denormalized into this
// collection by the create-post fan-out (the store has no joins), with
// Category set to "event".
type Business struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"reviewCount"`
	Address     string  `json:"address"`
	Phone       string  `json:"phone"`
	Hours       string  `json:"hours"`
	Image       string  `json:"image"`
	IsOpen      bool    `json:"isOpen"`
	Description string  `json:"description"`
}
