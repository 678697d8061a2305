package entities

import "github.com/shopspring/decimal"

// Guide is the schedulable resource. The engine only reads it.
type Guide struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Role      string          `json:"role"`
	DailyRate decimal.Decimal `json:"daily_rate"`
	Active    bool            `json:"active"`
}

// Client is the customer referenced by orders and budgets.
type Client struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
}

// Contact returns the best available contact string.
func (c Client) Contact() string {
	if c.Phone != "" {
		return c.Phone
	}
	return c.Email
}
