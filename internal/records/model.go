package records

import "time"

// Display records served read-only to the dashboard pages. These map
// 1:1 onto their tables; no transformation happens on the way out.

type Product struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	SKU       string    `json:"sku"`
	Category  string    `json:"category"`
	Quantity  int       `json:"quantity"`
	UnitPrice float64   `json:"unit_price"`
	CreatedAt time.Time `json:"created_at"`
}

type Order struct {
	ID           string    `json:"id"`
	Reference    string    `json:"reference"`
	CustomerName string    `json:"customer_name"`
	Status       string    `json:"status"`
	Total        float64   `json:"total"`
	CreatedAt    time.Time `json:"created_at"`
}

type StaffMember struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Position string `json:"position"`
	Phone    string `json:"phone"`
}

type Partner struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Contact     string `json:"contact"`
	ServiceType string `json:"service_type"`
}

type Activity struct {
	ID        string    `json:"id"`
	Actor     string    `json:"actor"`
	Action    string    `json:"action"`
	Detail    string    `json:"detail"`
	CreatedAt time.Time `json:"created_at"`
}

// Metrics backs the dashboard cards.
type Metrics struct {
	Products      int `json:"products"`
	Orders        int `json:"orders"`
	Staff         int `json:"staff"`
	Partners      int `json:"partners"`
	ActivityToday int `json:"activity_today"`
}
