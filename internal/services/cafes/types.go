// The structs defined here abstract the cafe documents stored in MongoDB for
// API responses and requests.
package cafes

import "time"

type Cafe struct {
	Id          string            `json:"id"`
	Name        string            `json:"name"`
	Address     string            `json:"address"`
	City        string            `json:"city"`
	State       string            `json:"state"`
	PostalCode  string            `json:"postal_code"`
	Latitude    float64           `json:"latitude"`
	Longitude   float64           `json:"longitude"`
	Stars       float64           `json:"stars"`
	ReviewCount int               `json:"review_count"`
	IsOpen      int               `json:"is_open"`
	Attributes  map[string]any    `json:"attributes"`
	Categories  string            `json:"categories"`
	Hours       map[string]string `json:"hours"`
	Images      []string          `json:"images,omitempty"`
	Category    string            `json:"category"`
	OwnerId     string            `json:"ownerId,omitempty"`
	AddedAt     *time.Time        `json:"addedAt,omitempty"`
	UpdatedAt   *time.Time        `json:"updatedAt,omitempty"`
}

type AddCafeRequest struct {
	Id         string            `json:"id"`
	Name       string            `json:"name"`
	Address    string            `json:"address"`
	City       string            `json:"city"`
	State      string            `json:"state"`
	PostalCode string            `json:"postal_code"`
	Latitude   float64           `json:"latitude"`
	Longitude  float64           `json:"longitude"`
	Attributes map[string]any    `json:"attributes"`
	Categories string            `json:"categories"`
	Hours      map[string]string `json:"hours"`
	Images     []string          `json:"images"`
	Category   string            `json:"category"`
}

type UpdateCafeRequest struct {
	Name       *string            `json:"name,omitempty"`
	Address    *string            `json:"address,omitempty"`
	City       *string            `json:"city,omitempty"`
	State      *string            `json:"state,omitempty"`
	PostalCode *string            `json:"postal_code,omitempty"`
	IsOpen     *int               `json:"is_open,omitempty"`
	Attributes *map[string]any    `json:"attributes,omitempty"`
	Hours      *map[string]string `json:"hours,omitempty"`
	Images     *[]string          `json:"images,omitempty"`
	Category   *string            `json:"category,omitempty"`
}

type AllCafesResponse struct {
	Cafes []Cafe `json:"cafes"`
}
