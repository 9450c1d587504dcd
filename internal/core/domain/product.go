package domain

import "time"

const (
	ProductDescriptionMin = 10
	ProductDescriptionMax = 500
)

// Product is a catalog entry. CreatedAt is set once on insert.
type Product struct {
	ID          string    `json:"_id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ProductChanges carries a partial product update. Nil fields are left
// unchanged.
type ProductChanges struct {
	Name        *string
	Price       *float64
	Description *string
}

func (c ProductChanges) IsEmpty() bool {
	return c.Name == nil && c.Price == nil && c.Description == nil
}
