package entity

// ShoppingListItem is the summed requirement for one ingredient across every
// recipe in a user's cart.
type ShoppingListItem struct {
	IngredientID    uint   `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
	TotalAmount     int64  `json:"amount"`
}

type ShoppingListResponse struct {
	Items []ShoppingListItem `json:"items"`
}
