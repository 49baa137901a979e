package dto

// Selection is a stored comparison row before products and flavors are resolved.
type Selection struct {
	ProductID int64 `db:"product_id"`
	FlavorID  int64 `db:"flavor_id"`
}
