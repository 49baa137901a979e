package model

type Discount struct {
	ID          int64  `db:"id" json:"id"`
	Percent     int    `db:"percent" json:"percent"`
	Description string `db:"description" json:"description"`
}
