package model

import "time"

type Feedback struct {
	ID        int64     `json:"id"`
	ProductID int64     `json:"productId"`
	UserID    string    `json:"userId"`
	Login     string    `json:"login"`
	Text      string    `json:"text"`
	Grade     int       `json:"grade"`
	CreatedAt time.Time `json:"createDate"`
}
