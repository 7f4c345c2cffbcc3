package models

// Extra represents an optional flat-price add-on. The name is the natural
// identifier and is immutable after creation.
type Extra struct {
	Name      string  `json:"name" gorm:"primaryKey"`
	Price     float64 `json:"price"`
	SortOrder int     `json:"sort_order"`
}
