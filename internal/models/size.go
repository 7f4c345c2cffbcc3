package models

// Size represents a drink size option. The key is the natural identifier
// and is immutable after creation; the factor multiplies a coffee's base
// price.
type Size struct {
	Key       string  `json:"key" gorm:"primaryKey"`
	Label     string  `json:"label"`
	Factor    float64 `json:"factor"`
	SortOrder int     `json:"sort_order"`
}
