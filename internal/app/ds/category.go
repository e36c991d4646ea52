package ds

import "time"

// 1. Categories table - groups services, ordered by SortOrder in listings
type Category struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"type:varchar(100);unique;not null"`
	Description string `gorm:"type:text"`
	Color       string `gorm:"type:varchar(20)"` // display color, e.g. #FF9900
	SortOrder   int    `gorm:"type:int;default:0;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
