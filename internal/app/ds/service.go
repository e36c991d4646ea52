package ds

import "time"

// 2. Services table - one AWS service per row, belongs to a category
type Service struct {
	ID          uint    `gorm:"primaryKey"`
	Name        string  `gorm:"type:varchar(100);unique;not null"`
	Description string  `gorm:"type:text"`
	CategoryID  uint    `gorm:"not null;index"`
	IconURL     *string `gorm:"type:varchar(255)"` // Nullable, object name in MinIO
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Category Category `gorm:"foreignKey:CategoryID"`
	Memos    []Memo   `gorm:"foreignKey:ServiceID"`
}
