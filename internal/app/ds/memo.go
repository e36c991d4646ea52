package ds

import "time"

// 3. Memos table - user notes attached to a service, searchable
type Memo struct {
	ID        uint   `gorm:"primaryKey"`
	ServiceID uint   `gorm:"not null;index"`
	Title     string `gorm:"type:varchar(200);not null"`
	Content   string `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
