package ds

import "time"

// 6. Attribute values table - one value per (service, attribute) pair.
// Value holds the string encoded by the comparison codec for the
// attribute's data type; rows are upserted, last write wins.
type ServiceAttributeValue struct {
	ID          uint   `gorm:"primaryKey"`
	ServiceID   uint   `gorm:"not null;index;uniqueIndex:idx_service_attribute"`
	AttributeID uint   `gorm:"not null;index;uniqueIndex:idx_service_attribute"`
	Value       string `gorm:"type:text;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Service   Service             `gorm:"foreignKey:ServiceID"`
	Attribute ComparisonAttribute `gorm:"foreignKey:AttributeID"`
}
