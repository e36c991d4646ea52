package ds

import "time"

// 4. Service relations table - directed link between two services.
// A row counts toward both endpoints when relation counts are computed.
type ServiceRelation struct {
	ID        uint   `gorm:"primaryKey"`
	SourceID  uint   `gorm:"not null;index;uniqueIndex:idx_relation_pair"`
	TargetID  uint   `gorm:"not null;index;uniqueIndex:idx_relation_pair"`
	Label     string `gorm:"type:varchar(100)"` // e.g. "triggers", "stores data in"
	CreatedAt time.Time

	Source Service `gorm:"foreignKey:SourceID"`
	Target Service `gorm:"foreignKey:TargetID"`
}
