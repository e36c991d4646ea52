package ds

import "time"

// 5. Comparison attributes table - user-defined comparison columns.
// DataType is fixed at creation time, there is no migration of stored values.
type ComparisonAttribute struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"type:varchar(100);unique;not null"`
	Description string `gorm:"type:text"`
	DataType    string `gorm:"type:varchar(20);not null"` // TEXT, NUMBER, BOOLEAN, URL
	IsDefault   bool   `gorm:"type:boolean;default:false;not null"`
	CreatedAt   time.Time
}

// DefaultComparisonAttributes are seeded at migrate time and included
// in every comparison without being requested.
func DefaultComparisonAttributes() []ComparisonAttribute {
	return []ComparisonAttribute{
		{Name: "料金体系", Description: "従量課金、固定料金など", DataType: "TEXT", IsDefault: true},
		{Name: "無料枠", Description: "無料利用枠があるか", DataType: "BOOLEAN", IsDefault: true},
	}
}
