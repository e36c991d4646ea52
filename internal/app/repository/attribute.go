package repository

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tttaaaiiissseee/kiro-aws-app20251214-sub000/internal/app/apperr"
	"github.com/tttaaaiiissseee/kiro-aws-app20251214-sub000/internal/app/comparison"
	"github.com/tttaaaiiissseee/kiro-aws-app20251214-sub000/internal/app/ds"
)

// SeedDefaultAttributes inserts the built-in default attributes if they
// are not present yet. Safe to run on every migrate.
func (r *Repository) SeedDefaultAttributes() error {
	for _, attr := range ds.DefaultComparisonAttributes() {
		row := attr
		if err := r.db.Where("name = ?", attr.Name).FirstOrCreate(&row).Error; err != nil {
			return err
		}
	}
	return nil
}

// ListAttributes returns every comparison attribute, defaults first,
// then alphabetically by lower-cased name. LOWER keeps the order
// collation-independent and in step with the matrix column order.
func (r *Repository) ListAttributes() ([]ds.ComparisonAttribute, error) {
	var attributes []ds.ComparisonAttribute
	err := r.db.Order("is_default desc").Order("LOWER(name) asc").Find(&attributes).Error
	if err != nil {
		return nil, err
	}
	return attributes, nil
}

func (r *Repository) GetAttributeByID(id uint) (*ds.ComparisonAttribute, error) {
	var attribute ds.ComparisonAttribute
	err := r.db.First(&attribute, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.AttributeNotFound(id)
	}
	if err != nil {
		return nil, err
	}
	return &attribute, nil
}

// CreateAttribute adds a user-defined comparison attribute. Names
// collide on case-sensitive exact match; created attributes are never
// defaults.
func (r *Repository) CreateAttribute(name, description string, dataType comparison.DataType) (*ds.ComparisonAttribute, error) {
	var count int64
	if err := r.db.Model(&ds.ComparisonAttribute{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, apperr.DuplicateAttributeName(name)
	}

	attribute := ds.ComparisonAttribute{
		Name:        name,
		Description: description,
		DataType:    string(dataType),
		IsDefault:   false,
	}
	if err := r.db.Create(&attribute).Error; err != nil {
		return nil, err
	}
	return &attribute, nil
}

// SetAttributeValue encodes and upserts the value for one
// (service, attribute) pair. Last write wins. Returns the decoded value.
func (r *Repository) SetAttributeValue(serviceID, attributeID uint, rawValue string) (*comparison.Value, error) {
	exists, err := r.ServiceExists(serviceID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperr.ServiceNotFound(serviceID)
	}

	attribute, err := r.GetAttributeByID(attributeID)
	if err != nil {
		return nil, err
	}

	encoded, err := comparison.Encode(comparison.DataType(attribute.DataType), rawValue)
	if err != nil {
		return nil, err
	}

	row := ds.ServiceAttributeValue{
		ServiceID:   serviceID,
		AttributeID: attributeID,
		Value:       encoded,
	}
	err = r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "service_id"}, {Name: "attribute_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return nil, err
	}

	value, err := comparison.Decode(comparison.DataType(attribute.DataType), encoded)
	if err != nil {
		return nil, err
	}
	return &value, nil
}
