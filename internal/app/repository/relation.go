package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/tttaaaiiissseee/kiro-aws-app20251214-sub000/internal/app/apperr"
	"github.com/tttaaaiiissseee/kiro-aws-app20251214-sub000/internal/app/ds"
)

// GetRelationsByService returns relations where the service is either
// endpoint, with both endpoints preloaded.
func (r *Repository) GetRelationsByService(serviceID uint) ([]ds.ServiceRelation, error) {
	if _, err := r.GetServiceByID(serviceID); err != nil {
		return nil, err
	}
	var relations []ds.ServiceRelation
	err := r.db.Preload("Source").Preload("Target").
		Where("source_id = ? OR target_id = ?", serviceID, serviceID).
		Order("created_at desc").
		Find(&relations).Error
	if err != nil {
		return nil, err
	}
	return relations, nil
}

func (r *Repository) CreateRelation(sourceID, targetID uint, label string) (*ds.ServiceRelation, error) {
	if sourceID == targetID {
		return nil, apperr.SelfRelation()
	}
	for _, id := range []uint{sourceID, targetID} {
		exists, err := r.ServiceExists(id)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, apperr.ServiceNotFound(id)
		}
	}

	var count int64
	err := r.db.Model(&ds.ServiceRelation{}).
		Where("source_id = ? AND target_id = ?", sourceID, targetID).
		Count(&count).Error
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, apperr.DuplicateRelation(sourceID, targetID)
	}

	relation := ds.ServiceRelation{SourceID: sourceID, TargetID: targetID, Label: label}
	if err := r.db.Create(&relation).Error; err != nil {
		return nil, err
	}
	return &relation, nil
}

func (r *Repository) DeleteRelation(id uint) error {
	var relation ds.ServiceRelation
	err := r.db.First(&relation, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.RelationNotFound(id)
	}
	if err != nil {
		return err
	}
	return r.db.Delete(&ds.ServiceRelation{}, id).Error
}
