package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/tttaaaiiissseee/kiro-aws-app20251214-sub000/internal/app/apperr"
	"github.com/tttaaaiiissseee/kiro-aws-app20251214-sub000/internal/app/ds"
)

// GetServices returns all services, optionally restricted to a category.
func (r *Repository) GetServices(categoryID *uint) ([]ds.Service, error) {
	tx := r.db.Preload("Category").Order("name asc")
	if categoryID != nil {
		tx = tx.Where("category_id = ?", *categoryID)
	}
	var services []ds.Service
	if err := tx.Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (r *Repository) GetServiceByID(id uint) (*ds.Service, error) {
	var service ds.Service
	err := r.db.Preload("Category").Preload("Memos").First(&service, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ServiceNotFound(id)
	}
	if err != nil {
		return nil, err
	}
	return &service, nil
}

func (r *Repository) ServiceExists(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&ds.Service{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *Repository) CreateService(name, description string, categoryID uint) (*ds.Service, error) {
	if _, err := r.GetCategoryByID(categoryID); err != nil {
		return nil, err
	}

	var count int64
	if err := r.db.Model(&ds.Service{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, apperr.DuplicateName(name)
	}

	service := ds.Service{
		Name:        name,
		Description: description,
		CategoryID:  categoryID,
	}
	if err := r.db.Create(&service).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

func (r *Repository) UpdateService(id uint, name, description *string, categoryID *uint) error {
	if _, err := r.GetServiceByID(id); err != nil {
		return err
	}

	updates := map[string]interface{}{}
	if name != nil {
		var count int64
		if err := r.db.Model(&ds.Service{}).Where("name = ? AND id != ?", *name, id).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return apperr.DuplicateName(*name)
		}
		updates["name"] = *name
	}
	if description != nil {
		updates["description"] = *description
	}
	if categoryID != nil {
		if _, err := r.GetCategoryByID(*categoryID); err != nil {
			return err
		}
		updates["category_id"] = *categoryID
	}
	if len(updates) == 0 {
		return nil
	}
	return r.db.Model(&ds.Service{}).Where("id = ?", id).Updates(updates).Error
}

// DeleteService removes a service and everything hanging off it.
func (r *Repository) DeleteService(id uint) error {
	if _, err := r.GetServiceByID(id); err != nil {
		return err
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("service_id = ?", id).Delete(&ds.Memo{}).Error; err != nil {
			return err
		}
		if err := tx.Where("source_id = ? OR target_id = ?", id, id).Delete(&ds.ServiceRelation{}).Error; err != nil {
			return err
		}
		if err := tx.Where("service_id = ?", id).Delete(&ds.ServiceAttributeValue{}).Error; err != nil {
			return err
		}
		return tx.Delete(&ds.Service{}, id).Error
	})
}

func (r *Repository) SetServiceIcon(id uint, iconURL *string) error {
	return r.db.Model(&ds.Service{}).Where("id = ?", id).Update("icon_url", iconURL).Error
}
