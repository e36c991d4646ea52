package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/tttaaaiiissseee/kiro-aws-app20251214-sub000/internal/app/apperr"
	"github.com/tttaaaiiissseee/kiro-aws-app20251214-sub000/internal/app/ds"
)

// GetCategories returns all categories ordered by sort order, then name.
func (r *Repository) GetCategories() ([]ds.Category, error) {
	var categories []ds.Category
	err := r.db.Order("sort_order asc").Order("name asc").Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *Repository) GetCategoryByID(id uint) (*ds.Category, error) {
	var category ds.Category
	err := r.db.First(&category, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.CategoryNotFound(id)
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *Repository) CreateCategory(name, description, color string) (*ds.Category, error) {
	var count int64
	if err := r.db.Model(&ds.Category{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, apperr.DuplicateName(name)
	}

	// new categories go to the end of the list
	var maxOrder int64
	r.db.Model(&ds.Category{}).Select("coalesce(max(sort_order), 0)").Scan(&maxOrder)

	category := ds.Category{
		Name:        name,
		Description: description,
		Color:       color,
		SortOrder:   int(maxOrder) + 1,
	}
	if err := r.db.Create(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *Repository) UpdateCategory(id uint, name, description, color *string) error {
	if _, err := r.GetCategoryByID(id); err != nil {
		return err
	}

	updates := map[string]interface{}{}
	if name != nil {
		var count int64
		if err := r.db.Model(&ds.Category{}).Where("name = ? AND id != ?", *name, id).Count(&count).Error; err != nil {
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
	if color != nil {
		updates["color"] = *color
	}
	if len(updates) == 0 {
		return nil
	}
	return r.db.Model(&ds.Category{}).Where("id = ?", id).Updates(updates).Error
}

// DeleteCategory removes a category. Blocked while any service still
// references it.
func (r *Repository) DeleteCategory(id uint) error {
	if _, err := r.GetCategoryByID(id); err != nil {
		return err
	}

	var serviceCount int64
	if err := r.db.Model(&ds.Service{}).Where("category_id = ?", id).Count(&serviceCount).Error; err != nil {
		return err
	}
	if serviceCount > 0 {
		return apperr.CategoryInUse(id, int(serviceCount))
	}
	return r.db.Delete(&ds.Category{}, id).Error
}

// CategoryOrder is one entry of a batch reorder.
type CategoryOrder struct {
	ID        uint
	SortOrder int
}

// ReorderCategories applies a batch of ordinal updates as a single
// transaction; an unknown ID rolls back the whole batch.
func (r *Repository) ReorderCategories(orders []CategoryOrder) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, o := range orders {
			res := tx.Model(&ds.Category{}).Where("id = ?", o.ID).Update("sort_order", o.SortOrder)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return apperr.CategoryNotFound(o.ID)
			}
		}
		return nil
	})
}
