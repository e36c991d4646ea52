package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/tttaaaiiissseee/kiro-aws-app20251214-sub000/internal/app/apperr"
	"github.com/tttaaaiiissseee/kiro-aws-app20251214-sub000/internal/app/ds"
)

func (r *Repository) GetMemosByService(serviceID uint) ([]ds.Memo, error) {
	if _, err := r.GetServiceByID(serviceID); err != nil {
		return nil, err
	}
	var memos []ds.Memo
	err := r.db.Where("service_id = ?", serviceID).Order("updated_at desc").Find(&memos).Error
	if err != nil {
		return nil, err
	}
	return memos, nil
}

func (r *Repository) GetMemoByID(id uint) (*ds.Memo, error) {
	var memo ds.Memo
	err := r.db.First(&memo, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.MemoNotFound(id)
	}
	if err != nil {
		return nil, err
	}
	return &memo, nil
}

func (r *Repository) CreateMemo(serviceID uint, title, content string) (*ds.Memo, error) {
	if _, err := r.GetServiceByID(serviceID); err != nil {
		return nil, err
	}
	memo := ds.Memo{ServiceID: serviceID, Title: title, Content: content}
	if err := r.db.Create(&memo).Error; err != nil {
		return nil, err
	}
	return &memo, nil
}

func (r *Repository) UpdateMemo(id uint, title, content *string) error {
	if _, err := r.GetMemoByID(id); err != nil {
		return err
	}
	updates := map[string]interface{}{}
	if title != nil {
		updates["title"] = *title
	}
	if content != nil {
		updates["content"] = *content
	}
	if len(updates) == 0 {
		return nil
	}
	return r.db.Model(&ds.Memo{}).Where("id = ?", id).Updates(updates).Error
}

func (r *Repository) DeleteMemo(id uint) error {
	if _, err := r.GetMemoByID(id); err != nil {
		return err
	}
	return r.db.Delete(&ds.Memo{}, id).Error
}
