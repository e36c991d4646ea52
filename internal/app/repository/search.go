package repository

import (
	"strings"

	"github.com/tttaaaiiissseee/kiro-aws-app20251214-sub000/internal/app/ds"
	"github.com/tttaaaiiissseee/kiro-aws-app20251214-sub000/internal/app/search"
)

// SearchCandidates finds services whose name, description or any memo
// may contain the query, case-insensitively. LOWER(...) LIKE keeps the
// query portable between postgres and the sqlite test database.
func (r *Repository) SearchCandidates(query string, categoryID *uint) ([]search.Candidate, error) {
	pattern := "%" + strings.ToLower(query) + "%"

	memoMatch := r.db.Model(&ds.Memo{}).
		Select("service_id").
		Where("LOWER(title) LIKE ? OR LOWER(content) LIKE ?", pattern, pattern)

	tx := r.db.Preload("Category").Preload("Memos").
		Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ? OR id IN (?)", pattern, pattern, memoMatch)
	if categoryID != nil {
		tx = tx.Where("category_id = ?", *categoryID)
	}

	var services []ds.Service
	if err := tx.Order("name asc").Find(&services).Error; err != nil {
		return nil, err
	}

	candidates := make([]search.Candidate, len(services))
	for i, s := range services {
		candidates[i] = search.Candidate{
			Service:      s,
			CategoryName: s.Category.Name,
			Memos:        s.Memos,
		}
	}
	return candidates, nil
}

// PopularServices ranks services by memo count, most-recently-updated
// first among ties.
func (r *Repository) PopularServices(limit int) ([]search.PopularService, error) {
	var rows []search.PopularService
	err := r.db.Model(&ds.Service{}).
		Select("services.id, services.name, services.description, count(memos.id) as memo_count, services.updated_at").
		Joins("left join memos on memos.service_id = services.id").
		Group("services.id, services.name, services.description, services.updated_at").
		Order("memo_count desc").
		Order("services.updated_at desc").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
