package repository

import (
	"github.com/tttaaaiiissseee/kiro-aws-app20251214-sub000/internal/app/comparison"
	"github.com/tttaaaiiissseee/kiro-aws-app20251214-sub000/internal/app/ds"
)

// ComparisonServices fetches the requested services in one batch,
// joined with category name and memo/relation counts. Missing IDs are
// simply absent from the result; the builder reports them.
func (r *Repository) ComparisonServices(ids []uint) ([]comparison.ServiceRow, error) {
	var rows []comparison.ServiceRow
	err := r.db.Model(&ds.Service{}).
		Select(`services.id, services.name, services.description,
			categories.name as category_name,
			(select count(*) from memos where memos.service_id = services.id) as memo_count,
			(select count(*) from service_relations
				where service_relations.source_id = services.id
				   or service_relations.target_id = services.id) as relation_count`).
		Joins("left join categories on categories.id = services.category_id").
		Where("services.id IN ?", ids).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ValuesForServices loads the stored cell values for a comparison in
// one query.
func (r *Repository) ValuesForServices(serviceIDs []uint, attributeIDs []uint) ([]comparison.StoredValue, error) {
	var values []ds.ServiceAttributeValue
	err := r.db.
		Where("service_id IN ? AND attribute_id IN ?", serviceIDs, attributeIDs).
		Find(&values).Error
	if err != nil {
		return nil, err
	}

	stored := make([]comparison.StoredValue, len(values))
	for i, v := range values {
		stored[i] = comparison.StoredValue{
			ServiceID:   v.ServiceID,
			AttributeID: v.AttributeID,
			Value:       v.Value,
		}
	}
	return stored, nil
}
