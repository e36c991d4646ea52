package comparison

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/tttaaaiiissseee/kiro-aws-app20251214-sub000/internal/app/apperr"
	"github.com/tttaaaiiissseee/kiro-aws-app20251214-sub000/internal/app/ds"
)

// MaxServices is the hard cap on services per comparison. Product
// constraint, checked before any data is fetched.
const MaxServices = 5

// Labels of the five built-in columns, in matrix order.
const (
	LabelName          = "サービス名"
	LabelDescription   = "説明"
	LabelCategory      = "カテゴリ"
	LabelMemoCount     = "メモ数"
	LabelRelationCount = "関連数"
)

// ServiceRow is the per-service data the builder needs, already joined
// with category name and counts.
type ServiceRow struct {
	ID            uint
	Name          string
	Description   string
	CategoryName  string
	MemoCount     int
	RelationCount int
}

// StoredValue is one encoded (service, attribute) cell from storage.
type StoredValue struct {
	ServiceID   uint
	AttributeID uint
	Value       string
}

// DataSource is the storage the builder reads from.
type DataSource interface {
	ComparisonServices(ids []uint) ([]ServiceRow, error)
	ListAttributes() ([]ds.ComparisonAttribute, error)
	ValuesForServices(serviceIDs []uint, attributeIDs []uint) ([]StoredValue, error)
}

// Column describes one matrix column. Built-in columns always come
// first and are not subject to attribute selection.
type Column struct {
	Key         string
	Label       string
	BuiltIn     bool
	AttributeID uint
	DataType    DataType
}

// Row is one service's cells, aligned with Matrix.Columns. A nil cell
// means no value is stored for that (service, attribute) pair.
type Row struct {
	ServiceID   uint
	ServiceName string
	Cells       []*Value
}

// Matrix is the assembled comparison table, independent of output format.
type Matrix struct {
	Columns        []Column
	Rows           []Row
	ServiceCount   int
	AttributeCount int // custom attributes + the 5 built-ins
	GeneratedAt    time.Time
}

// Builder assembles comparison matrices.
type Builder struct {
	source DataSource
}

func NewBuilder(source DataSource) *Builder {
	return &Builder{source: source}
}

// Build resolves the requested services and attributes into a Matrix.
// attributeIDs == nil selects only default attributes; otherwise the
// union of defaults and the requested ones is used.
func (b *Builder) Build(serviceIDs []uint, attributeIDs []uint) (*Matrix, error) {
	if len(serviceIDs) == 0 {
		return nil, apperr.InvalidServiceIDs()
	}
	if len(serviceIDs) > MaxServices {
		return nil, apperr.TooManyServices(MaxServices)
	}

	services, err := b.source.ComparisonServices(serviceIDs)
	if err != nil {
		return nil, fmt.Errorf("fetch services: %w", err)
	}
	if missing := missingIDs(serviceIDs, services); len(missing) > 0 {
		return nil, apperr.ServicesNotFound(missing)
	}
	// keep request order
	byID := make(map[uint]ServiceRow, len(services))
	for _, s := range services {
		byID[s.ID] = s
	}

	attributes, err := b.selectAttributes(attributeIDs)
	if err != nil {
		return nil, err
	}

	columns := builtinColumns()
	for _, a := range attributes {
		columns = append(columns, Column{
			Key:         fmt.Sprintf("attr_%d", a.ID),
			Label:       a.Name,
			AttributeID: a.ID,
			DataType:    DataType(a.DataType),
		})
	}

	values, err := b.loadValues(serviceIDs, attributes)
	if err != nil {
		return nil, err
	}

	rows := make([]Row, 0, len(serviceIDs))
	for _, id := range serviceIDs {
		s := byID[id]
		cells := make([]*Value, 0, len(columns))
		name := TextValue(s.Name)
		desc := TextValue(s.Description)
		cat := TextValue(s.CategoryName)
		memos := NumberValue(float64(s.MemoCount))
		rels := NumberValue(float64(s.RelationCount))
		cells = append(cells, &name, &desc, &cat, &memos, &rels)
		for _, a := range attributes {
			cells = append(cells, values[cellKey{s.ID, a.ID}])
		}
		rows = append(rows, Row{ServiceID: s.ID, ServiceName: s.Name, Cells: cells})
	}

	return &Matrix{
		Columns:        columns,
		Rows:           rows,
		ServiceCount:   len(rows),
		AttributeCount: len(attributes) + len(builtinColumns()),
		GeneratedAt:    time.Now(),
	}, nil
}

// selectAttributes returns default attributes plus any explicitly
// requested ones, deduplicated by ID, defaults first then alphabetical.
// Requested IDs with no matching attribute are simply absent, matching
// the WHERE id IN semantics of the storage layer.
func (b *Builder) selectAttributes(attributeIDs []uint) ([]ds.ComparisonAttribute, error) {
	all, err := b.source.ListAttributes()
	if err != nil {
		return nil, fmt.Errorf("fetch attributes: %w", err)
	}

	requested := make(map[uint]bool, len(attributeIDs))
	for _, id := range attributeIDs {
		requested[id] = true
	}

	selected := make([]ds.ComparisonAttribute, 0, len(all))
	for _, a := range all {
		if a.IsDefault || requested[a.ID] {
			selected = append(selected, a)
		}
	}
	sort.SliceStable(selected, func(i, j int) bool {
		if selected[i].IsDefault != selected[j].IsDefault {
			return selected[i].IsDefault
		}
		return strings.ToLower(selected[i].Name) < strings.ToLower(selected[j].Name)
	})
	return selected, nil
}

type cellKey struct {
	serviceID   uint
	attributeID uint
}

func (b *Builder) loadValues(serviceIDs []uint, attributes []ds.ComparisonAttribute) (map[cellKey]*Value, error) {
	if len(attributes) == 0 {
		return map[cellKey]*Value{}, nil
	}

	attrIDs := make([]uint, len(attributes))
	typeByID := make(map[uint]DataType, len(attributes))
	for i, a := range attributes {
		attrIDs[i] = a.ID
		typeByID[a.ID] = DataType(a.DataType)
	}

	stored, err := b.source.ValuesForServices(serviceIDs, attrIDs)
	if err != nil {
		return nil, fmt.Errorf("fetch attribute values: %w", err)
	}

	cells := make(map[cellKey]*Value, len(stored))
	for _, sv := range stored {
		v, err := Decode(typeByID[sv.AttributeID], sv.Value)
		if err != nil {
			// Value written outside the codec. Treat the cell as empty
			// rather than failing the whole comparison.
			logrus.Warnf("undecodable value for service %d attribute %d: %v", sv.ServiceID, sv.AttributeID, err)
			continue
		}
		cells[cellKey{sv.ServiceID, sv.AttributeID}] = &v
	}
	return cells, nil
}

func builtinColumns() []Column {
	return []Column{
		{Key: "name", Label: LabelName, BuiltIn: true, DataType: TypeText},
		{Key: "description", Label: LabelDescription, BuiltIn: true, DataType: TypeText},
		{Key: "category", Label: LabelCategory, BuiltIn: true, DataType: TypeText},
		{Key: "memoCount", Label: LabelMemoCount, BuiltIn: true, DataType: TypeNumber},
		{Key: "relationCount", Label: LabelRelationCount, BuiltIn: true, DataType: TypeNumber},
	}
}

func missingIDs(requested []uint, found []ServiceRow) []uint {
	have := make(map[uint]bool, len(found))
	for _, s := range found {
		have[s.ID] = true
	}
	var missing []uint
	seen := make(map[uint]bool, len(requested))
	for _, id := range requested {
		if !have[id] && !seen[id] {
			missing = append(missing, id)
			seen[id] = true
		}
	}
	return missing
}
