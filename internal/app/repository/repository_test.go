package repository

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tttaaaiiissseee/kiro-aws-app20251214-sub000/internal/app/apperr"
	"github.com/tttaaaiiissseee/kiro-aws-app20251214-sub000/internal/app/ds"
)

// newTestRepo opens a fresh in-memory sqlite database with the full
// schema migrated.
func newTestRepo(t *testing.T) *Repository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	repo, err := NewWithDB(db)
	require.NoError(t, err)
	return repo
}

func seedCategory(t *testing.T, r *Repository, name string) *ds.Category {
	t.Helper()
	category, err := r.CreateCategory(name, "", "#336699")
	require.NoError(t, err)
	return category
}

func seedService(t *testing.T, r *Repository, name string, categoryID uint) *ds.Service {
	t.Helper()
	service, err := r.CreateService(name, "", categoryID)
	require.NoError(t, err)
	return service
}

func errCode(t *testing.T, err error) string {
	t.Helper()
	require.Error(t, err)
	return apperr.From(err).Code
}

func TestCreateCategoryAppendsSortOrder(t *testing.T) {
	r := newTestRepo(t)

	first := seedCategory(t, r, "コンピューティング")
	second := seedCategory(t, r, "ストレージ")

	assert.Equal(t, 1, first.SortOrder)
	assert.Equal(t, 2, second.SortOrder)
}

func TestCreateCategoryDuplicateName(t *testing.T) {
	r := newTestRepo(t)
	seedCategory(t, r, "ストレージ")

	_, err := r.CreateCategory("ストレージ", "", "")
	assert.Equal(t, "DUPLICATE_NAME", errCode(t, err))
}

func TestUpdateCategoryRejectsTakenName(t *testing.T) {
	r := newTestRepo(t)
	seedCategory(t, r, "A")
	b := seedCategory(t, r, "B")

	name := "A"
	err := r.UpdateCategory(b.ID, &name, nil, nil)
	assert.Equal(t, "DUPLICATE_NAME", errCode(t, err))

	// renaming to itself is fine
	name = "B"
	assert.NoError(t, r.UpdateCategory(b.ID, &name, nil, nil))
}

func TestDeleteCategoryBlockedWhileInUse(t *testing.T) {
	r := newTestRepo(t)
	category := seedCategory(t, r, "データベース")
	seedService(t, r, "RDS", category.ID)

	err := r.DeleteCategory(category.ID)
	appErr := apperr.From(err)
	assert.Equal(t, "CATEGORY_IN_USE", appErr.Code)
	assert.Equal(t, 1, appErr.Details["serviceCount"])
}

func TestReorderCategories(t *testing.T) {
	r := newTestRepo(t)
	a := seedCategory(t, r, "A")
	b := seedCategory(t, r, "B")
	c := seedCategory(t, r, "C")

	err := r.ReorderCategories([]CategoryOrder{
		{ID: c.ID, SortOrder: 1},
		{ID: a.ID, SortOrder: 2},
		{ID: b.ID, SortOrder: 3},
	})
	require.NoError(t, err)

	categories, err := r.GetCategories()
	require.NoError(t, err)
	assert.Equal(t, "C", categories[0].Name)
	assert.Equal(t, "A", categories[1].Name)
	assert.Equal(t, "B", categories[2].Name)
}

func TestReorderCategoriesUnknownIDRollsBack(t *testing.T) {
	r := newTestRepo(t)
	a := seedCategory(t, r, "A")
	b := seedCategory(t, r, "B")

	err := r.ReorderCategories([]CategoryOrder{
		{ID: b.ID, SortOrder: 1},
		{ID: 999, SortOrder: 2},
	})
	assert.Equal(t, "CATEGORY_NOT_FOUND", errCode(t, err))

	// the whole batch rolled back, original order intact
	categories, err := r.GetCategories()
	require.NoError(t, err)
	assert.Equal(t, a.Name, categories[0].Name)
	assert.Equal(t, b.Name, categories[1].Name)
}

func TestCreateServiceChecks(t *testing.T) {
	r := newTestRepo(t)
	category := seedCategory(t, r, "分析")

	_, err := r.CreateService("Athena", "", 999)
	assert.Equal(t, "CATEGORY_NOT_FOUND", errCode(t, err))

	seedService(t, r, "Athena", category.ID)
	_, err = r.CreateService("Athena", "", category.ID)
	assert.Equal(t, "DUPLICATE_NAME", errCode(t, err))
}

func TestDeleteServiceCascades(t *testing.T) {
	r := newTestRepo(t)
	category := seedCategory(t, r, "コンピューティング")
	ec2 := seedService(t, r, "EC2", category.ID)
	lambda := seedService(t, r, "Lambda", category.ID)

	_, err := r.CreateMemo(ec2.ID, "memo", "content")
	require.NoError(t, err)
	_, err = r.CreateRelation(ec2.ID, lambda.ID, "invokes")
	require.NoError(t, err)
	require.NoError(t, r.SeedDefaultAttributes())
	attrs, err := r.ListAttributes()
	require.NoError(t, err)
	_, err = r.SetAttributeValue(ec2.ID, attrs[0].ID, "従量課金")
	require.NoError(t, err)

	require.NoError(t, r.DeleteService(ec2.ID))

	_, err = r.GetServiceByID(ec2.ID)
	assert.Equal(t, "SERVICE_NOT_FOUND", errCode(t, err))

	relations, err := r.GetRelationsByService(lambda.ID)
	require.NoError(t, err)
	assert.Empty(t, relations)

	values, err := r.ValuesForServices([]uint{ec2.ID}, []uint{attrs[0].ID})
	require.NoError(t, err)
	assert.Empty(t, values)
}

func TestMemoLifecycle(t *testing.T) {
	r := newTestRepo(t)
	category := seedCategory(t, r, "監視")
	service := seedService(t, r, "CloudWatch", category.ID)

	_, err := r.CreateMemo(999, "t", "c")
	assert.Equal(t, "SERVICE_NOT_FOUND", errCode(t, err))

	memo, err := r.CreateMemo(service.ID, "アラーム設定", "閾値を調整した")
	require.NoError(t, err)

	title := "アラーム設定 v2"
	require.NoError(t, r.UpdateMemo(memo.ID, &title, nil))
	got, err := r.GetMemoByID(memo.ID)
	require.NoError(t, err)
	assert.Equal(t, "アラーム設定 v2", got.Title)
	assert.Equal(t, "閾値を調整した", got.Content)

	require.NoError(t, r.DeleteMemo(memo.ID))
	err = r.DeleteMemo(memo.ID)
	assert.Equal(t, "MEMO_NOT_FOUND", errCode(t, err))
}

func TestCreateRelationConstraints(t *testing.T) {
	r := newTestRepo(t)
	category := seedCategory(t, r, "コンピューティング")
	ec2 := seedService(t, r, "EC2", category.ID)
	lambda := seedService(t, r, "Lambda", category.ID)

	_, err := r.CreateRelation(ec2.ID, ec2.ID, "self")
	assert.Equal(t, "SELF_RELATION", errCode(t, err))

	_, err = r.CreateRelation(ec2.ID, 999, "x")
	assert.Equal(t, "SERVICE_NOT_FOUND", errCode(t, err))

	_, err = r.CreateRelation(ec2.ID, lambda.ID, "invokes")
	require.NoError(t, err)
	_, err = r.CreateRelation(ec2.ID, lambda.ID, "again")
	assert.Equal(t, "DUPLICATE_RELATION", errCode(t, err))

	// the reverse direction is a different relation
	_, err = r.CreateRelation(lambda.ID, ec2.ID, "triggered by")
	assert.NoError(t, err)
}
