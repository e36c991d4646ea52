package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tttaaaiiissseee/kiro-aws-app20251214-sub000/internal/app/comparison"
)

func TestSeedDefaultAttributesIdempotent(t *testing.T) {
	r := newTestRepo(t)

	require.NoError(t, r.SeedDefaultAttributes())
	require.NoError(t, r.SeedDefaultAttributes())

	attrs, err := r.ListAttributes()
	require.NoError(t, err)
	assert.Len(t, attrs, 2)
	for _, a := range attrs {
		assert.True(t, a.IsDefault)
	}
}

func TestListAttributesDefaultsFirstThenName(t *testing.T) {
	r := newTestRepo(t)
	require.NoError(t, r.SeedDefaultAttributes())

	// mixed case: byte order would put "api limits" last, the
	// case-folded order the endpoint promises puts it first
	_, err := r.CreateAttribute("Max throughput", "", comparison.TypeNumber)
	require.NoError(t, err)
	_, err = r.CreateAttribute("Docs", "", comparison.TypeURL)
	require.NoError(t, err)
	_, err = r.CreateAttribute("api limits", "", comparison.TypeText)
	require.NoError(t, err)

	attrs, err := r.ListAttributes()
	require.NoError(t, err)
	require.Len(t, attrs, 5)

	assert.True(t, attrs[0].IsDefault)
	assert.True(t, attrs[1].IsDefault)
	assert.Equal(t, "api limits", attrs[2].Name)
	assert.Equal(t, "Docs", attrs[3].Name)
	assert.Equal(t, "Max throughput", attrs[4].Name)
}

func TestCreateAttribute(t *testing.T) {
	r := newTestRepo(t)

	attr, err := r.CreateAttribute("SLA", "availability target", comparison.TypeText)
	require.NoError(t, err)
	assert.False(t, attr.IsDefault)
	assert.Equal(t, "TEXT", attr.DataType)

	// exact-match collision
	_, err = r.CreateAttribute("SLA", "", comparison.TypeText)
	assert.Equal(t, "DUPLICATE_ATTRIBUTE_NAME", errCode(t, err))

	// different case is a different name
	_, err = r.CreateAttribute("sla", "", comparison.TypeText)
	assert.NoError(t, err)
}

func TestSetAttributeValueUpsert(t *testing.T) {
	r := newTestRepo(t)
	category := seedCategory(t, r, "コンピューティング")
	service := seedService(t, r, "EC2", category.ID)
	attr, err := r.CreateAttribute("vCPU max", "", comparison.TypeNumber)
	require.NoError(t, err)

	value, err := r.SetAttributeValue(service.ID, attr.ID, "128")
	require.NoError(t, err)
	assert.Equal(t, float64(128), value.Number)

	// last write wins on the same (service, attribute) pair
	value, err = r.SetAttributeValue(service.ID, attr.ID, "448")
	require.NoError(t, err)
	assert.Equal(t, float64(448), value.Number)

	stored, err := r.ValuesForServices([]uint{service.ID}, []uint{attr.ID})
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "448", stored[0].Value)
}

func TestSetAttributeValueErrors(t *testing.T) {
	r := newTestRepo(t)
	category := seedCategory(t, r, "コンピューティング")
	service := seedService(t, r, "EC2", category.ID)
	attr, err := r.CreateAttribute("vCPU max", "", comparison.TypeNumber)
	require.NoError(t, err)

	_, err = r.SetAttributeValue(999, attr.ID, "1")
	assert.Equal(t, "SERVICE_NOT_FOUND", errCode(t, err))

	_, err = r.SetAttributeValue(service.ID, 999, "1")
	assert.Equal(t, "ATTRIBUTE_NOT_FOUND", errCode(t, err))

	_, err = r.SetAttributeValue(service.ID, attr.ID, "not a number")
	assert.Equal(t, "INVALID_VALUE_FORMAT", errCode(t, err))
}
