package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchCandidatesByNameDescriptionAndMemo(t *testing.T) {
	r := newTestRepo(t)
	compute := seedCategory(t, r, "コンピューティング")
	storage := seedCategory(t, r, "ストレージ")

	seedService(t, r, "Amazon EC2", compute.ID)
	_, err := r.CreateService("Lambda", "serverless compute", compute.ID)
	require.NoError(t, err)
	s3 := seedService(t, r, "S3", storage.ID)
	seedService(t, r, "Route 53", storage.ID)

	_, err = r.CreateMemo(s3.ID, "compute costs", "compared against compute pricing")
	require.NoError(t, err)

	candidates, err := r.SearchCandidates("COMPUTE", nil)
	require.NoError(t, err)

	names := make([]string, len(candidates))
	for i, c := range candidates {
		names[i] = c.Service.Name
	}
	// description hit and memo hit, case-insensitively; EC2 has neither
	assert.ElementsMatch(t, []string{"Lambda", "S3"}, names)

	// memos and category name ride along for the matcher
	for _, c := range candidates {
		if c.Service.Name == "S3" {
			assert.Equal(t, "ストレージ", c.CategoryName)
			assert.Len(t, c.Memos, 1)
		}
	}
}

func TestSearchCandidatesCategoryFilter(t *testing.T) {
	r := newTestRepo(t)
	compute := seedCategory(t, r, "コンピューティング")
	storage := seedCategory(t, r, "ストレージ")
	seedService(t, r, "Amazon EC2", compute.ID)
	seedService(t, r, "Amazon S3", storage.ID)

	candidates, err := r.SearchCandidates("amazon", &storage.ID)
	require.NoError(t, err)

	require.Len(t, candidates, 1)
	assert.Equal(t, "Amazon S3", candidates[0].Service.Name)
}

func TestPopularServicesRankedByMemoCount(t *testing.T) {
	r := newTestRepo(t)
	category := seedCategory(t, r, "コンピューティング")
	names := []string{"EC2", "Lambda", "ECS", "Fargate", "Batch", "Lightsail", "EKS"}
	memoCounts := []int{3, 7, 1, 5, 0, 2, 4}
	for i, name := range names {
		service := seedService(t, r, name, category.ID)
		for j := 0; j < memoCounts[i]; j++ {
			_, err := r.CreateMemo(service.ID, "m", "c")
			require.NoError(t, err)
		}
	}

	popular, err := r.PopularServices(5)
	require.NoError(t, err)

	require.Len(t, popular, 5)
	assert.Equal(t, "Lambda", popular[0].Name)
	assert.Equal(t, 7, popular[0].MemoCount)
	assert.Equal(t, "Fargate", popular[1].Name)
	assert.Equal(t, "EKS", popular[2].Name)
	assert.Equal(t, "EC2", popular[3].Name)
	assert.Equal(t, "Lightsail", popular[4].Name)
}

func TestComparisonServicesCountsAndMissingIDs(t *testing.T) {
	r := newTestRepo(t)
	category := seedCategory(t, r, "コンピューティング")
	ec2 := seedService(t, r, "EC2", category.ID)
	lambda := seedService(t, r, "Lambda", category.ID)

	_, err := r.CreateMemo(ec2.ID, "m1", "")
	require.NoError(t, err)
	_, err = r.CreateMemo(ec2.ID, "m2", "")
	require.NoError(t, err)
	_, err = r.CreateRelation(ec2.ID, lambda.ID, "invokes")
	require.NoError(t, err)

	rows, err := r.ComparisonServices([]uint{ec2.ID, lambda.ID, 999})
	require.NoError(t, err)

	// the unknown ID is simply absent
	require.Len(t, rows, 2)
	byName := map[string]int{}
	for i, row := range rows {
		byName[row.Name] = i
		assert.Equal(t, "コンピューティング", row.CategoryName)
	}

	ec2Row := rows[byName["EC2"]]
	assert.Equal(t, 2, ec2Row.MemoCount)
	assert.Equal(t, 1, ec2Row.RelationCount)

	lambdaRow := rows[byName["Lambda"]]
	assert.Equal(t, 0, lambdaRow.MemoCount)
	assert.Equal(t, 1, lambdaRow.RelationCount)
}
