package persistence

import (
	"fmt"
	"testing"
	"time"

	"github.com/davidmrt/promptforge/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDB(t *testing.T) PromptRepo {
	t.Helper()

	// A named in-memory store keeps each test isolated while the pool
	// shares one database.
	db, err := Connect("", fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	require.NoError(t, err)

	return PromptRepo{DB: db}
}

func TestPromptRepoRoundTrip(t *testing.T) {
	repo := testDB(t)

	prompt := domain.SavedPrompt{
		Id:              "prompt-1",
		Title:           "My prompt",
		OptimizedPrompt: "## Do the thing",
		Tips:            domain.StringList{"tip one", "tip two"},
		Purpose:         "code_generation",
		UserId:          "user-a",
	}

	require.NoError(t, repo.Insert(&prompt))

	stored, err := repo.FindById("prompt-1")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "My prompt", stored.Title)
	assert.Equal(t, domain.StringList{"tip one", "tip two"}, stored.Tips)
	assert.False(t, stored.IsPublic)
}

func TestPromptRepoFindByIdNotFound(t *testing.T) {
	repo := testDB(t)

	stored, err := repo.FindById("prompt-gone")

	require.NoError(t, err)
	assert.Nil(t, stored)
}

func TestPromptRepoFindByUserIdOrdering(t *testing.T) {
	repo := testDB(t)

	base := time.Now().Add(-time.Hour)
	rows := []domain.SavedPrompt{
		{Id: "prompt-old", Title: "Old", OptimizedPrompt: "p", UserId: "user-a", CreatedAt: base},
		{Id: "prompt-new", Title: "New", OptimizedPrompt: "p", UserId: "user-a", CreatedAt: base.Add(time.Minute)},
		{Id: "prompt-foreign", Title: "Foreign", OptimizedPrompt: "p", UserId: "user-b", CreatedAt: base.Add(2 * time.Minute)},
	}
	for i := range rows {
		require.NoError(t, repo.Insert(&rows[i]))
	}

	result, err := repo.FindByUserId("user-a")

	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "prompt-new", result[0].Id)
	assert.Equal(t, "prompt-old", result[1].Id)
}

func TestPromptRepoDelete(t *testing.T) {
	repo := testDB(t)

	prompt := domain.SavedPrompt{Id: "prompt-1", Title: "t", OptimizedPrompt: "p", UserId: "user-a"}
	require.NoError(t, repo.Insert(&prompt))

	require.NoError(t, repo.Delete("prompt-1"))

	stored, err := repo.FindById("prompt-1")
	require.NoError(t, err)
	assert.Nil(t, stored)
}
