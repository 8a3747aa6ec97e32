package utils

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecipeImageKey(t *testing.T) {
	key := RecipeImageKey(7, ".jpg")

	assert.True(t, strings.HasPrefix(key, "recipes/7/"))
	assert.True(t, strings.HasSuffix(key, ".jpg"))

	id := strings.TrimSuffix(strings.TrimPrefix(key, "recipes/7/"), ".jpg")
	_, err := uuid.Parse(id)
	require.NoError(t, err)
}

func TestRecipeImageKeyUnique(t *testing.T) {
	assert.NotEqual(t, RecipeImageKey(7, ".jpg"), RecipeImageKey(7, ".jpg"))
}
