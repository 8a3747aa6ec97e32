package services

import (
	"fmt"
	"testing"

	"github.com/taraskarpenko/recipe-app-api/config"
	"github.com/taraskarpenko/recipe-app-api/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// a single connection keeps every query on the same in-memory database
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Tag{},
		&models.Ingredient{},
		&models.Recipe{},
	))

	config.DB = db
}

func createTestUser(t *testing.T, email string) *models.User {
	t.Helper()

	user, err := RegisterUser(email, "userpass123", "Test User")
	require.NoError(t, err)
	return user
}

func createTestRecipe(t *testing.T, userID uint, title string) *models.Recipe {
	t.Helper()

	recipe, err := CreateRecipe(userID, RecipeCreateInput{
		Title:       title,
		TimeMinutes: 5,
		Price:       decimal.RequireFromString("5.25"),
		Description: "Sample recipe description",
		Link:        "http://example.com/recipe.pdf",
	})
	require.NoError(t, err)
	return recipe
}

func namedInputs(names ...string) []NamedInput {
	inputs := make([]NamedInput, 0, len(names))
	for _, n := range names {
		inputs = append(inputs, NamedInput{Name: n})
	}
	return inputs
}

func uniqueEmail(i int) string {
	return fmt.Sprintf("user%d@example.com", i)
}
