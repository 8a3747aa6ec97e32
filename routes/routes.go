package routes

import (
	"github.com/taraskarpenko/recipe-app-api/controllers"
	"github.com/taraskarpenko/recipe-app-api/middlewares"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/me", controllers.GetMe)
		user.PUT("/me", controllers.UpdateMe)
		user.PATCH("/me", controllers.UpdateMe)
	}

	api := r.Group("/api")
	api.Use(middlewares.AuthMiddleware())
	{
		api.GET("/recipes", controllers.ListRecipes)
		api.POST("/recipes", controllers.CreateRecipe)
		api.GET("/recipes/:id", controllers.GetRecipe)
		api.PUT("/recipes/:id", controllers.UpdateRecipe)
		api.PATCH("/recipes/:id", controllers.PatchRecipe)
		api.DELETE("/recipes/:id", controllers.DeleteRecipe)
		api.POST("/recipes/:id/image", controllers.UploadRecipeImage)

		api.GET("/tags", controllers.ListTags)
		api.POST("/tags", controllers.CreateTag)
		api.GET("/tags/:id", controllers.GetTag)
		api.PUT("/tags/:id", controllers.UpdateTag)
		api.PATCH("/tags/:id", controllers.UpdateTag)
		api.DELETE("/tags/:id", controllers.DeleteTag)

		api.GET("/ingredients", controllers.ListIngredients)
		api.POST("/ingredients", controllers.CreateIngredient)
		api.GET("/ingredients/:id", controllers.GetIngredient)
		api.PUT("/ingredients/:id", controllers.UpdateIngredient)
		api.PATCH("/ingredients/:id", controllers.UpdateIngredient)
		api.DELETE("/ingredients/:id", controllers.DeleteIngredient)
	}

	return r
}
