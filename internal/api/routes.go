package api

import (
	"foodgram/internal/entity"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes 注册全部 /api 路由
func (h *HTTPHandler) RegisterRoutes(r gin.IRouter) {
	apiGroup := r.Group("/api")

	authGroup := apiGroup.Group("/auth")
	authGroup.POST("/register", h.Register)
	authGroup.POST("/login", h.Login)
	authGroup.GET("/me", h.AuthMiddleware(), h.Me)
	authGroup.POST("/set_password", h.AuthMiddleware(), h.SetPassword)

	// 目录与公开读取，令牌可选
	public := apiGroup.Group("")
	public.Use(h.OptionalAuth())
	public.GET("/ingredients", h.ListIngredients)
	public.GET("/ingredients/:id", h.GetIngredient)
	public.GET("/tags", h.ListTags)
	public.GET("/tags/:id", h.GetTag)
	public.GET("/recipes", h.ListRecipes)
	public.GET("/recipes/:id", h.GetRecipe)
	public.GET("/users/:id", h.GetUser)

	protected := apiGroup.Group("")
	protected.Use(h.AuthMiddleware())
	protected.POST("/recipes", h.CreateRecipe)
	protected.PATCH("/recipes/:id", h.UpdateRecipe)
	protected.DELETE("/recipes/:id", h.DeleteRecipe)
	protected.POST("/recipes/:id/favorite", h.MarkRecipe(entity.MarkFavorite))
	protected.DELETE("/recipes/:id/favorite", h.UnmarkRecipe(entity.MarkFavorite))
	protected.POST("/recipes/:id/shopping_cart", h.MarkRecipe(entity.MarkCart))
	protected.DELETE("/recipes/:id/shopping_cart", h.UnmarkRecipe(entity.MarkCart))
	protected.GET("/recipes/shopping_cart", h.ShoppingCart)
	protected.GET("/recipes/download_shopping_cart", h.DownloadShoppingCart)
	protected.GET("/users/subscriptions", h.ListSubscriptions)
	protected.POST("/users/:id/subscribe", h.Subscribe)
	protected.DELETE("/users/:id/subscribe", h.Unsubscribe)
}
