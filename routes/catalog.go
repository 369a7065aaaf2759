package routes

import (
	productcontroller "github.com/chikankari-studio/storefront-api/controllers/product"
	"github.com/chikankari-studio/storefront-api/store"
	"github.com/gin-gonic/gin"
)

// SetupCatalogRoutes registers the public browsing endpoints.
func SetupCatalogRoutes(r *gin.Engine, sel *store.Selector) {
	db := sel.Remote().DB()

	r.GET("/products", productcontroller.GetProducts(db))
	r.GET("/products/:id", productcontroller.GetProductByID(db))
	r.GET("/categories", productcontroller.GetAllCategories(db))
	r.GET("/categories/:slug", productcontroller.GetCategoryBySlug(db))
}
