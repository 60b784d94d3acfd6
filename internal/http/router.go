package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/SSG3800/Retail-POS-System/internal/http/handlers"
)

func NewRouter() http.Handler {
	r := chi.NewRouter()

	r.With(LoginRateLimit).Post("/login", handlers.LoginHandler)

	r.Get("/products", handlers.GetProductsHandler)
	r.Get("/products/search", handlers.FilterProductsHandler)
	r.Get("/products/{id}", handlers.GetProductByIDHandler)
	r.Get("/products/{id}/movements", handlers.GetMovementsHandler)
	r.Get("/cart", handlers.GetCartHandler)
	r.Get("/sales", handlers.GetSalesHandler)
	r.Get("/sales/{id}/items", handlers.GetSaleItemsHandler)
	r.Get("/sales/{id}/receipt", handlers.GetReceiptHandler)
	r.Get("/metrics/dashboard", handlers.GetDashboardMetricsHandler)

	r.Group(func(pr chi.Router) {
		pr.Use(RequireAuth)

		pr.Post("/password", handlers.ChangePasswordHandler)

		pr.Post("/products", handlers.CreateProductHandler)
		pr.Put("/products/{id}", handlers.UpdateProductHandler)
		pr.Post("/products/{id}/adjust", handlers.AdjustQuantityHandler)
		pr.Delete("/products", handlers.ClearProductsHandler)
		pr.Post("/products/import", handlers.ImportProductsHandler)

		pr.Post("/cart/items", handlers.AddCartItemHandler)
		pr.Patch("/cart/items/{id}", handlers.AdjustCartItemHandler)
		pr.Delete("/cart/items/{id}", handlers.RemoveCartItemHandler)
		pr.Delete("/cart", handlers.ClearCartHandler)
		pr.Post("/checkout", handlers.CheckoutHandler)

		pr.Delete("/sales", handlers.ClearSalesHandler)
		pr.Post("/export", handlers.ExportHandler)
	})

	return r
}
