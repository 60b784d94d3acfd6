package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/SSG3800/Retail-POS-System/internal/pos"
	repo "github.com/SSG3800/Retail-POS-System/internal/repo"
)

func cartResponse() CartResponse {
	items := till.Items()
	resp := CartResponse{
		Items: make([]CartItemResponse, len(items)),
		Total: till.Total(),
	}
	for i, it := range items {
		resp.Items[i] = CartItemResponse{
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     it.Price,
			Quantity:  it.Quantity,
		}
	}
	return resp
}

// GetCartHandler godoc
// @Summary Show the current cart
// @Tags cart
// @Produce json
// @Success 200 {object} CartResponse
// @Router /cart [get]
func GetCartHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(cartResponse())
}

// AddCartItemHandler godoc
// @Summary Add a product to the cart
// @Tags cart
// @Accept json
// @Produce json
// @Param item body CartItemRequest true "Product and quantity"
// @Success 200 {object} CartResponse
// @Failure 400 {string} string "Invalid input"
// @Failure 404 {string} string "Product not found"
// @Failure 409 {string} string "Insufficient stock"
// @Router /cart/items [post]
// @Security BearerAuth
func AddCartItemHandler(w http.ResponseWriter, r *http.Request) {
	var req CartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if req.Quantity <= 0 {
		http.Error(w, "quantity must be positive", http.StatusBadRequest)
		return
	}

	if err := till.Add(req.ProductID, req.Quantity); err != nil {
		switch {
		case errors.Is(err, repo.ErrProductNotFound):
			http.Error(w, "product not found", http.StatusNotFound)
		case errors.Is(err, pos.ErrInsufficientStock):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			http.Error(w, "could not add to cart", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(cartResponse())
}

// AdjustCartItemHandler godoc
// @Summary Change a cart entry's quantity
// @Description A delta that drops the quantity to zero or below removes the entry
// @Tags cart
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param adjustment body QuantityAdjustmentRequest true "Quantity change"
// @Success 200 {object} CartResponse
// @Failure 400 {string} string "Invalid input"
// @Failure 404 {string} string "Not in cart"
// @Failure 409 {string} string "Insufficient stock"
// @Router /cart/items/{id} [patch]
// @Security BearerAuth
func AdjustCartItemHandler(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	var req QuantityAdjustmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	if err := till.Adjust(id, req.Delta); err != nil {
		switch {
		case errors.Is(err, repo.ErrProductNotFound):
			http.Error(w, "product not in cart", http.StatusNotFound)
		case errors.Is(err, pos.ErrInsufficientStock):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			http.Error(w, "could not adjust cart", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(cartResponse())
}

// RemoveCartItemHandler godoc
// @Summary Remove a product from the cart
// @Tags cart
// @Param id path int true "Product ID"
// @Success 200 {object} CartResponse
// @Failure 400 {string} string "Invalid ID"
// @Router /cart/items/{id} [delete]
// @Security BearerAuth
func RemoveCartItemHandler(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	till.Remove(id)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(cartResponse())
}

// ClearCartHandler godoc
// @Summary Discard the current cart
// @Tags cart
// @Success 204 "Cleared"
// @Router /cart [delete]
// @Security BearerAuth
func ClearCartHandler(w http.ResponseWriter, r *http.Request) {
	till.Clear()
	w.WriteHeader(http.StatusNoContent)
}

// CheckoutHandler godoc
// @Summary Convert the cart into a sale
// @Description Inserts the sale and its line items and decrements stock atomically
// @Tags cart
// @Produce json
// @Success 201 {object} CheckoutResult
// @Failure 409 {string} string "Empty cart or insufficient stock"
// @Failure 500 {string} string "Internal error"
// @Router /checkout [post]
// @Security BearerAuth
func CheckoutHandler(w http.ResponseWriter, r *http.Request) {
	sale, items, err := till.Checkout()
	if err != nil {
		switch {
		case errors.Is(err, pos.ErrEmptyCart):
			http.Error(w, "cart is empty", http.StatusConflict)
		case errors.Is(err, pos.ErrInsufficientStock):
			http.Error(w, "insufficient stock", http.StatusConflict)
		default:
			log.Printf("checkout failed: %v", err)
			http.Error(w, "checkout failed", http.StatusInternalServerError)
		}
		return
	}

	result := CheckoutResult{
		Sale: SaleResponse{Id: sale.ID, TotalPrice: sale.TotalPrice, SaleDate: sale.SaleDate},
	}
	for _, it := range items {
		result.Items = append(result.Items, SaleItemResponse{
			Id:          it.ID,
			SaleID:      it.SaleID,
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			Price:       it.Price,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(result)
}
