package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/SSG3800/Retail-POS-System/internal/receipt"
	repo "github.com/SSG3800/Retail-POS-System/internal/repo"
)

// GetSalesHandler godoc
// @Summary List completed sales, newest first
// @Tags sales
// @Produce json
// @Success 200 {array} SaleResponse
// @Failure 500 {string} string "Internal error"
// @Router /sales [get]
func GetSalesHandler(w http.ResponseWriter, r *http.Request) {
	sales, err := saleRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch sales", http.StatusInternalServerError)
		return
	}

	response := make([]SaleResponse, len(sales))
	for i, s := range sales {
		response[i] = SaleResponse{Id: s.ID, TotalPrice: s.TotalPrice, SaleDate: s.SaleDate}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// GetSaleItemsHandler godoc
// @Summary Line items of a sale
// @Tags sales
// @Produce json
// @Param id path int true "Sale ID"
// @Success 200 {array} SaleItemResponse
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /sales/{id}/items [get]
func GetSaleItemsHandler(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "invalid sale ID", http.StatusBadRequest)
		return
	}

	if _, err := saleRepo.GetByID(id); err != nil {
		if errors.Is(err, repo.ErrSaleNotFound) {
			http.Error(w, "sale not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch sale", http.StatusInternalServerError)
		return
	}

	items, err := saleRepo.ItemsBySaleID(id)
	if err != nil {
		http.Error(w, "could not fetch sale items", http.StatusInternalServerError)
		return
	}

	response := make([]SaleItemResponse, len(items))
	for i, it := range items {
		response[i] = SaleItemResponse{
			Id:          it.ID,
			SaleID:      it.SaleID,
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			Price:       it.Price,
		}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// GetReceiptHandler godoc
// @Summary Plain-text receipt for a sale
// @Tags sales
// @Produce plain
// @Param id path int true "Sale ID"
// @Success 200 {string} string "Receipt"
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /sales/{id}/receipt [get]
func GetReceiptHandler(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "invalid sale ID", http.StatusBadRequest)
		return
	}

	sale, err := saleRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrSaleNotFound) {
			http.Error(w, "sale not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch sale", http.StatusInternalServerError)
		return
	}

	items, err := saleRepo.ItemsBySaleID(id)
	if err != nil {
		http.Error(w, "could not fetch sale items", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_ = receipt.Print(w, sale, items)
}

// ClearSalesHandler godoc
// @Summary Delete all sales and their line items
// @Description Destructive bulk delete; the client confirms first
// @Tags sales
// @Success 204 "Cleared"
// @Failure 500 {string} string "Internal error"
// @Router /sales [delete]
// @Security BearerAuth
func ClearSalesHandler(w http.ResponseWriter, r *http.Request) {
	if err := saleRepo.Clear(); err != nil {
		http.Error(w, "could not clear sales", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
