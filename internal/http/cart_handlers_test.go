package http_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	api "github.com/SSG3800/Retail-POS-System/internal/http"
	handler "github.com/SSG3800/Retail-POS-System/internal/http/handlers"
	"github.com/SSG3800/Retail-POS-System/internal/repo"
)

func TestAddCartItemHandler(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	created := mustCreateProduct(r, handler.ProductRequest{Name: "Rice 1kg", Price: 12.5, Quantity: 10})

	w := addToCart(r, created.Id, 2)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var cart handler.CartResponse
	if err := json.NewDecoder(w.Body).Decode(&cart); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}

	if len(cart.Items) != 1 {
		t.Fatalf("expected one cart entry, got %d", len(cart.Items))
	}
	if cart.Items[0].Quantity != 2 {
		t.Errorf("expected quantity 2, got %d", cart.Items[0].Quantity)
	}
	if cart.Items[0].Price != 12.5 {
		t.Errorf("expected captured price 12.5, got %v", cart.Items[0].Price)
	}
	if cart.Total != 25.0 {
		t.Errorf("expected total 25.0, got %v", cart.Total)
	}

	// Adding the same product again merges into one entry.
	w = addToCart(r, created.Id, 3)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	if err := json.NewDecoder(w.Body).Decode(&cart); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(cart.Items) != 1 || cart.Items[0].Quantity != 5 {
		t.Errorf("expected one merged entry with quantity 5, got %+v", cart.Items)
	}
}

func TestAddCartItemHandler_InsufficientStock(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	created := mustCreateProduct(r, handler.ProductRequest{Name: "Milk", Price: 2.0, Quantity: 5})

	if w := addToCart(r, created.Id, 3); w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	// 3 already in the cart, only 2 left to promise.
	w := addToCart(r, created.Id, 3)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 Conflict, got %d", w.Code)
	}

	cartReq := httptest.NewRequest(http.MethodGet, "/cart", nil)
	cartW := httptest.NewRecorder()
	r.ServeHTTP(cartW, cartReq)

	var cart handler.CartResponse
	if err := json.NewDecoder(cartW.Body).Decode(&cart); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(cart.Items) != 1 || cart.Items[0].Quantity != 3 {
		t.Errorf("expected cart unchanged at quantity 3, got %+v", cart.Items)
	}
}

func TestAddCartItemHandler_ProductNotFound(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	w := addToCart(r, 999999, 1)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 Not Found, got %d", w.Code)
	}
}

func TestAdjustCartItemHandler(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	created := mustCreateProduct(r, handler.ProductRequest{Name: "Sugar", Price: 5.0, Quantity: 10})
	if w := addToCart(r, created.Id, 4); w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	body, _ := json.Marshal(handler.QuantityAdjustmentRequest{Delta: -2})
	w := authRequest(r, http.MethodPatch, fmt.Sprintf("/cart/items/%d", created.Id), body)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var cart handler.CartResponse
	if err := json.NewDecoder(w.Body).Decode(&cart); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(cart.Items) != 1 || cart.Items[0].Quantity != 2 {
		t.Errorf("expected quantity 2 after adjustment, got %+v", cart.Items)
	}

	// A delta to zero removes the entry.
	body, _ = json.Marshal(handler.QuantityAdjustmentRequest{Delta: -2})
	w = authRequest(r, http.MethodPatch, fmt.Sprintf("/cart/items/%d", created.Id), body)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	if err := json.NewDecoder(w.Body).Decode(&cart); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(cart.Items) != 0 {
		t.Errorf("expected empty cart, got %+v", cart.Items)
	}
}

func TestAdjustCartItemHandler_NotInCart(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	body, _ := json.Marshal(handler.QuantityAdjustmentRequest{Delta: 1})
	w := authRequest(r, http.MethodPatch, "/cart/items/999999", body)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 Not Found, got %d", w.Code)
	}
}

func TestRemoveCartItemHandler(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	created := mustCreateProduct(r, handler.ProductRequest{Name: "Bread", Price: 1.5, Quantity: 8})
	if w := addToCart(r, created.Id, 1); w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	w := authRequest(r, http.MethodDelete, fmt.Sprintf("/cart/items/%d", created.Id), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var cart handler.CartResponse
	if err := json.NewDecoder(w.Body).Decode(&cart); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(cart.Items) != 0 {
		t.Errorf("expected empty cart, got %+v", cart.Items)
	}
}

func TestClearCartHandler(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	created := mustCreateProduct(r, handler.ProductRequest{Name: "Eggs", Price: 0.5, Quantity: 30})
	if w := addToCart(r, created.Id, 6); w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	w := authRequest(r, http.MethodDelete, "/cart", nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204 No Content, got %d", w.Code)
	}

	cartReq := httptest.NewRequest(http.MethodGet, "/cart", nil)
	cartW := httptest.NewRecorder()
	r.ServeHTTP(cartW, cartReq)

	var cart handler.CartResponse
	if err := json.NewDecoder(cartW.Body).Decode(&cart); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(cart.Items) != 0 || cart.Total != 0 {
		t.Errorf("expected empty cart with zero total, got %+v", cart)
	}
}

func TestCheckoutHandler(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	rice := mustCreateProduct(r, handler.ProductRequest{Name: "Rice 1kg", Price: 10.0, Quantity: 10})
	sugar := mustCreateProduct(r, handler.ProductRequest{Name: "Sugar", Price: 5.0, Quantity: 4})

	if w := addToCart(r, rice.Id, 2); w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	if w := addToCart(r, sugar.Id, 1); w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	w := authRequest(r, http.MethodPost, "/checkout", nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d: %s", w.Code, w.Body.String())
	}

	var result handler.CheckoutResult
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("error decoding checkout result: %v", err)
	}
	if result.Sale.TotalPrice != 25.0 {
		t.Errorf("expected sale total 25.0, got %v", result.Sale.TotalPrice)
	}
	if len(result.Items) != 2 {
		t.Fatalf("expected two line items, got %d", len(result.Items))
	}
	if result.Items[0].ProductName != "Rice 1kg" || result.Items[0].Quantity != 2 {
		t.Errorf("unexpected first line item: %+v", result.Items[0])
	}

	// Stock decremented.
	p, err := productRepo.GetByID(rice.Id)
	if err != nil {
		t.Fatalf("fetching product: %v", err)
	}
	if p.Quantity != 8 {
		t.Errorf("expected rice stock 8 after checkout, got %d", p.Quantity)
	}

	// Cart cleared.
	cartReq := httptest.NewRequest(http.MethodGet, "/cart", nil)
	cartW := httptest.NewRecorder()
	r.ServeHTTP(cartW, cartReq)
	var cart handler.CartResponse
	if err := json.NewDecoder(cartW.Body).Decode(&cart); err != nil {
		t.Fatalf("error decoding cart: %v", err)
	}
	if len(cart.Items) != 0 {
		t.Errorf("expected cart cleared after checkout, got %+v", cart.Items)
	}

	// Sale shows up in the ledger.
	salesReq := httptest.NewRequest(http.MethodGet, "/sales", nil)
	salesW := httptest.NewRecorder()
	r.ServeHTTP(salesW, salesReq)
	var sales []handler.SaleResponse
	if err := json.NewDecoder(salesW.Body).Decode(&sales); err != nil {
		t.Fatalf("error decoding sales: %v", err)
	}
	if len(sales) != 1 || sales[0].Id != result.Sale.Id {
		t.Fatalf("expected the committed sale in the ledger, got %+v", sales)
	}

	// Line items are retrievable per sale.
	itemsReq := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/sales/%d/items", result.Sale.Id), nil)
	itemsW := httptest.NewRecorder()
	r.ServeHTTP(itemsW, itemsReq)
	var items []handler.SaleItemResponse
	if err := json.NewDecoder(itemsW.Body).Decode(&items); err != nil {
		t.Fatalf("error decoding sale items: %v", err)
	}
	if len(items) != 2 {
		t.Errorf("expected two sale items, got %d", len(items))
	}

	// And the receipt renders.
	receiptReq := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/sales/%d/receipt", result.Sale.Id), nil)
	receiptW := httptest.NewRecorder()
	r.ServeHTTP(receiptW, receiptReq)
	if receiptW.Code != http.StatusOK {
		t.Fatalf("expected 200 OK for receipt, got %d", receiptW.Code)
	}
	receiptText := receiptW.Body.String()
	if !strings.Contains(receiptText, "Rice 1kg") || !strings.Contains(receiptText, "25.00") {
		t.Errorf("receipt missing expected content:\n%s", receiptText)
	}
}

func TestCheckoutHandler_EmptyCart(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	w := authRequest(r, http.MethodPost, "/checkout", nil)
	if w.Code != http.StatusConflict {
		t.Errorf("expected 409 Conflict for empty cart, got %d", w.Code)
	}
}

func TestCheckoutHandler_StockDepletedAfterAdd(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	created := mustCreateProduct(r, handler.ProductRequest{Name: "Milk", Price: 2.0, Quantity: 2})
	if w := addToCart(r, created.Id, 2); w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	// Stock disappears between add and checkout.
	if _, err := productRepo.AdjustQuantity(created.Id, -1); err != nil {
		t.Fatalf("depleting stock: %v", err)
	}

	w := authRequest(r, http.MethodPost, "/checkout", nil)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 Conflict, got %d", w.Code)
	}

	// Nothing persisted, stock untouched, cart kept for correction.
	sales, err := saleRepo.GetAll()
	if err != nil {
		t.Fatalf("listing sales: %v", err)
	}
	if len(sales) != 0 {
		t.Errorf("expected no sales after failed checkout, got %d", len(sales))
	}
	p, err := productRepo.GetByID(created.Id)
	if err != nil {
		t.Fatalf("fetching product: %v", err)
	}
	if p.Quantity != 1 {
		t.Errorf("expected stock to stay at 1, got %d", p.Quantity)
	}
	if items := till.Items(); len(items) != 1 {
		t.Errorf("expected cart kept after failed checkout, got %+v", items)
	}
}

func TestGetSaleItemsHandler_NotFound(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	req := httptest.NewRequest(http.MethodGet, "/sales/999999/items", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 Not Found, got %d", w.Code)
	}
}

func TestClearSalesHandler(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	created := mustCreateProduct(r, handler.ProductRequest{Name: "Tea", Price: 3.5, Quantity: 5})
	if w := addToCart(r, created.Id, 1); w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	if w := authRequest(r, http.MethodPost, "/checkout", nil); w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", w.Code)
	}

	w := authRequest(r, http.MethodDelete, "/sales", nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204 No Content, got %d", w.Code)
	}

	salesReq := httptest.NewRequest(http.MethodGet, "/sales", nil)
	salesW := httptest.NewRecorder()
	r.ServeHTTP(salesW, salesReq)
	var sales []handler.SaleResponse
	if err := json.NewDecoder(salesW.Body).Decode(&sales); err != nil {
		t.Fatalf("error decoding sales: %v", err)
	}
	if len(sales) != 0 {
		t.Errorf("expected no sales after clear, got %d", len(sales))
	}
}

func TestGetDashboardMetricsHandler(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	rice := mustCreateProduct(r, handler.ProductRequest{Name: "Rice 1kg", Price: 10.0, Quantity: 10})
	mustCreateProduct(r, handler.ProductRequest{Name: "Gone", Price: 1.0, Quantity: 0})

	if w := addToCart(r, rice.Id, 3); w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	if w := authRequest(r, http.MethodPost, "/checkout", nil); w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", w.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/metrics/dashboard", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	var m repo.Metrics
	if err := json.NewDecoder(w.Body).Decode(&m); err != nil {
		t.Fatalf("error decoding metrics: %v", err)
	}
	if m.TotalProducts != 2 {
		t.Errorf("expected 2 products, got %d", m.TotalProducts)
	}
	if m.OutOfStockCount != 1 {
		t.Errorf("expected 1 out of stock, got %d", m.OutOfStockCount)
	}
	if m.TodaySalesCount != 1 {
		t.Errorf("expected 1 sale today, got %d", m.TodaySalesCount)
	}
	if m.TodayRevenue != 30.0 {
		t.Errorf("expected revenue 30.0, got %v", m.TodayRevenue)
	}
	if m.BestSellerToday.Name != "Rice 1kg" || m.BestSellerToday.QuantitySold != 3 {
		t.Errorf("unexpected best seller: %+v", m.BestSellerToday)
	}
}
