package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"

	"github.com/SSG3800/Retail-POS-System/internal/auth"
	"github.com/SSG3800/Retail-POS-System/internal/export"
	api "github.com/SSG3800/Retail-POS-System/internal/http"
	handler "github.com/SSG3800/Retail-POS-System/internal/http/handlers"
	"github.com/SSG3800/Retail-POS-System/internal/http/lockout"
	"github.com/SSG3800/Retail-POS-System/internal/pos"
	"github.com/SSG3800/Retail-POS-System/internal/repo"
)

var (
	token        string
	productRepo  *repo.InMemoryProductRepository
	movementRepo *repo.InMemoryMovementRepository
	saleRepo     *repo.InMemorySaleRepository
	settingsRepo *repo.InMemorySettingsRepository
	till         *pos.Service
	lockoutStore *lockout.MemoryStore
)

// Every login in the suite uses its own client address: the login route is
// rate limited and lockout counters are keyed per address, so sharing the
// default httptest address would let one test trip another.
var nextAddr int

func freshAddr() string {
	nextAddr++
	return fmt.Sprintf("10.99.0.%d:4242", nextAddr)
}

func init() {
	setupTestRepos("secret")
	r := api.NewRouter()

	var err error
	token, err = generateToken(r, "secret")
	if err != nil {
		panic(fmt.Sprintf("error generating token: %v", err))
	}
}

func setupTestRepos(password string) {
	productRepo = repo.NewInMemoryProductRepository()
	handler.SetProductRepo(productRepo)

	movementRepo = repo.NewInMemoryMovementRepository()
	handler.SetMovementRepo(movementRepo)

	saleRepo = repo.NewInMemorySaleRepository(productRepo)
	handler.SetSaleRepo(saleRepo)

	metricsRepo := repo.NewInMemoryMetricsRepository()
	metricsRepo.SetRepositories(productRepo, saleRepo)
	handler.SetMetricsRepo(metricsRepo)

	hash, _ := auth.HashPassword(password)
	settingsRepo = repo.NewInMemorySettingsRepository(hash, false)
	handler.SetGate(auth.NewGate(settingsRepo))

	till = pos.NewService(productRepo, saleRepo, movementRepo)
	handler.SetTill(till)

	handler.SetExporter(export.NewExporter(productRepo, saleRepo))

	lockoutStore = lockout.NewMemoryStore()
	handler.SetLockoutStore(lockoutStore)
}

func clearAll() {
	till.Clear()
	saleRepo.Clear()
	productRepo.Clear()
}

func generateToken(r http.Handler, password string) (string, error) {
	w := login(r, password)

	var resp handler.LoginResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		return "", fmt.Errorf("token decoding failed: %v", err)
	}
	return resp.Token, nil
}

func login(r http.Handler, password string) *httptest.ResponseRecorder {
	body, _ := json.Marshal(handler.LoginRequest{Password: password})
	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
	req.RemoteAddr = freshAddr()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createProduct(r http.Handler, p handler.ProductRequest) *httptest.ResponseRecorder {
	body, _ := json.Marshal(p)
	req := httptest.NewRequest(http.MethodPost, "/products", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func mustCreateProduct(r http.Handler, p handler.ProductRequest) handler.ProductResponse {
	w := createProduct(r, p)
	if w.Code != http.StatusCreated {
		panic(fmt.Sprintf("expected 201 Created for %q, got %d", p.Name, w.Code))
	}
	var created handler.ProductResponse
	if err := json.NewDecoder(w.Body).Decode(&created); err != nil {
		panic(fmt.Sprintf("error decoding create response: %v", err))
	}
	return created
}

func addToCart(r http.Handler, productID, quantity int) *httptest.ResponseRecorder {
	body, _ := json.Marshal(handler.CartItemRequest{ProductID: productID, Quantity: quantity})
	req := httptest.NewRequest(http.MethodPost, "/cart/items", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func adjustProduct(r http.Handler, productID int, adj handler.QuantityAdjustmentRequest) *httptest.ResponseRecorder {
	body, _ := json.Marshal(adj)
	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/products/%d/adjust", productID), bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func authRequest(r http.Handler, method, target string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func multipartCSV(csvContent string, filename string) (*bytes.Buffer, string) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, _ := writer.CreateFormFile("file", filename)
	part.Write([]byte(csvContent))

	writer.Close()
	return &buf, writer.FormDataContentType()
}
