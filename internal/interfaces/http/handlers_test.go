package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockflow/stockflow-api/internal/application/usecase"
	"github.com/stockflow/stockflow-api/internal/domain"
	"github.com/stockflow/stockflow-api/internal/domain/entity"
	"github.com/stockflow/stockflow-api/internal/domain/repository"
	apphttp "github.com/stockflow/stockflow-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Stubs mínimos de los puertos para levantar la app completa en memoria
// ──────────────────────────────────────────────────────────────────────────────

type stubProductRepo struct {
	nextID   int64
	products []*entity.Product
}

func (r *stubProductRepo) Create(p *entity.Product) error {
	for _, existing := range r.products {
		if existing.SKU == p.SKU {
			return domain.ErrDuplicate
		}
	}
	r.nextID++
	p.ID = r.nextID
	cp := *p
	r.products = append(r.products, &cp)
	return nil
}

func (r *stubProductRepo) GetByID(id int64) (*entity.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

type stubInventoryRepo struct{ levels []*entity.Inventory }

func (r *stubInventoryRepo) Create(level *entity.Inventory) error {
	cp := *level
	r.levels = append(r.levels, &cp)
	return nil
}

type stubChangeRepo struct{ changes []*entity.InventoryChange }

func (r *stubChangeRepo) Create(ch *entity.InventoryChange) error {
	ch.ID = int64(len(r.changes) + 1)
	cp := *ch
	r.changes = append(r.changes, &cp)
	return nil
}

func (r *stubChangeRepo) SumDeltas(productID, warehouseID int64) (int64, error) {
	var sum int64
	for _, ch := range r.changes {
		if ch.ProductID == productID && ch.WarehouseID == warehouseID {
			sum += ch.QuantityDelta
		}
	}
	return sum, nil
}

type stubWarehouseRepo struct{ warehouses map[int64]*entity.Warehouse }

func (r *stubWarehouseRepo) GetByID(id int64) (*entity.Warehouse, error) {
	w, ok := r.warehouses[id]
	if !ok {
		return nil, nil
	}
	cp := *w
	return &cp, nil
}

type stubCompanyRepo struct{ companies map[int64]*entity.Company }

func (r *stubCompanyRepo) GetByID(id int64) (*entity.Company, error) {
	c, ok := r.companies[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

type stubAlertRepo struct{ candidates []repository.LowStockCandidate }

func (r *stubAlertRepo) ListLowStockCandidates(_ context.Context, _ int64, _ time.Time) ([]repository.LowStockCandidate, error) {
	return r.candidates, nil
}

// stubTxRunner ejecuta fn directo sobre los stubs; el comportamiento de
// rollback se prueba en los tests del caso de uso.
type stubTxRunner struct {
	products *stubProductRepo
	levels   *stubInventoryRepo
	changes  *stubChangeRepo
}

func (t *stubTxRunner) Run(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	inventoryRepo repository.InventoryRepository,
	changeRepo repository.InventoryChangeRepository,
) error) error {
	return fn(t.products, t.levels, t.changes)
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

type testEnv struct {
	app    *fiber.App
	alerts *stubAlertRepo
}

func buildTestApp(t *testing.T) *testEnv {
	t.Helper()

	products := &stubProductRepo{}
	levels := &stubInventoryRepo{}
	changes := &stubChangeRepo{}
	warehouses := &stubWarehouseRepo{warehouses: map[int64]*entity.Warehouse{
		10: {ID: 10, CompanyID: 1, Name: "Central"},
	}}
	companies := &stubCompanyRepo{companies: map[int64]*entity.Company{
		1: {ID: 1, Name: "Acme"},
	}}
	alerts := &stubAlertRepo{}

	productUC := usecase.NewProductUseCase(&stubTxRunner{products, levels, changes}, products, warehouses)
	alertUC := usecase.NewAlertUseCase(companies, alerts)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{ProductUC: productUC, AlertUC: alertUC})
	return &testEnv{app: app, alerts: alerts}
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) *http.Response {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests POST /api/products
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateProduct_Devuelve201(t *testing.T) {
	env := buildTestApp(t)

	resp := doJSON(t, env.app, http.MethodPost, "/api/products",
		`{"name":"Tornillo 3mm","sku":"TOR-003","price":19.99,"warehouse_id":10,"initial_quantity":25}`)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	product := body["product"].(map[string]any)
	inventory := body["inventory"].(map[string]any)
	assert.Equal(t, "TOR-003", product["sku"])
	assert.Equal(t, float64(10), inventory["warehouse_id"])
	assert.Equal(t, float64(25), inventory["quantity"])
}

func TestCreateProduct_CuerpoMalformado(t *testing.T) {
	env := buildTestApp(t)

	resp := doJSON(t, env.app, http.MethodPost, "/api/products", `{"name":`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_BODY", decodeBody(t, resp)["code"])
}

func TestCreateProduct_CamposFaltantes(t *testing.T) {
	env := buildTestApp(t)

	resp := doJSON(t, env.app, http.MethodPost, "/api/products",
		`{"name":"","sku":"X","price":1,"warehouse_id":10}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", decodeBody(t, resp)["code"])
}

// price ausente ≠ price 0: sin el campo la petición se rechaza y no se crea nada.
func TestCreateProduct_PrecioAusente(t *testing.T) {
	env := buildTestApp(t)

	resp := doJSON(t, env.app, http.MethodPost, "/api/products",
		`{"name":"Tornillo","sku":"TOR-NP","warehouse_id":10,"initial_quantity":1}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", decodeBody(t, resp)["code"])

	resp = doJSON(t, env.app, http.MethodGet, "/api/products/1", "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestCreateProduct_BodegaDesconocida(t *testing.T) {
	env := buildTestApp(t)

	resp := doJSON(t, env.app, http.MethodPost, "/api/products",
		`{"name":"Tornillo","sku":"TOR-004","price":1.50,"warehouse_id":999}`)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decodeBody(t, resp)["code"])
}

func TestCreateProduct_SKUDuplicadoDevuelve409(t *testing.T) {
	env := buildTestApp(t)

	payload := `{"name":"Tornillo","sku":"TOR-005","price":1.50,"warehouse_id":10}`
	resp := doJSON(t, env.app, http.MethodPost, "/api/products", payload)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = doJSON(t, env.app, http.MethodPost, "/api/products", payload)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, "DUPLICATE", decodeBody(t, resp)["code"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests GET /api/products/{id}
// ──────────────────────────────────────────────────────────────────────────────

func TestGetProduct_NoEncontrado(t *testing.T) {
	env := buildTestApp(t)

	resp := doJSON(t, env.app, http.MethodGet, "/api/products/42", "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, env.app, http.MethodGet, "/api/products/abc", "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestGetProduct_Existente(t *testing.T) {
	env := buildTestApp(t)

	resp := doJSON(t, env.app, http.MethodPost, "/api/products",
		`{"name":"Tornillo","sku":"TOR-006","price":2.00,"warehouse_id":10}`)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = doJSON(t, env.app, http.MethodGet, "/api/products/1", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "TOR-006", decodeBody(t, resp)["sku"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests GET /api/companies/{id}/alerts/low-stock
// ──────────────────────────────────────────────────────────────────────────────

func TestLowStockAlerts_EmpresaDesconocida(t *testing.T) {
	env := buildTestApp(t)

	resp := doJSON(t, env.app, http.MethodGet, "/api/companies/999/alerts/low-stock", "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decodeBody(t, resp)["code"])
}

func TestLowStockAlerts_DiasInvalidos(t *testing.T) {
	env := buildTestApp(t)

	for _, q := range []string{"?days=0", "?days=-3", "?days=abc", "?days=1.5"} {
		resp := doJSON(t, env.app, http.MethodGet, "/api/companies/1/alerts/low-stock"+q, "")
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, "query %q", q)
	}
}

func TestLowStockAlerts_EmpresaSinAlertas(t *testing.T) {
	env := buildTestApp(t)

	resp := doJSON(t, env.app, http.MethodGet, "/api/companies/1/alerts/low-stock", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, float64(0), body["total_alerts"])
	assert.Empty(t, body["alerts"])
}

func TestLowStockAlerts_ConResultadosOrdenados(t *testing.T) {
	env := buildTestApp(t)

	def := int64(10)
	mk := func(productID, warehouseID, quantity int64) repository.LowStockCandidate {
		return repository.LowStockCandidate{
			ProductID:        productID,
			ProductName:      "Producto",
			SKU:              "SKU",
			WarehouseID:      warehouseID,
			WarehouseName:    "Bodega",
			Quantity:         quantity,
			DefaultThreshold: &def,
			UnitsSold:        10,
		}
	}
	env.alerts.candidates = []repository.LowStockCandidate{
		mk(2, 10, 8), // déficit -2
		mk(1, 10, 1), // déficit -9: primero
	}

	resp := doJSON(t, env.app, http.MethodGet, "/api/companies/1/alerts/low-stock?days=30", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	require.Equal(t, float64(2), body["total_alerts"])
	alerts := body["alerts"].([]any)
	first := alerts[0].(map[string]any)
	assert.Equal(t, float64(1), first["product_id"])
	assert.Equal(t, float64(1), first["current_stock"])
	assert.Equal(t, float64(10), first["threshold"])
}
