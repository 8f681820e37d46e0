package httpx

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ariefcatur/larana-store/internal/auth"
	"github.com/ariefcatur/larana-store/internal/booking"
	"github.com/ariefcatur/larana-store/internal/cart"
	"github.com/ariefcatur/larana-store/internal/catalog"
	"github.com/ariefcatur/larana-store/internal/checkout"
	"github.com/ariefcatur/larana-store/internal/customers"
	"github.com/ariefcatur/larana-store/internal/events"
	"github.com/ariefcatur/larana-store/internal/orders"
	"github.com/ariefcatur/larana-store/internal/storage"
	"github.com/ariefcatur/larana-store/internal/team"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	t      *testing.T
	router http.Handler
	token  string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	return newTestServerOn(t, storage.NewMemory())
}

func newTestServerOn(t *testing.T, store storage.Store) *testServer {
	t.Helper()
	catalogRepo := catalog.NewMemoryRepository(catalog.Seed())
	cat := catalog.New(catalogRepo)
	carts := cart.NewService(store, cat)
	orderStore := orders.NewStore(orders.NewMemoryRepository(orders.Seed()))
	dir := customers.NewDirectory(customers.Seed())
	gate := auth.NewGate("admin@larana.com", "admin123", "secret", store)

	api := &API{
		Products: &ProductsHandler{Catalog: cat},
		Cart: &CartHandler{
			Carts:    carts,
			Checkout: checkout.NewService(carts, orderStore, dir, events.Noop{}, "test"),
			Orders:   orderStore,
		},
		Auth: &AuthHandler{Gate: gate},
		Admin: &AdminHandler{
			Orders:    orderStore,
			Products:  catalog.NewAdmin(catalogRepo.Clone()),
			Customers: dir,
			Events:    events.Noop{},
			Service:   "test",
		},
		Bookings: &BookingHandler{Bookings: booking.NewBook()},
		Gate:     gate,
	}
	r := NewRouter()
	api.Register(r)
	return &testServer{t: t, router: r}
}

func (s *testServer) do(method, path string, body any, headers ...string) *httptest.ResponseRecorder {
	s.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(s.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func checkoutBody() map[string]any {
	return map[string]any{
		"firstName": "Jane", "lastName": "Roe", "email": "jane@example.com", "phone": "5551234567",
		"shippingAddress": map[string]string{
			"street": "1 Long Street", "city": "Austin", "state": "TX", "zipCode": "73301", "country": "USA",
		},
		"paymentMethod": "Credit Card",
	}
}

func TestHealthz(t *testing.T) {
	s := newTestServer(t)
	rec := s.do(http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestProducts(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/api/products?category=ring&sort=price-low-high", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	ps := decode[[]catalog.Product](t, rec)
	require.Len(t, ps, 2)
	assert.True(t, ps[0].Price.LessThan(ps[1].Price))

	rec = s.do(http.MethodGet, "/api/products/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"price":129.99`)

	assert.Equal(t, http.StatusNotFound, s.do(http.MethodGet, "/api/products/nope", nil).Code)
	assert.Equal(t, http.StatusBadRequest, s.do(http.MethodGet, "/api/products?maxPrice=abc", nil).Code)

	rec = s.do(http.MethodGet, "/api/products/1/related?limit=2", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]catalog.Product](t, rec), 2)

	rec = s.do(http.MethodGet, "/api/products/categories", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[catalog.Facets](t, rec).Categories, 4)
}

func TestCartAndCheckout(t *testing.T) {
	s := newTestServer(t)
	client := []string{HeaderClientID, "browser-1"}

	rec := s.do(http.MethodPost, "/api/cart/items", map[string]any{"productId": "1", "quantity": 2}, client...)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "browser-1", rec.Header().Get(HeaderClientID))

	rec = s.do(http.MethodPost, "/api/cart/items", map[string]any{"productId": "3"}, client...)
	require.Equal(t, http.StatusOK, rec.Code)
	v := decode[cart.View](t, rec)
	assert.Equal(t, "359.97", v.Subtotal.String())

	assert.Equal(t, http.StatusNotFound,
		s.do(http.MethodPost, "/api/cart/items", map[string]any{"productId": "404"}, client...).Code)

	bad := checkoutBody()
	bad["email"] = "nope"
	rec = s.do(http.MethodPost, "/api/checkout", bad, client...)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"email"`)

	rec = s.do(http.MethodPost, "/api/checkout", checkoutBody(), client...)
	require.Equal(t, http.StatusCreated, rec.Code)
	o := decode[orders.Order](t, rec)
	assert.Equal(t, "359.97", o.TotalAmount.String())
	assert.Equal(t, o.ShippingAddress, o.BillingAddress)

	rec = s.do(http.MethodGet, "/api/cart", nil, client...)
	assert.Empty(t, decode[cart.View](t, rec).Lines)

	rec = s.do(http.MethodGet, "/api/orders/"+o.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, http.StatusConflict, s.do(http.MethodPost, "/api/checkout", checkoutBody(), client...).Code)
}

func TestCart_GeneratesClientID(t *testing.T) {
	s := newTestServer(t)
	rec := s.do(http.MethodGet, "/api/cart", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(HeaderClientID))
}

func TestAdmin_RequiresSession(t *testing.T) {
	s := newTestServer(t)
	assert.Equal(t, http.StatusUnauthorized, s.do(http.MethodGet, "/api/admin/dashboard", nil).Code)

	rec := s.do(http.MethodPost, "/api/auth/login", map[string]string{"email": "admin@larana.com", "password": "bad"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = s.do(http.MethodPost, "/api/auth/login", map[string]string{"email": "admin@larana.com", "password": "admin123"})
	require.Equal(t, http.StatusOK, rec.Code)
	s.token = decode[auth.Session](t, rec).Token
	require.NotEmpty(t, s.token)

	rec = s.do(http.MethodGet, "/api/admin/dashboard", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	d := decode[Dashboard](t, rec)
	assert.Equal(t, 1, d.Stats.OrderCount)
	assert.Equal(t, 12, d.ProductCount)

	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, "/api/auth/me", nil).Code)
	assert.Equal(t, http.StatusNoContent, s.do(http.MethodPost, "/api/auth/logout", nil).Code)
	assert.Equal(t, http.StatusUnauthorized, s.do(http.MethodGet, "/api/admin/dashboard", nil).Code)
}

func login(t *testing.T, s *testServer) {
	t.Helper()
	rec := s.do(http.MethodPost, "/api/auth/login", map[string]string{"email": "admin@larana.com", "password": "admin123"})
	require.Equal(t, http.StatusOK, rec.Code)
	s.token = decode[auth.Session](t, rec).Token
}

func TestAdmin_OrderWorkflow(t *testing.T) {
	s := newTestServer(t)
	login(t, s)

	rec := s.do(http.MethodGet, "/api/admin/orders/ord-001", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	o := decode[AdminOrder](t, rec)
	assert.Empty(t, o.AvailableActions)
	assert.Equal(t, "Invoice_ord-001_20231115.pdf", o.InvoiceFilename)

	rec = s.do(http.MethodPut, "/api/admin/orders/ord-001/status", map[string]string{"status": "processing"})
	require.Equal(t, http.StatusOK, rec.Code)
	o = decode[AdminOrder](t, rec)
	assert.Equal(t, orders.StatusProcessing, o.Status)
	assert.Equal(t, []orders.Status{orders.StatusShipped, orders.StatusCancelled}, o.AvailableActions)

	assert.Equal(t, http.StatusBadRequest,
		s.do(http.MethodPut, "/api/admin/orders/ord-001/status", map[string]string{"status": "lost"}).Code)
	assert.Equal(t, http.StatusNotFound,
		s.do(http.MethodPut, "/api/admin/orders/nope/status", map[string]string{"status": "shipped"}).Code)

	rec = s.do(http.MethodPut, "/api/admin/orders/ord-001/payment-status", map[string]string{"paymentStatus": "failed"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, orders.PaymentFailed, decode[AdminOrder](t, rec).PaymentStatus)

	rec = s.do(http.MethodGet, "/api/admin/orders?status=processing", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]AdminOrder](t, rec), 1)

	rec = s.do(http.MethodGet, "/api/admin/orders/ord-001/invoice", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "FAILED")
}

func TestAdmin_ProductsWorkingCopy(t *testing.T) {
	s := newTestServer(t)
	login(t, s)

	rec := s.do(http.MethodPost, "/api/admin/products", map[string]any{
		"name": "Opal Ring", "category": "Ring", "price": 42.5, "images": []string{"/img/opal.png"}, "inStock": true,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	added := decode[catalog.Product](t, rec)

	assert.Equal(t, http.StatusNotFound, s.do(http.MethodGet, "/api/products/"+added.ID, nil).Code)

	rec = s.do(http.MethodPost, "/api/admin/products/2/toggle-stock", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, decode[catalog.Product](t, rec).InStock)

	assert.Equal(t, http.StatusNoContent, s.do(http.MethodDelete, "/api/admin/products/1", nil).Code)
	assert.Equal(t, http.StatusNotFound, s.do(http.MethodDelete, "/api/admin/products/1", nil).Code)
	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, "/api/products/1", nil).Code)

	assert.Equal(t, http.StatusBadRequest,
		s.do(http.MethodPost, "/api/admin/products", map[string]any{"name": "x"}).Code)
}

func TestAdmin_Customers(t *testing.T) {
	s := newTestServer(t)
	login(t, s)

	rec := s.do(http.MethodGet, "/api/admin/customers", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]orders.Customer](t, rec), 4)

	rec = s.do(http.MethodGet, "/api/admin/customers/CUST-002", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	d := decode[CustomerDetail](t, rec)
	assert.Equal(t, "Michael", d.Customer.FirstName)
	assert.Empty(t, d.Orders)

	assert.Equal(t, http.StatusNotFound, s.do(http.MethodGet, "/api/admin/customers/none", nil).Code)
}

type unreliableStore struct {
	storage.Store
	failGet, failSet bool
}

func (s *unreliableStore) Get(ctx context.Context, key string) ([]byte, error) {
	if s.failGet {
		return nil, errors.New("i/o timeout")
	}
	return s.Store.Get(ctx, key)
}

func (s *unreliableStore) Set(ctx context.Context, key string, value []byte) error {
	if s.failSet {
		return errors.New("i/o timeout")
	}
	return s.Store.Set(ctx, key, value)
}

func TestCart_StorageFailures(t *testing.T) {
	st := &unreliableStore{Store: storage.NewMemory()}
	s := newTestServerOn(t, st)
	client := []string{HeaderClientID, "browser-2"}

	require.Equal(t, http.StatusOK,
		s.do(http.MethodPost, "/api/cart/items", map[string]any{"productId": "1"}, client...).Code)

	st.failGet = true
	assert.Equal(t, http.StatusInternalServerError, s.do(http.MethodGet, "/api/cart", nil, client...).Code)
	assert.Equal(t, http.StatusInternalServerError,
		s.do(http.MethodPost, "/api/cart/items", map[string]any{"productId": "3"}, client...).Code)
	assert.Equal(t, http.StatusInternalServerError, s.do(http.MethodPost, "/api/checkout", checkoutBody(), client...).Code)

	st.failGet = false
	rec := s.do(http.MethodGet, "/api/cart", nil, client...)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[cart.View](t, rec).Lines, 1)

	st.failSet = true
	rec = s.do(http.MethodPost, "/api/checkout", checkoutBody(), client...)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "false", rec.Header().Get(HeaderCartCleared))
	assert.NotEmpty(t, decode[orders.Order](t, rec).ID)
}

func TestBookings(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/api/bookings/options", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	opts := decode[BookingOptions](t, rec)
	assert.Len(t, opts.Services, 8)
	assert.Len(t, opts.TimeSlots, 15)

	rec = s.do(http.MethodPost, "/api/bookings", map[string]string{"name": "Al", "email": "x"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Name must be at least 3 characters")

	day := time.Now().AddDate(0, 0, 1)
	if day.Weekday() == time.Sunday {
		day = day.AddDate(0, 0, 1)
	}
	rec = s.do(http.MethodPost, "/api/bookings", map[string]string{
		"name": "Ava Stone", "email": "ava@example.com", "phone": "5551234567",
		"date": day.Format(booking.DateLayout), "time": "2:00 PM", "service": "Private Viewing",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	resp := decode[BookingResp](t, rec)
	assert.Equal(t, "Booking confirmed", resp.Confirmation.Title)

	assert.Equal(t, http.StatusUnauthorized, s.do(http.MethodGet, "/api/admin/bookings", nil).Code)
	login(t, s)
	rec = s.do(http.MethodGet, "/api/admin/bookings", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]booking.Booking](t, rec), 1)

	rec = s.do(http.MethodGet, "/api/team", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]team.Member](t, rec), 4)
}
