package httpx

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/ariefcatur/larana-store/internal/catalog"
	"github.com/ariefcatur/larana-store/internal/customers"
	"github.com/ariefcatur/larana-store/internal/events"
	"github.com/ariefcatur/larana-store/internal/invoice"
	"github.com/ariefcatur/larana-store/internal/metrics"
	"github.com/ariefcatur/larana-store/internal/orders"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const dashboardRecent = 5

type AdminHandler struct {
	Orders    *orders.Store
	Products  *catalog.Admin
	Customers *customers.Directory
	Invoices  *invoice.Cache // nil renders every request
	Events    events.Publisher
	Service   string
}

// AdminOrder decorates an order with the admin workflow affordances.
type AdminOrder struct {
	orders.Order
	AvailableActions []orders.Status `json:"availableActions"`
	InvoiceFilename  string          `json:"invoiceFilename"`
}

func adminOrder(o orders.Order) AdminOrder {
	return AdminOrder{Order: o, AvailableActions: orders.AvailableActions(o.Status), InvoiceFilename: invoice.Filename(o)}
}

func adminOrders(os []orders.Order) []AdminOrder {
	out := make([]AdminOrder, 0, len(os))
	for _, o := range os {
		out = append(out, adminOrder(o))
	}
	return out
}

type Dashboard struct {
	Stats           orders.Stats      `json:"stats"`
	RecentOrders    []AdminOrder      `json:"recentOrders"`
	RecentCustomers []orders.Customer `json:"recentCustomers"`
	ProductCount    int               `json:"productCount"`
	OutOfStock      int               `json:"outOfStock"`
}

type StatusReq struct {
	Status orders.Status `json:"status"`
}

type PaymentStatusReq struct {
	PaymentStatus orders.PaymentStatus `json:"paymentStatus"`
}

type CustomerDetail struct {
	Customer orders.Customer `json:"customer"`
	Orders   []AdminOrder    `json:"orders"`
}

func (h *AdminHandler) Register(r chi.Router) {
	r.Get("/dashboard", h.dashboard)
	r.Get("/orders", h.listOrders)
	r.Get("/orders/{id}", h.getOrder)
	r.Put("/orders/{id}/status", h.updateStatus)
	r.Put("/orders/{id}/payment-status", h.updatePaymentStatus)
	r.Get("/orders/{id}/invoice", h.invoice)
	r.Get("/products", h.listProducts)
	r.Post("/products", h.addProduct)
	r.Delete("/products/{id}", h.removeProduct)
	r.Post("/products/{id}/toggle-stock", h.toggleStock)
	r.Get("/customers", h.listCustomers)
	r.Get("/customers/{id}", h.getCustomer)
}

func (h *AdminHandler) dashboard(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	var d Dashboard
	var err error
	if d.Stats, err = h.Orders.Stats(ctx); err != nil {
		writeError(w, r, err)
		return
	}
	recent, err := h.Orders.Recent(ctx, dashboardRecent)
	if err != nil {
		writeError(w, r, err)
		return
	}
	d.RecentOrders = adminOrders(recent)
	if d.RecentCustomers, err = h.Customers.Recent(ctx, dashboardRecent); err != nil {
		writeError(w, r, err)
		return
	}
	ps, err := h.Products.List(ctx)
	if err != nil {
		writeError(w, r, err)
		return
	}
	d.ProductCount = len(ps)
	for _, p := range ps {
		if !p.InStock {
			d.OutOfStock++
		}
	}
	writeJSON(w, http.StatusOK, d)
}

func (h *AdminHandler) listOrders(w http.ResponseWriter, r *http.Request) {
	os, err := h.Orders.List(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, adminOrders(os))
}

func (h *AdminHandler) findOrder(w http.ResponseWriter, r *http.Request) (orders.Order, bool) {
	o, ok, err := h.Orders.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return orders.Order{}, false
	}
	if !ok {
		writeMessage(w, http.StatusNotFound, "not found")
		return orders.Order{}, false
	}
	return o, true
}

func (h *AdminHandler) getOrder(w http.ResponseWriter, r *http.Request) {
	if o, ok := h.findOrder(w, r); ok {
		writeJSON(w, http.StatusOK, adminOrder(o))
	}
}

func (h *AdminHandler) updateStatus(w http.ResponseWriter, r *http.Request) {
	var req StatusReq
	if !decodeJSON(w, r, &req) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	o, from, err := h.Orders.UpdateStatus(ctx, chi.URLParam(r, "id"), req.Status)
	metrics.RecordStatusUpdate(string(req.Status), err == nil)
	if err != nil {
		writeError(w, r, err)
		return
	}

	env, err := orders.NewEnvelope(orders.EventOrderStatusChanged, h.Service, o.ID, orders.OrderStatusChangedPayload{
		OrderID: o.ID, From: from, To: o.Status, TotalAmount: o.TotalAmount,
	})
	if err == nil && h.Events != nil {
		env.TraceID = middleware.GetReqID(r.Context())
		err = h.Events.Publish(ctx, orders.TopicOrderStatusChanged, env)
	}
	if err != nil {
		log.Printf("admin: publish %s for %s: %v", orders.TopicOrderStatusChanged, o.ID, err)
	}
	writeJSON(w, http.StatusOK, adminOrder(o))
}

func (h *AdminHandler) updatePaymentStatus(w http.ResponseWriter, r *http.Request) {
	var req PaymentStatusReq
	if !decodeJSON(w, r, &req) {
		return
	}
	o, err := h.Orders.UpdatePaymentStatus(r.Context(), chi.URLParam(r, "id"), req.PaymentStatus)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if h.Invoices != nil {
		if err := h.Invoices.Invalidate(r.Context(), o.ID); err != nil {
			log.Printf("admin: invalidate invoice %s: %v", o.ID, err)
		}
	}
	writeJSON(w, http.StatusOK, adminOrder(o))
}

func (h *AdminHandler) invoice(w http.ResponseWriter, r *http.Request) {
	o, ok := h.findOrder(w, r)
	if !ok {
		return
	}
	html, err := h.Invoices.Render(r.Context(), o)
	if err != nil {
		writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("X-Invoice-Filename", invoice.Filename(o))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(html))
}

func (h *AdminHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	ps, err := h.Products.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ps)
}

func (h *AdminHandler) addProduct(w http.ResponseWriter, r *http.Request) {
	var req catalog.NewProduct
	if !decodeJSON(w, r, &req) {
		return
	}
	p, err := h.Products.Add(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (h *AdminHandler) removeProduct(w http.ResponseWriter, r *http.Request) {
	if err := h.Products.Remove(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminHandler) toggleStock(w http.ResponseWriter, r *http.Request) {
	p, err := h.Products.ToggleStock(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *AdminHandler) listCustomers(w http.ResponseWriter, r *http.Request) {
	cs, err := h.Customers.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cs)
}

func (h *AdminHandler) getCustomer(w http.ResponseWriter, r *http.Request) {
	c, err := h.Customers.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	os, err := h.Orders.ByCustomer(r.Context(), c.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, CustomerDetail{Customer: c, Orders: adminOrders(os)})
}
