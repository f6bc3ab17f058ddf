package httphandler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/niksmo/shop/internal/core/domain"
	"github.com/niksmo/shop/internal/core/port"
	"github.com/niksmo/shop/pkg/retry"
)

// POST v1/orders JSON, bearer required (200 OK, 400, 401, 404, 409)
// GET v1/orders, bearer required (200 OK, 401)

type OrdersHandler struct {
	placer   port.OrderPlacer
	resolver port.PrincipalResolver
	retryCfg retry.RetryConfig
}

// RegisterOrders wires the order endpoints. retryCfg bounds how many times
// a placement aborted by a conflicting concurrent transaction is retried
// before the failure is surfaced.
func RegisterOrders(
	mux *http.ServeMux,
	placer port.OrderPlacer,
	resolver port.PrincipalResolver,
	retryCfg retry.RetryConfig,
) {
	h := OrdersHandler{placer, resolver, retryCfg}
	mux.HandleFunc("POST /v1/orders", h.Create)
	mux.HandleFunc("GET /v1/orders", h.List)
}

func (h OrdersHandler) Create(w http.ResponseWriter, r *http.Request) {
	const op = "OrdersHandler.Create"
	log := slog.With("op", op)

	principal, err := resolvePrincipal(r, h.resolver)
	if err != nil {
		writeFailure(w, log, err)
		return
	}

	var in OrderCreateInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeResponse(w, log, Response{
			StatusCode: http.StatusBadRequest, Error: "invalid JSON data",
		})
		return
	}

	o, err := retry.DoWithResult(r.Context(), h.retryCfg,
		func() (domain.Order, error) {
			return h.placer.PlaceOrder(
				r.Context(), principal.ID, in.ProductID, in.Quantity,
			)
		})
	if err != nil {
		writeFailure(w, log, err)
		return
	}

	log.Info("order placed",
		"orderID", o.ID, "productID", o.ProductID, "quantity", o.Quantity)
	writeData(w, log, http.StatusOK, "Successfully create new order", toOrder(o))
}

func (h OrdersHandler) List(w http.ResponseWriter, r *http.Request) {
	const op = "OrdersHandler.List"
	log := slog.With("op", op)

	principal, err := resolvePrincipal(r, h.resolver)
	if err != nil {
		writeFailure(w, log, err)
		return
	}

	os, err := h.placer.ListOrders(r.Context(), principal.ID)
	if err != nil {
		writeFailure(w, log, err)
		return
	}

	writeData(w, log, http.StatusOK,
		"Successfully retrieved orders data", toOrders(os))
}
