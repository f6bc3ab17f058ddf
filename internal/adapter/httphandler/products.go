package httphandler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/niksmo/shop/internal/core/port"
)

// GET v1/products (200 OK, list served through the cache slot)
// GET v1/products/{id} (200 OK, 404 Not found)
// POST v1/products JSON (200 OK, 400 Bad request)
// PUT v1/products/{id} JSON (200 OK, 400, 404)
// DELETE v1/products/{id} (200 OK, 404)

type ProductsHandler struct {
	reader port.CatalogReader
	writer port.CatalogWriter
}

func RegisterProducts(
	mux *http.ServeMux, reader port.CatalogReader, writer port.CatalogWriter,
) {
	h := ProductsHandler{reader, writer}
	mux.HandleFunc("GET /v1/products", h.List)
	mux.HandleFunc("GET /v1/products/{id}", h.Get)
	mux.HandleFunc("POST /v1/products", h.Create)
	mux.HandleFunc("PUT /v1/products/{id}", h.Update)
	mux.HandleFunc("DELETE /v1/products/{id}", h.Delete)
}

func (h ProductsHandler) List(w http.ResponseWriter, r *http.Request) {
	const op = "ProductsHandler.List"
	log := slog.With("op", op)

	ps, err := h.reader.ListProducts(r.Context())
	if err != nil {
		writeFailure(w, log, err)
		return
	}

	writeData(w, log, http.StatusOK,
		"Successfully retrieved products data", toProducts(ps))
}

func (h ProductsHandler) Get(w http.ResponseWriter, r *http.Request) {
	const op = "ProductsHandler.Get"
	log := slog.With("op", op)

	p, err := h.reader.GetProduct(r.Context(), r.PathValue("id"))
	if err != nil {
		writeFailure(w, log, err)
		return
	}

	writeData(w, log, http.StatusOK,
		"Successfully retrieved product data", toProduct(p))
}

func (h ProductsHandler) Create(w http.ResponseWriter, r *http.Request) {
	const op = "ProductsHandler.Create"
	log := slog.With("op", op)

	var in ProductInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeResponse(w, log, Response{
			StatusCode: http.StatusBadRequest, Error: "invalid JSON data",
		})
		return
	}

	p, err := h.writer.CreateProduct(r.Context(), in.Name, in.Stock, in.Price)
	if err != nil {
		writeFailure(w, log, err)
		return
	}

	log.Info("product created", "productID", p.ID)
	writeData(w, log, http.StatusOK,
		"Successfully create new product", toProduct(p))
}

func (h ProductsHandler) Update(w http.ResponseWriter, r *http.Request) {
	const op = "ProductsHandler.Update"
	log := slog.With("op", op)

	var in ProductInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeResponse(w, log, Response{
			StatusCode: http.StatusBadRequest, Error: "invalid JSON data",
		})
		return
	}

	p, err := h.writer.UpdateProduct(
		r.Context(), r.PathValue("id"), in.Name, in.Stock, in.Price,
	)
	if err != nil {
		writeFailure(w, log, err)
		return
	}

	writeData(w, log, http.StatusOK, "Successfully update product", toProduct(p))
}

func (h ProductsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	const op = "ProductsHandler.Delete"
	log := slog.With("op", op)

	productID := r.PathValue("id")
	if err := h.writer.DeleteProduct(r.Context(), productID); err != nil {
		writeFailure(w, log, err)
		return
	}

	writeData(w, log, http.StatusOK, "Successfully delete product", nil)
}
