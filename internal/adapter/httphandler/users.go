package httphandler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/niksmo/shop/internal/core/port"
)

// POST v1/users/register JSON (200 OK, 400, 409)
// POST v1/users/login JSON (200 OK, 401)
// POST v1/wishlist JSON, bearer required (200 OK, 401, 404)
// GET v1/wishlist, bearer required (200 OK, 401)

type UsersHandler struct {
	registrar port.UserRegistrar
	wishlist  port.WishlistKeeper
	resolver  port.PrincipalResolver
}

func RegisterUsers(
	mux *http.ServeMux,
	registrar port.UserRegistrar,
	wishlist port.WishlistKeeper,
	resolver port.PrincipalResolver,
) {
	h := UsersHandler{registrar, wishlist, resolver}
	mux.HandleFunc("POST /v1/users/register", h.Register)
	mux.HandleFunc("POST /v1/users/login", h.Login)
	mux.HandleFunc("POST /v1/wishlist", h.AddWishlist)
	mux.HandleFunc("GET /v1/wishlist", h.GetWishlist)
}

func (h UsersHandler) Register(w http.ResponseWriter, r *http.Request) {
	const op = "UsersHandler.Register"
	log := slog.With("op", op)

	var in RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeResponse(w, log, Response{
			StatusCode: http.StatusBadRequest, Error: "invalid JSON data",
		})
		return
	}

	u, err := h.registrar.Register(
		r.Context(), in.Username, in.Email, in.Password,
	)
	if err != nil {
		writeFailure(w, log, err)
		return
	}

	log.Info("user registered", "userID", u.ID)
	writeData(w, log, http.StatusOK, "Successfully to register", toUser(u))
}

func (h UsersHandler) Login(w http.ResponseWriter, r *http.Request) {
	const op = "UsersHandler.Login"
	log := slog.With("op", op)

	var in LoginInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeResponse(w, log, Response{
			StatusCode: http.StatusBadRequest, Error: "invalid JSON data",
		})
		return
	}

	token, err := h.registrar.Login(r.Context(), in.Email, in.Password)
	if err != nil {
		writeFailure(w, log, err)
		return
	}

	writeData(w, log, http.StatusOK, "Successfully to login", LoginData{token})
}

func (h UsersHandler) AddWishlist(w http.ResponseWriter, r *http.Request) {
	const op = "UsersHandler.AddWishlist"
	log := slog.With("op", op)

	principal, err := resolvePrincipal(r, h.resolver)
	if err != nil {
		writeFailure(w, log, err)
		return
	}

	var in WishlistInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeResponse(w, log, Response{
			StatusCode: http.StatusBadRequest, Error: "invalid JSON data",
		})
		return
	}

	ws, err := h.wishlist.AddWishlist(r.Context(), principal.ID, in.ProductID)
	if err != nil {
		writeFailure(w, log, err)
		return
	}

	writeData(w, log, http.StatusOK,
		"Successfully add product wishlist", toWishlist(ws))
}

func (h UsersHandler) GetWishlist(w http.ResponseWriter, r *http.Request) {
	const op = "UsersHandler.GetWishlist"
	log := slog.With("op", op)

	principal, err := resolvePrincipal(r, h.resolver)
	if err != nil {
		writeFailure(w, log, err)
		return
	}

	ws, err := h.wishlist.GetWishlist(r.Context(), principal.ID)
	if err != nil {
		writeFailure(w, log, err)
		return
	}

	writeData(w, log, http.StatusOK,
		"Successfully retrieved wishlist data", toWishlist(ws))
}
