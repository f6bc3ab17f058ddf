package httphandler

import (
	"net/http"
	"strings"

	"github.com/niksmo/shop/internal/core/domain"
	"github.com/niksmo/shop/internal/core/port"
)

func AllowJSON(next http.Handler) http.Handler {
	hf := func(w http.ResponseWriter, r *http.Request) {
		if r.ContentLength == 0 {
			next.ServeHTTP(w, r)
			return
		}

		if r.Header.Get("Content-Type") != "application/json" {
			http.Error(w, "invalid media type", http.StatusUnsupportedMediaType)
			return
		}

		next.ServeHTTP(w, r)
	}
	return http.HandlerFunc(hf)
}

// resolvePrincipal extracts the bearer credential and resolves it for this
// request only.
func resolvePrincipal(
	r *http.Request, resolver port.PrincipalResolver,
) (domain.Principal, error) {
	header := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		return domain.Principal{}, domain.ErrAuthentication
	}
	return resolver.ResolvePrincipal(r.Context(), token)
}
