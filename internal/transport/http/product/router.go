package product

import (
	"net/http"

	"github.com/murkotick/product-lookup-service/internal/pkg/clock"
)

// NewRouter registers HTTP routes and returns the handler wrapped with the
// middleware chain (request id → access log → CORS → mux). Method patterns
// let the mux reject mismatched verbs with 405 before the handlers run.
func NewRouter(h *Handler, allowedOrigins []string, clk clock.Clock) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /products/{id}", h.GetProduct)
	mux.HandleFunc("GET /healthz", h.Health)
	return WithRequestID(WithLogging(clk, WithCORS(allowedOrigins, mux)))
}
