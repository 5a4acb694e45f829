package product

import (
	"encoding/json"
	"net/http"
	"strconv"

	contracts "github.com/murkotick/product-lookup-service/internal/app/product/contracts"
	"github.com/murkotick/product-lookup-service/internal/app/product/queries/get_product"
	"github.com/murkotick/product-lookup-service/internal/obs"
)

// Queries groups read handlers.
// Keep the transport layer depending on the application layer only.
type Queries struct {
	Get *get_product.Handler
}

// Handler is a thin HTTP transport adapter. It parses path input, delegates
// to the lookup handler and translates present/absent into status codes.
// It holds no per-request state and is safe for concurrent use.
type Handler struct {
	queries Queries
	health  contracts.ReadModel
}

func NewHandler(qry Queries, health contracts.ReadModel) *Handler {
	return &Handler{queries: qry, health: health}
}

// GetProduct serves GET /products/{id}.
//
// A non-numeric or non-positive id never reaches the lookup service: it is
// rejected with a 400 here. Present rows return 200 with the serialized
// view; absent rows return 404 with an empty body.
func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		WriteJSONError(w, http.StatusBadRequest, "invalid_product_id", "id must be a positive integer")
		return
	}

	view, ok, err := h.queries.Get.Execute(r.Context(), id)
	if err != nil {
		obs.Logger.Error("product_lookup_failed",
			"product_id", id,
			"error", err,
			"request_id", RequestIDFromContext(r.Context()),
		)
		WriteJSONError(w, http.StatusInternalServerError, "internal_error", "")
		return
	}
	if !ok {
		// Expected outcome, not an error: empty 404 body by contract.
		w.WriteHeader(http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(view)
}

// Health serves GET /healthz with a trivial storage round-trip.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.health.Ping(r.Context()); err != nil {
		WriteJSONError(w, http.StatusServiceUnavailable, "storage_unavailable", "")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
