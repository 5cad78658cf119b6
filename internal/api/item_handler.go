package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/handover-labs/handover/internal/api/shared"
	"github.com/handover-labs/handover/internal/service"
)

// ItemHandler handles item listing, creation, and deletion.
type ItemHandler struct {
	itemService service.ItemService
	logger      *slog.Logger
}

// NewItemHandler creates a new ItemHandler with the given dependencies.
func NewItemHandler(itemService service.ItemService, logger *slog.Logger) *ItemHandler {
	return &ItemHandler{
		itemService: itemService,
		logger:      logger.With("component", "item_handler"),
	}
}

// ListItems handles GET /api/v1/items.
func (h *ItemHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	user, ok := authenticatedUser(w, r)
	if !ok {
		return
	}

	items, err := h.itemService.ListItems(r.Context(), user)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	payload := make([]ItemPayload, 0, len(items))
	for _, item := range items {
		payload = append(payload, NewItemPayload(item))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ItemsResponse{Items: payload})
}

// CreateItem handles POST /api/v1/items.
func (h *ItemHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	user, ok := authenticatedUser(w, r)
	if !ok {
		return
	}

	var req CreateItemRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	item, err := h.itemService.CreateItem(r.Context(), user, req.Name)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, ItemResponse{Item: NewItemPayload(item)})
}

// DeleteItem handles DELETE /api/v1/items/{id}.
func (h *ItemHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	user, ok := authenticatedUser(w, r)
	if !ok {
		return
	}

	itemID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || itemID <= 0 {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid item ID")
		return
	}

	item, err := h.itemService.DeleteItem(r.Context(), user, itemID)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ItemDeletedResponse{
		Item: fmt.Sprintf("Item %q deleted", item.Name),
	})
}
