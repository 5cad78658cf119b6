package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/handover-labs/handover/internal/api/shared"
	"github.com/handover-labs/handover/internal/service"
)

// TransferHandler handles both phases of the item ownership handoff:
// proposing a transfer and redeeming the resulting one-time URL.
type TransferHandler struct {
	transferService service.TransferService
	baseURL         string
	logger          *slog.Logger
}

// NewTransferHandler creates a new TransferHandler. baseURL is the
// externally reachable root of the service, used to build transfer URLs.
func NewTransferHandler(
	transferService service.TransferService,
	baseURL string,
	logger *slog.Logger,
) *TransferHandler {
	return &TransferHandler{
		transferService: transferService,
		baseURL:         strings.TrimRight(baseURL, "/"),
		logger:          logger.With("component", "transfer_handler"),
	}
}

// ProposeTransfer handles POST /api/v1/transfers. On success the sender
// receives a URL carrying the transfer token, to deliver to the recipient
// out-of-band.
func (h *TransferHandler) ProposeTransfer(w http.ResponseWriter, r *http.Request) {
	user, ok := authenticatedUser(w, r)
	if !ok {
		return
	}

	var req ProposeTransferRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	token, err := h.transferService.Propose(r.Context(), user, req.ItemID, req.RecipientUsername)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, TransferProposedResponse{
		TransferURL: fmt.Sprintf("%s/api/v1/transfers/%s", h.baseURL, token),
	})
}

// RedeemTransfer handles GET /api/v1/transfers/{token}. The authenticated
// caller must be the recipient the token names; on success the item is theirs.
func (h *TransferHandler) RedeemTransfer(w http.ResponseWriter, r *http.Request) {
	user, ok := authenticatedUser(w, r)
	if !ok {
		return
	}

	token := chi.URLParam(r, "token")
	if token == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Transfer token is required")
		return
	}

	item, err := h.transferService.Redeem(r.Context(), user, token)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ItemResponse{Item: NewItemPayload(item)})
}
