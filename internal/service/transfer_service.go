package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/handover-labs/handover/internal/domain"
	"github.com/handover-labs/handover/internal/service/auth"
	"github.com/handover-labs/handover/internal/store"
)

// TransferService orchestrates the two-phase ownership handoff of an item
// from its current owner to a named recipient.
//
// The protocol keeps no transfer state of its own. Propose checks that the
// handoff is currently possible and issues a signed capability token; the
// token, delivered to the recipient out-of-band as a URL, is the only
// artifact of the first phase. Redeem re-derives the state at redemption
// time: ownership moves only if the item still exists, the caller is the
// named recipient, and the recipient does not already own it. That last
// check is also the replay guard, since a successfully redeemed token always
// finds its recipient owning the item on the second attempt.
//
// Known limitation: because no consumed-token record is kept, a token could
// be replayed if ownership cycled away from the recipient again through an
// independent transfer. Token expiry bounds that window but does not close it.
type TransferService interface {
	// Propose authorizes a transfer of the sender's item to the named
	// recipient and returns the signed transfer token.
	// Preconditions are checked in order, first failure wins:
	// store.ErrUserNotFound (no such recipient), store.ErrItemNotFound,
	// ErrNotItemOwner, ErrAlreadyOwned. No state is mutated.
	Propose(
		ctx context.Context,
		sender *domain.User,
		itemID int64,
		recipientUsername string,
	) (string, error)

	// Redeem completes a transfer: the authenticated recipient presents the
	// token and, if every check passes, becomes the item's owner.
	// Returns the updated item on success.
	// Failure modes: auth.ErrInvalidTransferToken / auth.ErrExpiredTransferToken
	// (bad token), ErrWrongRecipient, store.ErrItemNotFound (item deleted
	// between propose and redeem), ErrAlreadyOwned (replay).
	Redeem(ctx context.Context, recipient *domain.User, token string) (*domain.Item, error)
}

// TransferServiceImpl implements the TransferService interface.
type TransferServiceImpl struct {
	userStore    store.UserStore
	itemStore    store.ItemStore
	tokenService auth.TokenService
	db           *sql.DB
	runTx        store.TxRunner
	logger       *slog.Logger
}

// Ensure TransferServiceImpl implements TransferService interface
var _ TransferService = (*TransferServiceImpl)(nil)

// NewTransferService creates a new TransferService.
func NewTransferService(
	userStore store.UserStore,
	itemStore store.ItemStore,
	tokenService auth.TokenService,
	db *sql.DB,
	logger *slog.Logger,
) *TransferServiceImpl {
	return &TransferServiceImpl{
		userStore:    userStore,
		itemStore:    itemStore,
		tokenService: tokenService,
		db:           db,
		runTx:        store.RunInTransaction,
		logger:       logger.With("component", "transfer_service"),
	}
}

// Propose checks the transfer preconditions and issues a transfer token.
func (s *TransferServiceImpl) Propose(
	ctx context.Context,
	sender *domain.User,
	itemID int64,
	recipientUsername string,
) (string, error) {
	// 1. The recipient must exist.
	recipient, err := s.userStore.GetByUsername(ctx, recipientUsername)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			s.logger.Debug("transfer proposed to unknown recipient",
				"recipient", recipientUsername,
				"sender_id", sender.ID)
			return "", store.ErrUserNotFound
		}
		s.logger.Error("failed to look up recipient",
			"error", err,
			"recipient", recipientUsername)
		return "", fmt.Errorf("failed to look up recipient: %w", err)
	}

	// 2. The item must exist.
	item, err := s.itemStore.GetByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, store.ErrItemNotFound) {
			s.logger.Debug("transfer proposed for missing item",
				"item_id", itemID,
				"sender_id", sender.ID)
			return "", store.ErrItemNotFound
		}
		s.logger.Error("failed to load item for transfer",
			"error", err,
			"item_id", itemID)
		return "", fmt.Errorf("failed to load item: %w", err)
	}

	// 3. Only the current owner may give the item away.
	if item.OwnerID != sender.ID {
		s.logger.Warn("transfer proposed by non-owner",
			"item_id", itemID,
			"owner_id", item.OwnerID,
			"sender_id", sender.ID)
		return "", ErrNotItemOwner
	}

	// 4. A transfer to the current owner is meaningless.
	if item.OwnerID == recipient.ID {
		s.logger.Debug("transfer proposed to current owner",
			"item_id", itemID,
			"recipient_id", recipient.ID)
		return "", ErrAlreadyOwned
	}

	// The token is the only artifact of this phase; nothing is persisted.
	token, err := s.tokenService.GenerateTransferToken(ctx, item.ID, recipient.Username)
	if err != nil {
		s.logger.Error("failed to issue transfer token",
			"error", err,
			"item_id", itemID,
			"recipient", recipient.Username)
		return "", fmt.Errorf("failed to issue transfer token: %w", err)
	}

	s.logger.Info("transfer proposed",
		"item_id", item.ID,
		"sender_id", sender.ID,
		"recipient_id", recipient.ID)

	return token, nil
}

// Redeem verifies the token and moves ownership inside a single transaction.
// The item row is locked for the duration of the check-and-set, so two
// concurrent redeems of the same token serialize: the second sees the
// recipient already owning the item and fails with ErrAlreadyOwned.
func (s *TransferServiceImpl) Redeem(
	ctx context.Context,
	recipient *domain.User,
	token string,
) (*domain.Item, error) {
	// 1. The capability itself must verify.
	claims, err := s.tokenService.ValidateTransferToken(ctx, token)
	if err != nil {
		s.logger.Debug("transfer token rejected",
			"error", err,
			"recipient_id", recipient.ID)
		return nil, err
	}

	// 2. Only the named recipient may redeem, even if a third party holds
	// the URL and a valid session of their own.
	if claims.RecipientUsername != recipient.Username {
		s.logger.Warn("transfer token redeemed by wrong user",
			"item_id", claims.ItemID,
			"named_recipient", claims.RecipientUsername,
			"caller_id", recipient.ID)
		return nil, ErrWrongRecipient
	}

	var item *domain.Item
	err = s.runTx(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txItems := s.itemStore.WithTx(tx)

		// 3. The item must still exist; it may have been deleted between
		// propose and redeem.
		locked, err := txItems.GetByIDForUpdate(ctx, claims.ItemID)
		if err != nil {
			return err
		}

		// 4. Idempotency guard: a replayed token finds the recipient
		// already owning the item.
		if locked.OwnerID == recipient.ID {
			return ErrAlreadyOwned
		}

		if err := txItems.UpdateOwner(ctx, locked.ID, recipient.ID); err != nil {
			return err
		}

		locked.OwnerID = recipient.ID
		item = locked
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, store.ErrItemNotFound):
			s.logger.Debug("transfer token redeemed for missing item",
				"item_id", claims.ItemID,
				"recipient_id", recipient.ID)
		case errors.Is(err, ErrAlreadyOwned):
			s.logger.Debug("transfer token replay rejected",
				"item_id", claims.ItemID,
				"recipient_id", recipient.ID)
		default:
			s.logger.Error("failed to redeem transfer",
				"error", err,
				"item_id", claims.ItemID,
				"recipient_id", recipient.ID)
		}
		return nil, err
	}

	s.logger.Info("transfer redeemed",
		"item_id", item.ID,
		"new_owner_id", recipient.ID)

	return item, nil
}
