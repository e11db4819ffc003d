package helpers

import (
	"errors"
	"fmt"
	"net/http"
	"sort"

	"auction-engine/internal/auctionerrors"
	"auction-engine/internal/models"
	"auction-engine/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps ledger errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, auctionerrors.ErrItemNotFound):
		return http.StatusNotFound, "item not found"
	case errors.Is(err, auctionerrors.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	case errors.Is(err, auctionerrors.ErrNameTaken):
		return http.StatusConflict, "name already in use"
	case errors.Is(err, auctionerrors.ErrItemUnavailable):
		return http.StatusConflict, "item unavailable"
	case errors.Is(err, auctionerrors.ErrInvalidBid):
		return http.StatusConflict, "bid value too low"
	case errors.Is(err, auctionerrors.ErrInsufficientFunds):
		return http.StatusUnprocessableEntity, "insufficient funds"
	case errors.Is(err, auctionerrors.ErrNoBids):
		return http.StatusConflict, "no bids placed on item"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}

// ToItemResponse flattens an item snapshot into its presentation form.
func ToItemResponse(item models.Item, open bool) ItemResponse {
	current := item.StartingValue
	if n := len(item.Bids); n > 0 {
		current = item.Bids[n-1].Value
	}
	return ItemResponse{
		ID:            item.ID,
		Name:          item.Name,
		StartingValue: item.StartingValue,
		CurrentValue:  current,
		BidCount:      len(item.Bids),
		Open:          open,
		Sold:          item.Sold,
	}
}

// ToUserResponse flattens a user snapshot into its presentation form. Items
// bid on are listed in id order.
func ToUserResponse(user models.User) UserResponse {
	itemsBidOn := make([]uint32, 0, len(user.BidsPlaced))
	for itemID := range user.BidsPlaced {
		itemsBidOn = append(itemsBidOn, itemID)
	}
	sort.Slice(itemsBidOn, func(i, j int) bool { return itemsBidOn[i] < itemsBidOn[j] })

	itemsWon := user.ItemsWon
	if itemsWon == nil {
		itemsWon = []uint32{}
	}

	return UserResponse{
		ID:             user.ID,
		Name:           user.Name,
		TotalFunds:     user.TotalFunds,
		AvailableFunds: user.AvailableFunds,
		ItemsBidOn:     itemsBidOn,
		ItemsWon:       itemsWon,
	}
}

// ToBidResponse flattens a bid into its presentation form.
func ToBidResponse(bid models.Bid) BidResponse {
	return BidResponse{
		ItemID: bid.ItemID,
		UserID: bid.UserID,
		Value:  bid.Value,
		Number: bid.Number,
	}
}
