package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"auction-engine/internal/models"
	"auction-engine/services/auction/helpers"
	"auction-engine/utils"

	"github.com/gin-gonic/gin"
)

// AuctionLedgerInterface is the slice of the ledger the HTTP layer consumes.
type AuctionLedgerInterface interface {
	AddItem(name string, startingValue uint32) (models.Item, error)
	AddUser(name string, funds uint32) (models.User, error)
	OpenItem(itemID uint32) error
	CloseItem(itemID uint32, sell bool) error
	SellItem(itemID uint32) error
	PlaceBid(itemID, userID, value uint32) (models.Bid, error)
	Items() []models.Item
	Users() []models.User
	OpenItems() []models.Item
	GetItem(itemID uint32) (models.Item, error)
	GetUser(userID uint32) (models.User, error)
	IsOpen(itemID uint32) bool
	Revenue() uint32
}

type AuctionHandler struct {
	ledger AuctionLedgerInterface
}

func NewAuctionHandler(ledger AuctionLedgerInterface) *AuctionHandler {
	return &AuctionHandler{ledger: ledger}
}

// parseIDParam parses an unsigned integer path parameter. On failure it
// writes a 400 response and returns false.
func parseIDParam(c *gin.Context, name string) (uint32, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest,
			fmt.Errorf("invalid %s %q: %w", name, raw, err), "invalid id")
		return 0, false
	}
	return uint32(id), true
}

// RegisterItemHandler handles POST /items
func (h *AuctionHandler) RegisterItemHandler(c *gin.Context) {
	var req helpers.RegisterItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RegisterItemHandler", err)
		return
	}

	item, err := h.ledger.AddItem(req.Name, req.StartingValue)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("RegisterItemHandler: failed to register item", map[string]any{
			"name":  req.Name,
			"error": err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.ToItemResponse(item, false), "item registered successfully")
	helpers.LogSuccess("RegisterItemHandler", "item registered successfully", map[string]any{
		"item_id":        item.ID,
		"name":           item.Name,
		"starting_value": item.StartingValue,
	})
}

// RegisterUserHandler handles POST /users
func (h *AuctionHandler) RegisterUserHandler(c *gin.Context) {
	var req helpers.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RegisterUserHandler", err)
		return
	}

	user, err := h.ledger.AddUser(req.Name, req.Funds)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("RegisterUserHandler: failed to register user", map[string]any{
			"name":  req.Name,
			"error": err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.ToUserResponse(user), "user registered successfully")
	helpers.LogSuccess("RegisterUserHandler", "user registered successfully", map[string]any{
		"user_id": user.ID,
		"name":    user.Name,
		"funds":   user.TotalFunds,
	})
}

// OpenItemHandler handles POST /items/:item_id/open
func (h *AuctionHandler) OpenItemHandler(c *gin.Context) {
	itemID, ok := parseIDParam(c, "item_id")
	if !ok {
		return
	}

	if err := h.ledger.OpenItem(itemID); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("OpenItemHandler: failed to open item", map[string]any{
			"item_id": itemID,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"item_id": itemID}, "item opened for bidding")
	helpers.LogSuccess("OpenItemHandler", "item opened for bidding", map[string]any{"item_id": itemID})
}

// CloseItemHandler handles POST /items/:item_id/close. The body is optional;
// an empty body closes without selling.
func (h *AuctionHandler) CloseItemHandler(c *gin.Context) {
	itemID, ok := parseIDParam(c, "item_id")
	if !ok {
		return
	}

	var req helpers.CloseItemRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		helpers.HandleBindError(c, "CloseItemHandler", err)
		return
	}

	if err := h.ledger.CloseItem(itemID, req.Sell); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("CloseItemHandler: failed to close item", map[string]any{
			"item_id": itemID,
			"sell":    req.Sell,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"item_id": itemID, "sold": req.Sell}, "item closed for bidding")
	helpers.LogSuccess("CloseItemHandler", "item closed for bidding", map[string]any{
		"item_id": itemID,
		"sell":    req.Sell,
	})
}

// SellItemHandler handles POST /items/:item_id/sell
func (h *AuctionHandler) SellItemHandler(c *gin.Context) {
	itemID, ok := parseIDParam(c, "item_id")
	if !ok {
		return
	}

	if err := h.ledger.SellItem(itemID); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("SellItemHandler: failed to sell item", map[string]any{
			"item_id": itemID,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"item_id": itemID}, "item sold successfully")
	helpers.LogSuccess("SellItemHandler", "item sold successfully", map[string]any{"item_id": itemID})
}

// PlaceBidHandler handles POST /items/:item_id/bids
func (h *AuctionHandler) PlaceBidHandler(c *gin.Context) {
	itemID, ok := parseIDParam(c, "item_id")
	if !ok {
		return
	}

	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	bid, err := h.ledger.PlaceBid(itemID, *req.UserID, *req.Value)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("PlaceBidHandler: failed to place bid", map[string]any{
			"item_id": itemID,
			"user_id": *req.UserID,
			"value":   *req.Value,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.ToBidResponse(bid), "bid placed successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid placed successfully", map[string]any{
		"item_id": bid.ItemID,
		"user_id": bid.UserID,
		"value":   bid.Value,
		"number":  bid.Number,
	})
}

// ListItemsHandler handles GET /items
func (h *AuctionHandler) ListItemsHandler(c *gin.Context) {
	items := h.ledger.Items()

	resp := make([]helpers.ItemResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, helpers.ToItemResponse(item, h.ledger.IsOpen(item.ID)))
	}

	utils.JSONResponse(c, http.StatusOK, resp, "items retrieved successfully")
}

// ListOpenItemsHandler handles GET /open-items
func (h *AuctionHandler) ListOpenItemsHandler(c *gin.Context) {
	items := h.ledger.OpenItems()

	resp := make([]helpers.ItemResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, helpers.ToItemResponse(item, true))
	}

	utils.JSONResponse(c, http.StatusOK, resp, "open items retrieved successfully")
}

// GetItemHandler handles GET /items/:item_id
func (h *AuctionHandler) GetItemHandler(c *gin.Context) {
	itemID, ok := parseIDParam(c, "item_id")
	if !ok {
		return
	}

	item, err := h.ledger.GetItem(itemID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetItemHandler: error retrieving item", map[string]any{"item_id": itemID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToItemResponse(item, h.ledger.IsOpen(itemID)), "item retrieved successfully")
}

// GetItemBidsHandler handles GET /items/:item_id/bids
func (h *AuctionHandler) GetItemBidsHandler(c *gin.Context) {
	itemID, ok := parseIDParam(c, "item_id")
	if !ok {
		return
	}

	item, err := h.ledger.GetItem(itemID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetItemBidsHandler: error retrieving bids", map[string]any{"item_id": itemID, "error": err.Error()})
		return
	}

	resp := make([]helpers.BidResponse, 0, len(item.Bids))
	for _, bid := range item.Bids {
		resp = append(resp, helpers.ToBidResponse(bid))
	}

	utils.JSONResponse(c, http.StatusOK, resp, "bids retrieved successfully")
	helpers.LogSuccess("GetItemBidsHandler", "bids retrieved successfully", map[string]any{
		"item_id": itemID,
		"count":   len(resp),
	})
}

// GetWinningBidHandler handles GET /items/:item_id/winning
func (h *AuctionHandler) GetWinningBidHandler(c *gin.Context) {
	itemID, ok := parseIDParam(c, "item_id")
	if !ok {
		return
	}

	item, err := h.ledger.GetItem(itemID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetWinningBidHandler: error retrieving item", map[string]any{"item_id": itemID, "error": err.Error()})
		return
	}

	if len(item.Bids) == 0 {
		utils.JSONError(c, http.StatusNotFound,
			fmt.Errorf("item %q has no bids", item.Name), "no winning bid found")
		utils.Info("GetWinningBidHandler: no winning bid found", map[string]any{"item_id": itemID})
		return
	}

	winning := item.Bids[len(item.Bids)-1]
	utils.JSONResponse(c, http.StatusOK, helpers.ToBidResponse(winning), "winning bid retrieved successfully")
	helpers.LogSuccess("GetWinningBidHandler", "winning bid retrieved successfully", map[string]any{
		"item_id": itemID,
		"user_id": winning.UserID,
		"value":   winning.Value,
	})
}

// ListUsersHandler handles GET /users
func (h *AuctionHandler) ListUsersHandler(c *gin.Context) {
	users := h.ledger.Users()

	resp := make([]helpers.UserResponse, 0, len(users))
	for _, user := range users {
		resp = append(resp, helpers.ToUserResponse(user))
	}

	utils.JSONResponse(c, http.StatusOK, resp, "users retrieved successfully")
}

// GetUserHandler handles GET /users/:user_id
func (h *AuctionHandler) GetUserHandler(c *gin.Context) {
	userID, ok := parseIDParam(c, "user_id")
	if !ok {
		return
	}

	user, err := h.ledger.GetUser(userID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetUserHandler: error retrieving user", map[string]any{"user_id": userID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToUserResponse(user), "user retrieved successfully")
}

// GetRevenueHandler handles GET /revenue
func (h *AuctionHandler) GetRevenueHandler(c *gin.Context) {
	utils.JSONResponse(c, http.StatusOK,
		helpers.RevenueResponse{Revenue: h.ledger.Revenue()}, "revenue retrieved successfully")
}
