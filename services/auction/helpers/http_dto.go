package helpers

// Request/Response DTOs
type RegisterItemRequest struct {
	Name          string `json:"name" binding:"required"`
	StartingValue uint32 `json:"starting_value"`
}

type RegisterUserRequest struct {
	Name  string `json:"name" binding:"required"`
	Funds uint32 `json:"funds"`
}

// UserID and Value are pointers so that 0, a valid user id and a valid bid
// value on a zero-floor item, still passes the required binding.
type PlaceBidRequest struct {
	UserID *uint32 `json:"user_id" binding:"required"`
	Value  *uint32 `json:"value" binding:"required"`
}

type CloseItemRequest struct {
	Sell bool `json:"sell"`
}

type ItemResponse struct {
	ID            uint32 `json:"id"`
	Name          string `json:"name"`
	StartingValue uint32 `json:"starting_value"`
	CurrentValue  uint32 `json:"current_value"`
	BidCount      int    `json:"bid_count"`
	Open          bool   `json:"open"`
	Sold          bool   `json:"sold"`
}

type UserResponse struct {
	ID             uint32   `json:"id"`
	Name           string   `json:"name"`
	TotalFunds     uint32   `json:"total_funds"`
	AvailableFunds uint32   `json:"available_funds"`
	ItemsBidOn     []uint32 `json:"items_bid_on"`
	ItemsWon       []uint32 `json:"items_won"`
}

type BidResponse struct {
	ItemID uint32 `json:"item_id"`
	UserID uint32 `json:"user_id"`
	Value  uint32 `json:"value"`
	Number uint32 `json:"number"`
}

type RevenueResponse struct {
	Revenue uint32 `json:"revenue"`
}
