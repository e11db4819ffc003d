package models

// Bid is an immutable record of a single accepted bid. Number is the
// 0-based position of the bid within its item's history.
type Bid struct {
	Value  uint32 `json:"value"`
	UserID uint32 `json:"user_id"`
	ItemID uint32 `json:"item_id"`
	Number uint32 `json:"number"`
}

// Item represents a registered auction lot. Validation of incoming bids is
// the ledger's job; the item only records what it is told.
type Item struct {
	ID            uint32 `json:"id"`
	Name          string `json:"name"`
	StartingValue uint32 `json:"starting_value"`
	Bids          []Bid  `json:"bids"`
	Sold          bool   `json:"sold"`
}

// NewItem creates a registered item with no bids, neither open nor sold.
func NewItem(id uint32, name string, startingValue uint32) *Item {
	return &Item{
		ID:            id,
		Name:          name,
		StartingValue: startingValue,
	}
}

// AddBid appends a bid to the item's history unconditionally.
func (i *Item) AddBid(bid Bid) {
	i.Bids = append(i.Bids, bid)
}

// CurrentBid returns the item's standing (last accepted) bid, or false if
// no bid has been placed yet.
func (i *Item) CurrentBid() (Bid, bool) {
	if len(i.Bids) == 0 {
		return Bid{}, false
	}
	return i.Bids[len(i.Bids)-1], true
}

// CurrentValue returns the standing bid's value, or the starting value when
// the item has no bids.
func (i *Item) CurrentValue() uint32 {
	if bid, ok := i.CurrentBid(); ok {
		return bid.Value
	}
	return i.StartingValue
}

// Sell marks the item sold. The ledger guards against calling this twice.
func (i *Item) Sell() {
	i.Sold = true
}

// Snapshot returns a value copy of the item with its own bid history slice,
// safe to hand outside the ledger.
func (i *Item) Snapshot() Item {
	clone := *i
	clone.Bids = append([]Bid(nil), i.Bids...)
	return clone
}

// User represents a registered bidder. AvailableFunds is TotalFunds minus
// the sum of the user's standing bid reservations.
type User struct {
	ID             uint32           `json:"id"`
	Name           string           `json:"name"`
	TotalFunds     uint32           `json:"total_funds"`
	AvailableFunds uint32           `json:"available_funds"`
	BidsPlaced     map[uint32][]Bid `json:"bids_placed"`
	ItemsWon       []uint32         `json:"items_won"`
}

// NewUser creates a registered user with all funds available.
func NewUser(id uint32, name string, funds uint32) *User {
	return &User{
		ID:             id,
		Name:           name,
		TotalFunds:     funds,
		AvailableFunds: funds,
		BidsPlaced:     make(map[uint32][]Bid),
	}
}

// AddBid records an accepted bid and adjusts the user's reservation. A prior
// standing bid on the same item is released before the new value is
// reserved, so raising one's own bid only consumes the delta.
func (u *User) AddBid(bid Bid) {
	if u.HasBidOn(bid.ItemID) {
		u.AvailableFunds += u.BidValueOnItem(bid.ItemID)
	}
	u.AvailableFunds -= bid.Value
	u.BidsPlaced[bid.ItemID] = append(u.BidsPlaced[bid.ItemID], bid)
}

// ReportBidResult settles the user's participation in an item. Winners pay
// their standing bid out of total funds (the reservation stays consumed);
// losers get their full reservation back.
func (u *User) ReportBidResult(itemID uint32, won bool) {
	value := u.BidValueOnItem(itemID)
	if won {
		u.TotalFunds -= value
		u.ItemsWon = append(u.ItemsWon, itemID)
		return
	}
	u.AvailableFunds += value
}

// BidValueOnItem returns the user's most recent bid value on an item, or 0
// if the user has never bid on it.
func (u *User) BidValueOnItem(itemID uint32) uint32 {
	bids := u.BidsPlaced[itemID]
	if len(bids) == 0 {
		return 0
	}
	return bids[len(bids)-1].Value
}

// HasBidOn reports whether the user has placed any bid on the item.
func (u *User) HasBidOn(itemID uint32) bool {
	return len(u.BidsPlaced[itemID]) > 0
}

// Snapshot returns a deep value copy of the user, safe to hand outside the
// ledger.
func (u *User) Snapshot() User {
	clone := *u
	clone.BidsPlaced = make(map[uint32][]Bid, len(u.BidsPlaced))
	for itemID, bids := range u.BidsPlaced {
		clone.BidsPlaced[itemID] = append([]Bid(nil), bids...)
	}
	clone.ItemsWon = append([]uint32(nil), u.ItemsWon...)
	return clone
}
