package ledger

import (
	"fmt"
	"sort"
	"sync"

	"auction-engine/internal/auctionerrors"
	"auction-engine/internal/models"
	"auction-engine/utils"
)

// Ledger is the auction's central registry and rule-enforcement engine. It
// owns every Item and User by id and is the only place cross-entity
// invariants (funds, open/sold state, bid ordering) are checked.
//
// A single RWMutex spans each operation: PlaceBid and SellItem touch the
// item, the user, and ledger-level maps, so anything finer-grained would let
// concurrent callers observe them mid-update.
type Ledger struct {
	mu sync.RWMutex

	items map[uint32]*models.Item
	users map[uint32]*models.User

	openItems map[uint32]struct{}
	// user ids that have bid on each item, in first-bid order; visited at
	// settlement so every participant gets a result exactly once
	bidders map[uint32][]uint32

	revenue       uint32
	itemIDCounter uint32
	userIDCounter uint32
}

// New creates an empty auction ledger with independent id counters.
func New() *Ledger {
	return &Ledger{
		items:     make(map[uint32]*models.Item),
		users:     make(map[uint32]*models.User),
		openItems: make(map[uint32]struct{}),
		bidders:   make(map[uint32][]uint32),
	}
}

// AddItem registers a new item and returns a snapshot of it. Item names are
// unique (case-sensitive); a clash fails before an id is allocated.
func (l *Ledger) AddItem(name string, startingValue uint32) (models.Item, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, item := range l.items {
		if item.Name == name {
			return models.Item{}, fmt.Errorf("add item: an item named %q already exists: %w",
				name, auctionerrors.ErrNameTaken)
		}
	}

	item := models.NewItem(l.itemIDCounter, name, startingValue)
	l.itemIDCounter++
	l.items[item.ID] = item

	return item.Snapshot(), nil
}

// AddUser registers a new user and returns a snapshot of it. User names are
// unique among users; a clash fails before an id is allocated.
func (l *Ledger) AddUser(name string, funds uint32) (models.User, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, user := range l.users {
		if user.Name == name {
			return models.User{}, fmt.Errorf("add user: a user named %q already exists: %w",
				name, auctionerrors.ErrNameTaken)
		}
	}

	user := models.NewUser(l.userIDCounter, name, funds)
	l.userIDCounter++
	l.users[user.ID] = user

	return user.Snapshot(), nil
}

// OpenItem opens a registered item for bidding. Opening an already-open
// item is a no-op; opening a sold item fails.
func (l *Ledger) OpenItem(itemID uint32) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	item, ok := l.items[itemID]
	if !ok {
		return fmt.Errorf("open item %d: %w", itemID, auctionerrors.ErrItemNotFound)
	}
	if item.Sold {
		return fmt.Errorf("open item %q: item has been sold: %w",
			item.Name, auctionerrors.ErrItemUnavailable)
	}

	l.openItems[itemID] = struct{}{}
	return nil
}

// CloseItem closes an item for bidding and, if sell is set, settles it.
// Closing without selling leaves the item eligible for re-opening and keeps
// its bid history.
func (l *Ledger) CloseItem(itemID uint32, sell bool) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	item, ok := l.items[itemID]
	if !ok {
		return fmt.Errorf("close item %d: %w", itemID, auctionerrors.ErrItemNotFound)
	}

	delete(l.openItems, itemID)

	if sell {
		return l.sellLocked(item)
	}
	return nil
}

// SellItem settles an item: marks it sold, adds the winning value to the
// auction revenue, and reports a result to every user who bid on it.
func (l *Ledger) SellItem(itemID uint32) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	item, ok := l.items[itemID]
	if !ok {
		return fmt.Errorf("sell item %d: %w", itemID, auctionerrors.ErrItemNotFound)
	}

	delete(l.openItems, itemID)
	return l.sellLocked(item)
}

// sellLocked runs settlement once per item; the sold check is the guard.
// Caller must hold the write lock and have removed the item from openItems.
func (l *Ledger) sellLocked(item *models.Item) error {
	if item.Sold {
		return fmt.Errorf("sell item %q: item has been sold: %w",
			item.Name, auctionerrors.ErrItemUnavailable)
	}

	winning, ok := item.CurrentBid()
	if !ok {
		return fmt.Errorf("sell item %q: %w", item.Name, auctionerrors.ErrNoBids)
	}

	item.Sell()
	l.revenue += winning.Value

	for _, userID := range l.bidders[item.ID] {
		l.users[userID].ReportBidResult(item.ID, userID == winning.UserID)
	}

	utils.Info("item sold", map[string]any{
		"item_id":   item.ID,
		"item_name": item.Name,
		"winner_id": winning.UserID,
		"value":     winning.Value,
		"revenue":   l.revenue,
	})

	return nil
}

// PlaceBid validates and records a bid on an open item. Checks run in a
// fixed order and the first failure wins: item exists, user exists, item
// open, item unsold, funds sufficient, value above the floor.
//
// A user may raise their own standing bid reusing the funds that bid
// already reserves, so the effective ceiling is available funds plus their
// current bid value on the item.
func (l *Ledger) PlaceBid(itemID, userID, value uint32) (models.Bid, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	item, ok := l.items[itemID]
	if !ok {
		return models.Bid{}, fmt.Errorf("place bid on item %d: %w",
			itemID, auctionerrors.ErrItemNotFound)
	}
	user, ok := l.users[userID]
	if !ok {
		return models.Bid{}, fmt.Errorf("place bid by user %d: %w",
			userID, auctionerrors.ErrUserNotFound)
	}
	if _, open := l.openItems[itemID]; !open {
		return models.Bid{}, fmt.Errorf("place bid on item %q: item is not open for bidding: %w",
			item.Name, auctionerrors.ErrItemUnavailable)
	}
	if item.Sold {
		return models.Bid{}, fmt.Errorf("place bid on item %q: item has been sold: %w",
			item.Name, auctionerrors.ErrItemUnavailable)
	}

	if value > user.AvailableFunds+user.BidValueOnItem(itemID) {
		utils.Warn("bid rejected: insufficient funds", map[string]any{
			"item_id":         itemID,
			"user_id":         userID,
			"value":           value,
			"available_funds": user.AvailableFunds,
		})
		return models.Bid{}, fmt.Errorf("place bid of %d on item %q: value exceeds user %q's available funds: %w",
			value, item.Name, user.Name, auctionerrors.ErrInsufficientFunds)
	}

	current, hasBids := item.CurrentBid()
	if hasBids && value <= current.Value {
		return models.Bid{}, fmt.Errorf("place bid of %d on item %q: value is not higher than the current bid value %d: %w",
			value, item.Name, current.Value, auctionerrors.ErrInvalidBid)
	}
	if !hasBids && value < item.StartingValue {
		return models.Bid{}, fmt.Errorf("place bid of %d on item %q: value is below the starting value %d: %w",
			value, item.Name, item.StartingValue, auctionerrors.ErrInvalidBid)
	}

	if !user.HasBidOn(itemID) {
		l.bidders[itemID] = append(l.bidders[itemID], userID)
	}

	bid := models.Bid{
		Value:  value,
		UserID: userID,
		ItemID: itemID,
	}
	if hasBids {
		bid.Number = current.Number + 1
	}

	user.AddBid(bid)
	item.AddBid(bid)

	return bid, nil
}

// Items returns snapshots of all registered items, ordered by id.
func (l *Ledger) Items() []models.Item {
	l.mu.RLock()
	defer l.mu.RUnlock()

	items := make([]models.Item, 0, len(l.items))
	for _, item := range l.items {
		items = append(items, item.Snapshot())
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items
}

// Users returns snapshots of all registered users, ordered by id.
func (l *Ledger) Users() []models.User {
	l.mu.RLock()
	defer l.mu.RUnlock()

	users := make([]models.User, 0, len(l.users))
	for _, user := range l.users {
		users = append(users, user.Snapshot())
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users
}

// OpenItems returns snapshots of the items currently open for bidding,
// ordered by id.
func (l *Ledger) OpenItems() []models.Item {
	l.mu.RLock()
	defer l.mu.RUnlock()

	items := make([]models.Item, 0, len(l.openItems))
	for itemID := range l.openItems {
		items = append(items, l.items[itemID].Snapshot())
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items
}

// GetItem returns a snapshot of a registered item.
func (l *Ledger) GetItem(itemID uint32) (models.Item, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	item, ok := l.items[itemID]
	if !ok {
		return models.Item{}, fmt.Errorf("get item %d: %w", itemID, auctionerrors.ErrItemNotFound)
	}
	return item.Snapshot(), nil
}

// GetUser returns a snapshot of a registered user.
func (l *Ledger) GetUser(userID uint32) (models.User, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	user, ok := l.users[userID]
	if !ok {
		return models.User{}, fmt.Errorf("get user %d: %w", userID, auctionerrors.ErrUserNotFound)
	}
	return user.Snapshot(), nil
}

// IsItemRegistered reports whether an item id is registered.
func (l *Ledger) IsItemRegistered(itemID uint32) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	_, ok := l.items[itemID]
	return ok
}

// IsUserRegistered reports whether a user id is registered.
func (l *Ledger) IsUserRegistered(userID uint32) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	_, ok := l.users[userID]
	return ok
}

// IsOpen reports whether an item is currently open for bidding.
func (l *Ledger) IsOpen(itemID uint32) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	_, ok := l.openItems[itemID]
	return ok
}

// IsSold reports whether an item has been sold. Unregistered ids report
// false.
func (l *Ledger) IsSold(itemID uint32) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	item, ok := l.items[itemID]
	return ok && item.Sold
}

// Revenue returns the cumulative value of all winning bids.
func (l *Ledger) Revenue() uint32 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.revenue
}
