package server

import (
	"auction-engine/internal/ledger"
	handler "auction-engine/services/auction/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(auctionLedger *ledger.Ledger) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	auctionHandler := handler.NewAuctionHandler(auctionLedger)

	items := router.Group("/items")
	{
		items.POST("", auctionHandler.RegisterItemHandler)
		items.GET("", auctionHandler.ListItemsHandler)
		items.GET("/:item_id", auctionHandler.GetItemHandler)
		items.POST("/:item_id/open", auctionHandler.OpenItemHandler)
		items.POST("/:item_id/close", auctionHandler.CloseItemHandler)
		items.POST("/:item_id/sell", auctionHandler.SellItemHandler)
		items.POST("/:item_id/bids", auctionHandler.PlaceBidHandler)
		items.GET("/:item_id/bids", auctionHandler.GetItemBidsHandler)
		items.GET("/:item_id/winning", auctionHandler.GetWinningBidHandler)
	}

	users := router.Group("/users")
	{
		users.POST("", auctionHandler.RegisterUserHandler)
		users.GET("", auctionHandler.ListUsersHandler)
		users.GET("/:user_id", auctionHandler.GetUserHandler)
	}

	router.GET("/open-items", auctionHandler.ListOpenItemsHandler)
	router.GET("/revenue", auctionHandler.GetRevenueHandler)

	return router
}
