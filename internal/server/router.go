package server

import (
	auction "livemarket/internal/auctionService"
	offer "livemarket/internal/offerService"
	stream "livemarket/internal/streamService"
	handler "livemarket/services/live/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(
	streamService *stream.StreamService,
	auctionService *auction.AuctionService,
	offerService *offer.OfferService,
	notifications handler.NotificationReader,
) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	streamHandler := handler.NewStreamHandler(streamService)
	auctionHandler := handler.NewAuctionHandler(auctionService)
	offerHandler := handler.NewOfferHandler(offerService)
	notificationHandler := handler.NewNotificationHandler(notifications)

	streams := router.Group("/streams")
	{
		streams.POST("", streamHandler.CreateStreamHandler)
		streams.GET("/overdue", streamHandler.ListOverdueStreamsHandler)
		streams.GET("/:stream_id", streamHandler.GetStreamHandler)
		streams.PATCH("/:stream_id", streamHandler.UpdateStreamHandler)
		streams.DELETE("/:stream_id", streamHandler.DeleteStreamHandler)
		streams.POST("/:stream_id/start", streamHandler.StartStreamHandler)
		streams.POST("/:stream_id/end", streamHandler.EndStreamHandler)
		streams.POST("/:stream_id/cancel", streamHandler.CancelStreamHandler)
		streams.POST("/:stream_id/viewers", streamHandler.AddViewerHandler)
		streams.DELETE("/:stream_id/viewers", streamHandler.RemoveViewerHandler)
		streams.POST("/:stream_id/auctions", auctionHandler.StartAuctionHandler)
	}

	auctions := router.Group("/auctions")
	{
		auctions.GET("/:auction_id", auctionHandler.GetAuctionHandler)
		auctions.POST("/:auction_id/extend", auctionHandler.ExtendAuctionHandler)
		auctions.POST("/:auction_id/settle", auctionHandler.SettleAuctionHandler)
	}

	offers := router.Group("/offers")
	{
		offers.POST("", offerHandler.ProposeOfferHandler)
		offers.GET("/:offer_id", offerHandler.GetOfferHandler)
		offers.POST("/:offer_id/decision", offerHandler.DecideOfferHandler)
		offers.DELETE("/:offer_id", offerHandler.WithdrawOfferHandler)
	}

	listings := router.Group("/listings")
	{
		listings.GET("/:listing_id/offers", offerHandler.ListOffersByListingHandler)
	}

	users := router.Group("/users")
	{
		users.GET("/:user_id/notifications", notificationHandler.ListNotificationsHandler)
	}

	return router
}
