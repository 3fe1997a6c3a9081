package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	auction "livemarket/internal/auctionService"
	"livemarket/internal/clock"
	model "livemarket/internal/models"
	"livemarket/internal/notifier"
	offer "livemarket/internal/offerService"
	"livemarket/internal/repository"
	"livemarket/internal/server"
	"livemarket/internal/settlement"
	stream "livemarket/internal/streamService"
	"livemarket/internal/timer"
)

func main() {

	repo := repository.NewMemoryRepo()

	prepopulateListings(repo)

	clk := clock.System()
	timers := timer.New(clk, timerTick())

	bridge := settlement.NewBridge(repo, clk)
	dispatcher := notifier.NewDispatcher(repo, notifier.LogSender{}, notifyQueueSize(), clk)
	defer dispatcher.Close()

	auctionSvc := auction.NewAuctionService(repo, repo, bridge, timers, clk)
	defer auctionSvc.Close()

	streamSvc := stream.NewStreamService(repo, auctionSvc, clk)
	offerSvc := offer.NewOfferService(repo, repo, bridge, dispatcher, clk)

	router := server.SetupRouter(streamSvc, auctionSvc, offerSvc, repo)

	port := getPort()
	fmt.Printf("Starting live commerce server on %s...\n", port)
	if err := router.Run(port); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// prepopulateListings adds sample listings to the in-memory repo
func prepopulateListings(repo *repository.MemoryRepo) {
	listings := []model.Listing{
		{ListingID: "listing1", SellerID: "seller1", Title: "Vintage denim jacket", Price: 80},
		{ListingID: "listing2", SellerID: "seller1", Title: "Signed tour poster", Price: 45},
		{ListingID: "listing3", SellerID: "seller2", Title: "Mechanical keyboard", Price: 120},
	}

	for _, l := range listings {
		repo.AddListing(l)
	}
}

// getPort returns the server port from env or defaults to ":8080"
func getPort() string {
	if p := os.Getenv("PORT"); p != "" {
		return fmt.Sprintf(":%s", p)
	}
	return ":8080"
}

// notifyQueueSize returns the notification queue capacity from env, 0 for the
// dispatcher default
func notifyQueueSize() int {
	if v := os.Getenv("NOTIFY_QUEUE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return 0
}

// timerTick returns the auction timer polling interval from env or the default
func timerTick() time.Duration {
	if v := os.Getenv("TIMER_TICK_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			return time.Duration(ms) * time.Millisecond
		}
	}
	return timer.DefaultTick
}
