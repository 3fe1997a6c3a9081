package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
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

	"github.com/gin-gonic/gin"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// TestEnv bundles the fully wired application with the handles the scenarios
// need to drive it: the manual clock for timer expiry and the repo for seeding
// and direct state checks.
type TestEnv struct {
	Router *gin.Engine
	Repo   *repository.MemoryRepo
	Clock  *clock.Manual
}

// SetupTestEnv wires the full stack over the in-memory repository with a
// manual clock and a fast-polling auction timer.
func SetupTestEnv(t *testing.T, listings ...model.Listing) *TestEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := repository.NewMemoryRepo()
	for _, l := range listings {
		repo.AddListing(l)
	}

	clk := clock.NewManual(testNow)
	timers := timer.New(clk, 2*time.Millisecond)

	bridge := settlement.NewBridge(repo, clk)
	dispatcher := notifier.NewDispatcher(repo, notifier.LogSender{}, 32, clk)

	auctionSvc := auction.NewAuctionService(repo, repo, bridge, timers, clk)
	streamSvc := stream.NewStreamService(repo, auctionSvc, clk)
	offerSvc := offer.NewOfferService(repo, repo, bridge, dispatcher, clk)

	t.Cleanup(func() {
		auctionSvc.Close()
		dispatcher.Close()
	})

	return &TestEnv{
		Router: server.SetupRouter(streamSvc, auctionSvc, offerSvc, repo),
		Repo:   repo,
		Clock:  clk,
	}
}

// ExecuteRequest executes an HTTP request and returns the response recorder.
func ExecuteRequest(t *testing.T, router *gin.Engine, method, url string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// ExecuteRequestAndParse executes an HTTP request on the given router and
// parses the response envelope, unwrapping the data object on success.
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		if err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}

		if w.Code == 200 || w.Code == 201 {
			if data, ok := resp["data"].(map[string]any); ok {
				resp = data
			}
		}
	}

	return resp, w
}
