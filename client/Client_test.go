package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestStoreTokenDropsStaleSession(t *testing.T) {
	scoreClient := NewScoreClient("http://127.0.0.1:1")
	scoreClient.sessionId = "current"

	// 舊場次的回應要被丟棄
	scoreClient.storeToken("previous", "stale-token")
	if scoreClient.token != "" {
		t.Fatalf("stale token stored: %q", scoreClient.token)
	}

	scoreClient.storeToken("current", "fresh-token")
	if scoreClient.token != "fresh-token" {
		t.Fatalf("current token not stored: %q", scoreClient.token)
	}
}

func TestStartSessionInvalidatesOldToken(t *testing.T) {
	scoreClient := NewScoreClient("http://127.0.0.1:1")
	scoreClient.sessionId = "a"
	scoreClient.token = "old"

	// 重置換新場次 舊token立刻作廢 不等網路
	scoreClient.StartSession("b")

	scoreClient.mutex.Lock()
	defer scoreClient.mutex.Unlock()
	if scoreClient.sessionId != "b" {
		t.Fatalf("session id = %q, want b", scoreClient.sessionId)
	}
	if scoreClient.token == "old" {
		t.Fatalf("old token survived reset")
	}
}

func TestClientAgainstService(t *testing.T) {
	submitted := make(chan submitRequest, 1)

	mux := http.NewServeMux()
	mux.HandleFunc("/api/start", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(startResponse{Token: "123_abcdef0123456789", Timestamp: 123})
	})
	mux.HandleFunc("/api/submit", func(w http.ResponseWriter, r *http.Request) {
		var request submitRequest
		json.NewDecoder(r.Body).Decode(&request)
		submitted <- request
		json.NewEncoder(w).Encode(submitResponse{Success: true, Rank: 1, Message: "ok"})
	})
	mux.HandleFunc("/api/leaderboard", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(leaderboardResponse{Leaderboard: []LeaderboardEntry{
			{Name: "Orbiter", Score: 50, Date: "2024-01-01 10:00"},
		}})
	})
	testServer := httptest.NewServer(mux)
	defer testServer.Close()

	scoreClient := NewScoreClient(testServer.URL)
	scoreClient.StartSession("session-1")

	waitFor(t, func() bool {
		scoreClient.mutex.Lock()
		defer scoreClient.mutex.Unlock()
		return scoreClient.token != ""
	})

	scoreClient.SubmitScore("session-1", "Orbiter", 50)
	select {
	case request := <-submitted:
		if request.Name != "Orbiter" || request.Score != 50 || request.Token == "" {
			t.Fatalf("submitted payload = %+v", request)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("submit never reached the service")
	}

	entriesChan := make(chan []LeaderboardEntry, 1)
	scoreClient.FetchLeaderboard(func(entries []LeaderboardEntry) {
		entriesChan <- entries
	})
	select {
	case entries := <-entriesChan:
		if len(entries) != 1 || entries[0].Name != "Orbiter" {
			t.Fatalf("leaderboard = %+v", entries)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("leaderboard callback never fired")
	}
}

func TestSubmitSkippedForStaleSession(t *testing.T) {
	requests := make(chan struct{}, 1)
	testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests <- struct{}{}
	}))
	defer testServer.Close()

	scoreClient := NewScoreClient(testServer.URL)
	scoreClient.sessionId = "current"
	scoreClient.token = "123_abcdef0123456789"

	// 過期場次的上傳連送都不該送
	scoreClient.SubmitScore("previous", "X", 9)

	select {
	case <-requests:
		t.Fatalf("stale submit hit the network")
	case <-time.After(300 * time.Millisecond):
	}
}

func waitFor(t *testing.T, condition func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if condition() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("condition never met")
}
