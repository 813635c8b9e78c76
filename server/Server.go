package server

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cast"
	"github.com/spf13/viper"

	"BlackholePong/core"
	"BlackholePong/logger"
)

// DateLayout 榜單上顯示的日期格式
const DateLayout = "2006-01-02 15:04"

// LeaderboardServer 排行榜服務 /api/start /api/submit /api/leaderboard
type LeaderboardServer struct {
	storage *Storage
	secret  string
	clock   core.Clock
}

func NewLeaderboardServer(storage *Storage, secret string, clock core.Clock) *LeaderboardServer {
	return &LeaderboardServer{
		storage: storage,
		secret:  secret,
		clock:   clock,
	}
}

func (s *LeaderboardServer) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/start", s.handleStart)
	mux.HandleFunc("/api/submit", s.handleSubmit)
	mux.HandleFunc("/api/leaderboard", s.handleLeaderboard)
	return mux
}

// handleStart 發一個新的場次token給遊戲端
func (s *LeaderboardServer) handleStart(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	timestamp := s.clock.NowMs()
	writeJson(w, http.StatusOK, StartResponse{
		Token:     GenerateToken(timestamp, s.secret),
		Timestamp: timestamp,
	})
}

// handleSubmit 驗證token後更新榜單 重複提交較低分數不算錯誤
func (s *LeaderboardServer) handleSubmit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var request SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := VerifyToken(request.Token, s.secret, s.clock.NowMs()); err != nil {
		logger.Log.Warn(fmt.Sprintf(logger.TokenRejectedMsg, request.Name))
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	// 分數無條件捨去成整數 名稱過濾與截斷
	score := int(math.Floor(request.Score))
	if score < 0 {
		writeError(w, http.StatusBadRequest, "invalid score")
		return
	}
	name := SanitizeName(request.Name)

	date := time.Now().Format(DateLayout)
	rank, improved := s.storage.Upsert(name, score, date)

	message := "Score submitted! New personal best."
	if !improved {
		message = "Score submitted, your previous best stands."
	}

	logger.Log.Info(fmt.Sprintf(logger.ScoreSubmittedMsg, name, score, rank))
	writeJson(w, http.StatusOK, SubmitResponse{Success: true, Rank: rank, Message: message})
}

// handleLeaderboard 回傳前10名
func (s *LeaderboardServer) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	writeJson(w, http.StatusOK, LeaderboardResponse{Leaderboard: s.storage.Top(10)})
}

func writeJson(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJson(w, status, ErrorResponse{Error: message})
}

// StartService 讀取設定後啟動排行榜服務
func StartService() {
	env := os.Getenv("BLACKHOLE_ENV")
	if env == "" {
		env = "dev"
	}

	host, port := core.ReadServerProperties(env)
	secret := cast.ToString(viper.Get("TOKEN_SECRET"))
	blobPath := cast.ToString(viper.Get("LEADERBOARD_FILE"))
	if blobPath == "" {
		blobPath = "leaderboard.json"
	}

	storage := NewStorage(blobPath)
	leaderboardServer := NewLeaderboardServer(storage, secret, core.SystemClock{})

	address := fmt.Sprintf("%s:%s", host, port)
	logger.Log.Info(fmt.Sprintf(logger.ServerStartMsg, address))

	if err := http.ListenAndServe(address, leaderboardServer.Handler()); err != nil {
		logger.Log.Fatal(fmt.Sprintf(logger.ServerStopMsg, err))
	}
}
