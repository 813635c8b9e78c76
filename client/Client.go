package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"BlackholePong/logger"
)

// 排行榜服務的payload格式 與server端的wire format一致
type startResponse struct {
	Token     string `json:"token"`
	Timestamp int64  `json:"timestamp"`
}

type submitRequest struct {
	Token string `json:"token"`
	Name  string `json:"name"`
	Score int    `json:"score"`
}

type submitResponse struct {
	Success bool   `json:"success"`
	Rank    int    `json:"rank"`
	Message string `json:"message"`
}

type LeaderboardEntry struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
	Date  string `json:"date"`
}

type leaderboardResponse struct {
	Leaderboard []LeaderboardEntry `json:"leaderboard"`
}

// ScoreClient 排行榜服務的遊戲端
// 所有呼叫都是fire-and-forget 模擬tick絕不等待網路
// 斷線時所有操作靜默失敗 遊戲照常離線進行
type ScoreClient struct {
	baseUrl    string
	httpClient *http.Client

	mutex     sync.Mutex
	sessionId string
	token     string
}

func NewScoreClient(baseUrl string) *ScoreClient {
	return &ScoreClient{
		baseUrl:    baseUrl,
		httpClient: &http.Client{Timeout: 3 * time.Second},
	}
}

// StartSession 開新的一局 換上新的sessionId 舊token作廢
func (c *ScoreClient) StartSession(sessionId string) {
	c.mutex.Lock()
	c.sessionId = sessionId
	c.token = ""
	c.mutex.Unlock()

	go c.requestToken(sessionId)
}

func (c *ScoreClient) requestToken(sessionId string) {
	response, err := c.httpClient.Post(c.baseUrl+"/api/start", "application/json", nil)
	if err != nil {
		logger.Log.Debug(fmt.Sprintf(logger.StartSessionFailMsg, err))
		return
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		logger.Log.Debug(fmt.Sprintf(logger.StartSessionFailMsg, response.StatusCode))
		return
	}

	var payload startResponse
	if err := json.NewDecoder(response.Body).Decode(&payload); err != nil {
		return
	}

	c.storeToken(sessionId, payload.Token)
}

// storeToken 回應送達時可能已經重置過了 比對sessionId 過期回應直接丟棄
func (c *ScoreClient) storeToken(sessionId, token string) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if c.sessionId != sessionId {
		logger.Log.Debug(logger.StaleResponseMsg)
		return
	}
	c.token = token
}

// SubmitScore 遊戲結束時上傳分數 沒有token或場次過期就放棄
func (c *ScoreClient) SubmitScore(sessionId, name string, score int) {
	go func() {
		c.mutex.Lock()
		token := c.token
		stale := c.sessionId != sessionId
		c.mutex.Unlock()

		if stale || token == "" {
			return
		}

		body, err := json.Marshal(submitRequest{Token: token, Name: name, Score: score})
		if err != nil {
			return
		}

		response, err := c.httpClient.Post(c.baseUrl+"/api/submit", "application/json", bytes.NewReader(body))
		if err != nil {
			logger.Log.Debug(fmt.Sprintf(logger.SubmitFailMsg, err))
			return
		}
		defer response.Body.Close()

		if response.StatusCode != http.StatusOK {
			// token被拒 這局標記未送出 不重試
			c.storeToken(sessionId, "")
			logger.Log.Debug(fmt.Sprintf(logger.SubmitFailMsg, response.StatusCode))
			return
		}

		var payload submitResponse
		if err := json.NewDecoder(response.Body).Decode(&payload); err != nil {
			return
		}
		logger.Log.Info(fmt.Sprintf(logger.ScoreSubmittedMsg, name, score, payload.Rank))
	}()
}

// FetchLeaderboard 抓前10名 結果用callback丟回去 失敗就什麼都不做
func (c *ScoreClient) FetchLeaderboard(callback func([]LeaderboardEntry)) {
	go func() {
		response, err := c.httpClient.Get(c.baseUrl + "/api/leaderboard")
		if err != nil {
			return
		}
		defer response.Body.Close()

		if response.StatusCode != http.StatusOK {
			return
		}

		var payload leaderboardResponse
		if err := json.NewDecoder(response.Body).Decode(&payload); err != nil {
			return
		}
		callback(payload.Leaderboard)
	}()
}
