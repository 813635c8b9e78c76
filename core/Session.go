package core

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// Clock 可注入的單調時鐘 測試時用假時鐘模擬經過時間
type Clock interface {
	NowMs() int64
}

type SystemClock struct{}

func (SystemClock) NowMs() int64 {
	return time.Now().UnixMilli()
}

type SessionState int

const (
	StateAttached SessionState = iota // 球還黏在球拍上
	StateLaunched                     // 遊戲進行中
	StateEscaping                     // 漏接出界 緩衝倒數中
	StateGameOver
)

func (s SessionState) String() string {
	switch s {
	case StateAttached:
		return "Attached"
	case StateLaunched:
		return "Launched"
	case StateEscaping:
		return "Escaping"
	case StateGameOver:
		return "GameOver"
	}
	return "Unknown"
}

// Session 一場遊戲的全部模擬狀態 由tick迴圈單執行緒持有
type Session struct {
	Config GameConfig
	Arena  Arena
	Ball   *Ball
	Paddle *Paddle

	State           SessionState
	Score           int
	HighScore       int
	SpeedMultiplier float64

	// LaunchSide 發射時切線方向的正負號 每次重置隨機 測試可直接指定
	LaunchSide float64

	// SessionId 每次重置換新 用來丟棄過期的網路回應
	SessionId string

	clock         Clock
	escapeStartMs int64

	onNewHighScore func(score int)
	onGameOver     func(score int)
}

func NewSession(config GameConfig, clock Clock) *Session {
	session := &Session{
		Config: config,
		Arena:  config.Arena(),
		Ball:   &Ball{Radius: config.BallRadius},
		Paddle: &Paddle{HalfWidth: config.PaddleHalfWidth},
		clock:  clock,
	}
	session.Reset()
	return session
}

// OnNewHighScore 破紀錄事件 每次GameOver轉換最多觸發一次
func (s *Session) OnNewHighScore(callback func(score int)) {
	s.onNewHighScore = callback
}

// OnGameOver 遊戲結束事件 給UI與分數上傳用
func (s *Session) OnGameOver(callback func(score int)) {
	s.onGameOver = callback
}

// Update 每個畫面tick呼叫一次
// 同一個dt快照下 固定順序: 重力 -> 積分 -> 碰撞 -> 狀態轉換 各恰好一次
func (s *Session) Update(deltaMs float64) {
	if s.State == StateGameOver {
		return
	}
	if deltaMs > s.Config.MaxDeltaMs {
		deltaMs = s.Config.MaxDeltaMs
	}
	if deltaMs < 0 {
		deltaMs = 0
	}

	s.integrate(deltaMs)
	s.resolveCollisions()
}

// Launch 發射 只有Attached狀態可以發射
// 初速朝內加上切線方向的側速
func (s *Session) Launch() {
	if s.State != StateAttached {
		return
	}

	normal := angleToUnit(s.Paddle.Angle)
	tangent := Vector{-normal.Y, normal.X}

	s.Ball.Vel = normal.Scale(-s.Config.LaunchSpeed).
		Add(tangent.Scale(s.LaunchSide * s.Config.LaunchSideSpeed))
	s.State = StateLaunched
}

// Reset 回到發射前狀態 分數歸零 倍率歸1 換新的SessionId
// 舊Session的網路回應送達時會因為Id不同被丟棄
func (s *Session) Reset() {
	s.State = StateAttached
	s.Score = 0
	s.SpeedMultiplier = 1.0
	s.escapeStartMs = 0
	s.Ball.Vel = Vector{}
	s.SessionId = uuid.NewString()

	s.LaunchSide = 1
	if rand.Intn(2) == 0 {
		s.LaunchSide = -1
	}

	radius := s.Arena.Radius - s.Config.AttachOffset
	s.Ball.Pos = angleToUnit(s.Paddle.Angle).Scale(radius)
}

// gameOver Escaping倒數結束才會進來 只會在狀態轉換時跑一次
func (s *Session) gameOver() {
	s.State = StateGameOver

	if s.Score > s.HighScore {
		s.HighScore = s.Score
		if s.onNewHighScore != nil {
			s.onNewHighScore(s.Score)
		}
	}
	if s.onGameOver != nil {
		s.onGameOver(s.Score)
	}
}
