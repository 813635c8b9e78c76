package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell"
	"github.com/spf13/cast"
	"github.com/spf13/viper"

	"BlackholePong/client"
	"BlackholePong/core"
	"BlackholePong/logger"
)

var screen tcell.Screen
var session *core.Session
var scoreClient *client.ScoreClient

var playerName string

var leaderboardChan = make(chan []client.LeaderboardEntry, 1)
var latestLeaderboard []client.LeaderboardEntry

const TickMs = 30       // 每個tick間的休息時間(毫秒)
const PaddleStep = 0.12 // 每次按鍵移動球拍的弧度

func startLocalGame() {
	env := os.Getenv("BLACKHOLE_ENV")
	if env == "" {
		env = "dev"
	}

	config := core.ReadGameProperties(env)

	serverUrl := cast.ToString(viper.Get("SERVER_URL"))
	playerName = cast.ToString(viper.Get("PLAYER_NAME"))

	initScreen()
	initGameState(config, serverUrl)
	startGameLoop()
}

func initScreen() {
	var err error
	screen, err = tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	if e := screen.Init(); e != nil {
		fmt.Fprintf(os.Stderr, "%v\n", e)
		os.Exit(1)
	}

	defaultStyle := tcell.StyleDefault.
		Background(tcell.ColorBlack).
		Foreground(tcell.ColorWhite)
	screen.SetStyle(defaultStyle)
}

func initGameState(config core.GameConfig, serverUrl string) {
	session = core.NewSession(config, core.SystemClock{})
	session.HighScore = loadHighScore()

	scoreClient = client.NewScoreClient(serverUrl)

	session.OnNewHighScore(func(score int) {
		saveHighScore(score)
		logger.Log.Info(fmt.Sprintf(logger.NewHighScoreMsg, score))
	})

	session.OnGameOver(func(score int) {
		logger.Log.Info(fmt.Sprintf(logger.GameOverMsg, score))
		//上傳分數與抓榜單都是fire-and-forget 模擬不等網路
		scoreClient.SubmitScore(session.SessionId, playerName, score)
		scoreClient.FetchLeaderboard(func(entries []client.LeaderboardEntry) {
			select {
			case leaderboardChan <- entries:
			default:
			}
		})
	})

	scoreClient.StartSession(session.SessionId)
	logger.Log.Info(fmt.Sprintf(logger.GameStartMsg, session.SessionId))
}

func startGameLoop() {
	inputChan := initUserInput()
	lastTick := time.Now()

	for {
		now := time.Now()
		deltaMs := float64(now.Sub(lastTick).Microseconds()) / 1000.0
		lastTick = now

		session.Update(deltaMs)
		receiveLeaderboard()
		drawView()

		time.Sleep(TickMs * time.Millisecond)

		if !userOperationHandle(inputChan) {
			break
		}
	}

	screen.Fini()
}

func initUserInput() chan string {
	//另一個goroutine監聽鍵盤事件 丟回channel
	inputChan := make(chan string)

	go func() {
		for {
			switch ev := screen.PollEvent().(type) {
			case *tcell.EventResize:
				drawView()
			case *tcell.EventKey:
				inputChan <- ev.Name()
			}
		}
	}()

	return inputChan
}

func userOperationHandle(inputChan chan string) bool {
	key := readInput(inputChan)

	switch key {
	case "Left":
		session.Paddle.Angle += PaddleStep

	case "Right":
		session.Paddle.Angle -= PaddleStep

	case "Rune[ ]":
		if session.State == core.StateAttached {
			session.Launch()
		}

	case "Rune[r]":
		if session.State == core.StateGameOver {
			resetGame()
		}

	case "Esc", "Ctrl+C", "Rune[q]":
		return false
	}

	return true
}

// resetGame 重開一局 換新SessionId 舊場次的網路回應會被丟棄
func resetGame() {
	session.Reset()
	latestLeaderboard = nil
	scoreClient.StartSession(session.SessionId)
	logger.Log.Info(fmt.Sprintf(logger.GameStartMsg, session.SessionId))
}

// receiveLeaderboard 撈這一tick之前送達的榜單 沒有就跳過
func receiveLeaderboard() {
	select {
	case entries := <-leaderboardChan:
		latestLeaderboard = entries
	default:
	}
}

func readInput(inputChan chan string) string {
	var key string
	select {
	case key = <-inputChan:
	default:
		key = ""
	}
	return key
}
