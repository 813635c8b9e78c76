package main

import (
	"os"

	"BlackholePong/logger"
	"BlackholePong/server"
)

func main() {
	logger.Log.Init()

	//帶 server 參數啟動排行榜服務 否則直接進入遊戲
	if len(os.Args) > 1 && os.Args[1] == "server" {
		server.StartService()
		return
	}

	startLocalGame()
}
