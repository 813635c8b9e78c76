package main

import (
	"fmt"
	"hash/crc32"
	"os"
	"strconv"
	"strings"
)

const HighScoreFile = ".blackhole_highscore"

// HighScoreLimit 超出範圍的存檔視為損毀
const HighScoreLimit = 1000000

// encodeHighScore 分數加上checksum 輕量防手改 不是安全機制
func encodeHighScore(score int) string {
	return fmt.Sprintf("%d:%08x", score, highScoreChecksum(score))
}

// decodeHighScore 格式錯誤 checksum不符或超出範圍都當作沒有紀錄 回傳0
func decodeHighScore(blob string) int {
	parts := strings.SplitN(strings.TrimSpace(blob), ":", 2)
	if len(parts) != 2 {
		return 0
	}

	score, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0
	}
	if score < 0 || score >= HighScoreLimit {
		return 0
	}

	checksum, err := strconv.ParseUint(parts[1], 16, 32)
	if err != nil {
		return 0
	}
	if uint32(checksum) != highScoreChecksum(score) {
		return 0
	}

	return score
}

func highScoreChecksum(score int) uint32 {
	return crc32.ChecksumIEEE([]byte(fmt.Sprintf("blackhole_%d", score)))
}

func loadHighScore() int {
	data, err := os.ReadFile(HighScoreFile)
	if err != nil {
		return 0
	}
	return decodeHighScore(string(data))
}

// saveHighScore 寫入失敗就算了 下次破紀錄再寫一次
func saveHighScore(score int) {
	_ = os.WriteFile(HighScoreFile, []byte(encodeHighScore(score)), 0644)
}
