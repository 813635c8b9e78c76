package server

import (
	"encoding/json"
	"os"
	"sort"
	"strings"
	"sync"

	"BlackholePong/logger"
)

// MaxEntries 排行榜持久化的筆數上限
const MaxEntries = 100

// Storage 排行榜的持久層 整個榜單序列化成單一blob檔
type Storage struct {
	mutex    sync.RWMutex
	filePath string
	entries  []LeaderboardEntry
}

func NewStorage(filePath string) *Storage {
	storage := &Storage{filePath: filePath}
	storage.load()
	return storage
}

// load 讀取榜單 檔案壞掉或不存在就當作空榜 不算致命錯誤
func (s *Storage) load() {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		s.entries = make([]LeaderboardEntry, 0)
		return
	}

	var entries []LeaderboardEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		logger.Log.Warn(logger.LeaderboardCorruptMsg)
		s.entries = make([]LeaderboardEntry, 0)
		return
	}
	s.entries = entries
}

// persist 呼叫端必須持有寫鎖
func (s *Storage) persist() {
	data, err := json.Marshal(s.entries)
	if err != nil {
		return
	}
	if err := os.WriteFile(s.filePath, data, 0644); err != nil {
		logger.Log.Error(logger.LeaderboardSaveFailMsg)
	}
}

// Upsert 同名玩家(不分大小寫)只留最高分 回傳名次與是否破了自己的紀錄
// 名次是排序後用名字加分數重新掃描的第一個符合位置 同分時維持這個行為
func (s *Storage) Upsert(name string, score int, date string) (int, bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	improved := true
	bestScore := score
	found := false

	for i := range s.entries {
		if strings.EqualFold(s.entries[i].Name, name) {
			found = true
			if score > s.entries[i].Score {
				s.entries[i].Name = name
				s.entries[i].Score = score
				s.entries[i].Date = date
			} else {
				// 沒超過之前的紀錄 保留舊的
				improved = false
				bestScore = s.entries[i].Score
			}
			break
		}
	}

	if !found {
		s.entries = append(s.entries, LeaderboardEntry{Name: name, Score: score, Date: date})
	}

	sort.SliceStable(s.entries, func(i, j int) bool {
		return s.entries[i].Score > s.entries[j].Score
	})

	if len(s.entries) > MaxEntries {
		s.entries = s.entries[:MaxEntries]
	}

	s.persist()

	return s.rankOf(name, bestScore), improved
}

// rankOf 呼叫端必須持有鎖 找不到回傳0
func (s *Storage) rankOf(name string, score int) int {
	for i := range s.entries {
		if s.entries[i].Score == score && strings.EqualFold(s.entries[i].Name, name) {
			return i + 1
		}
	}
	return 0
}

// Top 回傳前n名的複本
func (s *Storage) Top(n int) []LeaderboardEntry {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if n > len(s.entries) {
		n = len(s.entries)
	}
	top := make([]LeaderboardEntry, n)
	copy(top, s.entries[:n])
	return top
}
