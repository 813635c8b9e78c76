package server

// 對外API的payload格式 瀏覽器端靠這些欄位 不能改

type StartResponse struct {
	Token     string `json:"token"`
	Timestamp int64  `json:"timestamp"`
}

type SubmitRequest struct {
	Token string  `json:"token"`
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

type SubmitResponse struct {
	Success bool   `json:"success"`
	Rank    int    `json:"rank"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type LeaderboardEntry struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
	Date  string `json:"date"`
}

type LeaderboardResponse struct {
	Leaderboard []LeaderboardEntry `json:"leaderboard"`
}

// MaxNameLength 玩家名稱長度上限
const MaxNameLength = 20

const DefaultPlayerName = "Anonymous"

// SanitizeName 過濾名稱 只留 [A-Za-z0-9 _-] 截到20字 空的給預設名
func SanitizeName(raw string) string {
	filtered := make([]rune, 0, len(raw))
	for _, r := range raw {
		if isAllowedNameRune(r) {
			filtered = append(filtered, r)
		}
		if len(filtered) == MaxNameLength {
			break
		}
	}

	name := string(filtered)
	if isBlank(name) {
		return DefaultPlayerName
	}
	return name
}

func isAllowedNameRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= 'A' && r <= 'Z':
		return true
	case r >= '0' && r <= '9':
		return true
	case r == ' ' || r == '_' || r == '-':
		return true
	}
	return false
}

func isBlank(name string) bool {
	for _, r := range name {
		if r != ' ' {
			return false
		}
	}
	return true
}
