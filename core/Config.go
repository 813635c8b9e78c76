package core

import (
	"fmt"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// GameConfig 遊戲物理參數 建立遊戲時傳入 遊戲進行中不會改變
type GameConfig struct {
	ArenaRadius     float64 // 場地半徑
	HoleRadius      float64 // 黑洞碰撞半徑
	HoleMargin      float64 // 黑洞反彈判定的外圍距離
	BallRadius      float64
	PaddleHalfWidth float64 // 球拍弧長的一半(弧度)

	Gravity   float64 // 重力強度常數
	MinDistSq float64 // 距離平方下限 防止靠近原點時爆掉
	TickScale float64 // 加速度積分係數

	RampPerMs   float64 // 速度倍率隨時間的成長率(每毫秒)
	HitBoost    float64 // 每次擊中加到速度倍率的固定值
	Restitution float64 // 反彈放大係數 大於1 每次擊中球會更快

	DeflectFactor float64 // 黑洞反彈的速度放大係數
	PushbackScale float64 // 擊中後把球推回場內的係數

	AttachOffset    float64 // 未發射時球距離場地邊界的固定距離
	LaunchSpeed     float64 // 發射時朝內的初速
	LaunchSideSpeed float64 // 發射時切線方向的初速

	MaxDeltaMs float64 // 單次tick的時間上限(毫秒) 避免分頁卡頓造成大步長
	GraceMs    int64   // 出界到遊戲結束的緩衝時間(毫秒)
}

// DefaultGameConfig 預設參數 測試與離線遊玩使用
func DefaultGameConfig() GameConfig {
	return GameConfig{
		ArenaRadius:     300,
		HoleRadius:      18,
		HoleMargin:      4,
		BallRadius:      6,
		PaddleHalfWidth: 0.35,

		Gravity:   220000,
		MinDistSq: 900,
		TickScale: 0.016,

		RampPerMs:   0.00002,
		HitBoost:    0.04,
		Restitution: 1.06,

		DeflectFactor: 1.35,
		PushbackScale: 1.1,

		AttachOffset:    14,
		LaunchSpeed:     3,
		LaunchSideSpeed: 1.4,

		MaxDeltaMs: 50,
		GraceMs:    300,
	}
}

// Arena 由設定值產生場地幾何
func (c GameConfig) Arena() Arena {
	return Arena{
		Radius:          c.ArenaRadius,
		HoleRadius:      c.HoleRadius,
		PaddleHalfWidth: c.PaddleHalfWidth,
	}
}

// ReadGameProperties 從properties檔讀取遊戲參數 沒設定的項目用預設值
func ReadGameProperties(env string) GameConfig {
	viper.SetConfigName(fmt.Sprintf("%s/%s", "properties", env))
	viper.SetConfigType("properties")
	viper.AddConfigPath("./")

	err := viper.ReadInConfig()
	if err != nil {
		panic(fmt.Errorf("Fatal error config file: %w \n", err))
	}

	config := DefaultGameConfig()

	if viper.IsSet("GRAVITY") {
		config.Gravity = cast.ToFloat64(viper.Get("GRAVITY"))
	}
	if viper.IsSet("ARENA_RADIUS") {
		config.ArenaRadius = cast.ToFloat64(viper.Get("ARENA_RADIUS"))
	}
	if viper.IsSet("PADDLE_ARC_HALF_WIDTH") {
		config.PaddleHalfWidth = cast.ToFloat64(viper.Get("PADDLE_ARC_HALF_WIDTH"))
	}
	if viper.IsSet("HIT_BOOST") {
		config.HitBoost = cast.ToFloat64(viper.Get("HIT_BOOST"))
	}
	if viper.IsSet("RAMP_PER_MS") {
		config.RampPerMs = cast.ToFloat64(viper.Get("RAMP_PER_MS"))
	}
	if viper.IsSet("GRACE_MS") {
		config.GraceMs = cast.ToInt64(viper.Get("GRACE_MS"))
	}

	return config
}

// ReadServerProperties 讀取連線設定 HOST_IP與HOST_PORT
func ReadServerProperties(env string) (string, string) {
	viper.SetConfigName(fmt.Sprintf("%s/%s", "properties", env))
	viper.SetConfigType("properties")
	viper.AddConfigPath("./")

	err := viper.ReadInConfig()
	if err != nil {
		panic(fmt.Errorf("Fatal error config file: %w \n", err))
	}

	host := cast.ToString(viper.Get("HOST_IP"))
	port := cast.ToString(viper.Get("HOST_PORT"))
	return host, port
}
