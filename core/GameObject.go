package core

import (
	"math"
)

// Vector 場地座標向量 原點即為黑洞中心
type Vector struct {
	X, Y float64
}

func (v Vector) Add(o Vector) Vector {
	return Vector{v.X + o.X, v.Y + o.Y}
}

func (v Vector) Sub(o Vector) Vector {
	return Vector{v.X - o.X, v.Y - o.Y}
}

func (v Vector) Scale(s float64) Vector {
	return Vector{v.X * s, v.Y * s}
}

func (v Vector) Dot(o Vector) float64 {
	return v.X*o.X + v.Y*o.Y
}

func (v Vector) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

func (v Vector) LengthSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Angle 回傳極角(弧度)
func (v Vector) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Normalize 回傳單位向量 零向量直接回傳零值 避免除以零
func (v Vector) Normalize() Vector {
	length := v.Length()
	if length == 0 {
		return Vector{}
	}
	return Vector{v.X / length, v.Y / length}
}

type Ball struct {
	Pos    Vector
	Vel    Vector
	Radius float64
}

// Speed 提供給畫面繪製的衍生值
func (b *Ball) Speed() float64 {
	return b.Vel.Length()
}

type Paddle struct {
	// Angle 由輸入端設定 可為任意實數 碰撞判定前才做正規化
	Angle        float64
	HalfWidth    float64
	FlashUntilMs int64
}

// IsFlashing 擊中球後的閃爍狀態 只供畫面繪製
func (p *Paddle) IsFlashing(nowMs int64) bool {
	return nowMs < p.FlashUntilMs
}

// Arena 一場遊戲內不變的場地幾何
type Arena struct {
	Radius          float64
	HoleRadius      float64
	PaddleHalfWidth float64
}

// NormalizeAngleDiff 將兩個角度的差正規化到 [0, π]
func NormalizeAngleDiff(a, b float64) float64 {
	diff := math.Mod(a-b, 2*math.Pi)
	if diff < 0 {
		diff += 2 * math.Pi
	}
	if diff > math.Pi {
		diff = 2*math.Pi - diff
	}
	return diff
}
