package core

import (
	"math"
	"testing"
)

// quietConfig 關掉重力與倍率成長 碰撞判定可以單獨驗證
func quietConfig() GameConfig {
	config := DefaultGameConfig()
	config.Gravity = 0
	config.RampPerMs = 0
	return config
}

func TestPaddleHitReflectsAndBoosts(t *testing.T) {
	config := quietConfig()
	clock := &fakeClock{ms: 1000}
	session := newTestSession(config, clock)
	session.Paddle.Angle = 0
	session.Launch()

	// 球拍正前方 下一tick往外穿過邊界
	boundary := config.ArenaRadius - config.BallRadius
	session.Ball.Pos = Vector{X: boundary - 1, Y: 0}
	session.Ball.Vel = Vector{X: 3, Y: 1}

	preSpeed := session.Ball.Vel.Length() // 無重力 積分不會改變速度

	session.Update(16)

	if session.Score != 1 {
		t.Fatalf("score after hit = %d, want 1", session.Score)
	}
	if got := session.SpeedMultiplier; math.Abs(got-(1.0+config.HitBoost)) > 1e-12 {
		t.Fatalf("multiplier after hit = %f, want %f", got, 1.0+config.HitBoost)
	}
	if session.State != StateLaunched {
		t.Fatalf("state after hit = %v, want Launched", session.State)
	}

	// 反射定律 v' = (v - 2(v·n)n) * restitution 在接觸點法線約等於 (1,0)
	// 接觸點不在正x軸上時法線略偏 只驗證方向翻轉與能量增加
	if session.Ball.Vel.X >= 0 {
		t.Fatalf("radial velocity not reflected: %v", session.Ball.Vel)
	}
	if got := session.Ball.Vel.Length(); got <= preSpeed {
		t.Fatalf("post-hit speed %f, want > pre-hit speed %f", got, preSpeed)
	}

	// 球要被推回場內 不能下一tick又觸發
	if dist := session.Ball.Pos.Length(); dist >= boundary {
		t.Fatalf("ball not pushed back inside: dist %f, boundary %f", dist, boundary)
	}

	if !session.Paddle.IsFlashing(clock.ms + 1) {
		t.Fatalf("paddle not flashing after hit")
	}
}

func TestReflectionLawExact(t *testing.T) {
	config := quietConfig()
	session := newTestSession(config, clockAt(0))
	session.Paddle.Angle = 0
	session.Launch()

	boundary := config.ArenaRadius - config.BallRadius
	// 沿正x軸出去 積分後接觸點仍在正x軸上 法線正好是 (1,0)
	session.Ball.Pos = Vector{X: boundary + 2, Y: 0}
	velocity := Vector{X: 4, Y: 0}
	session.Ball.Vel = velocity

	session.Update(16)

	// v' = (v - 2(v·n)n) * restitution = (-4, 0) * restitution
	normal := Vector{X: 1, Y: 0}
	reflected := velocity.Sub(normal.Scale(2 * velocity.Dot(normal))).Scale(config.Restitution)

	if math.Abs(session.Ball.Vel.X-reflected.X) > 1e-9 || math.Abs(session.Ball.Vel.Y-reflected.Y) > 1e-9 {
		t.Fatalf("reflected vel = %v, want %v", session.Ball.Vel, reflected)
	}
}

func TestMissOutsideArcStartsEscape(t *testing.T) {
	config := quietConfig()
	clock := &fakeClock{ms: 5000}
	session := newTestSession(config, clock)
	session.Paddle.Angle = 0
	session.Launch()

	// 球拍在角度0 球從正對面出界
	boundary := config.ArenaRadius - config.BallRadius
	session.Ball.Pos = Vector{X: -(boundary + 3), Y: 0}
	session.Ball.Vel = Vector{X: -2, Y: 0}

	session.Update(16)

	if session.State != StateEscaping {
		t.Fatalf("state after miss = %v, want Escaping", session.State)
	}
	// 漏接不改變速度 球繼續往外飄
	if session.Ball.Vel.X != -2 || session.Ball.Vel.Y != 0 {
		t.Fatalf("miss altered velocity: %v", session.Ball.Vel)
	}
	if session.Score != 0 {
		t.Fatalf("miss altered score: %d", session.Score)
	}
}

func TestBoundaryCrossingInsideArcNeverEscapes(t *testing.T) {
	config := quietConfig()
	session := newTestSession(config, clockAt(0))
	session.Paddle.Angle = 1.2
	session.Launch()

	boundary := config.ArenaRadius - config.BallRadius
	// 準確落在球拍弧內(角度差 0.2 < 半寬 0.35)
	contact := angleToUnit(1.4).Scale(boundary + 1)
	session.Ball.Pos = contact
	session.Ball.Vel = contact.Normalize().Scale(2)

	session.Update(16)

	if session.State != StateLaunched {
		t.Fatalf("crossing inside arc gave state %v, want Launched", session.State)
	}
	if session.Score != 1 {
		t.Fatalf("crossing inside arc gave score %d, want 1", session.Score)
	}
}

func TestNoHitDetectionDuringEscape(t *testing.T) {
	config := quietConfig()
	clock := &fakeClock{ms: 1000}
	session := newTestSession(config, clock)
	session.Paddle.Angle = 0
	session.Launch()

	boundary := config.ArenaRadius - config.BallRadius
	session.Ball.Pos = Vector{X: -(boundary + 3), Y: 0}
	session.Update(16)
	if session.State != StateEscaping {
		t.Fatalf("setup failed: state = %v", session.State)
	}

	// 球在緩衝期間飄回球拍角度 幾何上對準了也不能算接到
	session.Ball.Pos = Vector{X: boundary + 3, Y: 0}
	clock.ms += 100
	session.Update(16)

	if session.Score != 0 {
		t.Fatalf("hit detected during escape: score %d", session.Score)
	}
	if session.State != StateEscaping {
		t.Fatalf("state = %v, want still Escaping", session.State)
	}
}

func TestEscapeGraceWindow(t *testing.T) {
	config := quietConfig()
	clock := &fakeClock{ms: 1000}
	session := newTestSession(config, clock)
	session.Paddle.Angle = 0
	session.Launch()

	boundary := config.ArenaRadius - config.BallRadius
	session.Ball.Pos = Vector{X: -(boundary + 3), Y: 0}
	session.Update(16)

	// 299ms 還在緩衝
	clock.ms = 1000 + config.GraceMs - 1
	session.Update(16)
	if session.State != StateEscaping {
		t.Fatalf("state at 299ms = %v, want Escaping", session.State)
	}

	// 滿300ms 遊戲結束
	clock.ms = 1000 + config.GraceMs
	session.Update(16)
	if session.State != StateGameOver {
		t.Fatalf("state at 300ms = %v, want GameOver", session.State)
	}
}

func TestHoleDeflection(t *testing.T) {
	config := quietConfig()
	session := newTestSession(config, clockAt(0))
	session.Launch()

	session.Ball.Pos = Vector{X: 10, Y: 0}
	session.Ball.Vel = Vector{X: 1, Y: 0}

	session.Update(16)

	// 積分後位置 (11,0) 在黑洞判定圈內 速度被反向放大 不是出界也不加分
	want := -1 * config.DeflectFactor
	if math.Abs(session.Ball.Vel.X-want) > 1e-9 {
		t.Fatalf("deflected vel.X = %f, want %f", session.Ball.Vel.X, want)
	}
	if session.State != StateLaunched {
		t.Fatalf("deflection changed state: %v", session.State)
	}
	if session.Score != 0 {
		t.Fatalf("deflection changed score: %d", session.Score)
	}
}

func TestDeflectionAtExactOriginIsSafe(t *testing.T) {
	config := quietConfig()
	session := newTestSession(config, clockAt(0))
	session.Launch()

	session.Ball.Pos = Vector{}
	session.Ball.Vel = Vector{}

	session.Update(16)

	if math.IsNaN(session.Ball.Pos.X) || math.IsNaN(session.Ball.Vel.X) {
		t.Fatalf("NaN after tick at origin: pos %v vel %v", session.Ball.Pos, session.Ball.Vel)
	}
}

func clockAt(ms int64) *fakeClock {
	return &fakeClock{ms: ms}
}
