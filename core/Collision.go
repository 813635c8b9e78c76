package core

// MinDeflectDistance 距離原點小於此值時方向無法定義 直接跳過反彈判定
const MinDeflectDistance = 1e-6

// PaddleFlashMs 擊中後球拍閃爍的時間(毫秒) 只影響畫面
const PaddleFlashMs = 160

// resolveCollisions 單一tick的碰撞判定 順序固定: 黑洞反彈 -> 邊界 -> 出界倒數
func (s *Session) resolveCollisions() {
	if s.State == StateAttached {
		return
	}
	s.resolveHoleDeflection()
	s.resolveBoundary()
	s.resolveEscapeTimeout()
}

// resolveHoleDeflection 球太靠近黑洞時反彈甩開 這不是失誤 遊戲繼續
func (s *Session) resolveHoleDeflection() {
	dist := s.Ball.Pos.Length()
	if dist < MinDeflectDistance {
		return
	}
	if dist < s.Arena.HoleRadius+s.Config.HoleMargin {
		s.Ball.Vel = s.Ball.Vel.Scale(-s.Config.DeflectFactor)
	}
}

// resolveBoundary 球到達場地邊界 判定接到(HIT)或漏接(MISS)
// Escaping狀態下不再判定邊界 要等遊戲結束或重置
func (s *Session) resolveBoundary() {
	if s.State != StateLaunched {
		return
	}

	dist := s.Ball.Pos.Length()
	boundary := s.Arena.Radius - s.Ball.Radius
	if dist < boundary {
		return
	}

	angularDiff := NormalizeAngleDiff(s.Ball.Pos.Angle(), s.Paddle.Angle)
	if angularDiff < s.Arena.PaddleHalfWidth {
		s.resolveHit(dist, boundary)
	} else {
		// 漏接 不改變球的速度與位置 讓它繼續往外飄
		s.State = StateEscaping
		s.escapeStartMs = s.clock.NowMs()
	}
}

func (s *Session) resolveHit(dist, boundary float64) {
	s.Score += 1
	s.SpeedMultiplier += s.Config.HitBoost

	// 接觸點的外向法線 反射公式 v' = v - 2(v·n)n 再乘上恢復係數
	normal := s.Ball.Pos.Normalize()
	reflected := s.Ball.Vel.Sub(normal.Scale(2 * s.Ball.Vel.Dot(normal)))
	s.Ball.Vel = reflected.Scale(s.Config.Restitution)

	// 把球推回場內 避免下一tick再次觸發邊界
	penetration := dist - boundary
	s.Ball.Pos = s.Ball.Pos.Sub(normal.Scale(penetration * s.Config.PushbackScale))

	s.Paddle.FlashUntilMs = s.clock.NowMs() + PaddleFlashMs
}

// resolveEscapeTimeout 出界後的緩衝時間 讓畫面特效播完才結束遊戲
func (s *Session) resolveEscapeTimeout() {
	if s.State != StateEscaping {
		return
	}
	if s.clock.NowMs()-s.escapeStartMs >= s.Config.GraceMs {
		s.gameOver()
	}
}
