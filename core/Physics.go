package core

import (
	"math"
)

// GravityExponent 速度倍率對重力的超線性指數
// 遊戲加速時軌道收得比位移快 是難度曲線的調整 不是物理定律
const GravityExponent = 1.3

// GravityAccel 回傳指向原點的重力加速度
// 距離平方有下限 球貼近黑洞時不會爆掉
func GravityAccel(pos Vector, speedMultiplier float64, config GameConfig) Vector {
	distSq := pos.LengthSq()
	if distSq < config.MinDistSq {
		distSq = config.MinDistSq
	}

	magnitude := config.Gravity * math.Pow(speedMultiplier, GravityExponent) / distSq
	direction := pos.Scale(-1).Normalize()
	return direction.Scale(magnitude)
}

// integrate 單一tick的積分 固定順序: 重力 -> 速度 -> 位置 -> 倍率成長
func (s *Session) integrate(deltaMs float64) {
	if s.State == StateAttached {
		// 未發射 球黏在球拍方向上 不積分速度 倍率也不成長
		radius := s.Arena.Radius - s.Config.AttachOffset
		s.Ball.Pos = angleToUnit(s.Paddle.Angle).Scale(radius)
		return
	}

	accel := GravityAccel(s.Ball.Pos, s.SpeedMultiplier, s.Config)
	s.Ball.Vel = s.Ball.Vel.Add(accel.Scale(s.Config.TickScale))
	s.Ball.Pos = s.Ball.Pos.Add(s.Ball.Vel.Scale(s.SpeedMultiplier))

	s.SpeedMultiplier += s.Config.RampPerMs * deltaMs
}

func angleToUnit(angle float64) Vector {
	return Vector{math.Cos(angle), math.Sin(angle)}
}
