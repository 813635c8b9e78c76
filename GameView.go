package main

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell"

	"BlackholePong/core"
)

const BallSymbol = 0x25CF   // 球符號
const HoleSymbol = 0x2593   // 黑洞符號
const PaddleSymbol = 0x2588 // 球拍符號
const ArenaSymbol = 0x00B7  // 場地邊界符號

func drawView() {
	screen.Clear()

	width, height := screen.Size()
	centerCol, centerRow := width/2, height/2
	scale := viewScale(width, height)

	drawArena(centerCol, centerRow, scale)
	drawHole(centerCol, centerRow, scale)
	drawPaddle(centerCol, centerRow, scale)
	drawBall(centerCol, centerRow, scale)
	drawHud()

	if session.State == core.StateGameOver {
		drawGameOver(centerCol, centerRow)
	}

	screen.Show()
}

// viewScale 場地半徑換算成螢幕列數的比例
// 終端機字元高寬約1:2 橫向要放大兩倍看起來才是圓
func viewScale(width, height int) float64 {
	vertical := float64(height-6) / 2
	horizontal := float64(width-4) / 4
	limit := vertical
	if horizontal < limit {
		limit = horizontal
	}
	if limit < 1 {
		limit = 1
	}
	return limit / session.Arena.Radius
}

func worldToScreen(pos core.Vector, centerCol, centerRow int, scale float64) (int, int) {
	col := centerCol + int(math.Round(pos.X*scale*2))
	row := centerRow + int(math.Round(pos.Y*scale))
	return col, row
}

func drawArena(centerCol, centerRow int, scale float64) {
	radius := session.Arena.Radius
	for t := 0.0; t < 2*math.Pi; t += 0.01 {
		point := core.Vector{X: math.Cos(t) * radius, Y: math.Sin(t) * radius}
		col, row := worldToScreen(point, centerCol, centerRow, scale)
		screen.SetContent(col, row, ArenaSymbol, nil, tcell.StyleDefault.Foreground(tcell.ColorGray))
	}
}

func drawHole(centerCol, centerRow int, scale float64) {
	radius := session.Arena.HoleRadius
	style := tcell.StyleDefault.Foreground(tcell.ColorPurple)

	//由內往外一圈圈畫 把黑洞塗滿
	for r := 0.0; r <= radius; r += 2 {
		for t := 0.0; t < 2*math.Pi; t += 0.05 {
			point := core.Vector{X: math.Cos(t) * r, Y: math.Sin(t) * r}
			col, row := worldToScreen(point, centerCol, centerRow, scale)
			screen.SetContent(col, row, HoleSymbol, nil, style)
		}
	}
}

func drawPaddle(centerCol, centerRow int, scale float64) {
	radius := session.Arena.Radius
	halfWidth := session.Paddle.HalfWidth

	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	if session.Paddle.IsFlashing(nowMs()) {
		style = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	}

	for t := session.Paddle.Angle - halfWidth; t <= session.Paddle.Angle+halfWidth; t += 0.005 {
		point := core.Vector{X: math.Cos(t) * radius, Y: math.Sin(t) * radius}
		col, row := worldToScreen(point, centerCol, centerRow, scale)
		screen.SetContent(col, row, PaddleSymbol, nil, style)
	}
}

func drawBall(centerCol, centerRow int, scale float64) {
	col, row := worldToScreen(session.Ball.Pos, centerCol, centerRow, scale)
	screen.SetContent(col, row, BallSymbol, nil, tcell.StyleDefault.Foreground(tcell.ColorWhite))
}

func drawHud() {
	drawText(1, 0, fmt.Sprintf("SCORE %d", session.Score))
	drawText(1, 1, fmt.Sprintf("BEST  %d", session.HighScore))
	drawText(1, 2, fmt.Sprintf("SPEED x%.2f", session.SpeedMultiplier))

	switch session.State {
	case core.StateAttached:
		drawText(1, 4, "SPACE to launch / arrows to move")
	case core.StateEscaping:
		drawText(1, 4, "ESCAPING...")
	}
}

func drawGameOver(centerCol, centerRow int) {
	drawText(centerCol-5, centerRow-1, "GAME OVER")
	drawText(centerCol-8, centerRow, fmt.Sprintf("score %d  best %d", session.Score, session.HighScore))
	drawText(centerCol-8, centerRow+1, "press r to restart")

	//榜單抓到了才顯示 離線時這裡永遠是空的
	for i, entry := range latestLeaderboard {
		line := fmt.Sprintf("%2d. %-20s %d", i+1, entry.Name, entry.Score)
		drawText(centerCol-14, centerRow+3+i, line)
	}
}

func drawText(col, row int, text string) {
	for i, r := range text {
		screen.SetContent(col+i, row, r, nil, tcell.StyleDefault)
	}
}

func nowMs() int64 {
	return core.SystemClock{}.NowMs()
}
