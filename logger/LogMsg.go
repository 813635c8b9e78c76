package logger

const ServerStartMsg = "排行榜服務啟動 位址: %s"
const ServerStopMsg = "排行榜服務中止！原因: %v"

const ScoreSubmittedMsg = "玩家 %s 提交分數 %d 名次:%d"
const TokenRejectedMsg = "玩家 %s 的token驗證失敗 拒絕提交"

const LeaderboardCorruptMsg = "榜單檔案損毀 以空榜重新開始"
const LeaderboardSaveFailMsg = "榜單寫入失敗！"

const GameStartMsg = "新的一局開始 SessionId: %s"
const GameOverMsg = "遊戲結束 分數: %d"
const NewHighScoreMsg = "破紀錄！新的最高分: %d"

const StartSessionFailMsg = "取得場次token失敗 僅離線遊玩: %v"
const SubmitFailMsg = "分數上傳失敗: %v"
const StaleResponseMsg = "收到過期場次的回應 已丟棄"
