package logger

const GameStartMsg = "遊戲開始！ 視窗: %s (%dx%d)"
const GameOverMsg = "遊戲結束，共 %s 幀"

const PlayerScoredMsg = "得分！ %s, %s"
const PlayerWinMsg = "玩家 %d 獲勝！ 先達到 %d 分"

const AnnounceFailedMsg = "無法顯示訊息視窗: %v"
const SurfaceInitFailedMsg = "初始化失敗: %v"
const SurfaceCloseFailedMsg = "關閉畫面失敗: %v"
const QuitRequestedMsg = "收到離開事件"
