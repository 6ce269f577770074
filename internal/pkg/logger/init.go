package logger

import (
	"io"
	log "log/slog"
	"os"
)

// LogWriter 供 gin 访问日志复用同一输出
var LogWriter io.Writer

// InitLogger 安装全局 JSON logger，所有日志带 trace_id
func InitLogger() {
	LogWriter = os.Stdout

	base := log.NewJSONHandler(LogWriter, &log.HandlerOptions{Level: log.LevelInfo})
	log.SetDefault(log.New(&ContextHandler{base}))
}
