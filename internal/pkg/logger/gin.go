package logger

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
)

// SetupGin 挂载访问日志与 recovery，访问日志沿用全局 JSON 格式
func SetupGin(r *gin.Engine) {
	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		Output:    LogWriter,
		Formatter: accessLogLine,
	}))
	r.Use(gin.Recovery())
}

func accessLogLine(p gin.LogFormatterParams) string {
	var traceID string
	if p.Keys != nil {
		traceID, _ = p.Keys[TraceIDKey].(string)
	}
	if traceID == "" && p.Request != nil {
		traceID = TraceIDFromContext(p.Request.Context())
	}

	return fmt.Sprintf(
		`{"time":"%s","level":"INFO","msg":"GIN_ACCESS","trace_id":"%s","method":"%s","path":"%s","status":%d,"client_ip":"%s","latency":"%v"}`+"\n",
		p.TimeStamp.Format(time.RFC3339),
		traceID,
		p.Method,
		p.Path,
		p.StatusCode,
		p.ClientIP,
		p.Latency,
	)
}
