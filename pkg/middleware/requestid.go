package middleware

import (
	"math/rand"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/oklog/ulid"

	ctxPkg "github.com/yeisme/uploadvault/pkg/context"
)

const requestIDHeader = "X-Request-ID"

// RequestIDMiddleware 为每个请求生成 ULID 请求 ID，客户端传入则透传.
// ID 写入响应头与请求上下文，日志与事件可关联同一请求.
func RequestIDMiddleware() gin.HandlerFunc {
	var (
		mu      sync.Mutex
		entropy = rand.New(rand.NewSource(time.Now().UnixNano()))
	)

	newID := func() string {
		// entropy 源不是并发安全的
		mu.Lock()
		defer mu.Unlock()

		return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
	}

	return func(c *gin.Context) {
		reqID := c.GetHeader(requestIDHeader)
		if reqID == "" {
			reqID = newID()
		}

		c.Header(requestIDHeader, reqID)
		c.Request = c.Request.WithContext(ctxPkg.WithRequestID(c.Request.Context(), reqID))

		c.Next()
	}
}
