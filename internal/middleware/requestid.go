package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader 是請求 ID 使用的 HTTP 標頭名稱
const RequestIDHeader = "X-Request-ID"

// RequestID 是一個 Gin 中間件，為每個請求附加唯一的請求 ID
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		// 沿用客戶端帶入的請求 ID，沒有的話產生一個新的
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		// 將請求 ID 設置到上下文與回應標頭中
		c.Set("requestID", id)
		c.Writer.Header().Set(RequestIDHeader, id)
		c.Next() // 繼續處理請求
	}
}
