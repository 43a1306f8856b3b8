package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/Allen-Pinto/Highway-Delite/internal/domain"
	"github.com/Allen-Pinto/Highway-Delite/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

// Recovery отдает клиенту тот же формат ошибки, что и хендлеры.
func Recovery(log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}

			c.Set("error", fmt.Sprint(rec))
			log.LogAttrs(c.Request.Context(), logger.ErrorLevel, "panic recovered",
				logger.String("request_id", c.GetString("request_id")),
				logger.String("method", c.Request.Method),
				logger.String("path", c.Request.URL.Path),
				logger.Any("panic", rec),
				logger.String("stack", string(debug.Stack())),
			)
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
				Error: "internal server error",
				Kind:  string(domain.KindInternal),
			})
		}()

		c.Next()
	}
}
