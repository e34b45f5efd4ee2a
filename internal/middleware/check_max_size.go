package middleware

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

var ErrBodyTooLarge = errors.New("request body too large")

// MaxBodySize caps JSON request bodies. None of the endpoints carries more
// than a few kilobytes of key material and message text.
const MaxBodySize = 1 << 20 // 1 MiB

type countingReader struct {
	R     io.ReadCloser
	read  int64
	limit int64
}

func (cr *countingReader) Read(p []byte) (int, error) {
	n, err := cr.R.Read(p)
	cr.read += int64(n)
	if cr.read > cr.limit {
		return n, ErrBodyTooLarge
	}
	return n, err
}

func (cr *countingReader) Close() error {
	return cr.R.Close()
}

// MaxStreamMiddleware enforces the cap while the body is being read, for
// clients that do not announce a Content-Length.
func MaxStreamMiddleware(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = &countingReader{
			R:     c.Request.Body,
			limit: limit,
		}
		c.Next()
	}
}

// MaxSizeMiddleware rejects oversized bodies up front by Content-Length.
func MaxSizeMiddleware(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > limit {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, gin.H{
				"error": fmt.Sprintf("request is too large: max %d bytes allowed", limit),
			})
			return
		}
		c.Next()
	}
}
