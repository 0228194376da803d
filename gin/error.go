package gin

import (
	"net/http"

	"github.com/fwojciec/shopinsight"
	"github.com/gin-gonic/gin"
)

// codes maps application error codes to HTTP status codes.
var codes = map[string]int{
	shopinsight.EINVALID:     http.StatusBadRequest,
	shopinsight.ENOTFOUND:    http.StatusNotFound,
	shopinsight.EUNAVAILABLE: http.StatusBadGateway,
	shopinsight.EINTERNAL:    http.StatusInternalServerError,
}

// ErrorStatusCode returns the HTTP status code for an application error code.
func ErrorStatusCode(code string) int {
	if v, ok := codes[code]; ok {
		return v
	}
	return http.StatusInternalServerError
}

// writeError writes err as a JSON envelope. Internal errors are logged and
// their details hidden from the caller.
func (s *Server) writeError(c *gin.Context, err error) {
	code, message := shopinsight.ErrorCode(err), shopinsight.ErrorMessage(err)
	if code == shopinsight.EINTERNAL {
		s.Logger.Error("request failed",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"err", err,
		)
	}
	c.AbortWithStatusJSON(ErrorStatusCode(code), Response{Success: false, Message: message})
}
