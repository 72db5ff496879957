package response

import (
	"log"
	"net/http"

	"anoa.com/clanportal/pkg/apperror"
	"github.com/gin-gonic/gin"
)

// Error sends the standardized failure payload. Raw driver errors are
// logged server-side only; the client sees the mapped taxonomy message.
func Error(c *gin.Context, err error) {
	code := apperror.MapErrorToStatus(err)

	message := err.Error()
	if code == http.StatusInternalServerError {
		log.Printf("[Internal Error] %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		message = apperror.ErrInternal.Error()
	}

	c.JSON(code, gin.H{"success": false, "error": message})
}
