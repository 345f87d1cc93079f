// Package httperr writes the JSON error envelope shared by every endpoint:
//
//	{"error": {"message": "..."}, "detail": ...}
package httperr

import (
	"net/http"

	"parking-app/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type ErrorBody struct {
	Message string `json:"message"`
}

type Response struct {
	Status int       `json:"-"`
	Error  ErrorBody `json:"error"`
	Detail any       `json:"detail,omitempty"`
}

var errUnauthenticated = errs.New("no authenticated user on request")

// AbortWithError records err on the gin context for the error logger and
// sends only msg and detail to the client. A nil err is replaced by msg.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		err = errs.New(msg)
	}

	resp := Response{
		Status: status,
		Error:  ErrorBody{Message: msg},
		Detail: detail,
	}
	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortUnauthenticated is for handlers behind RequireAuth that still find no
// user in the context.
func AbortUnauthenticated(c *gin.Context) {
	AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "User not authenticated", nil)
}
