package middleware

import (
	"teledias_workflow/internal/usecase"

	"github.com/gin-gonic/gin"
)

// Authentication itself is owned by the gateway in front of this service;
// here we only read the identity it forwards.
const (
	userIDHeader   = "X-User-ID"
	userNameHeader = "X-User-Name"

	contextUserID   = "userID"
	contextUserName = "userName"
)

// Identity copies the forwarded user identity into the request context.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(contextUserID, c.GetHeader(userIDHeader))
		c.Set(contextUserName, c.GetHeader(userNameHeader))
		c.Next()
	}
}

// ActorFromContext returns the acting user for the current request.
func ActorFromContext(c *gin.Context) usecase.Actor {
	return usecase.Actor{
		ID:   c.GetString(contextUserID),
		Name: c.GetString(contextUserName),
	}
}
