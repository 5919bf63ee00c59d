// Package i declares the contract between the router and its controllers.
package i

import "github.com/gin-gonic/gin"

// Controller mounts its handlers on the router's route groups.
type Controller interface {
	// RegisterPublic mounts routes that need no token.
	RegisterPublic(*gin.RouterGroup)

	// RegisterProtected mounts routes that run behind the authorization middleware.
	RegisterProtected(*gin.RouterGroup)
}
