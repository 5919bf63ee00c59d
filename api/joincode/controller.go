// Package joincodeapi shares this server's address as a short join code.
package joincodeapi

import (
	"net/http"

	"github.com/beka-birhanu/vinom-maze3d/joincode"
	"github.com/gin-gonic/gin"
)

// CodeResponse pairs a join code with the address it stands for.
type CodeResponse struct {
	Code string `json:"code"`
	IP   string `json:"ip"`
	Port uint16 `json:"port"`
}

// Controller serves join codes.
type Controller struct {
	own CodeResponse
}

// NewController creates a Controller advertising ip:port.
func NewController(ip string, port int) (*Controller, error) {
	code, err := joincode.EncodeHostPort(ip, port)
	if err != nil {
		return nil, err
	}
	return &Controller{own: CodeResponse{Code: code, IP: ip, Port: uint16(port)}}, nil
}

// Code returns the join code of this server.
func (c *Controller) Code() string {
	return c.own.Code
}

// RegisterPublic registers public routes.
func (c *Controller) RegisterPublic(route *gin.RouterGroup) {
	codes := route.Group("/joincode")
	{
		codes.GET("", c.ownCode)
		codes.GET("/:code", c.decode)
	}
}

// RegisterProtected registers protected routes.
func (c *Controller) RegisterProtected(route *gin.RouterGroup) {}

func (c *Controller) ownCode(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, &c.own)
}

func (c *Controller) decode(ctx *gin.Context) {
	code := ctx.Params.ByName("code")
	ip, port, err := joincode.Decode(code)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, &CodeResponse{Code: code, IP: ip, Port: port})
}
