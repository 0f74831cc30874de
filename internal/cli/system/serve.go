package system

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/habitgenius/habitgenius/internal/cli"
	"github.com/habitgenius/habitgenius/internal/server"
)

type ServeCmd struct {
	Port int `help:"Port to listen on." default:"8000" env:"PORT"`
}

func (c *ServeCmd) Run(ctx *cli.Context) error {
	if !ctx.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	srv := server.New(ctx.Store)
	return srv.Run(fmt.Sprintf(":%d", c.Port))
}
