package main

import (
	"fmt"

	sigin "github.com/fwojciec/shopinsight/gin"
	"github.com/gin-gonic/gin"
)

// Run executes the serve command. It blocks until the context is cancelled.
func (c *ServeCmd) Run(deps *Dependencies) error {
	gin.SetMode(gin.ReleaseMode)

	var limiter *sigin.ClientLimiter
	if c.RateLimit > 0 {
		limiter = sigin.NewClientLimiter(c.RateLimit, c.Burst)
	}

	server := sigin.NewServer(deps.NewScraper(c.Concurrency), deps.Brands, deps.Logger, c.Origins, limiter)
	server.Addr = c.Addr
	if err := server.Open(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: failed to listen on %s: %v\n", c.Addr, err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Listening on %s\n", server.URL())

	<-deps.Ctx.Done()
	return server.Close()
}
