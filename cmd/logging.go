package cmd

import (
	"github.com/alucas2/raytracing-potato/log"
	"github.com/urfave/cli"
)

var logger = log.New("potato")

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}
