package cmd

import (
	"github.com/tiwylli/PBR-Engine-sub000/log"
	"github.com/urfave/cli"
)

var logger = log.New("pbr-engine")

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}
