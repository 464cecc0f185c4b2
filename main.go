// Package main is the entry point for the anibridge application.
package main

import (
	"github.com/anibridge/anibridge/cmd"
	"github.com/anibridge/anibridge/config"
	"github.com/anibridge/anibridge/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
