// Package cmd implements the command-line interface for anibridge.
package cmd

import (
	"fmt"

	"github.com/anibridge/anibridge/color"
	"github.com/anibridge/anibridge/style"
	"github.com/anibridge/anibridge/util"
	"github.com/anibridge/anibridge/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

// clearTarget defines a filesystem resource eligible for automated cleanup.
type clearTarget struct {
	name     string
	argLong  string
	argShort mo.Option[string]
	location func() string
}

// clearTargets registry of all application artifacts that can be selectively cleared.
var clearTargets = []clearTarget{
	{"cache directory", "cache", mo.Some("c"), where.Cache},
	{"logs directory", "logs", mo.Some("l"), where.Logs},
	{"temp directory", "temp", mo.None[string](), where.Temp},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	for _, target := range clearTargets {
		help := fmt.Sprintf("clear %s", target.name)
		if target.argShort.IsPresent() {
			clearCmd.Flags().BoolP(target.argLong, target.argShort.MustGet(), false, help)
		} else {
			clearCmd.Flags().Bool(target.argLong, false, help)
		}
	}
}

// clearCmd manages the cleanup of cached and transient application artifacts.
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear cached and transient application artifacts",
	Run: func(cmd *cobra.Command, args []string) {
		doClear := func(what string) bool {
			return lo.Must(cmd.Flags().GetBool(what))
		}

		selected := lo.Filter(clearTargets, func(target clearTarget, _ int) bool {
			return doClear(target.argLong)
		})

		// A bare invocation wipes the response and release caches, the common case.
		if len(selected) == 0 {
			selected = clearTargets[:1]
		}

		for _, target := range selected {
			handleErr(util.Delete(target.location()))
			fmt.Printf("%s %s cleared\n", style.Fg(color.Green)("✓"), util.Capitalize(target.name))
		}
	},
}
