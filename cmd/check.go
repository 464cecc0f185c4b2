// Package cmd implements the command-line interface for anibridge.
package cmd

import (
	"os"
	"strings"

	"github.com/anibridge/anibridge/color"
	"github.com/anibridge/anibridge/key"
	"github.com/anibridge/anibridge/provider/native"
	"github.com/anibridge/anibridge/provider/remote"
	"github.com/anibridge/anibridge/style"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.SetOut(os.Stdout)
}

// checkCmd diagnoses the provider chain without starting the server.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Diagnose the provider chain",
	Long:  "Report whether the native provider script loads, which capabilities it binds, and whether the fallback catalog answers.",
	Run: func(cmd *cobra.Command, args []string) {
		var (
			good = style.Fg(color.Green)("✓")
			bad  = style.Fg(color.Red)("✗")
		)

		script := native.NewLazy(viper.GetString(key.ProviderName))

		nativeUp := script.Available()
		if nativeUp {
			cmd.Printf("%s native provider %s loaded\n", good, style.Fg(color.Purple)(script.Name()))
			cmd.Printf("  capabilities: %s\n", strings.Join(script.Capabilities(), ", "))
		} else {
			cmd.Printf("%s native provider %s could not be loaded\n", bad, style.Fg(color.Purple)(viper.GetString(key.ProviderName)))
		}

		// Genres is the cheapest fallback round trip that proves the API answers.
		_, err := remote.New().Genres()
		fallbackUp := err == nil
		if fallbackUp {
			cmd.Printf("%s fallback catalog reachable\n", good)
		} else {
			cmd.Printf("%s fallback catalog unreachable\n", bad)
		}

		if !nativeUp && !fallbackUp {
			os.Exit(1)
		}
	},
}
