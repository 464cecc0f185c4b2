// Package cmd implements the command-line interface for anibridge.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/anibridge/anibridge/color"
	"github.com/anibridge/anibridge/constant"
	"github.com/anibridge/anibridge/key"
	"github.com/anibridge/anibridge/log"
	"github.com/anibridge/anibridge/provider"
	"github.com/anibridge/anibridge/server"
	"github.com/anibridge/anibridge/style"
	"github.com/anibridge/anibridge/util"
	"github.com/anibridge/anibridge/version"
	"github.com/anibridge/anibridge/where"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.Flags().IntP("port", "p", 0, "Port for the API server to listen on")
	lo.Must0(viper.BindPFlag(key.ServerPort, rootCmd.Flags().Lookup("port")))

	rootCmd.PersistentFlags().StringP("provider", "P", "", "Native provider script to load")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("provider", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		var names []string

		for _, p := range provider.Builtins() {
			names = append(names, p.Name)
		}

		for _, p := range provider.Customs() {
			names = append(names, p.Name)
		}

		return names, cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.ProviderName, rootCmd.PersistentFlags().Lookup("provider")))

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify()
	})

	// Initialize cleanup of localized temporary files on application startup.
	go func() {
		_ = util.Delete(where.Temp())
	}()
}

// rootCmd defines the entry point for the anibridge application.
var rootCmd = &cobra.Command{
	Use:   constant.Anibridge,
	Short: "A self-hosted anime catalog API with graceful provider fallback",
	Long: style.New().Italic(true).Foreground(color.Cyan).
		Render("    - One stable anime catalog API over interchangeable providers"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		handleErr(server.Start())
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", style.Fg(color.Red)("✗"), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
