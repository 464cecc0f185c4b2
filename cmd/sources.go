// Package cmd implements the command-line interface for anibridge.
package cmd

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/anibridge/anibridge/color"
	"github.com/anibridge/anibridge/constant"
	"github.com/anibridge/anibridge/filesystem"
	"github.com/anibridge/anibridge/internal/scraper"
	"github.com/anibridge/anibridge/provider"
	"github.com/anibridge/anibridge/provider/native"
	"github.com/anibridge/anibridge/style"
	"github.com/anibridge/anibridge/util"
	"github.com/anibridge/anibridge/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(sourcesCmd)
}

// sourcesCmd provides a parent command for managing provider scripts.
var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "Manage built-in and custom provider scripts",
}

func init() {
	sourcesCmd.AddCommand(sourcesListCmd)

	sourcesListCmd.Flags().BoolP("raw", "r", false, "Suppress header and metadata descriptions in the output")
	sourcesListCmd.Flags().BoolP("custom", "c", false, "Display only user-installed custom Lua sources")
	sourcesListCmd.Flags().BoolP("builtin", "b", false, "Display only pre-compiled built-in sources")

	sourcesListCmd.MarkFlagsMutuallyExclusive("custom", "builtin")
	sourcesListCmd.SetOut(os.Stdout)
}

// sourcesListCmd displays a summary of all registered provider scripts.
var sourcesListCmd = &cobra.Command{
	Use:   "list",
	Short: "Display a collection of all registered provider scripts",
	Run: func(cmd *cobra.Command, args []string) {
		printHeader := !lo.Must(cmd.Flags().GetBool("raw"))
		headerStyle := style.New().Foreground(color.Blue).Bold(true).Render
		h := func(s string) {
			if printHeader {
				cmd.Println(headerStyle(s))
			}
		}

		printBuiltin := func() {
			h("Builtin:")
			for _, p := range provider.Builtins() {
				cmd.Println(p.Name)
			}
		}

		printCustom := func() {
			h("Custom:")
			for _, p := range provider.Customs() {
				cmd.Println(p.Name)
			}
		}

		switch {
		case lo.Must(cmd.Flags().GetBool("builtin")):
			printBuiltin()
		case lo.Must(cmd.Flags().GetBool("custom")):
			printCustom()
		default:
			printBuiltin()
			if printHeader {
				cmd.Println()
			}
			printCustom()
		}
	},
}

func init() {
	sourcesCmd.AddCommand(sourcesRemoveCmd)

	sourcesRemoveCmd.Flags().StringArrayP("name", "n", []string{}, "Specify the name of the custom source(s) to uninstall")
	lo.Must0(sourcesRemoveCmd.RegisterFlagCompletionFunc("name", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		sources, err := filesystem.API().ReadDir(where.Sources())
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}

		return lo.FilterMap(sources, func(item os.FileInfo, _ int) (string, bool) {
			name := item.Name()
			if !strings.HasSuffix(name, native.Extension) {
				return "", false
			}

			return util.FileStem(filepath.Base(name)), true
		}), cobra.ShellCompDirectiveNoFileComp
	}))
}

// sourcesRemoveCmd facilitates the uninstallation of custom Lua sources.
var sourcesRemoveCmd = &cobra.Command{
	Use:   "remove",
	Short: "Permanently uninstall specified custom Lua sources from the system",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range lo.Must(cmd.Flags().GetStringArray("name")) {
			path := filepath.Join(where.Sources(), name+native.Extension)
			handleErr(filesystem.API().Remove(path))
			fmt.Printf("%s successfully removed %s\n", style.Fg(color.Green)("✓"), style.Fg(color.Yellow)(name))
		}
	},
}

func init() {
	sourcesCmd.AddCommand(sourcesUpdateCmd)
	sourcesUpdateCmd.SetOut(os.Stdout)
}

// sourcesUpdateCmd refreshes local scripts from the official scripts repository.
var sourcesUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update local provider scripts from the official scripts repository",
	Long:  "Fetch the latest revision of every known provider script and atomically replace local copies whose content changed.",
	Run: func(cmd *cobra.Command, args []string) {
		updated := scraper.UpdateAll()

		if len(updated) == 0 {
			cmd.Println("everything up to date")
			return
		}

		for _, name := range updated {
			cmd.Printf("%s updated %s\n", style.Fg(color.Green)("✓"), style.Fg(color.Yellow)(name))
		}

		cmd.Printf("updated %s\n", util.Quantify(len(updated), "script", "scripts"))
	},
}

func init() {
	sourcesCmd.AddCommand(sourcesGenCmd)

	sourcesGenCmd.Flags().StringP("name", "n", "", "The display name of the new provider script")
	sourcesGenCmd.Flags().StringP("url", "u", "", "The base URL of the target website")

	lo.Must0(sourcesGenCmd.MarkFlagRequired("name"))
	lo.Must0(sourcesGenCmd.MarkFlagRequired("url"))
}

// sourcesGenCmd scaffolds a boilerplate Lua provider script.
var sourcesGenCmd = &cobra.Command{
	Use:   "gen",
	Short: "Scaffold a new Lua provider script using a predefined template",
	Long:  `Generate a boilerplate Lua provider script with capability functions and metadata.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.SetOut(os.Stdout)

		var author string
		usr, err := user.Current()
		if err == nil {
			author = usr.Username
		} else {
			author = "Anonymous"
		}

		s := struct {
			Name        string
			URL         string
			Author      string
			AltNames    string
			SearchFn    string
			RecentFn    string
			TopAiringFn string
			DetailsFn   string
			EpisodesFn  string
			SourceFn    string
		}{
			Name:   lo.Must(cmd.Flags().GetString("name")),
			URL:    lo.Must(cmd.Flags().GetString("url")),
			Author: author,
			AltNames: strings.Join([]string{
				constant.SearchFns[1],
				constant.RecentFns[1],
				constant.TopAiringFns[1],
				constant.DetailsFns[1],
				constant.EpisodesFns[1],
				constant.SourceFns[1],
			}, ", "),
			SearchFn:    constant.SearchFns[0],
			RecentFn:    constant.RecentFns[0],
			TopAiringFn: constant.TopAiringFns[0],
			DetailsFn:   constant.DetailsFns[0],
			EpisodesFn:  constant.EpisodesFns[0],
			SourceFn:    constant.SourceFns[0],
		}

		funcMap := template.FuncMap{
			"repeat": strings.Repeat,
			"plus":   func(a, b int) int { return a + b },
			"max":    util.Max[int],
		}

		tmpl, err := template.New("source").Funcs(funcMap).Parse(constant.SourceTemplate)
		handleErr(err)

		target := filepath.Join(where.Sources(), util.SanitizeFilename(s.Name)+native.Extension)
		f, err := filesystem.API().Create(target)
		handleErr(err)

		defer util.Ignore(f.Close)

		err = tmpl.Execute(f, s)
		handleErr(err)

		cmd.Println(target)
	},
}
