// Package cmd implements the command-line interface for anibridge.
package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/anibridge/anibridge/catalog"
	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(schemaCmd)

	schemaCmd.Flags().BoolP("details", "d", false, "Generate the JSON schema for the anime details payload")
	schemaCmd.Flags().BoolP("episode", "e", false, "Generate the JSON schema for episode objects")
	schemaCmd.MarkFlagsMutuallyExclusive("details", "episode")

	schemaCmd.SetOut(os.Stdout)
}

// schemaCmd generates JSON schemas for the public API response types.
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate JSON schemas for the public API response types",
	Long:  "Generate the JSON schema of the search payload, or of the anime details and episode objects with the corresponding flags.",
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		reflector.Namer = func(t reflect.Type) string {
			name := t.Name()
			switch strings.ToLower(name) {
			case "searchresponse", "catalogitem", "animedetails", "episode", "streamsource":
				return filepath.Base(t.PkgPath()) + "." + name
			}

			return name
		}

		var schema *jsonschema.Schema

		switch {
		case lo.Must(cmd.Flags().GetBool("details")):
			schema = reflector.Reflect(&catalog.AnimeDetails{})
		case lo.Must(cmd.Flags().GetBool("episode")):
			schema = reflector.Reflect(&catalog.Episode{})
		default:
			schema = reflector.Reflect(&catalog.SearchResponse{})
		}

		handleErr(json.NewEncoder(os.Stdout).Encode(schema))
	},
}
