// Package config provides centralized management for application settings, defaults, and the Viper-based configuration engine.
package config

import (
	"encoding/json"
	"reflect"
	"strings"
	"text/template"

	"github.com/anibridge/anibridge/constant"
	"github.com/anibridge/anibridge/key"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Field represents a configuration field definition.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Pretty returns a multi-line string representation of the field for display.
func (f *Field) Pretty() string {
	var b strings.Builder
	lo.Must0(prettyTemplate.Execute(&b, f))
	return b.String()
}

// Env returns the environment variable name for this field.
func (f *Field) Env() string {
	env := strings.ToUpper(EnvKeyReplacer.Replace(f.Key))
	prefix := strings.ToUpper(constant.Anibridge + "_")
	if strings.HasPrefix(env, prefix) {
		return env
	}
	return prefix + env
}

// MarshalJSON customizes JSON output to include current and default values.
func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key         string `json:"key"`
		Value       any    `json:"value"`
		Default     any    `json:"default"`
		Description string `json:"description"`
		Type        string `json:"type"`
	}{
		Key:         f.Key,
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
		Type:        f.typeName(),
	})
}

// typeName returns the string representation of the field's underlying value type.
func (f *Field) typeName() string {
	switch f.Value.(type) {
	case string:
		return "string"
	case int:
		return "int"
	case bool:
		return "bool"
	case []string:
		return "[]string"
	case []int:
		return "[]int"
	default:
		return "unknown"
	}
}

// Default holds the map of all configuration fields.
var Default = make(map[string]Field)

// EnvExposed holds keys that are bound to environment variables.
var EnvExposed []string

func init() {
	// register validates and adds a new configuration field to the global registry.
	register := func(k string, v any, desc string) {
		if _, exists := Default[k]; exists {
			panic("Duplicate config key: " + k)
		}
		f := Field{Key: k, Value: v, Description: desc}
		Default[k] = f
		EnvExposed = append(EnvExposed, k)
	}

	register(key.ServerHost, "", "Address the API server binds to.\nEmpty means all interfaces")
	register(key.ServerPort, 3000, "Port the API server listens on")
	register(key.ServerCORSOrigins, "*", "Comma-separated list of origins allowed by CORS")
	register(key.ProviderName, "allanime", "Native provider script to load.\nResolved against the sources directory first, then the embedded builtins.\nType \"anibridge sources list\" to show available scripts")
	register(key.FallbackBaseURLs, []string{"https://api.jikan.moe/v4"}, "Base URLs of the fallback catalog API, tried in order.\nAdd self-hosted mirrors in front to avoid shared rate limits")
	register(key.CacheCapacity, 300, "Maximum number of cached responses.\nLeast recently used entries are evicted past this point")
	register(key.CacheTTL, "5m", "How long cached responses stay fresh")
	register(key.CacheSearchTTL, "3m", "How long cached search responses stay fresh.\nSearch churns faster than the other lookups")
	register(key.LogsWrite, false, "Also write logs to a file under the logs directory")
	register(key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace")
	register(key.LogsJson, false, "Use json format for logs")
	register(key.CliColored, true, "Enable colored CLI output")
	register(key.CliVersionCheck, true, "Enable automatic version check")
}

var prettyTemplate = lo.Must(template.New("pretty").Funcs(template.FuncMap{
	"value":    func(k string) any { return viper.Get(k) },
	"typename": func(v any) string { return reflect.TypeOf(v).String() },
}).Parse(`{{ .Description }}
Key:     {{ .Key }}
Env:     {{ .Env }}
Value:   {{ value .Key }}
Default: {{ .Value }}
Type:    {{ typename .Value }}`))
