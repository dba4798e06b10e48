package app

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/agentstation/casematch/internal/sheets"
	"github.com/agentstation/casematch/pkg/constants"
	"github.com/agentstation/casematch/pkg/errors"
	"github.com/agentstation/casematch/pkg/layout"
)

// Config holds the application configuration loaded from various sources
// including config files, environment variables, and .env files.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Format  string

	// Config file
	ConfigFile string

	// Column layout of the report and status feed
	Layout layout.Layout

	// CSV input and export
	CSVEncoding  string
	CSVDelimiter string

	// Logging configuration
	LogLevel  string
	LogFormat string
	LogOutput string
}

// LoadConfig loads configuration from all sources in order of precedence:
// 1. Command-line flags (handled by cobra)
// 2. Environment variables (CASEMATCH_ prefix, e.g. CASEMATCH_LAYOUT_ACTIVE_STATUS)
// 3. .env files
// 4. Config file (~/.casematch.yaml or ./.casematch.yaml)
// 5. Defaults
func LoadConfig() (*Config, error) {
	return loadConfig(os.Getenv(constants.EnvPrefix + "_CONFIG"))
}

// LoadConfigFile loads configuration using an explicit config file.
func LoadConfigFile(path string) (*Config, error) {
	return loadConfig(path)
}

func loadConfig(configFile string) (*Config, error) {
	// Load .env files first (before Viper env binding)
	loadEnvFiles()

	v := viper.New()
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.NewConfigError("config", "cannot read "+configFile, err)
		}
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(constants.ConfigName)

		// A missing config file is fine; a broken one is not.
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, errors.NewConfigError("config", "cannot read config file", err)
			}
		}
	}

	aux, err := intList(v, "layout.aux_columns")
	if err != nil {
		return nil, err
	}
	if len(aux) != 2 {
		return nil, errors.NewConfigError("layout", "aux_columns must list exactly two columns", nil)
	}
	projection, err := intList(v, "layout.projection")
	if err != nil {
		return nil, err
	}

	config := &Config{
		// Global flags (may be overridden by cobra flags later)
		Verbose: v.GetBool("verbose"),
		Quiet:   v.GetBool("quiet"),
		NoColor: v.GetBool("no_color"),
		Format:  v.GetString("format"),

		ConfigFile: v.ConfigFileUsed(),

		Layout: layout.Layout{
			IdentifierColumn: v.GetInt("layout.identifier_column"),
			AuxColumns:       [2]int{aux[0], aux[1]},
			Projection:       projection,
			StatusColumn:     v.GetInt("layout.status_column"),
			ActiveStatus:     v.GetString("layout.active_status"),
			DuplicateColumn:  v.GetString("duplicates.label"),
			DuplicateMarker:  v.GetString("duplicates.marker"),
		},

		CSVEncoding:  v.GetString("csv.encoding"),
		CSVDelimiter: v.GetString("csv.delimiter"),

		// Logging configuration
		LogLevel:  getEnvOrDefault("LOG_LEVEL", ""),
		LogFormat: getEnvOrDefault("LOG_FORMAT", "auto"),
		LogOutput: getEnvOrDefault("LOG_OUTPUT", "stderr"),
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// setDefaults registers the default layout so every key can be overridden
// individually.
func setDefaults(v *viper.Viper) {
	l := layout.Default()
	v.SetDefault("layout.identifier_column", l.IdentifierColumn)
	v.SetDefault("layout.aux_columns", l.AuxColumns[:])
	v.SetDefault("layout.projection", l.Projection)
	v.SetDefault("layout.status_column", l.StatusColumn)
	v.SetDefault("layout.active_status", l.ActiveStatus)
	v.SetDefault("duplicates.label", l.DuplicateColumn)
	v.SetDefault("duplicates.marker", l.DuplicateMarker)
	v.SetDefault("csv.encoding", "utf-8")
	v.SetDefault("csv.delimiter", ",")
}

// intList reads a list of column positions. Config files give YAML lists,
// environment variables give comma-separated text.
func intList(v *viper.Viper, key string) ([]int, error) {
	switch raw := v.Get(key).(type) {
	case string:
		var out []int
		for _, part := range strings.Split(raw, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			n, err := strconv.Atoi(part)
			if err != nil {
				return nil, errors.NewConfigError("layout", fmt.Sprintf("%s: %q is not a column position", key, part), err)
			}
			out = append(out, n)
		}
		return out, nil
	case []int:
		return append([]int(nil), raw...), nil
	default:
		return v.GetIntSlice(key), nil
	}
}

// Validate checks the layout and CSV settings.
func (c *Config) Validate() error {
	if err := c.Layout.Validate(); err != nil {
		return err
	}
	if utf8.RuneCountInString(c.CSVDelimiter) != 1 {
		return errors.NewValidationError("csv.delimiter", c.CSVDelimiter, "must be a single character")
	}
	return sheets.CheckOptions(c.SheetOptions()...)
}

// SheetOptions returns the file options derived from the CSV settings.
func (c *Config) SheetOptions() []sheets.Option {
	d, _ := utf8.DecodeRuneInString(c.CSVDelimiter)
	return []sheets.Option{
		sheets.WithDelimiter(d),
		sheets.WithEncoding(c.CSVEncoding),
	}
}

// UpdateFromFlags updates config values from parsed command flags.
// This should be called after cobra parses flags to ensure flag
// values take precedence over config file and env vars.
func (c *Config) UpdateFromFlags(verbose, quiet, noColor bool, format, logLevel string) {
	c.Verbose = c.Verbose || verbose
	c.Quiet = c.Quiet || quiet
	c.NoColor = c.NoColor || noColor
	if format != "" {
		c.Format = format
	}
	if logLevel != "" {
		c.LogLevel = logLevel
	}
}

// loadEnvFiles loads environment variables from .env files.
// .env.local is loaded first so its values win over .env.
func loadEnvFiles() {
	for _, envFile := range []string{".env.local", ".env"} {
		_ = godotenv.Load(envFile)
	}
}

// getEnvOrDefault returns the environment variable value or the default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
