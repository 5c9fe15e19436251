// Package cmd implements the trustreport command tree.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/complykit/trustreport/internal/config"
	"github.com/complykit/trustreport/pkg/logging"
)

var (
	configFile string
	verbose    bool
	quiet      bool

	// Version information set by main.
	Version = "dev"
	// Commit is the git commit hash.
	Commit = "unknown"
	// Date is the build date.
	Date = "unknown"
	// BuiltBy is the build system identifier.
	BuiltBy = "unknown"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "trustreport",
	Short: "OneTrust registry report generator",
	Long: `Trustreport builds registry reports from a OneTrust workspace: it pages
through the vendor and asset inventories, the SCIM user directory, and the
assessment listings, resolves cross-references concurrently, and reconciles
everything into flat report tables.

Reports can be printed to the console, saved as CSV and HTML files, uploaded
to object storage, and synced onto wiki pages.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute(version, commit, date, builtBy string) {
	Version = version
	Commit = commit
	Date = date
	BuiltBy = builtBy

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is ./trustreport.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "only log warnings and errors")

	if err := viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose")); err != nil {
		panic(fmt.Sprintf("Failed to bind verbose flag: %v", err))
	}
	if err := viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet")); err != nil {
		panic(fmt.Sprintf("Failed to bind quiet flag: %v", err))
	}
}

// initConfig loads .env files and prepares environment variable handling.
func initConfig() {
	loadEnvFiles()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	// The API token and wiki credentials usually arrive via the environment
	// rather than the config file.
	for _, key := range []string{
		"ONETRUST_HOSTNAME",
		"ONETRUST_TOKEN",
		"CONFLUENCE_USERNAME",
		"CONFLUENCE_PASSWORD",
	} {
		if err := viper.BindEnv(key); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to bind environment variable %s: %v\n", key, err)
		}
	}

	configureLogging()
}

// loadConfig reads the configuration file and applies environment overrides.
func loadConfig() (*config.Config, error) {
	path := configFile
	if path == "" {
		path = "trustreport.yaml"
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if host := viper.GetString("ONETRUST_HOSTNAME"); host != "" {
		cfg.OneTrust.Hostname = host
	}
	if token := viper.GetString("ONETRUST_TOKEN"); token != "" {
		cfg.OneTrust.Token = token
	}
	if user := viper.GetString("CONFLUENCE_USERNAME"); user != "" {
		cfg.Confluence.Username = user
	}
	if pass := viper.GetString("CONFLUENCE_PASSWORD"); pass != "" {
		cfg.Confluence.Password = pass
	}

	return cfg, cfg.Validate()
}

// configureLogging sets up the logging system based on flags and environment.
func configureLogging() {
	level := zerolog.InfoLevel
	if verbose || viper.GetBool("verbose") {
		level = zerolog.DebugLevel
	}
	if quiet || viper.GetBool("quiet") {
		level = zerolog.WarnLevel
	}
	if envLevel := os.Getenv("LOG_LEVEL"); envLevel != "" {
		if parsed, err := zerolog.ParseLevel(envLevel); err == nil {
			level = parsed
		}
	}

	cfg := &logging.Config{
		Level:     level.String(),
		Format:    os.Getenv("LOG_FORMAT"),
		Output:    os.Getenv("LOG_OUTPUT"),
		AddCaller: level <= zerolog.DebugLevel,
	}
	if cfg.Format == "" {
		cfg.Format = "auto"
	}
	if cfg.Output == "" {
		cfg.Output = "stderr"
	}

	logging.Configure(cfg)
}

// loadEnvFiles loads environment variables from .env files.
// .env.local overrides .env.
func loadEnvFiles() {
	for _, envFile := range []string{".env", ".env.local"} {
		if err := godotenv.Load(envFile); err == nil && verbose {
			fmt.Fprintf(os.Stderr, "Loaded %s\n", envFile)
		}
	}
}
