// internal/commands/root.go
package promptbench

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/promptlab/promptbench/internal/appconfig"
	"github.com/promptlab/promptbench/internal/benchmark"
	"github.com/promptlab/promptbench/internal/logging"
)

var (
	cfgFile       string
	currentConfig *appconfig.Config
	appVersion    = "dev"
	appCommit     = "none"
	appDate       = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "promptbench",
	Short: "promptbench — compare prompting techniques on math problems against a local model",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := appconfig.Load(cfgFile)
		if err != nil {
			return err
		}

		if cmd.Flags().Changed("debug") || viper.GetBool("debug") {
			cfg.Debug = true
		}
		if cmd.Flags().Changed("no-tui") || viper.GetBool("noTui") {
			cfg.NoTUI = true
		}
		if model := viper.GetString("model"); model != "" {
			cfg.Host.Model = model
		}
		if host := viper.GetString("host"); host != "" {
			cfg.Host.URL = host
		}
		if timeout := viper.GetInt("timeout"); timeout > 0 {
			cfg.TimeoutSeconds = timeout
		}
		if logFile := viper.GetString("logFile"); logFile != "" {
			cfg.LogFile = logFile
		}
		if dataset := viper.GetString("dataset"); dataset != "" {
			cfg.DatasetPath = dataset
		}
		if cmd.Flags().Changed("accuracy-weight") {
			cfg.Weights.Accuracy = viper.GetFloat64("accuracyWeight")
		}
		if cmd.Flags().Changed("completeness-weight") {
			cfg.Weights.Completeness = viper.GetFloat64("completenessWeight")
		}
		if cmd.Flags().Changed("efficiency-weight") {
			cfg.Weights.Efficiency = viper.GetFloat64("efficiencyWeight")
		}

		if err := cfg.Validate(); err != nil {
			return err
		}
		currentConfig = &cfg

		if err := logging.Init(cfg.LogFilePath()); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", appVersion, appCommit, appDate)

	defer logging.Close()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", appconfig.DefaultConfigPath, "config file (e.g., config/config.json)")

	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().Bool("no-tui", false, "disable the progress TUI, log plain lines instead")
	rootCmd.PersistentFlags().StringP("model", "m", "", "model name to benchmark")
	rootCmd.PersistentFlags().String("host", "", "model host URL (e.g., http://localhost:11434)")
	rootCmd.PersistentFlags().Int("timeout", 0, "per-request timeout in seconds (0 = default)")
	rootCmd.PersistentFlags().String("logFile", "", "path to the log file")
	rootCmd.PersistentFlags().String("dataset", "", "path to a problem dataset JSON file")
	rootCmd.PersistentFlags().Float64("accuracy-weight", 0.5, "weight of the accuracy score")
	rootCmd.PersistentFlags().Float64("completeness-weight", 0.3, "weight of the completeness score")
	rootCmd.PersistentFlags().Float64("efficiency-weight", 0.2, "weight of the efficiency score")

	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("noTui", rootCmd.PersistentFlags().Lookup("no-tui"))
	_ = viper.BindPFlag("model", rootCmd.PersistentFlags().Lookup("model"))
	_ = viper.BindPFlag("host", rootCmd.PersistentFlags().Lookup("host"))
	_ = viper.BindPFlag("timeout", rootCmd.PersistentFlags().Lookup("timeout"))
	_ = viper.BindPFlag("logFile", rootCmd.PersistentFlags().Lookup("logFile"))
	_ = viper.BindPFlag("dataset", rootCmd.PersistentFlags().Lookup("dataset"))
	_ = viper.BindPFlag("accuracyWeight", rootCmd.PersistentFlags().Lookup("accuracy-weight"))
	_ = viper.BindPFlag("completenessWeight", rootCmd.PersistentFlags().Lookup("completeness-weight"))
	_ = viper.BindPFlag("efficiencyWeight", rootCmd.PersistentFlags().Lookup("efficiency-weight"))
}

// GetConfig returns the loaded application configuration for other packages.
func GetConfig() *appconfig.Config {
	return currentConfig
}

// DebugEnabled returns true if debug mode is enabled.
func DebugEnabled() bool { return currentConfig != nil && currentConfig.Debug }

// weightsFromConfig converts the configured weights into the orchestrator's
// validated form.
func weightsFromConfig(cfg *appconfig.Config) benchmark.WeightConfig {
	return benchmark.WeightConfig{
		Accuracy:     cfg.Weights.Accuracy,
		Completeness: cfg.Weights.Completeness,
		Efficiency:   cfg.Weights.Efficiency,
	}
}

// SetVersionInfo allows the main package to inject build-time variables.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}
