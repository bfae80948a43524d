package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spetersoncode/timecalc/internal/config"
	"github.com/spf13/cobra"
)

var configForce bool

func init() {
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "Overwrite an existing config file")

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the config file",
	Long: `Manage ~/.timecalc/config.toml.

Settings are resolved in this order (highest first): command-line flags,
TIMECALC_* environment variables, the config file, built-in defaults.`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a commented sample config file",
	Args:  validArgs(cobra.NoArgs),
	RunE:  runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Args:  validArgs(cobra.NoArgs),
	RunE:  runConfigShow,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Args:  validArgs(cobra.NoArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(resolvedConfigPath())
		return nil
	},
}

// resolvedConfigPath returns the file the current invocation reads.
func resolvedConfigPath() string {
	if configPath != "" {
		return configPath
	}
	if env := os.Getenv("TIMECALC_CONFIG"); env != "" {
		return env
	}
	return config.DefaultConfigPath()
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := resolvedConfigPath()
	if path == "" {
		return ErrInternal(nil, "cannot determine home directory")
	}

	if _, err := os.Stat(path); err == nil && !configForce {
		return ErrInvalidArgsWithSuggestion("Use --force to overwrite it.", "config file %s already exists", path)
	}

	if err := config.WriteConfigFile(path); err != nil {
		return ErrInternal(err, "failed to write config file")
	}

	OutputLine("Wrote %s", path)
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	if done, err := printStructured(cfg); done {
		return err
	}

	VerboseOutput("# %s\n", resolvedConfigPath())
	if err := toml.NewEncoder(os.Stdout).Encode(cfg); err != nil {
		return ErrInternal(err, "failed to encode config")
	}
	return nil
}
