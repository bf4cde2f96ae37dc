package ui

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/calpick/internal/config"
	"github.com/javiermolinar/calpick/internal/tui/theme"
)

func (a *App) configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "View or edit configuration",
		Long: `Interactive configuration management.

If no config file exists, creates one with default values.
Otherwise, displays current config and allows editing.

Example:
  calpick config`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runConfigInteractive()
		},
	}
}

func runConfigInteractive() error {
	configPath := config.DefaultConfigPath()
	fmt.Printf("Config file: %s\n\n", configPath)

	// Load existing config or create defaults
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	_, fileErr := os.Stat(configPath)
	if os.IsNotExist(fileErr) {
		fmt.Println("No config file found. Creating with default values...")
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Printf("Created %s\n\n", configPath)
	}

	printConfig(cfg)

	if !promptYesNo("\nWould you like to edit the configuration?") {
		return nil
	}

	reader := bufio.NewReader(os.Stdin)

	cfg.UI.Theme = promptTheme(reader, cfg.UI.Theme)
	cfg.Picker.RepeatDelay = promptDuration(reader, "Repeat delay", cfg.Picker.RepeatDelay)
	cfg.Picker.RepeatInterval = promptDuration(reader, "Repeat interval", cfg.Picker.RepeatInterval)
	cfg.Picker.DateFormat = promptValue(reader, "Date format (Go layout)", cfg.Picker.DateFormat)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if err := cfg.Save(); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println("\nConfiguration saved!")
	return nil
}

func printConfig(cfg *config.Config) {
	fmt.Println(formatHeader("Current configuration:"))
	fmt.Println(strings.Repeat("─", min(termWidth(), 40)))
	fmt.Println("[ui]")
	fmt.Printf("  theme           = %s\n", cfg.UI.Theme)
	fmt.Println("\n[picker]")
	fmt.Printf("  repeat_delay    = %s\n", cfg.Picker.RepeatDelay)
	fmt.Printf("  repeat_interval = %s\n", cfg.Picker.RepeatInterval)
	fmt.Printf("  date_format     = %s %s\n", cfg.Picker.DateFormat,
		formatMuted("(today: "+time.Now().Format(cfg.Picker.DateFormat)+")"))
}

func promptYesNo(question string) bool {
	reader := bufio.NewReader(os.Stdin)
	fmt.Printf("%s [y/N]: ", question)
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(strings.ToLower(input))
	return input == "y" || input == "yes"
}

func promptValue(reader *bufio.Reader, label, current string) string {
	if current == "" {
		fmt.Printf("  %s: ", label)
	} else {
		fmt.Printf("  %s [%s]: ", label, current)
	}
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return current
	}
	return input
}

func promptDuration(reader *bufio.Reader, label, current string) string {
	for {
		value := promptValue(reader, label, current)
		if d, err := time.ParseDuration(value); err == nil && d > 0 {
			return value
		}
		fmt.Printf("  Invalid duration %q. Use values like 500ms or 1s\n", value)
	}
}

func promptTheme(reader *bufio.Reader, current string) string {
	options := strings.Join(theme.Available(), ", ")
	label := fmt.Sprintf("UI theme (%s)", options)
	for {
		value := strings.ToLower(promptValue(reader, label, current))
		if theme.IsAvailable(value) {
			return value
		}
		fmt.Printf("  Invalid theme %q. Available: %s\n", value, options)
	}
}
