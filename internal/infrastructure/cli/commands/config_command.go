package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/doeshing/brief-go/internal/app"
	"github.com/doeshing/brief-go/internal/infrastructure/cli/helpers"
	configinfra "github.com/doeshing/brief-go/internal/infrastructure/config"
)

const envKeyEditor = "EDITOR"

// NewConfigCommand creates the config command with all subcommands
func NewConfigCommand(container *app.Container) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect brief configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfiguration(cmd.Context(), cmd.OutOrStdout(), container)
		},
	}

	configCmd.AddCommand(
		newConfigShowCommand(container),
		newConfigPathCommand(container),
		newConfigGetCommand(container),
		newConfigSetCommand(container),
		newConfigEditCommand(container),
		newConfigValidateCommand(container),
		newConfigResetCommand(container),
		newConfigDiffCommand(container),
	)

	return configCmd
}

func newConfigShowCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show full configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfiguration(cmd.Context(), cmd.OutOrStdout(), container)
		},
	}
}

func newConfigPathCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Show the configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			loader, err := helpers.GetConfigLoader(container)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), loader.Path())
			return nil
		},
	}
}

func newConfigGetCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Get a configuration value (e.g. api.length)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return getConfigurationValue(cmd.Context(), cmd.OutOrStdout(), container, args[0])
		},
	}
}

func newConfigSetCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value (value accepts YAML syntax)",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			value := strings.Join(args[1:], " ")
			return setConfigurationValue(cmd.Context(), cmd.OutOrStdout(), container, args[0], value)
		},
	}
}

func newConfigEditCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Edit configuration in $EDITOR",
		RunE: func(cmd *cobra.Command, args []string) error {
			return editConfigurationInEditor(container)
		},
	}
}

func newConfigValidateCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := container.ConfigProvider.Load(cmd.Context()); err != nil {
				return fmt.Errorf("configuration validation failed: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), MsgConfigurationValid)
			return nil
		},
	}
}

func newConfigResetCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Reset configuration to defaults",
		RunE: func(cmd *cobra.Command, args []string) error {
			return resetConfigurationToDefaults(cmd.OutOrStdout(), container)
		},
	}
}

func newConfigDiffCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "diff",
		Short: "Show diff versus default configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfigurationDiff(cmd.Context(), cmd.OutOrStdout(), container)
		},
	}
}

func showConfiguration(ctx context.Context, out io.Writer, container *app.Container) error {
	cfg, err := container.ConfigProvider.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}

	fmt.Fprint(out, string(data))
	return nil
}

func getConfigurationValue(ctx context.Context, out io.Writer, container *app.Container, keyPath string) error {
	cfg, err := container.ConfigProvider.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	cfgMap, err := helpers.ConfigToMap(cfg)
	if err != nil {
		return err
	}

	value, found := helpers.TraverseNestedMap(cfgMap, strings.Split(keyPath, "."))
	if !found {
		return fmt.Errorf("key %s not found in configuration", keyPath)
	}

	data, err := yaml.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}

	fmt.Fprint(out, string(data))
	return nil
}

func setConfigurationValue(ctx context.Context, out io.Writer, container *app.Container, keyPath, value string) error {
	cfg, err := container.ConfigProvider.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	cfgMap, err := helpers.ConfigToMap(cfg)
	if err != nil {
		return err
	}

	keys := strings.Split(keyPath, ".")
	if _, found := helpers.TraverseNestedMap(cfgMap, keys); !found {
		return fmt.Errorf("key %s not found in configuration", keyPath)
	}
	helpers.SetNestedMapValue(cfgMap, keys, helpers.ParseYAMLValue(value))

	updated, err := helpers.MapToConfig(cfgMap)
	if err != nil {
		return err
	}
	if err := helpers.SaveConfigWithValidation(container, updated); err != nil {
		return err
	}

	fmt.Fprintf(out, "Set %s = %s\n", keyPath, value)
	return nil
}

func editConfigurationInEditor(container *app.Container) error {
	loader, err := helpers.GetConfigLoader(container)
	if err != nil {
		return err
	}

	editorCommand := getEditorCommand()
	cmd := exec.Command(editorCommand, loader.Path())
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to run editor %s: %w", editorCommand, err)
	}

	return nil
}

func resetConfigurationToDefaults(out io.Writer, container *app.Container) error {
	loader, err := helpers.GetConfigLoader(container)
	if err != nil {
		return err
	}

	defaultConfig, backup, err := loader.Reset()
	if err != nil {
		return fmt.Errorf("failed to reset configuration: %w", err)
	}

	fmt.Fprintf(out, "Configuration reset at %s\n", loader.Path())
	if backup != "" {
		fmt.Fprintf(out, "Previous configuration saved to %s\n", backup)
	}

	data, err := yaml.Marshal(defaultConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}
	fmt.Fprint(out, string(data))
	return nil
}

func showConfigurationDiff(ctx context.Context, out io.Writer, container *app.Container) error {
	if container.ConfigProvider == nil {
		return errors.New(ErrConfigLoaderUnavailable)
	}
	currentConfig, err := container.ConfigProvider.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load current configuration: %w", err)
	}

	diff := cmp.Diff(configinfra.DefaultConfig(), currentConfig)
	if diff == "" {
		fmt.Fprintln(out, MsgNoDifferencesFromDefault)
		return nil
	}

	fmt.Fprintln(out, diff)
	return nil
}

func getEditorCommand() string {
	if editor := os.Getenv(envKeyEditor); editor != "" {
		return editor
	}
	return DefaultEditorCommand
}
