package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/doeshing/brief-go/internal/app"
	"github.com/doeshing/brief-go/internal/infrastructure/cli/commands"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose bool
}

// NewRootCmd wires the cobra root command. The returned cleanup releases
// the storage backend.
func NewRootCmd(ctx context.Context, opts Options) (*cobra.Command, func(), error) {
	container, err := app.BuildContainer(ctx, opts.Verbose)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if err := container.Close(); err != nil {
			container.Logger.Error("close storage", err, nil)
		}
	}

	summarizeOpts := SummarizeOptions{Spinner: true}

	root := &cobra.Command{
		Use:   "brief [url]",
		Short: "brief - article summarizer",
		Long:  "brief summarizes web articles through a remote API and keeps a local history of results.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return runTUI(cmd.Context(), container, "", opts)
			}
			if err := container.Ready(); err != nil {
				return err
			}
			ctrl := container.NewController(cmd.Context())
			return runSummarize(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), ctrl, args[0], summarizeOpts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.Flags().BoolVarP(&summarizeOpts.Fallback, "fallback", "f", false, "Store a placeholder summary if the service is unavailable")
	root.Flags().BoolVarP(&summarizeOpts.Copy, "copy", "c", false, "Copy the summary to the clipboard")
	root.Flags().BoolVar(&summarizeOpts.JSON, "json", false, "Print the result as JSON")

	root.AddCommand(newSummarizeCommand(container))
	root.AddCommand(newTUICommand(container, opts))
	root.AddCommand(commands.NewHistoryCommand(container))
	root.AddCommand(commands.NewConfigCommand(container))
	root.AddCommand(commands.NewDoctorCommand(container))
	root.AddCommand(commands.NewVersionCommand())
	return root, cleanup, nil
}
