package cli

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/doeshing/brief-go/internal/app"
	"github.com/doeshing/brief-go/internal/domain"
	"github.com/doeshing/brief-go/internal/infrastructure/tui"
	"github.com/doeshing/brief-go/internal/pkg/filesystem"
)

const debugLogName = "debug.log"

func newTUICommand(container *app.Container, opts Options) *cobra.Command {
	return &cobra.Command{
		Use:   "tui [url]",
		Short: "Open the interactive summary view",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			url := ""
			if len(args) == 1 {
				url = args[0]
			}
			return runTUI(cmd.Context(), container, url, opts)
		},
	}
}

// runTUI starts the terminal view. Log output goes to a file while the
// screen is owned by bubbletea.
func runTUI(ctx context.Context, container *app.Container, url string, opts Options) error {
	if err := container.Ready(); err != nil {
		return err
	}
	if opts.Verbose {
		dir := filesystem.AppDir()
		if err := os.MkdirAll(dir, domain.DirectoryPermissions); err != nil {
			return fmt.Errorf("create log dir: %w", err)
		}
		f, err := tea.LogToFile(filepath.Join(dir, debugLogName), "brief")
		if err != nil {
			return fmt.Errorf("open debug log: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	ctrl := container.NewController(ctx)
	if url != "" {
		ctrl.SetInput(url)
	}
	model := tui.NewModel(ctx, ctrl, tui.Options{
		Opener:        container.Opener,
		Logger:        container.Logger,
		HistoryHeight: container.Config.UI.HistoryHeight,
	})
	return tui.Run(ctx, model)
}
