package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/doeshing/brief-go/internal/app"
	"github.com/doeshing/brief-go/internal/domain"
	"github.com/doeshing/brief-go/internal/infrastructure/cli/helpers"
	"github.com/doeshing/brief-go/internal/infrastructure/export"
)

// NewHistoryCommand creates the history command with all subcommands
func NewHistoryCommand(container *app.Container) *cobra.Command {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect summarized articles",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return container.Ready()
		},
	}

	historyCmd.AddCommand(
		newHistoryListCommand(container),
		newHistoryShowCommand(container),
		newHistoryClearCommand(container),
		newHistoryExportCommand(container),
		newHistoryPathCommand(container),
	)

	return historyCmd
}

func newHistoryListCommand(container *app.Container) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent articles, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit < 0 {
				return errors.New(ErrInvalidLimit)
			}
			return listHistoryEntries(cmd.Context(), cmd.OutOrStdout(), container, limit)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", domain.DefaultHistoryLimit, "Max entries to show (0 for all)")
	return cmd
}

func newHistoryShowCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "show <url>",
		Short: "Print the stored summary for a URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return showHistoryEntry(cmd.Context(), cmd.OutOrStdout(), container, args[0])
		},
	}
}

func newHistoryClearCommand(container *app.Container) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all stored articles",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if !yes && !helpers.PromptForConfirmation(out, bufio.NewReader(cmd.InOrStdin()), "Delete all stored articles?") {
				fmt.Fprintln(out, MsgClearCancelled)
				return nil
			}
			return clearHistory(cmd.Context(), out, container)
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip confirmation")
	return cmd
}

func newHistoryExportCommand(container *app.Container) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "export <path>",
		Short: "Export history as JSON, Markdown or HTML (use - for stdout)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return exportHistory(cmd.Context(), cmd.OutOrStdout(), container, args[0], format)
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "json, markdown or html (default: from file extension)")
	return cmd
}

func newHistoryPathCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Show where history is stored",
		RunE: func(cmd *cobra.Command, args []string) error {
			if container.HistoryStore == nil {
				return errors.New(ErrHistoryStoreUnavailable)
			}
			fmt.Fprintln(cmd.OutOrStdout(), container.HistoryStore.Location())
			return nil
		},
	}
}

func listHistoryEntries(ctx context.Context, out io.Writer, container *app.Container, limit int) error {
	if container.HistoryStore == nil {
		return errors.New(ErrHistoryStoreUnavailable)
	}

	articles := container.HistoryStore.Load(ctx)
	if len(articles) == 0 {
		fmt.Fprintln(out, MsgNoHistoryRecorded)
		return nil
	}

	shown := articles
	if limit > 0 && len(shown) > limit {
		shown = shown[:limit]
	}
	for i, article := range shown {
		fmt.Fprintf(out, "%d. %s\n   %s\n", i+1, article.URL, preview(article.Summary, SummaryPreviewWidth))
	}
	if len(shown) < len(articles) {
		fmt.Fprintf(out, "Showing %s of %s articles.\n",
			humanize.Comma(int64(len(shown))), humanize.Comma(int64(len(articles))))
	}
	return nil
}

func showHistoryEntry(ctx context.Context, out io.Writer, container *app.Container, url string) error {
	if container.HistoryStore == nil {
		return errors.New(ErrHistoryStoreUnavailable)
	}

	article, ok := domain.FindByURL(container.HistoryStore.Load(ctx), url)
	if !ok {
		return fmt.Errorf("%s: %w", url, domain.ErrEntryNotFound)
	}
	fmt.Fprintf(out, "%s\n\n%s\n", article.URL, article.Summary)
	return nil
}

func clearHistory(ctx context.Context, out io.Writer, container *app.Container) error {
	if container.HistoryStore == nil {
		return errors.New(ErrHistoryStoreUnavailable)
	}

	if err := container.HistoryStore.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	fmt.Fprintln(out, MsgHistoryCleared)
	return nil
}

func exportHistory(ctx context.Context, out io.Writer, container *app.Container, path, formatName string) error {
	if container.HistoryStore == nil {
		return errors.New(ErrHistoryStoreUnavailable)
	}

	format := export.FormatForPath(path)
	if formatName != "" {
		parsed, err := export.ParseFormat(formatName)
		if err != nil {
			return err
		}
		format = parsed
	}

	articles := container.HistoryStore.Load(ctx)
	if path == "-" {
		return export.Write(out, articles, format)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, domain.SecureFilePermissions)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := export.Write(f, articles, format); err != nil {
		f.Close()
		return fmt.Errorf("failed to export history to %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to export history to %s: %w", path, err)
	}

	fmt.Fprintf(out, "Exported %s articles to %s (%s).\n", humanize.Comma(int64(len(articles))), path, format)
	return nil
}

// preview collapses whitespace and shortens s to width runes.
func preview(s string, width int) string {
	s = strings.Join(strings.Fields(s), " ")
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-1]) + "…"
}
