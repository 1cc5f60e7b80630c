package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/doeshing/brief-go/internal/app"
	"github.com/doeshing/brief-go/internal/application/view"
	"github.com/doeshing/brief-go/internal/domain"
)

// errSummaryFailed signals a non-zero exit after the failure was already printed.
var errSummaryFailed = errors.New("summary failed")

// ReportError prints err for the user unless the command already rendered it.
func ReportError(w io.Writer, err error) {
	if err == nil || errors.Is(err, errSummaryFailed) {
		return
	}
	fmt.Fprintln(w, "error:", err)
}

// SummarizeOptions mirror the summarize command's flags.
type SummarizeOptions struct {
	Fallback bool
	Copy     bool
	JSON     bool
	Timeout  time.Duration
	Spinner  bool
}

func newSummarizeCommand(container *app.Container) *cobra.Command {
	opts := SummarizeOptions{Spinner: true}

	cmd := &cobra.Command{
		Use:   "summarize <url>",
		Short: "Summarize one article and print the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := container.Ready(); err != nil {
				return err
			}
			ctrl := container.NewController(cmd.Context())
			return runSummarize(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), ctrl, args[0], opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.Fallback, "fallback", "f", false, "Store a placeholder summary if the service is unavailable")
	cmd.Flags().BoolVarP(&opts.Copy, "copy", "c", false, "Copy the summary to the clipboard")
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Print the result as JSON")
	cmd.Flags().DurationVar(&opts.Timeout, "timeout", 0, "Override request timeout (e.g. 10s)")
	return cmd
}

// runSummarize drives the controller through one submission. History hits
// are served without a network call.
func runSummarize(ctx context.Context, out, errOut io.Writer, ctrl *view.Controller, url string, opts SummarizeOptions) error {
	ctrl.SetInput(url)
	if req, needsFetch := ctrl.Submit(); needsFetch {
		fetchCtx := ctx
		if opts.Timeout > 0 {
			var cancel context.CancelFunc
			fetchCtx, cancel = context.WithTimeout(ctx, opts.Timeout)
			defer cancel()
		}

		var spinner *Spinner
		if opts.Spinner {
			spinner = NewSpinner(errOut, "Summarizing "+req.URL)
			spinner.Start()
		}
		res := ctrl.Fetch(fetchCtx, req)
		if spinner != nil {
			spinner.Stop()
		}
		ctrl.Resolve(ctx, res)
	}

	usedFallback := false
	if failed, ok := ctrl.State().(view.Failed); ok && opts.Fallback {
		if !failed.Err.OffersFallback() {
			fmt.Fprintln(errOut, "note: the service answered, so the fallback may not help")
		}
		usedFallback = ctrl.Fallback(ctx)
	}

	var err error
	switch state := ctrl.State().(type) {
	case view.Success:
		err = renderSuccess(out, errOut, ctrl, state.Article, usedFallback, opts)
	case view.Failed:
		if opts.JSON {
			if jsonErr := RenderFailureJSON(out, state.URL, state.Err); jsonErr != nil {
				return jsonErr
			}
		} else {
			RenderFailure(errOut, state.URL, state.Err)
		}
		err = errSummaryFailed
	default:
		return fmt.Errorf("no summary for %q", url)
	}

	if notice := ctrl.Notice(); notice != "" {
		fmt.Fprintln(errOut, "note:", notice)
	}
	return err
}

func renderSuccess(out, errOut io.Writer, ctrl *view.Controller, article domain.Article, fallback bool, opts SummarizeOptions) error {
	if opts.JSON {
		if err := RenderArticleJSON(out, article, fallback); err != nil {
			return err
		}
	} else {
		RenderArticle(out, article)
	}

	if opts.Copy {
		if _, err := ctrl.Copy(article.Summary); err == nil {
			fmt.Fprintln(errOut, "Summary copied to clipboard.")
		}
	}
	return nil
}
