package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dsablic/skylens/internal/fetcher"
	"github.com/dsablic/skylens/internal/identity"
	"github.com/dsablic/skylens/internal/model"
	"github.com/dsablic/skylens/internal/output"
	"github.com/dsablic/skylens/internal/report"
	"github.com/dsablic/skylens/internal/ui"
)

func main() {
	root := &cobra.Command{
		Use:   "skylens",
		Short: "Generate an analytics report for a decentralized social account",
	}

	root.AddCommand(newAnalyzeCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [handle]",
		Short: "Resolve a handle and produce its account analytics report",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runAnalyze,
	}
	cmd.Flags().String("format", "text", "Output format (text, json, markdown)")
	cmd.Flags().String("out", "", "Write the report to a file instead of stdout")
	cmd.Flags().String("appview", "", "AppView base URL (default from SKYLENS_APPVIEW_URL)")
	cmd.Flags().String("plc", "", "PLC directory base URL (default from SKYLENS_PLC_URL)")
	cmd.Flags().Bool("no-progress", false, "Disable the progress display")
	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	handle, err := resolveHandleArg(args)
	if err != nil {
		return err
	}

	format, _ := cmd.Flags().GetString("format")
	outPath, _ := cmd.Flags().GetString("out")
	noProgress, _ := cmd.Flags().GetBool("no-progress")

	opts := report.Options{
		AppViewURL: flagOrEnv(cmd, "appview", "SKYLENS_APPVIEW_URL"),
		PLCURL:     flagOrEnv(cmd, "plc", "SKYLENS_PLC_URL"),
	}

	httpClient := &http.Client{
		Transport: &fetcher.RateLimitTransport{ReqPerSec: 10},
	}

	rep, err := produce(cmd.Context(), httpClient, handle, opts, noProgress)
	if err != nil {
		var rerr *identity.ResolutionError
		if errors.As(err, &rerr) && format == "json" {
			return output.WriteFailure(os.Stdout, "could not resolve "+handle, rerr)
		}
		return err
	}

	w := os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	switch format {
	case "json":
		return output.WriteJSON(w, rep)
	case "markdown":
		return output.WriteMarkdown(w, rep)
	case "text":
		return output.WriteText(w, rep, stdoutWidth())
	default:
		return fmt.Errorf("unsupported format: %s (use text, json, or markdown)", format)
	}
}

// produce runs the pipeline with either the TUI or plain progress display.
func produce(ctx context.Context, httpClient *http.Client, handle string, opts report.Options, noProgress bool) (*model.Report, error) {
	if noProgress || !ui.IsTTY() {
		opts.Print = func(s string) { fmt.Fprintln(os.Stderr, s) }
		if noProgress {
			return report.Produce(ctx, httpClient, handle, opts)
		}

		plain := ui.NewPlainProgress(opts.Print)
		opts.OnStage = plain.Stage
		pages := 0
		opts.OnProgress = func(p int) { pages = p }
		rep, err := report.Produce(ctx, httpClient, handle, opts)
		if err == nil {
			plain.Done(pages)
		}
		return rep, err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	prog := ui.RunTUI()
	opts.OnStage = func(done, total int, stage string) {
		prog.Send(ui.StageMsg{Done: done, Total: total, Stage: stage})
	}
	opts.OnProgress = func(pages int) {
		prog.Send(ui.PagesMsg{Pages: pages})
	}

	// rep and perr are read only after done is closed, which happens
	// before DoneMsg is sent.
	var rep *model.Report
	var perr error
	done := make(chan struct{})
	go func() {
		rep, perr = report.Produce(ctx, httpClient, handle, opts)
		close(done)
		prog.Send(ui.DoneMsg{})
	}()

	final, err := prog.Run()
	if err != nil {
		return nil, err
	}
	if m, ok := final.(ui.Model); ok && !m.Finished() {
		return nil, errors.New("analysis canceled")
	}
	<-done
	return rep, perr
}

// resolveHandleArg takes the handle from the arguments or, on a TTY,
// prompts for one.
func resolveHandleArg(args []string) (string, error) {
	var handle string
	if len(args) > 0 {
		handle = args[0]
	} else if ui.IsTTY() {
		form := huh.NewForm(huh.NewGroup(
			huh.NewInput().
				Title("Account handle").
				Description("e.g. someone.bsky.social").
				Value(&handle),
		))
		if err := form.Run(); err != nil {
			return "", err
		}
	}

	handle = strings.TrimSpace(strings.TrimPrefix(handle, "@"))
	if handle == "" {
		return "", fmt.Errorf("a handle is required")
	}
	return handle, nil
}

func flagOrEnv(cmd *cobra.Command, flag, env string) string {
	if v, _ := cmd.Flags().GetString(flag); v != "" {
		return v
	}
	return os.Getenv(env)
}

func stdoutWidth() int {
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		return width
	}
	return 80
}
