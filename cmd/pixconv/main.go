// Command pixconv converts images between pixel layouts and inspects the
// color math behind them.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/pixconv"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "pixconv",
		Short:         "Convert pixel layouts and explore OKLab color math",
		Version:       pixconv.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			verbose, _ := cmd.Flags().GetBool("verbose")
			if verbose {
				pixconv.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
					Level: slog.LevelDebug,
				})))
			}
			threads, _ := cmd.Flags().GetInt("threads")
			if threads > 0 {
				pixconv.SetNumFilterThreads(threads)
			}
			return nil
		},
	}

	root.PersistentFlags().BoolP("verbose", "v", false, "Log diagnostics to stderr")
	root.PersistentFlags().Int("threads", 0, "Surface filter threads (0 keeps the default)")
	root.PersistentFlags().String("lang", "en", "Language tag used to format numbers")

	root.AddCommand(
		newConvertCmd(),
		newAverageCmd(),
		newScaleCmd(),
		newChromaCmd(),
		newInfoCmd(),
		newCheckerCmd(),
	)
	return root
}

// printer returns a locale-aware printer writing to the command's output.
type printer struct {
	w io.Writer
	p *message.Printer
}

func newPrinter(cmd *cobra.Command) printer {
	lang, _ := cmd.Flags().GetString("lang")
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.English
	}
	return printer{w: cmd.OutOrStdout(), p: message.NewPrinter(tag)}
}

func (pr printer) printf(format string, args ...any) {
	pr.p.Fprintf(pr.w, format, args...)
}
