// Command mj is a command line JSON prettier: it reads a JSON document from
// a file or standard input and prints it indented, minimized, or colorized.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/amterp/mj"
)

var opts struct {
	color    bool
	minimize bool
	indent   int
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mj [FILE]",
		Short: "Command line JSON minimum prettier",
		Long: `mj pretty-prints JSON read from FILE, or from standard input
when no file is given.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}
	cmd.Flags().BoolVarP(&opts.color, "color", "c", false, "Color JSON output")
	cmd.Flags().BoolVarP(&opts.minimize, "minimize", "m", false, "Minimize JSON output")
	cmd.Flags().IntVar(&opts.indent, "indent", mj.DefaultIndent, "Spaces per indent level")
	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	input, err := readInput(args)
	if err != nil {
		return err
	}

	value, err := mj.Parse(string(input))
	if err != nil {
		return errors.WithMessage(err, "invalid JSON")
	}

	f := &mj.Formatter{
		Minify: opts.minimize,
		Color:  useColor(),
		Indent: opts.indent,
	}

	out := io.Writer(os.Stdout)
	if f.Color {
		out = colorable.NewColorableStdout()
	}
	if err := f.Format(out, value); err != nil {
		return errors.Wrap(err, "write output")
	}
	_, err = fmt.Fprintln(out)
	return err
}

func readInput(args []string) ([]byte, error) {
	if len(args) == 1 {
		b, err := os.ReadFile(args[0])
		return b, errors.Wrapf(err, "read %s", args[0])
	}
	b, err := io.ReadAll(os.Stdin)
	return b, errors.Wrap(err, "read stdin")
}

// useColor honors --color only when stdout is a terminal; the engine itself
// emits ANSI codes unconditionally once color is on.
func useColor() bool {
	if !opts.color {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

func main() {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}
