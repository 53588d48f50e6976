package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"

	"github.com/fjourdes/fullmat"
)

type runner struct {
	logger *zap.Logger
}

func (r *runner) before(c *cli.Context) error {
	logger, err := newLogger(LogLevel(c.String("log-level")))
	if err != nil {
		return errors.Wrap(err, "init logger")
	}
	r.logger = logger
	return nil
}

func (r *runner) after(c *cli.Context) error {
	if r.logger != nil {
		_ = r.logger.Sync()
	}
	return nil
}

func readOptions(c *cli.Context) []fullmat.ReadOption {
	var opts []fullmat.ReadOption
	if c.Bool("lenient") {
		opts = append(opts, fullmat.WithLenientValues())
	}
	return opts
}

func singleArg(c *cli.Context) (string, error) {
	if c.NArg() != 1 {
		return "", errors.Newf("%s: expected exactly one file, got %d", c.Command.Name, c.NArg())
	}
	return c.Args().First(), nil
}

func (r *runner) infoAction(c *cli.Context) error {
	path, err := singleArg(c)
	if err != nil {
		return err
	}

	m, err := fullmat.Read(path, readOptions(c)...)
	if err != nil {
		return err
	}

	rows, cols := m.Dims()
	fmt.Fprintf(c.App.Writer, "%s %dx%d\n", m.Kind(), rows, cols)
	return nil
}

func (r *runner) showAction(c *cli.Context) error {
	path, err := singleArg(c)
	if err != nil {
		return err
	}

	m, err := fullmat.Read(path, readOptions(c)...)
	if err != nil {
		return err
	}

	return printMatrix(c.App.Writer, m)
}

func printMatrix(w io.Writer, m fullmat.Matrix) error {
	if d, ok := m.Real(); ok {
		_, err := fmt.Fprintf(w, "%v\n", mat.Formatted(d, mat.Squeeze()))
		return err
	}

	rows, cols := m.Dims()
	for i := 0; i < rows; i++ {
		elems := make([]string, cols)
		for j := 0; j < cols; j++ {
			elems[j] = strconv.FormatComplex(m.At(i, j), 'g', -1, 128)
		}
		if _, err := fmt.Fprintln(w, strings.Join(elems, "  ")); err != nil {
			return err
		}
	}
	return nil
}

func (r *runner) checkAction(c *cli.Context) error {
	if c.NArg() == 0 {
		return errors.New("check: no files given")
	}
	return checkFiles(r.logger, c.Args().Slice(), c.Int("jobs"), readOptions(c)...)
}

func (r *runner) rewriteAction(c *cli.Context) error {
	path, err := singleArg(c)
	if err != nil {
		return err
	}

	m, err := fullmat.Read(path, readOptions(c)...)
	if err != nil {
		return err
	}

	output := c.String("output")
	r.logger.Info("rewriting", zap.String("input", path), zap.String("output", output))
	return fullmat.Write(output, m)
}

func newApp() (*cli.App, *runner) {
	r := &runner{}
	app := &cli.App{
		Name:     "fullmat",
		HelpName: "fullmat",
		Usage:    "inspect and validate full matrix text files",
		Before:   r.before,
		After:    r.after,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "lenient",
				Usage: "stop at the first non-numeric value instead of failing",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Value: string(LogLevelInfo),
				Usage: "log level (debug, info, warn, error)",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "info",
				Usage:     "print kind and dimensions",
				UsageText: "fullmat info FILE",
				Action:    r.infoAction,
			},
			{
				Name:      "show",
				Usage:     "print the matrix",
				UsageText: "fullmat show FILE",
				Action:    r.showAction,
			},
			{
				Name:      "check",
				Usage:     "validate matrix files",
				UsageText: "fullmat check [command options] FILE...",
				Action:    r.checkAction,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "jobs",
						Value: 0,
						Usage: "number of files read concurrently, 0 for one per CPU",
					},
				},
			},
			{
				Name:      "rewrite",
				Usage:     "read a matrix file and write it back in canonical form",
				UsageText: "fullmat rewrite --output OUT FILE",
				Action:    r.rewriteAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "output",
						Aliases:  []string{"o"},
						Required: true,
						Usage:    "output file",
					},
				},
			},
		},
	}

	return app, r
}

func main() {
	app, r := newApp()
	if err := app.Run(os.Args); err != nil {
		if r.logger != nil {
			r.logger.Error("fullmat failed", zap.Error(err))
			_ = r.logger.Sync()
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
