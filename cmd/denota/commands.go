// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/denota/module"
	"github.com/katalvlaran/denota/numtheory"
	"github.com/katalvlaran/denota/project"
	"github.com/katalvlaran/denota/sets"
	"github.com/katalvlaran/denota/traverse"
	"github.com/katalvlaran/denota/yoneda"
)

// app carries the flags and writers shared by all subcommands.
type app struct {
	out, errOut io.Writer
	projectPath string
	verbose     bool
	logger      *slog.Logger
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{out: stdout, errOut: stderr}
	root := &cobra.Command{
		Use:           "denota",
		Short:         "Inspect and combine denotators of a project file",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			level := slog.LevelWarn
			if a.verbose {
				level = slog.LevelDebug
			}
			a.logger = slog.New(slog.NewTextHandler(a.errOut, &slog.HandlerOptions{Level: level}))
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.PersistentFlags().StringVarP(&a.projectPath, "project", "p", "", "project file (YAML)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging on stderr")

	root.AddCommand(
		a.formsCmd(),
		a.showCmd(),
		a.selectCmd(),
		a.setCmd(),
		a.foldCmd(),
		primeCmd(stdout),
	)

	return root
}

func (a *app) load() (*project.Project, error) {
	if a.projectPath == "" {
		return nil, fmt.Errorf("no project file: use --project")
	}
	p, err := project.LoadFile(a.projectPath, project.WithLogger(a.logger))
	if err != nil {
		return nil, failed(err)
	}

	return p, nil
}

func (a *app) denotator(p *project.Project, name string) (*yoneda.Denotator, error) {
	d, err := p.Denotator(name)

	return d, failed(err)
}

func (a *app) formsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "forms",
		Short: "List the forms of the project",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			p, err := a.load()
			if err != nil {
				return err
			}
			for _, f := range p.Registry().Forms() {
				fmt.Fprintln(a.out, f)
			}
			return nil
		},
	}
}

func (a *app) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>...",
		Short: "Print denotators",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			p, err := a.load()
			if err != nil {
				return err
			}
			for _, name := range args {
				d, err := a.denotator(p, name)
				if err != nil {
					return err
				}
				fmt.Fprintln(a.out, d)
			}
			return nil
		},
	}
}

func (a *app) selectCmd() *cobra.Command {
	var (
		formName string
		maxDepth int
	)
	cmd := &cobra.Command{
		Use:   "select <name> --form <form>",
		Short: "Print the nodes of a denotator having a form",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			p, err := a.load()
			if err != nil {
				return err
			}
			d, err := a.denotator(p, args[0])
			if err != nil {
				return err
			}
			f, err := p.Registry().Form(formName)
			if err != nil {
				return failed(err)
			}
			got, err := traverse.Select(d, nil,
				traverse.WithForm(f), traverse.WithMaxDepth(maxDepth), traverse.WithLogger(a.logger))
			if err != nil {
				return failed(err)
			}
			for _, n := range got {
				fmt.Fprintln(a.out, n)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&formName, "form", "", "form name to select")
	cmd.Flags().IntVar(&maxDepth, "max-depth", -1, "fail below this nesting depth (-1: unlimited)")
	_ = cmd.MarkFlagRequired("form")

	return cmd
}

var setOps = map[string]func(a, b *yoneda.Denotator, opts ...sets.Option) (*yoneda.Denotator, error){
	"union":        sets.Union,
	"intersection": sets.Intersection,
	"difference":   sets.Difference,
	"symmetric":    sets.SymmetricDifference,
	"concat":       sets.Concat,
}

func (a *app) setCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "set <union|intersection|difference|symmetric|concat> <a> <b>",
		Short:     "Combine two Power (or List, for concat) denotators",
		ValidArgs: []string{"union", "intersection", "difference", "symmetric", "concat"},
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.ExactArgs(3)(cmd, args); err != nil {
				return err
			}
			if _, ok := setOps[args[0]]; !ok {
				return fmt.Errorf("unknown set operation %q", args[0])
			}
			return nil
		},
		RunE: func(_ *cobra.Command, args []string) error {
			p, err := a.load()
			if err != nil {
				return err
			}
			x, err := a.denotator(p, args[1])
			if err != nil {
				return err
			}
			y, err := a.denotator(p, args[2])
			if err != nil {
				return err
			}
			out, err := setOps[args[0]](x, y)
			if err != nil {
				return failed(err)
			}
			fmt.Fprintln(a.out, out)
			return nil
		},
	}
}

func (a *app) foldCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fold <name>",
		Short: "Fold the string-valued elements of a Power or List onto the real line",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			p, err := a.load()
			if err != nil {
				return err
			}
			d, err := a.denotator(p, args[0])
			if err != nil {
				return err
			}
			if k := d.Kind(); k != yoneda.Power && k != yoneda.List {
				return failed(fmt.Errorf("fold %s: %s denotator, need Power or List", args[0], k))
			}
			elems := make([]module.Element, 0, d.Len())
			for _, f := range d.Factors() {
				if f.Element() == nil {
					return failed(fmt.Errorf("fold %s: element %s is not simple", args[0], f.Form().Name()))
				}
				elems = append(elems, f.Element())
			}
			xs, err := module.Fold(elems)
			if err != nil {
				return failed(err)
			}
			for i, x := range xs {
				fmt.Fprintf(a.out, "%s\t%s\n", elems[i], strconv.FormatFloat(x, 'g', -1, 64))
			}
			return nil
		},
	}
}

func primeCmd(out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "prime <n>",
		Short: "Report whether n is prime",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			n, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("prime: %q is not an integer", args[0])
			}
			if numtheory.IsPrime(n) {
				fmt.Fprintf(out, "%d prime\n", n)
			} else {
				fmt.Fprintf(out, "%d not prime\n", n)
			}
			return nil
		},
	}
}
