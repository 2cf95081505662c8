package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/lvtree/bst"
)

// ErrInvalidItem is returned when a positional argument is not an integer.
var ErrInvalidItem = errors.New("lvtree: invalid item")

// ErrNoItems is returned by commands that need at least one item.
var ErrNoItems = errors.New("lvtree: no items given")

// allOrders is the --order value that prints every traversal.
const allOrders = "all"

// reportFlags returns fresh report flags; cli flags carry parse state, so
// commands do not share instances.
func reportFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "order",
			Usage:   "traversal to print: in, pre, post, bfs or all",
			Value:   allOrders,
			EnvVars: []string{"LVTREE_ORDER"},
		},
		&cli.BoolFlag{
			Name:  "render",
			Usage: "draw the tree shape after the report",
		},
	}
}

func newBuildCommand() *cli.Command {
	return &cli.Command{
		Name:      "build",
		Usage:     "insert integer items in argument order and report on the tree",
		ArgsUsage: "<item> [<item>...]",
		Flags:     reportFlags(),
		Action: func(cctx *cli.Context) error {
			items, err := parseItems(cctx.Args().Slice())
			if err != nil {
				return err
			}
			tr := bst.New(items...)
			slog.Debug("tree built", "items", len(items), "height", tr.Height())

			return report(cctx, tr)
		},
	}
}

func newRandomCommand() *cli.Command {
	flags := []cli.Flag{
		&cli.IntFlag{
			Name:  "count",
			Usage: "number of items to insert",
			Value: 15,
		},
		&cli.Int64Flag{
			Name:    "seed",
			Usage:   "random seed; equal seeds build equal trees",
			Value:   1,
			EnvVars: []string{"LVTREE_SEED"},
		},
		&cli.IntFlag{
			Name:  "max",
			Usage: "largest item value (items are drawn from 0..max)",
			Value: 99,
		},
	}

	return &cli.Command{
		Name:  "random",
		Usage: "build a tree from seeded pseudo-random integers and report on it",
		Flags: append(flags, reportFlags()...),
		Action: func(cctx *cli.Context) error {
			count, hi, seed := cctx.Int("count"), cctx.Int("max"), cctx.Int64("seed")
			if count < 0 || hi < 0 {
				return fmt.Errorf("--count and --max must be non-negative (got %d, %d)", count, hi)
			}
			faker := gofakeit.New(seed)
			items := make([]int, count)
			for i := range items {
				items[i] = faker.Number(0, hi)
			}
			tr := bst.New(items...)
			slog.Debug("random tree built", "seed", seed, "items", count, "height", tr.Height())

			fmt.Fprintf(cctx.App.Writer, "items:    %v\n", items)
			return report(cctx, tr)
		},
	}
}

func newFindCommand() *cli.Command {
	return &cli.Command{
		Name:      "find",
		Usage:     "look an item up in a tree built from the arguments",
		ArgsUsage: "<item> [<item>...]",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:     "item",
				Usage:    "item to look up",
				Required: true,
			},
		},
		Action: func(cctx *cli.Context) error {
			items, err := parseItems(cctx.Args().Slice())
			if err != nil {
				return err
			}
			tr := bst.New(items...)
			want := cctx.Int("item")
			if v, ok := tr.Find(want); ok {
				fmt.Fprintf(cctx.App.Writer, "found %d\n", v)
				return nil
			}
			slog.Info("item not in tree", "item", want, "size", len(items))
			fmt.Fprintf(cctx.App.Writer, "%d not found\n", want)

			return nil
		},
	}
}

func newSuccessorCommand() *cli.Command {
	return &cli.Command{
		Name:      "successor",
		Usage:     "print the in-order successor of an item",
		ArgsUsage: "<item> [<item>...]",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:     "of",
				Usage:    "item whose successor is wanted",
				Required: true,
			},
		},
		Action: func(cctx *cli.Context) error {
			items, err := parseItems(cctx.Args().Slice())
			if err != nil {
				return err
			}
			if len(items) == 0 {
				return ErrNoItems
			}
			tr := bst.New(items...)
			of := cctx.Int("of")
			if v, ok := tr.Successor(of); ok {
				fmt.Fprintf(cctx.App.Writer, "%d\n", v)
				return nil
			}
			fmt.Fprintf(cctx.App.Writer, "%d has no successor\n", of)

			return nil
		},
	}
}

// parseItems converts positional arguments into integer items.
func parseItems(args []string) ([]int, error) {
	items := make([]int, 0, len(args))
	for _, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %v", ErrInvalidItem, a, err)
		}
		items = append(items, v)
	}

	return items, nil
}

// report prints the requested traversals followed by the shape analysis.
func report(cctx *cli.Context, tr *bst.Tree[int]) error {
	w := cctx.App.Writer
	orders, err := selectOrders(cctx.String("order"))
	if err != nil {
		return err
	}
	for _, o := range orders {
		fmt.Fprintf(w, "%-9s %s\n", o.String()+":", tr.Format(o))
	}
	printAnalysis(w, tr)
	if cctx.Bool("render") {
		fmt.Fprint(w, tr.Render())
	}

	return nil
}

func selectOrders(name string) ([]bst.Order, error) {
	if name == allOrders {
		return []bst.Order{bst.InOrder, bst.PreOrder, bst.PostOrder, bst.LevelOrder}, nil
	}
	o, err := bst.ParseOrder(name)
	if err != nil {
		return nil, err
	}

	return []bst.Order{o}, nil
}

func printAnalysis(w io.Writer, tr *bst.Tree[int]) {
	fmt.Fprintf(w, "size:     %d\n", tr.Len())
	fmt.Fprintf(w, "height:   %d\n", tr.Height())
	fmt.Fprintf(w, "widths:   %v\n", tr.LevelWidths())
	fmt.Fprintf(w, "balanced: %t\n", tr.Balanced())
	fmt.Fprintf(w, "valid:    %t\n", tr.IsValid())
	fmt.Fprintf(w, "strict:   %t\n", tr.IsValidStrict())
}
