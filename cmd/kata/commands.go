package main

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/kata/braces"
	"github.com/katalvlaran/kata/compass"
	"github.com/katalvlaran/kata/domino"
	"github.com/katalvlaran/kata/ranges"
	"github.com/katalvlaran/kata/zigzag"
)

// newCompassCmd prints the rose, or the point nearest to a bearing.
func newCompassCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "compass [azimuth]",
		Short: "Print the 32 compass points, or the point nearest to an azimuth",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			points := compass.Points()
			if len(args) == 1 {
				az, err := strconv.ParseFloat(args[0], 64)
				if err != nil {
					return fmt.Errorf("azimuth %q: %w", args[0], err)
				}
				p, err := compass.Nearest(az)
				if err != nil {
					return err
				}
				points = []compass.Point{p}
				a.logger.Debug("nearest compass point", zap.Float64("azimuth", az), zap.String("point", points[0].Abbreviation))
			}

			return a.render(cmd.OutOrStdout(), points, func(w io.Writer) error {
				for _, p := range points {
					if _, err := fmt.Fprintf(w, "%-5s %6.2f\n", p.Abbreviation, p.Azimuth); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
}

// newBracesCmd expands one pattern.
func newBracesCmd(a *app) *cobra.Command {
	var sorted bool
	cmd := &cobra.Command{
		Use:   "braces <pattern>",
		Short: "Expand shell-style {a,b} groups",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()
			var out []string
			if sorted {
				var err error
				if out, err = braces.ExpandAll(args[0]); err != nil {
					return err
				}
			} else {
				if err := braces.Validate(args[0]); err != nil {
					a.logger.Warn("pattern has unbalanced braces, keeping them literally", zap.Error(err))
				}
				out = slices.Collect(braces.Expand(args[0]))
			}
			a.logger.Debug("expanded braces",
				zap.String("pattern", args[0]),
				zap.Int("results", len(out)),
				zap.Duration("elapsed", time.Since(start)))

			return a.render(cmd.OutOrStdout(), out, func(w io.Writer) error {
				_, err := fmt.Fprintln(w, strings.Join(out, "\n"))
				return err
			})
		},
	}
	cmd.Flags().BoolVar(&sorted, "sorted", false, "reject unbalanced braces and sort the results")

	return cmd
}

// newZigzagCmd prints an n×n zig-zag grid.
func newZigzagCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "zigzag <n>",
		Short: "Print the n×n zig-zag traversal matrix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("size %q: %w", args[0], err)
			}
			grid, err := zigzag.Matrix(n)
			if err != nil {
				return err
			}
			a.logger.Debug("built zigzag matrix", zap.Int("n", n))

			width := len(strconv.Itoa(n*n - 1))
			return a.render(cmd.OutOrStdout(), grid, func(w io.Writer) error {
				for _, row := range grid {
					cells := lo.Map(row, func(v int, _ int) string { return fmt.Sprintf("%*d", width, v) })
					if _, err := fmt.Fprintln(w, strings.Join(cells, " ")); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
}

// dominoReport is the result of the domino subcommand.
type dominoReport struct {
	CanMakeRow bool     `yaml:"canMakeRow"`
	Row        []string `yaml:"row,omitempty"`
	Placements int      `yaml:"placements"`
}

// parseTile reads "a:b".
func parseTile(s string) (domino.Tile, error) {
	left, right, ok := strings.Cut(s, ":")
	if !ok {
		return domino.Tile{}, fmt.Errorf("tile %q: want a:b", s)
	}
	a, err := strconv.Atoi(left)
	if err != nil {
		return domino.Tile{}, fmt.Errorf("tile %q: %w", s, err)
	}
	b, err := strconv.Atoi(right)
	if err != nil {
		return domino.Tile{}, fmt.Errorf("tile %q: %w", s, err)
	}

	return domino.Tile{a, b}, nil
}

// newDominoCmd searches for a row through the given tiles.
func newDominoCmd(a *app) *cobra.Command {
	var timeout time.Duration
	cmd := &cobra.Command{
		Use:   "domino <a:b>...",
		Short: "Check whether the tiles can be laid out in one row",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tiles := make([]domino.Tile, 0, len(args))
			for _, arg := range args {
				t, err := parseTile(arg)
				if err != nil {
					return err
				}
				tiles = append(tiles, t)
			}

			ctx := cmd.Context()
			if timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}

			start := time.Now()
			res, err := domino.Arrange(tiles, domino.WithContext(ctx))
			if err != nil {
				return err
			}
			// the degree cross-check only runs when debug output is enabled
			if ce := a.logger.Check(zapcore.DebugLevel, "domino search finished"); ce != nil {
				ce.Write(
					zap.Int("tiles", len(tiles)),
					zap.Int("placements", res.Placements),
					zap.Bool("found", res.Found()),
					zap.Bool("feasible", domino.Feasible(tiles)),
					zap.Duration("elapsed", time.Since(start)))
			}

			report := dominoReport{
				CanMakeRow: res.Found(),
				Row:        lo.Map(res.Row, func(t domino.Tile, _ int) string { return t.String() }),
				Placements: res.Placements,
			}

			return a.render(cmd.OutOrStdout(), report, func(w io.Writer) error {
				if !report.CanMakeRow {
					_, err := fmt.Fprintln(w, "no row")
					return err
				}
				_, err := fmt.Fprintln(w, strings.Join(report.Row, " "))
				return err
			})
		},
	}
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "abort the search after this long (0 = no limit)")

	return cmd
}

// newRangesCmd formats integers in range notation, or parses it back.
func newRangesCmd(a *app) *cobra.Command {
	var parse bool
	cmd := &cobra.Command{
		Use:   "ranges [--parse] [--] <int>...",
		Short: "Collapse increasing integers to range notation (or expand it with --parse)",
		Long: `Collapse increasing integers to range notation, or expand notation back
with --parse.

Arguments starting with '-' are read as flags; put negative numbers after
the -- separator:

  kata ranges -- -3 -2 -1 4
  kata ranges --parse -- -6--3,5`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if parse {
				nums, err := ranges.Parse(strings.Join(args, ","))
				if err != nil {
					return err
				}
				return a.render(cmd.OutOrStdout(), nums, func(w io.Writer) error {
					strs := lo.Map(nums, func(v int, _ int) string { return strconv.Itoa(v) })
					_, err := fmt.Fprintln(w, strings.Join(strs, " "))
					return err
				})
			}

			nums := make([]int, 0, len(args))
			for _, arg := range args {
				v, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("number %q: %w", arg, err)
				}
				nums = append(nums, v)
			}
			if err := ranges.Validate(nums); err != nil {
				a.logger.Warn("input is not strictly increasing", zap.Error(err))
			}

			out := ranges.Extract(nums)
			return a.render(cmd.OutOrStdout(), out, func(w io.Writer) error {
				_, err := fmt.Fprintln(w, out)
				return err
			})
		},
	}
	cmd.Flags().BoolVar(&parse, "parse", false, "treat the arguments as range notation and expand it")

	return cmd
}
