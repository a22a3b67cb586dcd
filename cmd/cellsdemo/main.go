package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/AnatoleLucet/cells"
)

func main() {
	defer glog.Flush()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		initial int
		sets    []int
		detach  int
	)

	cmd := &cobra.Command{
		Use:   "cellsdemo",
		Short: "Run a small reactive cell graph",
		Long: `Build the graph

  input -> plus1 = input + 1 -> times2 = plus1 * 2

with one callback on each compute cell, set the input to each --set value
in turn, and print what every callback logged.

Pass -v=2 to trace each update.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(sets) == 0 {
				return fmt.Errorf("at least one --set value is required")
			}
			run(cmd.OutOrStdout(), initial, sets, detach)
			return nil
		},
	}

	cmd.Flags().IntVar(&initial, "initial", 1, "initial value of the input cell")
	cmd.Flags().IntSliceVar(&sets, "set", []int{31, 41}, "values to set the input to, in order")
	cmd.Flags().IntVar(&detach, "detach-after", 0, "detach the plus1 callback after this many sets (0 keeps it)")
	cmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)

	return cmd
}

func run(w io.Writer, initial int, sets []int, detach int) {
	g := cells.NewGraph(cells.WithName("demo"))

	input := cells.NewInputWith(g, initial)
	plus1 := cells.NewCompute1(input, func(v int) int { return v + 1 })
	times2 := cells.NewCompute1(plus1, func(v int) int { return v * 2 })

	logInt := func(c cells.Cell) int { return cells.Read[int](c) }
	onPlus1 := cells.NewCallback(logInt)
	onTimes2 := cells.NewCallback(logInt)
	plus1.AddCallback(onPlus1)
	times2.AddCallback(onTimes2)

	for i, v := range sets {
		if detach > 0 && i == detach {
			plus1.RemoveCallback(onPlus1)
		}
		input.SetValue(v)
		fmt.Fprintf(w, "input=%d plus1=%d times2=%d\n", input.Value(), plus1.Value(), times2.Value())
	}

	fmt.Fprintf(w, "plus1 callback:  %v\n", onPlus1.Values())
	fmt.Fprintf(w, "times2 callback: %v\n", onTimes2.Values())
}
