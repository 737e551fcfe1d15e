// Command hwidth computes the fractional hypertree width and/or
// submodular width of a HyperBench .hg hypergraph file.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/cem-okulmus/hwidth/lib"
	"github.com/cem-okulmus/hwidth/width"
)

var (
	graphPath string
	verbose   bool
	fdFlags   []string
)

func newLogger() zerolog.Logger {
	if !verbose {
		return zerolog.Nop()
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
}

func loadGraph() (*lib.Hypergraph[string], []lib.FD[string], error) {
	dat, err := os.ReadFile(graphPath)
	if err != nil {
		return nil, nil, err
	}
	return lib.ParseHypergraph(string(dat), lib.WithLogger[string](newLogger()))
}

func parseFDFlag(h *lib.Hypergraph[string], raw string) (lib.FD[string], error) {
	var xPart, yPart string
	for i := 0; i < len(raw); i++ {
		if raw[i] == ':' {
			xPart, yPart = raw[:i], raw[i+1:]
			break
		}
	}
	x := splitComma(xPart)
	y := splitComma(yPart)
	return lib.NewFD[string](h, x, y)
}

func splitComma(s string) []string {
	var out []string
	start := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == ',' {
			if i > start {
				out = append(out, s[start:i])
			}
			start = i + 1
		}
	}
	return out
}

func runFHTW(cmd *cobra.Command, args []string) error {
	h, _, err := loadGraph()
	if err != nil {
		return err
	}
	w, err := width.FractionalHypertreeWidth(h)
	if err != nil {
		return err
	}
	fmt.Printf("fhtw: %.6f\n", w)
	return nil
}

func runSUBW(cmd *cobra.Command, args []string) error {
	h, parsedFDs, err := loadGraph()
	if err != nil {
		return err
	}

	fds := parsedFDs
	for _, raw := range fdFlags {
		fd, err := parseFDFlag(h, raw)
		if err != nil {
			return err
		}
		fds = append(fds, fd)
	}

	w, err := width.SubmodularWidth(h, fds)
	if err != nil {
		return err
	}
	fmt.Printf("subw: %.6f\n", w)
	return nil
}

func main() {
	root := &cobra.Command{
		Use:   "hwidth",
		Short: "Compute fractional hypertree width and submodular width of a hypergraph",
	}
	root.PersistentFlags().StringVar(&graphPath, "graph", "", "path to a HyperBench .hg hypergraph file")
	root.PersistentFlags().BoolVar(&verbose, "verbose", false, "log coarse progress to stderr")
	root.MarkPersistentFlagRequired("graph")

	fhtwCmd := &cobra.Command{
		Use:   "fhtw",
		Short: "Compute the fractional hypertree width",
		RunE:  runFHTW,
	}

	subwCmd := &cobra.Command{
		Use:   "subw",
		Short: "Compute the submodular width",
		RunE:  runSUBW,
	}
	subwCmd.Flags().StringArrayVar(&fdFlags, "fd", nil, "functional dependency X:Y, vertices comma separated (repeatable)")

	root.AddCommand(fhtwCmd, subwCmd)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
