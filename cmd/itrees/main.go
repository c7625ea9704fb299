// Command itrees reads an interaction-net program, reduces it to normal
// form, and prints the result.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/vic/itrees/pkg/inet"
	"github.com/vic/itrees/pkg/parser"
	"github.com/vic/itrees/pkg/printer"
)

func main() {
	app := &cli.App{
		Name:      "itrees",
		Usage:     "reduce an interaction-net program to normal form",
		ArgsUsage: "[file]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "stats",
				Usage: "print rewrite counters after reduction",
				Value: true,
			},
			&cli.BoolFlag{
				Name:  "quiet",
				Usage: "suppress the pre-reduction net dump",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	src, err := readSource(c.Args().First())
	if err != nil {
		return cli.Exit(fmt.Sprintf("itrees: %v", err), 1)
	}

	net, free, err := parser.Parse(src)
	if err != nil {
		return cli.Exit(fmt.Sprintf("itrees: parse error: %v", err), 1)
	}

	p := printer.New()
	if !c.Bool("quiet") {
		if err := p.Print(c.App.Writer, free, net); err != nil {
			return cli.Exit(fmt.Sprintf("itrees: %v", err), 1)
		}
		fmt.Fprintln(c.App.Writer, "---")
	}

	net.Reduce()

	if err := p.Print(c.App.Writer, free, net); err != nil {
		return cli.Exit(fmt.Sprintf("itrees: %v", err), 1)
	}

	if c.Bool("stats") {
		printStats(c.App.Writer, net)
	}
	return nil
}

func printStats(w io.Writer, net *inet.Net) {
	s := net.Stats()
	fmt.Fprintf(w, "annihilations: %d\n", s.Annihilations)
	fmt.Fprintf(w, "commutations:  %d\n", s.Commutations)
	fmt.Fprintf(w, "erasures:      %d\n", s.Erasures)
	fmt.Fprintf(w, "grafts:        %d\n", s.Grafts)
	fmt.Fprintf(w, "elapsed:       %v\n", s.Elapsed)
}

func readSource(path string) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}
