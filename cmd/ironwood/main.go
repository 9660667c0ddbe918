// Package main provides the ironwood demo CLI: an interactive playground
// and a stress harness for the B-tree index core.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"
)

const version = "0.1.0"

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newApp builds the CLI. Separated from main() to facilitate testing.
func newApp() *cli.App {
	orderFlag := cli.IntFlag{
		Name:  "order, M",
		Value: 4,
		Usage: "tree order: maximum children per node, at least 3",
	}

	app := cli.NewApp()
	app.Name = "ironwood"
	app.Usage = "playground for the ironwood B-tree index core"
	app.Version = version
	app.Flags = []cli.Flag{orderFlag}
	app.Action = replAction
	app.Commands = []cli.Command{
		{
			Name:   "repl",
			Usage:  "interactive session against a single tree (default)",
			Flags:  []cli.Flag{orderFlag},
			Action: replAction,
		},
		{
			Name:  "stress",
			Usage: "run a seeded random workload, checking invariants after every operation",
			Flags: []cli.Flag{
				orderFlag,
				cli.IntFlag{
					Name:  "ops, n",
					Value: 100000,
					Usage: "number of random operations",
				},
				cli.Int64Flag{
					Name:  "seed",
					Value: 1,
					Usage: "random seed",
				},
				cli.IntFlag{
					Name:  "keyspace",
					Value: 10000,
					Usage: "keys are drawn from [0, keyspace)",
				},
			},
			Action: stressAction,
		},
	}
	return app
}

// orderOf reads the order flag from either the command or the app scope.
func orderOf(c *cli.Context) int {
	if order := c.Int("order"); order != 0 {
		return order
	}
	return c.GlobalInt("order")
}
