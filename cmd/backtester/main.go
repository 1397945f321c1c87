package main

import (
	"fmt"
	"os"

	"github.com/quantfoundry/backtester/backtest"
	"github.com/quantfoundry/backtester/config"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "backtester",
		Usage: "run an event driven backtest from a config file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to the run definition file",
				Value:   "config.yaml",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "enable debug logging",
			},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	if c.Bool("verbose") {
		log.SetLevel(log.DebugLevel)
	}

	cfg, err := config.ReadConfigFromFile(c.String("config"))
	if err != nil {
		return fmt.Errorf("could not load config: %w", err)
	}

	bt, err := backtest.NewFromConfig(cfg)
	if err != nil {
		return fmt.Errorf("could not set up backtest: %w", err)
	}

	if err = bt.Run(); err != nil {
		return fmt.Errorf("backtest run failed: %w", err)
	}

	bt.PrintResults()
	return nil
}
