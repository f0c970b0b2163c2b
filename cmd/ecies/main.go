// Command ecies is a console front end for the easyecies library: a
// demonstration of the encrypt and decrypt round trip plus key tooling.
package main

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/urfave/cli.v1"

	"github.com/regnull/easyecies/internal/config"
	"github.com/regnull/easyecies/internal/log"
)

// app carries what every command needs once flags have been parsed.
type app struct {
	cfg *config.Config
	log *log.Logger
	out io.Writer
}

func newApp(out, errOut io.Writer) *cli.App {
	a := &app{out: out}

	c := cli.NewApp()
	c.Name = "ecies"
	c.Usage = "ECIES encryption over secp256k1"
	c.Writer = out
	c.ErrWriter = errOut
	c.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config",
			Usage: "load configuration from `FILE`",
		},
		cli.StringFlag{
			Name:  "log-level",
			Usage: "override the configured log level",
		},
	}
	c.Before = func(ctx *cli.Context) error {
		opts := []config.Option{config.WithFile(ctx.GlobalString("config"))}
		if level := ctx.GlobalString("log-level"); level != "" {
			opts = append(opts, config.WithLevel(level))
		}
		cfg, err := config.Load(opts...)
		if err != nil {
			return cli.NewExitError(err.Error(), 2)
		}
		level, err := log.ParseLevel(cfg.Log.Level)
		if err != nil {
			return cli.NewExitError(err.Error(), 2)
		}
		a.cfg = cfg
		a.log = log.New(log.WithLevel(level), log.WithFormat(log.Format(cfg.Log.Format)), log.WithWriter(errOut))
		return nil
	}
	c.Commands = a.commands()
	return c
}

func main() {
	if err := newApp(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
