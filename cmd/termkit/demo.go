package main

import (
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/rybkr/termkit/internal/cli"
)

// logArgs are the flags of the log command.
type logArgs struct {
	Verbose bool `help:"show verbose messages"`
	Quiet   bool `help:"show only warnings and errors"`
	Files   int  `default:"2" help:"number of files to build"`
}

func (a *app) logCommand() *cli.Command {
	var c *cli.Command
	c, err := cli.FromFunc("log", "show nested log output", func(args logArgs) error {
		if err := a.setup(c); err != nil {
			return err
		}
		a.buildDemo(args.Files)
		return nil
	}, cli.WithOutput(a.stdout, a.stderr), cli.WithStrict())
	if err != nil {
		panic(err)
	}
	a.addGlobalOptions(c)
	return c
}

// buildDemo logs a pretend build of n files, nested two levels deep.
func (a *app) buildDemo(n int) {
	log := a.log
	log.Start("termkit build")
	for i := 0; i < n; i++ {
		name := fmt.Sprintf("file%d.go", i+1)
		log.Info("build", name)
		log.Debug("read file", name)
		log.Verbose().Info("cache miss for", name)
	}
	log.Warn("not found: termkit.yaml")

	log.Start("sub read")
	slog.Info("parse file1.go", "lines", 42)
	slog.Debug("tokens", "count", 311)
	log.End("parse end")

	log.Error("syntax error")
	log.End("end build")
	log.Info(fmt.Sprintf("%d warnings, %d errors", log.WarnCount(), log.ErrorCount()))
}

func (a *app) progressCommand() *cli.Command {
	c := a.command("progress", "draw a progress bar", func(c *cli.Command) error {
		total, _ := c.Get("total").(int)
		return a.progressDemo(total)
	})
	if err := c.Option("-t, --total [n]", "number of steps, default: 20",
		cli.WithDefault(20),
		cli.WithResolve(func(s string) (any, error) {
			n, err := strconv.Atoi(s)
			if err != nil || n <= 0 {
				return nil, fmt.Errorf("total must be a positive integer, got %q", s)
			}
			return n, nil
		}),
	); err != nil {
		panic(err)
	}
	return c
}

func (a *app) progressDemo(total int) error {
	a.log.Start("downloading")
	for i := 0; i <= total; i++ {
		if err := a.log.Progress(i, total, false); err != nil {
			return err
		}
		if i < total {
			time.Sleep(a.tick)
		}
	}
	a.log.End("done")
	return nil
}
