package main

import (
	"errors"

	"github.com/rybkr/termkit/internal/cli"
	"github.com/rybkr/termkit/internal/prompt"
)

func (a *app) askCommand() *cli.Command {
	c := a.command("ask", "ask a few questions", func(c *cli.Command) error {
		return a.ask(c.Bool("secret"))
	})
	mustOption(c, "--secret", "also ask for a password")
	return c
}

func (a *app) ask(secret bool) error {
	p := prompt.New(a.stdin, a.stdout)

	name, err := p.Prompt("what is your name", "gopher")
	if err != nil {
		return err
	}
	likes, err := p.Confirm("do you like Go", true)
	if err != nil {
		return err
	}
	color, err := p.Choose("favorite color", []prompt.Choice{
		{Key: "r", Label: "red"},
		{Key: "g", Label: "green"},
		{Key: "b", Label: "blue"},
	}, "g")
	switch {
	case errors.Is(err, prompt.ErrNoChoice):
		a.log.Warn("no color chosen")
	case err != nil:
		return err
	}

	if secret {
		pw, err := p.Password("password", "")
		if err != nil {
			return err
		}
		a.log.Info("password has", len(pw), "characters")
	}

	a.log.Start("answers")
	a.log.Info("name:", name)
	a.log.Info("likes Go:", likes)
	if color != "" {
		a.log.Info("color:", color)
	}
	a.log.End()
	return nil
}
