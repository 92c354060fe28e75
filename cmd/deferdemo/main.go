package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/AhmadAlHallak/defer-go/internal/cleaner"
	"github.com/AhmadAlHallak/defer-go/internal/log"
	"github.com/AhmadAlHallak/defer-go/pkg/defers"
)

const version = "0.1.0"

func main() {
	app := cli.NewApp()
	app.Name = "deferdemo"
	app.Usage = "demonstrates the defer-go primitives"
	app.Version = version
	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "enable debug logging",
		},
	}
	app.Before = func(c *cli.Context) error {
		if c.Bool("verbose") {
			logrus.SetLevel(logrus.DebugLevel)
		}

		return nil
	}
	app.Commands = []*cli.Command{
		{
			Name:   "order",
			Usage:  "show the drain order of pushed and added actions",
			Action: orderDemo,
		},
		{
			Name:   "capture",
			Usage:  "show eager and lazy argument capture",
			Action: captureDemo,
		},
		{
			Name:   "cleanup",
			Usage:  "show retried teardown with an injected flaky step",
			Action: cleanupDemo,
		},
	}

	if err := app.Run(os.Args); err != nil {
		logrus.Fatal(err)
	}
}

func orderDemo(*cli.Context) error {
	g := defers.NewGroup()
	defer g.Run()

	g.Push(func() { fmt.Println("pushed first") })
	g.Push(func() { fmt.Println("pushed second") })
	g.Add(func() { fmt.Println("added first") })
	g.Add(func() { fmt.Println("added second") })

	fmt.Println("scope ends, drain order follows:")

	return nil
}

func captureDemo(*cli.Context) error {
	print := func(s string) { fmt.Println(s) }

	g := defers.NewGroup()
	defer g.Run()

	x := 0
	g.Push(defers.Call(print, fmt.Sprintf("x at registration: %d", x)))
	g.Push(func() { print(fmt.Sprintf("x at execution: %d", x)) })
	x = 3

	return nil
}

func cleanupDemo(*cli.Context) error {
	ctx := log.WithFields(context.Background(),
		logrus.Fields{"demo": "cleanup"})

	teardown := cleaner.New()
	teardown.Add(ctx, "remove scratch directory", func() error {
		log.Infof(ctx, "Scratch directory removed")

		return nil
	})

	attempts := 0
	teardown.Add(ctx, "release flaky lock", func() error {
		attempts++
		if attempts < 3 {
			return errors.New("lock still held")
		}
		log.Infof(ctx, "Lock released after %d attempts", attempts)

		return nil
	})

	return teardown.Cleanup()
}
