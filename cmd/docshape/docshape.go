package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/signadot/docshape/decl"
	"github.com/signadot/docshape/encode"
	"github.com/signadot/docshape/shape"
)

type MainConfig struct {
	Color   bool   `cli:"name=color desc='force color output'"`
	NoColor bool   `cli:"name=no-color desc='disable color output'"`
	Patch   string `cli:"name=patch desc='apply a json patch file to the declaration'"`

	Main *cli.Command
}

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "docshape").
		WithSynopsis("docshape [opts] command [opts]").
		WithDescription("docshape resolves paths and queries over declared document store shapes.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return docshapeMain(cfg, cc, args)
		}).
		WithSubs(
			ResolveCommand(cfg),
			GroupCommand(cfg),
			NarrowCommand(cfg),
			DiffCommand(cfg))
}

func docshapeMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Color && cfg.NoColor {
		return fmt.Errorf("%w: -color and -no-color are mutually exclusive", cli.ErrUsage)
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func (cfg *MainConfig) loadTree(file string) (*shape.Tree, error) {
	var opts []decl.Option
	if cfg.Patch != "" {
		patch, err := os.ReadFile(cfg.Patch)
		if err != nil {
			return nil, err
		}
		opts = append(opts, decl.WithPatch(patch))
	}
	tree, err := decl.ParseFile(file, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load declaration %s: %w", file, err)
	}
	return tree, nil
}

func (cfg *MainConfig) colors() *encode.Colors {
	switch {
	case cfg.Color:
		return encode.NewColors()
	case cfg.NoColor:
		return encode.NoColors()
	case isatty.IsTerminal(os.Stdout.Fd()):
		return encode.NewColors()
	}
	return encode.NoColors()
}
