package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/docshape/encode"
	"github.com/signadot/docshape/resolve"
)

type GroupConfig struct {
	*MainConfig
	Group *cli.Command
}

func GroupCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GroupConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Group, "group").
		WithAliases("g").
		WithSynopsis("group <decl-file> <name>").
		WithDescription("resolve a collection group: every collection with the name, anywhere").
		WithRun(func(cc *cli.Context, args []string) error {
			return groupRun(cfg, cc, args)
		})
}

func groupRun(cfg *GroupConfig, cc *cli.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: group requires 2 arguments (decl-file, name)", cli.ErrUsage)
	}
	tree, err := cfg.loadTree(args[0])
	if err != nil {
		return err
	}
	u, err := resolve.Group(tree, args[1])
	if err != nil {
		return err
	}
	return encode.Union(cc.Out, u, encode.EncodeColors(cfg.colors()))
}
