package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/docshape/encode"
	"github.com/signadot/docshape/narrow"
	"github.com/signadot/docshape/pred"
)

type NarrowConfig struct {
	*MainConfig
	Narrow *cli.Command
}

func NarrowCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &NarrowConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Narrow, "narrow").
		WithAliases("n").
		WithSynopsis("narrow <decl-file> <path> <predicate>..").
		WithDescription("resolve a path, then narrow its shapes by predicates like 'age >= 21'").
		WithRun(func(cc *cli.Context, args []string) error {
			return narrowRun(cfg, cc, args)
		})
}

func narrowRun(cfg *NarrowConfig, cc *cli.Context, args []string) error {
	if len(args) < 3 {
		return fmt.Errorf("%w: narrow requires at least 3 arguments (decl-file, path, predicate..)", cli.ErrUsage)
	}
	tree, err := cfg.loadTree(args[0])
	if err != nil {
		return err
	}
	u, err := resolveAny(tree, args[1])
	if err != nil {
		return err
	}
	preds, err := pred.ParseAll(args[2:]...)
	if err != nil {
		return err
	}
	for _, p := range preds {
		u = narrow.Narrow(u, p)
	}
	return encode.Union(cc.Out, u, encode.EncodeColors(cfg.colors()))
}
