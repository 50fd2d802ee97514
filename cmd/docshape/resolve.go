package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/docshape/dpath"
	"github.com/signadot/docshape/encode"
	"github.com/signadot/docshape/resolve"
	"github.com/signadot/docshape/shape"
)

type ResolveConfig struct {
	*MainConfig
	Resolve *cli.Command
}

func ResolveCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ResolveConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Resolve, "resolve").
		WithAliases("r").
		WithSynopsis("resolve <decl-file> <path>").
		WithDescription("resolve a document or collection path to its shapes").
		WithRun(func(cc *cli.Context, args []string) error {
			return resolveRun(cfg, cc, args)
		})
}

func resolveRun(cfg *ResolveConfig, cc *cli.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: resolve requires 2 arguments (decl-file, path)", cli.ErrUsage)
	}
	tree, err := cfg.loadTree(args[0])
	if err != nil {
		return err
	}
	u, err := resolveAny(tree, args[1])
	if err != nil {
		return err
	}
	return encode.Union(cc.Out, u, encode.EncodeColors(cfg.colors()))
}

func resolveAny(tree *shape.Tree, path string) (shape.Union, error) {
	p, err := dpath.Parse(path)
	if err != nil {
		return nil, err
	}
	if p.Kind() == dpath.DocumentKind {
		return resolve.Doc(tree, p)
	}
	return resolve.Collection(tree, p)
}
