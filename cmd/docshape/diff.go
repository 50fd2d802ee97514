package main

import (
	"fmt"
	"strings"

	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/signadot/docshape/encode"
)

type DiffConfig struct {
	*MainConfig
	Diff *cli.Command
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d").
		WithSynopsis("diff <decl-file> <path> <path>").
		WithDescription("diff the shapes two paths resolve to").
		WithRun(func(cc *cli.Context, args []string) error {
			return diffRun(cfg, cc, args)
		})
}

func diffRun(cfg *DiffConfig, cc *cli.Context, args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("%w: diff requires 3 arguments (decl-file, path, path)", cli.ErrUsage)
	}
	tree, err := cfg.loadTree(args[0])
	if err != nil {
		return err
	}
	from, err := resolveAny(tree, args[1])
	if err != nil {
		return err
	}
	to, err := resolveAny(tree, args[2])
	if err != nil {
		return err
	}

	dmp := diffpatch.New()
	diffs := dmp.DiffMain(encode.String(from), encode.String(to), true)
	diffs = dmp.DiffCleanupSemantic(diffs)
	if cfg.NoColor {
		_, err = fmt.Fprint(cc.Out, diffPlainText(diffs))
		return err
	}
	_, err = fmt.Fprint(cc.Out, dmp.DiffPrettyText(diffs))
	return err
}

func diffPlainText(diffs []diffpatch.Diff) string {
	buf := &strings.Builder{}
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffDelete:
			buf.WriteString("-[" + d.Text + "]")
		case diffpatch.DiffInsert:
			buf.WriteString("+[" + d.Text + "]")
		default:
			buf.WriteString(d.Text)
		}
	}
	return buf.String()
}
