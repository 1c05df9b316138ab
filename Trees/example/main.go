// Command example walks through the operations of Trees.BSTree on small integer trees,
// printing the tree after every step.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/g-m-twostay/go-bst/Trees"
	"github.com/urfave/cli/v2"
)

type intTree = Trees.BSTree[int, int, uint8]

func main() {
	if err := run(os.Args, os.Stdout); err != nil {
		slog.Error("exiting process", "error", err)
		os.Exit(1)
	}
}

func run(args []string, w io.Writer) error {
	app := cli.App{
		Name:   "example",
		Usage:  "demonstrate insertion, lookup, erasure, balancing, copy and move of a binary search tree",
		Writer: w,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verify",
				Usage:   "check the tree structure after every step",
				Value:   true,
				EnvVars: []string{"EXAMPLE_VERIFY"},
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "build",
				Usage:  "insert, index, copy, move and clear",
				Action: build,
			},
			{
				Name:   "balance",
				Usage:  "balance a degenerate tree, then erase in every structural case",
				Action: balance,
			},
		},
		Action: func(cctx *cli.Context) error {
			if err := build(cctx); err != nil {
				return err
			}
			return balance(cctx)
		},
	}
	return app.Run(args)
}

// printer writes titled trees and checks them when asked to.
type printer struct {
	w      io.Writer
	verify bool
	err    error
}

func newPrinter(cctx *cli.Context) *printer {
	return &printer{w: cctx.App.Writer, verify: cctx.Bool("verify")}
}

func (p *printer) printf(format string, args ...any) {
	if p.err == nil {
		_, p.err = fmt.Fprintf(p.w, format, args...)
	}
}

func (p *printer) tree(title string, t *intTree) {
	p.printf("%s\n[%s]\n", title, t)
	if p.err == nil && p.verify {
		p.err = errors.Wrapf(t.Verify(), "after %q", title)
	}
}

func build(cctx *cli.Context) error {
	p := newPrinter(cctx)
	t := Trees.New[int, int, uint8](9)
	p.tree("empty tree", t)

	for _, k := range []int{8, 3, 10, 1, 6, 4, 7} {
		t.Insert(k, k)
	}
	t.Emplace(14, 14)
	t.Insert(13, 13)
	p.tree("inserted 8 3 10 1 6 4 7 14 13", t)

	t.Insert(10, 3)
	p.tree("inserted (10, 3), the value of 10 is kept", t)

	p.printf("value of key 13 is %d\n", *t.Index(13))

	c := t.Clone()
	p.tree("copied tree", c)

	m := t.Move()
	p.tree("moved tree", m)
	p.tree("tree moved from", t)

	c.Clear()
	p.tree("cleared copy", c)
	p.tree("moved tree is unaffected", m)
	slog.Debug("build done", "len", m.Len(), "height", m.Height())
	return p.err
}

func balance(cctx *cli.Context) error {
	p := newPrinter(cctx)
	t := Trees.New[int, int, uint8](0)
	for i := 1; i < 10; i++ {
		if i != 5 {
			t.Insert(i, i)
		}
	}
	p.tree("inserted 1 to 9 except 5", t)
	p.printf("balanced: %v, height: %d\n", t.IsBalanced(), t.Height())

	t.Balance()
	p.printf("after balance: balanced: %v, height: %d, root: %d\n", t.IsBalanced(), t.Height(), t.Root().Key())
	p.tree("balanced tree", t)

	t.Insert(3, 3)
	p.tree("inserted existing key 3", t)
	t.Emplace(5, 5)
	p.tree("emplaced 5", t)
	p.printf("value of key 5 is %d\n", *t.Index(5))
	p.printf("value of new key 10 is %d\n", *t.Index(10))

	if it := t.Find(3); !it.IsEnd() {
		p.printf("found key %d\n", it.Key())
	}
	if t.Find(42).IsEnd() {
		p.printf("key 42 not found\n")
	}
	b := t.Begin()
	p.printf("first entry (%d, %d)\n", b.Key(), *b.Value())

	p.printf("first key %d\n", t.Begin().Key())
	t.Erase(1)
	p.printf("first key after erasing 1: %d\n", t.Begin().Key())

	p.printf("root %d\n", t.Root().Key())
	t.Erase(t.Root().Key())
	p.printf("root after erasing it: %d\n", t.Root().Key())
	p.tree("erased root", t)

	for _, step := range []struct {
		title string
		k     int
	}{
		{"erased 7", 7},
		{"erased 6", 6},
		{"erased 10, added by Index", 10},
		{"erased absent key 69", 69},
	} {
		erased := t.Erase(step.k)
		slog.Debug("erase", "key", step.k, "erased", erased, "len", t.Len())
		p.tree(step.title, t)
	}

	for _, k := range []int{4, 6, 9} {
		t.Emplace(k, k)
	}
	p.tree("emplaced 4 6 9", t)
	t.Erase(4)
	t.Erase(9)
	p.tree("erased 4 9", t)

	for _, k := range []int{4, 11, 6} {
		t.Insert(k, k)
	}
	p.tree("inserted 4 11 6", t)
	t.Erase(6)
	t.Erase(11)
	p.tree("erased 6 11", t)

	c := t.Clone()
	p.tree("copied tree", c)
	m := t.Move()
	p.tree("moved tree", m)
	t.Clear()
	p.tree("cleared tree moved from", t)
	return p.err
}
