// Command measure times key lookups in an unbalanced Trees.BSTree, the same tree after
// Balance, and reference ordered maps, for growing tree sizes. It prints one tab
// separated row per size with the average nanoseconds per lookup of each container.
package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/g-m-twostay/go-bst/Trees"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := run(os.Args); err != nil {
		slog.Error("exiting process", "error", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	app := cli.App{
		Name:  "measure",
		Usage: "time lookups in unbalanced and balanced trees against reference ordered maps",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "n",
				Usage:   "largest number of keys inserted",
				Value:   10000,
				EnvVars: []string{"MEASURE_N"},
			},
			&cli.IntFlag{
				Name:    "from",
				Usage:   "smallest number of keys inserted",
				Value:   100,
				EnvVars: []string{"MEASURE_FROM"},
			},
			&cli.IntFlag{
				Name:    "step",
				Usage:   "number of keys added between two rows",
				Value:   10,
				EnvVars: []string{"MEASURE_STEP"},
			},
			&cli.IntFlag{
				Name:    "max-key",
				Usage:   "keys are drawn uniformly from [1, max-key]",
				Value:   100000,
				EnvVars: []string{"MEASURE_MAX_KEY"},
			},
			&cli.Int64Flag{
				Name:    "seed",
				Usage:   "seed of the key generator, 0 picks one from the clock",
				EnvVars: []string{"MEASURE_SEED"},
			},
			&cli.BoolFlag{
				Name:    "bench",
				Usage:   "use testing.Benchmark for each measurement instead of a single timed pass",
				EnvVars: []string{"MEASURE_BENCH"},
			},
			&cli.StringFlag{
				Name:    "out",
				Usage:   "output file, - for stdout",
				Value:   "-",
				EnvVars: []string{"MEASURE_OUT"},
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log verbosity: debug, info, warn or error",
				Value:   "info",
				EnvVars: []string{"MEASURE_LOG_LEVEL", "LOG_LEVEL"},
			},
		},
		Action: measure,
	}
	return app.Run(args)
}

type config struct {
	n, from, step, maxKey int
	seed                  int64
	bench                 bool
}

func (c config) validate() error {
	switch {
	case c.n < 1:
		return errors.Newf("n must be positive, got %d", c.n)
	case c.from < 1 || c.from > c.n:
		return errors.Newf("from must be in [1, %d], got %d", c.n, c.from)
	case c.step < 1:
		return errors.Newf("step must be positive, got %d", c.step)
	case c.maxKey < 1:
		return errors.Newf("max-key must be positive, got %d", c.maxKey)
	}
	return nil
}

// entry is the item stored in the btree and llrb references, ordered by k.
type entry struct {
	k int
	v string
}

func (e entry) Less(than llrb.Item) bool {
	return e.k < than.(entry).k
}

// contender is one container under measurement.
type contender struct {
	name    string
	insert  func(k int, v string)
	prepare func()
	find    func(k int) bool
}

func contenders() ([]contender, *Trees.BSTree[int, string, uint32], *Trees.BSTree[int, string, uint32]) {
	m := treemap.NewWithIntComparator()
	bst := Trees.New[int, string, uint32](0)
	bal := Trees.New[int, string, uint32](0)
	bt := btree.NewG[entry](32, func(a, b entry) bool { return a.k < b.k })
	lt := llrb.New()
	return []contender{
		{
			name:   "map",
			insert: func(k int, v string) { m.Put(k, v) },
			find: func(k int) bool {
				_, ok := m.Get(k)
				return ok
			},
		},
		{
			name:   "bst",
			insert: func(k int, v string) { bst.Insert(k, v) },
			find:   func(k int) bool { return !bst.Find(k).IsEnd() },
		},
		{
			name:    "balanced",
			insert:  func(k int, v string) { bal.Insert(k, v) },
			prepare: bal.Balance,
			find:    func(k int) bool { return !bal.Find(k).IsEnd() },
		},
		{
			name:   "btree",
			insert: func(k int, v string) { bt.ReplaceOrInsert(entry{k, v}) },
			find: func(k int) bool {
				_, ok := bt.Get(entry{k: k})
				return ok
			},
		},
		{
			name:   "llrb",
			insert: func(k int, v string) { lt.ReplaceOrInsert(entry{k, v}) },
			find:   func(k int) bool { return lt.Has(entry{k: k}) },
		},
	}, bst, bal
}

var sink bool

// timeFinds returns the average duration of one lookup of each of ks.
func timeFinds(c contender, ks []int, bench bool) time.Duration {
	if bench {
		br := testing.Benchmark(func(b *testing.B) {
			for range b.N {
				for _, k := range ks {
					sink = c.find(k)
				}
			}
		})
		return time.Duration(br.NsPerOp() / int64(len(ks)))
	}
	t0 := time.Now()
	for _, k := range ks {
		sink = c.find(k)
	}
	return time.Since(t0) / time.Duration(len(ks))
}

func measure(cctx *cli.Context) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cctx.String("log-level"))); err != nil {
		return errors.Wrap(err, "parsing log level")
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg := config{
		n:      cctx.Int("n"),
		from:   cctx.Int("from"),
		step:   cctx.Int("step"),
		maxKey: cctx.Int("max-key"),
		seed:   cctx.Int64("seed"),
		bench:  cctx.Bool("bench"),
	}
	if err := cfg.validate(); err != nil {
		return err
	}
	if cfg.seed == 0 {
		cfg.seed = time.Now().UnixNano()
	}
	slog.Info("starting measurement", "n", cfg.n, "from", cfg.from, "step", cfg.step, "seed", cfg.seed, "bench", cfg.bench)
	if cfg.bench {
		testing.Init()
	}

	var out io.Writer = os.Stdout
	if p := cctx.String("out"); p != "-" {
		f, err := os.Create(p)
		if err != nil {
			return errors.Wrapf(err, "creating %s", p)
		}
		defer f.Close()
		out = f
	}
	w := bufio.NewWriter(out)
	if err := write(w, cfg); err != nil {
		return err
	}
	return errors.Wrap(w.Flush(), "flushing results")
}

func write(w io.Writer, cfg config) error {
	r := rand.New(rand.NewSource(cfg.seed))
	ks := make([]int, cfg.n)
	for i := range ks {
		ks[i] = 1 + r.Intn(cfg.maxKey)
	}

	cs, bst, bal := contenders()
	names := make([]string, 0, len(cs)+1)
	names = append(names, "size")
	for _, c := range cs {
		names = append(names, c.name)
	}
	if _, err := fmt.Fprintln(w, strings.Join(names, "\t")); err != nil {
		return errors.Wrap(err, "writing header")
	}

	inserted := 0
	row := make([]string, len(cs)+1)
	for i := cfg.from; i <= cfg.n; i += cfg.step {
		for _, c := range cs {
			for _, k := range ks[inserted:i] {
				c.insert(k, fmt.Sprint(k))
			}
			if c.prepare != nil {
				c.prepare()
			}
		}
		inserted = i
		row[0] = fmt.Sprint(i)
		for j, c := range cs {
			row[j+1] = fmt.Sprintf("%.1f", float64(timeFinds(c, ks[:i], cfg.bench).Nanoseconds()))
		}
		if _, err := fmt.Fprintln(w, strings.Join(row, "\t")); err != nil {
			return errors.Wrapf(err, "writing row %d", i)
		}
		slog.Debug("measured", "size", i, "entries", bst.Len(), "height", bst.Height(), "balanced_height", bal.Height())
	}
	slog.Info("done", "entries", bst.Len(), "height", bst.Height(), "balanced_height", bal.Height(), "balanced", bal.IsBalanced())
	return nil
}
