package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/btree-query-bench/leafchain/index/btree"
	"github.com/btree-query-bench/leafchain/internal/config"
	"github.com/btree-query-bench/leafchain/internal/logging"
	"github.com/btree-query-bench/leafchain/internal/shell"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	degree := flag.Int("t", 0, "minimum degree (overrides the first configured degree)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	t := cfg.Degrees[0]
	if *degree != 0 {
		t = *degree
	}
	if t < 2 {
		fmt.Fprintf(os.Stderr, "minimum degree must be at least 2, got %d\n", t)
		os.Exit(2)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		logger.Fatal("readline init failed", zap.Error(err))
	}
	defer rl.Close()

	tree := btree.New(t, btree.WithLogger(logger.Named("btree")))
	sh := shell.New(tree, rl.Stdout(), logger)
	fmt.Fprint(rl.Stdout(), shell.Help)

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			return
		}
		if err != nil {
			logger.Error("read failed", zap.Error(err))
			return
		}
		if sh.Exec(line) {
			return
		}
	}
}
