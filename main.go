package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/btree-query-bench/leafchain/index"
	"github.com/btree-query-bench/leafchain/index/btree"
	"github.com/btree-query-bench/leafchain/index/listindex"
	"github.com/btree-query-bench/leafchain/index/lsm"
	"github.com/btree-query-bench/leafchain/internal/config"
	"github.com/btree-query-bench/leafchain/internal/logging"
	"github.com/btree-query-bench/leafchain/internal/metrics"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()
	os.Exit(start(*configPath))
}

// start runs the benchmark and returns the process exit code. Returning
// instead of exiting lets the deferred Sync flush the logger on every path.
func start(configPath string) int {
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	logger, err := logging.New(cfg.Log)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Error("benchmark failed", zap.Error(err))
		return 1
	}
	logger.Info("benchmark complete", zap.String("output", cfg.Output), zap.String("plot", cfg.Plot))
	return 0
}

func run(cfg config.Config, logger *zap.Logger) error {
	collector := metrics.NewCollector()
	if cfg.MetricsAddr != "" {
		go serveMetrics(cfg.MetricsAddr, collector, logger)
	}

	var results []BenchResult

	// --- 1. Sweep the threaded B-tree over degrees ---
	for _, d := range cfg.Degrees {
		set := btree.NewKeySet(d,
			btree.WithLogger(logger.Named("btree")),
			btree.WithObserver(collector.Observe))
		res, err := runSuite(logger, "LeafChain", strconv.Itoa(d), set, cfg)
		if err != nil {
			return err
		}
		if err := set.Tree.Validate(); err != nil {
			return errors.Wrapf(err, "degree %d", d)
		}
		logger.Info("tree shape",
			zap.Int("degree", d),
			zap.Int("height", set.Tree.Height()),
			zap.Int("nodes", set.Tree.Nodes()),
			zap.Int("keys", set.Tree.Len()))
		results = append(results, res...)
	}

	// --- 2. Baselines ---
	if cfg.Baselines.List {
		res, err := runSuite(logger, "SortedList", "-", listindex.NewListIndex(), cfg)
		if err != nil {
			return err
		}
		results = append(results, res...)
	}
	if cfg.Baselines.Pebble {
		res, err := runPebble(logger, cfg)
		if err != nil {
			return err
		}
		results = append(results, res...)
	}

	if err := writeCSV(cfg.Output, results); err != nil {
		return err
	}
	if cfg.Plot != "" {
		if err := PlotLatency(results, cfg.Plot); err != nil {
			return err
		}
	}

	counts, err := collector.Snapshot()
	if err != nil {
		return errors.Wrap(err, "gather metrics")
	}
	for event, n := range counts {
		logger.Info("tree events", zap.String("event", event), zap.Float64("count", n))
	}
	return nil
}

func runPebble(logger *zap.Logger, cfg config.Config) ([]BenchResult, error) {
	dir := cfg.PebbleDir
	if dir == "" {
		tmp, err := os.MkdirTemp("", "leafchain-pebble-")
		if err != nil {
			return nil, errors.Wrap(err, "pebble temp dir")
		}
		defer os.RemoveAll(tmp)
		dir = tmp
	}
	db, err := lsm.Open(dir)
	if err != nil {
		return nil, err
	}
	res, err := runSuite(logger, "Pebble", "-", db, cfg)
	if cerr := db.Close(); err == nil {
		err = cerr
	}
	return res, err
}

func runSuite(logger *zap.Logger, name, conf string, idx index.KeySet, cfg config.Config) ([]BenchResult, error) {
	logger.Info("testing", zap.String("structure", name), zap.String("config", conf))
	n := cfg.Scale
	var out []BenchResult

	// 1. Pure Insert (Initial Load)
	start := time.Now()
	for k := 0; k < n; k++ {
		if err := idx.Insert(int64(k)); err != nil {
			return nil, errors.Wrapf(err, "%s: load key %d", name, k)
		}
	}
	insertLatency := time.Since(start).Nanoseconds() / int64(n)

	out = append(out, BenchResult{
		Name:      name,
		Config:    conf,
		Operation: "Footprint_SteadyState",
		LatencyNs: insertLatency,
		Mem:       SampleMemory(),
	})

	// 2. Mixed workloads
	workloads := []struct {
		op    string
		wType WorkloadType
		ops   int
	}{
		{"Workload_OLTP", OLTP, cfg.Ops},
		{"Workload_OLAP", OLAP, cfg.Ops},
		{"Workload_Churn", Churn, cfg.Ops},
		{"Workload_Scan", Reporting, 10},
	}
	for _, wl := range workloads {
		if wl.ops == 0 {
			continue
		}
		start = time.Now()
		if err := ExecuteWorkload(idx, wl.wType, wl.ops, n); err != nil {
			return nil, errors.Wrapf(err, "%s: %s", name, wl.wType)
		}
		out = append(out, BenchResult{
			Name:      name,
			Config:    conf,
			Operation: wl.op,
			LatencyNs: time.Since(start).Nanoseconds() / int64(wl.ops),
			Mem:       SampleMemory(),
		})
	}
	return out, nil
}

func writeCSV(path string, results []BenchResult) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range results {
		if err := Record(w, r); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	return f.Close()
}

func serveMetrics(addr string, collector *metrics.Collector, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", collector.Handler())
	logger.Info("serving metrics", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Warn("metrics server stopped", zap.Error(err))
	}
}
