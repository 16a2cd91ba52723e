package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	kitlog "github.com/go-kit/kit/log"

	vsop87 "github.com/erla2996/SolarSystem"
)

// NOTE: This tool evaluates the full VSOP87C series at every integer JDE in
// [0, days) and writes the per-planet daily tables which Load later serves
// interpolated queries from. Expect it to run for a while with large -days
// values: the full series is summed once per planet per day.

/* === CONFIG === */
var (
	days   int
	outDir string
	only   string
)

/* ===  END  === */

func init() {
	flag.IntVar(&days, "days", 100001, "number of consecutive daily samples to write, starting at JDE 0")
	flag.StringVar(&outDir, "out", "", "output directory (defaults to precomputed.directory from conf.toml)")
	flag.StringVar(&only, "planet", "", "only precompute this planet (defaults to all eight)")
}

func main() {
	flag.Parse()
	logger := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stdout))
	logger = kitlog.With(logger, "cmd", "precompute")
	cfg, err := vsop87.ReadConfig()
	if err != nil {
		logger.Log("level", "error", "err", err)
		os.Exit(1)
	}
	cfg.Precomputed = false // evaluate live, never from a stale table
	cfg.Logger = logger
	if outDir == "" {
		outDir = cfg.PrecomputedDir
	}
	eph, err := vsop87.Load(cfg)
	if err != nil {
		logger.Log("level", "error", "err", err)
		os.Exit(1)
	}
	planets := vsop87.Planets[:]
	if only != "" {
		p, err := vsop87.PlanetFromString(only)
		if err != nil {
			logger.Log("level", "error", "err", err)
			os.Exit(1)
		}
		planets = []vsop87.Planet{p}
	}
	if err = os.MkdirAll(outDir, 0755); err != nil {
		logger.Log("level", "error", "err", err)
		os.Exit(1)
	}
	for _, p := range planets {
		if err = precompute(eph, p); err != nil {
			logger.Log("level", "error", "planet", p, "err", err)
			os.Exit(1)
		}
		logger.Log("level", "info", "planet", p, "days", days, "file", p.PrecomputedFile())
	}
}

func precompute(eph *vsop87.Ephemeris, p vsop87.Planet) error {
	f, err := os.Create(filepath.Join(outDir, p.PrecomputedFile()))
	if err != nil {
		return err
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "%d\n", days)
	for d := 0; d < days; d++ {
		pos := eph.Position(p, float64(d))
		fmt.Fprintf(w, "%.14e %.14e %.14e\n", pos.X, pos.Y, pos.Z)
	}
	return w.Flush()
}
