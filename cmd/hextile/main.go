// SPDX-License-Identifier: MIT

// Command hextile writes a hexagon, hexagonal prism or rhombic dodecahedron
// label volume to a raw file.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/katalvlaran/hextile/logging"
	"github.com/katalvlaran/hextile/regions"
	"github.com/katalvlaran/hextile/tessellate"
	"github.com/katalvlaran/hextile/volume"
)

const helpMessage = `
hextile partitions a 2D or 3D grid into hexagons, hexagonal prisms or rhombic
dodecahedra and writes the label volume as packed little-endian int32 in Z, Y,
and then X order.  A <out>.toml sidecar records dims, region count and shape.

Usage: hextile [options]

	-config         =string   TOML run description; flags below override it
	-side           =number   Side length in physical units
	-dims           =string   Grid shape "D,H,W" (or "H,W" for a plane)
	-planar-scale   =number   Physical units per voxel on y and x (default 1)
	-depth-scale    =number   Physical units per voxel on z (default 1)
	-shape          =string   3D shape: prism (default) or dodecahedron
	-mask           =string   Raw uint8 mask volume, non-zero cells are excluded
	-out            =string   Output label file
	-zstd           (flag)    Compress the output with zstd
	-workers        =number   Labeling goroutines (default GOMAXPROCS)
	-strategy       =string   auto, propagation or kdtree
	-log            =string   Log file (default stderr)
	-loglevel       =string   debug, info, warning, error or silent
	-h, -help       (flag)    Show help message
`

func main() {
	fs := flag.NewFlagSet("hextile", flag.ExitOnError)
	fs.Usage = func() { fmt.Fprint(os.Stderr, helpMessage) }
	cfg, err := parseArgs(fs, os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "hextile: %v\n", err)
		os.Exit(2)
	}

	logger, closer, err := cfg.Logging.Open()
	if err != nil {
		fmt.Fprintf(os.Stderr, "hextile: unable to open log: %v\n", err)
		os.Exit(1)
	}
	if err := finish(run(cfg, logger), closer); err != nil {
		fmt.Fprintf(os.Stderr, "hextile: %v\n", err)
		os.Exit(1)
	}
}

// finish closes the log and returns the run error joined with any close
// error, so a log that fails to flush is still reported.
func finish(runErr error, logFile io.Closer) error {
	if err := logFile.Close(); err != nil {
		return errors.Join(runErr, fmt.Errorf("unable to close log: %w", err))
	}
	return runErr
}

// parseArgs loads -config and applies the flags that were given on top.
func parseArgs(fs *flag.FlagSet, args []string) (Config, error) {
	var (
		configFile = fs.String("config", "", "")
		side       = fs.Float64("side", 0, "")
		dims       = fs.String("dims", "", "")
		planar     = fs.Float64("planar-scale", 1, "")
		depth      = fs.Float64("depth-scale", 1, "")
		shape      = fs.String("shape", "", "")
		mask       = fs.String("mask", "", "")
		out        = fs.String("out", "", "")
		compress   = fs.Bool("zstd", false, "")
		workers    = fs.Int("workers", 0, "")
		strategy   = fs.String("strategy", "", "")
		logfile    = fs.String("log", "", "")
		loglevel   = fs.String("loglevel", "", "")
		showHelp   = fs.Bool("help", false, "")
	)
	fs.BoolVar(showHelp, "h", false, "")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if *showHelp {
		fs.Usage()
		os.Exit(0)
	}
	if fs.NArg() != 0 {
		return Config{}, fmt.Errorf("unexpected arguments %v", fs.Args())
	}

	cfg, err := loadConfig(*configFile)
	if err != nil {
		return cfg, err
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "side":
			cfg.Side = *side
		case "dims":
			var d []int
			if d, err = parseDims(*dims); err == nil {
				cfg.Dims = d
			}
		case "planar-scale":
			cfg.PlanarScale = *planar
		case "depth-scale":
			cfg.DepthScale = *depth
		case "shape":
			cfg.Shape = *shape
		case "mask":
			cfg.Mask = *mask
		case "out":
			cfg.Out = *out
		case "zstd":
			cfg.Zstd = *compress
		case "workers":
			cfg.Workers = *workers
		case "strategy":
			cfg.Strategy = *strategy
		case "log":
			cfg.Logging.Logfile = *logfile
		case "loglevel":
			cfg.Logging.Level = *loglevel
		}
	})
	if err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// run generates the volume described by cfg and writes it with its sidecar.
func run(cfg Config, log logging.Logger) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	d, _ := cfg.Grid()
	mask, err := readMask(cfg.Mask, d)
	if err != nil {
		return err
	}

	res, err := tessellate.Generate(cfg.Side, d, cfg.options(mask, log)...)
	if err != nil {
		return err
	}
	start := time.Now()
	if err := writeLabels(cfg.Out, res.Labels, cfg.Zstd); err != nil {
		return fmt.Errorf("unable to write labels: %w", err)
	}
	if err := writeSidecar(cfg.Out+".toml", d, res, cfg.Zstd); err != nil {
		return fmt.Errorf("unable to write sidecar: %w", err)
	}
	log.Infof("Wrote %s of labels to %q in %s", humanize.IBytes(uint64(4*d.Cells())), cfg.Out, time.Since(start))
	return report(res, mask, cfg.Workers, log)
}

// report logs the region statistics of a finished run.
func report(res *tessellate.Result, mask *volume.Mask, workers int, log logging.Logger) error {
	if res.Degenerate {
		log.Warningf("No regions: the mask covers every seed")
		return nil
	}
	summary, err := regions.Summarize(res.Labels, regions.WithWorkers(workers))
	if err != nil {
		return err
	}
	split, err := regions.Fragmented(res.Labels, regions.Conn26)
	if err != nil {
		return err
	}
	labeled := res.Labels.Dims.Cells() - mask.Count()
	log.Infof("%s %s regions, mean %s cells (largest %s), %s labeled cells, %s in memory",
		humanize.Comma(int64(len(summary))), res.Shape,
		humanize.CommafWithDigits(float64(labeled)/float64(len(summary)), 1),
		humanize.Comma(int64(largest(summary))),
		humanize.Comma(int64(labeled)),
		humanize.IBytes(uint64(4*res.Labels.Dims.Cells())))
	if len(split) > 0 {
		log.Warningf("%d regions are split into several pieces: %v", len(split), split)
	}
	return nil
}

func largest(summary []regions.Region) int {
	max := 0
	for _, r := range summary {
		if r.Cells > max {
			max = r.Cells
		}
	}
	return max
}
