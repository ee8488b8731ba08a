// Command accelsearch runs the acceleration search core over a
// DispersionTrialSet supplied as JSON on disk, and writes the
// resulting candidates as JSON.
//
// Command-line parsing of the underlying filterbank/dedispersion
// pipeline is out of scope for this core (spec.md §1): this binary
// exists to exercise the pipeline end to end against pre-dedispersed
// trial data, not to replace the original survey driver.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/cwbudde/accelsearch/gpu"
	"github.com/cwbudde/accelsearch/internal/birdie"
	"github.com/cwbudde/accelsearch/internal/config"
	"github.com/cwbudde/accelsearch/internal/master"
	"github.com/cwbudde/accelsearch/internal/scorer"
	"github.com/cwbudde/accelsearch/internal/trials"
)

// inputDoc is the on-disk JSON shape accelsearch consumes: a
// configuration, the pre-dedispersed trial set, an optional zap list,
// and the acquisition metadata the scorer needs.
type inputDoc struct {
	Config config.Config       `json:"config"`
	Trials []trials.TimeSeries `json:"trials"`
	Zaps   []birdie.Zap        `json:"zaps,omitempty"`
	Acq    scorer.Acquisition  `json:"acquisition"`
}

func main() {
	inputPath := flag.String("input", "", "path to the input JSON document")
	outputPath := flag.String("output", "", "path to write the candidate JSON (default: stdout)")
	verbose := flag.Bool("verbose", false, "enable debug-level logging")
	flag.Parse()

	if *inputPath == "" {
		fmt.Fprintln(os.Stderr, "accelsearch: -input is required")
		os.Exit(2)
	}

	log, err := buildLogger(*verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "accelsearch: logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(*inputPath, *outputPath, log); err != nil {
		log.Error("run failed", zap.Error(err))
		os.Exit(1)
	}
}

func buildLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}

	return zap.NewProduction()
}

func run(inputPath, outputPath string, log *zap.Logger) error {
	// A CUDA/OpenCL backend registers itself via its build-tagged init;
	// fall back to the CPU mock when none is present so this binary
	// still runs on a development machine.
	if _, ok := gpu.CurrentBackendInfo(); !ok {
		gpu.RegisterMockBackend()
	}

	raw, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	var doc inputDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("parsing input: %w", err)
	}

	set, err := trials.New(doc.Trials)
	if err != nil {
		return fmt.Errorf("building trial set: %w", err)
	}

	result, runErr := master.Run(doc.Config, set, doc.Zaps, doc.Acq, log)
	if runErr != nil {
		log.Error("search completed with worker errors", zap.Error(runErr))
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}

	if outputPath == "" {
		if _, err := os.Stdout.Write(append(out, '\n')); err != nil {
			return err
		}
	} else if err := os.WriteFile(outputPath, out, 0o644); err != nil {
		return err
	}

	// Results are still written out even when some workers faulted, but
	// the exit code must reflect the failure per spec.md §6/§7: a
	// nonzero exit on any worker error, even if others completed fine.
	return runErr
}
