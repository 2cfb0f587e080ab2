// Command lpfinfo prints step-response settling times of the single-pole
// exponential smoothing filter.
//
// Usage:
//
//	lpfinfo [flags]
//
// By default it prints the 95% and 99% settling offsets and the time
// constant for a unit step at sample 10 of 50.
//
// Examples:
//
//	lpfinfo
//	lpfinfo -alphas 0.3,0.46
//	lpfinfo -sweep 50
//	lpfinfo -rate 100 -alphas 0.1,0.5
//	lpfinfo -csv -alphas 0.1,0.2,0.3,0.46,0.5,0.8
package main

import (
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-smooth/dsp/filter/smooth"
	"github.com/cwbudde/algo-smooth/measure/settling"
)

const defaultAlphas = "0.1,0.2,0.3,0.4,0.46,0.5"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("lpfinfo", flag.ContinueOnError)
	fs.SetOutput(stderr)

	def := settling.DefaultConfig()
	samples := fs.Int("samples", def.Samples, "stimulus length in samples")
	onset := fs.Int("onset", def.Onset, "sample index of the step")
	alphaList := fs.String("alphas", defaultAlphas, "comma-separated filter coefficients in (0, 1]")
	sweep := fs.Int("sweep", 0, "use N evenly spaced coefficients in [0.05, 1] instead of -alphas")
	rate := fs.Float64("rate", 0, "sample rate in Hz; adds cutoff and time columns")
	asCSV := fs.Bool("csv", false, "print step responses as CSV instead of the table")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: lpfinfo [flags]\n\n")
		fmt.Fprintf(stderr, "Prints step-response settling times of the exponential low-pass filter.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	var (
		alphas []float64
		err    error
	)
	if *sweep > 0 {
		alphas, err = settling.Linspace(0.05, 1, *sweep)
	} else {
		alphas, err = parseAlphas(*alphaList)
	}
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}

	cfg := def
	cfg.Samples = *samples
	cfg.Onset = *onset

	if *asCSV {
		err = writeCSV(stdout, cfg, alphas)
	} else {
		err = writeTable(stdout, cfg, alphas, *rate)
	}
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}

	return 0
}

func parseAlphas(list string) ([]float64, error) {
	var alphas []float64
	for _, field := range strings.Split(list, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		a, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid coefficient %q: %w", field, err)
		}
		if err := smooth.ValidateAlpha(a); err != nil {
			return nil, err
		}
		alphas = append(alphas, a)
	}
	if len(alphas) == 0 {
		return nil, fmt.Errorf("no coefficients given")
	}
	return alphas, nil
}

func writeTable(w io.Writer, cfg settling.Config, alphas []float64, rate float64) error {
	rows, err := settling.Sweep(cfg, alphas)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	header := "Alpha\t95% Time\t99% Time\tTime Constant (τ)"
	rule := "-----\t--------\t--------\t-----------------"
	if rate > 0 {
		header += "\tCutoff [Hz]\t99% Time [ms]"
		rule += "\t-----------\t-------------"
	}
	if _, err := fmt.Fprintf(tw, "%s\n%s\n", header, rule); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, r := range rows {
		line := fmt.Sprintf("%.2f\t%v\t%v\t%.2f", r.Alpha, r.Times[0], r.Times[1], r.TimeConstant)
		if rate > 0 {
			fc, err := smooth.CutoffFromAlpha(r.Alpha, rate)
			if err != nil {
				return err
			}
			ms := "N/A"
			if r.Times[1].Reached {
				ms = fmt.Sprintf("%.1f", 1000*float64(r.Times[1].Samples)/rate)
			}
			line += fmt.Sprintf("\t%.2f\t%s", fc, ms)
		}
		if _, err := fmt.Fprintln(tw, line); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}

	return tw.Flush()
}

func writeCSV(w io.Writer, cfg settling.Config, alphas []float64) error {
	responses, err := settling.Drive(cfg, alphas)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	header := make([]string, 0, len(responses)+2)
	header = append(header, "sample", "input")
	for _, r := range responses {
		header = append(header, "alpha="+strconv.FormatFloat(r.Alpha, 'g', -1, 64))
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	record := make([]string, len(header))
	for n := range cfg.Samples {
		input := cfg.Baseline
		if n >= cfg.Onset {
			input = cfg.Height
		}
		record[0] = strconv.Itoa(n)
		record[1] = strconv.FormatFloat(input, 'g', -1, 64)
		for i, r := range responses {
			record[i+2] = strconv.FormatFloat(r.Output[n], 'f', 6, 64)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
