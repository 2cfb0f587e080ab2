package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestRunDefaultTable(t *testing.T) {
	var out, errOut bytes.Buffer

	if code := run(nil, &out, &errOut); code != 0 {
		t.Fatalf("exit code %d, stderr %q", code, errOut.String())
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 8 {
		t.Fatalf("got %d lines, want 8:\n%s", len(lines), out.String())
	}
	if !strings.HasPrefix(lines[0], "Alpha") {
		t.Fatalf("header = %q", lines[0])
	}

	want := map[int][]string{
		2: {"0.10", "28", "N/A", "10.00"},
		6: {"0.46", "4", "7", "2.17"},
	}
	for i, fields := range want {
		got := strings.Fields(lines[i])
		if strings.Join(got, " ") != strings.Join(fields, " ") {
			t.Fatalf("line %d = %q, want fields %v", i, lines[i], fields)
		}
	}
}

func TestRunRateColumns(t *testing.T) {
	var out, errOut bytes.Buffer

	if code := run([]string{"-rate", "100", "-alphas", "0.5"}, &out, &errOut); code != 0 {
		t.Fatalf("exit code %d, stderr %q", code, errOut.String())
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	got := strings.Fields(lines[len(lines)-1])
	// 0.5 at 100 Hz: cutoff ln(2)*100/(2π) and 99% after 6 samples.
	want := []string{"0.50", "4", "6", "2.00", "11.03", "60.0"}
	if strings.Join(got, " ") != strings.Join(want, " ") {
		t.Fatalf("row = %v, want %v", got, want)
	}
}

func TestRunSweep(t *testing.T) {
	var out, errOut bytes.Buffer

	if code := run([]string{"-sweep", "5"}, &out, &errOut); code != 0 {
		t.Fatalf("exit code %d, stderr %q", code, errOut.String())
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 7 {
		t.Fatalf("got %d lines, want 7", len(lines))
	}
	if got := strings.Fields(lines[6]); got[0] != "1.00" || got[1] != "0" || got[2] != "0" {
		t.Fatalf("last row = %v", got)
	}
}

func TestRunCSV(t *testing.T) {
	var out, errOut bytes.Buffer

	if code := run([]string{"-csv", "-alphas", "0.3,1"}, &out, &errOut); code != 0 {
		t.Fatalf("exit code %d, stderr %q", code, errOut.String())
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 51 {
		t.Fatalf("got %d lines, want 51", len(lines))
	}
	if lines[0] != "sample,input,alpha=0.3,alpha=1" {
		t.Fatalf("header = %q", lines[0])
	}
	if lines[12] != "11,1,0.510000,1.000000" {
		t.Fatalf("line 12 = %q", lines[12])
	}
}

func TestRunRejectsInvalidAlpha(t *testing.T) {
	for _, list := range []string{"0.3,1.5", "0", "abc", ","} {
		var out, errOut bytes.Buffer

		if code := run([]string{"-alphas", list}, &out, &errOut); code != 2 {
			t.Fatalf("%q: exit code %d, want 2", list, code)
		}
		if !strings.HasPrefix(errOut.String(), "error:") {
			t.Fatalf("%q: stderr = %q", list, errOut.String())
		}
		if out.Len() != 0 {
			t.Fatalf("%q: unexpected output %q", list, out.String())
		}
	}
}
