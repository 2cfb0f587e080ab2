package smooth

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-smooth/internal/testutil"
)

func TestFilterMatchesApply(t *testing.T) {
	in := testutil.DeterministicNoise(3, 1, 256)

	want, err := Apply(in, 0.2, 0.1)
	if err != nil {
		t.Fatal(err)
	}

	f, err := New(0.2, WithInitialOutput(0.1))
	if err != nil {
		t.Fatal(err)
	}

	got := make([]float64, len(in))
	for i, x := range in {
		got[i] = f.ProcessSample(x)
	}

	testutil.RequireSliceNearlyEqual(t, got, want, 1e-12)
}

func TestFilterProcessBlockChunked(t *testing.T) {
	in := testutil.DeterministicNoise(11, 1, 100)

	want, err := Apply(in, 0.46, 0)
	if err != nil {
		t.Fatal(err)
	}

	f, err := New(0.46)
	if err != nil {
		t.Fatal(err)
	}

	buf := append([]float64(nil), in...)
	for start := 0; start < len(buf); start += 7 {
		end := min(start+7, len(buf))
		f.ProcessBlock(buf[start:end])
	}

	testutil.RequireSliceNearlyEqual(t, buf, want, 1e-12)
}

func TestFilterProcessBlockTo(t *testing.T) {
	src := testutil.UnitStep(16, 4)
	orig := append([]float64(nil), src...)

	f, err := New(0.5)
	if err != nil {
		t.Fatal(err)
	}

	dst := f.ProcessBlockTo(nil, src)
	if len(dst) != len(src) {
		t.Fatalf("len = %d, want %d", len(dst), len(src))
	}
	testutil.RequireSliceNearlyEqual(t, src, orig, 0)

	if dst[4] != 0.5 || dst[5] != 0.75 {
		t.Fatalf("dst[4:6] = %v, want [0.5 0.75]", dst[4:6])
	}
	if f.State() != dst[len(dst)-1] {
		t.Fatalf("state = %v, want last output %v", f.State(), dst[len(dst)-1])
	}
}

func TestFilterReset(t *testing.T) {
	f, err := New(0.3, WithInitialOutput(0.25))
	if err != nil {
		t.Fatal(err)
	}
	if f.State() != 0.25 {
		t.Fatalf("initial state = %v, want 0.25", f.State())
	}

	f.ProcessSample(10)
	f.Reset()

	if f.State() != 0.25 {
		t.Fatalf("state after Reset = %v, want 0.25", f.State())
	}

	f.SetState(-1)
	if f.State() != -1 {
		t.Fatalf("state = %v, want -1", f.State())
	}
}

func TestFilterAlpha(t *testing.T) {
	if _, err := New(0); !errors.Is(err, ErrInvalidAlpha) {
		t.Fatalf("New(0) err = %v, want ErrInvalidAlpha", err)
	}

	f, err := New(0.3)
	if err != nil {
		t.Fatal(err)
	}

	if err := f.SetAlpha(1.5); !errors.Is(err, ErrInvalidAlpha) {
		t.Fatalf("SetAlpha(1.5) err = %v, want ErrInvalidAlpha", err)
	}
	if f.Alpha() != 0.3 {
		t.Fatalf("alpha = %v after rejected update, want 0.3", f.Alpha())
	}

	if err := f.SetAlpha(1); err != nil {
		t.Fatal(err)
	}
	if got := f.ProcessSample(4); got != 4 {
		t.Fatalf("pass-through output = %v, want 4", got)
	}
}

func TestFilterBlockMatchesSampleOnDecay(t *testing.T) {
	in := make([]float64, 40)

	ref, err := New(0.9, WithInitialOutput(1))
	if err != nil {
		t.Fatal(err)
	}
	want := make([]float64, len(in))
	for i, x := range in {
		want[i] = ref.ProcessSample(x)
	}

	block, err := New(0.9, WithInitialOutput(1))
	if err != nil {
		t.Fatal(err)
	}
	got := append([]float64(nil), in...)
	block.ProcessBlock(got)

	to, err := New(0.9, WithInitialOutput(1))
	if err != nil {
		t.Fatal(err)
	}
	gotTo := to.ProcessBlockTo(nil, in)

	for i := range want {
		if got[i] != want[i] || gotTo[i] != want[i] {
			t.Fatalf("index %d: block %v, block-to %v, sample %v", i, got[i], gotTo[i], want[i])
		}
	}
	if want[len(want)-1] != 0 {
		t.Fatalf("decayed state = %v, want flushed to 0", want[len(want)-1])
	}
	if block.State() != ref.State() || to.State() != ref.State() {
		t.Fatalf("states = %v/%v, want %v", block.State(), to.State(), ref.State())
	}
}
