package window_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/teese/weighslide/window"
)

// benchData builds a deterministic pseudo-random input of length n.
func benchData(n int) []float64 {
	rng := rand.New(rand.NewSource(42))
	data := make([]float64, n)
	for i := range data {
		data[i] = rng.Float64() * 10
	}
	return data
}

func benchmarkSlide(b *testing.B, n int, spec string, statistic window.Statistic) {
	data := benchData(n)
	opts := window.DefaultOptions()
	opts.AllowLongWindow = true
	opts.AllowLargeInput = true

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := window.Slide(data, window.StringSpec(spec), statistic, &opts); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSlide_Mean_Short(b *testing.B)     { benchmarkSlide(b, 100, "494", window.Mean) }
func BenchmarkSlide_Mean_Periodic(b *testing.B)  { benchmarkSlide(b, 1000, "9xxxxx9xxxxx9xxxxx9", window.Mean) }
func BenchmarkSlide_Sum_Medium(b *testing.B)     { benchmarkSlide(b, 1000, "393", window.Sum) }
func BenchmarkSlide_Std_LongWindow(b *testing.B) { benchmarkSlide(b, 1000, strings.Repeat("5", 101), window.Std) }
func BenchmarkSlide_Sum_LargeInput(b *testing.B) { benchmarkSlide(b, 20000, "9", window.Sum) }

func BenchmarkBuildWeights(b *testing.B) {
	spec := window.StringSpec("9xxxxx9xxxxx9xxxxx9xxxxx9xxxxx9xxxxx9")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := window.BuildWeights(spec, false); err != nil {
			b.Fatal(err)
		}
	}
}
