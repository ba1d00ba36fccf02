package zigzag_test

import (
	"testing"

	"github.com/katalvlaran/kata/zigzag"
)

// BenchmarkMatrix_64 builds a 64×64 grid (4096 cells).
func BenchmarkMatrix_64(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = zigzag.Matrix(64)
	}
}
