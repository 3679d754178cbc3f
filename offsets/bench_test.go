package offsets_test

import (
	"testing"

	"github.com/katalvlaran/targetring/offsets"
)

func BenchmarkSelect_N50_T3(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = offsets.Select(50, 3)
	}
}

func BenchmarkSelect_N200_T2(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = offsets.Select(200, 2)
	}
}

func BenchmarkScore_N500(b *testing.B) {
	set := offsets.Set{1, 2, 5}
	for i := 0; i < b.N; i++ {
		_ = offsets.Score(500, set)
	}
}
