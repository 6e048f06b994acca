// SPDX-License-Identifier: MIT

package tessellate_test

import (
	"testing"

	"github.com/katalvlaran/hextile/tessellate"
	"github.com/katalvlaran/hextile/volume"
)

var benchDims = volume.Dims{Depth: 32, Height: 128, Width: 128}

func BenchmarkGenerate_Prism(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := tessellate.Generate(6, benchDims); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkGenerate_Dodecahedron(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := tessellate.Generate(6, benchDims, tessellate.WithShape(tessellate.Dodecahedron)); err != nil {
			b.Fatal(err)
		}
	}
}
