// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/klauspost/compress/zstd"

	"github.com/katalvlaran/hextile/tessellate"
	"github.com/katalvlaran/hextile/volume"
)

// Sidecar describes a label file; it is written next to it as <out>.toml.
type Sidecar struct {
	Dims       []int  `toml:"dims"` // depth, height, width
	Regions    int    `toml:"regions"`
	Seeds      int    `toml:"seeds"`
	Shape      string `toml:"shape"`
	Strategy   string `toml:"strategy"`
	Degenerate bool   `toml:"degenerate"`
	Zstd       bool   `toml:"zstd"`
	Encoding   string `toml:"encoding"`
}

const labelEncoding = "int32le"

// readMask loads a raw uint8 volume in z,y,x order; non-zero bytes are
// masked. An empty path means no mask.
func readMask(path string, d volume.Dims) (*volume.Mask, error) {
	if path == "" {
		return nil, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read mask: %w", err)
	}
	if len(raw) != d.Cells() {
		return nil, fmt.Errorf("%w: mask file %q has %d bytes, grid %s needs %d",
			volume.ErrShapeMismatch, path, len(raw), d, d.Cells())
	}
	m := volume.NewMask(d)
	for i, b := range raw {
		m.Data[i] = b != 0
	}
	return m, nil
}

// writeLabels stores l as little-endian int32, zstd-compressed if asked.
func writeLabels(path string, l *volume.Labels, compress bool) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	var w io.Writer = f
	if compress {
		enc, zerr := zstd.NewWriter(f)
		if zerr != nil {
			return zerr
		}
		// Runs before f.Close; it stops the encoder goroutines on every path.
		defer func() {
			if cerr := enc.Close(); err == nil {
				err = cerr
			}
		}()
		w = enc
	}
	bw := bufio.NewWriterSize(w, 1<<20)
	if err = binary.Write(bw, binary.LittleEndian, l.Data); err != nil {
		return err
	}
	return bw.Flush()
}

// writeSidecar stores the run description next to the label file.
func writeSidecar(path string, d volume.Dims, res *tessellate.Result, compressed bool) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return toml.NewEncoder(f).Encode(Sidecar{
		Dims:       []int{d.Depth, d.Height, d.Width},
		Regions:    res.Count,
		Seeds:      res.Seeds,
		Shape:      res.Shape.String(),
		Strategy:   res.Strategy.String(),
		Degenerate: res.Degenerate,
		Zstd:       compressed,
		Encoding:   labelEncoding,
	})
}
