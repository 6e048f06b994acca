// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"runtime"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hextile/volume"
)

// readLabels is the inverse of writeLabels.
func readLabels(path string, d volume.Dims, compressed bool) (*volume.Labels, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = bufio.NewReader(f)
	if compressed {
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		defer dec.Close()
		r = dec
	}
	l := volume.NewLabels(d)
	if err := binary.Read(r, binary.LittleEndian, l.Data); err != nil {
		return nil, fmt.Errorf("unable to read %s labels from %q: %w", d, path, err)
	}
	return l, nil
}

// TestWriteLabels_ReportsWriteFailure writes to a device that rejects every
// write; the error must surface with and without compression.
func TestWriteLabels_ReportsWriteFailure(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("needs /dev/full")
	}
	if _, err := os.Stat("/dev/full"); err != nil {
		t.Skip("no /dev/full")
	}
	l := volume.NewLabels(volume.Dims{Depth: 4, Height: 64, Width: 64})
	for i := range l.Data {
		l.Data[i] = int32(i)
	}
	for _, compress := range []bool{false, true} {
		err := writeLabels("/dev/full", l, compress)
		assert.Error(t, err, "compress=%v", compress)
	}
}

// TestWriteLabels_RoundTrip reads back both encodings.
func TestWriteLabels_RoundTrip(t *testing.T) {
	d := volume.Dims{Depth: 2, Height: 3, Width: 5}
	l := volume.NewLabels(d)
	for i := range l.Data {
		l.Data[i] = int32(i * 7)
	}
	for _, compress := range []bool{false, true} {
		path := fmt.Sprintf("%s/labels-%v.raw", t.TempDir(), compress)
		require.NoError(t, writeLabels(path, l, compress))
		got, err := readLabels(path, d, compress)
		require.NoError(t, err)
		assert.Equal(t, l.Data, got.Data, "compress=%v", compress)
	}
}
