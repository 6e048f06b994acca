// SPDX-License-Identifier: MIT

package regions

import (
	"fmt"
	"runtime"
)

// Option mutates Options.
type Option func(*Options)

// Options configures Summarize.
type Options struct {
	// Workers bounds the goroutines scanning depth layers; 0 means
	// runtime.GOMAXPROCS(0).
	Workers int
}

// WithWorkers sets the number of layer-scanning goroutines.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

func gatherOptions(opts []Option) (Options, error) {
	var o Options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.Workers < 0 {
		return o, fmt.Errorf("%w: workers=%d", ErrInvalidWorkers, o.Workers)
	}
	if o.Workers == 0 {
		o.Workers = runtime.GOMAXPROCS(0)
	}
	return o, nil
}
