// Command mbctl is operational tooling around the classification core: it
// imports/validates training data, runs cross-validation and benchmarks,
// and exercises a saved model against ad-hoc filenames. It is not part of
// the core's public interface — it's a thin cobra wrapper the way
// cmd/spindle wraps spindle's internal packages.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
