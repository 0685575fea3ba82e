// childsize reports per-directory aggregate file size statistics.
package main

import (
	"fmt"
	"os"

	"github.com/idelchi/childsize/internal/cli"
)

// version is set at build time.
//
//nolint:gochecknoglobals // Set via ldflags
var version = "dev"

func main() {
	if err := cli.New(version).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
