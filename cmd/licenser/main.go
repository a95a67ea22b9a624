// Command licenser manages SPDX license headers in source trees.
package main

import (
	"os"

	"github.com/brunobernard/licenser/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
