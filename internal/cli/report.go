package cli

import (
	"fmt"

	"github.com/brunobernard/licenser/internal/models"
	"github.com/fatih/color"
)

var (
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed)
)

// printResult prints the per-file status line. Quiet runs only show
// files that changed or errored; verbose shows everything.
func printResult(res models.FileResult, verbose bool) {
	if !verbose && !res.Changed() && !res.IsError() {
		return
	}

	msg := res.Message()
	switch res.Status {
	case models.StatusOK, models.StatusUpdated:
		green.Println(msg)
	case models.StatusNeedsUpdate:
		yellow.Println(msg)
	case models.StatusReadError, models.StatusWriteError:
		red.Println(msg)
	default:
		fmt.Println(msg)
	}
}
