package cmdutil

import (
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
)

var (
	loadingSpinner = spinner.New(spinner.CharSets[14], time.Millisecond*100, spinner.WithWriter(os.Stderr))
)

func PrintE(message string) {
	_, _ = fmt.Fprintln(os.Stderr)
	_, _ = color.New(color.FgRed).Fprintln(os.Stderr, message)
}

func Print(message string) {
	_, _ = fmt.Fprintln(os.Stdout, message)
}

func PrintS(message string) {
	_, _ = fmt.Fprintln(os.Stdout)
	color.Green(message)
}

func PrintW(message string) {
	color.Yellow(message)
}

func StartLoading(message string) {
	loadingSpinner.Prefix = message
	loadingSpinner.Start()
}

func StopLoading() {
	loadingSpinner.Stop()
}
