// grade-report builds a course grade report from a name directory and a
// course grade file.
//
// Usage:
//
//	grade-report run [--names=name.txt] [--courses=course.txt] [--output=coursereport.txt] [--format=text|pdf]
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
