package main

import (
	"context"
	"fmt"
	"os"

	"github.com/ardnew/shlog/cli"
	"github.com/ardnew/shlog/pkg"
)

func main() {
	err := cli.Run(context.Background(), os.Exit, os.Args[1:]...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", pkg.Name, err)
		os.Exit(1)
	}
}
