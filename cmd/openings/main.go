package main

import (
	"context"
	"fmt"
	"os"

	"github.com/freeeve/openingbook/internal/cli"
)

func main() {
	if err := cli.Root().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "openings:", err)
		os.Exit(1)
	}
}
