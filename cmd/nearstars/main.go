package main

import (
	"context"
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := execute(nil, nil); err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
