package main

import (
	"os"

	"github.com/blacktop/socialhub/cmd"
	"github.com/blacktop/socialhub/internal/logutil"
)

func main() {
	if err := cmd.Execute(); err != nil {
		logutil.Errorf("%v", err)
		os.Exit(1)
	}
}
