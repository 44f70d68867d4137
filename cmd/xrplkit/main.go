package main

import (
	"github.com/LeJamon/goXRPLkit/internal/cli"
	_ "github.com/LeJamon/goXRPLkit/internal/core/tx/all"
)

func main() {
	cli.Execute()
}
