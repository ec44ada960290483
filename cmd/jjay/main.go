package main

import (
	"github.com/acorn-io/cmd"
	"github.com/acorn-io/jjay/cli/pkg/cmds"
)

func main() {
	cmd.Main(cmds.New())
}
