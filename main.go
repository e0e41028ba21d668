package main

import (
	"os"

	"github.com/carlmjohnson/exitcode"
	"github.com/carlmjohnson/headr/head"
)

func main() {
	exitcode.Exit(head.CLI(os.Args[1:]))
}
