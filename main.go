package main

import (
	"github.com/bsv-blockchain/ledger-validator/cmd/ledgercli/ledgercli"
	"github.com/ordishs/gocore"
)

// Name used by build script for the binaries. (Please keep on single line)
const progname = "ledger-validator"

// Version & commit strings injected at build with -ldflags -X...
var version string
var commit string

func init() {
	gocore.SetInfo(progname, version, commit)
}

func main() {
	ledgercli.Main(version, commit)
}
