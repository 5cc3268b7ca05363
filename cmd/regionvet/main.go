// Command regionvet reports recover calls that may swallow signals of the
// exception package.
//
// USAGE:
//
//	regionvet [FLAGS] [PACKAGES]
package main

import (
	"github.com/stealthrocket/exception/analysis/recovercheck"
	"golang.org/x/tools/go/analysis/singlechecker"
)

func main() {
	singlechecker.Main(recovercheck.Analyzer)
}
