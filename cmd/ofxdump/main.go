// Command ofxdump prints the typed contents of OFX 1.6 files.
package main

import (
	"flag"
	"os"

	"github.com/golang/glog"
)

func main() {
	defer glog.Flush()
	if err := newRootCmd(flag.CommandLine).Execute(); err != nil {
		glog.Errorf("ofxdump: %v", err)
		os.Exit(1)
	}
}
