package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/taoyao-code/sysex-kit/internal/logging"
	"github.com/taoyao-code/sysex-kit/internal/protocol/sysex"
	"github.com/taoyao-code/sysex-kit/internal/report"
	"github.com/taoyao-code/sysex-kit/internal/syxio"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: syxsections infile")
	}
	flag.Parse()
	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	log := logging.NewToolLogger(false)
	defer func() { _ = log.Sync() }()

	buf, err := syxio.ReadFile(flag.Arg(0))
	if err != nil {
		log.Error("read input", zap.Error(err))
		os.Exit(1)
	}

	if sysex.MessageCount(buf) > 1 {
		fmt.Fprintln(os.Stderr, "More than one System Exclusive message found. Please use syxsplit to separate them.")
		os.Exit(1)
	}

	sections, err := report.Sections(buf)
	if err != nil {
		log.Error("analyze message", zap.Error(err))
		os.Exit(1)
	}

	fmt.Printf("%-8s %-8s %s\n", "offset", "length", "section")
	for _, s := range sections {
		fmt.Printf("%08d %8d %s: %s\n", s.Offset, s.Length, s.Kind, s.Name)
	}
}
