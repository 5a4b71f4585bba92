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
		fmt.Fprintln(os.Stderr, "usage: syxident file")
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

	frames, err := sysex.SplitMessages(buf)
	if err != nil {
		log.Error("split messages", zap.Error(err))
		os.Exit(1)
	}
	if len(frames) == 0 {
		fmt.Println("No System Exclusive messages found")
		return
	}

	for i, frame := range frames {
		msg, err := sysex.Parse(frame)
		if err != nil {
			log.Error("parse message", zap.Int("index", i+1), zap.Error(err))
			os.Exit(1)
		}
		fmt.Printf("Message %d of %d\n", i+1, len(frames))
		fmt.Println(report.Describe(msg))
		fmt.Printf("MD5 digest: %s\n", report.Digest(msg))
		fmt.Println()
	}
}
