package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/taoyao-code/sysex-kit/internal/logging"
	"github.com/taoyao-code/sysex-kit/internal/protocol/sysex"
	"github.com/taoyao-code/sysex-kit/internal/syxio"
)

func main() {
	verbose := flag.Bool("verbose", false, "打印处理进度")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: syxsplit [-verbose] infile")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	log := logging.NewToolLogger(*verbose)
	defer func() { _ = log.Sync() }()

	path := flag.Arg(0)
	buf, err := syxio.ReadFile(path)
	if err != nil {
		log.Error("read input", zap.Error(err))
		os.Exit(1)
	}

	count := sysex.MessageCount(buf)
	if *verbose {
		fmt.Printf("Found %d messages\n", count)
	}

	frames, splitErr := sysex.SplitMessages(buf)
	if splitErr != nil {
		// 残留字节不静默丢弃：完整帧照常写出，最后以非零状态退出
		log.Warn("incomplete trailing data in input", zap.Error(splitErr))
	}

	if len(frames) > 1 {
		for i, frame := range frames {
			out := syxio.NumberedName(path, i+1)
			if *verbose {
				fmt.Printf("Writing %s\n", out)
			}
			if err := syxio.WriteFile(out, frame); err != nil {
				log.Error("write frame", zap.String("file", out), zap.Error(err))
				os.Exit(1)
			}
		}
	} else if *verbose {
		fmt.Println("Nothing to split")
	}

	if splitErr != nil {
		os.Exit(1)
	}
}
