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
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: syxextract infile outfile")
	}
	flag.Parse()
	if flag.NArg() < 2 {
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

	// 解析之后定界符与厂商ID字节都已剥离，剩下的就是载荷。
	// 例如原始消息 "F0 42 30 28 54 02 ... 5C F7" 的载荷是 "30 28 54 02 ... 5C"。
	msg, err := sysex.Parse(buf)
	if err != nil {
		log.Error("parse message", zap.Error(err))
		os.Exit(1)
	}

	if err := syxio.WriteFile(flag.Arg(1), msg.Payload()); err != nil {
		log.Error("write payload", zap.Error(err))
		os.Exit(1)
	}
}
