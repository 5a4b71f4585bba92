// syxreceive 从stdin读取 ReceiveMIDI 的文本输出，还原其中的
// System Exclusive 消息并逐条写入按时间戳命名的 .syx 文件。
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/taoyao-code/sysex-kit/internal/logging"
	"github.com/taoyao-code/sysex-kit/internal/receive"
	"github.com/taoyao-code/sysex-kit/internal/syxio"
)

func main() {
	dir := flag.String("dir", ".", "抓取文件的输出目录")
	flag.Parse()

	log := logging.NewToolLogger(false)
	defer func() { _ = log.Sync() }()

	scanner := bufio.NewScanner(os.Stdin)
	// SysEx dump可能很长，放宽单行上限
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	for scanner.Scan() {
		frame, ok := receive.ParseLine(scanner.Text())
		if !ok {
			continue
		}
		fmt.Printf("Received %d bytes of System Exclusive data\n", len(frame))

		path := filepath.Join(*dir, receive.Filename(time.Now()))
		if err := syxio.WriteFile(path, frame); err != nil {
			log.Error("write capture", zap.String("file", path), zap.Error(err))
			os.Exit(1)
		}
	}
	if err := scanner.Err(); err != nil {
		log.Error("read stdin", zap.Error(err))
		os.Exit(1)
	}
}
