// Package receive 解析 ReceiveMIDI 风格的文本行并还原出完整的SysEx帧。
// 行格式：system-exclusive (hex|dec) <byte> <byte> ...，其他行一律跳过。
package receive

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/taoyao-code/sysex-kit/internal/protocol/sysex"
)

// ParseLine 解析一行。返回补上定界符的完整帧；不是SysEx行时 ok 为 false。
// 无法按指定进制解析的字节串跳过，与 ReceiveMIDI 输出的宽松格式保持一致。
func ParseLine(line string) (frame []byte, ok bool) {
	parts := strings.Fields(line)
	// 至少需要 "system-exclusive"、进制标记和一个字节
	if len(parts) < 3 {
		return nil, false
	}
	if parts[0] != "system-exclusive" {
		return nil, false
	}

	base := 10
	if parts[1] == "hex" {
		base = 16
	}

	frame = make([]byte, 0, len(parts))
	frame = append(frame, sysex.Initiator)
	for _, p := range parts[2:] {
		b, err := strconv.ParseUint(p, base, 8)
		if err != nil {
			continue
		}
		frame = append(frame, byte(b))
	}
	frame = append(frame, sysex.Terminator)
	return frame, true
}

// Filename 生成按接收时刻命名的抓取文件名：<unix秒>.syx
func Filename(now time.Time) string {
	return fmt.Sprintf("%d.syx", now.Unix())
}
