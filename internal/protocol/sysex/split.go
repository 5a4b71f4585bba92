package sysex

import "fmt"

// ErrTrailingData 最后一个 Terminator 之后还有残留字节（或整个缓冲区没有 Terminator）
var ErrTrailingData = fmt.Errorf("%w: trailing bytes after last terminator", ErrInvalidMessage)

// MessageCount 统计缓冲区内的消息个数（按 Terminator 计数，不校验帧结构）
func MessageCount(buf []byte) int {
	n := 0
	for _, b := range buf {
		if b == Terminator {
			n++
		}
	}
	return n
}

// SplitMessages 按 Terminator（含）切分缓冲区，按流顺序返回各帧。
// 最后一个 Terminator 之后若有残留字节，完整帧照常返回，同时返回
// ErrTrailingData 告知调用方，不做静默丢弃。
func SplitMessages(buf []byte) ([][]byte, error) {
	frames := make([][]byte, 0, MessageCount(buf))
	start := 0
	for i, b := range buf {
		if b != Terminator {
			continue
		}
		frame := make([]byte, i+1-start)
		copy(frame, buf[start:i+1])
		frames = append(frames, frame)
		start = i + 1
	}
	if start != len(buf) {
		return frames, ErrTrailingData
	}
	return frames, nil
}
