package sysex

import "errors"

// MIDI System Exclusive 帧格式常量
const (
	// 帧定界符
	Initiator  = 0xF0 // 帧起始字节
	Terminator = 0xF7 // 帧结束字节

	// 保留的第二字节（紧跟 Initiator 之后）
	Development = 0x7D // 开发/非商用厂商ID
	NonRealTime = 0x7E // Universal 非实时标记
	RealTime    = 0x7F // Universal 实时标记

	// 最小帧长度
	MinManufacturerFrameLength = 3 // F0 + 厂商ID(1) + F7
	MinExtendedFrameLength     = 5 // F0 + 厂商ID(3) + F7
	MinUniversalFrameLength    = 6 // F0 + 标记 + target + subID1 + subID2 + F7
)

var (
	ErrInvalidMessage      = errors.New("invalid sysex message")
	ErrInvalidManufacturer = errors.New("invalid manufacturer id")
	ErrMalformedEncoding   = errors.New("malformed encoding")
)
