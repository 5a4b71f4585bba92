// Package testutil 提供跨包测试共用的SysEx样本数据。
package testutil

// KawaiOneBlockDump Kawai K4 单block数据转储请求帧
var KawaiOneBlockDump = []byte{0xF0, 0x40, 0x00, 0x20, 0x00, 0x04, 0x00, 0x3F, 0xF7}

// AlesisExtendedFrame 三字节扩展厂商ID（Alesis）帧
var AlesisExtendedFrame = []byte{0xF0, 0x00, 0x00, 0x0E, 0x00, 0x41, 0x63, 0x00, 0x5D, 0xF7}

// UniversalIdentityRequest Universal 非实时 Identity Request帧
var UniversalIdentityRequest = []byte{0xF0, 0x7E, 0x00, 0x06, 0x01, 0xF7}

// DevelopmentFrame 开发/非商用厂商帧
var DevelopmentFrame = []byte{0xF0, 0x7D, 0x01, 0x02, 0x03, 0xF7}

// MultiFrameBuffer 两条消息的级联缓冲区
var MultiFrameBuffer = []byte{0xF0, 0x43, 0xF7, 0xF0, 0x41, 0x01, 0xF7}

// AllFrames 全部单帧样本
func AllFrames() [][]byte {
	return [][]byte{
		KawaiOneBlockDump,
		AlesisExtendedFrame,
		UniversalIdentityRequest,
		DevelopmentFrame,
	}
}

// Concat 把若干帧拼成一个缓冲区
func Concat(frames ...[]byte) []byte {
	var out []byte
	for _, f := range frames {
		out = append(out, f...)
	}
	return out
}
