// Package report 把解析结果渲染为面向用户的文本，供命令行工具使用。
// 核心编解码自身不产生任何用户可见文本。
package report

import (
	"crypto/md5"
	"fmt"

	"github.com/taoyao-code/sysex-kit/internal/protocol/sysex"
	"github.com/taoyao-code/sysex-kit/internal/registry"
)

// Describe 生成单条消息的一行身份描述
func Describe(msg sysex.Message) string {
	switch m := msg.(type) {
	case *sysex.ManufacturerMessage:
		return fmt.Sprintf("Manufacturer: %s (%s, %s), payload = %d bytes",
			registry.NameFor(m.Manufacturer), m.Manufacturer.HexID(), m.Manufacturer.Group(), len(m.Data))
	case *sysex.UniversalMessage:
		return fmt.Sprintf("Universal, kind: %s, target %02X, sub-IDs %02X %02X, payload = %d bytes",
			m.Kind, m.Target, m.SubID1, m.SubID2, len(m.Data))
	default:
		return fmt.Sprintf("unrecognized message type %T", msg)
	}
}

// Digest 序列化消息的MD5摘要（十六进制小写），仅用于展示和比对
func Digest(msg sysex.Message) string {
	return fmt.Sprintf("%x", md5.Sum(msg.Bytes()))
}
