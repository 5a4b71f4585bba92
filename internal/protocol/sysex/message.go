package sysex

import "fmt"

// UniversalKind Universal 消息的时效类别
type UniversalKind uint8

const (
	KindNonRealTime UniversalKind = iota
	KindRealTime
)

// String 类别的显示名
func (k UniversalKind) String() string {
	if k == KindRealTime {
		return "Real-time"
	}
	return "Non-Real-time"
}

// Message 一条完整的 System Exclusive 消息。
// 封闭集合：只有 *UniversalMessage 和 *ManufacturerMessage 两种实现。
type Message interface {
	// Bytes 序列化为完整帧（含定界符），与 Parse 严格互逆
	Bytes() []byte
	// Payload 返回头部之后、Terminator 之前的数据字节
	Payload() []byte

	sysexMessage()
}

// UniversalMessage 标准化的 Universal 消息
type UniversalMessage struct {
	Kind   UniversalKind
	Target byte // 目标设备/通道
	SubID1 byte
	SubID2 byte
	Data   []byte
}

// ManufacturerMessage 厂商自定义消息
type ManufacturerMessage struct {
	Manufacturer Manufacturer
	Data         []byte
}

func (m *UniversalMessage) sysexMessage()    {}
func (m *ManufacturerMessage) sysexMessage() {}

// Payload 返回消息载荷
func (m *UniversalMessage) Payload() []byte { return m.Data }

// Payload 返回消息载荷
func (m *ManufacturerMessage) Payload() []byte { return m.Data }

// Bytes 序列化：F0 + 标记 + target + subID1 + subID2 + payload + F7
func (m *UniversalMessage) Bytes() []byte {
	out := make([]byte, 0, MinUniversalFrameLength+len(m.Data))
	out = append(out, Initiator)
	if m.Kind == KindRealTime {
		out = append(out, RealTime)
	} else {
		out = append(out, NonRealTime)
	}
	out = append(out, m.Target, m.SubID1, m.SubID2)
	out = append(out, m.Data...)
	out = append(out, Terminator)
	return out
}

// Bytes 序列化：F0 + 厂商ID + payload + F7
func (m *ManufacturerMessage) Bytes() []byte {
	id := m.Manufacturer.Bytes()
	out := make([]byte, 0, 2+len(id)+len(m.Data))
	out = append(out, Initiator)
	out = append(out, id...)
	out = append(out, m.Data...)
	out = append(out, Terminator)
	return out
}

// Parse 解析一帧（严格校验：定界符与分类对应的最小长度）。
// 分类由 Initiator 之后的首字节决定：
//
//	0x7D        厂商消息，Development ID
//	0x7E / 0x7F Universal 非实时 / 实时
//	0x00        厂商消息，三字节扩展ID
//	其他        厂商消息，单字节标准ID
func Parse(raw []byte) (Message, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: empty buffer", ErrInvalidMessage)
	}
	if raw[0] != Initiator {
		return nil, fmt.Errorf("%w: missing initiator, first byte 0x%02X", ErrInvalidMessage, raw[0])
	}
	last := len(raw) - 1
	if raw[last] != Terminator {
		return nil, fmt.Errorf("%w: missing terminator, last byte 0x%02X", ErrInvalidMessage, raw[last])
	}
	if len(raw) < MinManufacturerFrameLength {
		return nil, fmt.Errorf("%w: frame too short: %d bytes", ErrInvalidMessage, len(raw))
	}

	switch raw[1] {
	case Development:
		return &ManufacturerMessage{
			Manufacturer: DevelopmentManufacturer,
			Data:         clone(raw[2:last]),
		}, nil
	case NonRealTime, RealTime:
		if len(raw) < MinUniversalFrameLength {
			return nil, fmt.Errorf("%w: universal frame too short: %d bytes", ErrInvalidMessage, len(raw))
		}
		kind := KindNonRealTime
		if raw[1] == RealTime {
			kind = KindRealTime
		}
		return &UniversalMessage{
			Kind:   kind,
			Target: raw[2],
			SubID1: raw[3],
			SubID2: raw[4],
			Data:   clone(raw[5:last]),
		}, nil
	case 0x00:
		if len(raw) < MinExtendedFrameLength {
			return nil, fmt.Errorf("%w: extended id frame too short: %d bytes", ErrInvalidMessage, len(raw))
		}
		return &ManufacturerMessage{
			Manufacturer: ExtendedManufacturer(raw[1], raw[2], raw[3]),
			Data:         clone(raw[4:last]),
		}, nil
	default:
		return &ManufacturerMessage{
			Manufacturer: StandardManufacturer(raw[1]),
			Data:         clone(raw[2:last]),
		}, nil
	}
}

// clone 复制载荷，避免与调用方的缓冲区共享底层数组
func clone(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
