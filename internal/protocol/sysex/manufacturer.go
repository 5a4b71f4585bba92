package sysex

import "fmt"

// ManufacturerKind 厂商ID的形态
type ManufacturerKind uint8

const (
	StandardID    ManufacturerKind = iota // 单字节标准ID
	ExtendedID                            // 三字节扩展ID（首字节约定为0x00）
	DevelopmentID                         // 开发/非商用ID 0x7D
)

// ManufacturerGroup 厂商所属地区分组（按MIDI厂商ID编号段推导，不持久化）
type ManufacturerGroup uint8

const (
	GroupDevelopment ManufacturerGroup = iota
	GroupNorthAmerican
	GroupEuropeanAndOther
	GroupJapanese
)

// String 分组的显示名
func (g ManufacturerGroup) String() string {
	switch g {
	case GroupNorthAmerican:
		return "North American"
	case GroupEuropeanAndOther:
		return "European & Other"
	case GroupJapanese:
		return "Japanese"
	default:
		return "Development"
	}
}

// Manufacturer MIDI 厂商标识。值类型，可用 == 比较。
// Standard 形态只使用 ID[0]；Development 形态不使用 ID。
type Manufacturer struct {
	Kind ManufacturerKind
	ID   [3]byte
}

// 预置的开发/非商用厂商标识
var DevelopmentManufacturer = Manufacturer{Kind: DevelopmentID}

// StandardManufacturer 构造单字节厂商标识（0x7D 归一化为 Development）
func StandardManufacturer(b byte) Manufacturer {
	if b == Development {
		return DevelopmentManufacturer
	}
	return Manufacturer{Kind: StandardID, ID: [3]byte{b}}
}

// ExtendedManufacturer 构造三字节厂商标识
func ExtendedManufacturer(b0, b1, b2 byte) Manufacturer {
	return Manufacturer{Kind: ExtendedID, ID: [3]byte{b0, b1, b2}}
}

// ManufacturerFromBytes 从原始字节构造厂商标识。
// 只接受1字节或3字节输入；三字节形态的首字节由帧解析保证为0x00，这里不做校验。
func ManufacturerFromBytes(b []byte) (Manufacturer, error) {
	switch len(b) {
	case 1:
		return StandardManufacturer(b[0]), nil
	case 3:
		return ExtendedManufacturer(b[0], b[1], b[2]), nil
	default:
		return Manufacturer{}, fmt.Errorf("%w: need 1 or 3 bytes, got %d", ErrInvalidManufacturer, len(b))
	}
}

// Bytes 序列化为帧内的厂商ID字节
func (m Manufacturer) Bytes() []byte {
	switch m.Kind {
	case ExtendedID:
		return []byte{m.ID[0], m.ID[1], m.ID[2]}
	case DevelopmentID:
		return []byte{Development}
	default:
		return []byte{m.ID[0]}
	}
}

// Group 推导厂商所属地区分组。
// 标准ID按编号段划分；扩展ID的地区信息编码在第二字节的高位比特。
func (m Manufacturer) Group() ManufacturerGroup {
	switch m.Kind {
	case DevelopmentID:
		return GroupDevelopment
	case StandardID:
		b := m.ID[0]
		switch {
		case b >= 0x01 && b < 0x40:
			return GroupNorthAmerican
		case b >= 0x40 && b < 0x60:
			return GroupJapanese
		default:
			return GroupEuropeanAndOther
		}
	default:
		b1 := m.ID[1]
		switch {
		case b1&0x40 != 0:
			return GroupJapanese
		case b1&0x20 != 0:
			return GroupEuropeanAndOther
		default:
			return GroupNorthAmerican
		}
	}
}

// HexID 规范化的十六进制ID（大写、无分隔符），用作名称注册表的键
func (m Manufacturer) HexID() string {
	switch m.Kind {
	case ExtendedID:
		return fmt.Sprintf("%02X%02X%02X", m.ID[0], m.ID[1], m.ID[2])
	case DevelopmentID:
		return fmt.Sprintf("%02X", byte(Development))
	default:
		return fmt.Sprintf("%02X", m.ID[0])
	}
}

func (m Manufacturer) String() string {
	return m.HexID()
}
