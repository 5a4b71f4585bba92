package report

import (
	"fmt"

	"github.com/taoyao-code/sysex-kit/internal/protocol/sysex"
	"github.com/taoyao-code/sysex-kit/internal/registry"
)

// SectionKind 帧内区段类别
type SectionKind uint8

const (
	SectionInitiator SectionKind = iota
	SectionManufacturer
	SectionUniversalHeader
	SectionPayload
	SectionTerminator
)

// String 区段类别的显示名
func (k SectionKind) String() string {
	switch k {
	case SectionInitiator:
		return "Message initiator"
	case SectionManufacturer:
		return "Manufacturer identifier"
	case SectionUniversalHeader:
		return "Universal message identifier"
	case SectionPayload:
		return "Message payload"
	default:
		return "Message terminator"
	}
}

// Section 单帧内一个连续区段
type Section struct {
	Kind   SectionKind
	Name   string
	Offset int // 相对帧起始的偏移
	Length int // 区段字节数
}

// Sections 生成单帧的区段表。帧必须是完整合法的消息。
func Sections(raw []byte) ([]Section, error) {
	msg, err := sysex.Parse(raw)
	if err != nil {
		return nil, err
	}

	sections := []Section{
		{Kind: SectionInitiator, Name: "System Exclusive Initiator", Offset: 0, Length: 1},
	}
	offset := 1

	switch m := msg.(type) {
	case *sysex.ManufacturerMessage:
		idLen := len(m.Manufacturer.Bytes())
		sections = append(sections, Section{
			Kind:   SectionManufacturer,
			Name:   registry.NameFor(m.Manufacturer),
			Offset: offset,
			Length: idLen,
		})
		offset += idLen
	case *sysex.UniversalMessage:
		sections = append(sections, Section{
			Kind:   SectionUniversalHeader,
			Name:   fmt.Sprintf("Universal (%s)", m.Kind),
			Offset: offset,
			Length: 4, // 标记 + target + subID1 + subID2
		})
		offset += 4
	}

	if n := len(msg.Payload()); n > 0 {
		sections = append(sections, Section{
			Kind:   SectionPayload,
			Name:   "Message payload",
			Offset: offset,
			Length: n,
		})
		offset += n
	}

	sections = append(sections, Section{
		Kind:   SectionTerminator,
		Name:   "System Exclusive Terminator",
		Offset: offset,
		Length: 1,
	})
	return sections, nil
}
