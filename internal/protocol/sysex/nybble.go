package sysex

import "fmt"

// NybbleOrder 半字节展开/合并时的先后顺序
type NybbleOrder uint8

const (
	HighFirst NybbleOrder = iota // 高4位在前
	LowFirst                     // 低4位在前
)

// Nybblify 把每个字节拆成两个半字节（各占一个字节，取值0..15）
func Nybblify(data []byte, order NybbleOrder) []byte {
	out := make([]byte, 0, len(data)*2)
	for _, b := range data {
		hi := (b & 0xF0) >> 4
		lo := b & 0x0F
		if order == LowFirst {
			out = append(out, lo, hi)
		} else {
			out = append(out, hi, lo)
		}
	}
	return out
}

// Denybblify 把相邻的半字节对合并回原始字节。输入长度必须为偶数。
func Denybblify(data []byte, order NybbleOrder) ([]byte, error) {
	if len(data)%2 != 0 {
		return nil, fmt.Errorf("%w: odd nybble count %d", ErrMalformedEncoding, len(data))
	}
	out := make([]byte, 0, len(data)/2)
	for i := 0; i < len(data); i += 2 {
		hi, lo := data[i], data[i+1]
		if order == LowFirst {
			hi, lo = lo, hi
		}
		out = append(out, (hi&0x0F)<<4|lo&0x0F)
	}
	return out, nil
}
