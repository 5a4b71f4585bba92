package sysex

import "fmt"

// 7bit 打包编码（KORG 等厂商使用）：每7个原始字节前置1个索引字节，
// 索引字节的第 i 位保存第 i 个原始字节的最高位，数据字节只保留低7位。

// Pack 打包为 7bit 安全编码。输出长度为 ceil(n/7)+n，不会失败。
func Pack(data []byte) []byte {
	out := make([]byte, 0, len(data)+(len(data)+6)/7)
	for off := 0; off < len(data); off += 7 {
		end := off + 7
		if end > len(data) {
			end = len(data)
		}
		chunk := data[off:end]

		var index byte
		for i, b := range chunk {
			if b&0x80 != 0 {
				index |= 1 << i
			}
		}
		out = append(out, index)
		for _, b := range chunk {
			out = append(out, b&0x7F)
		}
	}
	return out
}

// Unpack 还原打包编码。按8字节分块（1索引+至多7数据），从索引字节
// 恢复每个数据字节的最高位。末块允许不满8字节，但至少要有1个数据字节；
// 只剩孤立索引字节时返回 ErrMalformedEncoding。
func Unpack(data []byte) ([]byte, error) {
	out := make([]byte, 0, len(data)-(len(data)+7)/8)
	for off := 0; off < len(data); off += 8 {
		end := off + 8
		if end > len(data) {
			end = len(data)
		}
		chunk := data[off:end]
		if len(chunk) < 2 {
			return nil, fmt.Errorf("%w: packed chunk at offset %d has no data bytes", ErrMalformedEncoding, off)
		}

		index := chunk[0]
		for i, b := range chunk[1:] {
			v := b &^ 0x80
			if index&(1<<i) != 0 {
				v |= 0x80
			}
			out = append(out, v)
		}
	}
	return out, nil
}
