// Package syxio 负责 .syx 文件的整块读写与拆分输出的文件命名。
// 编解码核心只处理已就位的完整缓冲区，所有文件访问集中在这里。
package syxio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ReadFile 一次性读入整个文件
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

// WriteFile 覆盖写出整个缓冲区
func WriteFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// NumberedName 生成拆分输出的文件名：stem-NNN.ext（三位序号，从1开始）。
// 例如 bank.syx 的第2帧写为 bank-002.syx。
func NumberedName(path string, index int) string {
	dir := filepath.Dir(path)
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	return filepath.Join(dir, fmt.Sprintf("%s-%03d%s", stem, index, ext))
}
