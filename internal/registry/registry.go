// Package registry 提供MIDI厂商ID到厂商名称的只读注册表。
// 数据来自官方厂商ID注册表的静态节选，编译期内嵌，首次访问时构建索引，
// 之后只读，可被任意数量的并发读者共享。
package registry

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/taoyao-code/sysex-kit/internal/protocol/sysex"
)

//go:embed manufacturers.yaml
var manufacturersYAML []byte

// UnknownName 查不到名称时返回的占位串。
// 注册表随时间追加条目，结构合法但未收录的ID不视为错误。
const UnknownName = "Unknown manufacturer"

// Entry 注册表条目
type Entry struct {
	ID        string `yaml:"id" json:"id"`               // 规范化十六进制ID（大写，无分隔符）
	Name      string `yaml:"name" json:"name"`           // 显示名
	Canonical string `yaml:"canonical" json:"canonical"` // 注册表中的正式名称（可省略，默认同Name）
}

type table struct {
	Manufacturers []Entry `yaml:"manufacturers"`
}

var (
	loadOnce sync.Once
	byHexID  map[string]Entry
)

func load() {
	loadOnce.Do(func() {
		var t table
		if err := yaml.Unmarshal(manufacturersYAML, &t); err != nil {
			// 内嵌数据损坏属于构建缺陷，不属于运行期输入错误
			panic(fmt.Sprintf("registry: bad embedded manufacturer table: %v", err))
		}
		byHexID = make(map[string]Entry, len(t.Manufacturers))
		for _, e := range t.Manufacturers {
			if e.Canonical == "" {
				e.Canonical = e.Name
			}
			byHexID[strings.ToUpper(e.ID)] = e
		}
	})
}

// Lookup 按规范化十六进制ID查询条目
func Lookup(hexID string) (Entry, bool) {
	load()
	e, ok := byHexID[strings.ToUpper(hexID)]
	return e, ok
}

// NameFor 返回厂商的显示名；未收录的ID返回 UnknownName 而非报错
func NameFor(m sysex.Manufacturer) string {
	if e, ok := Lookup(m.HexID()); ok {
		return e.Name
	}
	return UnknownName
}

// FindByNamePrefix 按名称前缀（不区分大小写）反查条目。
// 多个条目共享前缀时返回哪一个取决于map遍历顺序，结果不确定。
func FindByNamePrefix(prefix string) (Entry, error) {
	load()
	p := strings.ToLower(prefix)
	for _, e := range byHexID {
		if strings.HasPrefix(strings.ToLower(e.Name), p) {
			return e, nil
		}
	}
	return Entry{}, fmt.Errorf("%w: no manufacturer named %q", sysex.ErrInvalidManufacturer, prefix)
}

// All 返回全部条目（副本，顺序不确定）
func All() []Entry {
	load()
	out := make([]Entry, 0, len(byHexID))
	for _, e := range byHexID {
		out = append(out, e)
	}
	return out
}
