package api

import (
	"encoding/hex"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	appmetrics "github.com/taoyao-code/sysex-kit/internal/metrics"
	"github.com/taoyao-code/sysex-kit/internal/protocol/sysex"
	"github.com/taoyao-code/sysex-kit/internal/registry"
	"github.com/taoyao-code/sysex-kit/internal/report"
)

// Handler SysEx 编解码API处理器
type Handler struct {
	logger  *zap.Logger
	metrics *appmetrics.AppMetrics
}

// NewHandler 创建API处理器
func NewHandler(logger *zap.Logger, m *appmetrics.AppMetrics) *Handler {
	return &Handler{logger: logger, metrics: m}
}

// bytesRequest 十六进制载荷请求体
type bytesRequest struct {
	Data string `json:"data" binding:"required"`
}

// decodeHex 解析请求里的十六进制串（允许空白分隔）
func decodeHex(s string) ([]byte, error) {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r':
			return -1
		}
		return r
	}, s)
	return hex.DecodeString(cleaned)
}

func (h *Handler) bindHexBody(c *gin.Context) ([]byte, bool) {
	var req bytesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing data field"})
		return nil, false
	}
	data, err := decodeHex(req.Data)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "data is not valid hex"})
		return nil, false
	}
	return data, true
}

// manufacturerInfo 厂商信息的JSON投影
type manufacturerInfo struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Group string `json:"group"`
}

// messageInfo 单条消息的JSON投影
type messageInfo struct {
	Class        string            `json:"class"` // universal | manufacturer
	Kind         string            `json:"kind,omitempty"`
	Target       *byte             `json:"target,omitempty"`
	SubID1       *byte             `json:"subId1,omitempty"`
	SubID2       *byte             `json:"subId2,omitempty"`
	Manufacturer *manufacturerInfo `json:"manufacturer,omitempty"`
	PayloadBytes int               `json:"payloadBytes"`
	Digest       string            `json:"digest"`
}

func describe(msg sysex.Message) messageInfo {
	info := messageInfo{
		PayloadBytes: len(msg.Payload()),
		Digest:       report.Digest(msg),
	}
	switch m := msg.(type) {
	case *sysex.UniversalMessage:
		info.Class = "universal"
		info.Kind = m.Kind.String()
		t, s1, s2 := m.Target, m.SubID1, m.SubID2
		info.Target, info.SubID1, info.SubID2 = &t, &s1, &s2
	case *sysex.ManufacturerMessage:
		info.Class = "manufacturer"
		info.Manufacturer = &manufacturerInfo{
			ID:    m.Manufacturer.HexID(),
			Name:  registry.NameFor(m.Manufacturer),
			Group: m.Manufacturer.Group().String(),
		}
	}
	return info
}

// Identify 解析缓冲区内的全部消息并返回身份信息
// POST /api/v1/messages/identify
func (h *Handler) Identify(c *gin.Context) {
	buf, ok := h.bindHexBody(c)
	if !ok {
		return
	}
	frames, err := sysex.SplitMessages(buf)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	messages := make([]messageInfo, 0, len(frames))
	for _, frame := range frames {
		msg, err := sysex.Parse(frame)
		if err != nil {
			h.metrics.ParseTotal.WithLabelValues("error").Inc()
			h.logger.Warn("parse message failed", zap.Int("frameBytes", len(frame)), zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.metrics.ParseTotal.WithLabelValues("ok").Inc()
		info := describe(msg)
		h.metrics.IdentifyTotal.WithLabelValues(info.Class).Inc()
		messages = append(messages, info)
	}
	c.JSON(http.StatusOK, gin.H{"count": len(messages), "messages": messages})
}

// Split 按帧边界拆分缓冲区
// POST /api/v1/messages/split
func (h *Handler) Split(c *gin.Context) {
	buf, ok := h.bindHexBody(c)
	if !ok {
		return
	}
	frames, err := sysex.SplitMessages(buf)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	out := make([]string, 0, len(frames))
	for _, frame := range frames {
		out = append(out, strings.ToUpper(hex.EncodeToString(frame)))
	}
	h.metrics.SplitFramesTotal.Add(float64(len(out)))
	c.JSON(http.StatusOK, gin.H{"count": len(out), "frames": out})
}

// Extract 提取单帧的载荷；多帧缓冲区拒绝处理
// POST /api/v1/messages/extract
func (h *Handler) Extract(c *gin.Context) {
	buf, ok := h.bindHexBody(c)
	if !ok {
		return
	}
	if sysex.MessageCount(buf) > 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "more than one message in buffer, split it first"})
		return
	}
	msg, err := sysex.Parse(buf)
	if err != nil {
		h.metrics.ParseTotal.WithLabelValues("error").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.metrics.ParseTotal.WithLabelValues("ok").Inc()
	c.JSON(http.StatusOK, gin.H{"payload": strings.ToUpper(hex.EncodeToString(msg.Payload()))})
}

// Pack 7bit打包
// POST /api/v1/codec/pack
func (h *Handler) Pack(c *gin.Context) {
	data, ok := h.bindHexBody(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"packed": strings.ToUpper(hex.EncodeToString(sysex.Pack(data)))})
}

// Unpack 7bit解包
// POST /api/v1/codec/unpack
func (h *Handler) Unpack(c *gin.Context) {
	data, ok := h.bindHexBody(c)
	if !ok {
		return
	}
	out, err := sysex.Unpack(data)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"unpacked": strings.ToUpper(hex.EncodeToString(out))})
}

func nybbleOrder(c *gin.Context) (sysex.NybbleOrder, bool) {
	switch c.DefaultQuery("order", "high") {
	case "high":
		return sysex.HighFirst, true
	case "low":
		return sysex.LowFirst, true
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "order must be high or low"})
		return 0, false
	}
}

// Nybblify 半字节展开
// POST /api/v1/codec/nybblify?order=high|low
func (h *Handler) Nybblify(c *gin.Context) {
	data, ok := h.bindHexBody(c)
	if !ok {
		return
	}
	order, ok := nybbleOrder(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"nybbles": strings.ToUpper(hex.EncodeToString(sysex.Nybblify(data, order)))})
}

// Denybblify 半字节合并
// POST /api/v1/codec/denybblify?order=high|low
func (h *Handler) Denybblify(c *gin.Context) {
	data, ok := h.bindHexBody(c)
	if !ok {
		return
	}
	order, ok := nybbleOrder(c)
	if !ok {
		return
	}
	out, err := sysex.Denybblify(data, order)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": strings.ToUpper(hex.EncodeToString(out))})
}

// ListManufacturers 列出注册表全部条目
// GET /api/v1/manufacturers
func (h *Handler) ListManufacturers(c *gin.Context) {
	entries := registry.All()
	c.JSON(http.StatusOK, gin.H{"count": len(entries), "manufacturers": entries})
}

// GetManufacturer 按十六进制ID查询厂商
// GET /api/v1/manufacturers/:id
func (h *Handler) GetManufacturer(c *gin.Context) {
	hexID := c.Param("id")
	idBytes, err := decodeHex(hexID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is not valid hex"})
		return
	}
	m, err := sysex.ManufacturerFromBytes(idBytes)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	// 未收录的ID同样返回分组信息，名称用占位串（软回退，与解析行为一致）
	c.JSON(http.StatusOK, manufacturerInfo{
		ID:    m.HexID(),
		Name:  registry.NameFor(m),
		Group: m.Group().String(),
	})
}

// SearchManufacturers 按名称前缀反查
// GET /api/v1/manufacturers/search?prefix=...
func (h *Handler) SearchManufacturers(c *gin.Context) {
	prefix := c.Query("prefix")
	if prefix == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing prefix"})
		return
	}
	e, err := registry.FindByNamePrefix(prefix)
	if err != nil {
		if errors.Is(err, sysex.ErrInvalidManufacturer) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, e)
}
