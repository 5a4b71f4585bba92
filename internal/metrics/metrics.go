package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRegistry 创建自定义 Prometheus Registry，并注册常用采集器
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// Handler 返回 Prometheus 指标 HTTP 处理器
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})
}

// AppMetrics 自定义业务指标
type AppMetrics struct {
	ParseTotal       *prometheus.CounterVec // labels: result=ok|error
	IdentifyTotal    *prometheus.CounterVec // labels: class=universal|manufacturer
	SplitFramesTotal prometheus.Counter     // 拆分产出的帧总数
	RateLimited      prometheus.Counter     // 被限流拒绝的请求数
}

// NewAppMetrics 注册并返回业务指标
func NewAppMetrics(reg *prometheus.Registry) *AppMetrics {
	m := &AppMetrics{
		ParseTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sysex_parse_total",
			Help: "SysEx frame parse attempts.",
		}, []string{"result"}),
		IdentifyTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sysex_identify_total",
			Help: "Identified messages by classification.",
		}, []string{"class"}),
		SplitFramesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "sysex_split_frames_total",
			Help: "Total frames produced by buffer splitting.",
		}),
		RateLimited: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "http_rate_limited_total",
			Help: "Requests rejected by the rate limiter.",
		}),
	}
	reg.MustRegister(m.ParseTotal, m.IdentifyTotal, m.SplitFramesTotal, m.RateLimited)
	return m
}
