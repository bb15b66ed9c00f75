package types

import "strings"

// CarrierConf 定义目标运营商的识别配置。
type CarrierConf struct {
	// Keywords 是逗号分隔的运营商标签关键词列表，支持中文名与英文缩写混用。
	Keywords string `ini:"keywords"`
}

// PipelineConf 包含抽取/校验/整理流水线的行为配置。
type PipelineConf struct {
	MinYield        int    `ini:"min_yield"`        // 低于该数量时触发全文兜底策略
	OrderPolicy     string `ini:"order_policy"`     // "lexicographic" 或 "first-seen"
	ExcludePrefixes string `ini:"exclude_prefixes"` // 逗号分隔的 CIDR 排除规则
	TokenPattern    string `ini:"token_pattern"`    // 可选的 IPv4 候选正则，留空用内置默认
}

// SourceConf 包含文档源特有的配置。
type SourceConf struct {
	URL            string `ini:"url"`
	TimeoutSeconds int    `ini:"timeout_seconds"`
}

// SinkConf 包含输出端的配置。
type SinkConf struct {
	OutputDir      string `ini:"output_dir"`
	Formats        string `ini:"formats"` // 逗号分隔: lines, comma, json
	LinesFile      string `ini:"lines_file"`
	CommaFile      string `ini:"comma_file"`
	JSONFile       string `ini:"json_file"`
	HeaderTimezone string `ini:"header_timezone"` // lines 头部时间戳使用的时区
}

// LogConf contains logging specific configuration
type LogConf struct {
	Level string `ini:"level"`
}

// Config 是 curator 的统一配置结构体。
type Config struct {
	CarrierConf  `ini:"carrier"`
	PipelineConf `ini:"pipeline"`
	SourceConf   `ini:"source"`
	SinkConf     `ini:"sink"`
	LogConf      `ini:"log"`
}

// KeywordList 返回去除空白后的关键词切片。
func (c *CarrierConf) KeywordList() []string {
	return splitCSV(c.Keywords)
}

// ExcludeList 返回去除空白后的排除规则切片。
func (c *PipelineConf) ExcludeList() []string {
	return splitCSV(c.ExcludePrefixes)
}

// FormatList 返回启用的输出格式名。
func (c *SinkConf) FormatList() []string {
	return splitCSV(c.Formats)
}

func splitCSV(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
