package model

import "time"

// RawDocument 是文档源产出的原始页面，进入流水线后只读。
type RawDocument struct {
	Text     string `json:"-"`        // 已解码为 UTF-8 的正文
	Encoding string `json:"encoding"` // 原始声明或探测到的编码名, e.g. "gbk"
	Origin   string `json:"origin"`   // 来源标识（URL 或文件路径）
}

// CandidateRow 代表文档中的一个结构单元（表格行或文本块）。
type CandidateRow struct {
	Cells        []string // 按出现顺序排列的单元格文本
	MatchCarrier bool     // 任一单元格命中运营商关键词
}

// RawToken 是一个形似 IPv4 的候选子串，保留来源信息用于追踪。
// 该信息只进入日志，不进入最终输出。
type RawToken struct {
	Text     string // 原始候选文本
	Strategy string // 产生该候选的抽取策略名
	RowIndex int    // 所在结构单元的序号, 无结构时为 -1
}

// ValidatedAddress 是通过语法与排除规则校验的地址。
type ValidatedAddress struct {
	Addr string // 规范化的点分十进制形式
}

// CuratedList 是流水线的最终产物：有序去重的地址列表加元数据。
// 它是唯一跨越流水线与输出端边界的实体，每次运行重新生成。
type CuratedList struct {
	Addresses   []string  `json:"addresses"`
	Source      string    `json:"source"`
	GeneratedAt time.Time `json:"generated_at"`
	Count       int       `json:"total_count"`
	RunID       string    `json:"run_id"`
}
