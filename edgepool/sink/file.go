package sink

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"edgeip_curator/edgepool/model"
)

// LinesSink 按行写出地址，带注释头（更新时间、来源、总数）。
type LinesSink struct {
	path string
	loc  *time.Location
}

// NewLinesSink 创建一个新的 LinesSink 实例。
func NewLinesSink(path string, loc *time.Location) *LinesSink {
	return &LinesSink{path: path, loc: loc}
}

// Name 返回输出文件路径。
func (s *LinesSink) Name() string {
	return s.path
}

// Write 写出带注释头的逐行列表。
func (s *LinesSink) Write(list *model.CuratedList) error {
	var sb strings.Builder
	sb.WriteString("# 优选IP地址列表\n")
	fmt.Fprintf(&sb, "# 更新时间: %s\n", list.GeneratedAt.In(s.loc).Format(headerTimeFormat))
	fmt.Fprintf(&sb, "# 数据来源: %s\n", list.Source)
	fmt.Fprintf(&sb, "# 总数: %d\n\n", list.Count)
	for _, addr := range list.Addresses {
		sb.WriteString(addr)
		sb.WriteString("\n")
	}
	return os.WriteFile(s.path, []byte(sb.String()), 0644)
}

// CommaSink 把全部地址写成单行逗号分隔列表。
type CommaSink struct {
	path string
}

// NewCommaSink 创建一个新的 CommaSink 实例。
func NewCommaSink(path string) *CommaSink {
	return &CommaSink{path: path}
}

// Name 返回输出文件路径。
func (s *CommaSink) Name() string {
	return s.path
}

// Write 写出逗号分隔的单行列表。
func (s *CommaSink) Write(list *model.CuratedList) error {
	return os.WriteFile(s.path, []byte(strings.Join(list.Addresses, ",")+"\n"), 0644)
}

// JSONSink 写出结构化记录: { update_time, source, total_count, addresses }。
type JSONSink struct {
	path string
	loc  *time.Location
}

// NewJSONSink 创建一个新的 JSONSink 实例。
func NewJSONSink(path string, loc *time.Location) *JSONSink {
	return &JSONSink{path: path, loc: loc}
}

// Name 返回输出文件路径。
func (s *JSONSink) Name() string {
	return s.path
}

type jsonRecord struct {
	UpdateTime string   `json:"update_time"`
	Source     string   `json:"source"`
	TotalCount int      `json:"total_count"`
	RunID      string   `json:"run_id"`
	Addresses  []string `json:"addresses"`
}

// Write 写出 JSON 记录。
func (s *JSONSink) Write(list *model.CuratedList) error {
	record := jsonRecord{
		UpdateTime: list.GeneratedAt.In(s.loc).Format(headerTimeFormat),
		Source:     list.Source,
		TotalCount: list.Count,
		RunID:      list.RunID,
		Addresses:  list.Addresses,
	}
	if record.Addresses == nil {
		record.Addresses = []string{}
	}
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal curated list: %w", err)
	}
	return os.WriteFile(s.path, append(data, '\n'), 0644)
}
