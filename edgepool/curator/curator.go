package curator

import (
	"fmt"
	"sort"
	"time"

	"edgeip_curator/edgepool/model"
	"edgeip_curator/internal/shared/logger"
)

// OrderPolicy 决定最终列表的排序方式。
// 整条流水线只用一种策略，由配置固定，绝不在运行间隐式切换。
type OrderPolicy string

const (
	// OrderLexicographic 按点分十进制字符串做字典序升序。
	OrderLexicographic OrderPolicy = "lexicographic"
	// OrderFirstSeen 保持抽取阶段的首次发现顺序。
	OrderFirstSeen OrderPolicy = "first-seen"
)

// ParseOrderPolicy 解析配置中的排序策略名。空值取字典序默认。
func ParseOrderPolicy(raw string) (OrderPolicy, error) {
	switch OrderPolicy(raw) {
	case "":
		return OrderLexicographic, nil
	case OrderLexicographic, OrderFirstSeen:
		return OrderPolicy(raw), nil
	default:
		return "", fmt.Errorf("unknown order policy %q", raw)
	}
}

// Curator 把校验通过的地址收敛为最终交付列表。
type Curator struct {
	policy OrderPolicy
}

// New 创建 Curator。
func New(policy OrderPolicy) *Curator {
	return &Curator{policy: policy}
}

// Curate 去重、排序并附加元数据。零个地址产出合法的空列表，不是错误。
func (c *Curator) Curate(addrs []model.ValidatedAddress, source string, generatedAt time.Time, runID string) *model.CuratedList {
	l := logger.WithComponent("EdgePool/Curator")

	unique := make([]string, 0, len(addrs))
	seen := make(map[string]struct{}, len(addrs))
	for _, a := range addrs {
		if _, ok := seen[a.Addr]; ok {
			continue
		}
		seen[a.Addr] = struct{}{}
		unique = append(unique, a.Addr)
	}

	if c.policy == OrderLexicographic {
		sort.Strings(unique)
	}

	list := &model.CuratedList{
		Addresses:   unique,
		Source:      source,
		GeneratedAt: generatedAt,
		Count:       len(unique),
		RunID:       runID,
	}

	l.Info().
		Int("count", list.Count).
		Str("order_policy", string(c.policy)).
		Str("run_id", runID).
		Msg("Curation finished.")
	return list
}
