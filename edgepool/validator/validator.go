package validator

import (
	"net/netip"
	"strings"

	"edgeip_curator/edgepool/model"
	"edgeip_curator/internal/shared/logger"
)

// DefaultExclusions 是缺省的保留地址排除规则。
// 排除规则是数据而不是代码：按部署通过配置覆盖，语法检查不受影响。
var DefaultExclusions = []string{
	"0.0.0.0/8",
	"127.0.0.0/8",
	"169.254.0.0/16",
	"255.255.255.255/32",
}

// Validator 判定候选文本是否为可用的 IPv4 地址。
type Validator struct {
	exclusions []netip.Prefix
}

// New 根据 CIDR 规则列表构造 Validator。规则为空时使用 DefaultExclusions。
// 裸地址（不带掩码）按 /32 处理；无法解析的规则记日志后跳过。
func New(rules []string) *Validator {
	l := logger.WithComponent("EdgePool/Validator")

	if len(rules) == 0 {
		rules = DefaultExclusions
	}

	v := &Validator{}
	for _, rule := range rules {
		rule = strings.TrimSpace(rule)
		if rule == "" {
			continue
		}
		if !strings.Contains(rule, "/") {
			rule += "/32"
		}
		prefix, err := netip.ParsePrefix(rule)
		if err != nil {
			l.Warn().Err(err).Str("rule", rule).Msg("Skipping unparsable exclusion rule.")
			continue
		}
		v.exclusions = append(v.exclusions, prefix)
	}
	return v
}

// Accept 校验单个候选文本。通过时返回规范化的点分十进制形式。
// 畸形候选是高频的预期结果而不是故障，静默拒绝，只留 debug 观测。
func (v *Validator) Accept(token string) (string, bool) {
	addr, err := netip.ParseAddr(strings.TrimSpace(token))
	if err != nil || !addr.Is4() {
		return "", false
	}
	for _, prefix := range v.exclusions {
		if prefix.Contains(addr) {
			return "", false
		}
	}
	return addr.String(), true
}

// Validate 批量校验候选集合，保持输入顺序，不去重。
func (v *Validator) Validate(tokens []model.RawToken) []model.ValidatedAddress {
	l := logger.WithComponent("EdgePool/Validator")

	accepted := make([]model.ValidatedAddress, 0, len(tokens))
	rejected := 0
	for _, t := range tokens {
		canonical, ok := v.Accept(t.Text)
		if !ok {
			rejected++
			l.Debug().Str("token", t.Text).Str("strategy", t.Strategy).Msg("Token rejected.")
			continue
		}
		accepted = append(accepted, model.ValidatedAddress{Addr: canonical})
	}

	l.Info().Int("accepted", len(accepted)).Int("rejected", rejected).Msg("Validation finished.")
	return accepted
}
