package extractor

import (
	"fmt"
	"regexp"
	"strings"
)

// defaultTokenPattern 匹配四组 1-3 位十进制数字的点分形式。
// 此处只做形态匹配，数值范围由 Validator 负责。
const defaultTokenPattern = `\b(?:[0-9]{1,3}\.){3}[0-9]{1,3}\b`

// Config 是抽取阶段的配置：运营商关键词、候选正则与兜底阈值。
type Config struct {
	keywords []string // 已转为小写，用于大小写不敏感匹配
	pattern  *regexp.Regexp
	MinYield int
}

// NewConfig 构造抽取配置。pattern 为空时使用内置默认正则，
// minYield 小于等于 0 时取默认值 3。
func NewConfig(keywords []string, pattern string, minYield int) (*Config, error) {
	if len(keywords) == 0 {
		return nil, fmt.Errorf("at least one carrier keyword is required")
	}
	lowered := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		if trimmed := strings.TrimSpace(kw); trimmed != "" {
			lowered = append(lowered, strings.ToLower(trimmed))
		}
	}
	if len(lowered) == 0 {
		return nil, fmt.Errorf("at least one carrier keyword is required")
	}

	if pattern == "" {
		pattern = defaultTokenPattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid token pattern %q: %w", pattern, err)
	}

	if minYield <= 0 {
		minYield = 3
	}

	return &Config{
		keywords: lowered,
		pattern:  re,
		MinYield: minYield,
	}, nil
}

// matchesKeyword 判断文本是否包含任一运营商关键词（大小写不敏感子串匹配）。
func (c *Config) matchesKeyword(text string) bool {
	lowered := strings.ToLower(text)
	for _, kw := range c.keywords {
		if strings.Contains(lowered, kw) {
			return true
		}
	}
	return false
}

// tokensIn 返回文本中所有形似 IPv4 的候选子串。
func (c *Config) tokensIn(text string) []string {
	return c.pattern.FindAllString(text, -1)
}
