package extractor

import (
	"edgeip_curator/edgepool/model"
	"edgeip_curator/internal/shared/logger"
)

// Strategy 接口定义了从原始文档中抽取候选地址的行为。
// 实现者只负责定位与抽取，不做数值校验。
type Strategy interface {
	// Scan 扫描文档并返回候选 RawToken 切片。
	Scan(doc *model.RawDocument, cfg *Config) ([]model.RawToken, error)

	// Name 返回策略名称，用于日志记录与候选溯源。
	Name() string
}

// Chain 按固定顺序执行抽取策略：先结构化行与带标签文本块，
// 当合计产出低于 MinYield 时再执行全文兜底策略。
// 页面标记并不保证每行都带运营商标签，兜底策略用召回换精度。
type Chain struct {
	cfg      *Config
	primary  []Strategy
	fallback Strategy
}

// NewChain 创建标准的三级策略链。
func NewChain(cfg *Config) *Chain {
	return &Chain{
		cfg: cfg,
		primary: []Strategy{
			&tableStrategy{},
			&labeledTextStrategy{},
		},
		fallback: &fulltextStrategy{},
	}
}

// Extract 在文档上执行策略链，返回按发现顺序排列的候选集合。
// 单个策略的解析失败只记日志并继续，绝不中断整条流水线。
func (c *Chain) Extract(doc *model.RawDocument) []model.RawToken {
	l := logger.WithComponent("EdgePool/Extractor")

	var tokens []model.RawToken
	for _, s := range c.primary {
		got, err := s.Scan(doc, c.cfg)
		if err != nil {
			l.Warn().Err(err).Str("strategy", s.Name()).Msg("Strategy failed, trying remaining strategies.")
			continue
		}
		l.Debug().Int("count", len(got)).Str("strategy", s.Name()).Msg("Strategy finished.")
		tokens = append(tokens, got...)
	}

	if len(tokens) < c.cfg.MinYield {
		l.Info().
			Int("yield", len(tokens)).
			Int("min_yield", c.cfg.MinYield).
			Msg("Yield below threshold, running full-document fallback.")
		got, err := c.fallback.Scan(doc, c.cfg)
		if err != nil {
			l.Warn().Err(err).Str("strategy", c.fallback.Name()).Msg("Fallback strategy failed.")
		} else {
			tokens = append(tokens, got...)
		}
	}

	l.Info().Int("count", len(tokens)).Str("origin", doc.Origin).Msg("Extraction finished.")
	return tokens
}
