package edgepool

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"edgeip_curator/edgepool/curator"
	"edgeip_curator/edgepool/extractor"
	"edgeip_curator/edgepool/model"
	"edgeip_curator/edgepool/sink"
	"edgeip_curator/edgepool/source"
	"edgeip_curator/edgepool/validator"
	"edgeip_curator/internal/shared/logger"
	"edgeip_curator/internal/shared/types"
)

// Manager 是整理流水线的总控制器，把各组件按
// Source → Extractor → Validator → Curator → Sink 的顺序串起来。
// 组件之间不共享可变状态，每次运行都是全新的一轮。
type Manager struct {
	source    source.DocumentSource
	chain     *extractor.Chain
	validator *validator.Validator
	curator   *curator.Curator
	sinks     []sink.Sink
}

// NewManager 根据统一配置构造流水线。配置非法时立即报错，而不是运行到一半才失败。
func NewManager(cfg *types.Config) (*Manager, error) {
	exCfg, err := extractor.NewConfig(cfg.KeywordList(), cfg.TokenPattern, cfg.MinYield)
	if err != nil {
		return nil, fmt.Errorf("invalid extractor config: %w", err)
	}

	policy, err := curator.ParseOrderPolicy(cfg.OrderPolicy)
	if err != nil {
		return nil, fmt.Errorf("invalid curator config: %w", err)
	}

	sinks, err := sink.FromConfig(cfg.SinkConf)
	if err != nil {
		return nil, fmt.Errorf("invalid sink config: %w", err)
	}

	if cfg.SourceConf.URL == "" {
		return nil, fmt.Errorf("source url is required")
	}

	return &Manager{
		source:    source.NewHTTPSource(cfg.SourceConf.URL, time.Duration(cfg.TimeoutSeconds)*time.Second),
		chain:     extractor.NewChain(exCfg),
		validator: validator.New(cfg.ExcludeList()),
		curator:   curator.New(policy),
		sinks:     sinks,
	}, nil
}

// UseSource 替换文档源，用于测试或非 HTTP 来源。
func (m *Manager) UseSource(s source.DocumentSource) {
	m.source = s
}

// UseSinks 替换输出端集合。
func (m *Manager) UseSinks(sinks ...sink.Sink) {
	m.sinks = sinks
}

// Run 执行一轮完整的整理流程并返回最终列表。
// 零个命中是合法结果，返回空列表而不是错误；
// 只有文档源与输出端的 I/O 失败会以错误上抛。
func (m *Manager) Run() (*model.CuratedList, error) {
	l := logger.WithComponent("EdgePool/Manager")
	runID := uuid.NewString()
	l.Info().Str("run_id", runID).Str("source", m.source.Name()).Msg("Starting curation run...")

	doc, err := m.source.Fetch()
	if err != nil {
		return nil, fmt.Errorf("document source failed: %w", err)
	}

	tokens := m.chain.Extract(doc)
	addrs := m.validator.Validate(tokens)
	list := m.curator.Curate(addrs, doc.Origin, time.Now(), runID)

	if list.Count == 0 {
		l.Warn().Str("run_id", runID).Msg("No carrier addresses found in this run.")
	}

	for _, snk := range m.sinks {
		if err := snk.Write(list); err != nil {
			return list, fmt.Errorf("sink %s failed: %w", snk.Name(), err)
		}
		l.Info().Str("sink", snk.Name()).Int("count", list.Count).Msg("Curated list written.")
	}

	l.Info().Str("run_id", runID).Int("count", list.Count).Msg("Curation run finished.")
	return list, nil
}
