package extractor

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"edgeip_curator/edgepool/model"
)

// fulltextStrategy 在整个文档文本上做正则扫描，不看运营商标签。
// 只作为产出不足时的兜底，牺牲精度换取召回。
type fulltextStrategy struct{}

// Name 返回策略名称。
func (s *fulltextStrategy) Name() string {
	return "full-document"
}

// Scan 对全文执行候选抽取。优先用解析后的纯文本，
// 解析失败时退回到原始文本，保证该策略总能运行。
func (s *fulltextStrategy) Scan(doc *model.RawDocument, cfg *Config) ([]model.RawToken, error) {
	text := doc.Text
	if gq, err := goquery.NewDocumentFromReader(strings.NewReader(doc.Text)); err == nil {
		text = gq.Text()
	}

	var tokens []model.RawToken
	for _, t := range cfg.tokensIn(text) {
		tokens = append(tokens, model.RawToken{
			Text:     t,
			Strategy: s.Name(),
			RowIndex: -1,
		})
	}
	return tokens, nil
}
