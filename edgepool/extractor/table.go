package extractor

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"edgeip_curator/edgepool/model"
)

// tableStrategy 从表格行中抽取候选：任一单元格命中运营商关键词时，
// 整行的所有单元格都参与候选抽取。
type tableStrategy struct{}

// Name 返回策略名称。
func (s *tableStrategy) Name() string {
	return "table-rows"
}

// Scan 遍历文档中的所有 tr 单元。
// NOTE: 部分站点使用非标准 HTML，数据单元格是 <th>，因此同时选取 td 与 th。
func (s *tableStrategy) Scan(doc *model.RawDocument, cfg *Config) ([]model.RawToken, error) {
	gq, err := goquery.NewDocumentFromReader(strings.NewReader(doc.Text))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML document: %w", err)
	}

	var tokens []model.RawToken
	gq.Find("tr").Each(func(i int, sel *goquery.Selection) {
		row := model.CandidateRow{}
		sel.Find("td, th").Each(func(_ int, cell *goquery.Selection) {
			row.Cells = append(row.Cells, strings.TrimSpace(cell.Text()))
		})
		if len(row.Cells) == 0 {
			return
		}

		for _, cell := range row.Cells {
			if cfg.matchesKeyword(cell) {
				row.MatchCarrier = true
				break
			}
		}
		if !row.MatchCarrier {
			return
		}

		for _, cell := range row.Cells {
			for _, t := range cfg.tokensIn(cell) {
				tokens = append(tokens, model.RawToken{
					Text:     t,
					Strategy: s.Name(),
					RowIndex: i,
				})
			}
		}
	})

	return tokens, nil
}
