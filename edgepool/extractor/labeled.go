package extractor

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"edgeip_curator/edgepool/model"
)

// blockTags 是可作为候选抽取边界的块级元素。
// 只在命中关键词的文本节点所在块内抽取，避免把页面其他区域的地址误收进来。
var blockTags = map[string]bool{
	"p": true, "div": true, "li": true, "tr": true, "td": true, "th": true,
	"section": true, "article": true, "pre": true, "blockquote": true, "body": true,
}

// labeledTextStrategy 扫描所有文本节点，在包含运营商关键词的
// 文本节点所处的块级元素内抽取候选。
type labeledTextStrategy struct{}

// Name 返回策略名称。
func (s *labeledTextStrategy) Name() string {
	return "labeled-text"
}

// Scan 执行带标签文本块扫描。
func (s *labeledTextStrategy) Scan(doc *model.RawDocument, cfg *Config) ([]model.RawToken, error) {
	root, err := html.Parse(strings.NewReader(doc.Text))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML document: %w", err)
	}

	var tokens []model.RawToken
	visited := make(map[*html.Node]bool)
	blockIndex := 0

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode && cfg.matchesKeyword(n.Data) {
			block := enclosingBlock(n)
			if block != nil && !visited[block] {
				visited[block] = true
				for _, t := range cfg.tokensIn(nodeText(block)) {
					tokens = append(tokens, model.RawToken{
						Text:     t,
						Strategy: s.Name(),
						RowIndex: blockIndex,
					})
				}
				blockIndex++
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && (c.Data == "script" || c.Data == "style") {
				continue
			}
			walk(c)
		}
	}
	walk(root)

	return tokens, nil
}

// enclosingBlock 向上查找最近的块级祖先元素。
func enclosingBlock(n *html.Node) *html.Node {
	for p := n.Parent; p != nil; p = p.Parent {
		if p.Type == html.ElementNode && blockTags[p.Data] {
			return p
		}
	}
	return n.Parent
}

// nodeText 收集一个节点子树内的全部文本，跳过 script/style。
func nodeText(n *html.Node) string {
	var sb strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			sb.WriteString(" ")
			return
		}
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}
