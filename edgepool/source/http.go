package source

import (
	"fmt"
	"time"

	"github.com/gocolly/colly/v2"

	"edgeip_curator/edgepool/model"
	"edgeip_curator/internal/shared/logger"
)

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/108.0.0.0 Safari/537.36"

// DocumentSource 接口定义了获取原始文档的行为。
// 实现者只负责取回并解码页面，不做任何内容解析。
type DocumentSource interface {
	// Fetch 取回文档。流水线要么拿到完整文档，要么本轮不执行。
	Fetch() (*model.RawDocument, error)

	// Name 返回来源标识，用于日志记录与列表元数据。
	Name() string
}

// HTTPSource 实现了 DocumentSource 接口，通过一次 HTTP GET 获取页面。
type HTTPSource struct {
	url       string
	collector *colly.Collector
}

// NewHTTPSource 创建一个新的 HTTPSource 实例。
func NewHTTPSource(url string, timeout time.Duration) *HTTPSource {
	c := colly.NewCollector(
		colly.UserAgent(userAgent),
	)
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	c.SetRequestTimeout(timeout)

	return &HTTPSource{
		url:       url,
		collector: c,
	}
}

// Name 返回来源 URL。
func (s *HTTPSource) Name() string {
	return s.url
}

// Fetch 执行抓取并把响应解码为 UTF-8 文本。
func (s *HTTPSource) Fetch() (*model.RawDocument, error) {
	l := logger.WithComponent("EdgePool/Source")
	l.Info().Str("url", s.url).Msg("Fetching document...")

	var body []byte
	var contentType string
	var fetchErr error

	s.collector.OnResponse(func(r *colly.Response) {
		body = r.Body
		contentType = r.Headers.Get("Content-Type")
	})
	s.collector.OnError(func(r *colly.Response, err error) {
		l.Error().Err(err).Int("status_code", r.StatusCode).Str("url", s.url).Msg("Fetch request failed.")
		fetchErr = err
	})

	if err := s.collector.Visit(s.url); err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", s.url, err)
	}
	s.collector.Wait()

	if fetchErr != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", s.url, fetchErr)
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("empty response body from %s", s.url)
	}

	text, encName, err := decodeToUTF8(body, contentType)
	if err != nil {
		// 解码失败时按原样交给流水线：候选抽取只依赖 ASCII 子串
		l.Warn().Err(err).Str("encoding", encName).Msg("Charset decode failed, using raw body.")
		text = string(body)
	}

	l.Info().Int("bytes", len(body)).Str("encoding", encName).Msg("Document fetched.")
	return &model.RawDocument{
		Text:     text,
		Encoding: encName,
		Origin:   s.url,
	}, nil
}
