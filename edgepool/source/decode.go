package source

import (
	"fmt"
	"mime"
	"strings"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

// charsetFromContentType 解析 Content-Type 头中的 charset 参数。
func charsetFromContentType(contentType string) string {
	if contentType == "" {
		return ""
	}
	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ""
	}
	return strings.ToLower(params["charset"])
}

// decodeToUTF8 把响应字节解码为 UTF-8 文本，返回文本与使用的编码名。
// 优先使用声明的 charset；缺失或声明为 iso-8859-1 时改用内容探测，
// 上游页面常见实际为 GBK 却声明 latin-1。
func decodeToUTF8(body []byte, contentType string) (string, string, error) {
	name := charsetFromContentType(contentType)
	if name == "" || name == "iso-8859-1" {
		detector := chardet.NewTextDetector()
		if best, err := detector.DetectBest(body); err == nil && best != nil {
			name = strings.ToLower(best.Charset)
		}
	}

	// chardet 用 "gb-18030"，WHATWG 标签表里是 "gb18030"
	if name == "gb-18030" {
		name = "gb18030"
	}

	if name == "" || name == "utf-8" {
		return string(body), "utf-8", nil
	}

	enc, err := htmlindex.Get(name)
	if err != nil {
		return "", name, fmt.Errorf("unsupported charset %q: %w", name, err)
	}
	decoded, _, err := transform.Bytes(enc.NewDecoder(), body)
	if err != nil {
		return "", name, fmt.Errorf("failed to decode %s body: %w", name, err)
	}
	return string(decoded), name, nil
}
