// 대시보드 정적 페이지 임베딩

package web

import "embed"

//go:embed index.html
var FS embed.FS
