//go:build mobile

// embed.go - 移动端资源嵌入声明
//
// 此文件仅在使用 -tags mobile 构建时编译。
// 构建前需要把 data/squarepart.yaml 复制到 mobile/data/：
//
//	mkdir -p mobile/data && cp data/squarepart.yaml mobile/data/
//	go build -tags mobile ./mobile
package mobile

import "embed"

//go:embed data/squarepart.yaml
var dataFS embed.FS
