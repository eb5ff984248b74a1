// embed.go - 数据文件嵌入声明
// 必须放在项目根目录（与 data/ 同级）
// 因为 //go:embed 指令只能嵌入当前包目录及其子目录的文件
//
// 图片、音效与字体不嵌入，运行时从 --assets 指定的目录读取
package main

import "embed"

//go:embed data/arsenal.yaml data/saloon.yaml data/resources.yaml
var dataFS embed.FS
