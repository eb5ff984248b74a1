// Package embedded 提供数据文件与美术资源的统一访问接口
//
// data/ 下的 YAML 配置通过根目录 embed.go 嵌入二进制；
// assets/ 下的图片、音效、字体体积较大，不进入仓库，运行时从磁盘目录挂载。
// 两者都以 fs.FS 形式注册，调用方只需使用带前缀的路径。
//
// 使用前必须调用 Init() 初始化。
package embedded

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

// ErrNotInitialized 在 Init() 之前访问资源时返回
var ErrNotInitialized = errors.New("embedded package not initialized, call Init() first")

var (
	assetsFS    fs.FS
	dataFS      fs.FS
	initialized bool
)

// Init 注册资源文件系统
//
// 参数：
//   - assets: 包含 "assets/..." 路径的文件系统（通常是 os.DirFS(root)）
//   - data: 包含 "data/..." 路径的文件系统（通常是 embed.FS）
func Init(assets, data fs.FS) {
	assetsFS = assets
	dataFS = data
	initialized = true
}

// IsInitialized 返回 embedded 包是否已初始化
func IsInitialized() bool {
	return initialized
}

// resolve 根据路径前缀选择文件系统
func resolve(path string) (fs.FS, string, error) {
	if !initialized {
		return nil, "", ErrNotInitialized
	}

	// embed.FS 与 os.DirFS 都只接受正斜杠路径
	path = filepath.ToSlash(path)
	path = strings.TrimPrefix(path, "./")

	switch {
	case strings.HasPrefix(path, "assets/"):
		if assetsFS == nil {
			return nil, "", fmt.Errorf("no assets filesystem mounted for %s: %w", path, fs.ErrNotExist)
		}
		return assetsFS, path, nil
	case strings.HasPrefix(path, "data/"):
		if dataFS == nil {
			return nil, "", fmt.Errorf("no data filesystem mounted for %s: %w", path, fs.ErrNotExist)
		}
		return dataFS, path, nil
	}
	return nil, "", fmt.Errorf("unknown resource path prefix: %s (must start with 'assets/' or 'data/')", path)
}

// Open 打开资源文件
// 路径必须以 "assets/" 或 "data/" 开头
func Open(path string) (fs.File, error) {
	fsys, name, err := resolve(path)
	if err != nil {
		return nil, err
	}
	return fsys.Open(name)
}

// ReadFile 读取资源文件全部内容
// 路径必须以 "assets/" 或 "data/" 开头
func ReadFile(path string) ([]byte, error) {
	fsys, name, err := resolve(path)
	if err != nil {
		return nil, err
	}
	return fs.ReadFile(fsys, name)
}

// Exists 检查资源文件是否存在
func Exists(path string) bool {
	file, err := Open(path)
	if err != nil {
		return false
	}
	file.Close()
	return true
}
