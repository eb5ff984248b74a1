package game

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownWeapon 武器名不在目录中
	ErrUnknownWeapon = errors.New("unknown weapon")
	// ErrUnknownAmmo 弹药类型不在目录中
	ErrUnknownAmmo = errors.New("unknown ammo type")

	errNoViews = errors.New("no views defined")
)

// ConfigurationError 配置错误
// 目录与布局在启动时固定，这类错误只会出现在初始化阶段，调用方应直接终止启动
type ConfigurationError struct {
	Subject string // 出错的配置项（如 "default weapon"）
	Err     error  // 底层错误
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s: %v", e.Subject, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}
