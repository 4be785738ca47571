package i18n

import (
	"fmt"
	"strings"

	"github.com/galeria-next/internal/constants"

	"github.com/gin-gonic/gin"
)

// 站点语言常量（与 constants.SupportedLocales 保持一致）
const (
	LocaleVI = constants.LocaleViVN
	LocaleEN = constants.LocaleEnUS
	LocaleZH = constants.LocaleZhCN
)

// DefaultLocale 默认语言
const DefaultLocale = LocaleVI

// Normalize 归一化语言标签，未命中时回退默认语言
func Normalize(locale string) string {
	tag := strings.ToLower(strings.TrimSpace(locale))
	switch {
	case tag == "":
		return DefaultLocale
	case strings.HasPrefix(tag, "vi"):
		return LocaleVI
	case strings.HasPrefix(tag, "en"):
		return LocaleEN
	case strings.HasPrefix(tag, "zh"):
		return LocaleZH
	default:
		return DefaultLocale
	}
}

// ResolveLocale 从请求解析语言（?lang= 优先，其次 Accept-Language）
func ResolveLocale(c *gin.Context) string {
	if c == nil {
		return DefaultLocale
	}
	if lang := strings.TrimSpace(c.Query("lang")); lang != "" {
		return Normalize(lang)
	}
	accept := c.GetHeader("Accept-Language")
	for _, part := range strings.Split(accept, ",") {
		tag := strings.ToLower(strings.TrimSpace(strings.SplitN(part, ";", 2)[0]))
		switch {
		case strings.HasPrefix(tag, "vi"):
			return LocaleVI
		case strings.HasPrefix(tag, "en"):
			return LocaleEN
		case strings.HasPrefix(tag, "zh"):
			return LocaleZH
		}
	}
	return DefaultLocale
}

// T 返回指定语言的文案，缺失时逐级回退，最终返回 key 本身
func T(locale, key string) string {
	normalized := Normalize(locale)
	if table, ok := messages[normalized]; ok {
		if msg, ok := table[key]; ok {
			return msg
		}
	}
	for _, fallback := range constants.SupportedLocales {
		if fallback == normalized {
			continue
		}
		if table, ok := messages[fallback]; ok {
			if msg, ok := table[key]; ok {
				return msg
			}
		}
	}
	return key
}

// Sprintf 返回带参数的文案
func Sprintf(locale, key string, args ...interface{}) string {
	format := T(locale, key)
	if len(args) == 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}
