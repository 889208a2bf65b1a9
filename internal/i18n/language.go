package i18n

import (
	"errors"
	"strings"
)

// 表示言語（英語/タミル語の2択）
type Language string

const (
	English Language = "en"
	Tamil   Language = "ta"
)

// 既定は英語
const DefaultLanguage = English

var ErrUnsupportedLanguage = errors.New("unsupported language")

// ParseLanguage は "en" / "ta" だけを受け付ける。
func ParseLanguage(s string) (Language, error) {
	switch Language(strings.ToLower(strings.TrimSpace(s))) {
	case English:
		return English, nil
	case Tamil:
		return Tamil, nil
	default:
		return "", ErrUnsupportedLanguage
	}
}

// 反対側の言語
func (l Language) Other() Language {
	if l == Tamil {
		return English
	}
	return Tamil
}

// 英語/タミル語の文字列ペア（商品名・説明・カテゴリ名）
type Localized struct {
	En string `json:"en"`
	Ta string `json:"ta"`
}

// In は指定言語側の文字列を返す。
func (l Localized) In(lang Language) string {
	if lang == Tamil {
		return l.Ta
	}
	return l.En
}
