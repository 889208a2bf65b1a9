package checkout

import "strings"

const upperhex = "0123456789ABCDEF"

// EncodeURIComponent は URL コンポーネント用にエンコードする。
// A-Z a-z 0-9 - _ . ! ~ * ' ( ) 以外のUTF-8バイトはすべて %XX にする。
// net/url の QueryEscape は空白を "+" にするため使わない。
func EncodeURIComponent(s string) string {
	var b strings.Builder
	b.Grow(len(s) * 3)

	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&15])
	}
	return b.String()
}

func isUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}
