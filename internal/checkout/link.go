package checkout

import (
	"errors"
	"strings"
)

const whatsAppBaseURL = "https://wa.me/"

var ErrEmptyPhone = errors.New("phone number is empty")

// BuildCheckoutLink は https://wa.me/<番号>?text=<エンコード済み本文>。
// 番号は国番号付きの数字列。空でなければそれ以上は検証しない。
func BuildCheckoutLink(phone string, encodedMessage string) (string, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return "", ErrEmptyPhone
	}
	return whatsAppBaseURL + phone + "?text=" + encodedMessage, nil
}

// NormalizePhone は "+91 96293-23252" のような表記から数字だけを残す。
func NormalizePhone(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
