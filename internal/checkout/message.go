package checkout

import (
	"fmt"
	"strings"

	"freshcart/internal/domain/cart"
	"freshcart/internal/i18n"

	"github.com/shopspring/decimal"
)

const rupee = "₹"

// OrderText はカート全体の注文メッセージ（エンコード前）。
// 小計と合計は同じ値（送料・税はWhatsApp側でやりとりする）。
func OrderText(items []cart.LineItem, lang i18n.Language, dict *i18n.Dictionary) string {
	t := func(key string) string { return dict.Lookup(key, lang) }

	var b strings.Builder
	b.WriteString(t("whatsappGreeting") + "\n\n")
	b.WriteString("🛒 *" + t("orderDetails") + ":*\n\n")
	b.WriteString("📦 " + t("products") + ":\n")

	subtotal := decimal.Zero
	for i, it := range items {
		fmt.Fprintf(&b, "%d. %s\n", i+1, formatLine(it, lang))
		subtotal = subtotal.Add(it.LineTotal())
	}

	b.WriteString("\n📊 *" + t("orderSummary") + ":*\n")
	b.WriteString(t("subtotal") + ": " + FormatAmount(subtotal) + "\n")
	b.WriteString(t("totalAmount") + ": " + FormatAmount(subtotal) + "\n\n")
	b.WriteString(t("confirmOrder") + "\n\n")
	b.WriteString(t("thankYou") + " 🙏")
	return b.String()
}

// BuildOrderMessage は OrderText をエンコードしたもの。
func BuildOrderMessage(items []cart.LineItem, lang i18n.Language, dict *i18n.Dictionary) string {
	return EncodeURIComponent(OrderText(items, lang, dict))
}

// SingleItemText は「今すぐ購入」用（カートを通さない1品）。
func SingleItemText(item cart.LineItem, lang i18n.Language, dict *i18n.Dictionary) string {
	t := func(key string) string { return dict.Lookup(key, lang) }

	var b strings.Builder
	b.WriteString(t("whatsappGreetingSingle") + "\n\n")
	b.WriteString("🛒 *" + t("orderDetails") + ":*\n\n")
	b.WriteString("📦 " + t("product") + ":\n")
	b.WriteString(formatLine(item, lang) + "\n\n")
	b.WriteString("📊 *" + t("totalAmount") + ":* " + FormatAmount(item.LineTotal()) + "\n\n")
	b.WriteString(t("confirmOrder") + "\n\n")
	b.WriteString(t("thankYou") + " 🙏")
	return b.String()
}

func BuildSingleItemMessage(item cart.LineItem, lang i18n.Language, dict *i18n.Dictionary) string {
	return EncodeURIComponent(SingleItemText(item, lang, dict))
}

// formatLine は "{name} ({unit}) - ₹{price} × {qty} = ₹{total}"。
func formatLine(it cart.LineItem, lang i18n.Language) string {
	return fmt.Sprintf("%s (%s) - %s × %d = %s",
		it.Product.Name().In(lang),
		it.Product.Unit,
		FormatAmount(it.Product.Price),
		it.Quantity,
		FormatAmount(it.LineTotal()),
	)
}

// FormatAmount は "₹50" / "₹40.5" のように末尾の0を落として表示する。
func FormatAmount(d decimal.Decimal) string {
	return rupee + d.String()
}
