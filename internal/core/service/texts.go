package service

import (
	"fmt"
	"strconv"
	"time"

	"github.com/akozyrev/storepay/internal/core/domain"
)

// Message texts mirror the storefront bot's wording. Markdown is rendered by
// the chat platform.

func formatRUB(amount int64) string {
	return strconv.FormatInt(amount, 10)
}

func purchaseDoneText(meta *domain.PendingOrder, productTitle string) string {
	return "✅ *Оплата прошла успешно!*\n\n" +
		fmt.Sprintf("📦 Товар: *%s*\n", productTitle) +
		fmt.Sprintf("🧾 Тикет: *#%s*\n\n", meta.TicketID) +
		"👨‍💼 Наш менеджер свяжется с вами для подключения подписки.\n" +
		"Если долго не отвечают — напишите в поддержку."
}

func paymentCanceledText(meta *domain.PendingOrder) string {
	return "❌ *Платёж отменён*\n\n" +
		fmt.Sprintf("🧾 Тикет: *#%s*\n", meta.TicketID) +
		"Средства не были списаны. Попробуйте оформить заказ ещё раз."
}

func paymentTimeoutText(meta *domain.PendingOrder) string {
	return "⌛ *Ссылка на оплату истекла*\n\n" +
		fmt.Sprintf("🧾 Тикет: *#%s*\n", meta.TicketID) +
		"Если вы уже оплатили — платёж дойдёт и будет подтверждён автоматически.\n" +
		"Если нет — оформите заказ заново."
}

func newPaymentText(meta *domain.PendingOrder, productTitle string) string {
	paidTime := time.Now().Format("02.01.2006 15:04")

	text := "🆕 *НОВАЯ ОПЛАТА*\n" +
		fmt.Sprintf("🕒 Время: *%s*\n\n", paidTime) +
		fmt.Sprintf("🧾 Тикет: *#%s*\n", meta.TicketID) +
		fmt.Sprintf("📦 Товар: *%s*\n", productTitle) +
		fmt.Sprintf("💰 Сумма: *%s ₽*\n", formatRUB(meta.FinalPrice))

	if meta.PromoCode != "" {
		text += fmt.Sprintf("🏷 Промокод: *%s*\n", meta.PromoCode)
	}
	if meta.BonusSpent > 0 {
		text += fmt.Sprintf("💎 Бонусы: *%s ₽*\n", formatRUB(meta.BonusSpent))
	}

	username := meta.BuyerUsername
	if username == "" {
		username = "—"
	}
	text += fmt.Sprintf("\n👤 Покупатель: @%s\n", username) +
		fmt.Sprintf("🆔 User ID: [%d](tg://user?id=%d)", meta.BuyerID, meta.BuyerID)

	return text
}

func lateConfirmationText(meta *domain.PendingOrder) string {
	return "⚠️ *ОПЛАТА ПО ИСТЁКШЕМУ ЗАКАЗУ*\n\n" +
		fmt.Sprintf("🧾 Тикет: *#%s*\n", meta.TicketID) +
		fmt.Sprintf("💰 Сумма: *%s ₽*\n", formatRUB(meta.FinalPrice)) +
		fmt.Sprintf("🆔 User ID: [%d](tg://user?id=%d)\n\n", meta.BuyerID, meta.BuyerID) +
		"Заказ уже был помечен истёкшим, деньги поступили позже.\n" +
		"Нужна ручная сверка."
}

func shortDebitText(meta *domain.PendingOrder, debited int64) string {
	return "⚠️ *НЕ ХВАТИЛО БОНУСОВ ПРИ СПИСАНИИ*\n\n" +
		fmt.Sprintf("🧾 Тикет: *#%s*\n", meta.TicketID) +
		fmt.Sprintf("Запрошено: *%s ₽*, списано: *%s ₽*\n", formatRUB(meta.BonusSpent), formatRUB(debited)) +
		fmt.Sprintf("🆔 User ID: [%d](tg://user?id=%d)\n\n", meta.BuyerID, meta.BuyerID) +
		"Нужна ручная проверка баланса."
}
