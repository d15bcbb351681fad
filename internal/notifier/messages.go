package notifier

import (
	"fmt"
	"strings"

	"github.com/weinert-art/commission-service/internal/entities"
)

const ideaPreviewLimit = 100

func orderCreatedMessage(o entities.Order) string {
	return fmt.Sprintf(`✅ Заказ успешно оформлен!

📋 Детали заказа:
• Номер: %s
• Персонажей: %d
• Цена: %s
• Дедлайн: %s

⏳ Ожидайте ответа администратора.`,
		o.OrderNumber, o.CharactersCount, o.DesiredPrice, o.Deadline)
}

func orderCancelledMessage(orderNumber, comment string) string {
	msg := fmt.Sprintf("❌ Ваш заказ %s отменен", orderNumber)
	if comment != "" {
		msg += fmt.Sprintf("\n\n📝 Комментарий администратора:\n%s", comment)
	}
	return msg
}

func orderInProgressMessage(orderNumber string) string {
	return fmt.Sprintf("⏳ Ваш заказ %s взят в работу", orderNumber)
}

func orderCompletedMessage(orderNumber string) string {
	return fmt.Sprintf("✅ Ваш заказ %s готов!", orderNumber)
}

func adminNewOrderMessage(o entities.Order) string {
	userInfo := fmt.Sprintf("👤 Клиент: %s", o.Name)
	if o.TelegramUsername != "" {
		userInfo += fmt.Sprintf(" (@%s)", o.TelegramUsername)
	} else if o.TelegramUserID != 0 {
		userInfo += fmt.Sprintf(" (ID: %d)", o.TelegramUserID)
	}

	return fmt.Sprintf(`🆕 Новый заказ!

%s
💡 Идея: %s
💰 Цена: %s
📅 Дедлайн: %s
🔢 Номер: %s`,
		userInfo, truncate(o.Idea, ideaPreviewLimit), o.DesiredPrice, o.Deadline, o.OrderNumber)
}

// truncate обрезает строку до limit рун, помечая обрезанное многоточием.
func truncate(s string, limit int) string {
	runes := []rune(strings.TrimSpace(s))
	if len(runes) <= limit {
		return string(runes)
	}
	return string(runes[:limit]) + "..."
}
