package telegram_bot

import (
	"fmt"
	"strings"
)

func (t *TelegramBotService) formatMessageCompanyList() string {
	var sb strings.Builder
	sb.WriteString(messageCompaniesHeader)
	for i, company := range t.newsConfig.Companies {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(fmt.Sprintf("• %s", company))
	}
	return sb.String()
}

func formatMessageHelp() string {
	return `🤖 Бот свежих новостей об ИИ

Команды:
/news - последние новости об искусственном интеллекте
/company <название> - новости о компании (например, /company OpenAI)
/deepseek - новости о DeepSeek
/companies - список поддерживаемых компаний
/menu - главное меню
/help - эта справка`
}
