package telegram_bot

// Callback payloads carried by the inline buttons.
const (
	PayloadNews          = "news"
	PayloadNewsMenu      = "news_menu"
	PayloadDeepSeek      = "deepseek"
	PayloadCompanies     = "companies"
	PayloadCompaniesMenu = "companies_menu"
	PayloadMainMenu      = "main_menu"
	PayloadCompanyPrefix = "company_"
)

const deepSeekQuery = "DeepSeek"

var (
	btnTextLatestNews    = "📰 Последние новости"
	btnTextNewsMenu      = "🗂 Новости по темам"
	btnTextDeepSeek      = "🐋 DeepSeek"
	btnTextCompanies     = "🏢 Компании ИИ"
	btnTextCompaniesMenu = "🔍 Выбрать компанию"
	btnTextMainMenu      = "🏠 Главное меню"
	btnTextBackCompanies = "🔙 К списку компаний"
	btnTextRefresh       = "🔄 Обновить"
)

var (
	messageWelcome         = "👋 Привет! Я присылаю свежие новости об искусственном интеллекте.\n\nВыберите действие:"
	messageMainMenu        = "🏠 Главное меню. Выберите действие:"
	messageNewsMenu        = "🗂 Выберите тему новостей:"
	messageChooseCompany   = "🏢 Выберите компанию:"
	messageCompanyMenu     = "🏢 %s\n\nСвежие новости отправлю следующим сообщением."
	messageCollectingNews  = "Собираю свежие новости по ИИ..."
	messageSearchingTopic  = "Ищу новости по теме: %s..."
	messageCompanyUsage    = "Укажите название компании. Пример: /company OpenAI"
	messageCompaniesHeader = "🔍 Поддерживаемые компании для фильтрации:\n"
)

var commonMessageInternalError = "⚠️ Произошла внутренняя ошибка. Попробуйте позже."
