package telegram_bot

import "gopkg.in/telebot.v3"

// Telegram rejects inline buttons whose callback data exceeds 64 bytes.
const maxCallbackDataLen = 64

const companiesPerRow = 2

type menuButton struct {
	Text    string
	Payload string
}

// menuLayout is an ordered list of button rows, independent of telebot.
type menuLayout [][]menuButton

func mainMenuLayout() menuLayout {
	return menuLayout{
		{{Text: btnTextLatestNews, Payload: PayloadNews}},
		{{Text: btnTextNewsMenu, Payload: PayloadNewsMenu}},
		{
			{Text: btnTextCompanies, Payload: PayloadCompanies},
			{Text: btnTextCompaniesMenu, Payload: PayloadCompaniesMenu},
		},
	}
}

func newsMenuLayout() menuLayout {
	return menuLayout{
		{{Text: btnTextLatestNews, Payload: PayloadNews}},
		{{Text: btnTextDeepSeek, Payload: PayloadDeepSeek}},
		{{Text: btnTextMainMenu, Payload: PayloadMainMenu}},
	}
}

func companiesMenuLayout(companies []string) menuLayout {
	var layout menuLayout
	var row []menuButton
	for _, name := range companies {
		payload := CompanyPayload(name)
		if len(payload) > maxCallbackDataLen {
			continue
		}
		row = append(row, menuButton{Text: name, Payload: payload})
		if len(row) == companiesPerRow {
			layout = append(layout, row)
			row = nil
		}
	}
	if len(row) > 0 {
		layout = append(layout, row)
	}
	return append(layout, []menuButton{{Text: btnTextMainMenu, Payload: PayloadMainMenu}})
}

func companyMenuLayout(name string) menuLayout {
	return menuLayout{
		{{Text: btnTextRefresh, Payload: CompanyPayload(name)}},
		{{Text: btnTextBackCompanies, Payload: PayloadCompaniesMenu}},
		{{Text: btnTextMainMenu, Payload: PayloadMainMenu}},
	}
}

// CompanyPayload is the callback payload selecting company name.
func CompanyPayload(name string) string {
	return PayloadCompanyPrefix + name
}

// Markup renders the layout as an inline keyboard. Buttons carry their
// payload as raw callback data, so presses reach the OnCallback handler.
func (l menuLayout) Markup() *telebot.ReplyMarkup {
	menu := &telebot.ReplyMarkup{}
	rows := make([]telebot.Row, 0, len(l))
	for _, buttons := range l {
		row := make([]telebot.Btn, 0, len(buttons))
		for _, b := range buttons {
			row = append(row, telebot.Btn{Text: b.Text, Data: b.Payload})
		}
		rows = append(rows, menu.Row(row...))
	}
	menu.Inline(rows...)
	return menu
}

func MainMenu() *telebot.ReplyMarkup {
	return mainMenuLayout().Markup()
}

func NewsMenu() *telebot.ReplyMarkup {
	return newsMenuLayout().Markup()
}

func CompaniesMenu(companies []string) *telebot.ReplyMarkup {
	return companiesMenuLayout(companies).Markup()
}

func CompanyMenu(name string) *telebot.ReplyMarkup {
	return companyMenuLayout(name).Markup()
}
