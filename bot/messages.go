package bot

import "github.com/rubickshop/rubick-cup/telegram"

// Тексты бота. HTML-разметка, как у Bot API с parse_mode=HTML.
const (
	msgStart = "🎉 <b>Привет, чемпион!</b>\n\n" +
		"Добро пожаловать в Лавку Рубика 🧩 — место, где рождаются легенды!\n\n" +
		"Здесь ты сможешь легко и быстро зарегистрировать свою команду на наши турниры.\n\n" +
		"<i>Готов показать скилл и взорвать сцену? Давай начнем!</i>"

	msgHelp = "❓ <b>Нужна помощь?</b>\n\n" +
		"Если у тебя возникли проблемы с регистрацией команды или возникли другие вопросы, пиши администратору: <b>@laziz_rahimovich</b>\n\n" +
		"Также не забудь подписаться на наш канал: <a href='https://t.me/rubickshop'>@rubickshop</a>"

	msgAbout = "🧩 <b>О боте Лавки Рубика</b>\n\n" +
		"Этот бот создан, чтобы помочь тебе и твоей команде легко и быстро регистрироваться на турниры нашего канала.\n" +
		"Здесь собираются только лучшие игроки, которые горят желанием побеждать и развиваться!\n\n" +
		"🔥 Наш канал: <a href='https://t.me/rubickshop'>@rubickshop</a>\n" +
		"🚀 Готовься к эпичным матчам и незабываемым эмоциям!\n\n" +
		"Если есть вопросы — просто напиши мне в личку: <b>@laziz_rahimovich</b>."

	msgCommandList = "📝 <b>Доступные команды бота:</b>\n" +
		"/start – Главное меню\n" +
		"/register – Регистрация команды\n" +
		"/report_result – Отправить результат матча\n" +
		"/help – Обратиться за помощью\n" +
		"/about – Информация о турнире"

	msgAskTeamName    = "🚀 Введи название своей команды:"
	msgAskPlayers     = "✍️ Теперь введи игроков (5 строк):\n@user DotaID MMR"
	msgQuotaFull      = "❌ Регистрация завершена! Все 16 слотов заняты."
	msgNameEmpty      = "❌ Название команды не может быть пустым."
	msgNameTaken      = "❌ Такое имя уже занято."
	msgFiveLines      = "❌ Нужно ровно 5 игроков."
	msgPlayerTaken    = "❌ Игрок или DotaID уже участвует."
	msgDuplicate      = "❌ Дубликат игрока внутри команды."
	msgNoSession      = "❌ Нет активной регистрации. Нажми /register, чтобы начать."
	msgCancelled      = "✅ Регистрация отменена."
	msgOrganizerOnly  = "❌ Только админ может генерировать сетку."
	msgNeedFullRoster = "⏳ Нужно 16 зарегистрированных команд."
	msgBracketDone    = "✅ Сетка сгенерирована и отправлена капитанам!"
	msgNoTournament   = "❌ Турнир ещё не начался. Сначала админ должен запустить сетку командой /generate_bracket."
	msgReportUsage    = "❌ Используй: /report_result MATCH_ID ИМЯ_ПОБЕДИТЕЛЯ"
	msgMatchIDNumeric = "❌ MATCH_ID должен быть числом."
	msgWinnerNotHere  = "❌ Победитель должен быть одной из команд в этом матче."
	msgAlreadyDone    = "⚠️ Результат уже был отправлен."
	msgCaptainOnly    = "❌ Только капитан участвующей команды может отправлять результат."
	msgUnexpected     = "❌ Что-то пошло не так. Попробуй ещё раз."
)

func mainMenu() *telegram.InlineKeyboardMarkup {
	return &telegram.InlineKeyboardMarkup{
		InlineKeyboard: [][]telegram.InlineKeyboardButton{
			{
				{Text: "✨ Зарегистрировать команду", CallbackData: "register"},
				{Text: "📝 Команды", CallbackData: "show_commands"},
			},
			{
				{Text: "❓ Помощь", CallbackData: "help"},
				{Text: "ℹ️ О боте", CallbackData: "about"},
			},
		},
	}
}

func botCommands() []telegram.BotCommand {
	return []telegram.BotCommand{
		{Command: "start", Description: "Запустить бота и открыть меню"},
		{Command: "help", Description: "Получить помощь и инструкции"},
		{Command: "register", Description: "Зарегистрировать команду"},
		{Command: "about", Description: "Узнать о боте и турнирах"},
		{Command: "report_result", Description: "Отправить результат матча"},
		{Command: "generate_bracket", Description: "Начать генерацию турнирной сетки (может только администратор)"},
	}
}
