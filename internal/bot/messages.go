package bot

const (
	welcomeMessage = "Приветствую, меня зовут Лина (´｡• ᵕ •｡`) ♡\n\n" +
		"Я диджитал художница, рисующая в около-реализме уже несколько лет. " +
		"Рада приветствовать в своем творческом уголке. 💓\n\n" +
		"Чтобы оформить заказ и узнать больше о моих работах, нажмите кнопку ниже:"

	helpMessage = "🤖 Доступные команды:\n\n" +
		"/start - Главное меню\n" +
		"/help - Справка\n" +
		"/link <номер> - Привязать заказ к этому чату\n" +
		"/status - Описание статусов заказов\n" +
		"/pricing - Цены на услуги\n" +
		"/info - О боте\n\n" +
		"Или используйте кнопки ниже для быстрого доступа:"

	infoMessage = "ℹ️ Этот бот присылает уведомления о ваших заказах: " +
		"подтверждение оформления и изменения статуса.\n\n" +
		"Привяжите заказ командой /link <номер> — номер указан в подтверждении на сайте."

	pricingMessage = "💰 Актуальные цены на услуги смотрите на сайте в разделе «Услуги». " +
		"Итоговая стоимость обсуждается после оформления заказа."

	statusMessage = "📊 Статусы заказов:\n\n" +
		"🆕 новый — заявка получена и ждёт ответа\n" +
		"⏳ в работе — арт рисуется\n" +
		"✅ выполнен — заказ готов\n" +
		"❌ отменен — заказ отменён (с комментарием администратора)"

	defaultMessage = "Привет! 👋\n\nДля навигации используйте команду /start или /help"

	adminWelcomeMessage = "🔐 Добро пожаловать в админ-панель!"
	unauthorizedMessage = "❌ У вас нет прав доступа к админ-панели"

	linkUsageMessage    = "Укажите номер заказа, например: /link AB12CD34"
	linkNotFoundMessage = "❌ Заказ не найден. Проверьте номер и попробуйте ещё раз."
)
