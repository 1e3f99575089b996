// Package locale holds the Russian and Belarusian strings used by the chat
// assistant: the per-locale system context sent on every relay call, the
// synthetic welcome message seeded into an empty conversation, and the
// fallback error text shown when a relay call fails.
package locale

// Locale identifies one of the two site languages.
type Locale string

const (
	RU Locale = "ru"
	BE Locale = "be"
)

// Parse returns the locale for a language code, defaulting to Russian.
func Parse(code string) Locale {
	if code == string(BE) {
		return BE
	}
	return RU
}

// SystemContext returns the instruction string prepended to every relay
// call for this locale. It describes the site's subject matter and tells
// the assistant which language to answer in. It is never persisted as a
// message and never shown to the user.
func (l Locale) SystemContext() string {
	if l == BE {
		return systemContextBE
	}
	return systemContextRU
}

// Welcome returns the synthetic assistant greeting seeded into an empty
// conversation. The session manager matches it by exact content equality
// when excluding it from transmitted history.
func (l Locale) Welcome() string {
	if l == BE {
		return "Прывітанне! Я AI памочнік сайта \"Вуліцы Герояў\". Магу расказаць пра вуліцы Мінска, названыя ў гонар герояў вайны. Што вас цікавіць?"
	}
	return "Здравствуйте! Я AI помощник сайта \"Улицы Героев\". Могу рассказать об улицах Минска, названных в честь героев войны. Что вас интересует?"
}

// SendError is the generic fallback shown when a relay call fails without
// a usable error message.
func (l Locale) SendError() string {
	if l == BE {
		return "Не атрымалася адправіць паведамленне. Паспрабуйце яшчэ раз."
	}
	return "Не удалось отправить сообщение. Попробуйте ещё раз."
}

// ClearConfirm is the prompt shown before wiping the conversation history.
func (l Locale) ClearConfirm() string {
	if l == BE {
		return "Ачысціць гісторыю чата?"
	}
	return "Очистить историю чата?"
}

const systemContextRU = `Ты AI помощник на сайте "Улицы Героев" - образовательном проекте о героических улицах Минска, названных в честь защитников Отечества в Великой Отечественной войне.

Основная информация о сайте:
- Сайт посвящен улицам Минска, названным в честь героев ВОВ
- Представлены все улицы Минска названные в честь героев ВОВ
- Содержит информацию о Великой Отечественной войне на территории Беларуси (1941-1944)
- Включает туристический маршрут по улицам Московского района
- Цель: сохранение памяти о героях войны и воспитание патриотизма

Ты должен:
1. Отвечать на вопросы о содержимом сайта, истории улиц и героев
2. Помогать с общими вопросами
3. Отвечать на русском языке
4. Быть вежливым и информативным`

const systemContextBE = `Ты AI памочнік на сайце "Вуліцы Герояў" - адукацыйным праекце пра гераічныя вуліцы Мінска, названыя ў гонар абаронцаў Айчыны ў Вялікай Айчыннай вайне.

Асноўная інфармацыя пра сайт:
- Сайт прысвечаны вуліцам Мінска, названым у гонар герояў ВАВ
- Прадстаўлены вуліцы: Рафіева, Волаха, Глаголева, Жукава, Коржа, Купрыянава, Матросава, Окрестина, Смирнова і іншыя
- Змяшчае інфармацыю пра Вялікую Айчынную вайну на тэрыторыі Беларусі (1941-1944)
- Уключае турыстычны маршрут па вуліцах Маскоўскага раёна
- Мэта: захаванне памяці пра герояў вайны і выхаванне патрыятызму

Ты павінен:
1. Адказваць на пытанні пра змест сайта, гісторыю вуліц і герояў
2. Дапамагаць з агульнымі пытаннямі
3. Адказваць на беларускай мове
4. Быць ветлівым і інфарматыўным`
