package usecase

import (
	"cargokz/internal/domain/entities"

	"golang.org/x/text/language"
)

// Reply vocabulary for the three supported languages. One flat catalog per
// language; lookups fall back to Russian so a missing translation never
// breaks a conversation.

const (
	msgFieldWeight   = "field.weight"
	msgFieldCategory = "field.category"
	msgFieldCity     = "field.city"
	msgFieldVolume   = "field.volume"

	msgMissingIntro    = "missing.intro"
	msgQuoteHeader     = "quote.header"
	msgQuoteFreight    = "quote.freight"
	msgQuoteCustoms    = "quote.customs"
	msgQuoteDuty       = "quote.duty"
	msgQuoteVAT        = "quote.vat"
	msgQuoteBroker     = "quote.broker"
	msgQuoteDecl       = "quote.declaration"
	msgQuoteCert       = "quote.certificate"
	msgQuoteItem       = "quote.item"
	msgQuoteCommission = "quote.commission"
	msgQuoteRefreshed  = "quote.refreshed"
	msgOptionPickup    = "option.pickup"
	msgOptionDoor      = "option.door"
	msgOptionPrompt    = "option.prompt"
	msgOptionInvalid   = "option.invalid"
	msgConfirmPrompt   = "confirm.prompt"
	msgConfirmInvalid  = "confirm.invalid"
	msgContactsPrompt  = "contacts.prompt"
	msgContactsRetry   = "contacts.retry"
	msgComplete        = "complete"
	msgDeclined        = "declined"
	msgResetDone       = "reset.done"
	msgReenterField    = "reenter.field"
)

var replyCatalog = map[entities.Language]map[string]string{
	entities.LanguageRussian: {
		msgFieldWeight:   "вес (кг)",
		msgFieldCategory: "категория товара",
		msgFieldCity:     "город назначения",
		msgFieldVolume:   "объем (м³) или габариты",

		msgMissingIntro:    "Для расчета не хватает данных:",
		msgQuoteHeader:     "Расчет доставки: %.0f кг, %.2f м³ (плотность %.0f кг/м³)",
		msgQuoteFreight:    "Доставка до склада: $%s",
		msgQuoteCustoms:    "Таможенные платежи: %s ₸",
		msgQuoteDuty:       "Пошлина: %s ₸",
		msgQuoteVAT:        "НДС 12%%: %s ₸",
		msgQuoteBroker:     "Брокер: %s ₸",
		msgQuoteDecl:       "Декларация: %s ₸",
		msgQuoteCert:       "Сертификат: %s ₸",
		msgQuoteItem:       "Позиция %d: %d шт, %.1f кг, %.3f м³ — $%s",
		msgQuoteCommission: "Комиссия %.0f%%: $%s",
		msgQuoteRefreshed:  "Расчет обновлен, проверьте суммы еще раз.",
		msgOptionPickup:    "1. Самовывоз со склада — $%s",
		msgOptionDoor:      "2. Доставка до двери — $%s",
		msgOptionPrompt:    "Выберите вариант доставки: отправьте 1 или 2.",
		msgOptionInvalid:   "Не понял выбор. Отправьте 1 (самовывоз) или 2 (до двери).",
		msgConfirmPrompt:   "Итого: $%s. Оформляем заказ? (да/нет)",
		msgConfirmInvalid:  "Ответьте, пожалуйста, да или нет.",
		msgContactsPrompt:  "Отправьте имя и телефон одним сообщением. Например: Иван, 87771234567",
		msgContactsRetry:   "Не удалось разобрать контакты. Формат: Иван, 87771234567",
		msgComplete:        "Заказ принят! Менеджер свяжется с вами.",
		msgDeclined:        "Заказ отменен. Данные очищены, можно начать новый расчет.",
		msgResetDone:       "Начинаем заново. Опишите ваш груз.",
		msgReenterField:    "Проверьте значение поля «%s» и отправьте его еще раз.",
	},
	entities.LanguageKazakh: {
		msgFieldWeight:   "салмақ (кг)",
		msgFieldCategory: "тауар санаты",
		msgFieldCity:     "жеткізу қаласы",
		msgFieldVolume:   "көлем (м³) немесе өлшемдер",

		msgMissingIntro:    "Есептеу үшін деректер жетіспейді:",
		msgQuoteHeader:     "Жеткізу есебі: %.0f кг, %.2f м³ (тығыздық %.0f кг/м³)",
		msgQuoteFreight:    "Қоймаға дейін жеткізу: $%s",
		msgQuoteCustoms:    "Кедендік төлемдер: %s ₸",
		msgQuoteDuty:       "Баж: %s ₸",
		msgQuoteVAT:        "ҚҚС 12%%: %s ₸",
		msgQuoteBroker:     "Брокер: %s ₸",
		msgQuoteDecl:       "Декларация: %s ₸",
		msgQuoteCert:       "Сертификат: %s ₸",
		msgQuoteItem:       "Позиция %d: %d дана, %.1f кг, %.3f м³ — $%s",
		msgQuoteCommission: "Комиссия %.0f%%: $%s",
		msgQuoteRefreshed:  "Есеп жаңартылды, сомаларды қайта тексеріңіз.",
		msgOptionPickup:    "1. Қоймадан өзі алып кету — $%s",
		msgOptionDoor:      "2. Есікке дейін жеткізу — $%s",
		msgOptionPrompt:    "Жеткізу нұсқасын таңдаңыз: 1 немесе 2 жіберіңіз.",
		msgOptionInvalid:   "Таңдау түсініксіз. 1 (өзі алып кету) немесе 2 (есікке дейін) жіберіңіз.",
		msgConfirmPrompt:   "Барлығы: $%s. Тапсырысты рәсімдейміз бе? (иә/жоқ)",
		msgConfirmInvalid:  "Иә немесе жоқ деп жауап беріңіз.",
		msgContactsPrompt:  "Атыңыз бен телефоныңызды бір хабарламамен жіберіңіз. Мысалы: Иван, 87771234567",
		msgContactsRetry:   "Байланыс деректері танылмады. Формат: Иван, 87771234567",
		msgComplete:        "Тапсырыс қабылданды! Менеджер сізбен хабарласады.",
		msgDeclined:        "Тапсырыс жойылды. Жаңа есептеуді бастауға болады.",
		msgResetDone:       "Қайта бастаймыз. Жүгіңізді сипаттаңыз.",
		msgReenterField:    "«%s» өрісінің мәнін тексеріп, қайта жіберіңіз.",
	},
	entities.LanguageChinese: {
		msgFieldWeight:   "重量（公斤）",
		msgFieldCategory: "货物类别",
		msgFieldCity:     "目的地城市",
		msgFieldVolume:   "体积（立方米）或尺寸",

		msgMissingIntro:    "计算运费还缺少以下信息：",
		msgQuoteHeader:     "运费计算：%.0f 公斤，%.2f 立方米（密度 %.0f kg/m³）",
		msgQuoteFreight:    "到仓库运费：$%s",
		msgQuoteCustoms:    "清关费用：%s ₸",
		msgQuoteDuty:       "关税：%s ₸",
		msgQuoteVAT:        "增值税 12%%：%s ₸",
		msgQuoteBroker:     "报关行：%s ₸",
		msgQuoteDecl:       "报关单：%s ₸",
		msgQuoteCert:       "证书：%s ₸",
		msgQuoteItem:       "第 %d 项：%d 件，%.1f 公斤，%.3f 立方米 — $%s",
		msgQuoteCommission: "服务费 %.0f%%：$%s",
		msgQuoteRefreshed:  "报价已更新，请再次确认金额。",
		msgOptionPickup:    "1. 仓库自提 — $%s",
		msgOptionDoor:      "2. 送货上门 — $%s",
		msgOptionPrompt:    "请选择配送方式：回复 1 或 2。",
		msgOptionInvalid:   "无法识别。请回复 1（自提）或 2（送货上门）。",
		msgConfirmPrompt:   "合计：$%s。确认下单吗？（是/否）",
		msgConfirmInvalid:  "请回复 是 或 否。",
		msgContactsPrompt:  "请在一条消息里发送姓名和电话。例如：Иван, 87771234567",
		msgContactsRetry:   "无法识别联系方式。格式：Иван, 87771234567",
		msgComplete:        "订单已受理！经理会与您联系。",
		msgDeclined:        "订单已取消。数据已清空，可以重新计算。",
		msgResetDone:       "重新开始。请描述您的货物。",
		msgReenterField:    "请检查“%s”的数值后重新发送。",
	},
}

func localize(lang entities.Language, key string) string {
	if m, ok := replyCatalog[lang]; ok {
		if s, ok := m[key]; ok {
			return s
		}
	}
	return replyCatalog[entities.LanguageRussian][key]
}

func languageTag(lang entities.Language) language.Tag {
	switch lang {
	case entities.LanguageKazakh:
		return language.Kazakh
	case entities.LanguageChinese:
		return language.Chinese
	default:
		return language.Russian
	}
}
