package web

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

var pageMessages = map[string]map[string]string{
	"en": {
		"site.name":            "Atelier",
		"nav.home":             "Home",
		"nav.terms":            "Terms",
		"nav.privacy":          "Privacy",
		"home.title":           "New arrivals",
		"home.categories":      "Categories",
		"home.empty":           "Nothing here yet. Check back soon.",
		"terms.title":          "Terms of service",
		"terms.body":           "By using this storefront you agree to pay for the orders you place and to keep your account credentials private. Sellers are responsible for the accuracy of their listings.",
		"privacy.title":        "Privacy policy",
		"privacy.body":         "We store the details you provide to process orders, deposits and support requests. We never sell personal data.",
		"maintenance.title":    "We'll be right back",
		"maintenance.body":     "The store is undergoing scheduled maintenance.",
		"footer.rights":        "All rights reserved.",
		"product.outOfStock":   "Out of stock",
		"product.compareAtLbl": "Was",
	},
	"ru": {
		"site.name":            "Ателье",
		"nav.home":             "Главная",
		"nav.terms":            "Условия",
		"nav.privacy":          "Конфиденциальность",
		"home.title":           "Новинки",
		"home.categories":      "Категории",
		"home.empty":           "Здесь пока пусто. Загляните позже.",
		"terms.title":          "Условия использования",
		"terms.body":           "Пользуясь магазином, вы обязуетесь оплачивать оформленные заказы и хранить данные учетной записи в тайне. Продавцы отвечают за достоверность своих карточек товаров.",
		"privacy.title":        "Политика конфиденциальности",
		"privacy.body":         "Мы храним указанные вами данные для обработки заказов, пополнений и обращений в поддержку. Мы никогда не продаем персональные данные.",
		"maintenance.title":    "Скоро вернемся",
		"maintenance.body":     "В магазине проводятся плановые технические работы.",
		"footer.rights":        "Все права защищены.",
		"product.outOfStock":   "Нет в наличии",
		"product.compareAtLbl": "Было",
	},
}

// newMessageCatalog loads the page strings for every known locale into an x/text catalog.
// Locales without a translation fall back to the English strings.
func newMessageCatalog(fallback string) catalog.Catalog {
	fallbackTag := language.Make(fallback)
	builder := catalog.NewBuilder(catalog.Fallback(fallbackTag))
	for code, messages := range pageMessages {
		tag := language.Make(code)
		for key, text := range messages {
			_ = builder.SetString(tag, key, text)
		}
	}

	return builder
}

// translator returns a lookup bound to locale.
func translator(cat catalog.Catalog, locale string) func(string) string {
	printer := message.NewPrinter(language.Make(locale), message.Catalog(cat))

	return func(key string) string {
		return printer.Sprintf(key)
	}
}
