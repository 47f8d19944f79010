// Package i18n holds the bilingual lookups used by every view: localized
// entity fields, UI translation keys and the document direction.
package i18n

import (
	"marhaba/models/offer"
	"marhaba/store"
)

// Text picks the variant of a localized field for the language
func Text(field offer.LocalizedText, lang store.Language) string {
	if lang == store.LanguageAR {
		return field.AR
	}
	return field.EN
}

// List picks the variant of a localized list for the language
func List(field offer.LocalizedList, lang store.Language) []string {
	if lang == store.LanguageAR {
		return field.AR
	}
	return field.EN
}

// T translates a UI key. Missing keys translate to the key itself.
func T(key string, lang store.Language) string {
	table, ok := translations[lang]
	if !ok {
		table = translations[store.LanguageEN]
	}
	if s, ok := table[key]; ok && s != "" {
		return s
	}
	return key
}

// CategoryLabel is the translated name of an offer category
func CategoryLabel(c offer.Category, lang store.Language) string {
	return T(string(c), lang)
}

// Direction is the text direction the document uses for the language
func Direction(lang store.Language) string {
	if lang == store.LanguageAR {
		return "rtl"
	}
	return "ltr"
}

// LanguageName is the English name of the language, as given to the chat assistant
func LanguageName(lang store.Language) string {
	if lang == store.LanguageAR {
		return "Arabic"
	}
	return "English"
}
