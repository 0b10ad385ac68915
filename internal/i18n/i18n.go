// Package i18n provides internationalization support for the storefront service.
// It handles translation of user-facing messages and error messages. The
// storefront serves a Brazilian audience, so both English and Portuguese
// message catalogs ship by default.
package i18n

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale is the default language locale (English).
	DefaultLocale = "en"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	// defaultTranslator is the singleton translator instance.
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator handles message translation for different locales.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a new translator with the default messages.
func NewTranslator() *Translator {
	return &Translator{
		messages: getDefaultMessages(),
	}
}

// GetTranslator returns the default singleton translator instance.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the translated message for the given key and locale.
// Falls back to DefaultLocale if the locale is not found.
func (t *Translator) Translate(key, locale string) string {
	if locale == "" {
		locale = DefaultLocale
	}

	localeMessages, ok := t.messages[locale]
	if !ok {
		localeMessages = t.messages[DefaultLocale]
	}

	msg, ok := localeMessages[key]
	if !ok {
		// Fallback to default locale
		if defaultMessages := t.messages[DefaultLocale]; defaultMessages != nil {
			if fallbackMsg, exists := defaultMessages[key]; exists {
				return fallbackMsg
			}
		}
		return key
	}

	return msg
}

// GetLocale extracts the locale from the gin context.
// Checks Accept-Language header and falls back to DefaultLocale.
func GetLocale(c *gin.Context) string {
	acceptLang := c.GetHeader(AcceptLanguageHeader)
	if acceptLang == "" {
		return DefaultLocale
	}

	// Parse Accept-Language header (e.g., "pt-BR,pt;q=0.9,en;q=0.8")
	parts := strings.Split(acceptLang, ",")
	if len(parts) > 0 {
		lang := strings.TrimSpace(strings.Split(parts[0], ";")[0])
		// Extract base language (e.g., "pt" from "pt-BR")
		if idx := strings.Index(lang, "-"); idx > 0 {
			lang = lang[:idx]
		}
		lang = strings.ToLower(lang)
		// Validate it's a supported locale
		if _, ok := getDefaultMessages()[lang]; ok {
			return lang
		}
	}

	return DefaultLocale
}

// getDefaultMessages returns the default message translations.
func getDefaultMessages() map[string]map[string]string {
	return map[string]map[string]string{
		"en": {
			// Error messages
			"error.invalid_request":           "Invalid request",
			"error.invalid_request_body":      "Invalid request body",
			"error.internal_error":            "An unexpected error occurred",
			"error.unauthorized":              "Unauthorized",
			"error.invalid_credentials":       "Invalid credentials",
			"error.api_key_required":          "API key is required",
			"error.invalid_api_key":           "Invalid API key",
			"error.forbidden":                 "Forbidden",
			"error.not_found":                 "Not found",
			"error.order_not_found":           "Order not found",
			"error.rate_limit_exceeded":       "Too many requests, please try again later",
			"error.conflict":                  "Conflict",
			"error.validation.customer":       "Please fill in all required delivery fields",
			"error.validation.cart_item":      "Invalid cart item",
			"error.catalog_unavailable":       "Menu is temporarily unavailable, please try again",
			"error.empty_cart":                "Your cart is empty",
			"error.submission_failed":         "We could not submit your order, please try again",
			"error.invalid_status_transition": "Order status cannot change that way",
			"error.invalid_token":             "Invalid or expired token",
			"error.token_required":            "Authentication token is required",
			"error.timeout":                   "Request timed out",

			// Success messages
			"success.order_confirmed": "Order confirmed, delivery on the way soon",
		},
		"pt": {
			// Error messages
			"error.invalid_request":           "Requisição inválida",
			"error.invalid_request_body":      "Corpo da requisição inválido",
			"error.internal_error":            "Ocorreu um erro inesperado",
			"error.unauthorized":              "Não autorizado",
			"error.invalid_credentials":       "Credenciais inválidas",
			"error.api_key_required":          "Chave de API é obrigatória",
			"error.invalid_api_key":           "Chave de API inválida",
			"error.forbidden":                 "Proibido",
			"error.not_found":                 "Não encontrado",
			"error.order_not_found":           "Pedido não encontrado",
			"error.rate_limit_exceeded":       "Muitas requisições, tente novamente mais tarde",
			"error.conflict":                  "Conflito",
			"error.validation.customer":       "Preencha todos os campos obrigatórios de entrega",
			"error.validation.cart_item":      "Item do carrinho inválido",
			"error.catalog_unavailable":       "Cardápio temporariamente indisponível, tente novamente",
			"error.empty_cart":                "Seu carrinho está vazio",
			"error.submission_failed":         "Não foi possível enviar seu pedido, tente novamente",
			"error.invalid_status_transition": "O status do pedido não pode mudar dessa forma",
			"error.invalid_token":             "Token inválido ou expirado",
			"error.token_required":            "Token de autenticação é obrigatório",
			"error.timeout":                   "Tempo da requisição esgotado",

			// Success messages
			"success.order_confirmed": "Pedido confirmado, entrega a caminho em breve",
		},
	}
}
