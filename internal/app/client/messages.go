package client

import (
	"errors"
	"fmt"

	"docui/internal/app/client/api"
)

// userMessage переводит типизированную ошибку в сообщение для пользователя.
// Экраны ловят ошибки только на своей границе и никогда не повторяют
// запрос автоматически.
func userMessage(err error) string {
	if err == nil {
		return ""
	}

	var ve *api.ValidationError
	if errors.As(err, &ve) {
		return ve.Reason
	}

	if api.IsNotFound(err) {
		return "запись не найдена: возможно, она уже удалена"
	}

	if api.IsTimeout(err) {
		return "превышено время ожидания ответа сервера"
	}

	var te *api.TransportError
	if errors.As(err, &te) {
		if te.StatusCode != 0 {
			if te.Detail != "" {
				return fmt.Sprintf("сервер вернул ошибку %d: %s", te.StatusCode, te.Detail)
			}
			return fmt.Sprintf("сервер вернул ошибку %d", te.StatusCode)
		}
		return "сервер недоступен"
	}

	return err.Error()
}
