package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/exp/slog"

	"docui/internal/app/client/config"
	"docui/internal/app/client/session"
)

// Client - единственный посредник между клиентским состоянием и удаленным
// API документов. Клиент не хранит ответы: кэширование и инвалидация -
// ответственность слоя экранов.
type Client struct {
	client    *http.Client
	config    *config.Config
	creds     session.CredentialProvider
	log       *slog.Logger
	baseURL   string
	userAgent string
}

func New(cfg *config.Config, creds session.CredentialProvider, log *slog.Logger) *Client {
	client := &http.Client{
		Timeout: cfg.APITimeout,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			IdleConnTimeout:     90 * time.Second,
			DisableCompression:  false,
			DisableKeepAlives:   false,
			MaxIdleConnsPerHost: 10,
		},
	}

	return &Client{
		client:    client,
		config:    cfg,
		creds:     creds,
		log:       log,
		baseURL:   cfg.APIURL,
		userAgent: cfg.AppName + "-Client/1.0",
	}
}

// doRequest выполняет запрос с подстановкой токена сессии. Если сессии нет,
// запрос уходит без заголовка Authorization - отклонять неаутентифицированные
// вызовы обязан сервер.
func (c *Client) doRequest(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string) (*http.Response, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания запроса: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token, ok := c.creds.Token(); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	c.log.Debug("Отправка запроса",
		"method", method,
		"url", req.URL.String(),
	)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, transportFailure(err)
	}

	return resp, nil
}

// parseResponse читает тело ответа и декодирует JSON в result.
// Статусы >= 400 превращаются в типизированную ошибку с сохранением деталей.
func (c *Client) parseResponse(resp *http.Response, result interface{}) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Kind: KindNetwork, Detail: "ошибка чтения ответа", Err: err}
	}

	c.log.Debug("Получен ответ",
		"status", resp.StatusCode,
		"size", len(body),
	)

	if resp.StatusCode >= 400 {
		return statusError(resp.StatusCode, body)
	}

	if result != nil {
		if err := json.Unmarshal(body, result); err != nil {
			return &TransportError{
				Kind:       KindHTTP,
				StatusCode: resp.StatusCode,
				Detail:     "некорректный ответ сервера",
				Err:        err,
			}
		}
	}

	return nil
}

// transportFailure различает таймаут и прочие сетевые сбои.
func transportFailure(err error) error {
	kind := KindNetwork

	var urlErr *url.Error
	switch {
	case errors.As(err, &urlErr) && urlErr.Timeout():
		kind = KindTimeout
	case errors.Is(err, context.DeadlineExceeded):
		kind = KindTimeout
	}

	return &TransportError{Kind: kind, Detail: err.Error(), Err: err}
}

// statusError строит типизированную ошибку из тела ответа сервера.
// Сервер может вернуть detail, error или message - берем первое непустое.
func statusError(status int, body []byte) error {
	var payload struct {
		Detail  string `json:"detail"`
		Error   string `json:"error"`
		Message string `json:"message"`
	}

	detail := ""
	if err := json.Unmarshal(body, &payload); err == nil {
		switch {
		case payload.Detail != "":
			detail = payload.Detail
		case payload.Error != "":
			detail = payload.Error
		case payload.Message != "":
			detail = payload.Message
		}
	}

	te := TransportError{
		Kind:       KindHTTP,
		StatusCode: status,
		Detail:     detail,
	}

	if status == http.StatusNotFound {
		return &NotFoundError{TransportError: te}
	}
	return &te
}
