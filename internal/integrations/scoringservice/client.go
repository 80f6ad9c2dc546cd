package scoringservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/m04kA/SMC-InterviewService/internal/domain"
)

// Client клиент для работы с внешним сервисом AI-скоринга CV
// Сервис потребляется как черный ящик: текст CV + требования на входе,
// численная оценка 0..10 с комментарием на выходе
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента сервиса скоринга
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// ScoreCV запрашивает оценку CV по требованиям вакансии
// При недоступности сервиса возвращает ErrScoringUnavailable:
// вызывающий исключает кандидата из ранжирования, не прерывая обработку
func (c *Client) ScoreCV(ctx context.Context, req *ScoreRequest) (*ScoreResult, error) {
	url := fmt.Sprintf("%s/internal/score", c.baseURL)

	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.log.Error("ScoringService unavailable: %v", err)
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrScoringUnavailable, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: scoring request rejected", ErrInvalidResponse)
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrScoringUnavailable, resp.StatusCode, string(body))
	}

	var result ScoreResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if result.Score < domain.MinAIScore || result.Score > domain.MaxAIScore {
		return nil, fmt.Errorf("%w: score %.2f out of range", ErrInvalidResponse, result.Score)
	}

	return &result, nil
}
