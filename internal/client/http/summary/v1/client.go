package summaryclient

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/you-humble/fieldservice/internal/client/converter"
	"github.com/you-humble/fieldservice/internal/model"
)

const suggestPath = "/v1/suggestions"

type client struct {
	http *resty.Client
}

func NewClient(http *resty.Client) *client {
	return &client{http: http}
}

func (c *client) Suggest(ctx context.Context, req model.SummaryRequest) (string, error) {
	var out converter.SuggestResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(converter.SummaryRequestToDTO(req)).
		SetResult(&out).
		Post(suggestPath)
	if err != nil {
		return "", err
	}

	if resp.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("suggestion request status: %d", resp.StatusCode())
	}

	text := strings.TrimSpace(out.Text)
	if text == "" {
		return "", fmt.Errorf("suggestion provider returned empty text")
	}
	return text, nil
}
