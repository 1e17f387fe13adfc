package services

import (
	"fmt"

	"github.com/go-resty/resty/v2"

	"randomtools/internal/common"
)

const wishAPIURL = "https://cudowne.zyczenia.online/wishes/get"

// FetchWish asks the wish generator for a wish addressed to one
// person, or to several when plural is set.
func FetchWish(plural bool) (string, error) {
	var result struct {
		Content string `json:"content"`
	}

	resp, err := resty.New().R().
		SetQueryParam("isPlural", fmt.Sprintf("%t", plural)).
		SetResult(&result).
		Get(wishAPIURL)
	if err != nil {
		return "", fmt.Errorf("failed to fetch wish: %w", err)
	}
	if resp.IsError() {
		return "", common.NewNetworkError("wish_api_error",
			fmt.Sprintf("wish API returned status %d: %s", resp.StatusCode(), resp.String()))
	}
	return result.Content, nil
}
