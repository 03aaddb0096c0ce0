package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// SheetsAPI fetches published Google Sheets as CSV. Both reminder template
// feeds are published spreadsheets consumed once at startup.
type SheetsAPI struct {
	client *http.Client
}

func NewSheetsAPI() *SheetsAPI {
	return &SheetsAPI{
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

// FetchCSV downloads the published sheet at url and returns its body. A
// sheet that is not published for the web comes back as an HTML page, which
// is rejected here rather than handed to the CSV parser.
func (s *SheetsAPI) FetchCSV(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("sheet fetch returned %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	content := string(body)
	if strings.HasPrefix(content, "<!DOCTYPE html>") {
		return "", errors.New("received HTML instead of CSV: check that the sheet is published and accessible")
	}

	return content, nil
}
