package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const defaultTranslateURL = "https://api.mymemory.translated.net/get"

// Translator converts message text to a target language.
type Translator interface {
	Translate(ctx context.Context, text, target string) (string, error)
}

// MyMemoryTranslator proxies translation through the MyMemory public
// API so the frontend never talks to it directly.
type MyMemoryTranslator struct {
	baseURL string
	client  *http.Client
}

func NewMyMemoryTranslator(baseURL string) *MyMemoryTranslator {
	if baseURL == "" {
		baseURL = defaultTranslateURL
	}

	return &MyMemoryTranslator{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type myMemoryResponse struct {
	ResponseData struct {
		TranslatedText string `json:"translatedText"`
	} `json:"responseData"`
}

func (t *MyMemoryTranslator) Translate(ctx context.Context, text, target string) (string, error) {
	params := url.Values{}
	params.Set("q", text)
	params.Set("langpair", "en|"+target)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("translate request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("translate upstream status %d", resp.StatusCode)
	}

	var mr myMemoryResponse
	if err := json.NewDecoder(resp.Body).Decode(&mr); err != nil {
		return "", fmt.Errorf("decode translate response: %w", err)
	}

	if mr.ResponseData.TranslatedText == "" {
		return "", fmt.Errorf("empty translation")
	}

	return mr.ResponseData.TranslatedText, nil
}

type TranslateRequest struct {
	Text   string `json:"text"`
	Target string `json:"target"`
}

func (s *CampusChatApp) translate(w http.ResponseWriter, r *http.Request) {
	var req TranslateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	if req.Text == "" || req.Target == "" {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	translated, err := s.translator.Translate(r.Context(), req.Text, req.Target)
	if err != nil {
		s.log.Println("translate:", err)
		errResp := NewBadGatewayError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	s.writeJson(w, http.StatusOK, map[string]string{"translated_text": translated})
}
