package images

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/Sakibhasan202/Walkin/internal/config"
)

// Resolver - ürün görseli üretimi. Resolve hiçbir zaman hata döndürmez:
// üretim başarısız olursa isimden türetilen deterministik placeholder döner,
// UI bozuk görsel yüzünden asla takılı kalmaz.
type Resolver interface {
	Resolve(ctx context.Context, name, itemType string) string
}

type Client struct {
	apiKey          string
	endpoint        string
	placeholderBase string
	httpClient      *http.Client
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		apiKey:          cfg.ImageAPIKey,
		endpoint:        cfg.ImageAPIURL,
		placeholderBase: cfg.PlaceholderBase,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// generateContent istek/yanıt gövdeleri (sadece kullandığımız alanlar)

type generateRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type generationConfig struct {
	ImageConfig *imageConfig `json:"imageConfig,omitempty"`
}

type imageConfig struct {
	AspectRatio string `json:"aspectRatio"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// Resolve - isim ve kategoriden ürün fotoğrafı üretir. Her türlü hata
// (ağ, kota, beklenmedik gövde) yerel olarak karşılanır ve placeholder'a
// düşülür; hata yukarı taşınmaz.
func (cl *Client) Resolve(ctx context.Context, name, itemType string) string {
	imageURL, err := cl.generate(ctx, name, itemType)
	if err != nil {
		log.Println("Görsel üretilemedi, placeholder kullanılıyor:", err)
		return cl.Placeholder(name)
	}
	return imageURL
}

// Placeholder - isimden türetilen sabit fallback adresi. Aynı isim her zaman
// aynı görseli verir.
func (cl *Client) Placeholder(name string) string {
	return fmt.Sprintf("%s/seed/%s/400/400", cl.placeholderBase, url.QueryEscape(name))
}

func (cl *Client) generate(ctx context.Context, name, itemType string) (string, error) {
	if cl.apiKey == "" {
		return "", fmt.Errorf("API anahtarı tanımlı değil")
	}

	prompt := fmt.Sprintf(
		"Professional product photography of %s (%s). Minimalist style, placed on a clean white studio background. High quality, photorealistic, commercial aesthetic. 4k resolution.",
		name, itemType,
	)

	reqBody := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: &generationConfig{
			ImageConfig: &imageConfig{AspectRatio: "1:1"},
		},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("istek gövdesi oluşturulamadı: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, cl.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("HTTP isteği oluşturulamadı: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", cl.apiKey)

	resp, err := cl.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("HTTP isteği başarısız: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP hatası: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("yanıt okunamadı: %v", err)
	}

	var gr generateResponse
	if err := json.Unmarshal(body, &gr); err != nil {
		return "", fmt.Errorf("yanıt çözümlenemedi: %v", err)
	}

	// Parçalar arasında ilk inline görseli bul
	for _, cand := range gr.Candidates {
		for _, p := range cand.Content.Parts {
			if p.InlineData != nil && p.InlineData.Data != "" {
				mime := p.InlineData.MimeType
				if mime == "" {
					mime = "image/png"
				}
				return fmt.Sprintf("data:%s;base64,%s", mime, p.InlineData.Data), nil
			}
		}
	}

	return "", fmt.Errorf("yanıtta görsel verisi bulunamadı")
}
