package address

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/vortex-fintech/brinput/postalcode"
)

const (
	DefaultViaCEPBaseURL = "https://viacep.com.br"
	defaultViaCEPTimeout = 3 * time.Second
	maxViaCEPBody        = 64 << 10
)

var errUpstream = errors.New("address: upstream failure")

type ViaCEPConfig struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// ViaCEP looks postal codes up in the public ViaCEP API.
type ViaCEP struct {
	baseURL string
	client  *http.Client
}

var _ Provider = (*ViaCEP)(nil)

func NewViaCEP(cfg ViaCEPConfig) *ViaCEP {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		base = DefaultViaCEPBaseURL
	}
	client := cfg.HTTPClient
	if client == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultViaCEPTimeout
		}
		client = &http.Client{Timeout: timeout}
	}
	return &ViaCEP{baseURL: base, client: client}
}

type viaCEPResponse struct {
	CEP         string          `json:"cep"`
	Logradouro  string          `json:"logradouro"`
	Complemento string          `json:"complemento"`
	Bairro      string          `json:"bairro"`
	Localidade  string          `json:"localidade"`
	UF          string          `json:"uf"`
	Erro        json.RawMessage `json:"erro"`
}

// notFound reports the "erro" flag, sent as either true or "true".
func (r viaCEPResponse) notFound() bool {
	s := strings.Trim(string(r.Erro), `" `)
	return s == "true"
}

func (v *ViaCEP) Lookup(ctx context.Context, postalDigits string) (Address, error) {
	if !postalcode.IsValid(postalDigits) {
		return Address{}, ErrInvalidPostalCode
	}
	d := postalcode.Digits(postalDigits)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.baseURL+"/ws/"+d+"/json/", nil)
	if err != nil {
		return Address{}, fmt.Errorf("viacep: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := v.client.Do(req)
	if err != nil {
		return Address{}, fmt.Errorf("viacep: %w: %w", errUpstream, err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return Address{}, ErrNotFound
	case resp.StatusCode == http.StatusBadRequest:
		return Address{}, ErrInvalidPostalCode
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return Address{}, fmt.Errorf("viacep: %w: status %d", errUpstream, resp.StatusCode)
	}

	var body viaCEPResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxViaCEPBody)).Decode(&body); err != nil {
		return Address{}, fmt.Errorf("viacep: %w: decode: %w", errUpstream, err)
	}
	if body.notFound() {
		return Address{}, ErrNotFound
	}

	return Address{
		PostalCode:   postalcode.Mask(d),
		Street:       strings.TrimSpace(body.Logradouro),
		Complement:   strings.TrimSpace(body.Complemento),
		Neighborhood: strings.TrimSpace(body.Bairro),
		City:         strings.TrimSpace(body.Localidade),
		State:        strings.ToUpper(strings.TrimSpace(body.UF)),
	}, nil
}
