package kserve

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"salary-predictor-service/internal/config"
	"salary-predictor-service/internal/core/domain"
	output "salary-predictor-service/internal/core/ports/output"
)

// Predictor calls a model served with the KServe V1 inference protocol
type Predictor struct {
	httpClient *http.Client
	baseURL    string
	modelName  string
}

// NewPredictor returns a predictor for the model at baseURL
func NewPredictor(baseURL, modelName string, timeout time.Duration) *Predictor {
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &Predictor{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL:   strings.TrimRight(baseURL, "/"),
		modelName: modelName,
	}
}

// ResolvePredictor uses the configured URL or, when none is set, the URL
// published in the InferenceService status. The service must be Ready.
func ResolvePredictor(ctx context.Context, cfg *config.KServeConfig, resolver output.InferenceServiceResolver) (*Predictor, error) {
	if cfg.URL != "" {
		return NewPredictor(cfg.URL, cfg.ModelName, cfg.Timeout), nil
	}
	if resolver == nil {
		return nil, fmt.Errorf("%w: KSERVE_URL is empty and kubernetes lookup is disabled", domain.ErrModelUnavailable)
	}

	status, err := resolver.GetStatus(ctx, "", cfg.ModelName)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrModelUnavailable, err)
	}
	if !status.Ready() {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrModelUnavailable, cfg.ModelName, status.NotReady)
	}
	if status.URL == "" {
		return nil, fmt.Errorf("%w: inferenceservice %s has no url", domain.ErrModelUnavailable, cfg.ModelName)
	}

	log.WithFields(log.Fields{
		"model": cfg.ModelName,
		"url":   status.URL,
	}).Info("resolved inferenceservice url")

	return NewPredictor(status.URL, cfg.ModelName, cfg.Timeout), nil
}

type predictRequest struct {
	Instances [][]float64 `json:"instances"`
}

type predictResponse struct {
	Predictions []json.Number `json:"predictions"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (p *Predictor) Predict(ctx context.Context, features []float64) (float64, error) {
	body, err := json.Marshal(predictRequest{Instances: [][]float64{features}})
	if err != nil {
		return 0, fmt.Errorf("marshal predict request: %w", err)
	}

	url := fmt.Sprintf("%s/v1/models/%s:predict", p.baseURL, p.modelName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("create predict request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	log.WithFields(log.Fields{
		"url": url,
	}).Debug("forwarding prediction to model server")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", domain.ErrModelUnavailable, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("read predict response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var e errorResponse
		_ = json.Unmarshal(payload, &e)
		if e.Error == "" {
			e.Error = strings.TrimSpace(string(payload))
		}
		if resp.StatusCode >= http.StatusInternalServerError || resp.StatusCode == http.StatusNotFound {
			return 0, fmt.Errorf("%w: status %d: %s", domain.ErrModelUnavailable, resp.StatusCode, e.Error)
		}
		return 0, fmt.Errorf("model server rejected request: status %d: %s", resp.StatusCode, e.Error)
	}

	var out predictResponse
	dec := json.NewDecoder(bytes.NewReader(payload))
	dec.UseNumber()
	if err := dec.Decode(&out); err != nil {
		return 0, fmt.Errorf("decode predict response: %w", err)
	}
	if len(out.Predictions) != 1 {
		return 0, fmt.Errorf("expected 1 prediction, got %d", len(out.Predictions))
	}

	value, err := out.Predictions[0].Float64()
	if err != nil {
		return 0, fmt.Errorf("parse prediction: %w", err)
	}
	return value, nil
}

// Ready reports whether the model server says the model is ready
func (p *Predictor) Ready(ctx context.Context) error {
	url := fmt.Sprintf("%s/v1/models/%s", p.baseURL, p.modelName)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrModelUnavailable, err)
	}
	defer resp.Body.Close()

	var body struct {
		Ready bool `json:"ready"`
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d", domain.ErrModelUnavailable, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return fmt.Errorf("decode model status: %w", err)
	}
	if !body.Ready {
		return fmt.Errorf("%w: model %s is not ready", domain.ErrModelUnavailable, p.modelName)
	}
	return nil
}

func (p *Predictor) Describe() string {
	return fmt.Sprintf("KServe model %s", p.modelName)
}

func (p *Predictor) NumFeatures() int {
	return 0
}

func (p *Predictor) Close() error {
	p.httpClient.CloseIdleConnections()
	return nil
}

var (
	_ output.Predictor    = (*Predictor)(nil)
	_ output.ReadyChecker = (*Predictor)(nil)
)
