package onnx

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	log "github.com/sirupsen/logrus"
	ort "github.com/yalue/onnxruntime_go"

	"salary-predictor-service/internal/config"
	"salary-predictor-service/internal/core/domain"
	ports "salary-predictor-service/internal/core/ports/output"
)

// Predictor runs a single-output ONNX regressor with input shape [1, n].
// The session reuses its tensors, so Run calls are serialised.
type Predictor struct {
	mu           sync.Mutex
	session      *ort.AdvancedSession
	inputTensor  *ort.Tensor[float32]
	outputTensor *ort.Tensor[float32]
	numFeatures  int
	modelPath    string
}

// NewPredictor initialises the onnxruntime environment and opens the model.
func NewPredictor(cfg *config.ONNXConfig, modelPath string, numFeatures int) (*Predictor, error) {
	if err := validate(cfg, modelPath, numFeatures); err != nil {
		return nil, err
	}

	if cfg.LibraryPath != "" {
		ort.SetSharedLibraryPath(cfg.LibraryPath)
	}
	if err := ort.InitializeEnvironment(); err != nil {
		return nil, fmt.Errorf("initialize onnx environment: %w", err)
	}

	inputTensor, err := ort.NewEmptyTensor[float32](ort.NewShape(1, int64(numFeatures)))
	if err != nil {
		ort.DestroyEnvironment()
		return nil, fmt.Errorf("create input tensor: %w", err)
	}

	outputTensor, err := ort.NewEmptyTensor[float32](ort.NewShape(1, 1))
	if err != nil {
		inputTensor.Destroy()
		ort.DestroyEnvironment()
		return nil, fmt.Errorf("create output tensor: %w", err)
	}

	session, err := ort.NewAdvancedSession(modelPath,
		[]string{cfg.InputName}, []string{cfg.OutputName},
		[]ort.ArbitraryTensor{inputTensor}, []ort.ArbitraryTensor{outputTensor},
		nil)
	if err != nil {
		inputTensor.Destroy()
		outputTensor.Destroy()
		ort.DestroyEnvironment()
		return nil, fmt.Errorf("create onnx session: %w", err)
	}

	log.WithFields(log.Fields{
		"model":    modelPath,
		"input":    cfg.InputName,
		"output":   cfg.OutputName,
		"features": numFeatures,
	}).Info("onnx model loaded")

	return &Predictor{
		session:      session,
		inputTensor:  inputTensor,
		outputTensor: outputTensor,
		numFeatures:  numFeatures,
		modelPath:    modelPath,
	}, nil
}

func validate(cfg *config.ONNXConfig, modelPath string, numFeatures int) error {
	if modelPath == "" {
		return fmt.Errorf("%w: onnx model path is required", domain.ErrInvalidModel)
	}
	if cfg.InputName == "" || cfg.OutputName == "" {
		return fmt.Errorf("%w: onnx input and output names are required", domain.ErrInvalidModel)
	}
	if numFeatures <= 0 {
		return fmt.Errorf("%w: onnx input width must be positive", domain.ErrInvalidModel)
	}
	return nil
}

func (p *Predictor) Predict(_ context.Context, features []float64) (float64, error) {
	if len(features) != p.numFeatures {
		return 0, fmt.Errorf("%w: got %d, want %d", domain.ErrFeatureCount, len(features), p.numFeatures)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	copyToFloat32(p.inputTensor.GetData(), features)

	if err := p.session.Run(); err != nil {
		return 0, fmt.Errorf("onnx inference: %w", err)
	}

	return float64(p.outputTensor.GetData()[0]), nil
}

func copyToFloat32(dst []float32, src []float64) {
	for i, v := range src {
		dst[i] = float32(v)
	}
}

func (p *Predictor) Describe() string {
	return fmt.Sprintf("ONNX Regressor (%s)", filepath.Base(p.modelPath))
}

func (p *Predictor) NumFeatures() int {
	return p.numFeatures
}

func (p *Predictor) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.inputTensor != nil {
		p.inputTensor.Destroy()
	}
	if p.outputTensor != nil {
		p.outputTensor.Destroy()
	}
	if p.session != nil {
		p.session.Destroy()
	}
	return ort.DestroyEnvironment()
}

var _ ports.Predictor = (*Predictor)(nil)
