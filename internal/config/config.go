package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	ModelFormatForest = "forest"
	ModelFormatONNX   = "onnx"
	ModelFormatKServe = "kserve"
)

type Config struct {
	Server     ServerConfig
	Logger     LoggerConfig
	Model      ModelConfig
	ONNX       ONNXConfig
	KServe     KServeConfig
	Kubernetes KubernetesConfig
	UI         UIConfig
}

type ServerConfig struct {
	Host            string
	Port            int
	ShutdownTimeout time.Duration
}

type LoggerConfig struct {
	Level  string
	Format string
}

type ModelConfig struct {
	Format       string
	Path         string
	FeaturesPath string
}

type ONNXConfig struct {
	LibraryPath string
	InputName   string
	OutputName  string
}

type KServeConfig struct {
	URL       string
	ModelName string
	Timeout   time.Duration
}

type KubernetesConfig struct {
	Enabled        bool
	InCluster      bool
	KubeConfigPath string
	Namespace      string
}

type UIConfig struct {
	Title          string
	Subtitle       string
	Footer         string
	CurrencySymbol string
}

func Load() (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", "10s")
	v.SetDefault("LOGGER_LEVEL", "info")
	v.SetDefault("LOGGER_FORMAT", "json")
	v.SetDefault("MODEL_FORMAT", ModelFormatForest)
	v.SetDefault("MODEL_PATH", "models/employee_salary_model.json")
	v.SetDefault("MODEL_FEATURES_PATH", "models/model_features.json")
	v.SetDefault("ONNX_RUNTIME_LIBRARY", "")
	v.SetDefault("ONNX_INPUT_NAME", "input")
	v.SetDefault("ONNX_OUTPUT_NAME", "output")
	v.SetDefault("KSERVE_URL", "")
	v.SetDefault("KSERVE_MODEL_NAME", "employee-salary")
	v.SetDefault("KSERVE_TIMEOUT", "10s")
	v.SetDefault("KUBERNETES_ENABLED", false)
	v.SetDefault("KUBERNETES_IN_CLUSTER", false)
	v.SetDefault("KUBECONFIG_PATH", "")
	v.SetDefault("KSERVE_NAMESPACE", "model-serving")
	v.SetDefault("UI_TITLE", "IBM Employee Salary Predictor")
	v.SetDefault("UI_SUBTITLE", "Developed by Lakshmi Priya R | IBM AI & Data Science Internship Project")
	v.SetDefault("UI_FOOTER", "IBM SkillsBuild Program | Project Code: IBM2025DS23 | Confidential & Educational Use Only")
	v.SetDefault("UI_CURRENCY_SYMBOL", "₹")

	// Env
	v.AutomaticEnv()

	shutdownTimeout, err := time.ParseDuration(v.GetString("SERVER_SHUTDOWN_TIMEOUT"))
	if err != nil {
		shutdownTimeout = 10 * time.Second
	}

	kserveTimeout, err := time.ParseDuration(v.GetString("KSERVE_TIMEOUT"))
	if err != nil {
		kserveTimeout = 10 * time.Second
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:            v.GetString("SERVER_HOST"),
			Port:            v.GetInt("SERVER_PORT"),
			ShutdownTimeout: shutdownTimeout,
		},
		Logger: LoggerConfig{
			Level:  v.GetString("LOGGER_LEVEL"),
			Format: v.GetString("LOGGER_FORMAT"),
		},
		Model: ModelConfig{
			Format:       strings.ToLower(strings.TrimSpace(v.GetString("MODEL_FORMAT"))),
			Path:         v.GetString("MODEL_PATH"),
			FeaturesPath: v.GetString("MODEL_FEATURES_PATH"),
		},
		ONNX: ONNXConfig{
			LibraryPath: v.GetString("ONNX_RUNTIME_LIBRARY"),
			InputName:   v.GetString("ONNX_INPUT_NAME"),
			OutputName:  v.GetString("ONNX_OUTPUT_NAME"),
		},
		KServe: KServeConfig{
			URL:       v.GetString("KSERVE_URL"),
			ModelName: v.GetString("KSERVE_MODEL_NAME"),
			Timeout:   kserveTimeout,
		},
		Kubernetes: KubernetesConfig{
			Enabled:        v.GetBool("KUBERNETES_ENABLED"),
			InCluster:      v.GetBool("KUBERNETES_IN_CLUSTER"),
			KubeConfigPath: v.GetString("KUBECONFIG_PATH"),
			Namespace:      v.GetString("KSERVE_NAMESPACE"),
		},
		UI: UIConfig{
			Title:          v.GetString("UI_TITLE"),
			Subtitle:       v.GetString("UI_SUBTITLE"),
			Footer:         v.GetString("UI_FOOTER"),
			CurrencySymbol: v.GetString("UI_CURRENCY_SYMBOL"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid SERVER_PORT %d", c.Server.Port)
	}
	if c.Model.FeaturesPath == "" {
		return fmt.Errorf("MODEL_FEATURES_PATH is required")
	}

	switch c.Model.Format {
	case ModelFormatForest, ModelFormatONNX:
		if c.Model.Path == "" {
			return fmt.Errorf("MODEL_PATH is required for format %q", c.Model.Format)
		}
	case ModelFormatKServe:
		if c.KServe.ModelName == "" {
			return fmt.Errorf("KSERVE_MODEL_NAME is required")
		}
		if c.KServe.URL == "" && !c.Kubernetes.Enabled {
			return fmt.Errorf("KSERVE_URL is required unless KUBERNETES_ENABLED is set")
		}
	default:
		return fmt.Errorf("unsupported MODEL_FORMAT %q", c.Model.Format)
	}

	return nil
}
