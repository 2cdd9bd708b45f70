package kserve

import (
	"context"
	"errors"
	"fmt"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/runtime/schema"
	"k8s.io/client-go/dynamic"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"

	"salary-predictor-service/internal/config"
	output "salary-predictor-service/internal/core/ports/output"
)

// ErrNotReady is wrapped by every readiness failure read from a status
var ErrNotReady = errors.New("inferenceservice not ready")

var inferenceServiceGVR = schema.GroupVersionResource{
	Group:    "serving.kserve.io",
	Version:  "v1beta1",
	Resource: "inferenceservices",
}

// url fields in order of preference; address.url is cluster-local
var urlPaths = [][]string{
	{"status", "address", "url"},
	{"status", "url"},
}

type kserveClient struct {
	client    dynamic.Interface
	defaultNS string
}

// NewKServeClient creates a resolver backed by the Kubernetes API
func NewKServeClient(cfg *config.KubernetesConfig) (output.InferenceServiceResolver, error) {
	restCfg, err := restConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("build k8s config: %w", err)
	}

	client, err := dynamic.NewForConfig(restCfg)
	if err != nil {
		return nil, fmt.Errorf("create dynamic client: %w", err)
	}

	return NewResolver(client, cfg.Namespace), nil
}

// restConfig uses the pod's service account in-cluster. Outside it follows
// kubectl: an explicit path, then $KUBECONFIG, then ~/.kube/config.
func restConfig(cfg *config.KubernetesConfig) (*rest.Config, error) {
	if cfg.InCluster {
		return rest.InClusterConfig()
	}
	rules := clientcmd.NewDefaultClientConfigLoadingRules()
	rules.ExplicitPath = cfg.KubeConfigPath
	return clientcmd.NewNonInteractiveDeferredLoadingClientConfig(rules, &clientcmd.ConfigOverrides{}).ClientConfig()
}

// NewResolver wraps an existing dynamic client
func NewResolver(client dynamic.Interface, defaultNS string) output.InferenceServiceResolver {
	if defaultNS == "" {
		defaultNS = "model-serving"
	}
	return &kserveClient{client: client, defaultNS: defaultNS}
}

func (c *kserveClient) GetStatus(ctx context.Context, namespace, name string) (*output.InferenceServiceStatus, error) {
	if namespace == "" {
		namespace = c.defaultNS
	}

	obj, err := c.client.Resource(inferenceServiceGVR).
		Namespace(namespace).
		Get(ctx, name, metav1.GetOptions{})
	if err != nil {
		return nil, fmt.Errorf("get inferenceservice %s/%s: %w", namespace, name, err)
	}

	return &output.InferenceServiceStatus{
		URL:      serviceURL(obj),
		NotReady: readiness(obj),
	}, nil
}

func serviceURL(obj *unstructured.Unstructured) string {
	for _, path := range urlPaths {
		if u, _, _ := unstructured.NestedString(obj.Object, path...); u != "" {
			return u
		}
	}
	return ""
}

// readiness returns nil when the Ready condition is True, and an error
// wrapping ErrNotReady carrying the condition's reason and message otherwise.
func readiness(obj *unstructured.Unstructured) error {
	conditions, _, _ := unstructured.NestedSlice(obj.Object, "status", "conditions")
	for _, c := range conditions {
		cond, ok := c.(map[string]interface{})
		if !ok || cond["type"] != "Ready" {
			continue
		}
		if cond["status"] == "True" {
			return nil
		}

		detail := fmt.Sprintf("Ready=%v", cond["status"])
		if reason, _ := cond["reason"].(string); reason != "" {
			detail += " " + reason
		}
		if msg, _ := cond["message"].(string); msg != "" {
			detail += ": " + msg
		}
		return fmt.Errorf("%w: %s", ErrNotReady, detail)
	}
	return fmt.Errorf("%w: no Ready condition reported", ErrNotReady)
}

var _ output.InferenceServiceResolver = (*kserveClient)(nil)
