package resolver

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/conestack/webresource/pkg/observability"
)

// Renderer renders resolved resources as HTML tags, one per line, in
// resolver order. Resolution happens on every Render call; nothing is
// cached across calls, so include predicates and operation mode changes
// take effect immediately.
type Renderer struct {
	resolver *Resolver
	baseURL  string
}

// NewRenderer creates a renderer emitting tags relative to baseURL.
func NewRenderer(r *Resolver, baseURL string) *Renderer {
	return &Renderer{resolver: r, baseURL: baseURL}
}

// Render resolves the member tree and concatenates each resource's tag.
// Any resolver error and any resource render error aborts rendering.
func (r *Renderer) Render() (string, error) {
	start := time.Now()
	resources, err := r.resolver.Resolve()
	if err != nil {
		observability.Resolve().OnRenderComplete(0, time.Since(start), err)
		return "", err
	}
	lines := make([]string, len(resources))
	for i, res := range resources {
		tag, err := res.Render(r.baseURL)
		if err != nil {
			observability.Resolve().OnRenderComplete(len(resources), time.Since(start), err)
			return "", err
		}
		lines[i] = tag
	}
	observability.Resolve().OnRenderComplete(len(resources), time.Since(start), nil)
	return strings.Join(lines, "\n"), nil
}

// GracefulRenderer renders resolved resources like [Renderer] but
// isolates per-resource render failures: a failing resource (for
// example one whose file does not exist) is replaced by an HTML comment
// placeholder and logged, while all other resources still render.
// Resolver errors are structural and still abort rendering.
type GracefulRenderer struct {
	resolver *Resolver
	baseURL  string
	logger   *log.Logger
}

// NewGracefulRenderer creates a graceful renderer. A nil logger falls
// back to log.Default().
func NewGracefulRenderer(r *Resolver, baseURL string, logger *log.Logger) *GracefulRenderer {
	if logger == nil {
		logger = log.Default()
	}
	return &GracefulRenderer{resolver: r, baseURL: baseURL, logger: logger}
}

// Render resolves the member tree and concatenates each resource's tag,
// substituting a placeholder comment for resources that fail to render.
func (r *GracefulRenderer) Render() (string, error) {
	start := time.Now()
	resources, err := r.resolver.Resolve()
	if err != nil {
		observability.Resolve().OnRenderComplete(0, time.Since(start), err)
		return "", err
	}
	defer func() {
		observability.Resolve().OnRenderComplete(len(resources), time.Since(start), nil)
	}()
	lines := make([]string, len(resources))
	for i, res := range resources {
		tag, err := res.Render(r.baseURL)
		if err != nil {
			r.logger.Error("failure to render resource", "name", res.Name(), "err", err)
			tag = fmt.Sprintf("<!-- failure to render resource %q - details in logs -->", res.Name())
		}
		lines[i] = tag
	}
	return strings.Join(lines, "\n"), nil
}
