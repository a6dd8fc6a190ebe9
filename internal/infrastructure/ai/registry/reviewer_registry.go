package registry

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/Tomas-vilte/MateReview/internal/config"
	"github.com/Tomas-vilte/MateReview/internal/domain/ports"
	"github.com/Tomas-vilte/MateReview/internal/i18n"
)

// ReviewerFactory define la interfaz para crear reviewers de IA
type ReviewerFactory interface {
	// CreateReviewer valida las credenciales del proveedor y crea el cliente.
	// Con credenciales faltantes retorna el error sin tocar la red.
	CreateReviewer(ctx context.Context, cfg *config.Config, trans *i18n.Translations) (ports.Reviewer, error)

	// Name retorna el nombre del proveedor
	Name() string
}

// ReviewerRegistry gestiona el registro de proveedores de IA
type ReviewerRegistry struct {
	mu        sync.RWMutex
	factories map[string]ReviewerFactory
}

// NewReviewerRegistry crea un nuevo registro de proveedores
func NewReviewerRegistry() *ReviewerRegistry {
	return &ReviewerRegistry{
		factories: make(map[string]ReviewerFactory),
	}
}

// Register registra un nuevo proveedor
func (r *ReviewerRegistry) Register(name string, factory ReviewerFactory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[name]; exists {
		return fmt.Errorf("proveedor IA '%s' ya esta registrado", name)
	}

	r.factories[name] = factory
	return nil
}

// Get obtiene un factory por nombre
func (r *ReviewerRegistry) Get(name string) (ReviewerFactory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	factory, exists := r.factories[name]
	if !exists {
		return nil, fmt.Errorf("proveedor IA '%s' no encontrado en el registro", name)
	}

	return factory, nil
}

// List retorna la lista de proveedores registrados
func (r *ReviewerRegistry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	providers := make([]string, 0, len(r.factories))
	for name := range r.factories {
		providers = append(providers, name)
	}
	return providers
}

// IsRegistered verifica si un proveedor está registrado
func (r *ReviewerRegistry) IsRegistered(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.factories[name]
	return exists
}

// CreateFromConfig crea el reviewer que selecciona LLM_PROVIDER.
func (r *ReviewerRegistry) CreateFromConfig(ctx context.Context, cfg *config.Config, trans *i18n.Translations) (ports.Reviewer, error) {
	if !config.IsSupportedProvider(cfg.Provider) {
		supported := make([]string, 0, len(config.SupportedProviders()))
		for _, p := range config.SupportedProviders() {
			supported = append(supported, string(p))
		}
		msg := trans.GetMessage("error_unknown_provider", 0, map[string]interface{}{
			"Provider":  string(cfg.Provider),
			"Supported": strings.Join(supported, ", "),
		})
		return nil, fmt.Errorf("%s", msg)
	}

	factory, err := r.Get(string(cfg.Provider))
	if err != nil {
		return nil, err
	}
	return factory.CreateReviewer(ctx, cfg, trans)
}
