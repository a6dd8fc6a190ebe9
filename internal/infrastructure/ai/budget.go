package ai

import (
	"unicode/utf8"

	"github.com/Tomas-vilte/MateReview/internal/config"
)

// Límites de tokens de entrada por modelo en GitHub Models (tier gratuito).
// Ver https://docs.github.com/en/github-models
var modelInputLimits = map[config.Model]int{
	config.ModelGPT4o:     8000,
	config.ModelGPT4oMini: 8000,
	config.ModelGPT5:      4000,
	config.ModelGPT5Mini:  4000,
	config.ModelGPT5Nano:  4000,
}

// Topes de tokens de salida por modelo en GitHub Models.
var modelOutputLimits = map[config.Model]int{
	config.ModelGPT4o:     4000,
	config.ModelGPT4oMini: 4000,
	config.ModelGPT5:      4000,
	config.ModelGPT5Mini:  4000,
	config.ModelGPT5Nano:  4000,
}

const (
	defaultInputLimit  = 8000 // fallback conservador
	defaultOutputLimit = 4000

	// Azure Foundry y Gemini tienen ventanas de contexto generosas:
	// se permite hasta ~25K tokens de entrada.
	generousCharBudget = 100_000

	// Se reservan ~400 tokens para el prompt de sistema y el armado del
	// mensaje, con un piso de 500 tokens.
	promptOverheadTokens = 400
	minInputTokens       = 500

	// 1 token ~ 4 caracteres
	charsPerToken = 4
)

const truncationNotice = "\n\n... [truncated to fit token limit]"

// MaxOutputTokens retorna el menor entre el MAX_TOKENS configurado y el tope
// del modelo. Azure y Gemini usan los límites completos del modelo.
func MaxOutputTokens(cfg *config.Config) int {
	if cfg.Provider == config.ProviderAzure || cfg.Provider == config.ProviderGemini {
		return cfg.MaxTokens
	}
	modelCap, ok := modelOutputLimits[cfg.Model]
	if !ok {
		modelCap = defaultOutputLimit
	}
	if cfg.MaxTokens < modelCap {
		return cfg.MaxTokens
	}
	return modelCap
}

// InputCharBudget calcula el presupuesto de caracteres del mensaje de usuario
// según el proveedor y el modelo configurados.
func InputCharBudget(cfg *config.Config) int {
	if cfg.Provider == config.ProviderAzure || cfg.Provider == config.ProviderGemini {
		return generousCharBudget
	}
	inputLimit, ok := modelInputLimits[cfg.Model]
	if !ok {
		inputLimit = defaultInputLimit
	}
	available := inputLimit - promptOverheadTokens
	if available < minInputTokens {
		available = minInputTokens
	}
	return available * charsPerToken
}

// Truncate corta el texto al presupuesto dado y agrega el aviso de recorte.
// Con presupuesto no positivo solo queda el aviso. El corte retrocede hasta
// un límite de runa para no partir un carácter multibyte del diff.
func Truncate(text string, budget int) string {
	if budget <= 0 {
		return "... [truncated to fit token limit]"
	}
	if len(text) <= budget {
		return text
	}
	cut := budget
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut] + truncationNotice
}
