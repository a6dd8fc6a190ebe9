package config

import (
	"os"
	"strconv"
)

type (
	// Config contiene toda la configuración del reviewer, cargada desde
	// variables de entorno al inicio de la ejecución.
	Config struct {
		Provider Provider
		Model    Model

		// Credenciales por proveedor
		OpenAIAPIKey string
		GitHubToken  string
		GeminiAPIKey string

		AzureConfig AzureConfig

		// Límite de tokens de salida configurado por el usuario
		MaxTokens int

		// Endpoint OpenAI-compatible de GitHub Models
		GitHubModelsBaseURL string

		// Binario de ruff (se resuelve por PATH si no es absoluto)
		RuffBin string

		// Idioma de los mensajes de la CLI ("en", "es")
		Language string

		// Publicación opcional de la review como comentario del commit
		PublishReview bool
		PublishToken  string

		// Verbosidad del logging en stderr
		Verbose bool
		Debug   bool
	}

	AzureConfig struct {
		Endpoint   string
		APIKey     string
		APIVersion string
	}
)

const (
	defaultProvider            = ProviderAzure
	defaultModel               = ModelGPT5
	defaultMaxTokens           = 4096
	defaultAzureAPIVersion     = "2024-12-01-preview"
	defaultGitHubModelsBaseURL = "https://models.inference.ai.azure.com"
	defaultRuffBin             = "ruff"
	defaultLang                = "en"
)

// LoadFromEnv construye la configuración a partir del entorno.
// Los valores ausentes o inválidos caen en los defaults.
func LoadFromEnv() *Config {
	cfg := &Config{
		Provider:     Provider(getEnv("LLM_PROVIDER", string(defaultProvider))),
		Model:        Model(getEnv("REVIEWER_MODEL", string(defaultModel))),
		OpenAIAPIKey: os.Getenv("OPENAI_API_KEY"),
		GitHubToken:  os.Getenv("GITHUB_TOKEN"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		AzureConfig: AzureConfig{
			Endpoint:   os.Getenv("AZURE_ENDPOINT"),
			APIKey:     os.Getenv("AZURE_API_KEY"),
			APIVersion: getEnv("AZURE_API_VERSION", defaultAzureAPIVersion),
		},
		MaxTokens:           getEnvInt("MAX_TOKENS", defaultMaxTokens),
		GitHubModelsBaseURL: getEnv("GITHUB_MODELS_BASE_URL", defaultGitHubModelsBaseURL),
		RuffBin:             getEnv("RUFF_BIN", defaultRuffBin),
		Language:            getEnv("MATEREVIEW_LANG", defaultLang),
		PublishReview:       getEnvBool("MATEREVIEW_PUBLISH", false),
		Verbose:             getEnvBool("MATEREVIEW_VERBOSE", false),
		Debug:               getEnvBool("MATEREVIEW_DEBUG", false),
	}

	cfg.PublishToken = getEnv("MATEREVIEW_GITHUB_TOKEN", cfg.GitHubToken)

	return cfg
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

// MaskSecret oculta una credencial para mostrarla en la CLI.
func MaskSecret(secret string) string {
	if secret == "" {
		return "(not set)"
	}
	if len(secret) <= 8 {
		return "****"
	}
	return secret[:4] + "..." + secret[len(secret)-4:]
}
