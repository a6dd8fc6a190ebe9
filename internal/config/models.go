package config

type Provider string

const (
	ProviderAzure  Provider = "azure"
	ProviderGitHub Provider = "github"
	ProviderOpenAI Provider = "openai"
	ProviderGemini Provider = "gemini"
)

type Model string

const (
	ModelGPT5          Model = "gpt-5"
	ModelGPT5Mini      Model = "gpt-5-mini"
	ModelGPT5Nano      Model = "gpt-5-nano"
	ModelGPT4o         Model = "gpt-4o"
	ModelGPT4oMini     Model = "gpt-4o-mini"
	ModelGemini25Pro   Model = "gemini-2.5-pro"
	ModelGemini25Flash Model = "gemini-2.5-flash"
)

func SupportedProviders() []Provider {
	return []Provider{
		ProviderAzure,
		ProviderGitHub,
		ProviderOpenAI,
		ProviderGemini,
	}
}

func IsSupportedProvider(p Provider) bool {
	for _, supported := range SupportedProviders() {
		if p == supported {
			return true
		}
	}
	return false
}
