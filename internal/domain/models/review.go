package models

type (
	// ReviewRequest es la petición de chat-completion que recibe un proveedor:
	// un prompt de sistema, un mensaje de usuario y el tope de tokens de salida.
	ReviewRequest struct {
		SystemPrompt    string
		UserPrompt      string
		MaxOutputTokens int
	}

	// Review es la respuesta cruda del proveedor.
	Review struct {
		Content    string
		TokensUsed int
	}
)
