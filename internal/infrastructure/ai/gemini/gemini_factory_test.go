package gemini

import (
	"context"
	"testing"

	"github.com/Tomas-vilte/MateReview/internal/config"
	"github.com/Tomas-vilte/MateReview/internal/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeminiFactory_CreateReviewer(t *testing.T) {
	trans, err := i18n.NewTranslations("en", "../../../../locales")
	require.NoError(t, err)

	t.Run("should fail without an api key and without touching the network", func(t *testing.T) {
		factory := NewGeminiFactory()

		_, err := factory.CreateReviewer(context.Background(), &config.Config{}, trans)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "GEMINI_API_KEY")
	})

	t.Run("should create the reviewer with a valid key", func(t *testing.T) {
		factory := NewGeminiFactory()
		cfg := &config.Config{GeminiAPIKey: "test-key", Model: config.ModelGemini25Flash}

		reviewer, err := factory.CreateReviewer(context.Background(), cfg, trans)

		require.NoError(t, err)
		assert.Equal(t, "gemini", reviewer.Name())
	})
}
