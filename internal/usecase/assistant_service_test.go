package usecase

import (
	"context"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mealmaster/backend/internal/domain"
)

// fakeAssistant records the last Complete call.
type fakeAssistant struct {
	answer     string
	err        error
	calls      int
	lastSystem string
	lastMsgs   []domain.ChatMessage
}

func (f *fakeAssistant) Complete(ctx context.Context, system string, messages []domain.ChatMessage) (string, error) {
	f.calls++
	f.lastSystem = system
	f.lastMsgs = messages
	if f.err != nil {
		return "", f.err
	}
	return f.answer, nil
}

func newAssistantFixture(t *testing.T, client domain.AssistantClient, provider *fakeProvider) (*AssistantService, *SavedRecipeService) {
	t.Helper()
	store := newCacheStore(t)
	recipes := NewRecipeService(store, provider, RecipeServiceConfig{})
	return NewAssistantService(client, recipes, store), NewSavedRecipeService(store)
}

func TestShouldSearchRecipes(t *testing.T) {
	tests := []struct {
		message string
		want    bool
	}{
		{"Give me some pasta recipes", true},
		{"What should I cook for dinner?", true},
		{"I'm hungry", true},
		{"Any quick vegetarian ideas?", true},
		{"How do I convert cups to grams?", false},
		{"Tell me about knife sharpening", false},
	}
	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			assert.Equal(t, tt.want, ShouldSearchRecipes(tt.message))
		})
	}
}

func TestExtractSearchQuery(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{"filler stripped", "Can you give me some pasta recipes please", "pasta"},
		{"keeps meaningful words", "quick healthy chicken dinner tonight", "quick healthy chicken dinner"},
		{"short words dropped", "I want to eat something good", "eat"},
		{"all filler falls back to message", "can you", "can you"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractSearchQuery(tt.message))
		})
	}
}

func TestExtractSearchQuery_LongFallbackTruncated(t *testing.T) {
	message := "eh eh eh eh eh eh eh eh eh eh eh eh eh eh eh eh eh eh eh eh eh eh eh eh eh"
	require.Greater(t, len(message), 50)

	query := ExtractSearchQuery(message)
	assert.Equal(t, message[:50], query)
}

func TestExtractSearchQuery_FallbackTruncatesOnRuneBoundary(t *testing.T) {
	// All words are filler or too short, so the raw message is the fallback;
	// its 50th rune sits past byte 50
	message := "i a " + strings.Repeat("é ", 30)
	require.Greater(t, len(message), 50)

	query := ExtractSearchQuery(message)
	assert.True(t, utf8.ValidString(query))
	assert.Equal(t, 50, utf8.RuneCountInString(query))
	assert.True(t, strings.HasPrefix(message, query))
}

func TestChat_RecipeRequestAttachesCards(t *testing.T) {
	client := &fakeAssistant{answer: "Here are some great options! 🍝"}
	provider := &fakeProvider{searchResult: makeSearchResult(10)}
	assistant, _ := newAssistantFixture(t, client, provider)

	resp, err := assistant.Chat(context.Background(), 1, &domain.ChatRequest{
		Message: "Give me some pasta recipes",
	})
	require.NoError(t, err)
	assert.Equal(t, "Here are some great options! 🍝", resp.Response)
	assert.Len(t, resp.Recipes, 6)
	assert.NotEmpty(t, resp.ConversationID)

	assert.Equal(t, "pasta", provider.lastQuery)
	assert.Contains(t, client.lastSystem, "Recipe cards will be shown")
}

func TestChat_GeneralQuestionSkipsSearch(t *testing.T) {
	client := &fakeAssistant{answer: "Hold the knife at fifteen degrees."}
	provider := &fakeProvider{searchResult: makeSearchResult(10)}
	assistant, _ := newAssistantFixture(t, client, provider)

	resp, err := assistant.Chat(context.Background(), 1, &domain.ChatRequest{
		Message: "Tell me about knife sharpening",
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Recipes)
	assert.Zero(t, provider.searchCalls)
}

func TestChat_SearchFailureDegradesToText(t *testing.T) {
	client := &fakeAssistant{answer: "Pasta is always a good idea!"}
	provider := &fakeProvider{searchErr: domain.ErrUpstreamUnavailable}
	assistant, _ := newAssistantFixture(t, client, provider)

	resp, err := assistant.Chat(context.Background(), 1, &domain.ChatRequest{
		Message: "Give me some pasta recipes",
	})
	require.NoError(t, err)
	assert.Equal(t, "Pasta is always a good idea!", resp.Response)
	assert.Empty(t, resp.Recipes)
}

func TestChat_HistoryTrimmedToLimit(t *testing.T) {
	client := &fakeAssistant{answer: "ok"}
	assistant, _ := newAssistantFixture(t, client, &fakeProvider{})

	history := make([]domain.ChatMessage, 0, 14)
	for i := 0; i < 14; i++ {
		role := "user"
		if i%2 == 1 {
			role = "assistant"
		}
		history = append(history, domain.ChatMessage{Role: role, Content: "turn"})
	}

	_, err := assistant.Chat(context.Background(), 1, &domain.ChatRequest{
		Message:             "Tell me about salt",
		ConversationHistory: history,
	})
	require.NoError(t, err)

	// 10 history turns plus the new user message
	require.Len(t, client.lastMsgs, 11)
	assert.Equal(t, "Tell me about salt", client.lastMsgs[10].Content)
}

func TestChat_SavedRecipesInSystemPrompt(t *testing.T) {
	client := &fakeAssistant{answer: "ok"}
	assistant, saved := newAssistantFixture(t, client, &fakeProvider{})
	ctx := context.Background()

	_, err := saved.Save(ctx, 1, &SaveRecipeRequest{ExternalID: 101, Title: "Pasta Carbonara"})
	require.NoError(t, err)
	_, err = saved.Save(ctx, 1, &SaveRecipeRequest{ExternalID: 102, Title: "Miso Soup"})
	require.NoError(t, err)

	_, err = assistant.Chat(ctx, 1, &domain.ChatRequest{Message: "Tell me about salt"})
	require.NoError(t, err)

	assert.Contains(t, client.lastSystem, "The user has these recipes saved:")
	assert.Contains(t, client.lastSystem, "Pasta Carbonara")
	assert.Contains(t, client.lastSystem, "Miso Soup")

	// A user with no saves gets the plain prompt
	_, err = assistant.Chat(ctx, 2, &domain.ChatRequest{Message: "Tell me about salt"})
	require.NoError(t, err)
	assert.False(t, strings.Contains(client.lastSystem, "recipes saved"))
}

func TestChat_ClientErrorPropagates(t *testing.T) {
	client := &fakeAssistant{err: domain.ErrAssistantTimeout}
	assistant, _ := newAssistantFixture(t, client, &fakeProvider{})

	_, err := assistant.Chat(context.Background(), 1, &domain.ChatRequest{Message: "Tell me about salt"})
	assert.ErrorIs(t, err, domain.ErrAssistantTimeout)
}
