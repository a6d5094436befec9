package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mealmaster/backend/internal/domain"
	"github.com/mealmaster/backend/internal/logger"
)

const systemPrompt = `You are MealMaster AI, a friendly and knowledgeable culinary assistant. You help users with:

1. **Meal Planning**: Suggest meals for the week based on dietary preferences, time constraints, and nutritional goals
2. **Recipe Ideas**: Recommend recipes based on available ingredients, cuisine preferences, or dietary restrictions
3. **Cooking Tips**: Provide cooking techniques, substitutions, and kitchen hacks
4. **Nutritional Guidance**: Offer general nutritional information about meals and ingredients
5. **Meal Prep Advice**: Help with batch cooking and meal preparation strategies

Your personality:
- Enthusiastic about food and cooking
- Practical and helpful
- Encouraging to beginners
- Knowledgeable but not preachy

Guidelines:
- Keep text responses concise (2-4 sentences max when suggesting recipes)
- The system will automatically show recipe cards below your message, so don't list specific recipes
- Instead, give a brief, friendly intro like "Here are some great options for you!" or "These should be perfect for a quick weeknight dinner!"
- Use emojis sparingly to add personality (🍳, 🥗, 🍝, etc.)
- If asked about medical/allergy advice, recommend consulting a healthcare professional
- For general cooking questions (not recipe requests), give helpful detailed answers`

// recipeKeywords mark a message as a recipe request.
var recipeKeywords = []string{
	"recipe", "recipes", "make", "cook", "dinner", "lunch", "breakfast",
	"meal", "meals", "dish", "dishes", "food", "eat", "eating", "hungry",
	"suggest", "suggestion", "idea", "ideas", "recommend", "what can i",
	"what should i", "give me", "show me", "find me", "healthy", "quick",
	"easy", "vegetarian", "vegan", "chicken", "beef", "pasta", "salad",
	"soup", "dessert", "snack", "protein", "low carb", "keto", "diet",
}

// fillerWords are stripped when extracting a search query from a message.
var fillerWords = map[string]bool{
	"can": true, "you": true, "please": true, "i": true, "me": true,
	"some": true, "a": true, "the": true, "for": true, "what": true,
	"give": true, "show": true, "find": true, "suggest": true,
	"recommend": true, "want": true, "need": true, "looking": true,
	"searching": true, "any": true, "good": true, "best": true,
	"make": true, "cook": true, "recipe": true, "recipes": true,
	"ideas": true, "idea": true, "should": true, "could": true,
	"would": true, "like": true, "love": true, "really": true,
	"something": true, "anything": true,
}

const (
	historyLimit        = 10
	recipeCardCount     = 6
	savedTitlesLimit    = 20
	savedTitlesInPrompt = 10
)

// AssistantService orchestrates the chat endpoint: an LLM call plus recipe
// cards from the cached recipe search.
type AssistantService struct {
	client  domain.AssistantClient
	recipes *RecipeService
	saved   domain.SavedRecipeStore
	log     *zap.SugaredLogger
}

// NewAssistantService creates the assistant service.
func NewAssistantService(client domain.AssistantClient, recipes *RecipeService, saved domain.SavedRecipeStore) *AssistantService {
	return &AssistantService{
		client:  client,
		recipes: recipes,
		saved:   saved,
		log:     logger.GetLogger("assistant"),
	}
}

// ShouldSearchRecipes reports whether a message is asking for recipes.
func ShouldSearchRecipes(message string) bool {
	lower := strings.ToLower(message)
	for _, keyword := range recipeKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

// ExtractSearchQuery reduces a chat message to a focused search query by
// dropping filler words and keeping the first four meaningful ones.
func ExtractSearchQuery(message string) string {
	words := strings.Fields(strings.ToLower(message))
	filtered := make([]string, 0, len(words))
	for _, w := range words {
		if fillerWords[w] || len(w) <= 2 {
			continue
		}
		filtered = append(filtered, w)
		if len(filtered) == 4 {
			break
		}
	}

	query := strings.Join(filtered, " ")
	if len(query) < 3 {
		// Truncate on rune boundaries, not bytes
		runes := []rune(message)
		if len(runes) > 50 {
			return string(runes[:50])
		}
		return message
	}
	return query
}

// Chat answers one assistant turn. When the message looks like a recipe
// request, cards from the cached search are attached; recipe search
// failures degrade to a text-only answer instead of failing the chat.
func (s *AssistantService) Chat(ctx context.Context, userID uint, req *domain.ChatRequest) (*domain.ChatResponse, error) {
	wantsRecipes := ShouldSearchRecipes(req.Message)

	history := req.ConversationHistory
	if len(history) > historyLimit {
		history = history[len(history)-historyLimit:]
	}
	messages := make([]domain.ChatMessage, 0, len(history)+1)
	messages = append(messages, history...)
	messages = append(messages, domain.ChatMessage{Role: "user", Content: req.Message})

	system := systemPrompt + s.savedRecipesContext(ctx, userID)

	var cards []domain.RecipeSummary
	if wantsRecipes {
		cards = s.searchCards(ctx, req.Message)
		if len(cards) > 0 {
			system += "\n\nNOTE: Recipe cards will be shown below your message automatically. Keep your response brief and friendly!"
		}
	}

	answer, err := s.client.Complete(ctx, system, messages)
	if err != nil {
		return nil, err
	}

	return &domain.ChatResponse{
		Response:       answer,
		Recipes:        cards,
		ConversationID: uuid.NewString(),
	}, nil
}

// savedRecipesContext appends the user's saved recipe titles to the prompt.
func (s *AssistantService) savedRecipesContext(ctx context.Context, userID uint) string {
	titles, err := s.saved.ListSavedRecipeTitles(ctx, userID, savedTitlesLimit)
	if err != nil || len(titles) == 0 {
		return ""
	}
	if len(titles) > savedTitlesInPrompt {
		titles = titles[:savedTitlesInPrompt]
	}
	return "\n\nThe user has these recipes saved: " + strings.Join(titles, ", ")
}

// searchCards fetches recipe cards through the cache orchestrator.
func (s *AssistantService) searchCards(ctx context.Context, message string) []domain.RecipeSummary {
	query := ExtractSearchQuery(message)
	resp, err := s.recipes.Search(ctx, query, recipeCardCount)
	if err != nil {
		s.log.Warnw("recipe card search failed", "query", query, "error", err)
		return nil
	}
	return resp.Results
}
