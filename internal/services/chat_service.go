package services

import (
	"context"
	"log"
	"strings"

	"github.com/ngofreelancing/platform-api/internal/dtos"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
)

// systemPreamble pins the assistant to platform topics before the
// conversation is forwarded to the model.
const systemPreamble = `You are the support assistant for NGO Freelancing, a platform connecting social workers with NGOs. Answer briefly and only about using the platform: creating an account, browsing and applying to opportunities, posting jobs as an organization, and reviewing applicants. If a question is unrelated to the platform, point the user to contact@ngofreelancing.org.`

const chatMaxTokens = 200

type cannedResponse struct {
	keywords []string
	reply    string
}

// cannedResponses is the scripted FAQ path, distilled from the support
// page. Ordered: the first keyword hit wins.
var cannedResponses = []cannedResponse{
	{
		keywords: []string{"hello", "hey", "good morning", "good evening"},
		reply:    "Hi there! I'm your NGO Freelancing assistant. How can I help you today?",
	},
	{
		keywords: []string{"apply", "application"},
		reply:    "After creating an account as a social worker, you can browse available opportunities, view details of positions that interest you, and submit your application directly through the platform.",
	},
	{
		keywords: []string{"post a job", "post job", "posting", "hire"},
		reply:    "After registering and logging in as an organization, navigate to your dashboard and select 'Post a New Job'. Fill in the job details including role, responsibilities and requirements.",
	},
	{
		keywords: []string{"account", "register", "sign up", "signup"},
		reply:    "You can create an account by clicking on 'I'm a Socialworker' or 'Hire Socialworker' on the homepage, then selecting 'Register' on the login page.",
	},
	{
		keywords: []string{"remote"},
		reply:    "Yes, many opportunities on our platform offer remote work options. You can filter jobs by location preference including remote-only positions.",
	},
	{
		keywords: []string{"fee", "cost", "price", "charge"},
		reply:    "Our platform is currently free for social workers. Organizations may have subscription options that provide additional features.",
	},
	{
		keywords: []string{"contact", "support", "help"},
		reply:    "Please email us at contact@ngofreelancing.org or call +91 9599912493. Our support team is available Monday to Friday, 9 AM to 6 PM IST.",
	},
}

const defaultReply = "I'm sorry, I don't have an answer for that. Please email contact@ngofreelancing.org or call +91 9599912493 and our support team will help you out."

// ChatService answers support questions. With a configured Gemini client it
// forwards the conversation to the model and falls back to the scripted FAQ
// path on any transport or quota error; without one it answers from the
// scripted path directly.
type ChatService struct {
	Client llms.Model
}

// NewChatService initializes the Gemini client when an API key is set. A
// missing key or failed client setup is not fatal: the assistant degrades to
// keyword-only mode.
func NewChatService(apiKey string) *ChatService {
	if apiKey == "" {
		log.Println("GEMINI_API_KEY not set; chat assistant running in keyword-only mode")
		return &ChatService{}
	}

	llm, err := googleai.New(context.Background(),
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel("gemini-1.5-flash"),
	)
	if err != nil {
		log.Println("Failed to create Gemini client, chat assistant running in keyword-only mode:", err)
		return &ChatService{}
	}
	return &ChatService{Client: llm}
}

// KeywordReply answers from the scripted FAQ table: lowercased substring
// match, first hit wins, default reply when nothing matches.
func KeywordReply(input string) string {
	lowered := strings.ToLower(input)
	for _, canned := range cannedResponses {
		for _, keyword := range canned.keywords {
			if strings.Contains(lowered, keyword) {
				return canned.reply
			}
		}
	}
	return defaultReply
}

// Reply answers the conversation. The last user message drives the keyword
// path; Fallback is set only when a configured model call failed.
func (s *ChatService) Reply(ctx context.Context, messages []dtos.ChatMessage) *dtos.ChatResponse {
	if len(messages) == 0 {
		return &dtos.ChatResponse{Reply: defaultReply}
	}
	last := messages[len(messages)-1].Content

	if s.Client == nil {
		return &dtos.ChatResponse{Reply: KeywordReply(last)}
	}

	content := make([]llms.MessageContent, 0, len(messages)+1)
	content = append(content, llms.TextParts(llms.ChatMessageTypeSystem, systemPreamble))
	for _, m := range messages {
		role := llms.ChatMessageTypeHuman
		if m.Role == "model" || m.Role == "assistant" {
			role = llms.ChatMessageTypeAI
		}
		content = append(content, llms.TextParts(role, m.Content))
	}

	resp, err := s.Client.GenerateContent(ctx, content, llms.WithMaxTokens(chatMaxTokens))
	if err != nil || len(resp.Choices) == 0 {
		if err != nil {
			log.Println("Gemini call failed, using canned response:", err)
		}
		return &dtos.ChatResponse{Reply: KeywordReply(last), Fallback: true}
	}
	return &dtos.ChatResponse{Reply: resp.Choices[0].Content}
}
