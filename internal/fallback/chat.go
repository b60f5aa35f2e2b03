package fallback

import (
	"strings"

	"github.com/Ab-xo/content-intelligence/internal/types"
)

// intent is one reply bucket, checked in priority order. Words match whole
// tokens only, so short triggers like "hi" never fire inside "this"; phrases
// match as substrings and may be fragments like "moderat".
type intent struct {
	words   []string
	phrases []string
	reply   string
}

// intentTable is the priority-ordered intent matcher for the assistant chat
// fallback. More specific intents come first; the generic replies below catch
// everything else.
var intentTable = []intent{
	{
		words:   []string{"hi", "hello", "hey"},
		phrases: []string{"good morning", "good afternoon", "good evening"},
		reply:   "Hello! I'm the writing assistant. I can help with drafting paragraphs, checking grammar, suggesting topics, or answering questions about publishing your post.",
	},
	{
		phrases: []string{"register", "sign up", "signup", "create account", "new account"},
		reply:   "To register, open the Sign Up page, enter your name, email, and a password of at least 8 characters, then confirm via the email we send you. Let me know if the confirmation email doesn't arrive.",
	},
	{
		phrases: []string{"login", "log in", "sign in", "password", "can't access", "locked out"},
		reply:   "If you're having trouble logging in, first try resetting your password from the login page. If the reset email doesn't arrive within a few minutes, check your spam folder or contact support.",
	},
	{
		words:   []string{"post"},
		phrases: []string{"publish", "draft", "submit"},
		reply:   "To publish a post, finish your draft, pick a category, and hit Publish. Drafts are saved automatically, and published posts can still be edited afterwards.",
	},
	{
		phrases: []string{"format", "markdown", "bold", "italic", "heading", "image"},
		reply:   "The editor supports standard Markdown: **bold**, *italic*, # headings, and image embeds. Use the preview tab to see exactly how your post will render.",
	},
	{
		phrases: []string{"moderat", "flag", "violation", "blocked", "removed"},
		reply:   "Posts are automatically checked against our content guidelines before publishing. If your post was flagged, review the listed categories, edit the relevant passages, and resubmit.",
	},
	{
		phrases: []string{"comment", "reply", "notification"},
		reply:   "Readers can comment on published posts, and you'll get a notification for each new comment. You can manage notification preferences from your profile settings.",
	},
	{
		phrases: []string{"thank", "appreciate"},
		reply:   "You're welcome! Happy writing, and let me know if there's anything else I can help with.",
	},
	{
		words:   []string{"bye"},
		phrases: []string{"goodbye", "see you"},
		reply:   "Goodbye! Come back any time you need a hand with your writing.",
	},
}

// genericReplies is the rotating set used when no intent matches.
// The matcher must always return a non-empty reply.
var genericReplies = []string{
	"That's a good question. Could you tell me a bit more about what you're trying to do? I can help with writing, formatting, publishing, and account questions.",
	"I'm not sure I caught that, but I'm happy to help with drafting content, improving grammar, generating topic ideas, or navigating the platform.",
	"Let me try to help. You can ask me things like \"how do I publish a post\", \"suggest topics about science\", or \"check my grammar\".",
	"I can help with most writing and publishing tasks on the platform. What would you like to work on?",
}

// Chat produces an assistant reply from the intent table. The conversation
// context, when present, is only used to slightly specialize the generic path.
func Chat(message, context string) types.ChatResult {
	lower := strings.ToLower(message)
	tokens := tokenSet(lower)

	for _, in := range intentTable {
		if in.matches(lower, tokens) {
			return types.ChatResult{
				Success:  true,
				Reply:    in.reply,
				Provider: types.BuiltinProvider,
			}
		}
	}

	reply := pick(genericReplies)
	if strings.TrimSpace(context) != "" {
		reply += " (I've noted the context of your current draft.)"
	}

	return types.ChatResult{
		Success:  true,
		Reply:    reply,
		Provider: types.BuiltinProvider,
	}
}

func (in intent) matches(message string, tokens map[string]bool) bool {
	for _, w := range in.words {
		if tokens[w] {
			return true
		}
	}
	for _, p := range in.phrases {
		if strings.Contains(message, p) {
			return true
		}
	}
	return false
}

// tokenSet splits the message into punctuation-trimmed words.
func tokenSet(message string) map[string]bool {
	set := make(map[string]bool)
	for _, tok := range strings.Fields(message) {
		set[strings.Trim(tok, ".,;:!?\"'()[]")] = true
	}
	return set
}
