package gateway

import "time"

const (
	LogPrefixReply = "internal.chat.gateway.Reply"

	DefaultTemperature = 0.7
	DefaultMaxTokens   = 150
)

// Rate limiter sizing.
const (
	limiterCacheSize = 1000
	limiterTTL       = 5 * time.Minute
)

// Outcome labels for the LLM request counter.
const (
	outcomeOK          = "ok"
	outcomeError       = "error"
	outcomeRateLimited = "rate_limited"
)

const noTasksLine = "No tasks yet"

const systemPromptTemplate = `You are a friendly AI assistant for a todo app. Be conversational and helpful.

User's current tasks:
%s

When user wants to:
- Add a task: Be encouraging and confirm
- Delete a task: Confirm which one
- Update or rename a task: Confirm the new name
- View tasks: Summarize them nicely
- Chat casually: Respond naturally but remind them you can help with tasks

Be brief, friendly, and natural. Use emojis occasionally.`
