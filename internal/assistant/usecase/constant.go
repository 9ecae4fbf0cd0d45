package usecase

// Log prefixes
const (
	LogPrefixAsk = "assistant.usecase.Ask"
)

// DefaultThreadID groups requests that carry no thread identifier into one
// shared conversation.
const DefaultThreadID = "default"

// MessageApology is the reply for any internal failure. The user always
// receives an answer, never an error payload.
const MessageApology = "Sorry, something went wrong while processing your request. Please try again."
