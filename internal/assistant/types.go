package assistant

// AskInput carries one user question.
type AskInput struct {
	Question string
}

// AskOutput carries the assistant's reply.
type AskOutput struct {
	Response string
}
