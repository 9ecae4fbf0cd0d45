package deepseek

const (
	// DefaultModel is the default DeepSeek chat model
	DefaultModel = "deepseek-chat"

	// DefaultBaseURL is the default DeepSeek API endpoint
	DefaultBaseURL = "https://api.deepseek.com"
)
