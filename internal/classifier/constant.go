package classifier

// Log prefixes
const (
	LogPrefixClassify = "internal.classifier.Classify"
)

// Classification prompt. The line with the question is the only variable
// slot.
const (
	PromptClassifySystem = `Determine the category of the latest user question. The question belongs to one of these two categories:

1. **query_related**: The user wants to retrieve or analyze data from the clinic database.
    - Examples:
        - How many patients visited the clinic last month?
        - Show me the appointment schedule for Dr. Smith.
        - List all available doctors next Monday.

2. **medical_related**: The user is asking for medical advice or information.
    - Examples:
        - What are the symptoms of diabetes?
        - I have a headache. What should I do?
        - How can I lower my blood pressure?

Respond with exactly one of the following: 'query_related' or 'medical_related'. No explanation.`
)

// Classifier configuration
const (
	ClassifyTemperature   = 0.1
	DefaultHistoryWindow  = 10
	ClassifyFallbackLabel = CategoryMedical
)

// Fallback reasons
const (
	ReasonUnknownLabel  = "model returned a label outside the enumeration"
	ReasonEmptyResponse = "model returned an empty response"
)
