package dataquery

// Log prefixes
const (
	LogPrefixWriteQuery = "internal.dataquery.WriteQuery"
	LogPrefixSynthesize = "internal.dataquery.Synthesize"
)

// Query generation prompt. The schema is injected per request.
const (
	PromptWriteQuerySystem = `You are a SQL assistant for a medical clinic database (SQLite dialect). Based on the table schemas below, write one SQL query that answers the latest user question.

Schemas:
%s

Rules:
- Return only the SQL query, nothing else.
- Use only tables and columns that appear in the schemas.
- If the question cannot be answered from these schemas, respond with exactly: Not Available`

	PromptSynthesizeSystem = `You are a helpful assistant for a medical clinic. Answer the user's question based on the executed database query and its result. Be concise and respond in the same language the user writes in. Do not mention SQL or the database internals.`

	PromptSynthesizeUser = `Question: %s

SQL query:
%s

Query result:
%s`
)

// Generation parameters
const (
	WriteQueryTemperature = 0.0
	SynthesizeTemperature = 0.3
	DefaultHistoryWindow  = 10
)

// MessageCouldNotFind is returned for the turn when query execution failed.
const MessageCouldNotFind = "Sorry, I could not find the requested information in our records."

// Markdown fence markers around generated SQL.
const (
	sqlFenceOpen = "```sql"
	fenceClose   = "```"
)
