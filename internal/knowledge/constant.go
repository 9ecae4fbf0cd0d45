package knowledge

// Log prefixes
const (
	LogPrefixBuild  = "internal.knowledge.Build"
	LogPrefixSearch = "internal.knowledge.Search"
)

// Required CSV columns of the Q&A corpus.
const (
	ColumnQType    = "q_type"
	ColumnQuestion = "question"
	ColumnAnswer   = "answer"
)

// Chunking parameters for long documents.
const (
	ChunkSize    = 3000
	ChunkOverlap = 100
)

// Vector store defaults
const (
	DefaultCollectionName = "clinic_knowledge"
	DefaultVectorSize     = 1024 // voyage-3
	DefaultTopK           = 4
	DistanceMetric        = "Cosine"
	EmbedBatchSize        = 64
)

// Payload keys stored alongside each vector.
const (
	PayloadKeyText  = "text"
	PayloadKeyQType = "q_type"
)
