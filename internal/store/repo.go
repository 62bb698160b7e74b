package store

import (
	"context"
	"time"
)

// QueryOpts filters and paginates event queries.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// LLMRequestEventData is what the logging decorator records per call.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEventRecord is a stored LLM request.
type LLMEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsage aggregates calls grouped by purpose or model.
type LLMUsage struct {
	Purpose      string
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// TopicTally counts answers for one topic within a quiz.
type TopicTally struct {
	Topic     string
	Correct   int
	Attempted int
}

// QuizResultData describes a finished quiz.
type QuizResultData struct {
	Learner  string
	Goal     string
	QuizType string
	Correct  int
	Total    int
	Topics   []TopicTally
}

// QuizResultRecord is a stored quiz result.
type QuizResultRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	QuizResultData
}

// EventRepo appends and queries events.
type EventRepo interface {
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEventRecord, error)
	// GetLLMEvent returns nil when id does not exist.
	GetLLMEvent(ctx context.Context, id int) (*LLMEventRecord, error)
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error)
	LLMUsageByModel(ctx context.Context) ([]LLMUsage, error)

	AppendQuizResult(ctx context.Context, data QuizResultData) error
	// QueryQuizResults returns results oldest first.
	QueryQuizResults(ctx context.Context, opts QueryOpts) ([]QuizResultRecord, error)

	// Reset deletes every stored event.
	Reset(ctx context.Context) error
}
