// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/adaptive-learning/studybuddy/ent/llmrequestevent"
	"github.com/adaptive-learning/studybuddy/ent/quizresultevent"
	"github.com/adaptive-learning/studybuddy/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	quizresulteventMixin := schema.QuizResultEvent{}.Mixin()
	quizresulteventMixinFields0 := quizresulteventMixin[0].Fields()
	_ = quizresulteventMixinFields0
	quizresulteventFields := schema.QuizResultEvent{}.Fields()
	_ = quizresulteventFields
	// quizresulteventDescTimestamp is the schema descriptor for timestamp field.
	quizresulteventDescTimestamp := quizresulteventMixinFields0[1].Descriptor()
	// quizresultevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	quizresultevent.DefaultTimestamp = quizresulteventDescTimestamp.Default.(func() time.Time)
	// quizresulteventDescLearner is the schema descriptor for learner field.
	quizresulteventDescLearner := quizresulteventFields[0].Descriptor()
	// quizresultevent.DefaultLearner holds the default value on creation for the learner field.
	quizresultevent.DefaultLearner = quizresulteventDescLearner.Default.(string)
	// quizresulteventDescGoal is the schema descriptor for goal field.
	quizresulteventDescGoal := quizresulteventFields[1].Descriptor()
	// quizresultevent.GoalValidator is a validator for the "goal" field. It is called by the builders before save.
	quizresultevent.GoalValidator = quizresulteventDescGoal.Validators[0].(func(string) error)
	// quizresulteventDescQuizType is the schema descriptor for quiz_type field.
	quizresulteventDescQuizType := quizresulteventFields[2].Descriptor()
	// quizresultevent.QuizTypeValidator is a validator for the "quiz_type" field. It is called by the builders before save.
	quizresultevent.QuizTypeValidator = quizresulteventDescQuizType.Validators[0].(func(string) error)
	// quizresulteventDescCorrect is the schema descriptor for correct field.
	quizresulteventDescCorrect := quizresulteventFields[3].Descriptor()
	// quizresultevent.CorrectValidator is a validator for the "correct" field. It is called by the builders before save.
	quizresultevent.CorrectValidator = quizresulteventDescCorrect.Validators[0].(func(int) error)
	// quizresulteventDescTotal is the schema descriptor for total field.
	quizresulteventDescTotal := quizresulteventFields[4].Descriptor()
	// quizresultevent.TotalValidator is a validator for the "total" field. It is called by the builders before save.
	quizresultevent.TotalValidator = quizresulteventDescTotal.Validators[0].(func(int) error)
}
