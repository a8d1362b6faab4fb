// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/minhtc/opicly/ent/gamesession"
	"github.com/minhtc/opicly/ent/llmrequest"
	"github.com/minhtc/opicly/ent/questioncache"
	"github.com/minhtc/opicly/ent/schema"
	"github.com/minhtc/opicly/ent/setting"
	"github.com/minhtc/opicly/ent/topicprogress"
	"github.com/minhtc/opicly/ent/userprogress"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	gamesessionFields := schema.GameSession{}.Fields()
	_ = gamesessionFields
	// gamesessionDescLevel is the schema descriptor for level field.
	gamesessionDescLevel := gamesessionFields[0].Descriptor()
	// gamesession.LevelValidator is a validator for the "level" field. It is called by the builders before save.
	gamesession.LevelValidator = gamesessionDescLevel.Validators[0].(func(string) error)
	// gamesessionDescTopic is the schema descriptor for topic field.
	gamesessionDescTopic := gamesessionFields[1].Descriptor()
	// gamesession.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	gamesession.TopicValidator = gamesessionDescTopic.Validators[0].(func(string) error)
	// gamesessionDescDurationSecs is the schema descriptor for duration_secs field.
	gamesessionDescDurationSecs := gamesessionFields[5].Descriptor()
	// gamesession.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	gamesession.DefaultDurationSecs = gamesessionDescDurationSecs.Default.(int)
	// gamesessionDescStreak is the schema descriptor for streak field.
	gamesessionDescStreak := gamesessionFields[6].Descriptor()
	// gamesession.DefaultStreak holds the default value on creation for the streak field.
	gamesession.DefaultStreak = gamesessionDescStreak.Default.(int)
	// gamesessionDescCompletedAt is the schema descriptor for completed_at field.
	gamesessionDescCompletedAt := gamesessionFields[9].Descriptor()
	// gamesession.DefaultCompletedAt holds the default value on creation for the completed_at field.
	gamesession.DefaultCompletedAt = gamesessionDescCompletedAt.Default.(func() time.Time)
	llmrequestFields := schema.LLMRequest{}.Fields()
	_ = llmrequestFields
	// llmrequestDescRequestID is the schema descriptor for request_id field.
	llmrequestDescRequestID := llmrequestFields[0].Descriptor()
	// llmrequest.RequestIDValidator is a validator for the "request_id" field. It is called by the builders before save.
	llmrequest.RequestIDValidator = llmrequestDescRequestID.Validators[0].(func(string) error)
	// llmrequestDescProvider is the schema descriptor for provider field.
	llmrequestDescProvider := llmrequestFields[1].Descriptor()
	// llmrequest.ProviderValidator is a validator for the "provider" field. It is called by the builders before save.
	llmrequest.ProviderValidator = llmrequestDescProvider.Validators[0].(func(string) error)
	// llmrequestDescInputTokens is the schema descriptor for input_tokens field.
	llmrequestDescInputTokens := llmrequestFields[4].Descriptor()
	// llmrequest.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequest.DefaultInputTokens = llmrequestDescInputTokens.Default.(int)
	// llmrequestDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequestDescOutputTokens := llmrequestFields[5].Descriptor()
	// llmrequest.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequest.DefaultOutputTokens = llmrequestDescOutputTokens.Default.(int)
	// llmrequestDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequestDescLatencyMs := llmrequestFields[6].Descriptor()
	// llmrequest.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequest.DefaultLatencyMs = llmrequestDescLatencyMs.Default.(int64)
	// llmrequestDescCreatedAt is the schema descriptor for created_at field.
	llmrequestDescCreatedAt := llmrequestFields[11].Descriptor()
	// llmrequest.DefaultCreatedAt holds the default value on creation for the created_at field.
	llmrequest.DefaultCreatedAt = llmrequestDescCreatedAt.Default.(func() time.Time)
	questioncacheFields := schema.QuestionCache{}.Fields()
	_ = questioncacheFields
	// questioncacheDescLevel is the schema descriptor for level field.
	questioncacheDescLevel := questioncacheFields[0].Descriptor()
	// questioncache.LevelValidator is a validator for the "level" field. It is called by the builders before save.
	questioncache.LevelValidator = questioncacheDescLevel.Validators[0].(func(string) error)
	// questioncacheDescTopic is the schema descriptor for topic field.
	questioncacheDescTopic := questioncacheFields[1].Descriptor()
	// questioncache.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	questioncache.TopicValidator = questioncacheDescTopic.Validators[0].(func(string) error)
	// questioncacheDescQuestionData is the schema descriptor for question_data field.
	questioncacheDescQuestionData := questioncacheFields[2].Descriptor()
	// questioncache.QuestionDataValidator is a validator for the "question_data" field. It is called by the builders before save.
	questioncache.QuestionDataValidator = questioncacheDescQuestionData.Validators[0].(func(string) error)
	// questioncacheDescCreatedAt is the schema descriptor for created_at field.
	questioncacheDescCreatedAt := questioncacheFields[3].Descriptor()
	// questioncache.DefaultCreatedAt holds the default value on creation for the created_at field.
	questioncache.DefaultCreatedAt = questioncacheDescCreatedAt.Default.(func() time.Time)
	settingFields := schema.Setting{}.Fields()
	_ = settingFields
	// settingDescKey is the schema descriptor for key field.
	settingDescKey := settingFields[0].Descriptor()
	// setting.KeyValidator is a validator for the "key" field. It is called by the builders before save.
	setting.KeyValidator = settingDescKey.Validators[0].(func(string) error)
	// settingDescUpdatedAt is the schema descriptor for updated_at field.
	settingDescUpdatedAt := settingFields[2].Descriptor()
	// setting.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	setting.DefaultUpdatedAt = settingDescUpdatedAt.Default.(func() time.Time)
	// setting.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	setting.UpdateDefaultUpdatedAt = settingDescUpdatedAt.UpdateDefault.(func() time.Time)
	topicprogressFields := schema.TopicProgress{}.Fields()
	_ = topicprogressFields
	// topicprogressDescLevel is the schema descriptor for level field.
	topicprogressDescLevel := topicprogressFields[0].Descriptor()
	// topicprogress.LevelValidator is a validator for the "level" field. It is called by the builders before save.
	topicprogress.LevelValidator = topicprogressDescLevel.Validators[0].(func(string) error)
	// topicprogressDescTopic is the schema descriptor for topic field.
	topicprogressDescTopic := topicprogressFields[1].Descriptor()
	// topicprogress.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	topicprogress.TopicValidator = topicprogressDescTopic.Validators[0].(func(string) error)
	// topicprogressDescBestScore is the schema descriptor for best_score field.
	topicprogressDescBestScore := topicprogressFields[2].Descriptor()
	// topicprogress.DefaultBestScore holds the default value on creation for the best_score field.
	topicprogress.DefaultBestScore = topicprogressDescBestScore.Default.(int)
	// topicprogressDescAttempts is the schema descriptor for attempts field.
	topicprogressDescAttempts := topicprogressFields[3].Descriptor()
	// topicprogress.DefaultAttempts holds the default value on creation for the attempts field.
	topicprogress.DefaultAttempts = topicprogressDescAttempts.Default.(int)
	// topicprogressDescTotalQuestions is the schema descriptor for total_questions field.
	topicprogressDescTotalQuestions := topicprogressFields[4].Descriptor()
	// topicprogress.DefaultTotalQuestions holds the default value on creation for the total_questions field.
	topicprogress.DefaultTotalQuestions = topicprogressDescTotalQuestions.Default.(int)
	// topicprogressDescCorrectAnswers is the schema descriptor for correct_answers field.
	topicprogressDescCorrectAnswers := topicprogressFields[5].Descriptor()
	// topicprogress.DefaultCorrectAnswers holds the default value on creation for the correct_answers field.
	topicprogress.DefaultCorrectAnswers = topicprogressDescCorrectAnswers.Default.(int)
	// topicprogressDescIsCompleted is the schema descriptor for is_completed field.
	topicprogressDescIsCompleted := topicprogressFields[7].Descriptor()
	// topicprogress.DefaultIsCompleted holds the default value on creation for the is_completed field.
	topicprogress.DefaultIsCompleted = topicprogressDescIsCompleted.Default.(bool)
	// topicprogressDescCreatedAt is the schema descriptor for created_at field.
	topicprogressDescCreatedAt := topicprogressFields[8].Descriptor()
	// topicprogress.DefaultCreatedAt holds the default value on creation for the created_at field.
	topicprogress.DefaultCreatedAt = topicprogressDescCreatedAt.Default.(func() time.Time)
	userprogressFields := schema.UserProgress{}.Fields()
	_ = userprogressFields
	// userprogressDescCurrentLevel is the schema descriptor for current_level field.
	userprogressDescCurrentLevel := userprogressFields[0].Descriptor()
	// userprogress.DefaultCurrentLevel holds the default value on creation for the current_level field.
	userprogress.DefaultCurrentLevel = userprogressDescCurrentLevel.Default.(string)
	// userprogressDescTotalScore is the schema descriptor for total_score field.
	userprogressDescTotalScore := userprogressFields[2].Descriptor()
	// userprogress.DefaultTotalScore holds the default value on creation for the total_score field.
	userprogress.DefaultTotalScore = userprogressDescTotalScore.Default.(int)
	// userprogressDescCurrentStreak is the schema descriptor for current_streak field.
	userprogressDescCurrentStreak := userprogressFields[3].Descriptor()
	// userprogress.DefaultCurrentStreak holds the default value on creation for the current_streak field.
	userprogress.DefaultCurrentStreak = userprogressDescCurrentStreak.Default.(int)
	// userprogressDescBestStreak is the schema descriptor for best_streak field.
	userprogressDescBestStreak := userprogressFields[4].Descriptor()
	// userprogress.DefaultBestStreak holds the default value on creation for the best_streak field.
	userprogress.DefaultBestStreak = userprogressDescBestStreak.Default.(int)
	// userprogressDescTotalQuestions is the schema descriptor for total_questions field.
	userprogressDescTotalQuestions := userprogressFields[5].Descriptor()
	// userprogress.DefaultTotalQuestions holds the default value on creation for the total_questions field.
	userprogress.DefaultTotalQuestions = userprogressDescTotalQuestions.Default.(int)
	// userprogressDescCorrectAnswers is the schema descriptor for correct_answers field.
	userprogressDescCorrectAnswers := userprogressFields[6].Descriptor()
	// userprogress.DefaultCorrectAnswers holds the default value on creation for the correct_answers field.
	userprogress.DefaultCorrectAnswers = userprogressDescCorrectAnswers.Default.(int)
	// userprogressDescCreatedAt is the schema descriptor for created_at field.
	userprogressDescCreatedAt := userprogressFields[8].Descriptor()
	// userprogress.DefaultCreatedAt holds the default value on creation for the created_at field.
	userprogress.DefaultCreatedAt = userprogressDescCreatedAt.Default.(func() time.Time)
}
