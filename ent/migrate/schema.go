// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// GameSessionsColumns holds the columns for the "game_sessions" table.
	GameSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "level", Type: field.TypeString},
		{Name: "topic", Type: field.TypeString},
		{Name: "score", Type: field.TypeInt},
		{Name: "total_questions", Type: field.TypeInt},
		{Name: "accuracy", Type: field.TypeFloat64},
		{Name: "duration_secs", Type: field.TypeInt, Default: 0},
		{Name: "streak", Type: field.TypeInt, Default: 0},
		{Name: "questions_data", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "answers_data", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "completed_at", Type: field.TypeTime},
	}
	// GameSessionsTable holds the schema information for the "game_sessions" table.
	GameSessionsTable = &schema.Table{
		Name:       "game_sessions",
		Columns:    GameSessionsColumns,
		PrimaryKey: []*schema.Column{GameSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "gamesession_completed_at",
				Unique:  false,
				Columns: []*schema.Column{GameSessionsColumns[10]},
			},
			{
				Name:    "gamesession_level_topic",
				Unique:  false,
				Columns: []*schema.Column{GameSessionsColumns[1], GameSessionsColumns[2]},
			},
		},
	}
	// LlmRequestsColumns holds the columns for the "llm_requests" table.
	LlmRequestsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "request_id", Type: field.TypeString},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "request_body", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "response_body", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
	}
	// LlmRequestsTable holds the schema information for the "llm_requests" table.
	LlmRequestsTable = &schema.Table{
		Name:       "llm_requests",
		Columns:    LlmRequestsColumns,
		PrimaryKey: []*schema.Column{LlmRequestsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequest_created_at",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestsColumns[12]},
			},
			{
				Name:    "llmrequest_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestsColumns[4]},
			},
		},
	}
	// QuestionCachesColumns holds the columns for the "question_caches" table.
	QuestionCachesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "level", Type: field.TypeString},
		{Name: "topic", Type: field.TypeString},
		{Name: "question_data", Type: field.TypeString, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "expires_at", Type: field.TypeTime},
	}
	// QuestionCachesTable holds the schema information for the "question_caches" table.
	QuestionCachesTable = &schema.Table{
		Name:       "question_caches",
		Columns:    QuestionCachesColumns,
		PrimaryKey: []*schema.Column{QuestionCachesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "questioncache_level_topic",
				Unique:  true,
				Columns: []*schema.Column{QuestionCachesColumns[1], QuestionCachesColumns[2]},
			},
			{
				Name:    "questioncache_expires_at",
				Unique:  false,
				Columns: []*schema.Column{QuestionCachesColumns[5]},
			},
		},
	}
	// SettingsColumns holds the columns for the "settings" table.
	SettingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "key", Type: field.TypeString, Unique: true},
		{Name: "value", Type: field.TypeString, Size: 2147483647},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SettingsTable holds the schema information for the "settings" table.
	SettingsTable = &schema.Table{
		Name:       "settings",
		Columns:    SettingsColumns,
		PrimaryKey: []*schema.Column{SettingsColumns[0]},
	}
	// TopicProgressesColumns holds the columns for the "topic_progresses" table.
	TopicProgressesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "level", Type: field.TypeString},
		{Name: "topic", Type: field.TypeString},
		{Name: "best_score", Type: field.TypeInt, Default: 0},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "total_questions", Type: field.TypeInt, Default: 0},
		{Name: "correct_answers", Type: field.TypeInt, Default: 0},
		{Name: "last_attempt", Type: field.TypeTime, Nullable: true},
		{Name: "is_completed", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
	}
	// TopicProgressesTable holds the schema information for the "topic_progresses" table.
	TopicProgressesTable = &schema.Table{
		Name:       "topic_progresses",
		Columns:    TopicProgressesColumns,
		PrimaryKey: []*schema.Column{TopicProgressesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "topicprogress_level_topic",
				Unique:  true,
				Columns: []*schema.Column{TopicProgressesColumns[1], TopicProgressesColumns[2]},
			},
			{
				Name:    "topicprogress_level",
				Unique:  false,
				Columns: []*schema.Column{TopicProgressesColumns[1]},
			},
		},
	}
	// UserProgressesColumns holds the columns for the "user_progresses" table.
	UserProgressesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "current_level", Type: field.TypeString, Default: "IM1"},
		{Name: "unlocked_levels", Type: field.TypeJSON},
		{Name: "total_score", Type: field.TypeInt, Default: 0},
		{Name: "current_streak", Type: field.TypeInt, Default: 0},
		{Name: "best_streak", Type: field.TypeInt, Default: 0},
		{Name: "total_questions", Type: field.TypeInt, Default: 0},
		{Name: "correct_answers", Type: field.TypeInt, Default: 0},
		{Name: "last_played", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// UserProgressesTable holds the schema information for the "user_progresses" table.
	UserProgressesTable = &schema.Table{
		Name:       "user_progresses",
		Columns:    UserProgressesColumns,
		PrimaryKey: []*schema.Column{UserProgressesColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		GameSessionsTable,
		LlmRequestsTable,
		QuestionCachesTable,
		SettingsTable,
		TopicProgressesTable,
		UserProgressesTable,
	}
)

func init() {
}
