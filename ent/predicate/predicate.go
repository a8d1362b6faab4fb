// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// GameSession is the predicate function for gamesession builders.
type GameSession func(*sql.Selector)

// LLMRequest is the predicate function for llmrequest builders.
type LLMRequest func(*sql.Selector)

// QuestionCache is the predicate function for questioncache builders.
type QuestionCache func(*sql.Selector)

// Setting is the predicate function for setting builders.
type Setting func(*sql.Selector)

// TopicProgress is the predicate function for topicprogress builders.
type TopicProgress func(*sql.Selector)

// UserProgress is the predicate function for userprogress builders.
type UserProgress func(*sql.Selector)
