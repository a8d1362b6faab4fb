// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/minhtc/opicly/ent/gamesession"
	"github.com/minhtc/opicly/ent/llmrequest"
	"github.com/minhtc/opicly/ent/predicate"
	"github.com/minhtc/opicly/ent/questioncache"
	"github.com/minhtc/opicly/ent/setting"
	"github.com/minhtc/opicly/ent/topicprogress"
	"github.com/minhtc/opicly/ent/userprogress"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeGameSession   = "GameSession"
	TypeLLMRequest    = "LLMRequest"
	TypeQuestionCache = "QuestionCache"
	TypeSetting       = "Setting"
	TypeTopicProgress = "TopicProgress"
	TypeUserProgress  = "UserProgress"
)

// GameSessionMutation represents an operation that mutates the GameSession nodes in the graph.
type GameSessionMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	level              *string
	topic              *string
	score              *int
	addscore           *int
	total_questions    *int
	addtotal_questions *int
	accuracy           *float64
	addaccuracy        *float64
	duration_secs      *int
	addduration_secs   *int
	streak             *int
	addstreak          *int
	questions_data     *string
	answers_data       *string
	completed_at       *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*GameSession, error)
	predicates         []predicate.GameSession
}

var _ ent.Mutation = (*GameSessionMutation)(nil)

// gamesessionOption allows management of the mutation configuration using functional options.
type gamesessionOption func(*GameSessionMutation)

// newGameSessionMutation creates new mutation for the GameSession entity.
func newGameSessionMutation(c config, op Op, opts ...gamesessionOption) *GameSessionMutation {
	m := &GameSessionMutation{
		config:        c,
		op:            op,
		typ:           TypeGameSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withGameSessionID sets the ID field of the mutation.
func withGameSessionID(id int) gamesessionOption {
	return func(m *GameSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *GameSession
		)
		m.oldValue = func(ctx context.Context) (*GameSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().GameSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withGameSession sets the old GameSession of the mutation.
func withGameSession(node *GameSession) gamesessionOption {
	return func(m *GameSessionMutation) {
		m.oldValue = func(context.Context) (*GameSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m GameSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m GameSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *GameSessionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *GameSessionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().GameSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetLevel sets the "level" field.
func (m *GameSessionMutation) SetLevel(s string) {
	m.level = &s
}

// Level returns the value of the "level" field in the mutation.
func (m *GameSessionMutation) Level() (r string, exists bool) {
	v := m.level
	if v == nil {
		return
	}
	return *v, true
}

// OldLevel returns the old "level" field's value of the GameSession entity.
// If the GameSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GameSessionMutation) OldLevel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLevel: %w", err)
	}
	return oldValue.Level, nil
}

// ResetLevel resets all changes to the "level" field.
func (m *GameSessionMutation) ResetLevel() {
	m.level = nil
}

// SetTopic sets the "topic" field.
func (m *GameSessionMutation) SetTopic(s string) {
	m.topic = &s
}

// Topic returns the value of the "topic" field in the mutation.
func (m *GameSessionMutation) Topic() (r string, exists bool) {
	v := m.topic
	if v == nil {
		return
	}
	return *v, true
}

// OldTopic returns the old "topic" field's value of the GameSession entity.
// If the GameSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GameSessionMutation) OldTopic(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopic is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopic requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopic: %w", err)
	}
	return oldValue.Topic, nil
}

// ResetTopic resets all changes to the "topic" field.
func (m *GameSessionMutation) ResetTopic() {
	m.topic = nil
}

// SetScore sets the "score" field.
func (m *GameSessionMutation) SetScore(i int) {
	m.score = &i
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *GameSessionMutation) Score() (r int, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the GameSession entity.
// If the GameSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GameSessionMutation) OldScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds i to the "score" field.
func (m *GameSessionMutation) AddScore(i int) {
	if m.addscore != nil {
		*m.addscore += i
	} else {
		m.addscore = &i
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *GameSessionMutation) AddedScore() (r int, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ResetScore resets all changes to the "score" field.
func (m *GameSessionMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
}

// SetTotalQuestions sets the "total_questions" field.
func (m *GameSessionMutation) SetTotalQuestions(i int) {
	m.total_questions = &i
	m.addtotal_questions = nil
}

// TotalQuestions returns the value of the "total_questions" field in the mutation.
func (m *GameSessionMutation) TotalQuestions() (r int, exists bool) {
	v := m.total_questions
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalQuestions returns the old "total_questions" field's value of the GameSession entity.
// If the GameSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GameSessionMutation) OldTotalQuestions(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalQuestions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalQuestions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalQuestions: %w", err)
	}
	return oldValue.TotalQuestions, nil
}

// AddTotalQuestions adds i to the "total_questions" field.
func (m *GameSessionMutation) AddTotalQuestions(i int) {
	if m.addtotal_questions != nil {
		*m.addtotal_questions += i
	} else {
		m.addtotal_questions = &i
	}
}

// AddedTotalQuestions returns the value that was added to the "total_questions" field in this mutation.
func (m *GameSessionMutation) AddedTotalQuestions() (r int, exists bool) {
	v := m.addtotal_questions
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalQuestions resets all changes to the "total_questions" field.
func (m *GameSessionMutation) ResetTotalQuestions() {
	m.total_questions = nil
	m.addtotal_questions = nil
}

// SetAccuracy sets the "accuracy" field.
func (m *GameSessionMutation) SetAccuracy(f float64) {
	m.accuracy = &f
	m.addaccuracy = nil
}

// Accuracy returns the value of the "accuracy" field in the mutation.
func (m *GameSessionMutation) Accuracy() (r float64, exists bool) {
	v := m.accuracy
	if v == nil {
		return
	}
	return *v, true
}

// OldAccuracy returns the old "accuracy" field's value of the GameSession entity.
// If the GameSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GameSessionMutation) OldAccuracy(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccuracy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccuracy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccuracy: %w", err)
	}
	return oldValue.Accuracy, nil
}

// AddAccuracy adds f to the "accuracy" field.
func (m *GameSessionMutation) AddAccuracy(f float64) {
	if m.addaccuracy != nil {
		*m.addaccuracy += f
	} else {
		m.addaccuracy = &f
	}
}

// AddedAccuracy returns the value that was added to the "accuracy" field in this mutation.
func (m *GameSessionMutation) AddedAccuracy() (r float64, exists bool) {
	v := m.addaccuracy
	if v == nil {
		return
	}
	return *v, true
}

// ResetAccuracy resets all changes to the "accuracy" field.
func (m *GameSessionMutation) ResetAccuracy() {
	m.accuracy = nil
	m.addaccuracy = nil
}

// SetDurationSecs sets the "duration_secs" field.
func (m *GameSessionMutation) SetDurationSecs(i int) {
	m.duration_secs = &i
	m.addduration_secs = nil
}

// DurationSecs returns the value of the "duration_secs" field in the mutation.
func (m *GameSessionMutation) DurationSecs() (r int, exists bool) {
	v := m.duration_secs
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationSecs returns the old "duration_secs" field's value of the GameSession entity.
// If the GameSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GameSessionMutation) OldDurationSecs(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationSecs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationSecs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationSecs: %w", err)
	}
	return oldValue.DurationSecs, nil
}

// AddDurationSecs adds i to the "duration_secs" field.
func (m *GameSessionMutation) AddDurationSecs(i int) {
	if m.addduration_secs != nil {
		*m.addduration_secs += i
	} else {
		m.addduration_secs = &i
	}
}

// AddedDurationSecs returns the value that was added to the "duration_secs" field in this mutation.
func (m *GameSessionMutation) AddedDurationSecs() (r int, exists bool) {
	v := m.addduration_secs
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationSecs resets all changes to the "duration_secs" field.
func (m *GameSessionMutation) ResetDurationSecs() {
	m.duration_secs = nil
	m.addduration_secs = nil
}

// SetStreak sets the "streak" field.
func (m *GameSessionMutation) SetStreak(i int) {
	m.streak = &i
	m.addstreak = nil
}

// Streak returns the value of the "streak" field in the mutation.
func (m *GameSessionMutation) Streak() (r int, exists bool) {
	v := m.streak
	if v == nil {
		return
	}
	return *v, true
}

// OldStreak returns the old "streak" field's value of the GameSession entity.
// If the GameSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GameSessionMutation) OldStreak(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStreak is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStreak requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStreak: %w", err)
	}
	return oldValue.Streak, nil
}

// AddStreak adds i to the "streak" field.
func (m *GameSessionMutation) AddStreak(i int) {
	if m.addstreak != nil {
		*m.addstreak += i
	} else {
		m.addstreak = &i
	}
}

// AddedStreak returns the value that was added to the "streak" field in this mutation.
func (m *GameSessionMutation) AddedStreak() (r int, exists bool) {
	v := m.addstreak
	if v == nil {
		return
	}
	return *v, true
}

// ResetStreak resets all changes to the "streak" field.
func (m *GameSessionMutation) ResetStreak() {
	m.streak = nil
	m.addstreak = nil
}

// SetQuestionsData sets the "questions_data" field.
func (m *GameSessionMutation) SetQuestionsData(s string) {
	m.questions_data = &s
}

// QuestionsData returns the value of the "questions_data" field in the mutation.
func (m *GameSessionMutation) QuestionsData() (r string, exists bool) {
	v := m.questions_data
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionsData returns the old "questions_data" field's value of the GameSession entity.
// If the GameSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GameSessionMutation) OldQuestionsData(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionsData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionsData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionsData: %w", err)
	}
	return oldValue.QuestionsData, nil
}

// ClearQuestionsData clears the value of the "questions_data" field.
func (m *GameSessionMutation) ClearQuestionsData() {
	m.questions_data = nil
	m.clearedFields[gamesession.FieldQuestionsData] = struct{}{}
}

// QuestionsDataCleared returns if the "questions_data" field was cleared in this mutation.
func (m *GameSessionMutation) QuestionsDataCleared() bool {
	_, ok := m.clearedFields[gamesession.FieldQuestionsData]
	return ok
}

// ResetQuestionsData resets all changes to the "questions_data" field.
func (m *GameSessionMutation) ResetQuestionsData() {
	m.questions_data = nil
	delete(m.clearedFields, gamesession.FieldQuestionsData)
}

// SetAnswersData sets the "answers_data" field.
func (m *GameSessionMutation) SetAnswersData(s string) {
	m.answers_data = &s
}

// AnswersData returns the value of the "answers_data" field in the mutation.
func (m *GameSessionMutation) AnswersData() (r string, exists bool) {
	v := m.answers_data
	if v == nil {
		return
	}
	return *v, true
}

// OldAnswersData returns the old "answers_data" field's value of the GameSession entity.
// If the GameSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GameSessionMutation) OldAnswersData(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnswersData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnswersData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnswersData: %w", err)
	}
	return oldValue.AnswersData, nil
}

// ClearAnswersData clears the value of the "answers_data" field.
func (m *GameSessionMutation) ClearAnswersData() {
	m.answers_data = nil
	m.clearedFields[gamesession.FieldAnswersData] = struct{}{}
}

// AnswersDataCleared returns if the "answers_data" field was cleared in this mutation.
func (m *GameSessionMutation) AnswersDataCleared() bool {
	_, ok := m.clearedFields[gamesession.FieldAnswersData]
	return ok
}

// ResetAnswersData resets all changes to the "answers_data" field.
func (m *GameSessionMutation) ResetAnswersData() {
	m.answers_data = nil
	delete(m.clearedFields, gamesession.FieldAnswersData)
}

// SetCompletedAt sets the "completed_at" field.
func (m *GameSessionMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *GameSessionMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the GameSession entity.
// If the GameSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GameSessionMutation) OldCompletedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *GameSessionMutation) ResetCompletedAt() {
	m.completed_at = nil
}

// Where appends a list predicates to the GameSessionMutation builder.
func (m *GameSessionMutation) Where(ps ...predicate.GameSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the GameSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *GameSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.GameSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *GameSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *GameSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (GameSession).
func (m *GameSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *GameSessionMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.level != nil {
		fields = append(fields, gamesession.FieldLevel)
	}
	if m.topic != nil {
		fields = append(fields, gamesession.FieldTopic)
	}
	if m.score != nil {
		fields = append(fields, gamesession.FieldScore)
	}
	if m.total_questions != nil {
		fields = append(fields, gamesession.FieldTotalQuestions)
	}
	if m.accuracy != nil {
		fields = append(fields, gamesession.FieldAccuracy)
	}
	if m.duration_secs != nil {
		fields = append(fields, gamesession.FieldDurationSecs)
	}
	if m.streak != nil {
		fields = append(fields, gamesession.FieldStreak)
	}
	if m.questions_data != nil {
		fields = append(fields, gamesession.FieldQuestionsData)
	}
	if m.answers_data != nil {
		fields = append(fields, gamesession.FieldAnswersData)
	}
	if m.completed_at != nil {
		fields = append(fields, gamesession.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *GameSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case gamesession.FieldLevel:
		return m.Level()
	case gamesession.FieldTopic:
		return m.Topic()
	case gamesession.FieldScore:
		return m.Score()
	case gamesession.FieldTotalQuestions:
		return m.TotalQuestions()
	case gamesession.FieldAccuracy:
		return m.Accuracy()
	case gamesession.FieldDurationSecs:
		return m.DurationSecs()
	case gamesession.FieldStreak:
		return m.Streak()
	case gamesession.FieldQuestionsData:
		return m.QuestionsData()
	case gamesession.FieldAnswersData:
		return m.AnswersData()
	case gamesession.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *GameSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case gamesession.FieldLevel:
		return m.OldLevel(ctx)
	case gamesession.FieldTopic:
		return m.OldTopic(ctx)
	case gamesession.FieldScore:
		return m.OldScore(ctx)
	case gamesession.FieldTotalQuestions:
		return m.OldTotalQuestions(ctx)
	case gamesession.FieldAccuracy:
		return m.OldAccuracy(ctx)
	case gamesession.FieldDurationSecs:
		return m.OldDurationSecs(ctx)
	case gamesession.FieldStreak:
		return m.OldStreak(ctx)
	case gamesession.FieldQuestionsData:
		return m.OldQuestionsData(ctx)
	case gamesession.FieldAnswersData:
		return m.OldAnswersData(ctx)
	case gamesession.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown GameSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GameSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case gamesession.FieldLevel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLevel(v)
		return nil
	case gamesession.FieldTopic:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopic(v)
		return nil
	case gamesession.FieldScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case gamesession.FieldTotalQuestions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalQuestions(v)
		return nil
	case gamesession.FieldAccuracy:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccuracy(v)
		return nil
	case gamesession.FieldDurationSecs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationSecs(v)
		return nil
	case gamesession.FieldStreak:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStreak(v)
		return nil
	case gamesession.FieldQuestionsData:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionsData(v)
		return nil
	case gamesession.FieldAnswersData:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnswersData(v)
		return nil
	case gamesession.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown GameSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *GameSessionMutation) AddedFields() []string {
	var fields []string
	if m.addscore != nil {
		fields = append(fields, gamesession.FieldScore)
	}
	if m.addtotal_questions != nil {
		fields = append(fields, gamesession.FieldTotalQuestions)
	}
	if m.addaccuracy != nil {
		fields = append(fields, gamesession.FieldAccuracy)
	}
	if m.addduration_secs != nil {
		fields = append(fields, gamesession.FieldDurationSecs)
	}
	if m.addstreak != nil {
		fields = append(fields, gamesession.FieldStreak)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *GameSessionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case gamesession.FieldScore:
		return m.AddedScore()
	case gamesession.FieldTotalQuestions:
		return m.AddedTotalQuestions()
	case gamesession.FieldAccuracy:
		return m.AddedAccuracy()
	case gamesession.FieldDurationSecs:
		return m.AddedDurationSecs()
	case gamesession.FieldStreak:
		return m.AddedStreak()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GameSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case gamesession.FieldScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	case gamesession.FieldTotalQuestions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalQuestions(v)
		return nil
	case gamesession.FieldAccuracy:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAccuracy(v)
		return nil
	case gamesession.FieldDurationSecs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationSecs(v)
		return nil
	case gamesession.FieldStreak:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStreak(v)
		return nil
	}
	return fmt.Errorf("unknown GameSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *GameSessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(gamesession.FieldQuestionsData) {
		fields = append(fields, gamesession.FieldQuestionsData)
	}
	if m.FieldCleared(gamesession.FieldAnswersData) {
		fields = append(fields, gamesession.FieldAnswersData)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *GameSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *GameSessionMutation) ClearField(name string) error {
	switch name {
	case gamesession.FieldQuestionsData:
		m.ClearQuestionsData()
		return nil
	case gamesession.FieldAnswersData:
		m.ClearAnswersData()
		return nil
	}
	return fmt.Errorf("unknown GameSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *GameSessionMutation) ResetField(name string) error {
	switch name {
	case gamesession.FieldLevel:
		m.ResetLevel()
		return nil
	case gamesession.FieldTopic:
		m.ResetTopic()
		return nil
	case gamesession.FieldScore:
		m.ResetScore()
		return nil
	case gamesession.FieldTotalQuestions:
		m.ResetTotalQuestions()
		return nil
	case gamesession.FieldAccuracy:
		m.ResetAccuracy()
		return nil
	case gamesession.FieldDurationSecs:
		m.ResetDurationSecs()
		return nil
	case gamesession.FieldStreak:
		m.ResetStreak()
		return nil
	case gamesession.FieldQuestionsData:
		m.ResetQuestionsData()
		return nil
	case gamesession.FieldAnswersData:
		m.ResetAnswersData()
		return nil
	case gamesession.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown GameSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *GameSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *GameSessionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *GameSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *GameSessionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *GameSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *GameSessionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *GameSessionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown GameSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *GameSessionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown GameSession edge %s", name)
}

// LLMRequestMutation represents an operation that mutates the LLMRequest nodes in the graph.
type LLMRequestMutation struct {
	config
	op               Op
	typ              string
	id               *int
	request_id       *string
	provider         *string
	model            *string
	purpose          *string
	input_tokens     *int
	addinput_tokens  *int
	output_tokens    *int
	addoutput_tokens *int
	latency_ms       *int64
	addlatency_ms    *int64
	success          *bool
	error_message    *string
	request_body     *string
	response_body    *string
	created_at       *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*LLMRequest, error)
	predicates       []predicate.LLMRequest
}

var _ ent.Mutation = (*LLMRequestMutation)(nil)

// llmrequestOption allows management of the mutation configuration using functional options.
type llmrequestOption func(*LLMRequestMutation)

// newLLMRequestMutation creates new mutation for the LLMRequest entity.
func newLLMRequestMutation(c config, op Op, opts ...llmrequestOption) *LLMRequestMutation {
	m := &LLMRequestMutation{
		config:        c,
		op:            op,
		typ:           TypeLLMRequest,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLLMRequestID sets the ID field of the mutation.
func withLLMRequestID(id int) llmrequestOption {
	return func(m *LLMRequestMutation) {
		var (
			err   error
			once  sync.Once
			value *LLMRequest
		)
		m.oldValue = func(ctx context.Context) (*LLMRequest, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LLMRequest.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLLMRequest sets the old LLMRequest of the mutation.
func withLLMRequest(node *LLMRequest) llmrequestOption {
	return func(m *LLMRequestMutation) {
		m.oldValue = func(context.Context) (*LLMRequest, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LLMRequestMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LLMRequestMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LLMRequestMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LLMRequestMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LLMRequest.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRequestID sets the "request_id" field.
func (m *LLMRequestMutation) SetRequestID(s string) {
	m.request_id = &s
}

// RequestID returns the value of the "request_id" field in the mutation.
func (m *LLMRequestMutation) RequestID() (r string, exists bool) {
	v := m.request_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestID returns the old "request_id" field's value of the LLMRequest entity.
// If the LLMRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestMutation) OldRequestID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestID: %w", err)
	}
	return oldValue.RequestID, nil
}

// ResetRequestID resets all changes to the "request_id" field.
func (m *LLMRequestMutation) ResetRequestID() {
	m.request_id = nil
}

// SetProvider sets the "provider" field.
func (m *LLMRequestMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *LLMRequestMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the LLMRequest entity.
// If the LLMRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *LLMRequestMutation) ResetProvider() {
	m.provider = nil
}

// SetModel sets the "model" field.
func (m *LLMRequestMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *LLMRequestMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the LLMRequest entity.
// If the LLMRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *LLMRequestMutation) ResetModel() {
	m.model = nil
}

// SetPurpose sets the "purpose" field.
func (m *LLMRequestMutation) SetPurpose(s string) {
	m.purpose = &s
}

// Purpose returns the value of the "purpose" field in the mutation.
func (m *LLMRequestMutation) Purpose() (r string, exists bool) {
	v := m.purpose
	if v == nil {
		return
	}
	return *v, true
}

// OldPurpose returns the old "purpose" field's value of the LLMRequest entity.
// If the LLMRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestMutation) OldPurpose(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPurpose is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPurpose requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPurpose: %w", err)
	}
	return oldValue.Purpose, nil
}

// ResetPurpose resets all changes to the "purpose" field.
func (m *LLMRequestMutation) ResetPurpose() {
	m.purpose = nil
}

// SetInputTokens sets the "input_tokens" field.
func (m *LLMRequestMutation) SetInputTokens(i int) {
	m.input_tokens = &i
	m.addinput_tokens = nil
}

// InputTokens returns the value of the "input_tokens" field in the mutation.
func (m *LLMRequestMutation) InputTokens() (r int, exists bool) {
	v := m.input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldInputTokens returns the old "input_tokens" field's value of the LLMRequest entity.
// If the LLMRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestMutation) OldInputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputTokens: %w", err)
	}
	return oldValue.InputTokens, nil
}

// AddInputTokens adds i to the "input_tokens" field.
func (m *LLMRequestMutation) AddInputTokens(i int) {
	if m.addinput_tokens != nil {
		*m.addinput_tokens += i
	} else {
		m.addinput_tokens = &i
	}
}

// AddedInputTokens returns the value that was added to the "input_tokens" field in this mutation.
func (m *LLMRequestMutation) AddedInputTokens() (r int, exists bool) {
	v := m.addinput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetInputTokens resets all changes to the "input_tokens" field.
func (m *LLMRequestMutation) ResetInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
}

// SetOutputTokens sets the "output_tokens" field.
func (m *LLMRequestMutation) SetOutputTokens(i int) {
	m.output_tokens = &i
	m.addoutput_tokens = nil
}

// OutputTokens returns the value of the "output_tokens" field in the mutation.
func (m *LLMRequestMutation) OutputTokens() (r int, exists bool) {
	v := m.output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputTokens returns the old "output_tokens" field's value of the LLMRequest entity.
// If the LLMRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestMutation) OldOutputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputTokens: %w", err)
	}
	return oldValue.OutputTokens, nil
}

// AddOutputTokens adds i to the "output_tokens" field.
func (m *LLMRequestMutation) AddOutputTokens(i int) {
	if m.addoutput_tokens != nil {
		*m.addoutput_tokens += i
	} else {
		m.addoutput_tokens = &i
	}
}

// AddedOutputTokens returns the value that was added to the "output_tokens" field in this mutation.
func (m *LLMRequestMutation) AddedOutputTokens() (r int, exists bool) {
	v := m.addoutput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetOutputTokens resets all changes to the "output_tokens" field.
func (m *LLMRequestMutation) ResetOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
}

// SetLatencyMs sets the "latency_ms" field.
func (m *LLMRequestMutation) SetLatencyMs(i int64) {
	m.latency_ms = &i
	m.addlatency_ms = nil
}

// LatencyMs returns the value of the "latency_ms" field in the mutation.
func (m *LLMRequestMutation) LatencyMs() (r int64, exists bool) {
	v := m.latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldLatencyMs returns the old "latency_ms" field's value of the LLMRequest entity.
// If the LLMRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestMutation) OldLatencyMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatencyMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatencyMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatencyMs: %w", err)
	}
	return oldValue.LatencyMs, nil
}

// AddLatencyMs adds i to the "latency_ms" field.
func (m *LLMRequestMutation) AddLatencyMs(i int64) {
	if m.addlatency_ms != nil {
		*m.addlatency_ms += i
	} else {
		m.addlatency_ms = &i
	}
}

// AddedLatencyMs returns the value that was added to the "latency_ms" field in this mutation.
func (m *LLMRequestMutation) AddedLatencyMs() (r int64, exists bool) {
	v := m.addlatency_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetLatencyMs resets all changes to the "latency_ms" field.
func (m *LLMRequestMutation) ResetLatencyMs() {
	m.latency_ms = nil
	m.addlatency_ms = nil
}

// SetSuccess sets the "success" field.
func (m *LLMRequestMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *LLMRequestMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the LLMRequest entity.
// If the LLMRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestMutation) OldSuccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ResetSuccess resets all changes to the "success" field.
func (m *LLMRequestMutation) ResetSuccess() {
	m.success = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *LLMRequestMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *LLMRequestMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the LLMRequest entity.
// If the LLMRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *LLMRequestMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[llmrequest.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *LLMRequestMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[llmrequest.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *LLMRequestMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, llmrequest.FieldErrorMessage)
}

// SetRequestBody sets the "request_body" field.
func (m *LLMRequestMutation) SetRequestBody(s string) {
	m.request_body = &s
}

// RequestBody returns the value of the "request_body" field in the mutation.
func (m *LLMRequestMutation) RequestBody() (r string, exists bool) {
	v := m.request_body
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestBody returns the old "request_body" field's value of the LLMRequest entity.
// If the LLMRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestMutation) OldRequestBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestBody: %w", err)
	}
	return oldValue.RequestBody, nil
}

// ClearRequestBody clears the value of the "request_body" field.
func (m *LLMRequestMutation) ClearRequestBody() {
	m.request_body = nil
	m.clearedFields[llmrequest.FieldRequestBody] = struct{}{}
}

// RequestBodyCleared returns if the "request_body" field was cleared in this mutation.
func (m *LLMRequestMutation) RequestBodyCleared() bool {
	_, ok := m.clearedFields[llmrequest.FieldRequestBody]
	return ok
}

// ResetRequestBody resets all changes to the "request_body" field.
func (m *LLMRequestMutation) ResetRequestBody() {
	m.request_body = nil
	delete(m.clearedFields, llmrequest.FieldRequestBody)
}

// SetResponseBody sets the "response_body" field.
func (m *LLMRequestMutation) SetResponseBody(s string) {
	m.response_body = &s
}

// ResponseBody returns the value of the "response_body" field in the mutation.
func (m *LLMRequestMutation) ResponseBody() (r string, exists bool) {
	v := m.response_body
	if v == nil {
		return
	}
	return *v, true
}

// OldResponseBody returns the old "response_body" field's value of the LLMRequest entity.
// If the LLMRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestMutation) OldResponseBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponseBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponseBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponseBody: %w", err)
	}
	return oldValue.ResponseBody, nil
}

// ClearResponseBody clears the value of the "response_body" field.
func (m *LLMRequestMutation) ClearResponseBody() {
	m.response_body = nil
	m.clearedFields[llmrequest.FieldResponseBody] = struct{}{}
}

// ResponseBodyCleared returns if the "response_body" field was cleared in this mutation.
func (m *LLMRequestMutation) ResponseBodyCleared() bool {
	_, ok := m.clearedFields[llmrequest.FieldResponseBody]
	return ok
}

// ResetResponseBody resets all changes to the "response_body" field.
func (m *LLMRequestMutation) ResetResponseBody() {
	m.response_body = nil
	delete(m.clearedFields, llmrequest.FieldResponseBody)
}

// SetCreatedAt sets the "created_at" field.
func (m *LLMRequestMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *LLMRequestMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the LLMRequest entity.
// If the LLMRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *LLMRequestMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the LLMRequestMutation builder.
func (m *LLMRequestMutation) Where(ps ...predicate.LLMRequest) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LLMRequestMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LLMRequestMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LLMRequest, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LLMRequestMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LLMRequestMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LLMRequest).
func (m *LLMRequestMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LLMRequestMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.request_id != nil {
		fields = append(fields, llmrequest.FieldRequestID)
	}
	if m.provider != nil {
		fields = append(fields, llmrequest.FieldProvider)
	}
	if m.model != nil {
		fields = append(fields, llmrequest.FieldModel)
	}
	if m.purpose != nil {
		fields = append(fields, llmrequest.FieldPurpose)
	}
	if m.input_tokens != nil {
		fields = append(fields, llmrequest.FieldInputTokens)
	}
	if m.output_tokens != nil {
		fields = append(fields, llmrequest.FieldOutputTokens)
	}
	if m.latency_ms != nil {
		fields = append(fields, llmrequest.FieldLatencyMs)
	}
	if m.success != nil {
		fields = append(fields, llmrequest.FieldSuccess)
	}
	if m.error_message != nil {
		fields = append(fields, llmrequest.FieldErrorMessage)
	}
	if m.request_body != nil {
		fields = append(fields, llmrequest.FieldRequestBody)
	}
	if m.response_body != nil {
		fields = append(fields, llmrequest.FieldResponseBody)
	}
	if m.created_at != nil {
		fields = append(fields, llmrequest.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LLMRequestMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case llmrequest.FieldRequestID:
		return m.RequestID()
	case llmrequest.FieldProvider:
		return m.Provider()
	case llmrequest.FieldModel:
		return m.Model()
	case llmrequest.FieldPurpose:
		return m.Purpose()
	case llmrequest.FieldInputTokens:
		return m.InputTokens()
	case llmrequest.FieldOutputTokens:
		return m.OutputTokens()
	case llmrequest.FieldLatencyMs:
		return m.LatencyMs()
	case llmrequest.FieldSuccess:
		return m.Success()
	case llmrequest.FieldErrorMessage:
		return m.ErrorMessage()
	case llmrequest.FieldRequestBody:
		return m.RequestBody()
	case llmrequest.FieldResponseBody:
		return m.ResponseBody()
	case llmrequest.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LLMRequestMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case llmrequest.FieldRequestID:
		return m.OldRequestID(ctx)
	case llmrequest.FieldProvider:
		return m.OldProvider(ctx)
	case llmrequest.FieldModel:
		return m.OldModel(ctx)
	case llmrequest.FieldPurpose:
		return m.OldPurpose(ctx)
	case llmrequest.FieldInputTokens:
		return m.OldInputTokens(ctx)
	case llmrequest.FieldOutputTokens:
		return m.OldOutputTokens(ctx)
	case llmrequest.FieldLatencyMs:
		return m.OldLatencyMs(ctx)
	case llmrequest.FieldSuccess:
		return m.OldSuccess(ctx)
	case llmrequest.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case llmrequest.FieldRequestBody:
		return m.OldRequestBody(ctx)
	case llmrequest.FieldResponseBody:
		return m.OldResponseBody(ctx)
	case llmrequest.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown LLMRequest field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMRequestMutation) SetField(name string, value ent.Value) error {
	switch name {
	case llmrequest.FieldRequestID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestID(v)
		return nil
	case llmrequest.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case llmrequest.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case llmrequest.FieldPurpose:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPurpose(v)
		return nil
	case llmrequest.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputTokens(v)
		return nil
	case llmrequest.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputTokens(v)
		return nil
	case llmrequest.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatencyMs(v)
		return nil
	case llmrequest.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case llmrequest.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case llmrequest.FieldRequestBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestBody(v)
		return nil
	case llmrequest.FieldResponseBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponseBody(v)
		return nil
	case llmrequest.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown LLMRequest field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LLMRequestMutation) AddedFields() []string {
	var fields []string
	if m.addinput_tokens != nil {
		fields = append(fields, llmrequest.FieldInputTokens)
	}
	if m.addoutput_tokens != nil {
		fields = append(fields, llmrequest.FieldOutputTokens)
	}
	if m.addlatency_ms != nil {
		fields = append(fields, llmrequest.FieldLatencyMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LLMRequestMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case llmrequest.FieldInputTokens:
		return m.AddedInputTokens()
	case llmrequest.FieldOutputTokens:
		return m.AddedOutputTokens()
	case llmrequest.FieldLatencyMs:
		return m.AddedLatencyMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMRequestMutation) AddField(name string, value ent.Value) error {
	switch name {
	case llmrequest.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputTokens(v)
		return nil
	case llmrequest.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputTokens(v)
		return nil
	case llmrequest.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatencyMs(v)
		return nil
	}
	return fmt.Errorf("unknown LLMRequest numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LLMRequestMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(llmrequest.FieldErrorMessage) {
		fields = append(fields, llmrequest.FieldErrorMessage)
	}
	if m.FieldCleared(llmrequest.FieldRequestBody) {
		fields = append(fields, llmrequest.FieldRequestBody)
	}
	if m.FieldCleared(llmrequest.FieldResponseBody) {
		fields = append(fields, llmrequest.FieldResponseBody)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LLMRequestMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LLMRequestMutation) ClearField(name string) error {
	switch name {
	case llmrequest.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case llmrequest.FieldRequestBody:
		m.ClearRequestBody()
		return nil
	case llmrequest.FieldResponseBody:
		m.ClearResponseBody()
		return nil
	}
	return fmt.Errorf("unknown LLMRequest nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LLMRequestMutation) ResetField(name string) error {
	switch name {
	case llmrequest.FieldRequestID:
		m.ResetRequestID()
		return nil
	case llmrequest.FieldProvider:
		m.ResetProvider()
		return nil
	case llmrequest.FieldModel:
		m.ResetModel()
		return nil
	case llmrequest.FieldPurpose:
		m.ResetPurpose()
		return nil
	case llmrequest.FieldInputTokens:
		m.ResetInputTokens()
		return nil
	case llmrequest.FieldOutputTokens:
		m.ResetOutputTokens()
		return nil
	case llmrequest.FieldLatencyMs:
		m.ResetLatencyMs()
		return nil
	case llmrequest.FieldSuccess:
		m.ResetSuccess()
		return nil
	case llmrequest.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case llmrequest.FieldRequestBody:
		m.ResetRequestBody()
		return nil
	case llmrequest.FieldResponseBody:
		m.ResetResponseBody()
		return nil
	case llmrequest.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown LLMRequest field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LLMRequestMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LLMRequestMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LLMRequestMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LLMRequestMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LLMRequestMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LLMRequestMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LLMRequestMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LLMRequest unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LLMRequestMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LLMRequest edge %s", name)
}

// QuestionCacheMutation represents an operation that mutates the QuestionCache nodes in the graph.
type QuestionCacheMutation struct {
	config
	op            Op
	typ           string
	id            *int
	level         *string
	topic         *string
	question_data *string
	created_at    *time.Time
	expires_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*QuestionCache, error)
	predicates    []predicate.QuestionCache
}

var _ ent.Mutation = (*QuestionCacheMutation)(nil)

// questioncacheOption allows management of the mutation configuration using functional options.
type questioncacheOption func(*QuestionCacheMutation)

// newQuestionCacheMutation creates new mutation for the QuestionCache entity.
func newQuestionCacheMutation(c config, op Op, opts ...questioncacheOption) *QuestionCacheMutation {
	m := &QuestionCacheMutation{
		config:        c,
		op:            op,
		typ:           TypeQuestionCache,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQuestionCacheID sets the ID field of the mutation.
func withQuestionCacheID(id int) questioncacheOption {
	return func(m *QuestionCacheMutation) {
		var (
			err   error
			once  sync.Once
			value *QuestionCache
		)
		m.oldValue = func(ctx context.Context) (*QuestionCache, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().QuestionCache.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQuestionCache sets the old QuestionCache of the mutation.
func withQuestionCache(node *QuestionCache) questioncacheOption {
	return func(m *QuestionCacheMutation) {
		m.oldValue = func(context.Context) (*QuestionCache, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QuestionCacheMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QuestionCacheMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QuestionCacheMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QuestionCacheMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().QuestionCache.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetLevel sets the "level" field.
func (m *QuestionCacheMutation) SetLevel(s string) {
	m.level = &s
}

// Level returns the value of the "level" field in the mutation.
func (m *QuestionCacheMutation) Level() (r string, exists bool) {
	v := m.level
	if v == nil {
		return
	}
	return *v, true
}

// OldLevel returns the old "level" field's value of the QuestionCache entity.
// If the QuestionCache object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionCacheMutation) OldLevel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLevel: %w", err)
	}
	return oldValue.Level, nil
}

// ResetLevel resets all changes to the "level" field.
func (m *QuestionCacheMutation) ResetLevel() {
	m.level = nil
}

// SetTopic sets the "topic" field.
func (m *QuestionCacheMutation) SetTopic(s string) {
	m.topic = &s
}

// Topic returns the value of the "topic" field in the mutation.
func (m *QuestionCacheMutation) Topic() (r string, exists bool) {
	v := m.topic
	if v == nil {
		return
	}
	return *v, true
}

// OldTopic returns the old "topic" field's value of the QuestionCache entity.
// If the QuestionCache object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionCacheMutation) OldTopic(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopic is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopic requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopic: %w", err)
	}
	return oldValue.Topic, nil
}

// ResetTopic resets all changes to the "topic" field.
func (m *QuestionCacheMutation) ResetTopic() {
	m.topic = nil
}

// SetQuestionData sets the "question_data" field.
func (m *QuestionCacheMutation) SetQuestionData(s string) {
	m.question_data = &s
}

// QuestionData returns the value of the "question_data" field in the mutation.
func (m *QuestionCacheMutation) QuestionData() (r string, exists bool) {
	v := m.question_data
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionData returns the old "question_data" field's value of the QuestionCache entity.
// If the QuestionCache object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionCacheMutation) OldQuestionData(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionData: %w", err)
	}
	return oldValue.QuestionData, nil
}

// ResetQuestionData resets all changes to the "question_data" field.
func (m *QuestionCacheMutation) ResetQuestionData() {
	m.question_data = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *QuestionCacheMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *QuestionCacheMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the QuestionCache entity.
// If the QuestionCache object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionCacheMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *QuestionCacheMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetExpiresAt sets the "expires_at" field.
func (m *QuestionCacheMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *QuestionCacheMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the QuestionCache entity.
// If the QuestionCache object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionCacheMutation) OldExpiresAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *QuestionCacheMutation) ResetExpiresAt() {
	m.expires_at = nil
}

// Where appends a list predicates to the QuestionCacheMutation builder.
func (m *QuestionCacheMutation) Where(ps ...predicate.QuestionCache) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QuestionCacheMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QuestionCacheMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.QuestionCache, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QuestionCacheMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QuestionCacheMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (QuestionCache).
func (m *QuestionCacheMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QuestionCacheMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.level != nil {
		fields = append(fields, questioncache.FieldLevel)
	}
	if m.topic != nil {
		fields = append(fields, questioncache.FieldTopic)
	}
	if m.question_data != nil {
		fields = append(fields, questioncache.FieldQuestionData)
	}
	if m.created_at != nil {
		fields = append(fields, questioncache.FieldCreatedAt)
	}
	if m.expires_at != nil {
		fields = append(fields, questioncache.FieldExpiresAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QuestionCacheMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case questioncache.FieldLevel:
		return m.Level()
	case questioncache.FieldTopic:
		return m.Topic()
	case questioncache.FieldQuestionData:
		return m.QuestionData()
	case questioncache.FieldCreatedAt:
		return m.CreatedAt()
	case questioncache.FieldExpiresAt:
		return m.ExpiresAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QuestionCacheMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case questioncache.FieldLevel:
		return m.OldLevel(ctx)
	case questioncache.FieldTopic:
		return m.OldTopic(ctx)
	case questioncache.FieldQuestionData:
		return m.OldQuestionData(ctx)
	case questioncache.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case questioncache.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	}
	return nil, fmt.Errorf("unknown QuestionCache field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuestionCacheMutation) SetField(name string, value ent.Value) error {
	switch name {
	case questioncache.FieldLevel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLevel(v)
		return nil
	case questioncache.FieldTopic:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopic(v)
		return nil
	case questioncache.FieldQuestionData:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionData(v)
		return nil
	case questioncache.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case questioncache.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	}
	return fmt.Errorf("unknown QuestionCache field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QuestionCacheMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QuestionCacheMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuestionCacheMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown QuestionCache numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QuestionCacheMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QuestionCacheMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QuestionCacheMutation) ClearField(name string) error {
	return fmt.Errorf("unknown QuestionCache nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QuestionCacheMutation) ResetField(name string) error {
	switch name {
	case questioncache.FieldLevel:
		m.ResetLevel()
		return nil
	case questioncache.FieldTopic:
		m.ResetTopic()
		return nil
	case questioncache.FieldQuestionData:
		m.ResetQuestionData()
		return nil
	case questioncache.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case questioncache.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	}
	return fmt.Errorf("unknown QuestionCache field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QuestionCacheMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QuestionCacheMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QuestionCacheMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QuestionCacheMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QuestionCacheMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QuestionCacheMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QuestionCacheMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown QuestionCache unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QuestionCacheMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown QuestionCache edge %s", name)
}

// SettingMutation represents an operation that mutates the Setting nodes in the graph.
type SettingMutation struct {
	config
	op            Op
	typ           string
	id            *int
	key           *string
	value         *string
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Setting, error)
	predicates    []predicate.Setting
}

var _ ent.Mutation = (*SettingMutation)(nil)

// settingOption allows management of the mutation configuration using functional options.
type settingOption func(*SettingMutation)

// newSettingMutation creates new mutation for the Setting entity.
func newSettingMutation(c config, op Op, opts ...settingOption) *SettingMutation {
	m := &SettingMutation{
		config:        c,
		op:            op,
		typ:           TypeSetting,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSettingID sets the ID field of the mutation.
func withSettingID(id int) settingOption {
	return func(m *SettingMutation) {
		var (
			err   error
			once  sync.Once
			value *Setting
		)
		m.oldValue = func(ctx context.Context) (*Setting, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Setting.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSetting sets the old Setting of the mutation.
func withSetting(node *Setting) settingOption {
	return func(m *SettingMutation) {
		m.oldValue = func(context.Context) (*Setting, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SettingMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SettingMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SettingMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SettingMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Setting.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetKey sets the "key" field.
func (m *SettingMutation) SetKey(s string) {
	m.key = &s
}

// Key returns the value of the "key" field in the mutation.
func (m *SettingMutation) Key() (r string, exists bool) {
	v := m.key
	if v == nil {
		return
	}
	return *v, true
}

// OldKey returns the old "key" field's value of the Setting entity.
// If the Setting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SettingMutation) OldKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKey: %w", err)
	}
	return oldValue.Key, nil
}

// ResetKey resets all changes to the "key" field.
func (m *SettingMutation) ResetKey() {
	m.key = nil
}

// SetValue sets the "value" field.
func (m *SettingMutation) SetValue(s string) {
	m.value = &s
}

// Value returns the value of the "value" field in the mutation.
func (m *SettingMutation) Value() (r string, exists bool) {
	v := m.value
	if v == nil {
		return
	}
	return *v, true
}

// OldValue returns the old "value" field's value of the Setting entity.
// If the Setting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SettingMutation) OldValue(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValue: %w", err)
	}
	return oldValue.Value, nil
}

// ResetValue resets all changes to the "value" field.
func (m *SettingMutation) ResetValue() {
	m.value = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SettingMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SettingMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Setting entity.
// If the Setting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SettingMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SettingMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the SettingMutation builder.
func (m *SettingMutation) Where(ps ...predicate.Setting) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SettingMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SettingMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Setting, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SettingMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SettingMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Setting).
func (m *SettingMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SettingMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.key != nil {
		fields = append(fields, setting.FieldKey)
	}
	if m.value != nil {
		fields = append(fields, setting.FieldValue)
	}
	if m.updated_at != nil {
		fields = append(fields, setting.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SettingMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case setting.FieldKey:
		return m.Key()
	case setting.FieldValue:
		return m.Value()
	case setting.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SettingMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case setting.FieldKey:
		return m.OldKey(ctx)
	case setting.FieldValue:
		return m.OldValue(ctx)
	case setting.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Setting field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SettingMutation) SetField(name string, value ent.Value) error {
	switch name {
	case setting.FieldKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKey(v)
		return nil
	case setting.FieldValue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValue(v)
		return nil
	case setting.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Setting field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SettingMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SettingMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SettingMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Setting numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SettingMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SettingMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SettingMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Setting nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SettingMutation) ResetField(name string) error {
	switch name {
	case setting.FieldKey:
		m.ResetKey()
		return nil
	case setting.FieldValue:
		m.ResetValue()
		return nil
	case setting.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Setting field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SettingMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SettingMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SettingMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SettingMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SettingMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SettingMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SettingMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Setting unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SettingMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Setting edge %s", name)
}

// TopicProgressMutation represents an operation that mutates the TopicProgress nodes in the graph.
type TopicProgressMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	level              *string
	topic              *string
	best_score         *int
	addbest_score      *int
	attempts           *int
	addattempts        *int
	total_questions    *int
	addtotal_questions *int
	correct_answers    *int
	addcorrect_answers *int
	last_attempt       *time.Time
	is_completed       *bool
	created_at         *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*TopicProgress, error)
	predicates         []predicate.TopicProgress
}

var _ ent.Mutation = (*TopicProgressMutation)(nil)

// topicprogressOption allows management of the mutation configuration using functional options.
type topicprogressOption func(*TopicProgressMutation)

// newTopicProgressMutation creates new mutation for the TopicProgress entity.
func newTopicProgressMutation(c config, op Op, opts ...topicprogressOption) *TopicProgressMutation {
	m := &TopicProgressMutation{
		config:        c,
		op:            op,
		typ:           TypeTopicProgress,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTopicProgressID sets the ID field of the mutation.
func withTopicProgressID(id int) topicprogressOption {
	return func(m *TopicProgressMutation) {
		var (
			err   error
			once  sync.Once
			value *TopicProgress
		)
		m.oldValue = func(ctx context.Context) (*TopicProgress, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TopicProgress.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTopicProgress sets the old TopicProgress of the mutation.
func withTopicProgress(node *TopicProgress) topicprogressOption {
	return func(m *TopicProgressMutation) {
		m.oldValue = func(context.Context) (*TopicProgress, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TopicProgressMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TopicProgressMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TopicProgressMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TopicProgressMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TopicProgress.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetLevel sets the "level" field.
func (m *TopicProgressMutation) SetLevel(s string) {
	m.level = &s
}

// Level returns the value of the "level" field in the mutation.
func (m *TopicProgressMutation) Level() (r string, exists bool) {
	v := m.level
	if v == nil {
		return
	}
	return *v, true
}

// OldLevel returns the old "level" field's value of the TopicProgress entity.
// If the TopicProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicProgressMutation) OldLevel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLevel: %w", err)
	}
	return oldValue.Level, nil
}

// ResetLevel resets all changes to the "level" field.
func (m *TopicProgressMutation) ResetLevel() {
	m.level = nil
}

// SetTopic sets the "topic" field.
func (m *TopicProgressMutation) SetTopic(s string) {
	m.topic = &s
}

// Topic returns the value of the "topic" field in the mutation.
func (m *TopicProgressMutation) Topic() (r string, exists bool) {
	v := m.topic
	if v == nil {
		return
	}
	return *v, true
}

// OldTopic returns the old "topic" field's value of the TopicProgress entity.
// If the TopicProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicProgressMutation) OldTopic(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopic is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopic requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopic: %w", err)
	}
	return oldValue.Topic, nil
}

// ResetTopic resets all changes to the "topic" field.
func (m *TopicProgressMutation) ResetTopic() {
	m.topic = nil
}

// SetBestScore sets the "best_score" field.
func (m *TopicProgressMutation) SetBestScore(i int) {
	m.best_score = &i
	m.addbest_score = nil
}

// BestScore returns the value of the "best_score" field in the mutation.
func (m *TopicProgressMutation) BestScore() (r int, exists bool) {
	v := m.best_score
	if v == nil {
		return
	}
	return *v, true
}

// OldBestScore returns the old "best_score" field's value of the TopicProgress entity.
// If the TopicProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicProgressMutation) OldBestScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBestScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBestScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBestScore: %w", err)
	}
	return oldValue.BestScore, nil
}

// AddBestScore adds i to the "best_score" field.
func (m *TopicProgressMutation) AddBestScore(i int) {
	if m.addbest_score != nil {
		*m.addbest_score += i
	} else {
		m.addbest_score = &i
	}
}

// AddedBestScore returns the value that was added to the "best_score" field in this mutation.
func (m *TopicProgressMutation) AddedBestScore() (r int, exists bool) {
	v := m.addbest_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetBestScore resets all changes to the "best_score" field.
func (m *TopicProgressMutation) ResetBestScore() {
	m.best_score = nil
	m.addbest_score = nil
}

// SetAttempts sets the "attempts" field.
func (m *TopicProgressMutation) SetAttempts(i int) {
	m.attempts = &i
	m.addattempts = nil
}

// Attempts returns the value of the "attempts" field in the mutation.
func (m *TopicProgressMutation) Attempts() (r int, exists bool) {
	v := m.attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempts returns the old "attempts" field's value of the TopicProgress entity.
// If the TopicProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicProgressMutation) OldAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempts: %w", err)
	}
	return oldValue.Attempts, nil
}

// AddAttempts adds i to the "attempts" field.
func (m *TopicProgressMutation) AddAttempts(i int) {
	if m.addattempts != nil {
		*m.addattempts += i
	} else {
		m.addattempts = &i
	}
}

// AddedAttempts returns the value that was added to the "attempts" field in this mutation.
func (m *TopicProgressMutation) AddedAttempts() (r int, exists bool) {
	v := m.addattempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempts resets all changes to the "attempts" field.
func (m *TopicProgressMutation) ResetAttempts() {
	m.attempts = nil
	m.addattempts = nil
}

// SetTotalQuestions sets the "total_questions" field.
func (m *TopicProgressMutation) SetTotalQuestions(i int) {
	m.total_questions = &i
	m.addtotal_questions = nil
}

// TotalQuestions returns the value of the "total_questions" field in the mutation.
func (m *TopicProgressMutation) TotalQuestions() (r int, exists bool) {
	v := m.total_questions
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalQuestions returns the old "total_questions" field's value of the TopicProgress entity.
// If the TopicProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicProgressMutation) OldTotalQuestions(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalQuestions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalQuestions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalQuestions: %w", err)
	}
	return oldValue.TotalQuestions, nil
}

// AddTotalQuestions adds i to the "total_questions" field.
func (m *TopicProgressMutation) AddTotalQuestions(i int) {
	if m.addtotal_questions != nil {
		*m.addtotal_questions += i
	} else {
		m.addtotal_questions = &i
	}
}

// AddedTotalQuestions returns the value that was added to the "total_questions" field in this mutation.
func (m *TopicProgressMutation) AddedTotalQuestions() (r int, exists bool) {
	v := m.addtotal_questions
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalQuestions resets all changes to the "total_questions" field.
func (m *TopicProgressMutation) ResetTotalQuestions() {
	m.total_questions = nil
	m.addtotal_questions = nil
}

// SetCorrectAnswers sets the "correct_answers" field.
func (m *TopicProgressMutation) SetCorrectAnswers(i int) {
	m.correct_answers = &i
	m.addcorrect_answers = nil
}

// CorrectAnswers returns the value of the "correct_answers" field in the mutation.
func (m *TopicProgressMutation) CorrectAnswers() (r int, exists bool) {
	v := m.correct_answers
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrectAnswers returns the old "correct_answers" field's value of the TopicProgress entity.
// If the TopicProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicProgressMutation) OldCorrectAnswers(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrectAnswers is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrectAnswers requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrectAnswers: %w", err)
	}
	return oldValue.CorrectAnswers, nil
}

// AddCorrectAnswers adds i to the "correct_answers" field.
func (m *TopicProgressMutation) AddCorrectAnswers(i int) {
	if m.addcorrect_answers != nil {
		*m.addcorrect_answers += i
	} else {
		m.addcorrect_answers = &i
	}
}

// AddedCorrectAnswers returns the value that was added to the "correct_answers" field in this mutation.
func (m *TopicProgressMutation) AddedCorrectAnswers() (r int, exists bool) {
	v := m.addcorrect_answers
	if v == nil {
		return
	}
	return *v, true
}

// ResetCorrectAnswers resets all changes to the "correct_answers" field.
func (m *TopicProgressMutation) ResetCorrectAnswers() {
	m.correct_answers = nil
	m.addcorrect_answers = nil
}

// SetLastAttempt sets the "last_attempt" field.
func (m *TopicProgressMutation) SetLastAttempt(t time.Time) {
	m.last_attempt = &t
}

// LastAttempt returns the value of the "last_attempt" field in the mutation.
func (m *TopicProgressMutation) LastAttempt() (r time.Time, exists bool) {
	v := m.last_attempt
	if v == nil {
		return
	}
	return *v, true
}

// OldLastAttempt returns the old "last_attempt" field's value of the TopicProgress entity.
// If the TopicProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicProgressMutation) OldLastAttempt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastAttempt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastAttempt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastAttempt: %w", err)
	}
	return oldValue.LastAttempt, nil
}

// ClearLastAttempt clears the value of the "last_attempt" field.
func (m *TopicProgressMutation) ClearLastAttempt() {
	m.last_attempt = nil
	m.clearedFields[topicprogress.FieldLastAttempt] = struct{}{}
}

// LastAttemptCleared returns if the "last_attempt" field was cleared in this mutation.
func (m *TopicProgressMutation) LastAttemptCleared() bool {
	_, ok := m.clearedFields[topicprogress.FieldLastAttempt]
	return ok
}

// ResetLastAttempt resets all changes to the "last_attempt" field.
func (m *TopicProgressMutation) ResetLastAttempt() {
	m.last_attempt = nil
	delete(m.clearedFields, topicprogress.FieldLastAttempt)
}

// SetIsCompleted sets the "is_completed" field.
func (m *TopicProgressMutation) SetIsCompleted(b bool) {
	m.is_completed = &b
}

// IsCompleted returns the value of the "is_completed" field in the mutation.
func (m *TopicProgressMutation) IsCompleted() (r bool, exists bool) {
	v := m.is_completed
	if v == nil {
		return
	}
	return *v, true
}

// OldIsCompleted returns the old "is_completed" field's value of the TopicProgress entity.
// If the TopicProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicProgressMutation) OldIsCompleted(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsCompleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsCompleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsCompleted: %w", err)
	}
	return oldValue.IsCompleted, nil
}

// ResetIsCompleted resets all changes to the "is_completed" field.
func (m *TopicProgressMutation) ResetIsCompleted() {
	m.is_completed = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TopicProgressMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TopicProgressMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TopicProgress entity.
// If the TopicProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicProgressMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TopicProgressMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the TopicProgressMutation builder.
func (m *TopicProgressMutation) Where(ps ...predicate.TopicProgress) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TopicProgressMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TopicProgressMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TopicProgress, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TopicProgressMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TopicProgressMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TopicProgress).
func (m *TopicProgressMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TopicProgressMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.level != nil {
		fields = append(fields, topicprogress.FieldLevel)
	}
	if m.topic != nil {
		fields = append(fields, topicprogress.FieldTopic)
	}
	if m.best_score != nil {
		fields = append(fields, topicprogress.FieldBestScore)
	}
	if m.attempts != nil {
		fields = append(fields, topicprogress.FieldAttempts)
	}
	if m.total_questions != nil {
		fields = append(fields, topicprogress.FieldTotalQuestions)
	}
	if m.correct_answers != nil {
		fields = append(fields, topicprogress.FieldCorrectAnswers)
	}
	if m.last_attempt != nil {
		fields = append(fields, topicprogress.FieldLastAttempt)
	}
	if m.is_completed != nil {
		fields = append(fields, topicprogress.FieldIsCompleted)
	}
	if m.created_at != nil {
		fields = append(fields, topicprogress.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TopicProgressMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case topicprogress.FieldLevel:
		return m.Level()
	case topicprogress.FieldTopic:
		return m.Topic()
	case topicprogress.FieldBestScore:
		return m.BestScore()
	case topicprogress.FieldAttempts:
		return m.Attempts()
	case topicprogress.FieldTotalQuestions:
		return m.TotalQuestions()
	case topicprogress.FieldCorrectAnswers:
		return m.CorrectAnswers()
	case topicprogress.FieldLastAttempt:
		return m.LastAttempt()
	case topicprogress.FieldIsCompleted:
		return m.IsCompleted()
	case topicprogress.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TopicProgressMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case topicprogress.FieldLevel:
		return m.OldLevel(ctx)
	case topicprogress.FieldTopic:
		return m.OldTopic(ctx)
	case topicprogress.FieldBestScore:
		return m.OldBestScore(ctx)
	case topicprogress.FieldAttempts:
		return m.OldAttempts(ctx)
	case topicprogress.FieldTotalQuestions:
		return m.OldTotalQuestions(ctx)
	case topicprogress.FieldCorrectAnswers:
		return m.OldCorrectAnswers(ctx)
	case topicprogress.FieldLastAttempt:
		return m.OldLastAttempt(ctx)
	case topicprogress.FieldIsCompleted:
		return m.OldIsCompleted(ctx)
	case topicprogress.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TopicProgress field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TopicProgressMutation) SetField(name string, value ent.Value) error {
	switch name {
	case topicprogress.FieldLevel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLevel(v)
		return nil
	case topicprogress.FieldTopic:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopic(v)
		return nil
	case topicprogress.FieldBestScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBestScore(v)
		return nil
	case topicprogress.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempts(v)
		return nil
	case topicprogress.FieldTotalQuestions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalQuestions(v)
		return nil
	case topicprogress.FieldCorrectAnswers:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrectAnswers(v)
		return nil
	case topicprogress.FieldLastAttempt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastAttempt(v)
		return nil
	case topicprogress.FieldIsCompleted:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsCompleted(v)
		return nil
	case topicprogress.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TopicProgress field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TopicProgressMutation) AddedFields() []string {
	var fields []string
	if m.addbest_score != nil {
		fields = append(fields, topicprogress.FieldBestScore)
	}
	if m.addattempts != nil {
		fields = append(fields, topicprogress.FieldAttempts)
	}
	if m.addtotal_questions != nil {
		fields = append(fields, topicprogress.FieldTotalQuestions)
	}
	if m.addcorrect_answers != nil {
		fields = append(fields, topicprogress.FieldCorrectAnswers)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TopicProgressMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case topicprogress.FieldBestScore:
		return m.AddedBestScore()
	case topicprogress.FieldAttempts:
		return m.AddedAttempts()
	case topicprogress.FieldTotalQuestions:
		return m.AddedTotalQuestions()
	case topicprogress.FieldCorrectAnswers:
		return m.AddedCorrectAnswers()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TopicProgressMutation) AddField(name string, value ent.Value) error {
	switch name {
	case topicprogress.FieldBestScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBestScore(v)
		return nil
	case topicprogress.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempts(v)
		return nil
	case topicprogress.FieldTotalQuestions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalQuestions(v)
		return nil
	case topicprogress.FieldCorrectAnswers:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCorrectAnswers(v)
		return nil
	}
	return fmt.Errorf("unknown TopicProgress numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TopicProgressMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(topicprogress.FieldLastAttempt) {
		fields = append(fields, topicprogress.FieldLastAttempt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TopicProgressMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TopicProgressMutation) ClearField(name string) error {
	switch name {
	case topicprogress.FieldLastAttempt:
		m.ClearLastAttempt()
		return nil
	}
	return fmt.Errorf("unknown TopicProgress nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TopicProgressMutation) ResetField(name string) error {
	switch name {
	case topicprogress.FieldLevel:
		m.ResetLevel()
		return nil
	case topicprogress.FieldTopic:
		m.ResetTopic()
		return nil
	case topicprogress.FieldBestScore:
		m.ResetBestScore()
		return nil
	case topicprogress.FieldAttempts:
		m.ResetAttempts()
		return nil
	case topicprogress.FieldTotalQuestions:
		m.ResetTotalQuestions()
		return nil
	case topicprogress.FieldCorrectAnswers:
		m.ResetCorrectAnswers()
		return nil
	case topicprogress.FieldLastAttempt:
		m.ResetLastAttempt()
		return nil
	case topicprogress.FieldIsCompleted:
		m.ResetIsCompleted()
		return nil
	case topicprogress.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown TopicProgress field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TopicProgressMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TopicProgressMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TopicProgressMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TopicProgressMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TopicProgressMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TopicProgressMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TopicProgressMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown TopicProgress unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TopicProgressMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown TopicProgress edge %s", name)
}

// UserProgressMutation represents an operation that mutates the UserProgress nodes in the graph.
type UserProgressMutation struct {
	config
	op                    Op
	typ                   string
	id                    *int
	current_level         *string
	unlocked_levels       *[]string
	appendunlocked_levels []string
	total_score           *int
	addtotal_score        *int
	current_streak        *int
	addcurrent_streak     *int
	best_streak           *int
	addbest_streak        *int
	total_questions       *int
	addtotal_questions    *int
	correct_answers       *int
	addcorrect_answers    *int
	last_played           *time.Time
	created_at            *time.Time
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*UserProgress, error)
	predicates            []predicate.UserProgress
}

var _ ent.Mutation = (*UserProgressMutation)(nil)

// userprogressOption allows management of the mutation configuration using functional options.
type userprogressOption func(*UserProgressMutation)

// newUserProgressMutation creates new mutation for the UserProgress entity.
func newUserProgressMutation(c config, op Op, opts ...userprogressOption) *UserProgressMutation {
	m := &UserProgressMutation{
		config:        c,
		op:            op,
		typ:           TypeUserProgress,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserProgressID sets the ID field of the mutation.
func withUserProgressID(id int) userprogressOption {
	return func(m *UserProgressMutation) {
		var (
			err   error
			once  sync.Once
			value *UserProgress
		)
		m.oldValue = func(ctx context.Context) (*UserProgress, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().UserProgress.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUserProgress sets the old UserProgress of the mutation.
func withUserProgress(node *UserProgress) userprogressOption {
	return func(m *UserProgressMutation) {
		m.oldValue = func(context.Context) (*UserProgress, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserProgressMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserProgressMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserProgressMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserProgressMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().UserProgress.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCurrentLevel sets the "current_level" field.
func (m *UserProgressMutation) SetCurrentLevel(s string) {
	m.current_level = &s
}

// CurrentLevel returns the value of the "current_level" field in the mutation.
func (m *UserProgressMutation) CurrentLevel() (r string, exists bool) {
	v := m.current_level
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentLevel returns the old "current_level" field's value of the UserProgress entity.
// If the UserProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserProgressMutation) OldCurrentLevel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentLevel: %w", err)
	}
	return oldValue.CurrentLevel, nil
}

// ResetCurrentLevel resets all changes to the "current_level" field.
func (m *UserProgressMutation) ResetCurrentLevel() {
	m.current_level = nil
}

// SetUnlockedLevels sets the "unlocked_levels" field.
func (m *UserProgressMutation) SetUnlockedLevels(s []string) {
	m.unlocked_levels = &s
	m.appendunlocked_levels = nil
}

// UnlockedLevels returns the value of the "unlocked_levels" field in the mutation.
func (m *UserProgressMutation) UnlockedLevels() (r []string, exists bool) {
	v := m.unlocked_levels
	if v == nil {
		return
	}
	return *v, true
}

// OldUnlockedLevels returns the old "unlocked_levels" field's value of the UserProgress entity.
// If the UserProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserProgressMutation) OldUnlockedLevels(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnlockedLevels is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnlockedLevels requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnlockedLevels: %w", err)
	}
	return oldValue.UnlockedLevels, nil
}

// AppendUnlockedLevels adds s to the "unlocked_levels" field.
func (m *UserProgressMutation) AppendUnlockedLevels(s []string) {
	m.appendunlocked_levels = append(m.appendunlocked_levels, s...)
}

// AppendedUnlockedLevels returns the list of values that were appended to the "unlocked_levels" field in this mutation.
func (m *UserProgressMutation) AppendedUnlockedLevels() ([]string, bool) {
	if len(m.appendunlocked_levels) == 0 {
		return nil, false
	}
	return m.appendunlocked_levels, true
}

// ResetUnlockedLevels resets all changes to the "unlocked_levels" field.
func (m *UserProgressMutation) ResetUnlockedLevels() {
	m.unlocked_levels = nil
	m.appendunlocked_levels = nil
}

// SetTotalScore sets the "total_score" field.
func (m *UserProgressMutation) SetTotalScore(i int) {
	m.total_score = &i
	m.addtotal_score = nil
}

// TotalScore returns the value of the "total_score" field in the mutation.
func (m *UserProgressMutation) TotalScore() (r int, exists bool) {
	v := m.total_score
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalScore returns the old "total_score" field's value of the UserProgress entity.
// If the UserProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserProgressMutation) OldTotalScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalScore: %w", err)
	}
	return oldValue.TotalScore, nil
}

// AddTotalScore adds i to the "total_score" field.
func (m *UserProgressMutation) AddTotalScore(i int) {
	if m.addtotal_score != nil {
		*m.addtotal_score += i
	} else {
		m.addtotal_score = &i
	}
}

// AddedTotalScore returns the value that was added to the "total_score" field in this mutation.
func (m *UserProgressMutation) AddedTotalScore() (r int, exists bool) {
	v := m.addtotal_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalScore resets all changes to the "total_score" field.
func (m *UserProgressMutation) ResetTotalScore() {
	m.total_score = nil
	m.addtotal_score = nil
}

// SetCurrentStreak sets the "current_streak" field.
func (m *UserProgressMutation) SetCurrentStreak(i int) {
	m.current_streak = &i
	m.addcurrent_streak = nil
}

// CurrentStreak returns the value of the "current_streak" field in the mutation.
func (m *UserProgressMutation) CurrentStreak() (r int, exists bool) {
	v := m.current_streak
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentStreak returns the old "current_streak" field's value of the UserProgress entity.
// If the UserProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserProgressMutation) OldCurrentStreak(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentStreak is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentStreak requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentStreak: %w", err)
	}
	return oldValue.CurrentStreak, nil
}

// AddCurrentStreak adds i to the "current_streak" field.
func (m *UserProgressMutation) AddCurrentStreak(i int) {
	if m.addcurrent_streak != nil {
		*m.addcurrent_streak += i
	} else {
		m.addcurrent_streak = &i
	}
}

// AddedCurrentStreak returns the value that was added to the "current_streak" field in this mutation.
func (m *UserProgressMutation) AddedCurrentStreak() (r int, exists bool) {
	v := m.addcurrent_streak
	if v == nil {
		return
	}
	return *v, true
}

// ResetCurrentStreak resets all changes to the "current_streak" field.
func (m *UserProgressMutation) ResetCurrentStreak() {
	m.current_streak = nil
	m.addcurrent_streak = nil
}

// SetBestStreak sets the "best_streak" field.
func (m *UserProgressMutation) SetBestStreak(i int) {
	m.best_streak = &i
	m.addbest_streak = nil
}

// BestStreak returns the value of the "best_streak" field in the mutation.
func (m *UserProgressMutation) BestStreak() (r int, exists bool) {
	v := m.best_streak
	if v == nil {
		return
	}
	return *v, true
}

// OldBestStreak returns the old "best_streak" field's value of the UserProgress entity.
// If the UserProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserProgressMutation) OldBestStreak(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBestStreak is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBestStreak requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBestStreak: %w", err)
	}
	return oldValue.BestStreak, nil
}

// AddBestStreak adds i to the "best_streak" field.
func (m *UserProgressMutation) AddBestStreak(i int) {
	if m.addbest_streak != nil {
		*m.addbest_streak += i
	} else {
		m.addbest_streak = &i
	}
}

// AddedBestStreak returns the value that was added to the "best_streak" field in this mutation.
func (m *UserProgressMutation) AddedBestStreak() (r int, exists bool) {
	v := m.addbest_streak
	if v == nil {
		return
	}
	return *v, true
}

// ResetBestStreak resets all changes to the "best_streak" field.
func (m *UserProgressMutation) ResetBestStreak() {
	m.best_streak = nil
	m.addbest_streak = nil
}

// SetTotalQuestions sets the "total_questions" field.
func (m *UserProgressMutation) SetTotalQuestions(i int) {
	m.total_questions = &i
	m.addtotal_questions = nil
}

// TotalQuestions returns the value of the "total_questions" field in the mutation.
func (m *UserProgressMutation) TotalQuestions() (r int, exists bool) {
	v := m.total_questions
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalQuestions returns the old "total_questions" field's value of the UserProgress entity.
// If the UserProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserProgressMutation) OldTotalQuestions(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalQuestions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalQuestions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalQuestions: %w", err)
	}
	return oldValue.TotalQuestions, nil
}

// AddTotalQuestions adds i to the "total_questions" field.
func (m *UserProgressMutation) AddTotalQuestions(i int) {
	if m.addtotal_questions != nil {
		*m.addtotal_questions += i
	} else {
		m.addtotal_questions = &i
	}
}

// AddedTotalQuestions returns the value that was added to the "total_questions" field in this mutation.
func (m *UserProgressMutation) AddedTotalQuestions() (r int, exists bool) {
	v := m.addtotal_questions
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalQuestions resets all changes to the "total_questions" field.
func (m *UserProgressMutation) ResetTotalQuestions() {
	m.total_questions = nil
	m.addtotal_questions = nil
}

// SetCorrectAnswers sets the "correct_answers" field.
func (m *UserProgressMutation) SetCorrectAnswers(i int) {
	m.correct_answers = &i
	m.addcorrect_answers = nil
}

// CorrectAnswers returns the value of the "correct_answers" field in the mutation.
func (m *UserProgressMutation) CorrectAnswers() (r int, exists bool) {
	v := m.correct_answers
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrectAnswers returns the old "correct_answers" field's value of the UserProgress entity.
// If the UserProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserProgressMutation) OldCorrectAnswers(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrectAnswers is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrectAnswers requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrectAnswers: %w", err)
	}
	return oldValue.CorrectAnswers, nil
}

// AddCorrectAnswers adds i to the "correct_answers" field.
func (m *UserProgressMutation) AddCorrectAnswers(i int) {
	if m.addcorrect_answers != nil {
		*m.addcorrect_answers += i
	} else {
		m.addcorrect_answers = &i
	}
}

// AddedCorrectAnswers returns the value that was added to the "correct_answers" field in this mutation.
func (m *UserProgressMutation) AddedCorrectAnswers() (r int, exists bool) {
	v := m.addcorrect_answers
	if v == nil {
		return
	}
	return *v, true
}

// ResetCorrectAnswers resets all changes to the "correct_answers" field.
func (m *UserProgressMutation) ResetCorrectAnswers() {
	m.correct_answers = nil
	m.addcorrect_answers = nil
}

// SetLastPlayed sets the "last_played" field.
func (m *UserProgressMutation) SetLastPlayed(t time.Time) {
	m.last_played = &t
}

// LastPlayed returns the value of the "last_played" field in the mutation.
func (m *UserProgressMutation) LastPlayed() (r time.Time, exists bool) {
	v := m.last_played
	if v == nil {
		return
	}
	return *v, true
}

// OldLastPlayed returns the old "last_played" field's value of the UserProgress entity.
// If the UserProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserProgressMutation) OldLastPlayed(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastPlayed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastPlayed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastPlayed: %w", err)
	}
	return oldValue.LastPlayed, nil
}

// ClearLastPlayed clears the value of the "last_played" field.
func (m *UserProgressMutation) ClearLastPlayed() {
	m.last_played = nil
	m.clearedFields[userprogress.FieldLastPlayed] = struct{}{}
}

// LastPlayedCleared returns if the "last_played" field was cleared in this mutation.
func (m *UserProgressMutation) LastPlayedCleared() bool {
	_, ok := m.clearedFields[userprogress.FieldLastPlayed]
	return ok
}

// ResetLastPlayed resets all changes to the "last_played" field.
func (m *UserProgressMutation) ResetLastPlayed() {
	m.last_played = nil
	delete(m.clearedFields, userprogress.FieldLastPlayed)
}

// SetCreatedAt sets the "created_at" field.
func (m *UserProgressMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserProgressMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the UserProgress entity.
// If the UserProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserProgressMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserProgressMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the UserProgressMutation builder.
func (m *UserProgressMutation) Where(ps ...predicate.UserProgress) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserProgressMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserProgressMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.UserProgress, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserProgressMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserProgressMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (UserProgress).
func (m *UserProgressMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserProgressMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.current_level != nil {
		fields = append(fields, userprogress.FieldCurrentLevel)
	}
	if m.unlocked_levels != nil {
		fields = append(fields, userprogress.FieldUnlockedLevels)
	}
	if m.total_score != nil {
		fields = append(fields, userprogress.FieldTotalScore)
	}
	if m.current_streak != nil {
		fields = append(fields, userprogress.FieldCurrentStreak)
	}
	if m.best_streak != nil {
		fields = append(fields, userprogress.FieldBestStreak)
	}
	if m.total_questions != nil {
		fields = append(fields, userprogress.FieldTotalQuestions)
	}
	if m.correct_answers != nil {
		fields = append(fields, userprogress.FieldCorrectAnswers)
	}
	if m.last_played != nil {
		fields = append(fields, userprogress.FieldLastPlayed)
	}
	if m.created_at != nil {
		fields = append(fields, userprogress.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserProgressMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case userprogress.FieldCurrentLevel:
		return m.CurrentLevel()
	case userprogress.FieldUnlockedLevels:
		return m.UnlockedLevels()
	case userprogress.FieldTotalScore:
		return m.TotalScore()
	case userprogress.FieldCurrentStreak:
		return m.CurrentStreak()
	case userprogress.FieldBestStreak:
		return m.BestStreak()
	case userprogress.FieldTotalQuestions:
		return m.TotalQuestions()
	case userprogress.FieldCorrectAnswers:
		return m.CorrectAnswers()
	case userprogress.FieldLastPlayed:
		return m.LastPlayed()
	case userprogress.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserProgressMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case userprogress.FieldCurrentLevel:
		return m.OldCurrentLevel(ctx)
	case userprogress.FieldUnlockedLevels:
		return m.OldUnlockedLevels(ctx)
	case userprogress.FieldTotalScore:
		return m.OldTotalScore(ctx)
	case userprogress.FieldCurrentStreak:
		return m.OldCurrentStreak(ctx)
	case userprogress.FieldBestStreak:
		return m.OldBestStreak(ctx)
	case userprogress.FieldTotalQuestions:
		return m.OldTotalQuestions(ctx)
	case userprogress.FieldCorrectAnswers:
		return m.OldCorrectAnswers(ctx)
	case userprogress.FieldLastPlayed:
		return m.OldLastPlayed(ctx)
	case userprogress.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown UserProgress field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserProgressMutation) SetField(name string, value ent.Value) error {
	switch name {
	case userprogress.FieldCurrentLevel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentLevel(v)
		return nil
	case userprogress.FieldUnlockedLevels:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnlockedLevels(v)
		return nil
	case userprogress.FieldTotalScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalScore(v)
		return nil
	case userprogress.FieldCurrentStreak:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentStreak(v)
		return nil
	case userprogress.FieldBestStreak:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBestStreak(v)
		return nil
	case userprogress.FieldTotalQuestions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalQuestions(v)
		return nil
	case userprogress.FieldCorrectAnswers:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrectAnswers(v)
		return nil
	case userprogress.FieldLastPlayed:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastPlayed(v)
		return nil
	case userprogress.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown UserProgress field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserProgressMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_score != nil {
		fields = append(fields, userprogress.FieldTotalScore)
	}
	if m.addcurrent_streak != nil {
		fields = append(fields, userprogress.FieldCurrentStreak)
	}
	if m.addbest_streak != nil {
		fields = append(fields, userprogress.FieldBestStreak)
	}
	if m.addtotal_questions != nil {
		fields = append(fields, userprogress.FieldTotalQuestions)
	}
	if m.addcorrect_answers != nil {
		fields = append(fields, userprogress.FieldCorrectAnswers)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserProgressMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case userprogress.FieldTotalScore:
		return m.AddedTotalScore()
	case userprogress.FieldCurrentStreak:
		return m.AddedCurrentStreak()
	case userprogress.FieldBestStreak:
		return m.AddedBestStreak()
	case userprogress.FieldTotalQuestions:
		return m.AddedTotalQuestions()
	case userprogress.FieldCorrectAnswers:
		return m.AddedCorrectAnswers()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserProgressMutation) AddField(name string, value ent.Value) error {
	switch name {
	case userprogress.FieldTotalScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalScore(v)
		return nil
	case userprogress.FieldCurrentStreak:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCurrentStreak(v)
		return nil
	case userprogress.FieldBestStreak:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBestStreak(v)
		return nil
	case userprogress.FieldTotalQuestions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalQuestions(v)
		return nil
	case userprogress.FieldCorrectAnswers:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCorrectAnswers(v)
		return nil
	}
	return fmt.Errorf("unknown UserProgress numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserProgressMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(userprogress.FieldLastPlayed) {
		fields = append(fields, userprogress.FieldLastPlayed)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserProgressMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserProgressMutation) ClearField(name string) error {
	switch name {
	case userprogress.FieldLastPlayed:
		m.ClearLastPlayed()
		return nil
	}
	return fmt.Errorf("unknown UserProgress nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserProgressMutation) ResetField(name string) error {
	switch name {
	case userprogress.FieldCurrentLevel:
		m.ResetCurrentLevel()
		return nil
	case userprogress.FieldUnlockedLevels:
		m.ResetUnlockedLevels()
		return nil
	case userprogress.FieldTotalScore:
		m.ResetTotalScore()
		return nil
	case userprogress.FieldCurrentStreak:
		m.ResetCurrentStreak()
		return nil
	case userprogress.FieldBestStreak:
		m.ResetBestStreak()
		return nil
	case userprogress.FieldTotalQuestions:
		m.ResetTotalQuestions()
		return nil
	case userprogress.FieldCorrectAnswers:
		m.ResetCorrectAnswers()
		return nil
	case userprogress.FieldLastPlayed:
		m.ResetLastPlayed()
		return nil
	case userprogress.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown UserProgress field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserProgressMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserProgressMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserProgressMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserProgressMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserProgressMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserProgressMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserProgressMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown UserProgress unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserProgressMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown UserProgress edge %s", name)
}
