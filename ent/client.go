// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/minhtc/opicly/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/minhtc/opicly/ent/gamesession"
	"github.com/minhtc/opicly/ent/llmrequest"
	"github.com/minhtc/opicly/ent/questioncache"
	"github.com/minhtc/opicly/ent/setting"
	"github.com/minhtc/opicly/ent/topicprogress"
	"github.com/minhtc/opicly/ent/userprogress"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// GameSession is the client for interacting with the GameSession builders.
	GameSession *GameSessionClient
	// LLMRequest is the client for interacting with the LLMRequest builders.
	LLMRequest *LLMRequestClient
	// QuestionCache is the client for interacting with the QuestionCache builders.
	QuestionCache *QuestionCacheClient
	// Setting is the client for interacting with the Setting builders.
	Setting *SettingClient
	// TopicProgress is the client for interacting with the TopicProgress builders.
	TopicProgress *TopicProgressClient
	// UserProgress is the client for interacting with the UserProgress builders.
	UserProgress *UserProgressClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.GameSession = NewGameSessionClient(c.config)
	c.LLMRequest = NewLLMRequestClient(c.config)
	c.QuestionCache = NewQuestionCacheClient(c.config)
	c.Setting = NewSettingClient(c.config)
	c.TopicProgress = NewTopicProgressClient(c.config)
	c.UserProgress = NewUserProgressClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:           ctx,
		config:        cfg,
		GameSession:   NewGameSessionClient(cfg),
		LLMRequest:    NewLLMRequestClient(cfg),
		QuestionCache: NewQuestionCacheClient(cfg),
		Setting:       NewSettingClient(cfg),
		TopicProgress: NewTopicProgressClient(cfg),
		UserProgress:  NewUserProgressClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:           ctx,
		config:        cfg,
		GameSession:   NewGameSessionClient(cfg),
		LLMRequest:    NewLLMRequestClient(cfg),
		QuestionCache: NewQuestionCacheClient(cfg),
		Setting:       NewSettingClient(cfg),
		TopicProgress: NewTopicProgressClient(cfg),
		UserProgress:  NewUserProgressClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		GameSession.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.GameSession, c.LLMRequest, c.QuestionCache, c.Setting, c.TopicProgress,
		c.UserProgress,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.GameSession, c.LLMRequest, c.QuestionCache, c.Setting, c.TopicProgress,
		c.UserProgress,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *GameSessionMutation:
		return c.GameSession.mutate(ctx, m)
	case *LLMRequestMutation:
		return c.LLMRequest.mutate(ctx, m)
	case *QuestionCacheMutation:
		return c.QuestionCache.mutate(ctx, m)
	case *SettingMutation:
		return c.Setting.mutate(ctx, m)
	case *TopicProgressMutation:
		return c.TopicProgress.mutate(ctx, m)
	case *UserProgressMutation:
		return c.UserProgress.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// GameSessionClient is a client for the GameSession schema.
type GameSessionClient struct {
	config
}

// NewGameSessionClient returns a client for the GameSession from the given config.
func NewGameSessionClient(c config) *GameSessionClient {
	return &GameSessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `gamesession.Hooks(f(g(h())))`.
func (c *GameSessionClient) Use(hooks ...Hook) {
	c.hooks.GameSession = append(c.hooks.GameSession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `gamesession.Intercept(f(g(h())))`.
func (c *GameSessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.GameSession = append(c.inters.GameSession, interceptors...)
}

// Create returns a builder for creating a GameSession entity.
func (c *GameSessionClient) Create() *GameSessionCreate {
	mutation := newGameSessionMutation(c.config, OpCreate)
	return &GameSessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of GameSession entities.
func (c *GameSessionClient) CreateBulk(builders ...*GameSessionCreate) *GameSessionCreateBulk {
	return &GameSessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *GameSessionClient) MapCreateBulk(slice any, setFunc func(*GameSessionCreate, int)) *GameSessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &GameSessionCreateBulk{err: fmt.Errorf("calling to GameSessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*GameSessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &GameSessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for GameSession.
func (c *GameSessionClient) Update() *GameSessionUpdate {
	mutation := newGameSessionMutation(c.config, OpUpdate)
	return &GameSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *GameSessionClient) UpdateOne(_m *GameSession) *GameSessionUpdateOne {
	mutation := newGameSessionMutation(c.config, OpUpdateOne, withGameSession(_m))
	return &GameSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *GameSessionClient) UpdateOneID(id int) *GameSessionUpdateOne {
	mutation := newGameSessionMutation(c.config, OpUpdateOne, withGameSessionID(id))
	return &GameSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for GameSession.
func (c *GameSessionClient) Delete() *GameSessionDelete {
	mutation := newGameSessionMutation(c.config, OpDelete)
	return &GameSessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *GameSessionClient) DeleteOne(_m *GameSession) *GameSessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *GameSessionClient) DeleteOneID(id int) *GameSessionDeleteOne {
	builder := c.Delete().Where(gamesession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &GameSessionDeleteOne{builder}
}

// Query returns a query builder for GameSession.
func (c *GameSessionClient) Query() *GameSessionQuery {
	return &GameSessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeGameSession},
		inters: c.Interceptors(),
	}
}

// Get returns a GameSession entity by its id.
func (c *GameSessionClient) Get(ctx context.Context, id int) (*GameSession, error) {
	return c.Query().Where(gamesession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *GameSessionClient) GetX(ctx context.Context, id int) *GameSession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *GameSessionClient) Hooks() []Hook {
	return c.hooks.GameSession
}

// Interceptors returns the client interceptors.
func (c *GameSessionClient) Interceptors() []Interceptor {
	return c.inters.GameSession
}

func (c *GameSessionClient) mutate(ctx context.Context, m *GameSessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&GameSessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&GameSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&GameSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&GameSessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown GameSession mutation op: %q", m.Op())
	}
}

// LLMRequestClient is a client for the LLMRequest schema.
type LLMRequestClient struct {
	config
}

// NewLLMRequestClient returns a client for the LLMRequest from the given config.
func NewLLMRequestClient(c config) *LLMRequestClient {
	return &LLMRequestClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `llmrequest.Hooks(f(g(h())))`.
func (c *LLMRequestClient) Use(hooks ...Hook) {
	c.hooks.LLMRequest = append(c.hooks.LLMRequest, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `llmrequest.Intercept(f(g(h())))`.
func (c *LLMRequestClient) Intercept(interceptors ...Interceptor) {
	c.inters.LLMRequest = append(c.inters.LLMRequest, interceptors...)
}

// Create returns a builder for creating a LLMRequest entity.
func (c *LLMRequestClient) Create() *LLMRequestCreate {
	mutation := newLLMRequestMutation(c.config, OpCreate)
	return &LLMRequestCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LLMRequest entities.
func (c *LLMRequestClient) CreateBulk(builders ...*LLMRequestCreate) *LLMRequestCreateBulk {
	return &LLMRequestCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LLMRequestClient) MapCreateBulk(slice any, setFunc func(*LLMRequestCreate, int)) *LLMRequestCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LLMRequestCreateBulk{err: fmt.Errorf("calling to LLMRequestClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LLMRequestCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LLMRequestCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LLMRequest.
func (c *LLMRequestClient) Update() *LLMRequestUpdate {
	mutation := newLLMRequestMutation(c.config, OpUpdate)
	return &LLMRequestUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LLMRequestClient) UpdateOne(_m *LLMRequest) *LLMRequestUpdateOne {
	mutation := newLLMRequestMutation(c.config, OpUpdateOne, withLLMRequest(_m))
	return &LLMRequestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LLMRequestClient) UpdateOneID(id int) *LLMRequestUpdateOne {
	mutation := newLLMRequestMutation(c.config, OpUpdateOne, withLLMRequestID(id))
	return &LLMRequestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LLMRequest.
func (c *LLMRequestClient) Delete() *LLMRequestDelete {
	mutation := newLLMRequestMutation(c.config, OpDelete)
	return &LLMRequestDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LLMRequestClient) DeleteOne(_m *LLMRequest) *LLMRequestDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LLMRequestClient) DeleteOneID(id int) *LLMRequestDeleteOne {
	builder := c.Delete().Where(llmrequest.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LLMRequestDeleteOne{builder}
}

// Query returns a query builder for LLMRequest.
func (c *LLMRequestClient) Query() *LLMRequestQuery {
	return &LLMRequestQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLLMRequest},
		inters: c.Interceptors(),
	}
}

// Get returns a LLMRequest entity by its id.
func (c *LLMRequestClient) Get(ctx context.Context, id int) (*LLMRequest, error) {
	return c.Query().Where(llmrequest.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LLMRequestClient) GetX(ctx context.Context, id int) *LLMRequest {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LLMRequestClient) Hooks() []Hook {
	return c.hooks.LLMRequest
}

// Interceptors returns the client interceptors.
func (c *LLMRequestClient) Interceptors() []Interceptor {
	return c.inters.LLMRequest
}

func (c *LLMRequestClient) mutate(ctx context.Context, m *LLMRequestMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LLMRequestCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LLMRequestUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LLMRequestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LLMRequestDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LLMRequest mutation op: %q", m.Op())
	}
}

// QuestionCacheClient is a client for the QuestionCache schema.
type QuestionCacheClient struct {
	config
}

// NewQuestionCacheClient returns a client for the QuestionCache from the given config.
func NewQuestionCacheClient(c config) *QuestionCacheClient {
	return &QuestionCacheClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `questioncache.Hooks(f(g(h())))`.
func (c *QuestionCacheClient) Use(hooks ...Hook) {
	c.hooks.QuestionCache = append(c.hooks.QuestionCache, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `questioncache.Intercept(f(g(h())))`.
func (c *QuestionCacheClient) Intercept(interceptors ...Interceptor) {
	c.inters.QuestionCache = append(c.inters.QuestionCache, interceptors...)
}

// Create returns a builder for creating a QuestionCache entity.
func (c *QuestionCacheClient) Create() *QuestionCacheCreate {
	mutation := newQuestionCacheMutation(c.config, OpCreate)
	return &QuestionCacheCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of QuestionCache entities.
func (c *QuestionCacheClient) CreateBulk(builders ...*QuestionCacheCreate) *QuestionCacheCreateBulk {
	return &QuestionCacheCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *QuestionCacheClient) MapCreateBulk(slice any, setFunc func(*QuestionCacheCreate, int)) *QuestionCacheCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &QuestionCacheCreateBulk{err: fmt.Errorf("calling to QuestionCacheClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*QuestionCacheCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &QuestionCacheCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for QuestionCache.
func (c *QuestionCacheClient) Update() *QuestionCacheUpdate {
	mutation := newQuestionCacheMutation(c.config, OpUpdate)
	return &QuestionCacheUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *QuestionCacheClient) UpdateOne(_m *QuestionCache) *QuestionCacheUpdateOne {
	mutation := newQuestionCacheMutation(c.config, OpUpdateOne, withQuestionCache(_m))
	return &QuestionCacheUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *QuestionCacheClient) UpdateOneID(id int) *QuestionCacheUpdateOne {
	mutation := newQuestionCacheMutation(c.config, OpUpdateOne, withQuestionCacheID(id))
	return &QuestionCacheUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for QuestionCache.
func (c *QuestionCacheClient) Delete() *QuestionCacheDelete {
	mutation := newQuestionCacheMutation(c.config, OpDelete)
	return &QuestionCacheDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *QuestionCacheClient) DeleteOne(_m *QuestionCache) *QuestionCacheDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *QuestionCacheClient) DeleteOneID(id int) *QuestionCacheDeleteOne {
	builder := c.Delete().Where(questioncache.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &QuestionCacheDeleteOne{builder}
}

// Query returns a query builder for QuestionCache.
func (c *QuestionCacheClient) Query() *QuestionCacheQuery {
	return &QuestionCacheQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeQuestionCache},
		inters: c.Interceptors(),
	}
}

// Get returns a QuestionCache entity by its id.
func (c *QuestionCacheClient) Get(ctx context.Context, id int) (*QuestionCache, error) {
	return c.Query().Where(questioncache.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *QuestionCacheClient) GetX(ctx context.Context, id int) *QuestionCache {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *QuestionCacheClient) Hooks() []Hook {
	return c.hooks.QuestionCache
}

// Interceptors returns the client interceptors.
func (c *QuestionCacheClient) Interceptors() []Interceptor {
	return c.inters.QuestionCache
}

func (c *QuestionCacheClient) mutate(ctx context.Context, m *QuestionCacheMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&QuestionCacheCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&QuestionCacheUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&QuestionCacheUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&QuestionCacheDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown QuestionCache mutation op: %q", m.Op())
	}
}

// SettingClient is a client for the Setting schema.
type SettingClient struct {
	config
}

// NewSettingClient returns a client for the Setting from the given config.
func NewSettingClient(c config) *SettingClient {
	return &SettingClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `setting.Hooks(f(g(h())))`.
func (c *SettingClient) Use(hooks ...Hook) {
	c.hooks.Setting = append(c.hooks.Setting, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `setting.Intercept(f(g(h())))`.
func (c *SettingClient) Intercept(interceptors ...Interceptor) {
	c.inters.Setting = append(c.inters.Setting, interceptors...)
}

// Create returns a builder for creating a Setting entity.
func (c *SettingClient) Create() *SettingCreate {
	mutation := newSettingMutation(c.config, OpCreate)
	return &SettingCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Setting entities.
func (c *SettingClient) CreateBulk(builders ...*SettingCreate) *SettingCreateBulk {
	return &SettingCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SettingClient) MapCreateBulk(slice any, setFunc func(*SettingCreate, int)) *SettingCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SettingCreateBulk{err: fmt.Errorf("calling to SettingClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SettingCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SettingCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Setting.
func (c *SettingClient) Update() *SettingUpdate {
	mutation := newSettingMutation(c.config, OpUpdate)
	return &SettingUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SettingClient) UpdateOne(_m *Setting) *SettingUpdateOne {
	mutation := newSettingMutation(c.config, OpUpdateOne, withSetting(_m))
	return &SettingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SettingClient) UpdateOneID(id int) *SettingUpdateOne {
	mutation := newSettingMutation(c.config, OpUpdateOne, withSettingID(id))
	return &SettingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Setting.
func (c *SettingClient) Delete() *SettingDelete {
	mutation := newSettingMutation(c.config, OpDelete)
	return &SettingDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SettingClient) DeleteOne(_m *Setting) *SettingDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SettingClient) DeleteOneID(id int) *SettingDeleteOne {
	builder := c.Delete().Where(setting.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SettingDeleteOne{builder}
}

// Query returns a query builder for Setting.
func (c *SettingClient) Query() *SettingQuery {
	return &SettingQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSetting},
		inters: c.Interceptors(),
	}
}

// Get returns a Setting entity by its id.
func (c *SettingClient) Get(ctx context.Context, id int) (*Setting, error) {
	return c.Query().Where(setting.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SettingClient) GetX(ctx context.Context, id int) *Setting {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SettingClient) Hooks() []Hook {
	return c.hooks.Setting
}

// Interceptors returns the client interceptors.
func (c *SettingClient) Interceptors() []Interceptor {
	return c.inters.Setting
}

func (c *SettingClient) mutate(ctx context.Context, m *SettingMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SettingCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SettingUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SettingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SettingDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Setting mutation op: %q", m.Op())
	}
}

// TopicProgressClient is a client for the TopicProgress schema.
type TopicProgressClient struct {
	config
}

// NewTopicProgressClient returns a client for the TopicProgress from the given config.
func NewTopicProgressClient(c config) *TopicProgressClient {
	return &TopicProgressClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `topicprogress.Hooks(f(g(h())))`.
func (c *TopicProgressClient) Use(hooks ...Hook) {
	c.hooks.TopicProgress = append(c.hooks.TopicProgress, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `topicprogress.Intercept(f(g(h())))`.
func (c *TopicProgressClient) Intercept(interceptors ...Interceptor) {
	c.inters.TopicProgress = append(c.inters.TopicProgress, interceptors...)
}

// Create returns a builder for creating a TopicProgress entity.
func (c *TopicProgressClient) Create() *TopicProgressCreate {
	mutation := newTopicProgressMutation(c.config, OpCreate)
	return &TopicProgressCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TopicProgress entities.
func (c *TopicProgressClient) CreateBulk(builders ...*TopicProgressCreate) *TopicProgressCreateBulk {
	return &TopicProgressCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TopicProgressClient) MapCreateBulk(slice any, setFunc func(*TopicProgressCreate, int)) *TopicProgressCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TopicProgressCreateBulk{err: fmt.Errorf("calling to TopicProgressClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TopicProgressCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TopicProgressCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TopicProgress.
func (c *TopicProgressClient) Update() *TopicProgressUpdate {
	mutation := newTopicProgressMutation(c.config, OpUpdate)
	return &TopicProgressUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TopicProgressClient) UpdateOne(_m *TopicProgress) *TopicProgressUpdateOne {
	mutation := newTopicProgressMutation(c.config, OpUpdateOne, withTopicProgress(_m))
	return &TopicProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TopicProgressClient) UpdateOneID(id int) *TopicProgressUpdateOne {
	mutation := newTopicProgressMutation(c.config, OpUpdateOne, withTopicProgressID(id))
	return &TopicProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TopicProgress.
func (c *TopicProgressClient) Delete() *TopicProgressDelete {
	mutation := newTopicProgressMutation(c.config, OpDelete)
	return &TopicProgressDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TopicProgressClient) DeleteOne(_m *TopicProgress) *TopicProgressDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TopicProgressClient) DeleteOneID(id int) *TopicProgressDeleteOne {
	builder := c.Delete().Where(topicprogress.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TopicProgressDeleteOne{builder}
}

// Query returns a query builder for TopicProgress.
func (c *TopicProgressClient) Query() *TopicProgressQuery {
	return &TopicProgressQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTopicProgress},
		inters: c.Interceptors(),
	}
}

// Get returns a TopicProgress entity by its id.
func (c *TopicProgressClient) Get(ctx context.Context, id int) (*TopicProgress, error) {
	return c.Query().Where(topicprogress.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TopicProgressClient) GetX(ctx context.Context, id int) *TopicProgress {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TopicProgressClient) Hooks() []Hook {
	return c.hooks.TopicProgress
}

// Interceptors returns the client interceptors.
func (c *TopicProgressClient) Interceptors() []Interceptor {
	return c.inters.TopicProgress
}

func (c *TopicProgressClient) mutate(ctx context.Context, m *TopicProgressMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TopicProgressCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TopicProgressUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TopicProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TopicProgressDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TopicProgress mutation op: %q", m.Op())
	}
}

// UserProgressClient is a client for the UserProgress schema.
type UserProgressClient struct {
	config
}

// NewUserProgressClient returns a client for the UserProgress from the given config.
func NewUserProgressClient(c config) *UserProgressClient {
	return &UserProgressClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `userprogress.Hooks(f(g(h())))`.
func (c *UserProgressClient) Use(hooks ...Hook) {
	c.hooks.UserProgress = append(c.hooks.UserProgress, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `userprogress.Intercept(f(g(h())))`.
func (c *UserProgressClient) Intercept(interceptors ...Interceptor) {
	c.inters.UserProgress = append(c.inters.UserProgress, interceptors...)
}

// Create returns a builder for creating a UserProgress entity.
func (c *UserProgressClient) Create() *UserProgressCreate {
	mutation := newUserProgressMutation(c.config, OpCreate)
	return &UserProgressCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UserProgress entities.
func (c *UserProgressClient) CreateBulk(builders ...*UserProgressCreate) *UserProgressCreateBulk {
	return &UserProgressCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserProgressClient) MapCreateBulk(slice any, setFunc func(*UserProgressCreate, int)) *UserProgressCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserProgressCreateBulk{err: fmt.Errorf("calling to UserProgressClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserProgressCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserProgressCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UserProgress.
func (c *UserProgressClient) Update() *UserProgressUpdate {
	mutation := newUserProgressMutation(c.config, OpUpdate)
	return &UserProgressUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserProgressClient) UpdateOne(_m *UserProgress) *UserProgressUpdateOne {
	mutation := newUserProgressMutation(c.config, OpUpdateOne, withUserProgress(_m))
	return &UserProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserProgressClient) UpdateOneID(id int) *UserProgressUpdateOne {
	mutation := newUserProgressMutation(c.config, OpUpdateOne, withUserProgressID(id))
	return &UserProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UserProgress.
func (c *UserProgressClient) Delete() *UserProgressDelete {
	mutation := newUserProgressMutation(c.config, OpDelete)
	return &UserProgressDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserProgressClient) DeleteOne(_m *UserProgress) *UserProgressDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserProgressClient) DeleteOneID(id int) *UserProgressDeleteOne {
	builder := c.Delete().Where(userprogress.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserProgressDeleteOne{builder}
}

// Query returns a query builder for UserProgress.
func (c *UserProgressClient) Query() *UserProgressQuery {
	return &UserProgressQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUserProgress},
		inters: c.Interceptors(),
	}
}

// Get returns a UserProgress entity by its id.
func (c *UserProgressClient) Get(ctx context.Context, id int) (*UserProgress, error) {
	return c.Query().Where(userprogress.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserProgressClient) GetX(ctx context.Context, id int) *UserProgress {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *UserProgressClient) Hooks() []Hook {
	return c.hooks.UserProgress
}

// Interceptors returns the client interceptors.
func (c *UserProgressClient) Interceptors() []Interceptor {
	return c.inters.UserProgress
}

func (c *UserProgressClient) mutate(ctx context.Context, m *UserProgressMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserProgressCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserProgressUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserProgressDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown UserProgress mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		GameSession, LLMRequest, QuestionCache, Setting, TopicProgress,
		UserProgress []ent.Hook
	}
	inters struct {
		GameSession, LLMRequest, QuestionCache, Setting, TopicProgress,
		UserProgress []ent.Interceptor
	}
)
