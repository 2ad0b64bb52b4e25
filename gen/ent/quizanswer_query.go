// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"
	"studydeck/gen/ent/predicate"
	"studydeck/gen/ent/quizanswer"
	"studydeck/gen/ent/quizattempt"
	"studydeck/gen/ent/quizquestion"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// QuizAnswerQuery is the builder for querying QuizAnswer entities.
type QuizAnswerQuery struct {
	config
	ctx          *QueryContext
	order        []quizanswer.OrderOption
	inters       []Interceptor
	predicates   []predicate.QuizAnswer
	withAttempt  *QuizAttemptQuery
	withQuestion *QuizQuestionQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the QuizAnswerQuery builder.
func (_q *QuizAnswerQuery) Where(ps ...predicate.QuizAnswer) *QuizAnswerQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *QuizAnswerQuery) Limit(limit int) *QuizAnswerQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *QuizAnswerQuery) Offset(offset int) *QuizAnswerQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *QuizAnswerQuery) Unique(unique bool) *QuizAnswerQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *QuizAnswerQuery) Order(o ...quizanswer.OrderOption) *QuizAnswerQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryAttempt chains the current query on the "attempt" edge.
func (_q *QuizAnswerQuery) QueryAttempt() *QuizAttemptQuery {
	query := (&QuizAttemptClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(quizanswer.Table, quizanswer.FieldID, selector),
			sqlgraph.To(quizattempt.Table, quizattempt.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, quizanswer.AttemptTable, quizanswer.AttemptColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryQuestion chains the current query on the "question" edge.
func (_q *QuizAnswerQuery) QueryQuestion() *QuizQuestionQuery {
	query := (&QuizQuestionClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(quizanswer.Table, quizanswer.FieldID, selector),
			sqlgraph.To(quizquestion.Table, quizquestion.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, quizanswer.QuestionTable, quizanswer.QuestionColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first QuizAnswer entity from the query.
// Returns a *NotFoundError when no QuizAnswer was found.
func (_q *QuizAnswerQuery) First(ctx context.Context) (*QuizAnswer, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{quizanswer.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *QuizAnswerQuery) FirstX(ctx context.Context) *QuizAnswer {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first QuizAnswer ID from the query.
// Returns a *NotFoundError when no QuizAnswer ID was found.
func (_q *QuizAnswerQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{quizanswer.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *QuizAnswerQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single QuizAnswer entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one QuizAnswer entity is found.
// Returns a *NotFoundError when no QuizAnswer entities are found.
func (_q *QuizAnswerQuery) Only(ctx context.Context) (*QuizAnswer, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{quizanswer.Label}
	default:
		return nil, &NotSingularError{quizanswer.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *QuizAnswerQuery) OnlyX(ctx context.Context) *QuizAnswer {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only QuizAnswer ID in the query.
// Returns a *NotSingularError when more than one QuizAnswer ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *QuizAnswerQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{quizanswer.Label}
	default:
		err = &NotSingularError{quizanswer.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *QuizAnswerQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of QuizAnswers.
func (_q *QuizAnswerQuery) All(ctx context.Context) ([]*QuizAnswer, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*QuizAnswer, *QuizAnswerQuery]()
	return withInterceptors[[]*QuizAnswer](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *QuizAnswerQuery) AllX(ctx context.Context) []*QuizAnswer {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of QuizAnswer IDs.
func (_q *QuizAnswerQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(quizanswer.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *QuizAnswerQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *QuizAnswerQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*QuizAnswerQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *QuizAnswerQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *QuizAnswerQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *QuizAnswerQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the QuizAnswerQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *QuizAnswerQuery) Clone() *QuizAnswerQuery {
	if _q == nil {
		return nil
	}
	return &QuizAnswerQuery{
		config:       _q.config,
		ctx:          _q.ctx.Clone(),
		order:        append([]quizanswer.OrderOption{}, _q.order...),
		inters:       append([]Interceptor{}, _q.inters...),
		predicates:   append([]predicate.QuizAnswer{}, _q.predicates...),
		withAttempt:  _q.withAttempt.Clone(),
		withQuestion: _q.withQuestion.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithAttempt tells the query-builder to eager-load the nodes that are connected to
// the "attempt" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *QuizAnswerQuery) WithAttempt(opts ...func(*QuizAttemptQuery)) *QuizAnswerQuery {
	query := (&QuizAttemptClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withAttempt = query
	return _q
}

// WithQuestion tells the query-builder to eager-load the nodes that are connected to
// the "question" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *QuizAnswerQuery) WithQuestion(opts ...func(*QuizQuestionQuery)) *QuizAnswerQuery {
	query := (&QuizQuestionClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withQuestion = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		AttemptID uuid.UUID `json:"attempt_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.QuizAnswer.Query().
//		GroupBy(quizanswer.FieldAttemptID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *QuizAnswerQuery) GroupBy(field string, fields ...string) *QuizAnswerGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &QuizAnswerGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = quizanswer.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		AttemptID uuid.UUID `json:"attempt_id,omitempty"`
//	}
//
//	client.QuizAnswer.Query().
//		Select(quizanswer.FieldAttemptID).
//		Scan(ctx, &v)
func (_q *QuizAnswerQuery) Select(fields ...string) *QuizAnswerSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &QuizAnswerSelect{QuizAnswerQuery: _q}
	sbuild.label = quizanswer.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a QuizAnswerSelect configured with the given aggregations.
func (_q *QuizAnswerQuery) Aggregate(fns ...AggregateFunc) *QuizAnswerSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *QuizAnswerQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !quizanswer.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *QuizAnswerQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*QuizAnswer, error) {
	var (
		nodes       = []*QuizAnswer{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withAttempt != nil,
			_q.withQuestion != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*QuizAnswer).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &QuizAnswer{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withAttempt; query != nil {
		if err := _q.loadAttempt(ctx, query, nodes, nil,
			func(n *QuizAnswer, e *QuizAttempt) { n.Edges.Attempt = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withQuestion; query != nil {
		if err := _q.loadQuestion(ctx, query, nodes, nil,
			func(n *QuizAnswer, e *QuizQuestion) { n.Edges.Question = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *QuizAnswerQuery) loadAttempt(ctx context.Context, query *QuizAttemptQuery, nodes []*QuizAnswer, init func(*QuizAnswer), assign func(*QuizAnswer, *QuizAttempt)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*QuizAnswer)
	for i := range nodes {
		fk := nodes[i].AttemptID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(quizattempt.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "attempt_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *QuizAnswerQuery) loadQuestion(ctx context.Context, query *QuizQuestionQuery, nodes []*QuizAnswer, init func(*QuizAnswer), assign func(*QuizAnswer, *QuizQuestion)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*QuizAnswer)
	for i := range nodes {
		fk := nodes[i].QuestionID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(quizquestion.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "question_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *QuizAnswerQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *QuizAnswerQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(quizanswer.Table, quizanswer.Columns, sqlgraph.NewFieldSpec(quizanswer.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, quizanswer.FieldID)
		for i := range fields {
			if fields[i] != quizanswer.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withAttempt != nil {
			_spec.Node.AddColumnOnce(quizanswer.FieldAttemptID)
		}
		if _q.withQuestion != nil {
			_spec.Node.AddColumnOnce(quizanswer.FieldQuestionID)
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *QuizAnswerQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(quizanswer.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = quizanswer.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// QuizAnswerGroupBy is the group-by builder for QuizAnswer entities.
type QuizAnswerGroupBy struct {
	selector
	build *QuizAnswerQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *QuizAnswerGroupBy) Aggregate(fns ...AggregateFunc) *QuizAnswerGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *QuizAnswerGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*QuizAnswerQuery, *QuizAnswerGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *QuizAnswerGroupBy) sqlScan(ctx context.Context, root *QuizAnswerQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// QuizAnswerSelect is the builder for selecting fields of QuizAnswer entities.
type QuizAnswerSelect struct {
	*QuizAnswerQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *QuizAnswerSelect) Aggregate(fns ...AggregateFunc) *QuizAnswerSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *QuizAnswerSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*QuizAnswerQuery, *QuizAnswerSelect](ctx, _s.QuizAnswerQuery, _s, _s.inters, v)
}

func (_s *QuizAnswerSelect) sqlScan(ctx context.Context, root *QuizAnswerQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
