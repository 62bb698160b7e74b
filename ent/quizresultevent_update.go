// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/adaptive-learning/studybuddy/ent/predicate"
	"github.com/adaptive-learning/studybuddy/ent/quizresultevent"
	"github.com/adaptive-learning/studybuddy/ent/schema"
)

// QuizResultEventUpdate is the builder for updating QuizResultEvent entities.
type QuizResultEventUpdate struct {
	config
	hooks    []Hook
	mutation *QuizResultEventMutation
}

// Where appends a list predicates to the QuizResultEventUpdate builder.
func (_u *QuizResultEventUpdate) Where(ps ...predicate.QuizResultEvent) *QuizResultEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLearner sets the "learner" field.
func (_u *QuizResultEventUpdate) SetLearner(v string) *QuizResultEventUpdate {
	_u.mutation.SetLearner(v)
	return _u
}

// SetNillableLearner sets the "learner" field if the given value is not nil.
func (_u *QuizResultEventUpdate) SetNillableLearner(v *string) *QuizResultEventUpdate {
	if v != nil {
		_u.SetLearner(*v)
	}
	return _u
}

// SetGoal sets the "goal" field.
func (_u *QuizResultEventUpdate) SetGoal(v string) *QuizResultEventUpdate {
	_u.mutation.SetGoal(v)
	return _u
}

// SetNillableGoal sets the "goal" field if the given value is not nil.
func (_u *QuizResultEventUpdate) SetNillableGoal(v *string) *QuizResultEventUpdate {
	if v != nil {
		_u.SetGoal(*v)
	}
	return _u
}

// SetQuizType sets the "quiz_type" field.
func (_u *QuizResultEventUpdate) SetQuizType(v string) *QuizResultEventUpdate {
	_u.mutation.SetQuizType(v)
	return _u
}

// SetNillableQuizType sets the "quiz_type" field if the given value is not nil.
func (_u *QuizResultEventUpdate) SetNillableQuizType(v *string) *QuizResultEventUpdate {
	if v != nil {
		_u.SetQuizType(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *QuizResultEventUpdate) SetCorrect(v int) *QuizResultEventUpdate {
	_u.mutation.ResetCorrect()
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *QuizResultEventUpdate) SetNillableCorrect(v *int) *QuizResultEventUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// AddCorrect adds value to the "correct" field.
func (_u *QuizResultEventUpdate) AddCorrect(v int) *QuizResultEventUpdate {
	_u.mutation.AddCorrect(v)
	return _u
}

// SetTotal sets the "total" field.
func (_u *QuizResultEventUpdate) SetTotal(v int) *QuizResultEventUpdate {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *QuizResultEventUpdate) SetNillableTotal(v *int) *QuizResultEventUpdate {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *QuizResultEventUpdate) AddTotal(v int) *QuizResultEventUpdate {
	_u.mutation.AddTotal(v)
	return _u
}

// SetTopics sets the "topics" field.
func (_u *QuizResultEventUpdate) SetTopics(v []schema.TopicCount) *QuizResultEventUpdate {
	_u.mutation.SetTopics(v)
	return _u
}

// AppendTopics appends value to the "topics" field.
func (_u *QuizResultEventUpdate) AppendTopics(v []schema.TopicCount) *QuizResultEventUpdate {
	_u.mutation.AppendTopics(v)
	return _u
}

// ClearTopics clears the value of the "topics" field.
func (_u *QuizResultEventUpdate) ClearTopics() *QuizResultEventUpdate {
	_u.mutation.ClearTopics()
	return _u
}

// Mutation returns the QuizResultEventMutation object of the builder.
func (_u *QuizResultEventUpdate) Mutation() *QuizResultEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuizResultEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizResultEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuizResultEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizResultEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuizResultEventUpdate) check() error {
	if v, ok := _u.mutation.Goal(); ok {
		if err := quizresultevent.GoalValidator(v); err != nil {
			return &ValidationError{Name: "goal", err: fmt.Errorf(`ent: validator failed for field "QuizResultEvent.goal": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuizType(); ok {
		if err := quizresultevent.QuizTypeValidator(v); err != nil {
			return &ValidationError{Name: "quiz_type", err: fmt.Errorf(`ent: validator failed for field "QuizResultEvent.quiz_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Correct(); ok {
		if err := quizresultevent.CorrectValidator(v); err != nil {
			return &ValidationError{Name: "correct", err: fmt.Errorf(`ent: validator failed for field "QuizResultEvent.correct": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Total(); ok {
		if err := quizresultevent.TotalValidator(v); err != nil {
			return &ValidationError{Name: "total", err: fmt.Errorf(`ent: validator failed for field "QuizResultEvent.total": %w`, err)}
		}
	}
	return nil
}

func (_u *QuizResultEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quizresultevent.Table, quizresultevent.Columns, sqlgraph.NewFieldSpec(quizresultevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Learner(); ok {
		_spec.SetField(quizresultevent.FieldLearner, field.TypeString, value)
	}
	if value, ok := _u.mutation.Goal(); ok {
		_spec.SetField(quizresultevent.FieldGoal, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuizType(); ok {
		_spec.SetField(quizresultevent.FieldQuizType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(quizresultevent.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrect(); ok {
		_spec.AddField(quizresultevent.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(quizresultevent.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(quizresultevent.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Topics(); ok {
		_spec.SetField(quizresultevent.FieldTopics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTopics(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, quizresultevent.FieldTopics, value)
		})
	}
	if _u.mutation.TopicsCleared() {
		_spec.ClearField(quizresultevent.FieldTopics, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizresultevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuizResultEventUpdateOne is the builder for updating a single QuizResultEvent entity.
type QuizResultEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuizResultEventMutation
}

// SetLearner sets the "learner" field.
func (_u *QuizResultEventUpdateOne) SetLearner(v string) *QuizResultEventUpdateOne {
	_u.mutation.SetLearner(v)
	return _u
}

// SetNillableLearner sets the "learner" field if the given value is not nil.
func (_u *QuizResultEventUpdateOne) SetNillableLearner(v *string) *QuizResultEventUpdateOne {
	if v != nil {
		_u.SetLearner(*v)
	}
	return _u
}

// SetGoal sets the "goal" field.
func (_u *QuizResultEventUpdateOne) SetGoal(v string) *QuizResultEventUpdateOne {
	_u.mutation.SetGoal(v)
	return _u
}

// SetNillableGoal sets the "goal" field if the given value is not nil.
func (_u *QuizResultEventUpdateOne) SetNillableGoal(v *string) *QuizResultEventUpdateOne {
	if v != nil {
		_u.SetGoal(*v)
	}
	return _u
}

// SetQuizType sets the "quiz_type" field.
func (_u *QuizResultEventUpdateOne) SetQuizType(v string) *QuizResultEventUpdateOne {
	_u.mutation.SetQuizType(v)
	return _u
}

// SetNillableQuizType sets the "quiz_type" field if the given value is not nil.
func (_u *QuizResultEventUpdateOne) SetNillableQuizType(v *string) *QuizResultEventUpdateOne {
	if v != nil {
		_u.SetQuizType(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *QuizResultEventUpdateOne) SetCorrect(v int) *QuizResultEventUpdateOne {
	_u.mutation.ResetCorrect()
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *QuizResultEventUpdateOne) SetNillableCorrect(v *int) *QuizResultEventUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// AddCorrect adds value to the "correct" field.
func (_u *QuizResultEventUpdateOne) AddCorrect(v int) *QuizResultEventUpdateOne {
	_u.mutation.AddCorrect(v)
	return _u
}

// SetTotal sets the "total" field.
func (_u *QuizResultEventUpdateOne) SetTotal(v int) *QuizResultEventUpdateOne {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *QuizResultEventUpdateOne) SetNillableTotal(v *int) *QuizResultEventUpdateOne {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *QuizResultEventUpdateOne) AddTotal(v int) *QuizResultEventUpdateOne {
	_u.mutation.AddTotal(v)
	return _u
}

// SetTopics sets the "topics" field.
func (_u *QuizResultEventUpdateOne) SetTopics(v []schema.TopicCount) *QuizResultEventUpdateOne {
	_u.mutation.SetTopics(v)
	return _u
}

// AppendTopics appends value to the "topics" field.
func (_u *QuizResultEventUpdateOne) AppendTopics(v []schema.TopicCount) *QuizResultEventUpdateOne {
	_u.mutation.AppendTopics(v)
	return _u
}

// ClearTopics clears the value of the "topics" field.
func (_u *QuizResultEventUpdateOne) ClearTopics() *QuizResultEventUpdateOne {
	_u.mutation.ClearTopics()
	return _u
}

// Mutation returns the QuizResultEventMutation object of the builder.
func (_u *QuizResultEventUpdateOne) Mutation() *QuizResultEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the QuizResultEventUpdate builder.
func (_u *QuizResultEventUpdateOne) Where(ps ...predicate.QuizResultEvent) *QuizResultEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuizResultEventUpdateOne) Select(field string, fields ...string) *QuizResultEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QuizResultEvent entity.
func (_u *QuizResultEventUpdateOne) Save(ctx context.Context) (*QuizResultEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizResultEventUpdateOne) SaveX(ctx context.Context) *QuizResultEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuizResultEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizResultEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuizResultEventUpdateOne) check() error {
	if v, ok := _u.mutation.Goal(); ok {
		if err := quizresultevent.GoalValidator(v); err != nil {
			return &ValidationError{Name: "goal", err: fmt.Errorf(`ent: validator failed for field "QuizResultEvent.goal": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuizType(); ok {
		if err := quizresultevent.QuizTypeValidator(v); err != nil {
			return &ValidationError{Name: "quiz_type", err: fmt.Errorf(`ent: validator failed for field "QuizResultEvent.quiz_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Correct(); ok {
		if err := quizresultevent.CorrectValidator(v); err != nil {
			return &ValidationError{Name: "correct", err: fmt.Errorf(`ent: validator failed for field "QuizResultEvent.correct": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Total(); ok {
		if err := quizresultevent.TotalValidator(v); err != nil {
			return &ValidationError{Name: "total", err: fmt.Errorf(`ent: validator failed for field "QuizResultEvent.total": %w`, err)}
		}
	}
	return nil
}

func (_u *QuizResultEventUpdateOne) sqlSave(ctx context.Context) (_node *QuizResultEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quizresultevent.Table, quizresultevent.Columns, sqlgraph.NewFieldSpec(quizresultevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QuizResultEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, quizresultevent.FieldID)
		for _, f := range fields {
			if !quizresultevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != quizresultevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Learner(); ok {
		_spec.SetField(quizresultevent.FieldLearner, field.TypeString, value)
	}
	if value, ok := _u.mutation.Goal(); ok {
		_spec.SetField(quizresultevent.FieldGoal, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuizType(); ok {
		_spec.SetField(quizresultevent.FieldQuizType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(quizresultevent.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrect(); ok {
		_spec.AddField(quizresultevent.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(quizresultevent.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(quizresultevent.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Topics(); ok {
		_spec.SetField(quizresultevent.FieldTopics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTopics(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, quizresultevent.FieldTopics, value)
		})
	}
	if _u.mutation.TopicsCleared() {
		_spec.ClearField(quizresultevent.FieldTopics, field.TypeJSON)
	}
	_node = &QuizResultEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizresultevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
