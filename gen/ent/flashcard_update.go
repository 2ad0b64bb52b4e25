// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"studydeck/gen/ent/document"
	"studydeck/gen/ent/flashcard"
	"studydeck/gen/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// FlashcardUpdate is the builder for updating Flashcard entities.
type FlashcardUpdate struct {
	config
	hooks    []Hook
	mutation *FlashcardMutation
}

// Where appends a list predicates to the FlashcardUpdate builder.
func (_u *FlashcardUpdate) Where(ps ...predicate.Flashcard) *FlashcardUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *FlashcardUpdate) SetDocumentID(v uuid.UUID) *FlashcardUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *FlashcardUpdate) SetNillableDocumentID(v *uuid.UUID) *FlashcardUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *FlashcardUpdate) SetSubject(v string) *FlashcardUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *FlashcardUpdate) SetNillableSubject(v *string) *FlashcardUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetDefinition sets the "definition" field.
func (_u *FlashcardUpdate) SetDefinition(v string) *FlashcardUpdate {
	_u.mutation.SetDefinition(v)
	return _u
}

// SetNillableDefinition sets the "definition" field if the given value is not nil.
func (_u *FlashcardUpdate) SetNillableDefinition(v *string) *FlashcardUpdate {
	if v != nil {
		_u.SetDefinition(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *FlashcardUpdate) SetPosition(v int) *FlashcardUpdate {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *FlashcardUpdate) SetNillablePosition(v *int) *FlashcardUpdate {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *FlashcardUpdate) AddPosition(v int) *FlashcardUpdate {
	_u.mutation.AddPosition(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *FlashcardUpdate) SetCreatedAt(v time.Time) *FlashcardUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *FlashcardUpdate) SetNillableCreatedAt(v *time.Time) *FlashcardUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *FlashcardUpdate) SetDocument(v *Document) *FlashcardUpdate {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the FlashcardMutation object of the builder.
func (_u *FlashcardUpdate) Mutation() *FlashcardMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *FlashcardUpdate) ClearDocument() *FlashcardUpdate {
	_u.mutation.ClearDocument()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FlashcardUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FlashcardUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FlashcardUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FlashcardUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FlashcardUpdate) check() error {
	if v, ok := _u.mutation.Subject(); ok {
		if err := flashcard.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "Flashcard.subject": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Definition(); ok {
		if err := flashcard.DefinitionValidator(v); err != nil {
			return &ValidationError{Name: "definition", err: fmt.Errorf(`ent: validator failed for field "Flashcard.definition": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Flashcard.document"`)
	}
	return nil
}

func (_u *FlashcardUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(flashcard.Table, flashcard.Columns, sqlgraph.NewFieldSpec(flashcard.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(flashcard.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Definition(); ok {
		_spec.SetField(flashcard.FieldDefinition, field.TypeString, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(flashcard.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(flashcard.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(flashcard.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   flashcard.DocumentTable,
			Columns: []string{flashcard.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   flashcard.DocumentTable,
			Columns: []string{flashcard.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{flashcard.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FlashcardUpdateOne is the builder for updating a single Flashcard entity.
type FlashcardUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FlashcardMutation
}

// SetDocumentID sets the "document_id" field.
func (_u *FlashcardUpdateOne) SetDocumentID(v uuid.UUID) *FlashcardUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *FlashcardUpdateOne) SetNillableDocumentID(v *uuid.UUID) *FlashcardUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *FlashcardUpdateOne) SetSubject(v string) *FlashcardUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *FlashcardUpdateOne) SetNillableSubject(v *string) *FlashcardUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetDefinition sets the "definition" field.
func (_u *FlashcardUpdateOne) SetDefinition(v string) *FlashcardUpdateOne {
	_u.mutation.SetDefinition(v)
	return _u
}

// SetNillableDefinition sets the "definition" field if the given value is not nil.
func (_u *FlashcardUpdateOne) SetNillableDefinition(v *string) *FlashcardUpdateOne {
	if v != nil {
		_u.SetDefinition(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *FlashcardUpdateOne) SetPosition(v int) *FlashcardUpdateOne {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *FlashcardUpdateOne) SetNillablePosition(v *int) *FlashcardUpdateOne {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *FlashcardUpdateOne) AddPosition(v int) *FlashcardUpdateOne {
	_u.mutation.AddPosition(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *FlashcardUpdateOne) SetCreatedAt(v time.Time) *FlashcardUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *FlashcardUpdateOne) SetNillableCreatedAt(v *time.Time) *FlashcardUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *FlashcardUpdateOne) SetDocument(v *Document) *FlashcardUpdateOne {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the FlashcardMutation object of the builder.
func (_u *FlashcardUpdateOne) Mutation() *FlashcardMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *FlashcardUpdateOne) ClearDocument() *FlashcardUpdateOne {
	_u.mutation.ClearDocument()
	return _u
}

// Where appends a list predicates to the FlashcardUpdate builder.
func (_u *FlashcardUpdateOne) Where(ps ...predicate.Flashcard) *FlashcardUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FlashcardUpdateOne) Select(field string, fields ...string) *FlashcardUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Flashcard entity.
func (_u *FlashcardUpdateOne) Save(ctx context.Context) (*Flashcard, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FlashcardUpdateOne) SaveX(ctx context.Context) *Flashcard {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FlashcardUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FlashcardUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FlashcardUpdateOne) check() error {
	if v, ok := _u.mutation.Subject(); ok {
		if err := flashcard.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "Flashcard.subject": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Definition(); ok {
		if err := flashcard.DefinitionValidator(v); err != nil {
			return &ValidationError{Name: "definition", err: fmt.Errorf(`ent: validator failed for field "Flashcard.definition": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Flashcard.document"`)
	}
	return nil
}

func (_u *FlashcardUpdateOne) sqlSave(ctx context.Context) (_node *Flashcard, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(flashcard.Table, flashcard.Columns, sqlgraph.NewFieldSpec(flashcard.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Flashcard.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, flashcard.FieldID)
		for _, f := range fields {
			if !flashcard.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != flashcard.FieldID {
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
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(flashcard.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Definition(); ok {
		_spec.SetField(flashcard.FieldDefinition, field.TypeString, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(flashcard.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(flashcard.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(flashcard.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   flashcard.DocumentTable,
			Columns: []string{flashcard.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   flashcard.DocumentTable,
			Columns: []string{flashcard.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Flashcard{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{flashcard.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
