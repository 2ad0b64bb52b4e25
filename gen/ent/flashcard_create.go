// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"studydeck/gen/ent/document"
	"studydeck/gen/ent/flashcard"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// FlashcardCreate is the builder for creating a Flashcard entity.
type FlashcardCreate struct {
	config
	mutation *FlashcardMutation
	hooks    []Hook
}

// SetDocumentID sets the "document_id" field.
func (_c *FlashcardCreate) SetDocumentID(v uuid.UUID) *FlashcardCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetSubject sets the "subject" field.
func (_c *FlashcardCreate) SetSubject(v string) *FlashcardCreate {
	_c.mutation.SetSubject(v)
	return _c
}

// SetDefinition sets the "definition" field.
func (_c *FlashcardCreate) SetDefinition(v string) *FlashcardCreate {
	_c.mutation.SetDefinition(v)
	return _c
}

// SetPosition sets the "position" field.
func (_c *FlashcardCreate) SetPosition(v int) *FlashcardCreate {
	_c.mutation.SetPosition(v)
	return _c
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_c *FlashcardCreate) SetNillablePosition(v *int) *FlashcardCreate {
	if v != nil {
		_c.SetPosition(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *FlashcardCreate) SetCreatedAt(v time.Time) *FlashcardCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *FlashcardCreate) SetNillableCreatedAt(v *time.Time) *FlashcardCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *FlashcardCreate) SetID(v uuid.UUID) *FlashcardCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *FlashcardCreate) SetNillableID(v *uuid.UUID) *FlashcardCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetDocument sets the "document" edge to the Document entity.
func (_c *FlashcardCreate) SetDocument(v *Document) *FlashcardCreate {
	return _c.SetDocumentID(v.ID)
}

// Mutation returns the FlashcardMutation object of the builder.
func (_c *FlashcardCreate) Mutation() *FlashcardMutation {
	return _c.mutation
}

// Save creates the Flashcard in the database.
func (_c *FlashcardCreate) Save(ctx context.Context) (*Flashcard, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FlashcardCreate) SaveX(ctx context.Context) *Flashcard {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FlashcardCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FlashcardCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FlashcardCreate) defaults() {
	if _, ok := _c.mutation.Position(); !ok {
		v := flashcard.DefaultPosition
		_c.mutation.SetPosition(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := flashcard.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := flashcard.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FlashcardCreate) check() error {
	if _, ok := _c.mutation.DocumentID(); !ok {
		return &ValidationError{Name: "document_id", err: errors.New(`ent: missing required field "Flashcard.document_id"`)}
	}
	if _, ok := _c.mutation.Subject(); !ok {
		return &ValidationError{Name: "subject", err: errors.New(`ent: missing required field "Flashcard.subject"`)}
	}
	if v, ok := _c.mutation.Subject(); ok {
		if err := flashcard.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "Flashcard.subject": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Definition(); !ok {
		return &ValidationError{Name: "definition", err: errors.New(`ent: missing required field "Flashcard.definition"`)}
	}
	if v, ok := _c.mutation.Definition(); ok {
		if err := flashcard.DefinitionValidator(v); err != nil {
			return &ValidationError{Name: "definition", err: fmt.Errorf(`ent: validator failed for field "Flashcard.definition": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Position(); !ok {
		return &ValidationError{Name: "position", err: errors.New(`ent: missing required field "Flashcard.position"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Flashcard.created_at"`)}
	}
	if len(_c.mutation.DocumentIDs()) == 0 {
		return &ValidationError{Name: "document", err: errors.New(`ent: missing required edge "Flashcard.document"`)}
	}
	return nil
}

func (_c *FlashcardCreate) sqlSave(ctx context.Context) (*Flashcard, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *FlashcardCreate) createSpec() (*Flashcard, *sqlgraph.CreateSpec) {
	var (
		_node = &Flashcard{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(flashcard.Table, sqlgraph.NewFieldSpec(flashcard.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Subject(); ok {
		_spec.SetField(flashcard.FieldSubject, field.TypeString, value)
		_node.Subject = value
	}
	if value, ok := _c.mutation.Definition(); ok {
		_spec.SetField(flashcard.FieldDefinition, field.TypeString, value)
		_node.Definition = value
	}
	if value, ok := _c.mutation.Position(); ok {
		_spec.SetField(flashcard.FieldPosition, field.TypeInt, value)
		_node.Position = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(flashcard.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.DocumentIDs(); len(nodes) > 0 {
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
		_node.DocumentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// FlashcardCreateBulk is the builder for creating many Flashcard entities in bulk.
type FlashcardCreateBulk struct {
	config
	err      error
	builders []*FlashcardCreate
}

// Save creates the Flashcard entities in the database.
func (_c *FlashcardCreateBulk) Save(ctx context.Context) ([]*Flashcard, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Flashcard, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FlashcardMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *FlashcardCreateBulk) SaveX(ctx context.Context) []*Flashcard {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FlashcardCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FlashcardCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
