package rop

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ib-77/railway/pkg/rop/problem"
)

type resultJSON[T any] struct {
	IsSuccess bool             `json:"isSuccess"`
	Value     *T               `json:"value,omitempty"`
	Problem   *problem.Problem `json:"problem,omitempty"`
}

type collectionJSON[T any] struct {
	IsSuccess  bool             `json:"isSuccess"`
	Collection *[]T             `json:"collection,omitempty"`
	PageNumber int              `json:"pageNumber"`
	PageSize   int              `json:"pageSize"`
	TotalItems int              `json:"totalItems"`
	TotalPages int              `json:"totalPages"`
	Problem    *problem.Problem `json:"problem,omitempty"`
}

// MarshalJSON writes isSuccess with either the value or the problem.
// Identity and creation time are not part of the wire shape.
func (r Result[T]) MarshalJSON() ([]byte, error) {
	out := resultJSON[T]{IsSuccess: r.isSuccess}
	if r.isSuccess {
		v := r.value
		out.Value = &v
	} else {
		out.Problem = r.problem
	}
	return json.Marshal(out)
}

// UnmarshalJSON restores the state written by MarshalJSON. The decoded
// result gets a fresh id. A canceled problem restores the cancel flag.
func (r *Result[T]) UnmarshalJSON(data []byte) error {
	var in resultJSON[T]
	if err := json.Unmarshal(data, &in); err != nil {
		return fmt.Errorf("result: %w", err)
	}
	*r = decoded[T](in.IsSuccess, in.Value, in.Problem)
	return nil
}

func decoded[T any](isSuccess bool, value *T, p *problem.Problem) Result[T] {
	out := Result[T]{
		isSuccess: isSuccess,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
	if isSuccess {
		if value != nil {
			out.value = *value
		}
		return out
	}
	out.problem = p
	out.isCancel = p != nil && p.IsCanceled()
	return out
}

// MarshalJSON writes the collection and its page numbers. A failure keeps
// only isSuccess, zero page numbers and the problem.
func (c CollectionResult[T]) MarshalJSON() ([]byte, error) {
	out := collectionJSON[T]{IsSuccess: c.isSuccess}
	if c.isSuccess {
		items := c.value
		if items == nil {
			items = []T{}
		}
		out.Collection = &items
		out.PageNumber = c.page.Number
		out.PageSize = c.page.Size
		out.TotalItems = c.page.TotalItems
		out.TotalPages = c.page.TotalPages
	} else {
		out.Problem = c.problem
	}
	return json.Marshal(out)
}

func (c *CollectionResult[T]) UnmarshalJSON(data []byte) error {
	var in collectionJSON[T]
	if err := json.Unmarshal(data, &in); err != nil {
		return fmt.Errorf("collection result: %w", err)
	}
	if !in.IsSuccess {
		*c = CollectionResult[T]{Result: decoded[[]T](false, nil, in.Problem)}
		return nil
	}
	items := []T{}
	if in.Collection != nil && *in.Collection != nil {
		items = *in.Collection
	}
	c.Result = decoded(true, &items, nil)
	c.page.Number = in.PageNumber
	c.page.Size = in.PageSize
	c.page.TotalItems = in.TotalItems
	c.page.TotalPages = in.TotalPages
	return nil
}
