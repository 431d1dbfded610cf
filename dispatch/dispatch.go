// Package dispatch maps event names to ordered lists of handlers, backed by a chainedhashmap.HashMap.
package dispatch

import (
	"context"
	"fmt"
	"github.com/gostonefire/chainedhashmap"
	"github.com/gostonefire/chainedhashmap/hashfunc"
	"go.uber.org/zap"
)

// Handler - Is called with the payload of a dispatched event
type Handler func(ctx context.Context, payload any) error

// Token - Identifies one subscription, it is used to unsubscribe
type Token uint64

type subscription struct {
	token   Token
	handler Handler
}

// Table - Holds the handlers subscribed per event name. Names are addressed by their xxhash value.
// A Table is not safe for concurrent use.
type Table struct {
	handlers  *chainedhashmap.HashMap[string, []subscription]
	lastToken Token
	logger    *zap.Logger
}

// New - Returns a pointer to a new Table
//   - config is the sizing of the underlying hash map, zero fields are given default values
func New(config chainedhashmap.Config) (table *Table, err error) {
	handlers, err := chainedhashmap.New[string, []subscription](hashfunc.String{}, config)
	if err != nil {
		err = fmt.Errorf("error while creating handler table: %w", err)
		return
	}

	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	table = &Table{handlers: handlers, logger: logger}
	return
}

// Subscribe - Appends handler to the handlers of name and returns a token for Unsubscribe
func (T *Table) Subscribe(name string, handler Handler) Token {
	T.lastToken++
	subs := T.handlers.At(name)
	*subs = append(*subs, subscription{token: T.lastToken, handler: handler})

	return T.lastToken
}

// Unsubscribe - Removes the subscription identified by token from name.
// A name left without handlers is removed from the table.
//
// It returns:
//   - true if the subscription was found
func (T *Table) Unsubscribe(name string, token Token) bool {
	it := T.handlers.Find(name)
	if it.IsEnd() {
		return false
	}

	subs := it.ValuePtr()
	for i, s := range *subs {
		if s.token != token {
			continue
		}
		*subs = append((*subs)[:i:i], (*subs)[i+1:]...)
		if len(*subs) == 0 {
			T.handlers.RemoveAt(it)
		}
		return true
	}

	return false
}

// Dispatch - Calls every handler of name in subscription order with payload.
// Dispatch stops at the first handler returning an error or when ctx is done.
//
// It returns:
//   - called is the number of handlers that were called
//   - err is the error of the failing handler or of ctx, wrapped
func (T *Table) Dispatch(ctx context.Context, name string, payload any) (called int, err error) {
	for _, s := range T.handlers.Value(name) {
		if err = ctx.Err(); err != nil {
			err = fmt.Errorf("dispatch of %s interrupted: %w", name, err)
			return
		}

		called++
		if err = s.handler(ctx, payload); err != nil {
			T.logger.Warn("handler failed", zap.String("name", name), zap.Uint64("token", uint64(s.token)), zap.Error(err))
			err = fmt.Errorf("handler for %s failed: %w", name, err)
			return
		}
	}

	return
}

// Handlers - Returns the number of handlers subscribed to name
func (T *Table) Handlers(name string) int {
	return len(T.handlers.Value(name))
}

// Names - Returns the names having at least one handler, in no particular order
func (T *Table) Names() (names []string) {
	names = make([]string, 0, T.handlers.Size())
	T.handlers.Range(func(name string, _ []subscription) bool {
		names = append(names, name)
		return true
	})

	return
}

// Drop - Removes name together with all its handlers
func (T *Table) Drop(name string) bool {
	return T.handlers.Remove(name) > 0
}
