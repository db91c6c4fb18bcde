package context_manager

import (
	"context"
)

type invokerKey struct{}
type invocationIDKey struct{}

// Invoker identifies the user whose message triggered the current command.
type Invoker struct {
	ID   string
	Name string
}

// SetInvokerContext stores the invoking user's identity into context
func SetInvokerContext(ctx context.Context, id, name string) context.Context {
	return context.WithValue(ctx, invokerKey{}, Invoker{ID: id, Name: name})
}

// GetInvokerContext retrieves the invoking user's identity from context
func GetInvokerContext(ctx context.Context) Invoker {
	invoker, ok := ctx.Value(invokerKey{}).(Invoker)
	if !ok {
		return Invoker{ID: "0", Name: "unknown"}
	}
	return invoker
}

// SetInvocationIDContext stores the id correlating one dispatched command
func SetInvocationIDContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, invocationIDKey{}, id)
}

// GetInvocationIDContext retrieves the invocation id from context
func GetInvocationIDContext(ctx context.Context) string {
	id, ok := ctx.Value(invocationIDKey{}).(string)
	if !ok {
		return "unknown"
	}
	return id
}
