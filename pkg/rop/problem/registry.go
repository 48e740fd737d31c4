package problem

import (
	"reflect"
	"sync"
)

// MessageFactory builds an error whose message is the given text.
type MessageFactory func(message string) error

// ZeroFactory builds an empty error. ToError uses it only when the result
// implements MessageSetter.
type ZeroFactory func() error

type MessageSetter interface {
	SetMessage(message string)
}

type DataSetter interface {
	SetData(key string, value any)
}

// DataError is an error carrying auxiliary key/value data. FromError
// copies the data into the problem.
type DataError interface {
	error
	Data() map[string]any
}

// Registry maps qualified error type names to factories.
type Registry struct {
	mu      sync.RWMutex
	message map[string]MessageFactory
	zero    map[string]ZeroFactory
}

// DefaultRegistry is used by ToError.
var DefaultRegistry = NewRegistry()

func NewRegistry() *Registry {
	return &Registry{
		message: map[string]MessageFactory{},
		zero:    map[string]ZeroFactory{},
	}
}

func (r *Registry) Register(typeName string, f MessageFactory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.message[typeName] = f
}

func (r *Registry) RegisterZero(typeName string, f ZeroFactory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.zero[typeName] = f
}

func (r *Registry) Lookup(typeName string) (MessageFactory, ZeroFactory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m := r.message[typeName]
	z := r.zero[typeName]
	return m, z, m != nil || z != nil
}

// RegisterType registers ctor under the name FromError records for E.
func RegisterType[E error](r *Registry, ctor func(message string) E) string {
	_, name := namesOf(reflect.TypeFor[E]())
	r.Register(name, func(message string) error {
		return ctor(message)
	})
	return name
}

// RegisterZeroType is RegisterType for types built empty and then given
// a message through MessageSetter.
func RegisterZeroType[E error](r *Registry, ctor func() E) string {
	_, name := namesOf(reflect.TypeFor[E]())
	r.RegisterZero(name, func() error {
		return ctor()
	})
	return name
}

// TypeName returns the qualified name FromError records for err.
func TypeName(err error) string {
	_, name := typeNames(err)
	return name
}
