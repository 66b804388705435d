package eventbus

import (
	"reflect"

	"github.com/sirupsen/logrus"
)

// EventBus dispatches in-process events to handlers whose function signature
// matches the published arguments. Dispatch is synchronous: Publish returns
// only after every matching handler has run.
type EventBus interface {
	Publish(args ...interface{})
	Subscribe(handler interface{})
	Unsubscribe(handler interface{})
	Clear()
	SubscribersCount() int
}

type publisherImpl struct {
	log      *logrus.Logger
	handlers []interface{}
}

func NewEventPublisher(log *logrus.Logger) EventBus {
	return &publisherImpl{log: log}
}

// MatchSignature reports whether handler is a func whose parameters accept
// args positionally, treating interface parameters via Implements and nil
// arguments as assignable to pointer/interface parameters.
func MatchSignature(handler interface{}, args []interface{}) bool {
	t := reflect.TypeOf(handler)
	if t.Kind() != reflect.Func {
		return false
	}
	if t.NumIn() != len(args) {
		return false
	}

	for i, arg := range args {
		paramType := t.In(i)
		if arg == nil {
			if paramType.Kind() != reflect.Interface && paramType.Kind() != reflect.Ptr {
				return false
			}
			continue
		}

		argType := reflect.TypeOf(arg)
		if paramType.Kind() == reflect.Interface {
			if !argType.Implements(paramType) {
				return false
			}
			continue
		}
		if !argType.AssignableTo(paramType) {
			return false
		}
	}
	return true
}

func (p *publisherImpl) Publish(args ...interface{}) {
	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		in[i] = reflect.ValueOf(arg)
	}

	handled := false
	for _, handler := range p.handlers {
		if !MatchSignature(handler, args) {
			continue
		}
		// A matching handler counts as handled even when it panics.
		handled = true
		v := reflect.ValueOf(handler)
		func() {
			defer func() {
				if r := recover(); r != nil && p.log != nil {
					p.log.Errorf("eventbus: handler %s panicked with args %v: %v", v.Type(), args, r)
				}
			}()
			v.Call(in)
		}()
	}

	if !handled && p.log != nil {
		p.log.Warnf("eventbus.Publish: no matching subscribers for event with args: %v", in)
	}
}

func (p *publisherImpl) Subscribe(handler interface{}) {
	if reflect.TypeOf(handler).Kind() != reflect.Func {
		panic("handler must be a function")
	}
	p.handlers = append(p.handlers, handler)
}

func (p *publisherImpl) Unsubscribe(handler interface{}) {
	target := reflect.ValueOf(handler).Pointer()
	for i, h := range p.handlers {
		if reflect.ValueOf(h).Pointer() == target {
			p.handlers = append(p.handlers[:i], p.handlers[i+1:]...)
			return
		}
	}
}

func (p *publisherImpl) Clear() {
	p.handlers = nil
}

func (p *publisherImpl) SubscribersCount() int {
	return len(p.handlers)
}
