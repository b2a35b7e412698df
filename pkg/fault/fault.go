package fault

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ib-77/opt3/pkg/opt"
)

// Fault is an error value with a message, an optional predecessor and an
// identity stamp. Faults are immutable; Wrap builds new values.
type Fault struct {
	id        uuid.UUID
	createdAt time.Time
	msg       string
	cause     opt.Option[*Fault]
}

// New constructs a Fault from any displayable value, using its string form
// as the message.
func New(v any) *Fault {
	return &Fault{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		msg:       fmt.Sprint(v),
		cause:     opt.None[*Fault](),
	}
}

// Wrap returns a new Fault with cause as the predecessor. The receiver is
// unchanged; its id and creation time carry over to the new value. Wrapping
// a nil cause leaves the chain unextended.
func (f *Fault) Wrap(cause *Fault) *Fault {
	return &Fault{
		id:        f.id,
		createdAt: f.createdAt,
		msg:       f.msg,
		cause:     opt.Some(cause),
	}
}

// Message returns the fault's own message, without the chain.
func (f *Fault) Message() string {
	return f.msg
}

// Cause returns the predecessor, if any.
func (f *Fault) Cause() opt.Option[*Fault] {
	return f.cause
}

// Id returns the identity stamp, stable across Wrap.
func (f *Fault) Id() uuid.UUID {
	return f.id
}

// CreatedAt returns the creation time (UTC), stable across Wrap.
func (f *Fault) CreatedAt() time.Time {
	return f.createdAt
}

// Flatten returns the chain from f outward through every predecessor,
// terminating at the first fault without one. A fault with no predecessor
// flattens to a single-element slice.
func Flatten(f *Fault) []*Fault {
	var chain []*Fault
	for f != nil {
		chain = append(chain, f)
		f = f.cause.UnwrapOr(nil)
	}
	return chain
}

// Text joins the chain messages with ": ", outermost message first.
func (f *Fault) Text() string {
	links := Flatten(f)
	msgs := make([]string, len(links))
	for i, link := range links {
		msgs[i] = link.msg
	}
	return strings.Join(msgs, ": ")
}

// Error implements the error interface over the full chain text.
func (f *Fault) Error() string {
	return f.Text()
}

// Unwrap returns the predecessor as an error, or nil when there is none.
func (f *Fault) Unwrap() error {
	if cause, ok := f.cause.Get(); ok {
		return cause
	}
	return nil
}
