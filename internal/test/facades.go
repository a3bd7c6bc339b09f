package test

import (
	"context"
	"sync"
)

// FailCall stores information about FailOrder invocations.
type FailCall struct {
	OrderID  string
	Attempts int
}

// FulfillmentFacadeStub provides controllable behaviour for the
// background queue.
type FulfillmentFacadeStub struct {
	sync.Mutex

	FulfillFn func(context.Context, string) error
	FailFn    func(context.Context, string, int) error

	Fulfilled []string
	Failed    []FailCall
}

// FulfillOrder records the invocation and delegates to the override.
func (s *FulfillmentFacadeStub) FulfillOrder(ctx context.Context, orderID string) error {
	s.Lock()
	s.Fulfilled = append(s.Fulfilled, orderID)
	s.Unlock()
	if s.FulfillFn != nil {
		return s.FulfillFn(ctx, orderID)
	}
	return nil
}

// FailOrder records the invocation and delegates to the override.
func (s *FulfillmentFacadeStub) FailOrder(ctx context.Context, orderID string, attempts int) error {
	s.Lock()
	s.Failed = append(s.Failed, FailCall{OrderID: orderID, Attempts: attempts})
	s.Unlock()
	if s.FailFn != nil {
		return s.FailFn(ctx, orderID, attempts)
	}
	return nil
}
