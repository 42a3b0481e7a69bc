// Package mocks provides a hand-written fake of the service interface for
// use in handler tests.
//
// The fake exposes one function field per interface method. When a field is
// nil the method returns the fake's default values instead:
//
//	svc := &mocks.MockTaskService{
//	    RemoveTaskFn: func(ctx context.Context, id int64) error {
//	        return &store.TaskNotFoundError{ID: id}
//	    },
//	}
package mocks
