package activitylog

import "context"

type Service interface {
	List(ctx context.Context, filter ListFilter) (ListResponse, error)
}
