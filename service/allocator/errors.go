package allocator

import "github.com/viant/namepool/model/types"

var (
	ErrUnavailable    = types.NewError(types.KindUnavailable, "history store not initialized")
	ErrInvalidCount   = types.NewError(types.KindValidation, "count must be >= 1")
	ErrCountTooLarge  = types.NewError(types.KindValidation, "count too large")
	ErrRetryExhausted = types.NewError(types.KindRetryExhausted, "could not persist history (concurrent updates); please retry")
)

func exhaustedError(remaining int) error {
	return types.Errorf(types.KindExhausted, "not enough unused names remaining (%d left)", remaining)
}
