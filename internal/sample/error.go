package sample

import "errors"

var (
	ErrSampleNotFound = errors.New("sample not found")
	ErrOrderNotFound  = errors.New("order not found")
	ErrNotAvailable   = errors.New("sample is no longer available")
	ErrSellerMismatch = errors.New("sample does not belong to the specified seller")
	ErrInvalidWindow  = errors.New("pickup window does not belong to the sample")
)
