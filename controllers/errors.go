package controllers

type CustomError struct {
	Message string
}

func (e *CustomError) Error() string {
	return e.Message
}

var (
	ErrNoPermission  = &CustomError{"You do not have permission"}
	ErrTabPaid       = &CustomError{"Tab is already paid"}
	ErrTabNotEmpty   = &CustomError{"Tab still has items"}
	ErrClientExists  = &CustomError{"Client with this name already exists"}
	ErrSimilarClient = &CustomError{"A client with a similar name already exists"}
)
