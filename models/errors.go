package models

// Error taxonomy surfaced to API consumers. The helper package maps each
// type to an HTTP status and a machine-readable kind.

type ErrorValidation struct {
	Message string
}

func (e ErrorValidation) Error() string {
	return e.Message
}

type ErrorNotFound struct {
	Message string
}

func (e ErrorNotFound) Error() string {
	return e.Message
}

type ErrorInvalidFile struct {
	Message string
}

func (e ErrorInvalidFile) Error() string {
	return e.Message
}

type ErrorInternalServer struct {
	Message string
}

func (e ErrorInternalServer) Error() string {
	return e.Message
}
