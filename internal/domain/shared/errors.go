package shared

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrNotFound            = NewDomainError("NOT_FOUND", "Resource not found")
	ErrAlreadyExists       = NewDomainError("ALREADY_EXISTS", "Resource already exists")
	ErrInvalidInput        = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrConcurrencyConflict = NewDomainError("CONCURRENCY_CONFLICT", "Resource was modified by another process")
	ErrUnauthorized        = NewDomainError("UNAUTHORIZED", "Not authorized to perform this action")
	ErrForbidden           = NewDomainError("FORBIDDEN", "Access to this resource is forbidden")
	ErrInvalidState        = NewDomainError("INVALID_STATE", "Operation not allowed in current state")
	ErrAlreadyDecided      = NewDomainError("ALREADY_DECIDED", "Approval has already been decided")
)

// NewLinkedEntityNotFoundError reports a relation id that does not resolve to
// an existing record. The entity name and id are embedded so callers can act
// on the failure instead of treating it as a generic server error.
func NewLinkedEntityNotFoundError(entity, id string) *DomainError {
	return NewDomainError("LINKED_ENTITY_NOT_FOUND", "Linked "+entity+" not found: "+id)
}

// NewMaterializationError reports that an approval was decided but the
// downstream record could not be created.
func NewMaterializationError(message string) *DomainError {
	return NewDomainError("MATERIALIZATION_FAILED", message)
}
