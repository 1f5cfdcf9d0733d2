package model

// Standard error codes for domain errors.
const (
	ErrCodeProductNotFound     = "PRODUCT_NOT_FOUND"
	ErrCodeCustomerNotFound    = "CUSTOMER_NOT_FOUND"
	ErrCodeOrderNotFound       = "ORDER_NOT_FOUND"
	ErrCodePaymentNotFound     = "PAYMENT_NOT_FOUND"
	ErrCodeDuplicateSKU        = "DUPLICATE_SKU"
	ErrCodeDuplicateEmail      = "DUPLICATE_EMAIL"
	ErrCodeInsufficientStock   = "INSUFFICIENT_STOCK"
	ErrCodeInvalidQuantity     = "INVALID_QUANTITY"
	ErrCodeNothingToUpdate     = "NOTHING_TO_UPDATE"
	ErrCodeCustomerHasOrders   = "CUSTOMER_HAS_ORDERS"
	ErrCodeOrderNotCancellable = "ORDER_NOT_CANCELLABLE"
	ErrCodeOrderNotCompletable = "ORDER_NOT_COMPLETABLE"
	ErrCodeOrderNotPayable     = "ORDER_NOT_PAYABLE"
	ErrCodeUnauthorised        = "UNAUTHORIZED"
	ErrCodeInternalError       = "INTERNAL_ERROR"
)

// DomainError carries a stable code and a human-readable message for
// business rule violations.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error.
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrProductNotFound     = NewDomainError(ErrCodeProductNotFound, "product not found")
	ErrCustomerNotFound    = NewDomainError(ErrCodeCustomerNotFound, "customer not found")
	ErrOrderNotFound       = NewDomainError(ErrCodeOrderNotFound, "order not found")
	ErrPaymentNotFound     = NewDomainError(ErrCodePaymentNotFound, "payment not found")
	ErrDuplicateSKU        = NewDomainError(ErrCodeDuplicateSKU, "SKU already exists")
	ErrDuplicateEmail      = NewDomainError(ErrCodeDuplicateEmail, "email already exists")
	ErrInsufficientStock   = NewDomainError(ErrCodeInsufficientStock, "insufficient stock")
	ErrInvalidQuantity     = NewDomainError(ErrCodeInvalidQuantity, "quantity must be greater than zero")
	ErrNothingToUpdate     = NewDomainError(ErrCodeNothingToUpdate, "nothing to update")
	ErrCustomerHasOrders   = NewDomainError(ErrCodeCustomerHasOrders, "customer has existing orders")
	ErrOrderNotCancellable = NewDomainError(ErrCodeOrderNotCancellable, "only orders with status PLACED can be cancelled")
	ErrOrderNotCompletable = NewDomainError(ErrCodeOrderNotCompletable, "only orders with status PLACED can be completed")
	ErrOrderNotPayable     = NewDomainError(ErrCodeOrderNotPayable, "order cannot be paid; status is not PLACED")
)
