package constants

const MessageErrorFormat = "The '%s' format is invalid"

const (
	ErrCodeUserExisted            = "USER_ALREADY_EXISTS"
	ErrCodeUserNotFound           = "USER_NOT_FOUND"
	ErrCodeInvalidCredentials     = "INVALID_CREDENTIALS"
	ErrCodeItemNotFound           = "ITEM_NOT_FOUND"
	ErrCodeCategoryNotFound       = "CATEGORY_NOT_FOUND"
	ErrCodeRequestNotFound        = "REQUEST_NOT_FOUND"
	ErrCodeForbidden              = "FORBIDDEN"
	ErrCodeSelfRequestForbidden   = "SELF_REQUEST_FORBIDDEN"
	ErrCodeInvalidOfferSelection  = "INVALID_OFFER_SELECTION"
	ErrCodeInsufficientPoints     = "INSUFFICIENT_POINTS"
	ErrCodeItemUnavailable        = "ITEM_UNAVAILABLE"
	ErrCodeInvalidStateTransition = "INVALID_STATE_TRANSITION"
	ErrCodeInvariantViolation     = "INVARIANT_VIOLATION"
	ErrCodeInvalidPointValue      = "INVALID_POINT_VALUE"
	ErrCodeValidationFailed       = "VALIDATION_FAILED"
	ErrCodeOperationFailed        = "OPERATION_FAILED"
)

const (
	UserRegistered     = "user registered successfully"
	ItemListed         = "item listed successfully"
	SwapRequestCreated = "swap request created successfully"
)

const (
	ErrMsgUserExisted            = "username or email already taken"
	ErrMsgUserNotFound           = "user not found"
	ErrMsgInvalidCredentials     = "invalid username or password"
	ErrMsgItemNotFound           = "item not found"
	ErrMsgCategoryNotFound       = "category not found"
	ErrMsgRequestNotFound        = "swap request not found"
	ErrMsgForbidden              = "not allowed to perform this operation"
	ErrMsgSelfRequestForbidden   = "cannot request your own item"
	ErrMsgInvalidOfferSelection  = "provide exactly one of an offered item or a points amount"
	ErrMsgInsufficientPoints     = "not enough points for this redemption"
	ErrMsgItemUnavailable        = "item is not available for swapping"
	ErrMsgInvalidStateTransition = "swap request is not in a state that allows this change"
	ErrMsgInvariantViolation     = "internal consistency fault"
	ErrMsgInvalidPointValue      = "point value must be a positive integer"
	ErrMsgOperationFailed        = "operation failed"
)

var errorMessages = map[string]string{
	ErrCodeUserExisted:            ErrMsgUserExisted,
	ErrCodeUserNotFound:           ErrMsgUserNotFound,
	ErrCodeInvalidCredentials:     ErrMsgInvalidCredentials,
	ErrCodeItemNotFound:           ErrMsgItemNotFound,
	ErrCodeCategoryNotFound:       ErrMsgCategoryNotFound,
	ErrCodeRequestNotFound:        ErrMsgRequestNotFound,
	ErrCodeForbidden:              ErrMsgForbidden,
	ErrCodeSelfRequestForbidden:   ErrMsgSelfRequestForbidden,
	ErrCodeInvalidOfferSelection:  ErrMsgInvalidOfferSelection,
	ErrCodeInsufficientPoints:     ErrMsgInsufficientPoints,
	ErrCodeItemUnavailable:        ErrMsgItemUnavailable,
	ErrCodeInvalidStateTransition: ErrMsgInvalidStateTransition,
	ErrCodeInvariantViolation:     ErrMsgInvariantViolation,
	ErrCodeInvalidPointValue:      ErrMsgInvalidPointValue,
	ErrCodeOperationFailed:        ErrMsgOperationFailed,
}

func GetErrorMessage(code string) string {
	msg, exists := errorMessages[code]
	if !exists {
		return ""
	}
	return msg
}
