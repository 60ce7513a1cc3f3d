package ledger

import "github.com/bizmaster/backend/internal/domain/shared"

// Validation failures surfaced by ledger operations. All are synchronous,
// locally-detected errors: a rejected operation leaves no partial state.
var (
	ErrUnknownUnit             = shared.NewDomainError("UNKNOWN_UNIT", "Business unit does not exist")
	ErrInvalidAmount           = shared.NewDomainError("INVALID_AMOUNT", "Amount must be at least 0.01")
	ErrInvalidQuantity         = shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	ErrInvalidPrice            = shared.NewDomainError("INVALID_PRICE", "Price must be a positive number")
	ErrInvalidShare            = shared.NewDomainError("INVALID_SHARE", "Share percentage must be between 0 and 100")
	ErrInsufficientFunds       = shared.NewDomainError("INSUFFICIENT_FUNDS", "Insufficient cash balance")
	ErrInsufficientEntitlement = shared.NewDomainError("INSUFFICIENT_ENTITLEMENT", "Amount exceeds the partner's available entitlement")
	ErrDuplicatePartner        = shared.NewDomainError("DUPLICATE_PARTNER", "Partner with this name already exists in the unit")
	ErrPartnerNotFound         = shared.NewDomainError("PARTNER_NOT_FOUND", "Partner not found in the unit")
	ErrShareExceeds100         = shared.NewDomainError("SHARE_EXCEEDS_100", "Total partner shares would exceed 100%")
	ErrDuplicateInvestment     = shared.NewDomainError("DUPLICATE_INVESTMENT", "Duplicate investment detected")
	ErrNoPartners              = shared.NewDomainError("NO_PARTNERS", "Unit has no partners to distribute to")
	ErrReservedCategory        = shared.NewDomainError("RESERVED_CATEGORY", "Expense category is reserved for internal equity flows")
)
