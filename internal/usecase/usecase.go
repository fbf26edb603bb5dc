// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

// PageQuery is the page/limit pair accepted by every paginated listing.
type PageQuery struct {
	Page  int `query:"page" validate:"omitempty,min=1"`
	Limit int `query:"limit" validate:"omitempty,min=1"`
}

// Normalize clamps the query and returns the row offset and limit to use.
func (q PageQuery) Normalize(defaultLimit, maxLimit int) (page, offset, limit int) {
	page = q.Page
	if page < 1 {
		page = 1
	}
	limit = q.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if maxLimit > 0 && limit > maxLimit {
		limit = maxLimit
	}

	return page, (page - 1) * limit, limit
}

// ReviewInput is a staff decision on a pending request.
type ReviewInput struct {
	Action string `json:"action" validate:"required,oneof=approve reject"`
	Note   string `json:"note" validate:"omitempty,max=1000"`
}
