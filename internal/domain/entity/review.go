package entity

// ReviewStatus is the lifecycle of anything staff approve or reject once.
type ReviewStatus string

const (
	ReviewStatusPending  ReviewStatus = "PENDING"
	ReviewStatusApproved ReviewStatus = "APPROVED"
	ReviewStatusRejected ReviewStatus = "REJECTED"
)

// IsValid checks if the ReviewStatus is a known value.
func (s ReviewStatus) IsValid() bool {
	switch s {
	case ReviewStatusPending, ReviewStatusApproved, ReviewStatusRejected:
		return true
	default:
		return false
	}
}

// ReviewAction is what a reviewer asks for.
type ReviewAction string

const (
	ReviewActionApprove ReviewAction = "approve"
	ReviewActionReject  ReviewAction = "reject"
)

// Target maps an action to the status it produces.
func (a ReviewAction) Target() (ReviewStatus, bool) {
	switch a {
	case ReviewActionApprove:
		return ReviewStatusApproved, true
	case ReviewActionReject:
		return ReviewStatusRejected, true
	default:
		return "", false
	}
}
