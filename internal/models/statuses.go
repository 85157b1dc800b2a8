package models

type OrderStatus string
type FreelancerStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusInProgress OrderStatus = "in-progress"
	OrderStatusCompleted  OrderStatus = "completed"

	FreelancerStatusPending  FreelancerStatus = "pending"
	FreelancerStatusApproved FreelancerStatus = "approved"
	FreelancerStatusRejected FreelancerStatus = "rejected"
)

// OrderStatuses lists the allowed order statuses in workflow order.
var OrderStatuses = []OrderStatus{OrderStatusPending, OrderStatusInProgress, OrderStatusCompleted}

// FreelancerStatuses lists the allowed freelancer application statuses.
var FreelancerStatuses = []FreelancerStatus{FreelancerStatusPending, FreelancerStatusApproved, FreelancerStatusRejected}

func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusInProgress, OrderStatusCompleted:
		return true
	default:
		return false
	}
}

func (s FreelancerStatus) IsValid() bool {
	switch s {
	case FreelancerStatusPending, FreelancerStatusApproved, FreelancerStatusRejected:
		return true
	default:
		return false
	}
}
