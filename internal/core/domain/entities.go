package domain

// Role represents the identity table a principal was resolved from
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleWorker Role = "worker"
	RoleClient Role = "client"
)

// ResolutionOrder is the fixed priority in which identity tables are probed.
// When an email exists in more than one table only the first is reachable.
var ResolutionOrder = []Role{RoleAdmin, RoleWorker, RoleClient}

// Valid reports whether r is one of the known roles
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleWorker, RoleClient:
		return true
	}
	return false
}

// Work order statuses produced by the system itself.
// Any other non-empty string may be set through a status update.
const (
	WorkOrderOpen   = "open"
	WorkOrderClosed = "closed"
)

// ReportAnswerCount is the number of free-text answers on a completion report
const ReportAnswerCount = 6

// Principal is the authenticated identity attached to a request
type Principal struct {
	ID    uint
	Email string
	Role  Role
}

// Is reports whether the principal holds one of the given roles
func (p *Principal) Is(roles ...Role) bool {
	if p == nil {
		return false
	}
	for _, r := range roles {
		if p.Role == r {
			return true
		}
	}
	return false
}

// Require returns ErrNotAuthorized unless the principal holds one of roles
func (p *Principal) Require(roles ...Role) error {
	if !p.Is(roles...) {
		return ErrNotAuthorized
	}
	return nil
}

// Owns reports whether the principal is the worker with the given id
func (p *Principal) Owns(workerID uint) bool {
	return p.Is(RoleWorker) && p.ID == workerID
}

// Event is a lifecycle notification published after a successful commit
type Event struct {
	ID         string         `json:"id"`
	Type       string         `json:"type"`
	OccurredAt string         `json:"occurred_at"`
	Payload    map[string]any `json:"payload"`
}

// Event types
const (
	EventWorkOrderCreated       = "work_order.created"
	EventWorkOrderStatusChanged = "work_order.status_changed"
	EventWorkOrderClosed        = "work_order.closed"
	EventWorkOrderOverdue       = "work_order.overdue"
	EventWorkRequestCreated     = "work_request.created"
)
