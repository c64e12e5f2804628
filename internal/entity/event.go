package entity

type Resource string

const (
	ResourceNote     Resource = "note"
	ResourceCategory Resource = "category"
)

type Action string

const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
	ActionDeleted Action = "deleted"
)

// ChangeEvent signals other sessions of the same owner that a resource has
// changed. Subscribers refetch the resource by ID.
type ChangeEvent struct {
	OwnerID  string
	Resource Resource
	ID       string
	Action   Action
}
